package indent

// Stack is a tracker with a stack of saved prefixes.  Push parks the
// current prefix and starts over from empty; Pop restores the most
// recently parked one.  Useful for emitting a nested construct that
// begins at column zero regardless of the surrounding depth.
type Stack struct {
	Tracker
	frames []string
}

// NewStack creates a stack tracker.
func NewStack(opts TrackerOptions) *Stack {
	return &Stack{Tracker: *NewTracker(opts)}
}

// Push saves the current prefix onto the stack and resets it to empty.
func (s *Stack) Push() {
	s.frames = append(s.frames, s.current)
	s.current = ""
}

// Pop restores the most recently pushed prefix, discarding it from the
// stack.  Popping an empty stack leaves the current prefix unchanged.
func (s *Stack) Pop() {
	if len(s.frames) == 0 {
		return
	}
	idx := len(s.frames) - 1
	s.current = s.frames[idx]
	s.frames = s.frames[:idx]
}

// Clear empties both the stack and the current prefix.
func (s *Stack) Clear() {
	s.frames = s.frames[:0]
	s.current = ""
}

// Depth returns the number of saved prefixes.
func (s *Stack) Depth() int {
	return len(s.frames)
}
