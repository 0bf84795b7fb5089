package indent

import "fmt"

// BufferOptions configures a new Buffer.
type BufferOptions struct {
	// Initial seeds the entry log.  Defaults to empty.
	Initial []any

	// Tracker is the indentation the buffer consults on Print.  It is
	// shared by reference, not owned.  Defaults to a fresh flat
	// tracker.
	Tracker Indentation
}

// Buffer accumulates written values in an ordered log and materializes
// them into a single string on demand.  The rendering is memoized and
// invalidated by every Write, Print, and Clear.
type Buffer struct {
	entries []any
	cached  string
	fresh   bool
	tracker Indentation
}

// NewBuffer creates a buffered writer.
func NewBuffer(opts BufferOptions) *Buffer {
	tracker := opts.Tracker
	if tracker == nil {
		tracker = NewTracker(TrackerOptions{})
	}
	b := &Buffer{tracker: tracker}
	if len(opts.Initial) > 0 {
		b.entries = append(b.entries, opts.Initial...)
	}
	return b
}

// Write appends each value, in order, to the entry log.  No
// indentation, no line terminator.
func (b *Buffer) Write(values ...any) {
	b.entries = append(b.entries, values...)
	b.fresh = false
}

// Print appends the current indentation, then each value in order,
// then a newline.
func (b *Buffer) Print(values ...any) {
	b.entries = append(b.entries, b.tracker.Current())
	b.entries = append(b.entries, values...)
	b.entries = append(b.entries, "\n")
	b.fresh = false
}

// Printf prints a single formatted value.
func (b *Buffer) Printf(format string, args ...any) {
	b.Print(fmt.Sprintf(format, args...))
}

// String returns the concatenated textual form of every entry, in
// order.  The result is cached and stays valid until the next Write,
// Print, or Clear.
func (b *Buffer) String() string {
	if !b.fresh {
		b.cached = stringify(b.entries)
		b.fresh = true
	}
	return b.cached
}

// Entries returns the raw backing log.  Mutating its elements is a
// low-level escape hatch; the change only shows up in String after the
// cache is next invalidated.
func (b *Buffer) Entries() []any {
	return b.entries
}

// Len returns the number of logged entries.
func (b *Buffer) Len() int {
	return len(b.entries)
}

// Clear empties the log, drops the cached rendering, and clears the
// tracker as well.
func (b *Buffer) Clear() {
	b.entries = nil
	b.cached = ""
	b.fresh = false
	b.tracker.Clear()
}

// Indent forwards to the tracker.
func (b *Buffer) Indent() { b.tracker.Indent() }

// Dedent forwards to the tracker.
func (b *Buffer) Dedent() { b.tracker.Dedent() }

// Current forwards to the tracker.
func (b *Buffer) Current() string { return b.tracker.Current() }

// Set forwards to the tracker.
func (b *Buffer) Set(s string) { b.tracker.Set(s) }

// Push forwards to the tracker when it is a stack, and does nothing
// otherwise.
func (b *Buffer) Push() {
	if s, ok := b.tracker.(IndentationStack); ok {
		s.Push()
	}
}

// Pop forwards to the tracker when it is a stack, and does nothing
// otherwise.
func (b *Buffer) Pop() {
	if s, ok := b.tracker.(IndentationStack); ok {
		s.Pop()
	}
}

// Tracker returns the shared indentation reference.
func (b *Buffer) Tracker() Indentation {
	return b.tracker
}
