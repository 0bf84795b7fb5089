package indent

import "strings"

// TrackerOptions configures a new tracker.  The zero value of a field
// picks the documented default.
type TrackerOptions struct {
	// Initial is the prefix the tracker starts with.  Defaults to
	// empty.
	Initial string

	// Unit is the token appended per nesting level.  Defaults to
	// DefaultUnit.
	Unit string
}

// Tracker holds the current indentation prefix as a plain string.  As
// long as the prefix is only touched through Indent and Dedent it stays
// a whole number of units; Set may install an arbitrary prefix.
type Tracker struct {
	current string
	unit    string
}

// NewTracker creates a flat tracker.
func NewTracker(opts TrackerOptions) *Tracker {
	unit := opts.Unit
	if unit == "" {
		unit = DefaultUnit
	}
	return &Tracker{current: opts.Initial, unit: unit}
}

// Indent appends one unit to the prefix.
func (t *Tracker) Indent() {
	t.current += t.unit
}

// Dedent removes one trailing unit from the prefix.  A prefix that does
// not end with a whole unit is left unchanged, since Indent never put
// one there.
func (t *Tracker) Dedent() {
	t.current = strings.TrimSuffix(t.current, t.unit)
}

// Current returns the prefix as it stands.
func (t *Tracker) Current() string {
	return t.current
}

// Set replaces the prefix entirely.
func (t *Tracker) Set(s string) {
	t.current = s
}

// Clear resets the prefix to empty.  The unit is untouched.
func (t *Tracker) Clear() {
	t.current = ""
}

// Unit returns the configured indentation token.
func (t *Tracker) Unit() string {
	return t.unit
}

func (t *Tracker) String() string {
	return t.current
}
