package indent

import (
	"fmt"
	"io"
)

// WriterOptions configures a new Writer.
type WriterOptions struct {
	// Output is the destination every operation is forwarded to.
	// Required.
	Output io.Writer

	// Tracker is the indentation consulted on Print, shared by
	// reference.  Defaults to a fresh flat tracker.
	Tracker Indentation
}

// Writer forwards each operation directly to an io.Writer instead of
// buffering.  It keeps no output state of its own; closing the
// destination remains the caller's job.
type Writer struct {
	out     io.Writer
	tracker Indentation
}

// NewWriter creates a forwarding writer.  A missing Output is a
// ConfigError, never a silent default.
func NewWriter(opts WriterOptions) (*Writer, error) {
	if opts.Output == nil {
		return nil, ConfigError{Option: "Output", Message: "forwarding writer needs a destination"}
	}
	tracker := opts.Tracker
	if tracker == nil {
		tracker = NewTracker(TrackerOptions{})
	}
	return &Writer{out: opts.Output, tracker: tracker}, nil
}

// Write forwards the concatenated values to the destination in a
// single call.  Destination errors propagate unchanged.
func (w *Writer) Write(values ...any) error {
	_, err := w.out.Write([]byte(stringify(values)))
	return err
}

// Print issues exactly two calls on the destination: first the current
// indentation followed by the values, then the newline on its own.
// Destinations with per-call side effects rely on that split.
func (w *Writer) Print(values ...any) error {
	if _, err := w.out.Write([]byte(w.tracker.Current() + stringify(values))); err != nil {
		return err
	}
	_, err := w.out.Write([]byte{'\n'})
	return err
}

// Printf prints a single formatted value.
func (w *Writer) Printf(format string, args ...any) error {
	return w.Print(fmt.Sprintf(format, args...))
}

// Output returns the destination, e.g. so the caller can close it.
func (w *Writer) Output() io.Writer {
	return w.out
}

// Clear clears the tracker.  The writer itself holds no buffer to
// clear.
func (w *Writer) Clear() {
	w.tracker.Clear()
}

// Indent forwards to the tracker.
func (w *Writer) Indent() { w.tracker.Indent() }

// Dedent forwards to the tracker.
func (w *Writer) Dedent() { w.tracker.Dedent() }

// Current forwards to the tracker.
func (w *Writer) Current() string { return w.tracker.Current() }

// Set forwards to the tracker.
func (w *Writer) Set(s string) { w.tracker.Set(s) }

// Push forwards to the tracker when it is a stack, and does nothing
// otherwise.
func (w *Writer) Push() {
	if s, ok := w.tracker.(IndentationStack); ok {
		s.Push()
	}
}

// Pop forwards to the tracker when it is a stack, and does nothing
// otherwise.
func (w *Writer) Pop() {
	if s, ok := w.tracker.(IndentationStack); ok {
		s.Pop()
	}
}

// Tracker returns the shared indentation reference.
func (w *Writer) Tracker() Indentation {
	return w.tracker
}
