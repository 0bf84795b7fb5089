package indent

import "io"

// LineWriter is an io.Writer that emits the tracker's current
// indentation before the first byte of every non-empty line flowing
// through it.  It lets anything that targets an io.Writer, such as
// fmt.Fprintf or a template engine, pick up live indentation without
// knowing about this package.
type LineWriter struct {
	out     io.Writer
	tracker Indentation
	pending bool
}

// NewLineWriter wraps out.  A nil tracker defaults to a fresh flat
// tracker; pass the same tracker a Buffer or Writer holds to keep all
// three in step.
func NewLineWriter(out io.Writer, tracker Indentation) *LineWriter {
	if tracker == nil {
		tracker = NewTracker(TrackerOptions{})
	}
	return &LineWriter{out: out, tracker: tracker, pending: true}
}

// Write implements io.Writer.  Blank lines are passed through without
// a prefix.  A line split across multiple calls is prefixed once.
func (lw *LineWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	last := 0
	for i := 0; i < len(p); i++ {
		if lw.pending && p[i] != '\n' {
			if _, err := io.WriteString(lw.out, lw.tracker.Current()); err != nil {
				return last, err
			}
			lw.pending = false
		}
		if p[i] == '\n' {
			if _, err := lw.out.Write(p[last : i+1]); err != nil {
				return last, err
			}
			last = i + 1
			lw.pending = true
		}
	}
	if last < len(p) {
		if _, err := lw.out.Write(p[last:]); err != nil {
			return last, err
		}
	}
	return len(p), nil
}

// Tracker returns the shared indentation reference.
func (lw *LineWriter) Tracker() Indentation {
	return lw.tracker
}
