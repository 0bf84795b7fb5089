// Package indent tracks indentation state and writes indented text.
//
// A tracker owns the current indentation prefix, either as a single
// string (Tracker) or together with a stack of saved prefixes (Stack).
// Writers share a tracker by reference and consult it on every Print:
// Buffer accumulates output in memory and materializes it on demand,
// Writer forwards each operation straight to an io.Writer, and
// LineWriter adapts any io.Writer stream by prefixing each line.
package indent
