package indent

import (
	"fmt"
	"strings"
)

// DefaultUnit is the token appended per nesting level when no unit is
// configured.
const DefaultUnit = "\t"

// Indentation is the capability a writer delegates indentation to.  The
// tracker is shared between the writer and the caller: neither takes
// ownership, and both may read and mutate it.
type Indentation interface {
	// Indent appends one unit to the current prefix.
	Indent()
	// Dedent removes the unit most recently appended by Indent.
	Dedent()
	// Current returns the prefix as it stands.
	Current() string
	// Set replaces the prefix entirely, units notwithstanding.
	Set(s string)
	// Clear resets the prefix to empty.
	Clear()
}

// IndentationStack is an Indentation that can save the current prefix
// and restore it later, enabling scoped resets.
type IndentationStack interface {
	Indentation
	Push()
	Pop()
}

// stringify concatenates the textual form of each value, in order,
// with no separator between them.
func stringify(values []any) string {
	var b strings.Builder
	for _, v := range values {
		switch s := v.(type) {
		case string:
			b.WriteString(s)
		case fmt.Stringer:
			b.WriteString(s.String())
		default:
			fmt.Fprintf(&b, "%v", v)
		}
	}
	return b.String()
}
