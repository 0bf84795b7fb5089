package indent

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineWriter_PrefixesLines(t *testing.T) {
	var out bytes.Buffer
	tracker := NewTracker(TrackerOptions{Unit: "  "})
	tracker.Indent()

	lw := NewLineWriter(&out, tracker)
	_, err := lw.Write([]byte("one\ntwo\n"))
	assert.NoError(t, err)
	assert.Equal(t, "  one\n  two\n", out.String())
}

func TestLineWriter_BlankLinesStayBlank(t *testing.T) {
	var out bytes.Buffer
	tracker := NewTracker(TrackerOptions{})
	tracker.Indent()

	lw := NewLineWriter(&out, tracker)
	_, err := lw.Write([]byte("a\n\nb\n"))
	assert.NoError(t, err)
	assert.Equal(t, "\ta\n\n\tb\n", out.String())
}

func TestLineWriter_SplitWritesPrefixOnce(t *testing.T) {
	var out bytes.Buffer
	tracker := NewTracker(TrackerOptions{})
	tracker.Indent()

	lw := NewLineWriter(&out, tracker)
	for _, chunk := range []string{"par", "tial", "\nnext"} {
		_, err := lw.Write([]byte(chunk))
		assert.NoError(t, err)
	}
	assert.Equal(t, "\tpartial\n\tnext", out.String())
}

func TestLineWriter_TracksLiveIndentation(t *testing.T) {
	var out bytes.Buffer
	tracker := NewTracker(TrackerOptions{})

	lw := NewLineWriter(&out, tracker)
	fmt.Fprintf(lw, "begin\n")
	tracker.Indent()
	fmt.Fprintf(lw, "body %d\n", 1)
	tracker.Dedent()
	fmt.Fprintf(lw, "end\n")
	assert.Equal(t, "begin\n\tbody 1\nend\n", out.String())
}

func TestLineWriter_DefaultTracker(t *testing.T) {
	var out bytes.Buffer
	lw := NewLineWriter(&out, nil)
	assert.NotNil(t, lw.Tracker())

	_, err := lw.Write([]byte("plain\n"))
	assert.NoError(t, err)
	assert.Equal(t, "plain\n", out.String())
}

func TestLineWriter_EmptyWrite(t *testing.T) {
	var out bytes.Buffer
	lw := NewLineWriter(&out, nil)
	n, err := lw.Write(nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, "", out.String())
}
