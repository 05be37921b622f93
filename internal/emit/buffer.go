package emit

import (
	"fmt"
	"strings"
)

// Buffer accumulates output lines with explicit indent tracking. All
// generators build their artifacts through it instead of concatenating
// strings by hand, so indentation stays consistent across components.
type Buffer struct {
	lines []string
	depth int
	unit  string
}

// NewBuffer returns an empty buffer indenting with the given unit
// (e.g. four spaces or a tab).
func NewBuffer(unit string) *Buffer {
	if unit == "" {
		unit = "    "
	}
	return &Buffer{unit: unit}
}

// Line appends one line at the current indent. An empty string appends a
// blank line with no indentation.
func (b *Buffer) Line(s string) {
	if s == "" {
		b.lines = append(b.lines, "")
		return
	}
	b.lines = append(b.lines, strings.Repeat(b.unit, b.depth)+s)
}

// Linef appends a formatted line at the current indent.
func (b *Buffer) Linef(format string, args ...any) {
	b.Line(fmt.Sprintf(format, args...))
}

// Blank appends a blank line unless the previous line is already blank.
func (b *Buffer) Blank() {
	if n := len(b.lines); n > 0 && b.lines[n-1] == "" {
		return
	}
	b.lines = append(b.lines, "")
}

// Indent increases the indent level for subsequent lines.
func (b *Buffer) Indent() { b.depth++ }

// Dedent decreases the indent level, never below zero.
func (b *Buffer) Dedent() {
	if b.depth > 0 {
		b.depth--
	}
}

// Depth returns the current indent level.
func (b *Buffer) Depth() int { return b.depth }

// Len returns the number of accumulated lines.
func (b *Buffer) Len() int { return len(b.lines) }

// String joins the lines with newlines and terminates the output with one.
func (b *Buffer) String() string {
	if len(b.lines) == 0 {
		return ""
	}
	return strings.Join(b.lines, "\n") + "\n"
}
