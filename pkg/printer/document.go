// Package printer builds fixed-width receipt text the way a fiscal device
// lays it out on paper: full-width rules, centered captions and two-column
// rows padded to the paper width.
package printer

import (
	"strings"
	"unicode/utf8"
)

// DefaultWidth is the character width of an 80mm fiscal receipt roll.
const DefaultWidth = 42

// Document accumulates receipt lines.
type Document struct {
	lines []string
	width int
}

// NewDocument creates an empty document of the given character width.
func NewDocument(width int) *Document {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Document{width: width}
}

// Width returns the character width of the document.
func (d *Document) Width() int {
	return d.width
}

// Text appends a line verbatim. Embedded newlines produce several lines.
func (d *Document) Text(s string) *Document {
	d.lines = append(d.lines, strings.Split(s, "\n")...)
	return d
}

// Blank appends an empty line.
func (d *Document) Blank() *Document {
	d.lines = append(d.lines, "")
	return d
}

// Rule appends a full-width line of ch (e.g. "=====" or "-----").
func (d *Document) Rule(ch rune) *Document {
	d.lines = append(d.lines, Rule(ch, d.width))
	return d
}

// Center appends text centered on the line.
func (d *Document) Center(text string) *Document {
	d.lines = append(d.lines, Center(text, d.width))
	return d
}

// Row appends left and right text aligned to opposite edges.
// Example: "СУМА                              1.29 лв"
func (d *Document) Row(left, right string) *Document {
	d.lines = append(d.lines, Row(left, right, d.width))
	return d
}

// Lines returns the accumulated lines.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// String joins the lines with newlines.
func (d *Document) String() string {
	return strings.Join(d.lines, "\n")
}

// Reset clears the document.
func (d *Document) Reset() *Document {
	d.lines = d.lines[:0]
	return d
}

// Rule returns width copies of ch.
func Rule(ch rune, width int) string {
	return strings.Repeat(string(ch), width)
}

// Center left-pads text by half the free space, rounded down. There is no
// right padding, and text wider than the line is left untouched.
func Center(text string, width int) string {
	pad := (width - utf8.RuneCountInString(text)) / 2
	if pad < 1 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// Row fills the gap between left and right with spaces so the line is width
// characters long. At least one space is always kept.
func Row(left, right string, width int) string {
	gap := width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// Truncate cuts s to at most n characters.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
