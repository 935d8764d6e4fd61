// Package render provides text measurement and shaping helpers for widget
// views.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Sanitize removes control characters (except tab) and drops invalid UTF-8
// bytes so user-supplied widget content cannot break terminal rendering.
func Sanitize(s string) string {
	clean := true
	for i := range len(s) {
		b := s[i]
		if (b < 0x20 && b != '\t') || (b >= 0x80 && b <= 0x9f) {
			clean = false
			break
		}
	}
	if clean && utf8.ValidString(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			i++
			continue
		}
		if r != '\t' && unicode.IsControl(r) {
			i += size
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

// Width returns the display width of s in terminal cells, accounting for
// wide characters (CJK, emoji).
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to fit maxWidth, appending a single-character
// ellipsis when content was cut.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "…")
}

// Pad fills s with trailing spaces to reach width.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Fixed truncates then pads so the result is exactly width cells wide.
func Fixed(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Centered places s in the middle of a width-cell field, truncating when it
// does not fit.
func Centered(s string, width int) string {
	s = Sanitize(s)
	w := runewidth.StringWidth(s)
	if w >= width {
		return Truncate(s, width)
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
