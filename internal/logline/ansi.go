package logline

import (
	"regexp"
	"strconv"
	"strings"
)

// Style is the color and weight in effect for one span of text. The zero
// value means unstyled.
type Style struct {
	Color string // hex, empty when unset
	Bold  bool
}

// IsZero reports whether the style sets nothing.
func (s Style) IsZero() bool {
	return s.Color == "" && !s.Bold
}

// Span is a run of visible text rendered with a single style.
type Span struct {
	Text  string
	Style Style
}

// Fragment is the renderer's output: an ordered sequence of non-empty,
// non-nesting spans whose concatenated text is the input's visible text.
type Fragment []Span

// sgrEscape matches one ANSI SGR escape sequence, capturing its code list.
// The capture is permissive about the list's contents so a malformed token
// is skipped below instead of leaking the raw escape into the visible text.
var sgrEscape = regexp.MustCompile(`\x1b\[([^m\x1b]*)m`)

// RenderANSI converts a line containing ANSI SGR escapes into a Fragment.
// Unsupported SGR codes and non-numeric sub-codes are ignored; the function
// never fails. A line without escapes yields a single unstyled span.
func RenderANSI(line string) Fragment {
	var frag Fragment
	var current Style
	last := 0

	for _, m := range sgrEscape.FindAllStringSubmatchIndex(line, -1) {
		if m[0] > last {
			frag = append(frag, Span{Text: line[last:m[0]], Style: current})
		}
		codes := line[m[2]:m[3]]
		last = m[1]

		if codes == "" || codes == "0" {
			current = Style{}
			continue
		}
		for _, code := range strings.Split(codes, ";") {
			if code == "" {
				continue
			}
			n, err := strconv.Atoi(code)
			if err != nil {
				continue
			}
			switch {
			case n == 0:
				current = Style{}
			case n == 1:
				current.Bold = true
			case (30 <= n && n <= 37) || (90 <= n && n <= 97):
				current.Color = PaletteColor(n)
			}
		}
	}

	if last < len(line) {
		frag = append(frag, Span{Text: line[last:], Style: current})
	}
	return frag
}

// Text returns the visible text of the fragment with all styling dropped.
func (f Fragment) Text() string {
	var b strings.Builder
	for _, span := range f {
		b.WriteString(span.Text)
	}
	return b.String()
}
