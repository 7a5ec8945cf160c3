package logline

import (
	"fmt"
	"strings"
)

var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeMarkup escapes '&', '<' and '>' for safe embedding in span markup.
func EscapeMarkup(s string) string {
	return markupEscaper.Replace(s)
}

func (s Style) css() string {
	var parts []string
	if s.Color != "" {
		parts = append(parts, "color:"+s.Color)
	}
	if s.Bold {
		parts = append(parts, "font-weight:600")
	}
	return strings.Join(parts, ";")
}

// HTML serializes the fragment to span-based markup. Unstyled spans are
// emitted as bare escaped text; styled spans are wrapped in a single,
// non-nested <span style="..."> element.
func (f Fragment) HTML() string {
	var b strings.Builder
	for _, span := range f {
		text := EscapeMarkup(span.Text)
		if span.Style.IsZero() {
			b.WriteString(text)
			continue
		}
		fmt.Fprintf(&b, `<span style=%q>%s</span>`, span.Style.css(), text)
	}
	return b.String()
}

// HTMLLine serializes one raw line the way the display pipeline colorizes it:
// lines with ANSI escapes go through RenderANSI, plain lines are wrapped in a
// single span colored by their classified severity.
func HTMLLine(line string) string {
	if HasANSI(line) {
		return RenderANSI(line).HTML()
	}
	color := Classify(line).Color()
	return fmt.Sprintf(`<span style="color:%s">%s</span>`, color, EscapeMarkup(line))
}
