// ABOUTME: HTML rendering of formatting codes into nested <span style> markup
// ABOUTME: Formatter wraps MOTD lines in per-line containers with a placeholder fallback

package mcformat

import "strings"

// DefaultPlaceholder is the text shown for a missing description.
const DefaultPlaceholder = "Sin descripción"

// lineOpen and lineClose bound every rendered MOTD line.
const (
	lineOpen  = `<div class="motd-line">`
	lineClose = `</div>`
)

// spanWriter is the explicit scan state of Render: the ordered active
// declarations. A span is open exactly when decls is non-empty.
type spanWriter struct {
	b     strings.Builder
	decls []string
}

func (w *spanWriter) open() {
	w.b.WriteString(`<span style="`)
	w.b.WriteString(strings.Join(w.decls, " "))
	w.b.WriteString(`">`)
}

func (w *spanWriter) closeOpen() {
	if len(w.decls) > 0 {
		w.b.WriteString("</span>")
	}
}

func (w *spanWriter) active(decl string) bool {
	for _, d := range w.decls {
		if d == decl {
			return true
		}
	}
	return false
}

func (w *spanWriter) write(t token) {
	switch t.kind {
	case tokText:
		w.b.WriteString(t.text)
	case tokColor:
		w.closeOpen()
		w.decls = []string{ColorDecl(t.color)}
		w.open()
	case tokFormat:
		decl := formatDecls[t.format]
		if w.active(decl) {
			return
		}
		w.decls = append(w.decls, decl)
		if len(w.decls) > 1 {
			w.b.WriteString("</span>")
		}
		w.open()
	case tokReset:
		w.closeOpen()
		w.decls = nil
	}
}

// Render converts & and § formatting codes in text to span markup. Literal
// text is not escaped. Unknown codes and incomplete hex colors are kept as
// text; the result never has an unclosed span.
func Render(text string) string {
	if text == "" {
		return ""
	}
	var w spanWriter
	scan(text, w.write)
	w.closeOpen()
	return w.b.String()
}

// Formatter renders and strips MOTD line arrays. The zero value uses
// DefaultPlaceholder.
type Formatter struct {
	Placeholder string
}

// NewFormatter returns a Formatter whose missing-description text is placeholder.
func NewFormatter(placeholder string) *Formatter {
	return &Formatter{Placeholder: placeholder}
}

func (f *Formatter) placeholder() string {
	if f == nil || f.Placeholder == "" {
		return DefaultPlaceholder
	}
	return f.Placeholder
}

// RenderLines renders each line into its own motd-line container. A nil
// slice yields a single placeholder line; an empty slice yields "".
func (f *Formatter) RenderLines(lines []string) string {
	if lines == nil {
		return lineOpen + f.placeholder() + lineClose
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(lineOpen)
		b.WriteString(Render(line))
		b.WriteString(lineClose)
	}
	return b.String()
}

// StripLines strips each line and joins them with a space. The placeholder is
// returned for a nil slice or when nothing but codes remain.
func (f *Formatter) StripLines(lines []string) string {
	if lines == nil {
		return f.placeholder()
	}
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = Strip(line)
	}
	joined := strings.TrimSpace(strings.Join(parts, " "))
	if joined == "" {
		return f.placeholder()
	}
	return joined
}

// RenderLines is Formatter.RenderLines with DefaultPlaceholder.
func RenderLines(lines []string) string {
	return (*Formatter)(nil).RenderLines(lines)
}

// StripLines is Formatter.StripLines with DefaultPlaceholder.
func StripLines(lines []string) string {
	return (*Formatter)(nil).StripLines(lines)
}
