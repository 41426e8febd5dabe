// ABOUTME: Terminal rendering of formatting codes as lipgloss-styled ANSI text
// ABOUTME: Same style-state rules as Render; obfuscated runs are masked per grapheme

package mcformat

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

// obfuscatedMask replaces every visible grapheme of obfuscated text.
const obfuscatedMask = "▒"

// TerminalRenderer renders formatting codes for a terminal. The color
// profile of the wrapped lipgloss renderer decides what escape sequences are
// produced; an Ascii profile yields plain text.
type TerminalRenderer struct {
	r *lipgloss.Renderer
}

// NewTerminalRenderer returns a TerminalRenderer writing styles for r. A nil
// r uses lipgloss' default renderer.
func NewTerminalRenderer(r *lipgloss.Renderer) *TerminalRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &TerminalRenderer{r: r}
}

// termState mirrors spanWriter: one color plus ordered formats.
type termState struct {
	color   string
	formats []rune
}

func (s *termState) has(code rune) bool {
	for _, f := range s.formats {
		if f == code {
			return true
		}
	}
	return false
}

func (t *TerminalRenderer) style(s termState) lipgloss.Style {
	st := t.r.NewStyle()
	if s.color != "" {
		st = st.Foreground(lipgloss.Color("#" + s.color))
	}
	for _, f := range s.formats {
		switch f {
		case Bold:
			st = st.Bold(true)
		case Italic:
			st = st.Italic(true)
		case Underline:
			st = st.Underline(true)
		case Strikethrough:
			st = st.Strikethrough(true)
		}
	}
	return st
}

// Render converts formatting codes in text to styled terminal output.
func (t *TerminalRenderer) Render(text string) string {
	if text == "" {
		return ""
	}
	var (
		b     strings.Builder
		state termState
	)
	scan(text, func(tok token) {
		switch tok.kind {
		case tokText:
			run := SanitizeTerminal(tok.text)
			if state.has(Obfuscated) {
				run = maskGraphemes(run)
			}
			if state.color == "" && len(state.formats) == 0 {
				b.WriteString(run)
				return
			}
			b.WriteString(t.style(state).Render(run))
		case tokColor:
			state = termState{color: tok.color}
		case tokFormat:
			if !state.has(tok.format) {
				state.formats = append(state.formats, tok.format)
			}
		case tokReset:
			state = termState{}
		}
	})
	return b.String()
}

// RenderLines renders each line and joins them with newlines.
func (t *TerminalRenderer) RenderLines(lines []string) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = t.Render(line)
	}
	return strings.Join(out, "\n")
}

// maskGraphemes replaces each non-space grapheme cluster with obfuscatedMask.
func maskGraphemes(s string) string {
	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		if strings.TrimFunc(cluster, unicode.IsSpace) == "" {
			b.WriteString(cluster)
			continue
		}
		b.WriteString(obfuscatedMask)
	}
	return b.String()
}

// SanitizeTerminal removes escape sequences and control characters from text
// received from a server so it cannot drive the terminal. Tabs are kept.
func SanitizeTerminal(s string) string {
	s = ansi.Strip(s)
	if !strings.ContainsFunc(s, isUnsafeControl) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if isUnsafeControl(r) {
			return -1
		}
		return r
	}, s)
}

func isUnsafeControl(r rune) bool {
	return r != '\t' && unicode.IsControl(r)
}
