// ABOUTME: Re-tokenizes rendered MOTD markup and keeps only the parser's own tags and styles
// ABOUTME: Uses golang.org/x/net/html; all text is re-escaped so upstream HTML cannot leak through

package web

import (
	"html/template"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/mauromedda/echostatus/internal/mcformat"
)

var colorDeclPattern = regexp.MustCompile(`^color: #[0-9a-f]{6};$`)

// formatDecls are the non-color declarations Render can emit.
var formatDecls = func() map[string]bool {
	m := make(map[string]bool)
	for _, code := range []rune{mcformat.Bold, mcformat.Strikethrough, mcformat.Underline, mcformat.Italic, mcformat.Obfuscated} {
		m[mcformat.FormatDecl(code)] = true
	}
	return m
}()

// allowedStyle filters a style attribute down to declarations the parser
// produces. Anything else is dropped.
func allowedStyle(style string) string {
	var kept []string
	for _, part := range strings.Split(style, ";") {
		decl := strings.TrimSpace(part)
		if decl == "" {
			continue
		}
		decl += ";"
		if formatDecls[decl] || colorDeclPattern.MatchString(decl) {
			kept = append(kept, decl)
		}
	}
	return strings.Join(kept, " ")
}

func attr(t html.Token, key string) string {
	for _, a := range t.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// sanitizeMOTD keeps <div class="motd-line"> and styled <span> elements from
// markup, escapes every text node and closes whatever is left open.
func sanitizeMOTD(markup string) template.HTML {
	z := html.NewTokenizer(strings.NewReader(markup))
	var (
		b     strings.Builder
		stack []string
	)
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF, or a reader failure that cannot happen on a strings.Reader.
			for i := len(stack) - 1; i >= 0; i-- {
				b.WriteString("</" + stack[i] + ">")
			}
			return template.HTML(b.String())
		case html.TextToken:
			b.WriteString(html.EscapeString(string(z.Text())))
		case html.StartTagToken:
			tok := z.Token()
			switch tok.Data {
			case "span":
				if style := allowedStyle(attr(tok, "style")); style != "" {
					b.WriteString(`<span style="` + html.EscapeString(style) + `">`)
				} else {
					b.WriteString("<span>")
				}
				stack = append(stack, "span")
			case "div":
				if attr(tok, "class") == "motd-line" {
					b.WriteString(`<div class="motd-line">`)
					stack = append(stack, "div")
				}
			}
		case html.EndTagToken:
			tok := z.Token()
			if n := len(stack); n > 0 && stack[n-1] == tok.Data {
				b.WriteString("</" + tok.Data + ">")
				stack = stack[:n-1]
			}
		}
	}
}
