// ABOUTME: Single-pass lexer turning formatting-code text into a token stream
// ABOUTME: Shared by the HTML and terminal renderers so both see identical codes

package mcformat

import (
	"strings"
	"unicode/utf8"
)

type tokenKind int

const (
	tokText tokenKind = iota
	tokColor
	tokFormat
	tokReset
)

// token is one lexical unit of formatted text.
type token struct {
	kind   tokenKind
	text   string // tokText
	color  string // tokColor: six lower-case hex digits
	format rune   // tokFormat: one of k, l, m, n, o
}

// scan walks s left to right and calls emit for every token. Adjacent literal
// characters are coalesced into a single text token. Bytes that are not valid
// UTF-8 are passed through untouched.
func scan(s string, emit func(token)) {
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			emit(token{kind: tokText, text: text.String()})
			text.Reset()
		}
	}

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])

		if isMarker(r) && i+size < len(s) {
			if r == Ampersand {
				if hex, ok := perDigitHex(s[i:]); ok {
					flush()
					emit(token{kind: tokColor, color: hex})
					i += perDigitHexLen
					continue
				}
			}
			if hex, ok := compactHex(s[i+size:]); ok {
				flush()
				emit(token{kind: tokColor, color: hex})
				i += size + 7
				continue
			}

			next, nsize := utf8.DecodeRuneInString(s[i+size:])
			code := toLowerASCII(next)
			switch {
			case colorCodes[code] != "":
				flush()
				emit(token{kind: tokColor, color: colorCodes[code]})
			case code == Reset:
				flush()
				emit(token{kind: tokReset})
			case formatDecls[code] != "":
				flush()
				emit(token{kind: tokFormat, format: code})
			default:
				// Not a code: keep marker and character verbatim.
				text.WriteString(s[i : i+size+nsize])
			}
			i += size + nsize
			continue
		}

		if !isDecorative(r) {
			text.WriteString(s[i : i+size])
		}
		i += size
	}
	flush()
}
