// ABOUTME: Minecraft color and format code tables with their CSS declarations
// ABOUTME: Also holds the decorative glyph block-list and fixed-width hex checks

package mcformat

// colorCodes maps the 16 legacy color digits to their RGB value (lower-case hex, no '#').
var colorCodes = map[rune]string{
	'0': "000000", // black
	'1': "0000aa", // dark blue
	'2': "00aa00", // dark green
	'3': "00aaaa", // dark aqua
	'4': "aa0000", // dark red
	'5': "aa00aa", // dark purple
	'6': "ffaa00", // gold
	'7': "aaaaaa", // gray
	'8': "555555", // dark gray
	'9': "5555ff", // blue
	'a': "55ff55", // green
	'b': "55ffff", // aqua
	'c': "ff5555", // red
	'd': "ff55ff", // light purple
	'e': "ffff55", // yellow
	'f': "ffffff", // white
}

// Format code letters.
const (
	Obfuscated    = 'k'
	Bold          = 'l'
	Strikethrough = 'm'
	Underline     = 'n'
	Italic        = 'o'
	Reset         = 'r'
)

// formatDecls maps format codes (reset excluded) to the CSS declaration they add.
var formatDecls = map[rune]string{
	Bold:          "font-weight: bold;",
	Strikethrough: "text-decoration: line-through;",
	Underline:     "text-decoration: underline;",
	Italic:        "font-style: italic;",
	Obfuscated:    "animation: obfuscated 0.1s infinite;",
}

// Marker characters introducing a code.
const (
	Ampersand = '&'
	Section   = '§'
)

// perDigitHexLen is the length of "&x&R&R&G&G&B&B".
const perDigitHexLen = 14

// decorativeGlyphs are dropped from rendered and stripped text.
var decorativeGlyphs = map[rune]struct{}{
	'❖': {},
	'⏩': {},
	'⏪': {},
}

// ColorDecl returns the CSS declaration for a 6-digit hex color.
func ColorDecl(hex string) string {
	return "color: #" + hex + ";"
}

// FormatDecl returns the CSS declaration for a format code, or "" for reset
// and unknown codes.
func FormatDecl(code rune) string {
	return formatDecls[code]
}

// ColorHex returns the hex value of a legacy color digit (case-insensitive).
func ColorHex(code rune) (string, bool) {
	hex, ok := colorCodes[toLowerASCII(code)]
	return hex, ok
}

func isMarker(r rune) bool {
	return r == Ampersand || r == Section
}

func isDecorative(r rune) bool {
	_, ok := decorativeGlyphs[r]
	return ok
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// lowerHex lower-cases a validated hex string.
func lowerHex(digits []byte) string {
	for i, c := range digits {
		if c >= 'A' && c <= 'F' {
			digits[i] = c + ('a' - 'A')
		}
	}
	return string(digits)
}

// perDigitHex reports whether s starts with "&x&H&H&H&H&H&H" and returns the
// six digits. Every position is checked; nothing looser is accepted.
func perDigitHex(s string) (string, bool) {
	if len(s) < perDigitHexLen || s[0] != '&' || s[1] != 'x' {
		return "", false
	}
	digits := make([]byte, 0, 6)
	for pos := 2; pos < perDigitHexLen; pos += 2 {
		if s[pos] != '&' || !isHexDigit(s[pos+1]) {
			return "", false
		}
		digits = append(digits, s[pos+1])
	}
	return lowerHex(digits), true
}

// compactHex reports whether s starts with "#RRGGBB" and returns the digits.
func compactHex(s string) (string, bool) {
	if len(s) < 7 || s[0] != '#' {
		return "", false
	}
	digits := []byte(s[1:7])
	for _, c := range digits {
		if !isHexDigit(c) {
			return "", false
		}
	}
	return lowerHex(digits), true
}
