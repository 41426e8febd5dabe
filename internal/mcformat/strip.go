// ABOUTME: Removal of formatting codes and decorative glyphs from text
// ABOUTME: Plus naive & <-> § marker conversion helpers

package mcformat

import (
	"regexp"
	"strings"
)

// stripPatterns are applied in order; every code the lexer recognizes has a
// rule here.
var stripPatterns = []*regexp.Regexp{
	regexp.MustCompile(`&x&[0-9A-Fa-f]&[0-9A-Fa-f]&[0-9A-Fa-f]&[0-9A-Fa-f]&[0-9A-Fa-f]&[0-9A-Fa-f]`),
	regexp.MustCompile(`&#[0-9A-Fa-f]{6}`),
	regexp.MustCompile(`§#[0-9A-Fa-f]{6}`),
	regexp.MustCompile(`&[0-9a-fk-orA-FK-OR]`),
	regexp.MustCompile(`§[0-9a-fk-orA-FK-OR]`),
	regexp.MustCompile(`[❖⏩⏪]`),
}

func stripOnce(text string) string {
	for _, re := range stripPatterns {
		text = re.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(text)
}

// Strip removes all formatting codes and decorative glyphs and trims the
// result. Removal repeats until nothing changes, so codes spliced together by
// an earlier removal (as in "&&cc") are removed too.
func Strip(text string) string {
	if text == "" {
		return ""
	}
	for {
		next := stripOnce(text)
		if next == text {
			return next
		}
		text = next
	}
}

// ToAmpersand replaces every § with &. Literal markers are converted too.
func ToAmpersand(text string) string {
	return strings.ReplaceAll(text, string(Section), string(Ampersand))
}

// ToSection replaces every & with §. Literal markers are converted too.
func ToSection(text string) string {
	return strings.ReplaceAll(text, string(Ampersand), string(Section))
}
