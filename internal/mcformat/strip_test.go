// ABOUTME: Tests for code stripping, line stripping, and marker conversion
// ABOUTME: Includes idempotence and render/strip inversion checks

package mcformat

import (
	"strings"
	"testing"
)

func TestStrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"glyph next to code", "&c❖Name", "Name"},
		{"per-digit hex", "&x&f&f&0&0&0&0Red", "Red"},
		{"compact hex", "&#00FF00green §#abcdefblue", "green blue"},
		{"legacy codes both markers", "  &aHello §lWorld&R  ", "Hello World"},
		{"upper case codes", "&AHi§KThere", "HiThere"},
		{"unknown code kept", "&zkeep", "&zkeep"},
		{"spliced code removed", "&&cc", ""},
		{"glyph splice", "&❖c", ""},
		{"all glyphs", "⏩ Play ⏪ ❖", "Play"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Strip(tt.in); got != tt.want {
				t.Errorf("Strip(%q) = %q; want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"&&cc",
		"§§§lll text",
		"&x&x&f&f&0&0&0&0&f",
		"&#&#00ff0000ff00",
		"❖&❖&❖cc",
		" &a  &b ",
		"plain & simple",
	}
	for _, in := range inputs {
		once := Strip(in)
		if twice := Strip(once); twice != once {
			t.Errorf("Strip not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestStripRemovesRenderedCodes(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"&aHello &lWorld§r!",
		"&x&1&2&3&4&5&6hex &#A0B0C0more §#0f0f0fend",
		"§k§m§n§oall&rdone",
	}
	for _, in := range inputs {
		for _, out := range []string{Strip(Render(in)), Strip(in)} {
			if strings.ContainsAny(out, "&§") {
				t.Errorf("markers remain for %q: %q", in, out)
			}
		}
	}
}

func TestStripLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"nil", nil, DefaultPlaceholder},
		{"empty", []string{}, DefaultPlaceholder},
		{"only codes", []string{"&a", "§l "}, DefaultPlaceholder},
		{"joined", []string{"&aHello", " &bWorld "}, "Hello World"},
		{"blank first line", []string{"", "&eSecond"}, "Second"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripLines(tt.lines); got != tt.want {
				t.Errorf("StripLines(%q) = %q; want %q", tt.lines, got, tt.want)
			}
		})
	}

	f := NewFormatter("No description")
	if got := f.StripLines(nil); got != "No description" {
		t.Errorf("Formatter.StripLines(nil) = %q", got)
	}
}

func TestMarkerConversion(t *testing.T) {
	t.Parallel()

	if got := ToAmpersand("§aHi§r"); got != "&aHi&r" {
		t.Errorf("ToAmpersand = %q", got)
	}
	if got := ToSection("&aHi&r"); got != "§aHi§r" {
		t.Errorf("ToSection = %q", got)
	}
	if ToAmpersand("") != "" || ToSection("") != "" {
		t.Error("empty input should stay empty")
	}

	// Best-effort only: literal markers are converted as well.
	if got := ToSection("Tom & Jerry"); got != "Tom § Jerry" {
		t.Errorf("ToSection literal = %q", got)
	}
}
