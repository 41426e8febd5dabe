// ABOUTME: Tests for translation lookup, language resolution and locale formatting
// ABOUTME: Covers fallbacks for missing keys and unsupported languages

package i18n

import (
	"testing"
	"time"
)

func TestGet(t *testing.T) {
	t.Parallel()

	es := New(Spanish)
	en := New(English)

	if got := es.Get("online"); got != "En línea" {
		t.Errorf("es online = %q", got)
	}
	if got := en.Get("noDescription"); got != "No description" {
		t.Errorf("en noDescription = %q", got)
	}
	if got := en.Get("missingKey"); got != "missingKey" {
		t.Errorf("missing key should fall back to itself, got %q", got)
	}
}

func TestTablesHaveSameKeys(t *testing.T) {
	t.Parallel()

	for key := range translations[Spanish] {
		if _, ok := translations[English][key]; !ok {
			t.Errorf("key %q missing in English", key)
		}
	}
	for key := range translations[English] {
		if _, ok := translations[Spanish][key]; !ok {
			t.Errorf("key %q missing in Spanish", key)
		}
	}
}

func TestNewUnknownLanguage(t *testing.T) {
	t.Parallel()

	if got := New("fr").Lang(); got != Default {
		t.Errorf("New(fr).Lang() = %q; want %q", got, Default)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Lang
		ok   bool
	}{
		{"es", Spanish, true},
		{"en", English, true},
		{"EN-us", English, true},
		{"es-MX", Spanish, true},
		{"fr", "", false},
		{"", "", false},
		{"not a tag!", "", false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Parse(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		explicit string
		cookie   string
		accept   string
		fallback Lang
		want     Lang
	}{
		{"explicit wins", "en", "es", "es-ES", Spanish, English},
		{"cookie next", "", "en", "es-ES", Spanish, English},
		{"invalid explicit skipped", "xx!", "en", "", Spanish, English},
		{"accept language", "", "", "en-GB,en;q=0.9", Spanish, English},
		{"accept language spanish", "", "", "es-AR,es;q=0.8", English, Spanish},
		{"no match uses fallback", "", "", "ja-JP", English, English},
		{"nothing uses fallback", "", "", "", English, English},
		{"unknown fallback uses default", "", "", "", "fr", Default},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Resolve(tt.explicit, tt.cookie, tt.accept, tt.fallback); got != tt.want {
				t.Errorf("Resolve = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestToggle(t *testing.T) {
	t.Parallel()

	if Toggle(Spanish) != English || Toggle(English) != Spanish {
		t.Error("Toggle should swap es and en")
	}
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	if got := New(English).FormatNumber(31337); got != "31,337" {
		t.Errorf("en FormatNumber = %q", got)
	}
	if got := New(Spanish).FormatNumber(200000); got != "200.000" {
		t.Errorf("es FormatNumber = %q", got)
	}
	if got := New(English).FormatNumber(7); got != "7" {
		t.Errorf("en FormatNumber(7) = %q", got)
	}
}

func TestFormatTime(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 5, 1, 9, 5, 3, 0, time.UTC)
	if got := New(Spanish).FormatTime(ts, time.UTC); got != "09:05:03" {
		t.Errorf("FormatTime = %q", got)
	}
}

func TestButton(t *testing.T) {
	t.Parallel()

	es, en := New(Spanish), New(English)
	if es.Label() != "ES" || en.Label() != "EN" {
		t.Error("unexpected labels")
	}
	if es.Flag() != "🇪🇸" || en.Flag() != "🇺🇸" {
		t.Error("unexpected flags")
	}
	if es.Get("switchLanguage") != "Cambiar a inglés" {
		t.Errorf("es switchLanguage = %q", es.Get("switchLanguage"))
	}
}
