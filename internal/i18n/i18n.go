// ABOUTME: Translator for the two UI languages with locale-aware number and time formatting
// ABOUTME: Language resolution from query, cookie and Accept-Language via x/text/language

package i18n

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Lang is a supported UI language code.
type Lang string

const (
	Spanish Lang = "es"
	English Lang = "en"
)

// Default is the language used when nothing else matches.
const Default = Spanish

var (
	supported = []language.Tag{language.Spanish, language.English}
	matcher   = language.NewMatcher(supported)
	locales   = map[Lang]language.Tag{
		Spanish: language.MustParse("es-ES"),
		English: language.AmericanEnglish,
	}
)

// Parse returns the supported language for s, if any. Region subtags are
// ignored ("en-GB" is English).
func Parse(s string) (Lang, bool) {
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch base.String() {
	case "es":
		return Spanish, true
	case "en":
		return English, true
	}
	return "", false
}

// Resolve picks the UI language: explicit choice first, then the cookie,
// then the Accept-Language header, then fallback.
func Resolve(explicit, cookie, acceptLanguage string, fallback Lang) Lang {
	for _, candidate := range []string{explicit, cookie} {
		if l, ok := Parse(candidate); ok {
			return l
		}
	}
	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No {
				if idx == 0 {
					return Spanish
				}
				return English
			}
		}
	}
	if _, ok := translations[fallback]; ok {
		return fallback
	}
	return Default
}

// Toggle returns the other language.
func Toggle(l Lang) Lang {
	if l == Spanish {
		return English
	}
	return Spanish
}

// Translator looks up strings and formats values for one language.
type Translator struct {
	lang    Lang
	printer *message.Printer
}

// New returns a Translator for l, falling back to Default for unknown codes.
func New(l Lang) *Translator {
	if _, ok := translations[l]; !ok {
		l = Default
	}
	return &Translator{lang: l, printer: message.NewPrinter(locales[l])}
}

// Lang returns the translator's language.
func (t *Translator) Lang() Lang {
	return t.lang
}

// Get returns the string for key, or key itself when it has no translation.
func (t *Translator) Get(key string) string {
	if s, ok := translations[t.lang][key]; ok && s != "" {
		return s
	}
	return key
}

// FormatNumber groups digits per locale: 31.337 (es) or 31,337 (en).
func (t *Translator) FormatNumber(n int) string {
	return t.printer.Sprintf("%d", n)
}

// FormatTime renders the wall-clock time as HH:MM:SS in loc.
func (t *Translator) FormatTime(ts time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return ts.In(loc).Format("15:04:05")
}

// Flag returns the flag emoji shown on the language button.
func (t *Translator) Flag() string {
	if t.lang == Spanish {
		return "🇪🇸"
	}
	return "🇺🇸"
}

// Label returns the short code shown on the language button.
func (t *Translator) Label() string {
	if t.lang == Spanish {
		return "ES"
	}
	return "EN"
}
