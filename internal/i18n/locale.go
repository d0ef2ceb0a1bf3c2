// Package i18n holds the closed set of storefront locales and the
// (locale, key) -> string tables used to render the storefront.
package i18n

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

type Locale string

const (
	English Locale = "en"
	French  Locale = "fr"
	Spanish Locale = "es"
	German  Locale = "de"

	Default = English
)

var (
	ErrInvalidLocale         = errors.New("invalid locale")
	ErrMissingTranslationKey = errors.New("missing translation key")
)

var supported = []Locale{English, French, Spanish, German}

var tags = map[Locale]language.Tag{
	English: language.English,
	French:  language.French,
	Spanish: language.Spanish,
	German:  language.German,
}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.French,
	language.Spanish,
	language.German,
})

// Supported returns the selectable locales in display order.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// Parse validates code against the supported set.
func Parse(code string) (Locale, error) {
	l := Locale(strings.ToLower(strings.TrimSpace(code)))
	if _, ok := tags[l]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidLocale, code)
	}
	return l, nil
}

func (l Locale) Valid() bool {
	_, ok := tags[l]
	return ok
}

func (l Locale) Tag() language.Tag {
	if t, ok := tags[l]; ok {
		return t
	}
	return language.English
}

// Label is the short upper-case name shown in the language selector.
func (l Locale) Label() string { return strings.ToUpper(string(l)) }

// Detect picks the initial locale from an Accept-Language header value.
// Anything unparsable or unsupported yields Default.
func Detect(acceptLanguage string) Locale {
	acceptLanguage = strings.TrimSpace(acceptLanguage)
	if acceptLanguage == "" {
		return Default
	}

	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return Default
	}

	_, idx, conf := matcher.Match(prefs...)
	if conf == language.No {
		return Default
	}
	return supported[idx]
}
