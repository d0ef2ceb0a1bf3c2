package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// RequiredKeys lists every string the storefront renders.
var RequiredKeys = []string{
	"about",
	"gemstones",
	"contact",
	"title",
	"tagline",
	"explore",
	"ourProducts",
	"addToCart",
	"checkout",
	"cartEmpty",
	"total",
	"placeOrder",
	"contactUs",
	"search",
	"logoAlt",
}

//go:embed locales/*.yaml
var embeddedLocales embed.FS

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle is an immutable (locale, key) -> string table.
type Bundle struct {
	messages map[Locale]map[string]string
}

// LoadEmbedded loads the locale files compiled into the binary and checks
// that every supported locale defines every required key.
func LoadEmbedded() (*Bundle, error) {
	b, err := LoadFromFS(embeddedLocales)
	if err != nil {
		return nil, err
	}
	if err := b.Validate(RequiredKeys); err != nil {
		return nil, err
	}
	return b, nil
}

// LoadFromFS reads locales/<code>.yaml files from fsys. Only the default
// locale is mandatory; gaps elsewhere are covered by fallback.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale files: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}
	sort.Strings(paths)

	b := &Bundle{messages: map[Locale]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		if err := b.addFile(p, data); err != nil {
			return nil, err
		}
	}

	if _, ok := b.messages[Default]; !ok {
		return nil, fmt.Errorf("default locale %s is not defined", Default)
	}
	return b, nil
}

func (b *Bundle) addFile(p string, data []byte) error {
	var f localeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse %s: %w", p, err)
	}

	loc, err := Parse(f.Locale)
	if err != nil {
		return fmt.Errorf("%s: %w", p, err)
	}
	if want := strings.TrimSuffix(path.Base(p), path.Ext(p)); string(loc) != want {
		return fmt.Errorf("%s: locale %q must match file name %q", p, loc, want)
	}
	if _, dup := b.messages[loc]; dup {
		return fmt.Errorf("%s: locale %q defined twice", p, loc)
	}

	msgs := make(map[string]string, len(f.Messages))
	for k, v := range f.Messages {
		k = strings.TrimSpace(k)
		if k == "" {
			return fmt.Errorf("%s: blank message key", p)
		}
		msgs[k] = v
	}
	b.messages[loc] = msgs
	return nil
}

// Validate reports the first supported locale that lacks one of keys.
func (b *Bundle) Validate(keys []string) error {
	for _, loc := range supported {
		msgs, ok := b.messages[loc]
		if !ok {
			return fmt.Errorf("locale %s is not defined", loc)
		}
		for _, k := range keys {
			if _, ok := msgs[k]; !ok {
				return fmt.Errorf("%w: %s/%s", ErrMissingTranslationKey, loc, k)
			}
		}
	}
	return nil
}

// Lookup resolves key for loc, falling back to the default locale.
func (b *Bundle) Lookup(loc Locale, key string) (string, error) {
	if v, ok := b.messages[loc][key]; ok {
		return v, nil
	}
	if loc != Default {
		if v, ok := b.messages[Default][key]; ok {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %s/%s", ErrMissingTranslationKey, loc, key)
}

// Resolve is Lookup that never fails: an unknown key renders as itself.
func (b *Bundle) Resolve(loc Locale, key string) string {
	v, err := b.Lookup(loc, key)
	if err != nil {
		return key
	}
	return v
}

// Strings resolves every required key for loc.
func (b *Bundle) Strings(loc Locale) map[string]string {
	out := make(map[string]string, len(RequiredKeys))
	for _, k := range RequiredKeys {
		out[k] = b.Resolve(loc, k)
	}
	return out
}
