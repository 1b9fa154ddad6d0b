// Package i18n picks a message catalog for a request and formats messages from it.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Bundle holds the catalogs of every supported language.
type Bundle struct {
	tags     []language.Tag
	matcher  language.Matcher
	catalog  *catalog.Builder
	fallback language.Tag
}

// NewBundle loads the built-in catalogs. defaultLocale is used when the
// request expresses no supported preference.
func NewBundle(defaultLocale string) (*Bundle, error) {
	fallback, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("invalid default locale %q: %w", defaultLocale, err)
	}

	b := &Bundle{catalog: catalog.NewBuilder(catalog.Fallback(language.English))}

	// Missing translations fall back to the English text.
	base := catalogs[language.English]
	for _, tag := range supported {
		msgs := catalogs[tag]
		for key, text := range base {
			if translated, ok := msgs[key]; ok {
				text = translated
			}
			if err := b.catalog.SetString(tag, key, text); err != nil {
				return nil, fmt.Errorf("failed to load message %s/%s: %w", tag, key, err)
			}
		}
	}

	b.fallback = language.English
	b.tags = append(b.tags, supported...)
	for _, tag := range supported {
		if tag == fallback {
			b.fallback = tag
		}
	}
	// The first tag of a matcher is its default.
	ordered := []language.Tag{b.fallback}
	for _, tag := range supported {
		if tag != b.fallback {
			ordered = append(ordered, tag)
		}
	}
	b.tags = ordered
	b.matcher = language.NewMatcher(ordered)

	return b, nil
}

// Localizer returns the localizer best matching an Accept-Language header value.
func (b *Bundle) Localizer(acceptLanguage string) *Localizer {
	tag := b.fallback
	if prefs, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(prefs) > 0 {
		_, idx, confidence := b.matcher.Match(prefs...)
		if confidence != language.No {
			tag = b.tags[idx]
		}
	}
	return b.ForTag(tag)
}

// ForTag returns a localizer for a supported tag.
func (b *Bundle) ForTag(tag language.Tag) *Localizer {
	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b.catalog)),
	}
}

// Localizer formats messages in one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// Lang is the BCP 47 code of the localizer's language.
func (l *Localizer) Lang() string {
	return l.tag.String()
}

// T formats the message stored under key. Unknown keys are returned verbatim.
func (l *Localizer) T(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}
