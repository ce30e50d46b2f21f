// Package i18n resolves the request locale and renders user-facing messages
// from the English and Polish catalogs. Unsupported locales fall back to
// English.
package i18n

import (
	"context"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported lists the catalog languages; the first entry is the fallback.
var Supported = []language.Tag{language.English, language.Polish}

var (
	matcher = language.NewMatcher(Supported)
	cat     = newCatalog()
)

type key struct{}

var localeKey = key{}

// Match maps a free-form locale string ("pl", "pl-PL", "en_GB", "") onto a
// supported tag.
func Match(locale string) language.Tag {
	if locale == "" {
		return Supported[0]
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Supported[0]
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Supported[0]
	}
	return Supported[idx]
}

// WithLocale stores the resolved tag in ctx.
func WithLocale(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, localeKey, tag)
}

// FromContext returns the tag set by WithLocale, or English.
func FromContext(ctx context.Context) language.Tag {
	if tag, ok := ctx.Value(localeKey).(language.Tag); ok {
		return tag
	}
	return Supported[0]
}

// Printer returns a printer bound to the context locale and the message
// catalog.
func Printer(ctx context.Context) *message.Printer {
	return message.NewPrinter(FromContext(ctx), message.Catalog(cat))
}

// Sprintf renders the message registered under key.
func Sprintf(ctx context.Context, key string, args ...any) string {
	return Printer(ctx).Sprintf(key, args...)
}

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(Supported[0]))
	for _, m := range messages {
		if err := b.SetString(language.English, m.key, m.en); err != nil {
			panic(err)
		}
		if err := b.SetString(language.Polish, m.key, m.pl); err != nil {
			panic(err)
		}
	}
	return b
}
