// Package messages holds the user-facing strings of the dialect CLI,
// localised for American and British English.
package messages

import (
	"embed"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// Message IDs.
const (
	NoTextToTranslate = "NoTextToTranslate"
	NothingToChange   = "NothingToChange"
	TermsChanged      = "TermsChanged"
	HighlightLegend   = "HighlightLegend"
	CacheExported     = "CacheExported"
	CacheImported     = "CacheImported"
)

//go:embed active.*.toml
var localeFS embed.FS

var files = []string{"active.en-US.toml", "active.en-GB.toml"}

// Catalog is a thin wrapper around go-i18n's Bundle/Localizer.
type Catalog struct {
	bundle   *i18n.Bundle
	fallback language.Tag
	logger   zerolog.Logger
}

// New loads the embedded message files. American English is the fallback.
func New(logger zerolog.Logger) (*Catalog, error) {
	bundle := i18n.NewBundle(language.AmericanEnglish)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("loading %s: %w", file, err)
		}
	}

	return &Catalog{
		bundle:   bundle,
		fallback: language.AmericanEnglish,
		logger:   logger,
	}, nil
}

// T renders the message id for tag. count selects the plural form and is
// exposed to the template as .Count; pass -1 for messages without one.
// Unknown ids render as the id itself.
func (c *Catalog) T(tag language.Tag, id string, count int, data map[string]any) string {
	localizer := i18n.NewLocalizer(c.bundle, tag.String(), c.fallback.String())

	cfg := &i18n.LocalizeConfig{MessageID: id}
	if count >= 0 {
		if data == nil {
			data = map[string]any{}
		}
		data["Count"] = count
		cfg.PluralCount = count
	}
	cfg.TemplateData = data

	msg, err := localizer.Localize(cfg)
	if err != nil {
		c.logger.Warn().Err(err).Str("id", id).Str("locale", tag.String()).Msg("Localize failed")
		return id
	}
	return msg
}

// Text is T for messages without a count.
func (c *Catalog) Text(tag language.Tag, id string) string {
	return c.T(tag, id, -1, nil)
}
