package utils

import (
	"embed"
	"fmt"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

//go:embed locales/*.yaml
var locales embed.FS

var (
	bundle     *i18n.Bundle
	bundleOnce sync.Once
)

// InitI18NBundle loads the embedded message files. It is safe to call more
// than once.
func InitI18NBundle() {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
		for _, name := range []string{"en.yaml", "de.yaml"} {
			data, err := locales.ReadFile("locales/" + name)
			if err != nil {
				panic(err)
			}
			bundle.MustParseMessageFileBytes(data, name)
		}
	})
}

// NewLocalizer returns a localizer for the preferred languages, e.g. the
// value of an Accept-Language header.
func NewLocalizer(langs ...string) *i18n.Localizer {
	InitI18NBundle()
	return i18n.NewLocalizer(bundle, langs...)
}

// MetricLabel returns the localized label of a metric, or the metric name
// when no translation exists.
func MetricLabel(loc *i18n.Localizer, metric string) string {
	label, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: fmt.Sprintf("metric_%s", metric),
	})
	if err != nil {
		return metric
	}
	return label
}
