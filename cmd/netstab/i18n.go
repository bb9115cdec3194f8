package main

import (
	"embed"
	"fmt"
	"path"

	"github.com/leonelquinteros/gotext"
	"github.com/plan-systems/klog"

	"github.com/escaperoom/netstab/config"
)

//go:embed locales/*/default.po
var locales embed.FS

// catalog resolves message keys for one locale, falling back to en_US for
// keys the locale does not translate.
type catalog struct {
	primary  *gotext.Po
	fallback *gotext.Po
}

// loadCatalog parses the embedded catalogue of locale. An unknown locale
// logs a warning and uses en_US alone.
func loadCatalog(locale string) *catalog {
	fallback := parsePo(config.DefaultLocale)
	if locale == config.DefaultLocale {
		return &catalog{primary: fallback, fallback: fallback}
	}

	primary := parsePo(locale)
	if primary == nil {
		klog.Warningf("netstab: no catalogue for locale %q, using %s", locale, config.DefaultLocale)
		primary = fallback
	}

	return &catalog{primary: primary, fallback: fallback}
}

func parsePo(locale string) *gotext.Po {
	raw, err := locales.ReadFile(path.Join("locales", locale, "default.po"))
	if err != nil {
		return nil
	}
	po := gotext.NewPo()
	po.Parse(raw)

	return po
}

// lookup returns the template for key. Unknown keys come back unchanged.
func (c *catalog) lookup(key string) string {
	if c.primary.IsTranslated(key) {
		return c.primary.Get(key)
	}

	return c.fallback.Get(key)
}

// get translates key and formats it with vars.
func (c *catalog) get(key string, vars ...interface{}) string {
	tpl := c.lookup(key)
	if len(vars) == 0 {
		return tpl
	}

	return fmt.Sprintf(tpl, vars...)
}
