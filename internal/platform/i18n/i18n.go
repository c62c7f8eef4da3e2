package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// Default es el idioma base; el resto cae a este cuando falta una key.
var Default = language.English

//go:embed locales/*.yaml
var localesFS embed.FS

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

var (
	cat       catalog.Catalog
	supported []language.Tag
	matcher   language.Matcher
)

func init() {
	c, tags, err := load(localesFS)
	if err != nil {
		panic(err)
	}
	cat = c
	supported = tags
	matcher = language.NewMatcher(tags)
}

func load(fsys fs.FS) (catalog.Catalog, []language.Tag, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, nil, fmt.Errorf("i18n: glob locales: %w", err)
	}
	sort.Strings(paths)

	b := catalog.NewBuilder(catalog.Fallback(Default))
	// Default primero: NewMatcher usa el primer tag como fallback.
	tags := []language.Tag{Default}

	for _, p := range paths {
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("i18n: read %s: %w", p, err)
		}
		var lf localeFile
		if err := yaml.Unmarshal(raw, &lf); err != nil {
			return nil, nil, fmt.Errorf("i18n: parse %s: %w", p, err)
		}
		tag, err := language.Parse(lf.Locale)
		if err != nil {
			return nil, nil, fmt.Errorf("i18n: locale %q in %s: %w", lf.Locale, p, err)
		}
		for key, msg := range lf.Messages {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, nil, fmt.Errorf("i18n: %s %s: %w", lf.Locale, key, err)
			}
		}
		if tag != Default {
			tags = append(tags, tag)
		}
	}
	return b, tags, nil
}

// Supported devuelve los idiomas con catálogo.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Resolve elige idioma: primero el parámetro explícito (?lang= / --lang), después Accept-Language.
func Resolve(lang, acceptLanguage string) language.Tag {
	if lang = strings.TrimSpace(lang); lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			return match(tag)
		}
	}
	if acceptLanguage = strings.TrimSpace(acceptLanguage); acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
			return match(tags...)
		}
	}
	return Default
}

func match(tags ...language.Tag) language.Tag {
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return supported[idx]
}

// Labels traduce keys de display para un idioma.
type Labels struct {
	tag language.Tag
	p   *message.Printer
}

func For(tag language.Tag) Labels {
	return Labels{tag: tag, p: message.NewPrinter(tag, message.Catalog(cat))}
}

func (l Labels) Tag() language.Tag {
	return l.tag
}

// Text devuelve la traducción de key; si no existe devuelve la key tal cual.
func (l Labels) Text(key string) string {
	if l.p == nil {
		return key
	}
	return l.p.Sprintf(key)
}
