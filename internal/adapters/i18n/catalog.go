package i18n

import (
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"onboarding/internal/core/domain/validation"
)

//go:embed messages.yaml
var embedded []byte

var (
	ErrNoLocales           = errors.New("catalog defines no locales")
	ErrUnsupportedLocale   = errors.New("unsupported locale")
	ErrMissingMessage      = errors.New("catalog is missing a message")
	ErrInvalidCatalogShape = errors.New("invalid catalog structure")
)

// Catalogs holds one message catalog and one field validator per locale.
type Catalogs struct {
	locales    []string
	matcher    language.Matcher
	messages   map[string]validation.Messages
	validators map[string]*validation.Validator
}

// NewEmbedded loads the catalog shipped with the binary.
func NewEmbedded(defaultLocale string, policy validation.Policy) (*Catalogs, error) {
	return Load(embedded, defaultLocale, policy)
}

// Load parses a YAML document keyed by locale. Nested keys are flattened with
// dots. Every locale must carry the complete validation message set.
func Load(data []byte, defaultLocale string, policy validation.Policy) (*Catalogs, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(doc) == 0 {
		return nil, ErrNoLocales
	}

	defaultLocale, err := closestLocale(doc, defaultLocale)
	if err != nil {
		return nil, err
	}

	c := &Catalogs{
		messages:   make(map[string]validation.Messages, len(doc)),
		validators: make(map[string]*validation.Validator, len(doc)),
	}

	// The matcher falls back to its first tag, so the default leads.
	c.locales = append(c.locales, defaultLocale)
	for locale := range doc {
		if locale != defaultLocale {
			c.locales = append(c.locales, locale)
		}
	}
	slices.Sort(c.locales[1:])

	tags := make([]language.Tag, 0, len(c.locales))
	for _, locale := range c.locales {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrUnsupportedLocale, locale, err)
		}
		tags = append(tags, tag)

		tree, ok := doc[locale].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: locale %q: expected map, got %T", ErrInvalidCatalogShape, locale, doc[locale])
		}

		messages := validation.Messages{}
		if err := flatten("", tree, messages); err != nil {
			return nil, fmt.Errorf("locale %q: %w", locale, err)
		}
		if err := complete(messages); err != nil {
			return nil, fmt.Errorf("locale %q: %w", locale, err)
		}

		c.messages[locale] = messages
		c.validators[locale] = validation.New(messages, policy)
	}
	c.matcher = language.NewMatcher(tags)

	return c, nil
}

// closestLocale maps a configured tag such as "es-CO" onto the catalog key
// that serves it best.
func closestLocale(doc map[string]any, requested string) (string, error) {
	requested = strings.ToLower(strings.TrimSpace(requested))
	if _, ok := doc[requested]; ok {
		return requested, nil
	}

	want, err := language.Parse(requested)
	if err != nil {
		return "", fmt.Errorf("%w: default locale %q: %v", ErrUnsupportedLocale, requested, err)
	}

	keys := make([]string, 0, len(doc))
	tags := make([]language.Tag, 0, len(doc))
	for _, key := range slices.Sorted(maps.Keys(doc)) {
		tag, err := language.Parse(key)
		if err != nil {
			continue
		}
		keys = append(keys, key)
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return "", fmt.Errorf("%w: default locale %q", ErrUnsupportedLocale, requested)
	}

	_, idx, confidence := language.NewMatcher(tags).Match(want)
	if confidence == language.No {
		return "", fmt.Errorf("%w: default locale %q", ErrUnsupportedLocale, requested)
	}
	return keys[idx], nil
}

func flatten(prefix string, tree map[string]any, out validation.Messages) error {
	for key, val := range tree {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := val.(type) {
		case string:
			out[full] = v
		case map[string]any:
			if err := flatten(full, v, out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: key %q: unexpected %T", ErrInvalidCatalogShape, full, val)
		}
	}
	return nil
}

func complete(messages validation.Messages) error {
	for _, field := range validation.All() {
		for _, key := range []string{validation.RequiredKey(field), validation.InvalidKey(field)} {
			if _, ok := messages[key]; !ok {
				return fmt.Errorf("%w: %s", ErrMissingMessage, key)
			}
		}
	}
	return nil
}

func (c *Catalogs) Default() string {
	return c.locales[0]
}

// Locales lists the supported locales, default first.
func (c *Catalogs) Locales() []string {
	return slices.Clone(c.locales)
}

func (c *Catalogs) Supports(locale string) bool {
	_, ok := c.messages[locale]
	return ok
}

// Negotiate picks the best supported locale. An explicit choice (for example
// a query parameter) wins over the Accept-Language header; anything that
// matches nothing yields the default locale.
func (c *Catalogs) Negotiate(explicit, acceptLanguage string) string {
	_, idx := language.MatchStrings(c.matcher, explicit, acceptLanguage)
	if idx < 0 || idx >= len(c.locales) {
		return c.Default()
	}
	return c.locales[idx]
}

// Validator returns the field validator of the locale, or the default one.
func (c *Catalogs) Validator(locale string) *validation.Validator {
	if !c.Supports(locale) {
		locale = c.Default()
	}
	return c.validators[locale]
}

func (c *Catalogs) Message(locale, key string, args ...string) string {
	if !c.Supports(locale) {
		locale = c.Default()
	}
	return c.messages[locale].Message(key, args...)
}
