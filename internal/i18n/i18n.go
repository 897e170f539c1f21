// Package i18n resolves message keys to localized strings.
//
// Lookups never fail: a key missing from the selected language falls back to
// English, and a key missing there too is returned verbatim so the gap is
// visible in the rendered output.
package i18n

import (
	"fmt"
	"strconv"
	"strings"
)

// Language is a supported UI language tag.
type Language string

const (
	English    Language = "en"
	Vietnamese Language = "vi"
	Japanese   Language = "ja"
)

// ParseLanguage maps a raw tag to a supported language, falling back to the
// provided default for anything unknown.
func ParseLanguage(raw string, fallback Language) Language {
	switch Language(strings.ToLower(strings.TrimSpace(raw))) {
	case English:
		return English
	case Vietnamese:
		return Vietnamese
	case Japanese:
		return Japanese
	default:
		return fallback
	}
}

// IsValid reports whether the language is one of the supported tags.
func (l Language) IsValid() bool {
	switch l {
	case English, Vietnamese, Japanese:
		return true
	}
	return false
}

// Key identifies a message in the translation tables.
type Key string

// Params maps placeholder names to values substituted into the message.
type Params map[string]any

// T resolves key for the given language and substitutes {name} placeholders.
// Unresolved placeholders are left verbatim.
func T(lang Language, key Key, params ...Params) string {
	text, ok := tables[lang][key]
	if !ok {
		text, ok = tables[English][key]
	}
	if !ok {
		text = string(key)
	}
	for _, p := range params {
		for name, value := range p {
			text = strings.ReplaceAll(text, "{"+name+"}", stringify(value))
		}
	}
	return text
}

// Has reports whether the key exists for the language (without fallback).
func Has(lang Language, key Key) bool {
	_, ok := tables[lang][key]
	return ok
}

// Languages lists all supported languages.
func Languages() []Language {
	return []Language{English, Vietnamese, Japanese}
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
