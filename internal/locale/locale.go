// Package locale defines the supported interface languages and their label tables.
package locale

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strings"
)

// Locale identifies an interface and document language.
type Locale string

// Supported locales.
const (
	English Locale = "en"
	French  Locale = "fr"
	Russian Locale = "ru"
)

// Default is the locale a new session starts with.
const Default = English

// ErrUnknown is returned when a locale code is not supported.
var ErrUnknown = errors.New("unknown locale")

// Option describes a locale for a language picker.
type Option struct {
	Code  Locale `json:"code"`
	Label string `json:"label"`
	Flag  string `json:"flag"`
}

var options = []Option{
	{Code: English, Label: "English", Flag: "🇬🇧"},
	{Code: French, Label: "Français", Flag: "🇫🇷"},
	{Code: Russian, Label: "Русский", Flag: "🇷🇺"},
}

var languages = map[Locale]string{
	English: "English",
	French:  "French",
	Russian: "Russian",
}

// Locales returns the supported locales in picker order.
func Locales() []Option {
	return slices.Clone(options)
}

// Parse validates a locale code. Matching ignores case and surrounding space.
func Parse(s string) (Locale, error) {
	v := Locale(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := languages[v]; !ok {
		return "", ErrUnknown
	}
	return v, nil
}

// UnmarshalJSON validates that the decoded string is a supported locale.
func (l *Locale) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := Parse(raw)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// Language returns the English name of the language, used when instructing
// the generation service which language to write in.
func (l Locale) Language() string {
	if name, ok := languages[l]; ok {
		return name
	}
	return languages[English]
}

// Text returns the label table for the locale, falling back to English.
func (l Locale) Text() Labels {
	if t, ok := labels[l]; ok {
		return t
	}
	return labels[English]
}

// MapHTTPStatus maps locale errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrUnknown) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
