// Package policies defines the catalog of legal documents the wizard can draft.
package policies

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"
	"slices"

	"github.com/JaimeStill/charter/internal/locale"
)

// Kind identifies a document type.
type Kind string

// Supported document kinds.
const (
	PrivacyPolicy      Kind = "privacy-policy"
	TermsConditions    Kind = "terms-conditions"
	CookieConsent      Kind = "cookie-consent"
	CookiePolicy       Kind = "cookie-policy"
	Disclaimer         Kind = "disclaimer"
	EULA               Kind = "eula"
	ReturnRefundPolicy Kind = "return-refund"
)

// ErrUnknownKind is returned when a kind is not in the catalog.
var ErrUnknownKind = errors.New("unknown policy kind")

// Option is one catalog entry: the document title used when drafting, an
// icon reference for the presentation layer, and per-locale labels.
type Option struct {
	Kind   Kind                     `json:"kind"`
	Title  string                   `json:"title"`
	Icon   string                   `json:"icon"`
	Labels map[locale.Locale]string `json:"labels"`
}

// Label returns the option's display label for l, falling back to English.
func (o Option) Label(l locale.Locale) string {
	if v, ok := o.Labels[l]; ok {
		return v
	}
	return o.Labels[locale.English]
}

var catalog = []Option{
	{
		Kind:  PrivacyPolicy,
		Title: "Privacy Policy",
		Icon:  "shield",
		Labels: map[locale.Locale]string{
			locale.English: "Privacy Policy",
			locale.French:  "Politique de Confidentialité",
			locale.Russian: "Политика конфиденциальности",
		},
	},
	{
		Kind:  TermsConditions,
		Title: "Terms and Conditions",
		Icon:  "file-text",
		Labels: map[locale.Locale]string{
			locale.English: "Terms & Conditions",
			locale.French:  "Termes et Conditions",
			locale.Russian: "Условия использования",
		},
	},
	{
		Kind:  CookiePolicy,
		Title: "Cookies Policy",
		Icon:  "cookie",
		Labels: map[locale.Locale]string{
			locale.English: "Cookies Policy",
			locale.French:  "Politique des Cookies",
			locale.Russian: "Политика использования файлов cookie",
		},
	},
	{
		Kind:  ReturnRefundPolicy,
		Title: "Return & Refund Policy",
		Icon:  "refresh-ccw",
		Labels: map[locale.Locale]string{
			locale.English: "Return Policy",
			locale.French:  "Politique de Retour",
			locale.Russian: "Политика возврата",
		},
	},
	{
		Kind:  Disclaimer,
		Title: "Disclaimer",
		Icon:  "alert-triangle",
		Labels: map[locale.Locale]string{
			locale.English: "Disclaimer",
			locale.French:  "Avis de non-responsabilité",
			locale.Russian: "Отказ от ответственности",
		},
	},
	{
		Kind:  EULA,
		Title: "EULA (End-User License Agreement)",
		Icon:  "cpu",
		Labels: map[locale.Locale]string{
			locale.English: "EULA",
			locale.French:  "CLUF (EULA)",
			locale.Russian: "Лицензионное соглашение (EULA)",
		},
	},
	{
		Kind:  CookieConsent,
		Title: "Cookie Consent Banner Text",
		Icon:  "mouse-pointer-click",
		Labels: map[locale.Locale]string{
			locale.English: "Consent Banner",
			locale.French:  "Bannière de Consentement",
			locale.Russian: "Баннер согласия",
		},
	},
}

// Catalog returns a copy of every option in display order.
func Catalog() []Option {
	out := make([]Option, len(catalog))
	for i, o := range catalog {
		out[i] = o.clone()
	}
	return out
}

// Find returns the catalog option for k.
func Find(k Kind) (Option, error) {
	i := slices.IndexFunc(catalog, func(o Option) bool { return o.Kind == k })
	if i < 0 {
		return Option{}, ErrUnknownKind
	}
	return catalog[i].clone(), nil
}

func (o Option) clone() Option {
	o.Labels = maps.Clone(o.Labels)
	return o
}

// Parse validates a string as a catalog kind.
func Parse(s string) (Kind, error) {
	o, err := Find(Kind(s))
	if err != nil {
		return "", err
	}
	return o.Kind, nil
}

// Valid reports whether k is a catalog kind.
func (k Kind) Valid() bool {
	_, err := Find(k)
	return err == nil
}

// Title returns the English document title for k, or the raw kind when unknown.
func (k Kind) Title() string {
	if o, err := Find(k); err == nil {
		return o.Title
	}
	return string(k)
}

// UnmarshalJSON validates that the decoded string is a catalog kind.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := Parse(raw)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// MapHTTPStatus maps catalog errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrUnknownKind) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
