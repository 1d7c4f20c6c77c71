// Package form holds the business details a user enters before generation.
// No field is required; Warnings reports advisory format issues only.
package form

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"time"
)

// DateLayout is the wire format of EffectiveDate.
const DateLayout = time.DateOnly

// Errors raised when coercing a field value.
var (
	ErrUnknownField    = errors.New("unknown form field")
	ErrInvalidPlatform = errors.New("platform must be Website, App, or Both")
	ErrInvalidDate     = errors.New("effective date must be YYYY-MM-DD")
)

// Platform is where the generated document will be published.
type Platform string

// Supported platforms.
const (
	PlatformWebsite Platform = "Website"
	PlatformApp     Platform = "App"
	PlatformBoth    Platform = "Both"
)

var platforms = []Platform{PlatformWebsite, PlatformApp, PlatformBoth}

// Platforms returns the supported platforms in display order.
func Platforms() []Platform {
	return slices.Clone(platforms)
}

// ParsePlatform validates a platform value.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(s)
	if !slices.Contains(platforms, p) {
		return "", ErrInvalidPlatform
	}
	return p, nil
}

// UnmarshalJSON validates that the decoded string is a supported platform.
func (p *Platform) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParsePlatform(raw)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Field names a single editable value of Data.
type Field string

// Editable fields, named as they appear on the wire.
const (
	FieldCompanyName   Field = "company_name"
	FieldWebsiteURL    Field = "website_url"
	FieldContactEmail  Field = "contact_email"
	FieldCountry       Field = "country"
	FieldAddress       Field = "address"
	FieldEffectiveDate Field = "effective_date"
	FieldPlatform      Field = "platform_type"
)

var fields = []Field{
	FieldCompanyName,
	FieldWebsiteURL,
	FieldContactEmail,
	FieldCountry,
	FieldAddress,
	FieldEffectiveDate,
	FieldPlatform,
}

// Fields returns every editable field in display order.
func Fields() []Field {
	return slices.Clone(fields)
}

// Data is the set of business details sent with a generation request.
type Data struct {
	CompanyName   string   `json:"company_name"`
	WebsiteURL    string   `json:"website_url" validate:"omitempty,url"`
	ContactEmail  string   `json:"contact_email" validate:"omitempty,email"`
	Country       string   `json:"country"`
	Address       string   `json:"address"`
	EffectiveDate string   `json:"effective_date" validate:"omitempty,datetime=2006-01-02"`
	Platform      Platform `json:"platform_type" validate:"oneof=Website App Both"`
}

// Defaults returns the initial form: effective date set to now, platform Website.
func Defaults(now time.Time) Data {
	return Data{
		EffectiveDate: now.Format(DateLayout),
		Platform:      PlatformWebsite,
	}
}

// Set assigns value to the named field. Text fields are stored verbatim.
// An empty effective date is accepted.
func (d *Data) Set(f Field, value string) error {
	switch f {
	case FieldCompanyName:
		d.CompanyName = value
	case FieldWebsiteURL:
		d.WebsiteURL = value
	case FieldContactEmail:
		d.ContactEmail = value
	case FieldCountry:
		d.Country = value
	case FieldAddress:
		d.Address = value
	case FieldEffectiveDate:
		if value != "" {
			if _, err := time.Parse(DateLayout, value); err != nil {
				return ErrInvalidDate
			}
		}
		d.EffectiveDate = value
	case FieldPlatform:
		p, err := ParsePlatform(value)
		if err != nil {
			return err
		}
		d.Platform = p
	default:
		return ErrUnknownField
	}
	return nil
}

// Get returns the current value of the named field.
func (d Data) Get(f Field) (string, error) {
	switch f {
	case FieldCompanyName:
		return d.CompanyName, nil
	case FieldWebsiteURL:
		return d.WebsiteURL, nil
	case FieldContactEmail:
		return d.ContactEmail, nil
	case FieldCountry:
		return d.Country, nil
	case FieldAddress:
		return d.Address, nil
	case FieldEffectiveDate:
		return d.EffectiveDate, nil
	case FieldPlatform:
		return string(d.Platform), nil
	default:
		return "", ErrUnknownField
	}
}

// MapHTTPStatus maps form errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnknownField),
		errors.Is(err, ErrInvalidPlatform),
		errors.Is(err, ErrInvalidDate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
