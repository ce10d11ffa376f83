package contact

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"
)

var (
	// emailRe accepts the common mailbox@domain.tld shape without trying
	// to cover every RFC 5322 corner.
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// phoneRe accepts E.164-style numbers with optional separators.
	phoneRe = regexp.MustCompile(`^\+?[0-9][0-9 ().\-]{5,19}$`)

	// countryRe requires an ISO 3166-1 alpha-2 code.
	countryRe = regexp.MustCompile(`^[A-Z]{2}$`)

	// postalRe allows alphanumeric postal codes with internal spaces and
	// hyphens; country-specific formats vary too widely for one pattern.
	postalRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 \-]{1,9}$`)
)

// notBlank rejects strings that are empty after trimming whitespace.
var notBlank = validation.NewStringRuleWithError(
	func(s string) bool { return strings.TrimSpace(s) != "" },
	validation.NewError("validation_not_blank", "must not be blank"),
)

// email validates mailbox format.
var email = validation.NewStringRuleWithError(
	emailRe.MatchString,
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// phone validates an international phone number shape.
var phone = validation.NewStringRuleWithError(
	phoneRe.MatchString,
	validation.NewError("validation_phone_format", "must be a valid phone number"),
)

// Address is a postal address. Line2 and Region are optional; the other
// fields are required when the address itself is present.
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Validate checks the address fields. Country must be an uppercase ISO
// 3166-1 alpha-2 code.
func (a Address) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Line1,
			validation.Required.Error("line1 is required"),
			notBlank,
			validation.Length(1, 255),
		),
		validation.Field(&a.Line2,
			validation.Length(0, 255),
		),
		validation.Field(&a.City,
			validation.Required.Error("city is required"),
			notBlank,
			validation.Length(1, 100),
		),
		validation.Field(&a.Region,
			validation.Length(0, 100),
		),
		validation.Field(&a.PostalCode,
			validation.Required.Error("postal code is required"),
			validation.Match(postalRe).Error("must be a valid postal code"),
		),
		validation.Field(&a.Country,
			validation.Required.Error("country is required"),
			validation.Match(countryRe).Error("must be a two-letter ISO 3166-1 country code"),
		),
	)
}

// Contact is a person or organization with reachable coordinates. Phone
// and Address are optional.
type Contact struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone,omitempty"`
	Address *Address `json:"address,omitempty"`
}

// Validate checks all contact fields, including the nested address when
// one is set.
func (c Contact) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name,
			validation.Required.Error("name is required"),
			notBlank,
			validation.Length(1, 255),
		),
		validation.Field(&c.Email,
			validation.Required.Error("email is required"),
			email,
			validation.Length(5, 255),
		),
		validation.Field(&c.Phone,
			validation.When(c.Phone != "", phone),
		),
		validation.Field(&c.Address),
	)
}
