// Package contact models postal contacts and validates them with
// declarative field rules.
//
// A Contact carries a person's name, email, phone number, and an optional
// postal Address. Validate checks every field with
// github.com/jellydator/validation rules and returns a field-keyed error
// describing each failure.
//
// # Usage
//
//	c := contact.Contact{
//		Name:  "Ada Lovelace",
//		Email: "ada@example.com",
//		Phone: "+44 20 7946 0958",
//		Address: &contact.Address{
//			Line1:      "12 St James's Square",
//			City:       "London",
//			PostalCode: "SW1Y 4JH",
//			Country:    "GB",
//		},
//	}
//	if err := c.Validate(); err != nil {
//		return err
//	}
//
// # Error Handling
//
// Validate returns nil when the value is valid, otherwise a
// validation.Errors map keyed by field name. Use errors.As to inspect
// individual field failures.
package contact
