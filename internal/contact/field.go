// Package contact holds the address book data model: labeled fields,
// contact records, and the in-memory book that owns them.
package contact

import (
	"errors"
	"regexp"
)

// ErrNoPhones is returned when an operation needs a phone on a record that has none.
var ErrNoPhones = errors.New("contact: record has no phones")

// Field is a labeled value that renders as "<Kind>: <value>".
type Field interface {
	Kind() string
	Value() string
	String() string
}

// Verify Name and Phone satisfy Field at compile time.
var (
	_ Field = Name{}
	_ Field = (*Phone)(nil)
)

// ValidationError indicates a field value failed its format rule.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Name is a contact's name. It is never empty.
type Name struct {
	value string
}

// NewName returns a Name, or a ValidationError if v is empty.
// Whitespace-only names are accepted.
func NewName(v string) (Name, error) {
	if v == "" {
		return Name{}, &ValidationError{Field: "name", Message: "Name can not be empty"}
	}
	return Name{value: v}, nil
}

// Kind returns "Name".
func (n Name) Kind() string { return "Name" }

// Value returns the raw name.
func (n Name) Value() string { return n.value }

func (n Name) String() string { return render(n) }

// phonePattern allows an optional leading "+" followed by 9 to 15 digits.
var phonePattern = regexp.MustCompile(`^\+?[0-9]{9,15}$`)

// Phone is a phone number. Construction and Set never validate;
// call Validate after either.
type Phone struct {
	value string
}

// NewPhone returns an unvalidated Phone.
func NewPhone(v string) *Phone {
	return &Phone{value: v}
}

// Kind returns "Phone".
func (p *Phone) Kind() string { return "Phone" }

// Value returns the raw number.
func (p *Phone) Value() string { return p.value }

// Set replaces the number without validating it.
func (p *Phone) Set(v string) { p.value = v }

// Validate reports whether the number matches the accepted format.
func (p *Phone) Validate() error {
	if !phonePattern.MatchString(p.value) {
		return &ValidationError{Field: "phone", Message: "Invalid phone number"}
	}
	return nil
}

func (p *Phone) String() string { return render(p) }

func render(f Field) string {
	return f.Kind() + ": " + f.Value()
}
