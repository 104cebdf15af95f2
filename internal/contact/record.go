package contact

import "strings"

// Record is a named contact with an ordered list of phones.
type Record struct {
	name   Name
	phones []*Phone
}

// NewRecord creates a Record with no phones.
// Returns a ValidationError if name is empty.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the record's name field.
func (r *Record) Name() Name { return r.name }

// Phones returns the phone values in order.
func (r *Record) Phones() []string {
	out := make([]string, len(r.phones))
	for i, p := range r.phones {
		out[i] = p.Value()
	}
	return out
}

// AddPhone validates phone and appends it.
// The record is unchanged if validation fails.
func (r *Record) AddPhone(phone string) error {
	p := NewPhone(phone)
	if err := p.Validate(); err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone equal to phone.
// Reports whether one was found.
func (r *Record) RemovePhone(phone string) bool {
	for i, p := range r.phones {
		if p.Value() == phone {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return true
		}
	}
	return false
}

// EditPhone sets the first phone equal to oldPhone to newPhone and
// re-validates it. On a validation error the new value is kept.
// Reports whether oldPhone was found.
func (r *Record) EditPhone(oldPhone, newPhone string) (bool, error) {
	for _, p := range r.phones {
		if p.Value() == oldPhone {
			p.Set(newPhone)
			return true, p.Validate()
		}
	}
	return false, nil
}

// FirstPhone returns the earliest added phone, or ErrNoPhones.
func (r *Record) FirstPhone() (*Phone, error) {
	if len(r.phones) == 0 {
		return nil, ErrNoPhones
	}
	return r.phones[0], nil
}

// String renders the name line followed by the comma-separated phones.
func (r *Record) String() string {
	parts := make([]string, len(r.phones))
	for i, p := range r.phones {
		parts[i] = p.String()
	}
	return r.name.String() + "\n" + strings.Join(parts, ", ")
}
