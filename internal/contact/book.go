package contact

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a name has no record in the book.
var ErrNotFound = errors.New("contact: not found")

// AddressBook maps contact names to records, iterating in insertion order.
// It is not safe for concurrent use.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook creates an empty AddressBook.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord stores r under its name. An existing record with the same name
// is replaced and keeps its position.
func (b *AddressBook) AddRecord(r *Record) {
	key := r.Name().Value()
	if _, ok := b.records[key]; !ok {
		b.order = append(b.order, key)
	}
	b.records[key] = r
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*Record, error) {
	r, ok := b.records[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return r, nil
}

// Has reports whether name has a record.
func (b *AddressBook) Has(name string) bool {
	_, ok := b.records[name]
	return ok
}

// Len returns the number of records.
func (b *AddressBook) Len() int { return len(b.records) }

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, b.records[key])
	}
	return out
}
