package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/smileynet/addrbook/internal/contact"
)

// New creates a Dispatcher with the built-in address book commands
// registered in order: hello, add, change, phone, show all, exit.
func New(book *contact.AddressBook, opts ...Option) *Dispatcher {
	d := NewDispatcher(opts...)
	RegisterBuiltins(d, book)
	return d
}

// RegisterBuiltins registers the address book commands on d, operating on book.
func RegisterBuiltins(d *Dispatcher, book *contact.AddressBook) {
	b := &builtins{book: book}
	d.Register(KindHello, "hello", b.hello)
	d.Register(KindAdd, "add", b.add)
	d.Register(KindChange, "change", b.change)
	d.Register(KindPhone, "phone", b.phone)
	d.Register(KindShowAll, "show all", b.showAll)
	d.Register(KindExit, "exit", b.exit)
}

type builtins struct {
	book *contact.AddressBook
}

// fields splits line on whitespace and checks the field count.
func fields(kind Kind, line string, want int) ([]string, error) {
	f := strings.Fields(line)
	if len(f) != want {
		return nil, &ArityError{Command: kind, Want: want, Got: len(f)}
	}
	return f, nil
}

func (b *builtins) hello(string) (string, error) {
	return "How can I help you?", nil
}

func (b *builtins) add(line string) (string, error) {
	f, err := fields(KindAdd, line, 3)
	if err != nil {
		return "", err
	}
	name, phone := f[1], f[2]

	rec, err := contact.NewRecord(name)
	if err != nil {
		return "", err
	}
	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	b.book.AddRecord(rec)
	return fmt.Sprintf("Contact %s with phone %s has been added.", name, phone), nil
}

func (b *builtins) change(line string) (string, error) {
	f, err := fields(KindChange, line, 3)
	if err != nil {
		return "", err
	}
	name, phone := f[1], f[2]

	rec, err := b.book.Find(name)
	if errors.Is(err, contact.ErrNotFound) {
		return fmt.Sprintf("Contact with name %s not found.", name), nil
	}
	if err != nil {
		return "", err
	}
	first, err := rec.FirstPhone()
	if err != nil {
		return "", err
	}
	if _, err := rec.EditPhone(first.Value(), phone); err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone number for contact %s changed.", name), nil
}

func (b *builtins) phone(line string) (string, error) {
	f, err := fields(KindPhone, line, 2)
	if err != nil {
		return "", err
	}
	name := f[1]

	rec, err := b.book.Find(name)
	if errors.Is(err, contact.ErrNotFound) {
		return fmt.Sprintf("Contact with name %s is not defined.", name), nil
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone number for contact %s is %s.", name, rec), nil
}

func (b *builtins) showAll(string) (string, error) {
	if b.book.Len() == 0 {
		return "You have no contacts.", nil
	}
	var sb strings.Builder
	for _, rec := range b.book.Records() {
		sb.WriteString(rec.String())
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func (b *builtins) exit(string) (string, error) {
	return "Goodbye!", nil
}
