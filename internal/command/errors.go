package command

import (
	"errors"
	"fmt"

	"github.com/smileynet/addrbook/internal/contact"
)

// User-facing messages for translated failures.
const (
	NotFoundText = "Contact with that name not found."
	InvalidText  = "Please enter a valid command."
	ArityText    = "Please enter both name and phone number, separated by a space."
)

// ArityError indicates the input had the wrong number of fields for a command.
type ArityError struct {
	Command Kind
	Want    int
	Got     int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("command: %s expects %d fields, got %d", e.Command, e.Want, e.Got)
}

// Message maps a handler error to the text shown to the user.
// Reports false for errors with no translation.
func Message(err error) (string, bool) {
	var ve *contact.ValidationError
	var ae *ArityError
	switch {
	case err == nil:
		return "", false
	case errors.Is(err, contact.ErrNotFound):
		return NotFoundText, true
	case errors.As(err, &ve):
		return InvalidText, true
	case errors.As(err, &ae), errors.Is(err, contact.ErrNoPhones):
		// A record without phones surfaces like a short input line.
		return ArityText, true
	default:
		return "", false
	}
}
