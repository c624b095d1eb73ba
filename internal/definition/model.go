// Package definition provides the word/definition domain model and its stores.
package definition

import (
	"errors"
	"fmt"
)

// Entry represents one dictionary record.
type Entry struct {
	Word       string `json:"word" yaml:"word"`
	Definition string `json:"definition" yaml:"definition"`
}

// ErrAlreadyExists is matched by every AlreadyExistsError.
var ErrAlreadyExists = errors.New("word already exists")

// AlreadyExistsError is returned when an entry with the same word, compared
// case-insensitively, is already stored. Word holds the stored casing.
type AlreadyExistsError struct {
	Word string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s: %q", ErrAlreadyExists.Error(), e.Word)
}

func (e *AlreadyExistsError) Unwrap() error {
	return ErrAlreadyExists
}
