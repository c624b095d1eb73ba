package server

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var wordPattern = regexp.MustCompile(`^[A-Za-z\s]+$`)

func newWordValidator() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation("word", isWord); err != nil {
		return nil, fmt.Errorf("failed to register word validation: %w", err)
	}
	return validate, nil
}

func isWord(fl validator.FieldLevel) bool {
	return wordPattern.MatchString(fl.Field().String())
}
