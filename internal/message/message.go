// Package message provides the localized response messages of the definitions API.
package message

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
)

// ID identifies a message in the table.
type ID string

const (
	AlreadyExists    ID = "alreadyExists"
	NumberRequest    ID = "numberRequest"
	WrongPath        ID = "wrongPath"
	MethodNotAllowed ID = "methodNotAllowed"
	EmptyInput       ID = "emptyInput"
	InvalidWord      ID = "invalidWord"
	NotFound         ID = "notFound"
	InternalError    ID = "internalError"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

// Translator looks up a message by id and substitutes its positional placeholders.
type Translator interface {
	MessageFor(id ID, args ...any) string
}

// tables holds the message texts per locale. {0}, {1} are positional placeholders.
var tables = map[string]map[ID]string{
	"en": {
		AlreadyExists:    "Warning! '{0}' already exists.",
		NumberRequest:    "Request # {0}. Total entries: {1}",
		WrongPath:        "Wrong path",
		MethodNotAllowed: "Method must be GET or POST",
		EmptyInput:       "Empty word is not allowed",
		InvalidWord:      "Word must contain only letters and spaces",
		NotFound:         "Request # {0}. Word '{1}' not found",
		InternalError:    "Internal server error",
	},
}

var localeTranslators = map[string]func() locales.Translator{
	"en": en.New,
}

// SupportedLocales returns the locales that have a message table.
func SupportedLocales() []string {
	result := make([]string, 0, len(tables))
	for locale := range tables {
		result = append(result, locale)
	}
	return result
}

// Messages implements Translator with a universal-translator backend.
type Messages struct {
	trans ut.Translator
}

var _ Translator = (*Messages)(nil)

// New creates Messages for the given locale.
func New(locale string) (*Messages, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	table, ok := tables[locale]
	if !ok {
		return nil, fmt.Errorf("unsupported locale: %s", locale)
	}

	localeTranslator := localeTranslators[locale]()
	uni := ut.New(localeTranslator, localeTranslator)
	trans, found := uni.GetTranslator(locale)
	if !found {
		return nil, fmt.Errorf("uni.GetTranslator(%s) > translator not found", locale)
	}
	for id, text := range table {
		if err := trans.Add(string(id), text, false); err != nil {
			return nil, fmt.Errorf("trans.Add(%s) > %w", id, err)
		}
	}
	return &Messages{trans: trans}, nil
}

// Locale returns the locale of the messages.
func (m *Messages) Locale() string {
	return m.trans.Locale()
}

// MessageFor returns the message for id with args substituted in order.
// An unknown id yields the id itself.
func (m *Messages) MessageFor(id ID, args ...any) (text string) {
	// ut.Translator.T indexes params without a bounds check.
	defer func() {
		if r := recover(); r != nil {
			slog.Default().Warn("message has more placeholders than arguments",
				slog.String("id", string(id)),
				slog.Int("args", len(args)),
			)
			text = string(id)
		}
	}()

	params := make([]string, len(args))
	for i, arg := range args {
		params[i] = fmt.Sprint(arg)
	}

	text, err := m.trans.T(string(id), params...)
	if err != nil {
		slog.Default().Warn("message lookup failed",
			slog.String("id", string(id)),
			slog.Any("error", err),
		)
		return string(id)
	}
	return text
}
