package server

import (
	"fmt"
	"net/http"

	"github.com/at-ishikawa/wordbook/internal/message"
)

// apiError is an expected failure that maps to a status code and a message.
// Any other error returned while dispatching becomes an internal error.
type apiError struct {
	status int
	id     message.ID
	args   []any
	cause  error
}

func (e *apiError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%d %s: %v", e.status, e.id, e.cause)
	}
	return fmt.Sprintf("%d %s", e.status, e.id)
}

func (e *apiError) Unwrap() error {
	return e.cause
}

func errWrongPath() *apiError {
	return &apiError{status: http.StatusNotFound, id: message.WrongPath}
}

func errMethodNotAllowed() *apiError {
	return &apiError{status: http.StatusMethodNotAllowed, id: message.MethodNotAllowed}
}

func errEmptyInput() *apiError {
	return &apiError{status: http.StatusBadRequest, id: message.EmptyInput}
}

func errInvalidWord(cause error) *apiError {
	return &apiError{status: http.StatusBadRequest, id: message.InvalidWord, cause: cause}
}

func errNotFound(requestNumber int64, word string) *apiError {
	return &apiError{status: http.StatusNotFound, id: message.NotFound, args: []any{requestNumber, word}}
}

func errAlreadyExists(word string, cause error) *apiError {
	return &apiError{status: http.StatusConflict, id: message.AlreadyExists, args: []any{word}, cause: cause}
}

func errInternal(cause error) *apiError {
	return &apiError{status: http.StatusInternalServerError, id: message.InternalError, cause: cause}
}
