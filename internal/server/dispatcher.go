// Package server provides the HTTP handler of the definitions API.
package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/at-ishikawa/wordbook/internal/definition"
	"github.com/at-ishikawa/wordbook/internal/message"
)

const (
	DefaultResourcePath = "/api/definitions/"
	DefaultMaxBodyBytes = 1 << 20

	requestIDHeader = "X-Request-Id"
)

// Stats is a snapshot of the dispatcher counters.
type Stats struct {
	TotalRequests int64
	TotalEntries  int64
}

// Dispatcher translates requests on the definitions resource into store
// operations and JSON responses.
type Dispatcher struct {
	store        definition.Store
	messages     message.Translator
	validate     *validator.Validate
	resourcePath string
	maxBodyBytes int64

	mu    sync.Mutex
	stats Stats
}

var _ http.Handler = (*Dispatcher)(nil)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithResourcePath sets the only path the dispatcher serves.
func WithResourcePath(path string) Option {
	return func(d *Dispatcher) {
		d.resourcePath = path
	}
}

// WithMaxBodyBytes limits the size of insert request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(d *Dispatcher) {
		d.maxBodyBytes = n
	}
}

// NewDispatcher creates a new Dispatcher with zeroed counters.
func NewDispatcher(store definition.Store, messages message.Translator, opts ...Option) (*Dispatcher, error) {
	validate, err := newWordValidator()
	if err != nil {
		return nil, fmt.Errorf("newWordValidator() > %w", err)
	}

	d := &Dispatcher{
		store:        store,
		messages:     messages,
		validate:     validate,
		resourcePath: DefaultResourcePath,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Stats returns the current counters.
func (d *Dispatcher) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats
}

func (d *Dispatcher) nextRequest() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stats.TotalRequests++
	return d.stats.TotalRequests
}

func (d *Dispatcher) addEntry() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stats.TotalEntries++
	return d.stats.TotalEntries
}

// ServeHTTP implements http.Handler. Every failure is turned into a response;
// nothing propagates past this point.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestNumber := d.nextRequest()
	requestID := uuid.NewString()

	resp, err := d.safeDispatch(r, requestNumber)
	if err != nil {
		resp = d.errorResponse(err, requestNumber, requestID)
	}

	setCommonHeaders(w.Header())
	w.Header().Set(requestIDHeader, requestID)
	if err := resp.write(w); err != nil {
		slog.Default().Warn("failed to write a response",
			slog.String("requestId", requestID),
			slog.Any("error", err),
		)
	}

	slog.Default().Debug("handled request",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", resp.status),
		slog.Int64("requestNumber", requestNumber),
		slog.String("requestId", requestID),
	)
}

func (d *Dispatcher) safeDispatch(r *http.Request, requestNumber int64) (resp response, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("panic while dispatching: %v", recovered)
		}
	}()
	return d.dispatch(r, requestNumber)
}

func (d *Dispatcher) dispatch(r *http.Request, requestNumber int64) (response, error) {
	route := resolveRoute(r, d.resourcePath)
	if !route.PathMatched {
		return response{}, errWrongPath()
	}

	switch route.Method {
	case MethodOptions:
		return noContentResponse(), nil
	case MethodGet:
		return d.lookup(r, requestNumber)
	case MethodPost:
		return d.insert(r, requestNumber)
	case MethodOther:
		return response{}, errMethodNotAllowed()
	default:
		return response{}, fmt.Errorf("unknown method %v", route.Method)
	}
}

func (d *Dispatcher) lookup(r *http.Request, requestNumber int64) (response, error) {
	word := r.URL.Query().Get("word")
	if strings.TrimSpace(word) == "" {
		return response{}, errEmptyInput()
	}
	if err := d.validate.Var(word, "word"); err != nil {
		return response{}, errInvalidWord(err)
	}

	entry, err := d.store.Find(r.Context(), word)
	if err != nil {
		return response{}, fmt.Errorf("store.Find(%s) > %w", word, err)
	}
	if entry == nil {
		return response{}, errNotFound(requestNumber, word)
	}

	return jsonResponse(http.StatusOK, definitionBody{
		Word:          entry.Word,
		Definition:    entry.Definition,
		RequestNumber: requestNumber,
	}), nil
}

// insert does not check the word characters, unlike lookup.
func (d *Dispatcher) insert(r *http.Request, requestNumber int64) (response, error) {
	req, err := decodeInsertRequest(r, d.maxBodyBytes)
	if err != nil {
		return response{}, fmt.Errorf("decodeInsertRequest() > %w", err)
	}

	if _, err := d.store.Insert(r.Context(), req.Word, req.Definition); err != nil {
		var alreadyExists *definition.AlreadyExistsError
		if errors.As(err, &alreadyExists) {
			return response{}, errAlreadyExists(alreadyExists.Word, err)
		}
		return response{}, fmt.Errorf("store.Insert(%s) > %w", req.Word, err)
	}
	totalEntries := d.addEntry()

	return jsonResponse(http.StatusCreated, messageBody{
		Message:       d.messages.MessageFor(message.NumberRequest, requestNumber, totalEntries),
		RequestNumber: requestNumber,
	}), nil
}

func (d *Dispatcher) errorResponse(err error, requestNumber int64, requestID string) response {
	var apiErr *apiError
	if !errors.As(err, &apiErr) {
		slog.Default().Error("failed to handle a request",
			slog.Int64("requestNumber", requestNumber),
			slog.String("requestId", requestID),
			slog.Any("error", err),
		)
		apiErr = errInternal(err)
	}

	return jsonResponse(apiErr.status, messageBody{
		Message:       d.messages.MessageFor(apiErr.id, apiErr.args...),
		RequestNumber: requestNumber,
	})
}
