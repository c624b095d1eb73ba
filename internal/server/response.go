package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

type definitionBody struct {
	Word          string `json:"word"`
	Definition    string `json:"definition"`
	RequestNumber int64  `json:"requestNumber"`
}

type messageBody struct {
	Message       string `json:"message"`
	RequestNumber int64  `json:"requestNumber"`
}

type response struct {
	status int
	body   any
}

func jsonResponse(status int, body any) response {
	return response{status: status, body: body}
}

func noContentResponse() response {
	return response{status: http.StatusNoContent}
}

func (resp response) write(w http.ResponseWriter) error {
	if resp.body == nil {
		w.WriteHeader(resp.status)
		return nil
	}

	body, err := json.Marshal(resp.body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return fmt.Errorf("json.Marshal > %w", err)
	}
	w.WriteHeader(resp.status)
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("w.Write > %w", err)
	}
	return nil
}

func setCommonHeaders(header http.Header) {
	header.Set("Access-Control-Allow-Origin", "*")
	header.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	header.Set("Access-Control-Allow-Headers", "Content-Type")
	header.Set("Content-Type", "application/json")
}

type insertRequest struct {
	Word       string
	Definition string
}

var (
	errMissingWord  = errors.New("request body has no word field")
	errTrailingData = errors.New("request body has data after the JSON value")
)

// decodeInsertRequest reads a JSON body, or a form body when the request says so.
func decodeInsertRequest(r *http.Request, maxBodyBytes int64) (insertRequest, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return insertRequest{}, fmt.Errorf("r.ParseForm > %w", err)
		}
		if _, ok := r.PostForm["word"]; !ok {
			return insertRequest{}, errMissingWord
		}
		return insertRequest{
			Word:       r.PostForm.Get("word"),
			Definition: r.PostForm.Get("definition"),
		}, nil
	}

	var payload struct {
		Word       *string `json:"word"`
		Definition *string `json:"definition"`
	}
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&payload); err != nil {
		return insertRequest{}, fmt.Errorf("json.Decode > %w", err)
	}
	// The body must hold exactly one JSON value.
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return insertRequest{}, fmt.Errorf("json.Decode > %w", errTrailingData)
	}
	if payload.Word == nil {
		return insertRequest{}, errMissingWord
	}

	req := insertRequest{Word: *payload.Word}
	if payload.Definition != nil {
		req.Definition = *payload.Definition
	}
	return req, nil
}
