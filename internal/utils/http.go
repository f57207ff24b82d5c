package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxJSONBody bounds the JSON request bodies accepted by DecodeJSON.
const MaxJSONBody = 1 << 20

var (
	// ErrEmptyBody is returned by DecodeJSON when the request carries no body.
	ErrEmptyBody = errors.New("request body is empty")
	// ErrTrailingData is returned when the body holds more than one JSON value.
	ErrTrailingData = errors.New("request body must contain a single JSON value")
	// ErrBodyTooLarge is returned when the body exceeds MaxJSONBody.
	ErrBodyTooLarge = errors.New("request body is too large")
)

// internalErrorBody is written when the real payload cannot be encoded.
var internalErrorBody = []byte(`{"status":"error","message":"Internal server error."}`)

// WriteJSON encodes data and writes it with statusCode. When data cannot be
// encoded the client gets a generic 500 JSON body and the encoding error is
// returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "application/json")

	payload, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(internalErrorBody)
		return 0, fmt.Errorf("error encoding response: %w", err)
	}

	w.WriteHeader(statusCode)
	return w.Write(payload)
}

// DecodeJSON decodes exactly one JSON value from the body of r into dst.
// Unknown fields are ignored.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	body := io.LimitReader(r.Body, MaxJSONBody+1)
	counter := &countingReader{r: body}
	dec := json.NewDecoder(counter)

	if err := dec.Decode(dst); err != nil {
		switch {
		case counter.n > MaxJSONBody:
			return ErrBodyTooLarge
		case errors.Is(err, io.EOF):
			return ErrEmptyBody
		}
		return fmt.Errorf("error decoding request body: %w", err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if counter.n > MaxJSONBody {
			return ErrBodyTooLarge
		}
		return ErrTrailingData
	}
	return nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
