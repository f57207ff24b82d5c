package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// hostErrorBody is the error envelope returned by the upload API:
// {"error": {"message": "..."}}.
type hostErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	var envelope hostErrorBody
	if json.Unmarshal(resp.Body(), &envelope) == nil && envelope.Error.Message != "" {
		body = envelope.Error.Message
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrImageHostRejected, body)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrImageHostAuth, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrImageHostNotFound, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrImageHostRateLimit, body)
	default:
		if resp.StatusCode() >= http.StatusInternalServerError {
			return fmt.Errorf("%w: http %d: %s", ErrImageHostServer, resp.StatusCode(), body)
		}
		return fmt.Errorf("%w: http %d: %s", ErrImageHostRequest, resp.StatusCode(), body)
	}
}
