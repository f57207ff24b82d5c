package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent identifies outbound requests made by the API and the worker.
const UserAgent = "finbank-api"

// HTTPClient is the resty client used for calls to external providers.
// Every request it sends asks for JSON and carries [UserAgent].
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL. A zero timeout means no
// client-side timeout; callers then rely on the request context.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", UserAgent).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
