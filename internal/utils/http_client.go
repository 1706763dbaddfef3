package utils

import (
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient().WithRetries(3, 200*time.Millisecond)
//	resp, err := client.R().Get("https://example.com/api/cards")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// WithRetries enables up to count retries with exponential back-off
// starting at wait. See [ShouldRetry] for the retry rule. A count ≤ 0
// disables retries.
func (c *HTTPClient) WithRetries(count int, wait time.Duration) *HTTPClient {
	if count <= 0 {
		c.SetRetryCount(0)
		return c
	}

	c.SetRetryCount(count).
		SetRetryWaitTime(wait).
		SetRetryMaxWaitTime(8 * wait).
		AddRetryCondition(ShouldRetry)

	return c
}

// ShouldRetry reports whether a request may be sent again. Idempotent
// methods are retried on any transport failure and on responses for which
// [IsRetryableResponse] holds. Other methods, POST among them, are retried
// only when the connection could not be established, since the server may
// already have acted on a request it received.
func ShouldRetry(resp *resty.Response, err error) bool {
	if isIdempotent(resp) {
		return err != nil || IsRetryableResponse(resp)
	}
	return err != nil && isDialError(err)
}

func isIdempotent(resp *resty.Response) bool {
	if resp == nil || resp.Request == nil {
		return false
	}
	switch resp.Request.Method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete, http.MethodOptions:
		return true
	default:
		return false
	}
}

func isDialError(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

// IsRetryableResponse reports whether the response status indicates a
// transient server-side condition: 429 or any 5xx.
func IsRetryableResponse(resp *resty.Response) bool {
	if resp == nil {
		return false
	}
	code := resp.StatusCode()
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
