package utils

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func newCountingServer(t *testing.T, statuses ...int) (*httptest.Server, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		idx := int(n) - 1
		if idx >= len(statuses) {
			idx = len(statuses) - 1
		}
		w.WriteHeader(statuses[idx])
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestHTTPClient_WithRetries(t *testing.T) {
	tests := []struct {
		name       string
		statuses   []int
		wantStatus int
		wantCalls  int32
	}{
		{name: "success first try", statuses: []int{200}, wantStatus: 200, wantCalls: 1},
		{name: "5xx then success", statuses: []int{503, 500, 200}, wantStatus: 200, wantCalls: 3},
		{name: "429 then success", statuses: []int{429, 200}, wantStatus: 200, wantCalls: 2},
		{name: "4xx is not retried", statuses: []int{404, 200}, wantStatus: 404, wantCalls: 1},
		{name: "retries exhausted", statuses: []int{502}, wantStatus: 502, wantCalls: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, calls := newCountingServer(t, tt.statuses...)
			client := NewHTTPClient().WithRetries(3, time.Millisecond)

			resp, err := client.R().Get(srv.URL)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode())
			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(calls))
		})
	}
}

func TestHTTPClient_WithRetriesDisabled(t *testing.T) {
	srv, calls := newCountingServer(t, 500, 200)
	client := NewHTTPClient().WithRetries(0, time.Millisecond)

	resp, err := client.R().Get(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode())
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestIsRetryableResponse_Nil(t *testing.T) {
	assert.False(t, IsRetryableResponse(nil))
}

func TestHTTPClient_WithRetries_ByMethod(t *testing.T) {
	tests := []struct {
		method     string
		wantStatus int
		wantCalls  int32
	}{
		{method: http.MethodPost, wantStatus: http.StatusServiceUnavailable, wantCalls: 1},
		{method: http.MethodPut, wantStatus: http.StatusOK, wantCalls: 2},
		{method: http.MethodDelete, wantStatus: http.StatusOK, wantCalls: 2},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			srv, calls := newCountingServer(t, http.StatusServiceUnavailable, http.StatusOK)
			client := NewHTTPClient().WithRetries(3, time.Millisecond)

			resp, err := client.R().Execute(tt.method, srv.URL)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode())
			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(calls))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	response := func(method string) *resty.Response {
		return &resty.Response{Request: &resty.Request{Method: method}}
	}
	dialErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	readErr := &net.OpError{Op: "read", Net: "tcp", Err: errors.New("connection reset by peer")}

	tests := []struct {
		name string
		resp *resty.Response
		err  error
		want bool
	}{
		{name: "get transport error", resp: response(http.MethodGet), err: readErr, want: true},
		{name: "put timeout", resp: response(http.MethodPut), err: errors.New("context deadline exceeded"), want: true},
		{name: "get success", resp: response(http.MethodGet), want: false},
		{name: "post dial error", resp: response(http.MethodPost), err: dialErr, want: true},
		{name: "post wrapped dial error", resp: response(http.MethodPost), err: fmt.Errorf("Post: %w", dialErr), want: true},
		{name: "post read error", resp: response(http.MethodPost), err: readErr, want: false},
		{name: "post timeout", resp: response(http.MethodPost), err: errors.New("context deadline exceeded"), want: false},
		{name: "post without response", err: dialErr, want: true},
		{name: "unknown method without error", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldRetry(tt.resp, tt.err))
		})
	}
}
