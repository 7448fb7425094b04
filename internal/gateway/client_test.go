package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingDoer struct{}

func (failingDoer) Do(*http.Request) (*http.Response, error) {
	return nil, &url.Error{Op: "Get", URL: "http://example.test", Err: errors.New("connection refused")}
}

func TestGetJSONSuccess(t *testing.T) {
	var capturedQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	params := url.Values{}
	params.Set("api_key", "secret")
	params.Set("query", "matrix")

	client := NewClient(WithHTTPClient(server.Client()))

	var payload map[string]string
	err := client.GetJSON(context.Background(), server.URL, params, &payload)
	require.NoError(t, err)
	assert.Equal(t, "ok", payload["status"])
	assert.Equal(t, "secret", capturedQuery.Get("api_key"))
	assert.Equal(t, "matrix", capturedQuery.Get("query"))
}

func TestGetJSONNetworkError(t *testing.T) {
	client := NewClient(WithHTTPClient(failingDoer{}))

	var payload map[string]any
	err := client.GetJSON(context.Background(), "http://example.test", nil, &payload)
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, KindNetwork, reqErr.Kind)
}

func TestGetJSONStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status_message":"Invalid API key"}`))
	}))
	defer server.Close()

	client := NewClient(WithHTTPClient(server.Client()))

	var payload map[string]any
	err := client.GetJSON(context.Background(), server.URL, nil, &payload)
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, KindStatus, reqErr.Kind)
	assert.Equal(t, http.StatusUnauthorized, reqErr.Status)
	assert.Contains(t, reqErr.Error(), "status")
}

func TestGetJSONDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client := NewClient(WithHTTPClient(server.Client()))

	var payload map[string]any
	err := client.GetJSON(context.Background(), server.URL, nil, &payload)
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, KindDecode, reqErr.Kind)
	assert.True(t, IsRequestError(err))
}

func TestGetJSONNoParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(WithHTTPClient(server.Client()))

	var payload map[string]any
	require.NoError(t, client.GetJSON(context.Background(), server.URL, nil, &payload))
}
