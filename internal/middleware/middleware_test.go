package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureTransport(got *http.Request) http.RoundTripper {
	return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
		*got = *r
		rec := httptest.NewRecorder()
		rec.WriteHeader(http.StatusOK)
		return rec.Result(), nil
	})
}

func TestChainAppliesHeaders(t *testing.T) {
	var seen http.Request
	rt := Chain(captureTransport(&seen), RequestID, NoStore, Locale("zh"), UserAgent("ipss-selfcheck/test"))

	ctx := WithRequestID(context.Background(), "req-42")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "http://example.invalid/submit", nil)
	require.NoError(t, err)

	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, "req-42", seen.Header.Get(RequestIDHeader))
	assert.Equal(t, "no-cache", seen.Header.Get("Pragma"))
	assert.Contains(t, seen.Header.Get("Cache-Control"), "no-store")
	assert.Equal(t, "zh", seen.Header.Get("Accept-Language"))
	assert.Equal(t, "ipss-selfcheck/test", seen.Header.Get("User-Agent"))

	assert.Empty(t, req.Header.Get(RequestIDHeader), "caller request must not be mutated")
}

func TestRequestIDGeneratesUUID(t *testing.T) {
	var seen http.Request
	rt := Chain(captureTransport(&seen), RequestID)
	req, err := http.NewRequest(http.MethodGet, "http://example.invalid/", nil)
	require.NoError(t, err)

	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	_, err = uuid.Parse(seen.Header.Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestLocaleKeepsExplicitHeader(t *testing.T) {
	var seen http.Request
	rt := Chain(captureTransport(&seen), Locale("zh"))
	req, err := http.NewRequest(http.MethodGet, "http://example.invalid/", nil)
	require.NoError(t, err)
	req.Header.Set("Accept-Language", "en")

	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, "en", seen.Header.Get("Accept-Language"))
}

func TestRequestIDFromContextEmpty(t *testing.T) {
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
}
