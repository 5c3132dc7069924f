package middleware

import (
	"net/http"
)

// NoStore asks intermediaries not to serve a cached response to a submission.
func NoStore(next http.RoundTripper) http.RoundTripper {
	return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
		r = setHeader(r, "Cache-Control", "no-store, no-cache, max-age=0")
		r.Header.Set("Pragma", "no-cache")
		return next.RoundTrip(r)
	})
}
