package middleware

import (
	"net/http"
)

// Locale advertises the form's active locale to the endpoint via Accept-Language,
// unless the request already carries one.
func Locale(locale string) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			if locale != "" && r.Header.Get("Accept-Language") == "" {
				r = setHeader(r, "Accept-Language", locale)
			}
			return next.RoundTrip(r)
		})
	}
}
