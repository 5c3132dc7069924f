package middleware

import "net/http"

// UserAgent identifies the client and marks the request as a form post made by script.
func UserAgent(agent string) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			r = setHeader(r, "User-Agent", agent)
			r.Header.Set("X-Requested-With", "ipss-selfcheck")
			return next.RoundTrip(r)
		})
	}
}
