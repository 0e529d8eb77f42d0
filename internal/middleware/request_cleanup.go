package middleware

import (
	"io"
	"net/http"
)

// at most this much of an unread body is drained, a bigger leftover just closes the connection
const maxDrainBytes = 256 << 10

// DrainAndCloseRequest consumes what the handler left unread in the request body
// and closes it, so keep-alive connections can be reused.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil || r.Body == http.NoBody {
				return
			}
			_, _ = io.CopyN(io.Discard, r.Body, maxDrainBytes)
			_ = r.Body.Close()
		})
	}
}
