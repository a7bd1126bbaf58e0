package httpx

import (
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/teamdir/pkg/slogx"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares to h so that the first middleware in the list is
// the outermost one.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// Recoverer turns a panicking handler into a 500 response instead of killing
// the connection.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				slogx.FromContext(r.Context()).Error("handler panic", slog.Any("panic", rec))
				WriteError(w, http.StatusInternalServerError, ErrorCodeServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
