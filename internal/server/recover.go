package server

import (
	"net/http"
	"rotcheck/internal/ctxlog"
)

// recoverMiddleware turns a panic in next into a 500 answered by failed.
func recoverMiddleware(failed, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}

				log := ctxlog.Get(r.Context())
				log.Error("recovered panic", "error", err)

				clear(w.Header())
				failed.ServeHTTP(w, r)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
