package server

import (
	"crypto/subtle"
	"net/http"
)

const adminKeyHeader = "X-Admin-Key"

// admin hides next behind a shared key. Requests without it get 404,
// so the guarded routes look like they do not exist.
type admin struct {
	key      []byte
	notFound http.Handler
}

func newAdmin(key string, notFound http.Handler) *admin {
	return &admin{
		key:      []byte(key),
		notFound: notFound,
	}
}

func (a *admin) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(adminKeyHeader)
		if key == "" {
			if cookie, _ := r.Cookie(adminKeyHeader); cookie != nil {
				key = cookie.Value
			}
		}

		if key != "" && subtle.ConstantTimeCompare([]byte(key), a.key) == 1 {
			next.ServeHTTP(w, r)
			return
		}

		a.notFound.ServeHTTP(w, r)
	})
}
