package app

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const (
	RequestIdHeader = "X-Request-Id"
	maxRequestIdLen = 128
)

type requestIdKey struct{}

func RequestId(ctx context.Context) string {
	id, _ := ctx.Value(requestIdKey{}).(string)
	return id
}

// validRequestId accepts short ids made of printable, non-space ASCII.
func validRequestId(id string) bool {
	if id == "" || len(id) > maxRequestIdLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}
	return true
}

// withRequestId echoes a valid incoming request id or assigns a new one.
func withRequestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIdHeader)
		if !validRequestId(id) {
			id = uuid.New().String()
		}

		w.Header().Set(RequestIdHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIdKey{}, id)))
	})
}
