package middleware

import (
	"context"
	"net/http"
	"strconv"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// MemberIDKey is the context key for the acting member's ID
	MemberIDKey ContextKey = "member_id"
)

// MemberIdentity reads the acting member from the X-Member-ID header and
// stores it on the request context. Endpoints that mutate state resolve the
// actor through GetMemberID; list endpoints degrade gracefully when no
// identity is present (e.g. the "mine" task filter returns an empty list).
//
// Full OAuth lives in front of this service; by the time a request reaches
// us the gateway has already resolved the member ID.
func MemberIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idStr := r.Header.Get("X-Member-ID")
		if idStr != "" {
			if id, err := strconv.ParseInt(idStr, 10, 64); err == nil && id > 0 {
				ctx := context.WithValue(r.Context(), MemberIDKey, id)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// GetMemberID extracts the acting member's ID from the request context
func GetMemberID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(MemberIDKey).(int64)
	return id, ok
}
