package auth

import (
	"context"
	"net/http"
)

type ctxKey struct{}

// ContextWithUserID stores the authenticated user id in the context.
func ContextWithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserIDFromContext returns the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(ctxKey{}).(int)
	return userID, ok && userID > 0
}

// RequireUserID responds with 401 when the request carries no authenticated user.
func RequireUserID(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}
