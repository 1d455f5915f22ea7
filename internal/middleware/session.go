package middleware

import (
	"context"
	"net/http"

	"gameshelf/internal/sessions"
	"gameshelf/internal/utils"
)

type contextKey string

const userIDKey contextKey = "userID"

// CookieName is the client-held session cookie. Its value is the opaque
// token; the user id only ever lives server-side.
const CookieName = "gameshelf_session"

// RequireSession resolves the session cookie to a user id before the
// handler runs. Missing or expired sessions get a 401 without touching
// anything else.
func RequireSession(store sessions.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			userID, err := store.Resolve(r.Context(), cookie.Value)
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID extracts the authenticated user id placed by RequireSession.
func UserID(r *http.Request) (uint, bool) {
	id, ok := r.Context().Value(userIDKey).(uint)
	return id, ok
}

// WithUserID returns a request carrying the given user id, as if it had
// passed through RequireSession. Intended for handler tests.
func WithUserID(r *http.Request, userID uint) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
}
