package delivery

import (
	"context"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/brandonbryant12/content-studio-sub011/internal/domain"
	"github.com/brandonbryant12/content-studio-sub011/internal/models"
)

const SessionCookie = "studio_session"
const SessionHeader = "X-Session"

type ctxKey int

const userKey ctxKey = 0

// SessionToken pulls the token from the cookie, falling back to the header
// for non-browser clients.
func SessionToken(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	return r.Header.Get(SessionHeader)
}

func AuthMiddleware(auth *domain.AuthService, log *logger.ZapLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := auth.Resolve(r.Context(), SessionToken(r))
			if err != nil {
				writeError(w, log, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
		})
	}
}

// CurrentUser returns the authenticated user placed by AuthMiddleware.
func CurrentUser(ctx context.Context) *models.User {
	u, _ := ctx.Value(userKey).(*models.User)
	return u
}
