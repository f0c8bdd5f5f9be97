package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-blogr/internal/logger"
	"github.com/MKhiriev/go-blogr/internal/utils"
)

// withIdentity resolves the current user from the session cookie once per
// request and stores it in the request context under [utils.IdentityCtxKey].
//
// Any failure (missing cookie, invalid or expired token, or a user that no
// longer exists) leaves the request anonymous. The middleware never rejects
// a request itself; route guards decide what anonymous users may do.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		user, err := h.services.AuthService.ResolveSession(ctx, cookie.Value)
		if err != nil {
			log.Debug().Err(err).Msg("session cookie did not resolve to a user")
			next.ServeHTTP(w, r)
			return
		}

		ctx = context.WithValue(ctx, utils.IdentityCtxKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAuth redirects anonymous requests to the login page.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetIdentityFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/auth/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
