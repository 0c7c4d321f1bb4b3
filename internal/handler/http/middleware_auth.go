package http

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/service"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/utils"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

// auth verifies the bearer token and puts its principal into the request
// context. The request logger gains the principal id.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		principal, err := utils.ValidateAndParseJWTToken(tokenString, h.tokens.TokenSignKey, h.tokens.TokenIssuer)
		if err != nil {
			h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidToken, err))
			return
		}

		l := logger.FromRequest(r).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("principal_id", principal.ID).Str("principal_role", string(principal.Role))
		})

		ctx := utils.WithPrincipal(l.WithContext(r.Context()), principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole admits principals holding one of roles.
func (h *Handler) requireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := utils.GetPrincipalFromContext(r.Context())
			if !ok {
				h.writeError(w, r, service.ErrIdentityMissing)
				return
			}
			if !principal.HasRole(roles...) {
				h.writeError(w, r, fmt.Errorf("%w: role %s may not %s %s", service.ErrPermissionDenied, principal.Role, r.Method, r.URL.Path))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
