package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hydroseal/erp-backend-go/internal/domain/auth"
	"github.com/hydroseal/erp-backend-go/internal/domain/user"
	"github.com/hydroseal/erp-backend-go/internal/handler/http/response"
)

// RequireRole allows the request through only when the token's role claim is
// one of the given roles.
func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			role, ok := claims["role"].(string)
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			for _, allowed := range roles {
				if user.Role(role) == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.HandleError(w, user.ErrPermissionDenied)
		})
	}
}
