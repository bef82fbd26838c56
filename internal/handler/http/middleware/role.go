package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/symplora/lms-backend-go/internal/domain/auth"
	"github.com/symplora/lms-backend-go/internal/domain/user"
	"github.com/symplora/lms-backend-go/internal/handler/http/response"
	"github.com/symplora/lms-backend-go/internal/pkg/rbac"
)

// RequirePermission lets the request through when the caller's role holds
// at least one of permissions.
func RequirePermission(authorizer rbac.Authorizer, permissions ...user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			for _, permission := range permissions {
				allowed, err := authorizer.Can(claims.Role, permission)
				if err != nil {
					slog.Error("permission check failed", "role", claims.Role, "error", err)
					response.InternalServerError(w, "An unexpected error occurred")
					return
				}
				if allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, fmt.Sprintf("Insufficient permissions for role '%s'", claims.Role))
		})
	}
}
