package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/samar-devp/workforce-backend-go/internal/domain/user"
	"github.com/samar-devp/workforce-backend-go/internal/handler/http/response"
)

func roleFromContext(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return user.Role(roleStr), true
}

// RequireSystemOwner restricts the route to the platform owner.
func RequireSystemOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || role != user.RoleSystemOwner {
			response.HandleError(w, user.ErrSystemOwnerAccessRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireOrganization allows organization accounts and the system owner.
func RequireOrganization(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || (role != user.RoleOrganization && role != user.RoleSystemOwner) {
			response.HandleError(w, user.ErrOrganizationAccessRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin allows admins, organization accounts and the system owner.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}
		switch role {
		case user.RoleAdmin, user.RoleOrganization, user.RoleSystemOwner:
			next.ServeHTTP(w, r)
		default:
			response.HandleError(w, user.ErrAdminAccessRequired)
		}
	})
}
