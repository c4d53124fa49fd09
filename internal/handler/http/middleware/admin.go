package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/auth"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/user"
	"github.com/talentra-hq/hrms-backend-go/internal/handler/http/response"
)

// ManagerOnly gates routes that mutate HR-wide resources to admin and HR
// roles.
func ManagerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || !user.Role(role).CanManage() {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
