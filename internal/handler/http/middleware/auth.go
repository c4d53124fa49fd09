package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/jwtauth/v5"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/auth"
	"github.com/talentra-hq/hrms-backend-go/internal/handler/http/response"
	"github.com/talentra-hq/hrms-backend-go/internal/pkg/jwt"
)

// AuthRequired rejects requests without a verified access token. Logged-out
// access tokens are blacklisted until they expire on their own.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "); raw != "" {
				if jwtService.IsTokenRevoked(raw) {
					response.HandleError(w, auth.ErrInvalidToken)
					return
				}
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
