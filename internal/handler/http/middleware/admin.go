package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/schoolhub/attendance-backend-go/internal/domain/access"
	"github.com/schoolhub/attendance-backend-go/internal/domain/auth"
	"github.com/schoolhub/attendance-backend-go/internal/domain/staff"
	"github.com/schoolhub/attendance-backend-go/internal/handler/http/response"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || !staff.Role(role).IsAdmin() {
			response.HandleError(w, access.ErrUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
