package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/schoolhub/attendance-backend-go/internal/domain/access"
	"github.com/schoolhub/attendance-backend-go/internal/domain/auth"
	"github.com/schoolhub/attendance-backend-go/internal/domain/staff"
)

// actingUser rebuilds the acting user from verified token claims.
// This is the only place session state crosses into the service
// layer; everything below takes the actor as an explicit argument.
func actingUser(r *http.Request) (access.ActingUser, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return access.ActingUser{}, auth.ErrInvalidToken
	}

	staffID, ok := claims["staff_id"].(string)
	if !ok || staffID == "" {
		return access.ActingUser{}, auth.ErrInvalidToken
	}
	schoolID, ok := claims["school_id"].(string)
	if !ok || schoolID == "" {
		return access.ActingUser{}, auth.ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return access.ActingUser{}, auth.ErrInvalidToken
	}

	actor := access.ActingUser{
		ID:       staffID,
		SchoolID: schoolID,
		Role:     staff.Role(role),
	}
	if customRoleID, ok := claims["custom_role_id"].(string); ok && customRoleID != "" {
		actor.CustomRoleID = &customRoleID
	}

	return actor, nil
}
