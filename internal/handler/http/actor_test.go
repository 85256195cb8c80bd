package http

import (
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/schoolhub/attendance-backend-go/internal/domain/auth"
	"github.com/schoolhub/attendance-backend-go/internal/domain/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActingUser_FromClaims(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"staff_id":       "staff-1",
		"school_id":      "sch-1",
		"role":           "STAFF",
		"custom_role_id": "role-1",
		"type":           "access",
	})
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(jwtauth.NewContext(r.Context(), token, nil))

	actor, err := actingUser(r)
	require.NoError(t, err)
	assert.Equal(t, "staff-1", actor.ID)
	assert.Equal(t, "sch-1", actor.SchoolID)
	assert.Equal(t, staff.RoleStaff, actor.Role)
	require.NotNil(t, actor.CustomRoleID)
	assert.Equal(t, "role-1", *actor.CustomRoleID)
}

func TestActingUser_NoCustomRole(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"staff_id":  "staff-1",
		"school_id": "sch-1",
		"role":      "ADMIN",
		"type":      "access",
	})
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(jwtauth.NewContext(r.Context(), token, nil))

	actor, err := actingUser(r)
	require.NoError(t, err)
	assert.Nil(t, actor.CustomRoleID)
	assert.True(t, actor.Role.IsAdmin())
}

func TestActingUser_MissingClaims(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"staff_id": "staff-1",
		"type":     "access",
	})
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(jwtauth.NewContext(r.Context(), token, nil))

	_, err = actingUser(r)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
