package access

import (
	"context"
	"errors"
	"testing"

	"github.com/schoolhub/attendance-backend-go/internal/domain/access"
	"github.com/schoolhub/attendance-backend-go/internal/domain/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCustomRoleRepo struct {
	roles map[string]access.CustomRole
	err   error
}

func (f *fakeCustomRoleRepo) GetByID(ctx context.Context, id string, schoolID string) (access.CustomRole, error) {
	if f.err != nil {
		return access.CustomRole{}, f.err
	}
	role, ok := f.roles[id]
	if !ok || role.SchoolID != schoolID {
		return access.CustomRole{}, access.ErrCustomRoleNotFound
	}
	return role, nil
}

type fakeDelegatedRepo struct {
	byManager map[string][]string
	err       error
}

func (f *fakeDelegatedRepo) ListStaffIDsByManager(ctx context.Context, managerID string, schoolID string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byManager[managerID], nil
}

func roleWith(id, schoolID string, actions ...string) access.CustomRole {
	return access.CustomRole{
		ID:       id,
		SchoolID: schoolID,
		Grant: access.CapabilityGrant{Entries: []access.GrantEntry{
			{Module: access.ModuleStaffAttendance, Actions: actions},
		}},
	}
}

func strPtr(s string) *string { return &s }

func TestResolveScope_Admin(t *testing.T) {
	resolver := NewScopeResolver(&fakeCustomRoleRepo{}, &fakeDelegatedRepo{})

	scope, err := resolver.ResolveScope(context.Background(), access.ActingUser{
		ID: "adm", SchoolID: "sch1", Role: staff.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, access.ScopeAll, scope.Kind)
}

func TestResolveScope_NoCustomRole(t *testing.T) {
	resolver := NewScopeResolver(&fakeCustomRoleRepo{}, &fakeDelegatedRepo{})

	scope, err := resolver.ResolveScope(context.Background(), access.ActingUser{
		ID: "s1", SchoolID: "sch1", Role: staff.RoleStaff,
	})
	require.NoError(t, err)
	assert.Equal(t, access.ScopeNone, scope.Kind)
}

func TestResolveScope_MissingRoleRowIsNone(t *testing.T) {
	resolver := NewScopeResolver(&fakeCustomRoleRepo{roles: map[string]access.CustomRole{}}, &fakeDelegatedRepo{})

	scope, err := resolver.ResolveScope(context.Background(), access.ActingUser{
		ID: "s1", SchoolID: "sch1", Role: staff.RoleStaff, CustomRoleID: strPtr("gone"),
	})
	require.NoError(t, err)
	assert.Equal(t, access.ScopeNone, scope.Kind)
}

func TestResolveScope_ManageSelectedLoadsDelegation(t *testing.T) {
	roleRepo := &fakeCustomRoleRepo{roles: map[string]access.CustomRole{
		"r1": roleWith("r1", "sch1", access.ActionManageSelected),
	}}
	delegated := &fakeDelegatedRepo{byManager: map[string][]string{
		"mgr": {"x1", "x2"},
	}}
	resolver := NewScopeResolver(roleRepo, delegated)

	scope, err := resolver.ResolveScope(context.Background(), access.ActingUser{
		ID: "mgr", SchoolID: "sch1", Role: staff.RoleStaff, CustomRoleID: strPtr("r1"),
	})
	require.NoError(t, err)
	assert.Equal(t, access.ScopeSelected, scope.Kind)
	assert.ElementsMatch(t, []string{"x1", "x2", "mgr"}, scope.StaffIDs)
}

func TestResolveScope_ManageOwnSkipsDelegationLookup(t *testing.T) {
	roleRepo := &fakeCustomRoleRepo{roles: map[string]access.CustomRole{
		"r1": roleWith("r1", "sch1", access.ActionManageOwn),
	}}
	// A failing delegation repo proves the lookup is skipped.
	resolver := NewScopeResolver(roleRepo, &fakeDelegatedRepo{err: errors.New("boom")})

	scope, err := resolver.ResolveScope(context.Background(), access.ActingUser{
		ID: "s1", SchoolID: "sch1", Role: staff.RoleStaff, CustomRoleID: strPtr("r1"),
	})
	require.NoError(t, err)
	assert.Equal(t, access.ScopeOwn, scope.Kind)
}

func TestResolveScope_CrossSchoolRoleIsNone(t *testing.T) {
	roleRepo := &fakeCustomRoleRepo{roles: map[string]access.CustomRole{
		"r1": roleWith("r1", "other-school", access.ActionManage),
	}}
	resolver := NewScopeResolver(roleRepo, &fakeDelegatedRepo{})

	scope, err := resolver.ResolveScope(context.Background(), access.ActingUser{
		ID: "s1", SchoolID: "sch1", Role: staff.RoleStaff, CustomRoleID: strPtr("r1"),
	})
	require.NoError(t, err)
	assert.Equal(t, access.ScopeNone, scope.Kind)
}
