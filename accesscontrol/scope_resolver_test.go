package accesscontrol

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/mocks"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/stretchr/testify/assert"
)

func newTestScopeResolver(t *testing.T) (*scopeResolver, *mocks.UserRoleAssignmentRepository) {
	provider, err := NewInMemoryRBACProvider()
	assert.NoError(t, err)
	assert.NoError(t, shared.BootstrapPermissions(provider.GetDomainRBAC(DefaultDomain)))

	assignmentRepository := mocks.NewUserRoleAssignmentRepository(t)
	return NewScopeResolver(assignmentRepository, provider), assignmentRepository
}

func pinnedAssignment(roleCode shared.Role, placement models.OrgPlacement) models.UserRoleAssignment {
	return models.UserRoleAssignment{
		UserID:       "user-1",
		Role:         models.Role{Code: roleCode},
		OrgPlacement: placement,
	}
}

func TestResolveScopes(t *testing.T) {
	t.Run("should resolve nothing for the anonymous user", func(t *testing.T) {
		r, _ := newTestScopeResolver(t)
		assert.Empty(t, r.ResolveScopes(""))
	})

	t.Run("should cache the assignments of a user", func(t *testing.T) {
		r, assignmentRepository := newTestScopeResolver(t)
		assignments := []models.UserRoleAssignment{pinnedAssignment(shared.RoleEmployee, models.OrgPlacement{BranchID: shared.Ptr(uuid.New())})}
		assignmentRepository.On("ListByUser", "user-1").Return(assignments, nil).Once()

		assert.Equal(t, assignments, r.ResolveScopes("user-1"))
		assert.Equal(t, assignments, r.ResolveScopes("user-1"))
	})

	t.Run("should reload the assignments after invalidation", func(t *testing.T) {
		r, assignmentRepository := newTestScopeResolver(t)
		assignmentRepository.On("ListByUser", "user-1").Return([]models.UserRoleAssignment{}, nil).Twice()

		r.ResolveScopes("user-1")
		r.Invalidate("user-1")
		r.ResolveScopes("user-1")
	})

	t.Run("should fail closed and not cache store errors", func(t *testing.T) {
		r, assignmentRepository := newTestScopeResolver(t)
		assignmentRepository.On("ListByUser", "user-1").Return(nil, fmt.Errorf("connection refused")).Twice()

		assert.Empty(t, r.ResolveScopes("user-1"))
		scopes := r.Resolve("user-1")
		assert.Equal(t, "user-1", scopes.UserID)
		assert.False(t, r.IsPermitted(scopes, shared.ObjectIncident, shared.ActionCreate))
	})
}

func TestIsPermitted(t *testing.T) {
	r, _ := newTestScopeResolver(t)
	branch := models.OrgPlacement{BranchID: shared.Ptr(uuid.New())}

	t.Run("should allow what the role grants", func(t *testing.T) {
		scopes := shared.ActorScopes{UserID: "user-1", Assignments: []models.UserRoleAssignment{pinnedAssignment(shared.RoleSafetyCommittee, branch)}}
		assert.True(t, r.IsPermitted(scopes, shared.ObjectRisk, shared.ActionApprove))
		assert.False(t, r.IsPermitted(scopes, shared.ObjectSystemContent, shared.ActionUpdate))
	})

	t.Run("should inherit the permissions of lower management roles", func(t *testing.T) {
		scopes := shared.ActorScopes{UserID: "user-1", Assignments: []models.UserRoleAssignment{pinnedAssignment(shared.RoleBranchManager, branch)}}
		assert.True(t, r.IsPermitted(scopes, shared.ObjectRisk, shared.ActionStart))
		assert.True(t, r.IsPermitted(scopes, shared.ObjectIncident, shared.ActionCreate))
	})

	t.Run("should deny roles outside the matrix", func(t *testing.T) {
		scopes := shared.ActorScopes{UserID: "user-1", Assignments: []models.UserRoleAssignment{pinnedAssignment(shared.RoleExternal, branch)}}
		assert.False(t, r.IsPermitted(scopes, shared.ObjectIncident, shared.ActionCreate))
	})

	t.Run("should permit everything to global roles", func(t *testing.T) {
		scopes := shared.ActorScopes{UserID: "admin", Assignments: []models.UserRoleAssignment{{Role: models.Role{Code: shared.RoleSystemAdmin, IsGlobal: true}}}}
		assert.True(t, r.IsPermitted(scopes, shared.ObjectRoleAssignment, shared.ActionDelete))
	})
}

func TestIsPermittedAt(t *testing.T) {
	r, _ := newTestScopeResolver(t)
	branchID := uuid.New()
	departmentID := uuid.New()
	department := models.OrgPlacement{BranchID: &branchID, DepartmentID: &departmentID}
	scopes := shared.ActorScopes{UserID: "user-1", Assignments: []models.UserRoleAssignment{
		pinnedAssignment(shared.RoleDepartmentManager, department),
		pinnedAssignment(shared.RoleSafetyCommittee, models.OrgPlacement{BranchID: shared.Ptr(uuid.New())}),
	}}

	t.Run("should permit below the pinned node", func(t *testing.T) {
		section := models.OrgPlacement{BranchID: &branchID, DepartmentID: &departmentID, SectionID: shared.Ptr(uuid.New())}
		assert.True(t, r.IsPermittedAt(scopes, shared.ObjectRisk, shared.ActionStart, section))
	})

	t.Run("should deny in a sibling department", func(t *testing.T) {
		sibling := models.OrgPlacement{BranchID: &branchID, DepartmentID: shared.Ptr(uuid.New())}
		assert.False(t, r.IsPermittedAt(scopes, shared.ObjectRisk, shared.ActionStart, sibling))
	})

	t.Run("should require the permitting role itself to cover the node", func(t *testing.T) {
		// the committee role approves but is pinned to another branch
		assert.False(t, r.IsPermittedAt(scopes, shared.ObjectRisk, shared.ActionApprove, department))
	})
}
