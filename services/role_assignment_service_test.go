package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/mocks"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type roleAssignmentMocks struct {
	roleRepository       *mocks.RoleRepository
	assignmentRepository *mocks.UserRoleAssignmentRepository
	orgService           *mocks.OrgService
	scopeResolver        *mocks.ScopeResolver
	auditLogService      *mocks.AuditLogService
}

func newTestRoleAssignmentService(t *testing.T) (*roleAssignmentService, roleAssignmentMocks) {
	m := roleAssignmentMocks{
		roleRepository:       mocks.NewRoleRepository(t),
		assignmentRepository: mocks.NewUserRoleAssignmentRepository(t),
		orgService:           mocks.NewOrgService(t),
		scopeResolver:        mocks.NewScopeResolver(t),
		auditLogService:      mocks.NewAuditLogService(t),
	}
	return NewRoleAssignmentService(m.roleRepository, m.assignmentRepository, m.orgService, m.scopeResolver, m.auditLogService), m
}

func TestAssignRole(t *testing.T) {
	admin := shared.Actor{UserID: "admin"}
	allowAdmin := func(m roleAssignmentMocks) {
		m.scopeResolver.On("Resolve", "admin").Return(globalScopes("admin"))
		m.scopeResolver.On("IsPermitted", mock.Anything, shared.ObjectRoleAssignment, mock.Anything).Return(true)
	}

	t.Run("should translate an unknown role into a validation error", func(t *testing.T) {
		s, m := newTestRoleAssignmentService(t)
		allowAdmin(m)
		m.roleRepository.On("ReadByCode", "pilot").Return(models.Role{}, shared.NewNotFound("roles not found"))

		_, err := s.Assign(admin, "user-1", dtos.AssignRoleRequest{RoleCode: "pilot"})
		assert.True(t, shared.IsValidationFailed(err))
	})

	t.Run("should refuse to pin a global role", func(t *testing.T) {
		s, m := newTestRoleAssignmentService(t)
		allowAdmin(m)
		placement := completePlacement()
		m.roleRepository.On("ReadByCode", shared.RoleSystemAdmin).Return(models.Role{Code: shared.RoleSystemAdmin, IsGlobal: true}, nil)
		m.orgService.On("NormalizePlacement", mock.Anything).Return(placement, nil)

		_, err := s.Assign(admin, "user-1", dtos.AssignRoleRequest{RoleCode: shared.RoleSystemAdmin, PlacementRequest: dtos.PlacementRequest{SectionID: placement.SectionID}})
		assert.True(t, shared.IsValidationFailed(err))
	})

	t.Run("should invalidate the cached scopes of the user", func(t *testing.T) {
		s, m := newTestRoleAssignmentService(t)
		allowAdmin(m)
		role := models.Role{Model: models.Model{ID: uuid.New()}, Code: shared.RoleSectionManager}
		placement := completePlacement()
		m.roleRepository.On("ReadByCode", shared.RoleSectionManager).Return(role, nil)
		m.orgService.On("NormalizePlacement", mock.Anything).Return(placement, nil)
		m.assignmentRepository.On("Transaction", mock.Anything).Return(runTransaction)
		m.assignmentRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		m.auditLogService.On("Log", mock.Anything, mock.Anything).Return()
		m.scopeResolver.On("Invalidate", "user-1").Return()

		assignment, err := s.Assign(admin, "user-1", dtos.AssignRoleRequest{RoleCode: shared.RoleSectionManager, PlacementRequest: dtos.PlacementRequest{SectionID: placement.SectionID}})
		assert.NoError(t, err)
		assert.Equal(t, role.ID, assignment.RoleID)
		assert.Equal(t, role, assignment.Role)
		assert.True(t, assignment.IsPinned())
	})
}

func TestRevokeAndListRoles(t *testing.T) {
	t.Run("should invalidate the scopes of the former holder", func(t *testing.T) {
		s, m := newTestRoleAssignmentService(t)
		assignmentID := uuid.New()
		m.scopeResolver.On("Resolve", "admin").Return(globalScopes("admin"))
		m.scopeResolver.On("IsPermitted", mock.Anything, shared.ObjectRoleAssignment, shared.ActionDelete).Return(true)
		m.assignmentRepository.On("Read", assignmentID).Return(models.UserRoleAssignment{UserID: "user-1"}, nil)
		m.assignmentRepository.On("Transaction", mock.Anything).Return(runTransaction)
		m.assignmentRepository.On("Delete", mock.Anything, assignmentID).Return(nil)
		m.auditLogService.On("Log", mock.Anything, mock.Anything).Return()
		m.scopeResolver.On("Invalidate", "user-1").Return()

		assert.NoError(t, s.Revoke(shared.Actor{UserID: "admin"}, assignmentID))
	})

	t.Run("should let users list their own assignments without a permission", func(t *testing.T) {
		s, m := newTestRoleAssignmentService(t)
		m.assignmentRepository.On("ListByUser", "user-1").Return([]models.UserRoleAssignment{{UserID: "user-1"}}, nil)

		assignments, err := s.ListForUser(shared.Actor{UserID: "user-1"}, "user-1")
		assert.NoError(t, err)
		assert.Len(t, assignments, 1)
	})

	t.Run("should deny listing assignments of somebody else", func(t *testing.T) {
		s, m := newTestRoleAssignmentService(t)
		m.scopeResolver.On("Resolve", "user-1").Return(shared.ActorScopes{UserID: "user-1"})
		m.scopeResolver.On("IsPermitted", mock.Anything, shared.ObjectRoleAssignment, shared.ActionRead).Return(false)

		_, err := s.ListForUser(shared.Actor{UserID: "user-1"}, "user-2")
		assert.True(t, shared.IsPermissionDenied(err))
	})

	t.Run("should upsert every default role", func(t *testing.T) {
		s, m := newTestRoleAssignmentService(t)
		m.roleRepository.On("Transaction", mock.Anything).Return(runTransaction)
		m.roleRepository.On("Upsert", mock.Anything, mock.Anything).Return(nil).Times(len(DefaultRoles))

		assert.NoError(t, s.SeedRoles())
	})
}
