package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/shared"
)

// DefaultRoles are the roles every installation starts with.
var DefaultRoles = []models.Role{
	{Code: shared.RoleSystemAdmin, Name: "System Administrator", IsGlobal: true, Description: "Full access to every branch"},
	{Code: shared.RoleTopManagement, Name: "Top Management", IsGlobal: true, Description: "Organization wide oversight"},
	{Code: shared.RoleSystemStaff, Name: "System Staff", Description: "Relays urgent reports and maintains forms"},
	{Code: shared.RoleSafetyCommittee, Name: "Safety Committee", Description: "Approves or rejects risks"},
	{Code: shared.RoleBranchManager, Name: "Branch Manager"},
	{Code: shared.RoleDepartmentManager, Name: "Department Manager", Description: "Executes approved risk treatments"},
	{Code: shared.RoleSectionManager, Name: "Section Manager"},
	{Code: shared.RoleSafetyCoordinator, Name: "Safety Coordinator", Description: "Prepares and submits risks"},
	{Code: shared.RoleEmployee, Name: "Employee"},
	{Code: shared.RoleExternal, Name: "External"},
}

type roleAssignmentService struct {
	roleRepository       shared.RoleRepository
	assignmentRepository shared.UserRoleAssignmentRepository
	orgService           shared.OrgService
	scopeResolver        shared.ScopeResolver
	auditLogService      shared.AuditLogService
}

var _ shared.RoleAssignmentService = &roleAssignmentService{}

func NewRoleAssignmentService(roleRepository shared.RoleRepository, assignmentRepository shared.UserRoleAssignmentRepository, orgService shared.OrgService, scopeResolver shared.ScopeResolver, auditLogService shared.AuditLogService) *roleAssignmentService {
	return &roleAssignmentService{
		roleRepository:       roleRepository,
		assignmentRepository: assignmentRepository,
		orgService:           orgService,
		scopeResolver:        scopeResolver,
		auditLogService:      auditLogService,
	}
}

func (s *roleAssignmentService) Roles() ([]models.Role, error) {
	return s.roleRepository.All()
}

func (s *roleAssignmentService) authorize(actor shared.Actor, action shared.Action) error {
	if actor.IsAnonymous() {
		return shared.NewPermissionDenied("authentication required")
	}
	if !s.scopeResolver.IsPermitted(s.scopeResolver.Resolve(actor.UserID), shared.ObjectRoleAssignment, action) {
		return shared.NewPermissionDenied("not allowed to manage role assignments")
	}
	return nil
}

func (s *roleAssignmentService) Assign(actor shared.Actor, userID string, req dtos.AssignRoleRequest) (models.UserRoleAssignment, error) {
	if err := s.authorize(actor, shared.ActionCreate); err != nil {
		return models.UserRoleAssignment{}, err
	}
	if userID == "" {
		return models.UserRoleAssignment{}, shared.NewFieldValidationFailed("userId", "required")
	}

	role, err := s.roleRepository.ReadByCode(req.RoleCode)
	if err != nil {
		if shared.IsNotFound(err) {
			return models.UserRoleAssignment{}, shared.NewFieldValidationFailed("roleCode", "unknown role")
		}
		return models.UserRoleAssignment{}, err
	}

	placement, err := s.orgService.NormalizePlacement(req.ToModel())
	if err != nil {
		return models.UserRoleAssignment{}, err
	}
	if role.IsGlobal && !placement.IsEmpty() {
		return models.UserRoleAssignment{}, shared.NewFieldValidationFailed("roleCode", "global roles cannot be pinned to an org node")
	}

	assignment := models.UserRoleAssignment{
		UserID:       userID,
		RoleID:       role.ID,
		OrgPlacement: placement,
		AssignedAt:   time.Now(),
	}
	err = s.assignmentRepository.Transaction(func(tx shared.DB) error {
		if err := s.assignmentRepository.Create(tx, &assignment); err != nil {
			return err
		}
		s.auditLogService.Log(tx, shared.AuditEntry{
			Actor:       actor,
			Action:      models.AuditActionCreate,
			ModelName:   "user_role_assignment",
			ObjectID:    assignment.ID.String(),
			Description: fmt.Sprintf("assigned role %s to user %s", role.Code, userID),
		})
		return nil
	})
	if err != nil {
		return models.UserRoleAssignment{}, err
	}

	s.scopeResolver.Invalidate(userID)
	assignment.Role = role
	return assignment, nil
}

func (s *roleAssignmentService) Revoke(actor shared.Actor, assignmentID uuid.UUID) error {
	if err := s.authorize(actor, shared.ActionDelete); err != nil {
		return err
	}
	assignment, err := s.assignmentRepository.Read(assignmentID)
	if err != nil {
		return err
	}

	err = s.assignmentRepository.Transaction(func(tx shared.DB) error {
		if err := s.assignmentRepository.Delete(tx, assignmentID); err != nil {
			return err
		}
		s.auditLogService.Log(tx, shared.AuditEntry{
			Actor:       actor,
			Action:      models.AuditActionDelete,
			ModelName:   "user_role_assignment",
			ObjectID:    assignmentID.String(),
			Description: fmt.Sprintf("revoked role %s from user %s", assignment.Role.Code, assignment.UserID),
		})
		return nil
	})
	if err != nil {
		return err
	}
	s.scopeResolver.Invalidate(assignment.UserID)
	return nil
}

// ListForUser lets everybody see their own assignments.
func (s *roleAssignmentService) ListForUser(actor shared.Actor, userID string) ([]models.UserRoleAssignment, error) {
	if actor.IsAnonymous() || actor.UserID != userID {
		if err := s.authorize(actor, shared.ActionRead); err != nil {
			return nil, err
		}
	}
	return s.assignmentRepository.ListByUser(userID)
}

func (s *roleAssignmentService) SeedRoles() error {
	return s.roleRepository.Transaction(func(tx shared.DB) error {
		for _, role := range DefaultRoles {
			r := role
			if err := s.roleRepository.Upsert(tx, &r); err != nil {
				return fmt.Errorf("could not seed role %s: %w", role.Code, err)
			}
		}
		return nil
	})
}
