package dtos

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
)

type AssignRoleRequest struct {
	RoleCode string `json:"roleCode" validate:"required"`
	PlacementRequest
}

type RoleAssignmentDTO struct {
	ID           uuid.UUID  `json:"id"`
	UserID       string     `json:"userId"`
	RoleCode     string     `json:"roleCode"`
	RoleName     string     `json:"roleName"`
	IsGlobal     bool       `json:"isGlobal"`
	BranchID     *uuid.UUID `json:"branchId"`
	DepartmentID *uuid.UUID `json:"departmentId"`
	SectionID    *uuid.UUID `json:"sectionId"`
	AssignedAt   time.Time  `json:"assignedAt"`
}

func RoleAssignmentToDTO(a models.UserRoleAssignment) RoleAssignmentDTO {
	return RoleAssignmentDTO{
		ID:           a.ID,
		UserID:       a.UserID,
		RoleCode:     a.Role.Code,
		RoleName:     a.Role.Name,
		IsGlobal:     a.Role.IsGlobal,
		BranchID:     a.BranchID,
		DepartmentID: a.DepartmentID,
		SectionID:    a.SectionID,
		AssignedAt:   a.AssignedAt,
	}
}

type WhoAmIDTO struct {
	UserID      string              `json:"userId"`
	DisplayName string              `json:"displayName"`
	IsGlobal    bool                `json:"isGlobal"`
	Assignments []RoleAssignmentDTO `json:"assignments"`
	// nil for global roles
	Permissions map[string][]string `json:"permissions,omitempty"`
}
