package models

import (
	"time"

	"github.com/google/uuid"
)

type Role struct {
	Model
	Code        string `json:"code" gorm:"type:text;not null;uniqueIndex"`
	Name        string `json:"name" gorm:"type:text;not null"`
	IsGlobal    bool   `json:"isGlobal" gorm:"not null;default:false"`
	Description string `json:"description" gorm:"type:text"`
}

func (Role) TableName() string {
	return "roles"
}

// UserRoleAssignment links a user to a role. The embedded placement is the scope pin.
type UserRoleAssignment struct {
	Model
	UserID string    `json:"userId" gorm:"type:text;not null;index"`
	RoleID uuid.UUID `json:"roleId" gorm:"type:uuid;not null"`
	Role   Role      `json:"role" gorm:"foreignKey:RoleID"`
	OrgPlacement
	AssignedAt time.Time `json:"assignedAt"`
}

func (UserRoleAssignment) TableName() string {
	return "user_role_assignments"
}

// IsPinned is false for assignments without any branch, department or section.
func (a UserRoleAssignment) IsPinned() bool {
	return !a.OrgPlacement.IsEmpty()
}
