package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type roleRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Role]
}

func NewRoleRepository(db *gorm.DB) *roleRepository {
	return &roleRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Role](db),
	}
}

func (r *roleRepository) All() ([]models.Role, error) {
	var roles []models.Role
	err := r.db.Order("code ASC").Find(&roles).Error
	return roles, err
}

func (r *roleRepository) ReadByCode(code string) (models.Role, error) {
	var role models.Role
	err := r.db.Where("code = ?", code).First(&role).Error
	return role, notFound[models.Role](err)
}

func (r *roleRepository) Upsert(tx *gorm.DB, role *models.Role) error {
	return r.GetDB(tx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "is_global", "description", "updated_at"}),
	}).Create(role).Error
}

type userRoleAssignmentRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.UserRoleAssignment]
}

func NewUserRoleAssignmentRepository(db *gorm.DB) *userRoleAssignmentRepository {
	return &userRoleAssignmentRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.UserRoleAssignment](db),
	}
}

func (r *userRoleAssignmentRepository) Create(tx *gorm.DB, assignment *models.UserRoleAssignment) error {
	if err := r.GetDB(tx).Omit("Role").Create(assignment).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *userRoleAssignmentRepository) Read(id uuid.UUID) (models.UserRoleAssignment, error) {
	var assignment models.UserRoleAssignment
	err := r.db.Preload("Role").First(&assignment, "id = ?", id).Error
	return assignment, notFound[models.UserRoleAssignment](err)
}

func (r *userRoleAssignmentRepository) ListByUser(userID string) ([]models.UserRoleAssignment, error) {
	var assignments []models.UserRoleAssignment
	err := r.db.Preload("Role").Where("user_id = ?", userID).Order("assigned_at ASC").Find(&assignments).Error
	return assignments, err
}

var (
	_ shared.RoleRepository               = (*roleRepository)(nil)
	_ shared.UserRoleAssignmentRepository = (*userRoleAssignmentRepository)(nil)
)
