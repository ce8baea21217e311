package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/shared"
	"gorm.io/gorm"
)

// riskTaxonomyRepository stores the category > sub category > cause tree and
// the flat list of affected groups.
type riskTaxonomyRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.RiskCategory]
}

func NewRiskTaxonomyRepository(db *gorm.DB) *riskTaxonomyRepository {
	return &riskTaxonomyRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.RiskCategory](db),
	}
}

func (r *riskTaxonomyRepository) CreateCategory(tx *gorm.DB, category *models.RiskCategory) error {
	return translateError(r.GetDB(tx).Create(category).Error)
}

func (r *riskTaxonomyRepository) CreateSubCategory(tx *gorm.DB, subCategory *models.RiskSubCategory) error {
	return translateError(r.GetDB(tx).Create(subCategory).Error)
}

func (r *riskTaxonomyRepository) CreateCause(tx *gorm.DB, cause *models.RiskCause) error {
	return translateError(r.GetDB(tx).Create(cause).Error)
}

func (r *riskTaxonomyRepository) CreateAffectedGroup(tx *gorm.DB, group *models.AffectedGroup) error {
	return translateError(r.GetDB(tx).Create(group).Error)
}

func (r *riskTaxonomyRepository) ReadCategory(id uuid.UUID) (models.RiskCategory, error) {
	return r.GormRepository.Read(id)
}

func (r *riskTaxonomyRepository) ReadSubCategory(id uuid.UUID) (models.RiskSubCategory, error) {
	var subCategory models.RiskSubCategory
	err := r.db.First(&subCategory, "id = ?", id).Error
	return subCategory, notFound[models.RiskSubCategory](err)
}

func (r *riskTaxonomyRepository) ReadCause(id uuid.UUID) (models.RiskCause, error) {
	var cause models.RiskCause
	err := r.db.First(&cause, "id = ?", id).Error
	return cause, notFound[models.RiskCause](err)
}

func (r *riskTaxonomyRepository) AllCategories() ([]models.RiskCategory, error) {
	var categories []models.RiskCategory
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *riskTaxonomyRepository) ListSubCategories(categoryID uuid.UUID) ([]models.RiskSubCategory, error) {
	var subCategories []models.RiskSubCategory
	err := r.db.Where("category_id = ?", categoryID).Order("name ASC").Find(&subCategories).Error
	return subCategories, err
}

func (r *riskTaxonomyRepository) ListCauses(subCategoryID uuid.UUID) ([]models.RiskCause, error) {
	var causes []models.RiskCause
	err := r.db.Where("sub_category_id = ?", subCategoryID).Order("name ASC").Find(&causes).Error
	return causes, err
}

func (r *riskTaxonomyRepository) AllAffectedGroups() ([]models.AffectedGroup, error) {
	var groups []models.AffectedGroup
	err := r.db.Order("name ASC").Find(&groups).Error
	return groups, err
}

func (r *riskTaxonomyRepository) ListAffectedGroups(ids []uuid.UUID) ([]models.AffectedGroup, error) {
	if len(ids) == 0 {
		return []models.AffectedGroup{}, nil
	}
	var groups []models.AffectedGroup
	err := r.db.Where("id IN ?", ids).Order("name ASC").Find(&groups).Error
	return groups, err
}

type riskReferenceRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.RiskReference]
}

func NewRiskReferenceRepository(db *gorm.DB) *riskReferenceRepository {
	return &riskReferenceRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.RiskReference](db),
	}
}

// Create stores the reference together with its affected group links.
func (r *riskReferenceRepository) Create(tx *gorm.DB, reference *models.RiskReference) error {
	return translateError(r.GetDB(tx).Omit("AffectedGroups.*").Create(reference).Error)
}

func (r *riskReferenceRepository) Read(id uuid.UUID) (models.RiskReference, error) {
	var reference models.RiskReference
	err := r.db.Preload("AffectedGroups").First(&reference, "id = ?", id).Error
	return reference, notFound[models.RiskReference](err)
}

func (r *riskReferenceRepository) ListActive() ([]models.RiskReference, error) {
	var references []models.RiskReference
	err := r.db.Preload("AffectedGroups").Where("is_active = ?", true).Order("title ASC").Find(&references).Error
	return references, err
}

func (r *riskReferenceRepository) ListActiveByIDs(ids []uuid.UUID) ([]models.RiskReference, error) {
	if len(ids) == 0 {
		return []models.RiskReference{}, nil
	}
	var references []models.RiskReference
	err := r.db.Where("id IN ? AND is_active = ?", ids, true).Find(&references).Error
	return references, err
}

var (
	_ shared.RiskTaxonomyRepository  = (*riskTaxonomyRepository)(nil)
	_ shared.RiskReferenceRepository = (*riskReferenceRepository)(nil)
)
