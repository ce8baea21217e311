package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type formTemplateRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.FormTemplate]
}

func NewFormTemplateRepository(db *gorm.DB) *formTemplateRepository {
	return &formTemplateRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.FormTemplate](db),
	}
}

func (r *formTemplateRepository) Create(tx *gorm.DB, permit shared.WritePermit, form *models.FormTemplate) error {
	if err := permit.Require(shared.WriteScopeForm); err != nil {
		return err
	}
	return translateError(r.GetDB(tx).Omit(clause.Associations).Create(form).Error)
}

func (r *formTemplateRepository) Save(tx *gorm.DB, permit shared.WritePermit, form *models.FormTemplate) error {
	if err := permit.Require(shared.WriteScopeForm); err != nil {
		return err
	}
	return r.GormRepository.Save(tx, form)
}

func (r *formTemplateRepository) CreateField(tx *gorm.DB, permit shared.WritePermit, field *models.FormField) error {
	if err := permit.Require(shared.WriteScopeForm); err != nil {
		return err
	}
	return translateError(r.GetDB(tx).Create(field).Error)
}

func (r *formTemplateRepository) ReplaceRiskReferences(tx *gorm.DB, permit shared.WritePermit, form *models.FormTemplate, references []models.RiskReference) error {
	if err := permit.Require(shared.WriteScopeForm); err != nil {
		return err
	}
	if err := r.GetDB(tx).Model(form).Omit("RiskReferences.*").Association("RiskReferences").Replace(references); err != nil {
		return translateError(err)
	}
	form.RiskReferences = references
	return nil
}

func (r *formTemplateRepository) Read(id uuid.UUID) (models.FormTemplate, error) {
	var form models.FormTemplate
	err := r.db.
		Preload("Fields", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC").Order("created_at ASC") }).
		Preload("RiskReferences").
		First(&form, "id = ?", id).Error
	return form, notFound[models.FormTemplate](err)
}

func (r *formTemplateRepository) List(pageInfo shared.PageInfo, onlyActive bool) (shared.Paged[models.FormTemplate], error) {
	q := r.db.Model(&models.FormTemplate{})
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return shared.Paged[models.FormTemplate]{}, err
	}

	var forms []models.FormTemplate
	if err := pageInfo.ApplyOnDB(q).Order("created_at DESC").Find(&forms).Error; err != nil {
		return shared.Paged[models.FormTemplate]{}, err
	}
	return shared.NewPaged(pageInfo, total, forms), nil
}

type formSubmissionRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.FormSubmission]
}

func NewFormSubmissionRepository(db *gorm.DB) *formSubmissionRepository {
	return &formSubmissionRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.FormSubmission](db),
	}
}

// Create inserts the submission and its answers in one statement batch.
func (r *formSubmissionRepository) Create(tx *gorm.DB, permit shared.WritePermit, submission *models.FormSubmission) error {
	if err := permit.Require(shared.WriteScopeForm); err != nil {
		return err
	}
	return translateError(r.GetDB(tx).Create(submission).Error)
}

func (r *formSubmissionRepository) ListByForm(formID uuid.UUID, pageInfo shared.PageInfo) (shared.Paged[models.FormSubmission], error) {
	q := r.db.Model(&models.FormSubmission{}).Where("form_id = ?", formID)

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return shared.Paged[models.FormSubmission]{}, err
	}

	var submissions []models.FormSubmission
	if err := pageInfo.ApplyOnDB(q).Preload("Answers").Order("submitted_at DESC").Find(&submissions).Error; err != nil {
		return shared.Paged[models.FormSubmission]{}, err
	}
	return shared.NewPaged(pageInfo, total, submissions), nil
}

type formEventRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.FormEvent]
}

func NewFormEventRepository(db *gorm.DB) *formEventRepository {
	return &formEventRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.FormEvent](db),
	}
}

var (
	_ shared.FormTemplateRepository   = (*formTemplateRepository)(nil)
	_ shared.FormSubmissionRepository = (*formSubmissionRepository)(nil)
	_ shared.FormEventRepository      = (*formEventRepository)(nil)
)
