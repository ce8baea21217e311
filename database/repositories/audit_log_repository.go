package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type auditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *auditLogRepository {
	return &auditLogRepository{db: db}
}

// CreateInSavepoint writes the entry inside a nested transaction. A failing
// insert only rolls back to the savepoint and leaves tx usable.
func (r *auditLogRepository) CreateInSavepoint(tx *gorm.DB, entry *models.AuditLog) error {
	if tx == nil {
		return r.db.Create(entry).Error
	}
	return tx.Transaction(func(sp *gorm.DB) error {
		return sp.Create(entry).Error
	})
}

func (r *auditLogRepository) List(pageInfo shared.PageInfo, filter dtos.AuditLogFilter) (shared.Paged[models.AuditLog], error) {
	q := r.db.Model(&models.AuditLog{})
	if filter.Action != "" {
		q = q.Where("action = ?", filter.Action)
	}
	if filter.ModelName != "" {
		q = q.Where("model_name = ?", filter.ModelName)
	}
	if filter.ActorID != "" {
		q = q.Where("actor_id = ?", filter.ActorID)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return shared.Paged[models.AuditLog]{}, err
	}

	var entries []models.AuditLog
	if err := pageInfo.ApplyOnDB(q).Order("created_at DESC").Find(&entries).Error; err != nil {
		return shared.Paged[models.AuditLog]{}, err
	}
	return shared.NewPaged(pageInfo, total, entries), nil
}

type systemContentRepository struct {
	*GormRepository[uuid.UUID, models.SystemContent]
	db *gorm.DB
}

func NewSystemContentRepository(db *gorm.DB) *systemContentRepository {
	return &systemContentRepository{
		GormRepository: newGormRepository[uuid.UUID, models.SystemContent](db),
		db:             db,
	}
}

func (r *systemContentRepository) ReadByType(contentType models.SystemContentType) (models.SystemContent, error) {
	var content models.SystemContent
	err := r.db.Where("content_type = ?", contentType).First(&content).Error
	return content, notFound[models.SystemContent](err)
}

func (r *systemContentRepository) Upsert(tx *gorm.DB, content *models.SystemContent) error {
	return translateError(r.GetDB(tx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "content_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "body", "is_active", "updated_at"}),
	}).Create(content).Error)
}

var (
	_ shared.AuditLogRepository      = (*auditLogRepository)(nil)
	_ shared.SystemContentRepository = (*systemContentRepository)(nil)
)
