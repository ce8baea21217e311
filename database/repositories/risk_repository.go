package repositories

import (
	"strings"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type riskRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Risk]
}

func NewRiskRepository(db *gorm.DB) *riskRepository {
	return &riskRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Risk](db),
	}
}

func (r *riskRepository) Create(tx *gorm.DB, permit shared.WritePermit, risk *models.Risk) error {
	if err := permit.Require(shared.WriteScopeRisk); err != nil {
		return err
	}
	return translateError(r.GetDB(tx).Omit(clause.Associations).Create(risk).Error)
}

func (r *riskRepository) Save(tx *gorm.DB, permit shared.WritePermit, risk *models.Risk) error {
	if err := permit.Require(shared.WriteScopeRisk); err != nil {
		return err
	}
	return r.GormRepository.Save(tx, risk)
}

func (r *riskRepository) ReplaceAffectedGroups(tx *gorm.DB, permit shared.WritePermit, risk *models.Risk, groups []models.AffectedGroup) error {
	if err := permit.Require(shared.WriteScopeRisk); err != nil {
		return err
	}
	if err := r.GetDB(tx).Model(risk).Association("AffectedGroups").Replace(groups); err != nil {
		return translateError(err)
	}
	risk.AffectedGroups = groups
	return nil
}

func (r *riskRepository) Read(id uuid.UUID) (models.Risk, error) {
	var risk models.Risk
	err := r.db.Preload("AffectedGroups").First(&risk, "id = ?", id).Error
	return risk, notFound[models.Risk](err)
}

func (r *riskRepository) ReadForUpdate(tx *gorm.DB, id uuid.UUID) (models.Risk, error) {
	var risk models.Risk
	err := r.GetDB(tx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&risk, "id = ?", id).Error
	if err != nil {
		return risk, notFound[models.Risk](err)
	}
	// FOR UPDATE cannot be combined with the join table preload
	err = r.GetDB(tx).Model(&risk).Association("AffectedGroups").Find(&risk.AffectedGroups)
	return risk, err
}

func (r *riskRepository) ListVisible(filter shared.VisibilityFilter, pageInfo shared.PageInfo, query dtos.RiskListFilter) (shared.Paged[models.Risk], error) {
	q := r.db.Model(&models.Risk{}).Scopes(riskVisibility("risks", filter))
	if query.Status != "" {
		q = q.Where("risks.status = ?", query.Status)
	}
	if query.ScopeType != "" {
		q = q.Where("risks.scope_type = ?", query.ScopeType)
	}
	if query.CategoryID != nil {
		q = q.Where("risks.category_id = ?", *query.CategoryID)
	}
	if search := strings.TrimSpace(query.Search); search != "" {
		q = q.Where("risks.title ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return shared.Paged[models.Risk]{}, err
	}

	var risks []models.Risk
	err := pageInfo.ApplyOnDB(q).Preload("AffectedGroups").
		Order("risks.risk_score DESC").Order("risks.created_at DESC").
		Find(&risks).Error
	if err != nil {
		return shared.Paged[models.Risk]{}, err
	}
	return shared.NewPaged(pageInfo, total, risks), nil
}

type riskEventRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.RiskEvent]
}

func NewRiskEventRepository(db *gorm.DB) *riskEventRepository {
	return &riskEventRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.RiskEvent](db),
	}
}

func (r *riskEventRepository) ListByRisk(riskID uuid.UUID) ([]models.RiskEvent, error) {
	var events []models.RiskEvent
	err := r.db.Where("risk_id = ?", riskID).Order("created_at ASC").Find(&events).Error
	return events, err
}

// riskNoteRepository only appends. There is no update or delete path.
type riskNoteRepository struct {
	db *gorm.DB
}

func NewRiskNoteRepository(db *gorm.DB) *riskNoteRepository {
	return &riskNoteRepository{db: db}
}

func (r *riskNoteRepository) Create(tx *gorm.DB, note *models.RiskNote) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return translateError(db.Create(note).Error)
}

func (r *riskNoteRepository) ListByRisk(riskID uuid.UUID) ([]models.RiskNote, error) {
	var notes []models.RiskNote
	err := r.db.Where("risk_id = ?", riskID).Order("created_at ASC").Find(&notes).Error
	return notes, err
}

var (
	_ shared.RiskRepository      = (*riskRepository)(nil)
	_ shared.RiskEventRepository = (*riskEventRepository)(nil)
	_ shared.RiskNoteRepository  = (*riskNoteRepository)(nil)
)
