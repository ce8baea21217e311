// Copyright (C) 2023 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package repositories

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type incidentRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Incident]
}

func NewIncidentRepository(db *gorm.DB) *incidentRepository {
	return &incidentRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Incident](db),
	}
}

func (r *incidentRepository) Create(tx *gorm.DB, permit shared.WritePermit, incident *models.Incident) error {
	if err := permit.Require(shared.WriteScopeIncident); err != nil {
		return err
	}
	return translateError(r.GetDB(tx).Omit(clause.Associations).Create(incident).Error)
}

func (r *incidentRepository) Save(tx *gorm.DB, permit shared.WritePermit, incident *models.Incident) error {
	if err := permit.Require(shared.WriteScopeIncident); err != nil {
		return err
	}
	return r.GormRepository.Save(tx, incident)
}

func (r *incidentRepository) ReadForUpdate(tx *gorm.DB, id uuid.UUID) (models.Incident, error) {
	var incident models.Incident
	err := r.GetDB(tx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&incident, "id = ?", id).Error
	return incident, notFound[models.Incident](err)
}

func (r *incidentRepository) ReadBySecretKey(secretKey string) (models.Incident, error) {
	var incident models.Incident
	err := r.db.Where("secret_key = ? AND incident_type = ?", secretKey, models.IncidentTypeSecret).First(&incident).Error
	return incident, notFound[models.Incident](err)
}

// NextNumber hands out the next per-year sequence value. The row lock of the
// upsert serializes concurrent callers until their transaction ends.
func (r *incidentRepository) NextNumber(tx *gorm.DB, year int) (int, error) {
	var value int
	err := r.GetDB(tx).Raw(`INSERT INTO incident_sequences (year, value) VALUES (?, 1)
		ON CONFLICT (year) DO UPDATE SET value = incident_sequences.value + 1
		RETURNING value`, year).Scan(&value).Error
	if err != nil {
		return 0, fmt.Errorf("could not allocate incident number: %w", err)
	}
	return value, nil
}

func (r *incidentRepository) ListVisible(filter shared.VisibilityFilter, pageInfo shared.PageInfo, query dtos.IncidentListFilter) (shared.Paged[models.Incident], error) {
	q := r.db.Model(&models.Incident{}).Scopes(incidentVisibility("incidents", filter))
	if query.Status != "" {
		q = q.Where("incidents.status = ?", query.Status)
	}
	if query.IncidentType != "" {
		q = q.Where("incidents.incident_type = ?", query.IncidentType)
	}
	if search := strings.TrimSpace(query.Search); search != "" {
		pattern := "%" + search + "%"
		q = q.Where("(incidents.title ILIKE ? OR incidents.number ILIKE ?)", pattern, pattern)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return shared.Paged[models.Incident]{}, err
	}

	var incidents []models.Incident
	err := pageInfo.ApplyOnDB(q).Order("incidents.created_at DESC").Find(&incidents).Error
	if err != nil {
		return shared.Paged[models.Incident]{}, err
	}
	return shared.NewPaged(pageInfo, total, incidents), nil
}

type incidentEventRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.IncidentEvent]
}

func NewIncidentEventRepository(db *gorm.DB) *incidentEventRepository {
	return &incidentEventRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.IncidentEvent](db),
	}
}

func (r *incidentEventRepository) ListByIncident(incidentID uuid.UUID) ([]models.IncidentEvent, error) {
	var events []models.IncidentEvent
	err := r.db.Where("incident_id = ?", incidentID).Order("created_at ASC").Find(&events).Error
	return events, err
}

var (
	_ shared.IncidentRepository      = (*incidentRepository)(nil)
	_ shared.IncidentEventRepository = (*incidentEventRepository)(nil)
)
