// Copyright (C) 2026 l3montree GmbH
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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package models

import (
	"time"

	"github.com/google/uuid"
)

type IncidentType string

const (
	IncidentTypeNormal IncidentType = "normal"
	IncidentTypeUrgent IncidentType = "urgent"
	IncidentTypeSecret IncidentType = "secret"
)

type IncidentStatus string

const (
	IncidentStatusOpen       IncidentStatus = "open"
	IncidentStatusInProgress IncidentStatus = "in_progress"
	IncidentStatusClosed     IncidentStatus = "closed"
)

type Incident struct {
	Model
	Number       string         `json:"number" gorm:"type:text;not null;uniqueIndex"`
	Title        string         `json:"title" gorm:"type:text;not null"`
	Description  string         `json:"description" gorm:"type:text;not null"`
	IncidentType IncidentType   `json:"incidentType" gorm:"type:text;not null"`
	Status       IncidentStatus `json:"status" gorm:"type:text;not null"`

	OrgPlacement

	// only present for secret incidents. Never serialized.
	SecretKey    *string `json:"-" gorm:"type:text;uniqueIndex"`
	SecretReason string  `json:"secretReason,omitempty" gorm:"type:text"`

	HandledAt   *time.Time `json:"handledAt"`
	EscalatedAt *time.Time `json:"escalatedAt"`

	RiskID *uuid.UUID `json:"riskId" gorm:"type:uuid"`

	CreatedByID   *string `json:"createdById" gorm:"type:text;index"`
	CreatedByName string  `json:"createdByName" gorm:"type:text"`
	AssignedToID  *string `json:"assignedToId" gorm:"type:text;index"`

	// filled when staff relay a phone or walk-in report
	ReporterName  string `json:"reporterName,omitempty" gorm:"type:text"`
	ReporterPhone string `json:"reporterPhone,omitempty" gorm:"type:text"`

	Events []IncidentEvent `json:"events,omitempty" gorm:"foreignKey:IncidentID;constraint:OnDelete:CASCADE"`
}

func (Incident) TableName() string {
	return "incidents"
}

func (i Incident) IsCreatedBy(userID string) bool {
	return userID != "" && i.CreatedByID != nil && *i.CreatedByID == userID
}

func (i Incident) IsAssignedTo(userID string) bool {
	return userID != "" && i.AssignedToID != nil && *i.AssignedToID == userID
}

// IncidentSequence is the per year counter behind incident numbers.
type IncidentSequence struct {
	Year  int `gorm:"primaryKey;autoIncrement:false"`
	Value int `gorm:"not null"`
}

func (IncidentSequence) TableName() string {
	return "incident_sequences"
}
