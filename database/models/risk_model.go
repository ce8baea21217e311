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
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RiskStatus string

const (
	RiskStatusDraft      RiskStatus = "draft"
	RiskStatusSubmitted  RiskStatus = "submitted"
	RiskStatusApproved   RiskStatus = "approved"
	RiskStatusRejected   RiskStatus = "rejected"
	RiskStatusInProgress RiskStatus = "in_progress"
	RiskStatusClosed     RiskStatus = "closed"
)

type RiskScopeType string

const (
	RiskScopeGeneral    RiskScopeType = "general"
	RiskScopeBranch     RiskScopeType = "branch"
	RiskScopeDepartment RiskScopeType = "department"
	RiskScopeSection    RiskScopeType = "section"
)

func (s RiskScopeType) Level() OrgLevel {
	switch s {
	case RiskScopeBranch:
		return OrgLevelBranch
	case RiskScopeDepartment:
		return OrgLevelDepartment
	case RiskScopeSection:
		return OrgLevelSection
	}
	return OrgLevelNone
}

const (
	MinRiskRating = 1
	MaxRiskRating = 5

	HighRiskThreshold   = 15
	MediumRiskThreshold = 7
)

type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

func ClassifyRiskScore(score int) RiskLevel {
	switch {
	case score >= HighRiskThreshold:
		return RiskLevelHigh
	case score >= MediumRiskThreshold:
		return RiskLevelMedium
	}
	return RiskLevelLow
}

type Risk struct {
	Model
	Title       string `json:"title" gorm:"type:text;not null"`
	Description string `json:"description" gorm:"type:text;not null"`

	CategoryID     uuid.UUID       `json:"categoryId" gorm:"type:uuid;not null"`
	SubCategoryID  uuid.UUID       `json:"subCategoryId" gorm:"type:uuid;not null"`
	CauseID        uuid.UUID       `json:"causeId" gorm:"type:uuid;not null"`
	AffectedGroups []AffectedGroup `json:"affectedGroups" gorm:"many2many:risk_affected_groups;"`

	Severity   int `json:"severity" gorm:"not null"`
	Likelihood int `json:"likelihood" gorm:"not null"`
	// derived. Always Severity * Likelihood after a save.
	RiskScore int `json:"riskScore" gorm:"not null"`

	CorrectiveAction string `json:"correctiveAction" gorm:"type:text"`
	PreventiveAction string `json:"preventiveAction" gorm:"type:text"`

	OwnerDepartmentID *uuid.UUID `json:"ownerDepartmentId" gorm:"type:uuid"`
	OwnerPerson       string     `json:"ownerPerson" gorm:"type:text"`
	ContactChannel    string     `json:"contactChannel" gorm:"type:text"`

	ScopeType RiskScopeType `json:"scopeType" gorm:"type:text;not null"`
	OrgPlacement

	Status RiskStatus `json:"status" gorm:"type:text;not null"`

	CreatedByID   string `json:"createdById" gorm:"type:text;not null"`
	CreatedByName string `json:"createdByName" gorm:"type:text"`

	ReferenceID *uuid.UUID `json:"referenceId" gorm:"type:uuid"`
}

func (Risk) TableName() string {
	return "risks"
}

func (r *Risk) RecalculateScore() {
	r.RiskScore = r.Severity * r.Likelihood
}

func (r *Risk) BeforeSave(tx *gorm.DB) error {
	r.RecalculateScore()
	return nil
}

func (r Risk) Level() RiskLevel {
	return ClassifyRiskScore(r.Severity * r.Likelihood)
}

// Node is the placement the scope check runs against. The scope type decides
// which of the stored references is authoritative.
func (r Risk) Node() OrgPlacement {
	return r.OrgPlacement.Truncate(r.ScopeType.Level())
}

type RiskCategory struct {
	Model
	Name        string `json:"name" gorm:"type:text;not null;uniqueIndex"`
	Description string `json:"description" gorm:"type:text"`
}

func (RiskCategory) TableName() string {
	return "risk_categories"
}

type RiskSubCategory struct {
	Model
	CategoryID uuid.UUID `json:"categoryId" gorm:"type:uuid;not null"`
	Name       string    `json:"name" gorm:"type:text;not null"`
}

func (RiskSubCategory) TableName() string {
	return "risk_sub_categories"
}

type RiskCause struct {
	Model
	SubCategoryID uuid.UUID `json:"subCategoryId" gorm:"type:uuid;not null"`
	Name          string    `json:"name" gorm:"type:text;not null"`
}

func (RiskCause) TableName() string {
	return "risk_causes"
}

type AffectedGroup struct {
	Model
	Name string `json:"name" gorm:"type:text;not null;uniqueIndex"`
}

func (AffectedGroup) TableName() string {
	return "affected_groups"
}
