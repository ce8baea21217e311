package models

import "github.com/google/uuid"

// RiskReference is an entry of the reference registry. Forms link to it and
// risks can be created from it with its default ratings.
type RiskReference struct {
	Model
	Title       string `json:"title" gorm:"type:text;not null"`
	Description string `json:"description" gorm:"type:text;not null"`

	CategoryID     uuid.UUID       `json:"categoryId" gorm:"type:uuid;not null"`
	SubCategoryID  uuid.UUID       `json:"subCategoryId" gorm:"type:uuid;not null"`
	CauseID        uuid.UUID       `json:"causeId" gorm:"type:uuid;not null"`
	AffectedGroups []AffectedGroup `json:"affectedGroups" gorm:"many2many:risk_reference_affected_groups;"`

	DefaultSeverity   *int `json:"defaultSeverity"`
	DefaultLikelihood *int `json:"defaultLikelihood"`

	CorrectiveAction string `json:"correctiveAction" gorm:"type:text"`
	PreventiveAction string `json:"preventiveAction" gorm:"type:text"`

	IsActive  bool   `json:"isActive" gorm:"not null"`
	CreatedBy string `json:"createdBy" gorm:"type:text"`
}

func (RiskReference) TableName() string {
	return "risk_references"
}
