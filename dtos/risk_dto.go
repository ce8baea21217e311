package dtos

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
)

type CreateRiskRequest struct {
	Title            string      `json:"title" validate:"required,max=255"`
	Description      string      `json:"description" validate:"required"`
	CategoryID       uuid.UUID   `json:"categoryId" validate:"required"`
	SubCategoryID    uuid.UUID   `json:"subCategoryId" validate:"required"`
	CauseID          uuid.UUID   `json:"causeId" validate:"required"`
	AffectedGroupIDs []uuid.UUID `json:"affectedGroupIds"`

	Severity   int `json:"severity" validate:"required,min=1,max=5"`
	Likelihood int `json:"likelihood" validate:"required,min=1,max=5"`

	CorrectiveAction  string     `json:"correctiveAction"`
	PreventiveAction  string     `json:"preventiveAction"`
	OwnerDepartmentID *uuid.UUID `json:"ownerDepartmentId"`
	OwnerPerson       string     `json:"ownerPerson"`
	ContactChannel    string     `json:"contactChannel"`

	ScopeType models.RiskScopeType `json:"scopeType" validate:"required,oneof=general branch department section"`
	PlacementRequest
}

type CreateRiskFromReferenceRequest struct {
	ReferenceID uuid.UUID            `json:"referenceId" validate:"required"`
	Title       string               `json:"title"`
	Severity    *int                 `json:"severity" validate:"omitempty,min=1,max=5"`
	Likelihood  *int                 `json:"likelihood" validate:"omitempty,min=1,max=5"`
	ScopeType   models.RiskScopeType `json:"scopeType" validate:"required,oneof=general branch department section"`
	PlacementRequest
}

// UpdateRiskAssessmentRequest only touches the fields which are set.
type UpdateRiskAssessmentRequest struct {
	Title            *string      `json:"title" validate:"omitempty,max=255"`
	Description      *string      `json:"description"`
	Severity         *int         `json:"severity" validate:"omitempty,min=1,max=5"`
	Likelihood       *int         `json:"likelihood" validate:"omitempty,min=1,max=5"`
	CorrectiveAction *string      `json:"correctiveAction"`
	PreventiveAction *string      `json:"preventiveAction"`
	OwnerPerson      *string      `json:"ownerPerson"`
	ContactChannel   *string      `json:"contactChannel"`
	AffectedGroupIDs *[]uuid.UUID `json:"affectedGroupIds"`
}

type RiskTransitionRequest struct {
	Note string `json:"note"`
}

type RejectRiskRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type RiskNoteRequest struct {
	Note string `json:"note" validate:"required"`
}

type RiskListFilter struct {
	Status     models.RiskStatus    `query:"status"`
	ScopeType  models.RiskScopeType `query:"scopeType"`
	CategoryID *uuid.UUID           `query:"categoryId"`
	Search     string               `query:"search"`
}

type RiskDTO struct {
	models.Risk
	Level models.RiskLevel `json:"level"`
}

func RiskToDTO(risk models.Risk) RiskDTO {
	return RiskDTO{Risk: risk, Level: risk.Level()}
}

type RiskDetailDTO struct {
	RiskDTO
	Events []models.RiskEvent `json:"events"`
	Notes  []models.RiskNote  `json:"notes"`
}

type CreateRiskCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
}

type CreateNamedTaxonomyRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type CreateRiskReferenceRequest struct {
	Title             string      `json:"title" validate:"required,max=255"`
	Description       string      `json:"description" validate:"required"`
	CategoryID        uuid.UUID   `json:"categoryId" validate:"required"`
	SubCategoryID     uuid.UUID   `json:"subCategoryId" validate:"required"`
	CauseID           uuid.UUID   `json:"causeId" validate:"required"`
	AffectedGroupIDs  []uuid.UUID `json:"affectedGroupIds"`
	DefaultSeverity   *int        `json:"defaultSeverity" validate:"omitempty,min=1,max=5"`
	DefaultLikelihood *int        `json:"defaultLikelihood" validate:"omitempty,min=1,max=5"`
	CorrectiveAction  string      `json:"correctiveAction"`
	PreventiveAction  string      `json:"preventiveAction"`
}
