package dtos

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
)

type CreateFormTemplateRequest struct {
	Title       string                `json:"title" validate:"required,max=255"`
	Description string                `json:"description"`
	Visibility  models.FormVisibility `json:"visibility" validate:"required,oneof=public restricted"`
	PlacementRequest
}

type AddFormFieldRequest struct {
	Label      string               `json:"label" validate:"required,max=255"`
	FieldType  models.FormFieldType `json:"fieldType" validate:"required,oneof=text number textarea select radio checkbox date"`
	IsRequired bool                 `json:"isRequired"`
	Order      int                  `json:"order" validate:"min=0"`
	Options    []string             `json:"options"`
}

type FormAnswerInput struct {
	FieldID uuid.UUID `json:"fieldId" validate:"required"`
	Value   string    `json:"value"`
}

type SubmitFormRequest struct {
	Answers []FormAnswerInput `json:"answers" validate:"dive"`
}

type SetFormActiveRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

type AttachRiskReferencesRequest struct {
	ReferenceIDs []uuid.UUID `json:"referenceIds" validate:"required,min=1"`
}

type UpsertSystemContentRequest struct {
	Title    string `json:"title" validate:"required,max=255"`
	Body     string `json:"body"`
	IsActive bool   `json:"isActive"`
}

type AuditLogFilter struct {
	Action    models.AuditAction `query:"action"`
	ModelName string             `query:"modelName"`
	ActorID   string             `query:"actorId"`
}
