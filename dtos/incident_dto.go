package dtos

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
)

type CreateIncidentRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	PlacementRequest
}

type CreateUrgentIncidentRequest struct {
	CreateIncidentRequest
	ReporterName  string `json:"reporterName" validate:"max=255"`
	ReporterPhone string `json:"reporterPhone" validate:"max=50"`
}

type CreateSecretIncidentRequest struct {
	Title        string `json:"title" validate:"required,max=255"`
	Description  string `json:"description" validate:"required"`
	SecretReason string `json:"secretReason" validate:"required"`
}

// SecretIncidentCreatedResponse is the only response which ever carries the
// secret key.
type SecretIncidentCreatedResponse struct {
	Number    string `json:"number"`
	SecretKey string `json:"secretKey"`
}

type TrackSecretIncidentRequest struct {
	Token string `json:"token"`
}

type SecretIncidentEventDTO struct {
	Action    models.IncidentEventAction `json:"action"`
	ToStatus  models.IncidentStatus      `json:"toStatus"`
	CreatedAt time.Time                  `json:"createdAt"`
}

// SecretIncidentStatusDTO leaks no actor information.
type SecretIncidentStatusDTO struct {
	Number    string                   `json:"number"`
	Title     string                   `json:"title"`
	Status    models.IncidentStatus    `json:"status"`
	CreatedAt time.Time                `json:"createdAt"`
	HandledAt *time.Time               `json:"handledAt"`
	Events    []SecretIncidentEventDTO `json:"events"`
}

func SecretIncidentToStatusDTO(incident models.Incident, events []models.IncidentEvent) SecretIncidentStatusDTO {
	dto := SecretIncidentStatusDTO{
		Number:    incident.Number,
		Title:     incident.Title,
		Status:    incident.Status,
		CreatedAt: incident.CreatedAt,
		HandledAt: incident.HandledAt,
		Events:    make([]SecretIncidentEventDTO, 0, len(events)),
	}
	for _, ev := range events {
		// notes may name staff members
		if ev.Action == models.IncidentEventNote || ev.Action == models.IncidentEventAssign {
			continue
		}
		dto.Events = append(dto.Events, SecretIncidentEventDTO{
			Action:    ev.Action,
			ToStatus:  ev.ToStatus,
			CreatedAt: ev.CreatedAt,
		})
	}
	return dto
}

type ChangeIncidentStatusRequest struct {
	Status models.IncidentStatus `json:"status" validate:"required"`
	Note   string                `json:"note"`
}

type IncidentNoteRequest struct {
	Note string `json:"note" validate:"required"`
}

type AssignIncidentRequest struct {
	AssigneeID string `json:"assigneeId" validate:"required"`
	Note       string `json:"note"`
}

type EscalateIncidentRequest struct {
	Note string `json:"note"`
}

type LinkRiskRequest struct {
	RiskID uuid.UUID `json:"riskId" validate:"required"`
}

type IncidentListFilter struct {
	Status       models.IncidentStatus `query:"status"`
	IncidentType models.IncidentType   `query:"type"`
	Search       string                `query:"search"`
}

type IncidentEventDTO struct {
	ID         uuid.UUID                  `json:"id"`
	Action     models.IncidentEventAction `json:"action"`
	FromStatus models.IncidentStatus      `json:"fromStatus"`
	ToStatus   models.IncidentStatus      `json:"toStatus"`
	Note       string                     `json:"note"`
	ActorID    *string                    `json:"actorId"`
	ActorLabel string                     `json:"actorLabel"`
	Data       map[string]any             `json:"data,omitempty"`
	CreatedAt  time.Time                  `json:"createdAt"`
}

func IncidentEventToDTO(ev models.IncidentEvent) IncidentEventDTO {
	var data map[string]any
	if ev.ArbitraryJSONData != "" {
		data = ev.GetArbitraryJSONData()
	}
	return IncidentEventDTO{
		ID:         ev.ID,
		Action:     ev.Action,
		FromStatus: ev.FromStatus,
		ToStatus:   ev.ToStatus,
		Note:       ev.Note,
		ActorID:    ev.ActorID,
		ActorLabel: ev.ActorLabel,
		Data:       data,
		CreatedAt:  ev.CreatedAt,
	}
}
