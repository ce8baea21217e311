package models

import (
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
)

type IncidentEventAction string

const (
	IncidentEventCreate   IncidentEventAction = "create"
	IncidentEventProgress IncidentEventAction = "progress"
	IncidentEventClose    IncidentEventAction = "close"
	IncidentEventNote     IncidentEventAction = "note"
	IncidentEventAssign   IncidentEventAction = "assign"
	IncidentEventEscalate IncidentEventAction = "escalate"
	IncidentEventLinkRisk IncidentEventAction = "link_risk"
)

// IncidentEvent is written exactly once per lifecycle operation and never updated.
type IncidentEvent struct {
	Model
	IncidentID uuid.UUID           `json:"incidentId" gorm:"type:uuid;not null;index"`
	Action     IncidentEventAction `json:"action" gorm:"type:text;not null"`
	FromStatus IncidentStatus      `json:"fromStatus" gorm:"type:text;not null;default:''"`
	ToStatus   IncidentStatus      `json:"toStatus" gorm:"type:text;not null;default:''"`
	Note       string              `json:"note" gorm:"type:text"`
	ActorID    *string             `json:"actorId" gorm:"type:text"`
	ActorLabel string              `json:"actorLabel" gorm:"type:text;not null"`

	ArbitraryJSONData string `json:"arbitraryJSONData" gorm:"type:text;"`
	arbitraryJSONData map[string]any
}

func (IncidentEvent) TableName() string {
	return "incident_events"
}

func (event *IncidentEvent) GetArbitraryJSONData() map[string]any {
	if event.ArbitraryJSONData == "" {
		return make(map[string]any)
	}
	if event.arbitraryJSONData == nil {
		event.arbitraryJSONData = make(map[string]any)
		err := json.Unmarshal([]byte(event.ArbitraryJSONData), &event.arbitraryJSONData)
		if err != nil {
			slog.Error("could not parse additional data", "err", err, "incidentEventID", event.ID)
		}
	}
	return event.arbitraryJSONData
}

func (event *IncidentEvent) SetArbitraryJSONData(data map[string]any) {
	event.arbitraryJSONData = data
	dataBytes, err := json.Marshal(event.arbitraryJSONData)
	if err != nil {
		slog.Error("could not marshal additional data", "err", err, "incidentEventID", event.ID)
	}
	event.ArbitraryJSONData = string(dataBytes)
}

func NewIncidentCreatedEvent(incidentID uuid.UUID, actorID *string, actorLabel string) IncidentEvent {
	return IncidentEvent{
		IncidentID: incidentID,
		Action:     IncidentEventCreate,
		FromStatus: "",
		ToStatus:   IncidentStatusOpen,
		ActorID:    actorID,
		ActorLabel: actorLabel,
	}
}

func NewIncidentStatusEvent(incidentID uuid.UUID, action IncidentEventAction, from, to IncidentStatus, actorID *string, actorLabel, note string) IncidentEvent {
	return IncidentEvent{
		IncidentID: incidentID,
		Action:     action,
		FromStatus: from,
		ToStatus:   to,
		Note:       note,
		ActorID:    actorID,
		ActorLabel: actorLabel,
	}
}

// side operations keep the status: from and to are both the current status
func newIncidentSideEvent(incidentID uuid.UUID, action IncidentEventAction, status IncidentStatus, actorID *string, actorLabel, note string) IncidentEvent {
	return IncidentEvent{
		IncidentID: incidentID,
		Action:     action,
		FromStatus: status,
		ToStatus:   status,
		Note:       note,
		ActorID:    actorID,
		ActorLabel: actorLabel,
	}
}

func NewIncidentNoteEvent(incidentID uuid.UUID, status IncidentStatus, actorID *string, actorLabel, note string) IncidentEvent {
	return newIncidentSideEvent(incidentID, IncidentEventNote, status, actorID, actorLabel, note)
}

func NewIncidentAssignedEvent(incidentID uuid.UUID, status IncidentStatus, assigneeID string, actorID *string, actorLabel, note string) IncidentEvent {
	ev := newIncidentSideEvent(incidentID, IncidentEventAssign, status, actorID, actorLabel, note)
	ev.SetArbitraryJSONData(map[string]any{"assigneeId": assigneeID})
	return ev
}

func NewIncidentEscalatedEvent(incidentID uuid.UUID, status IncidentStatus, actorID *string, actorLabel, note string) IncidentEvent {
	return newIncidentSideEvent(incidentID, IncidentEventEscalate, status, actorID, actorLabel, note)
}

func NewIncidentRiskLinkedEvent(incidentID uuid.UUID, status IncidentStatus, riskID uuid.UUID, actorID *string, actorLabel string) IncidentEvent {
	ev := newIncidentSideEvent(incidentID, IncidentEventLinkRisk, status, actorID, actorLabel, "linked risk "+riskID.String())
	ev.SetArbitraryJSONData(map[string]any{"riskId": riskID.String()})
	return ev
}
