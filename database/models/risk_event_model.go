package models

import (
	"time"

	"github.com/google/uuid"
)

type RiskEventAction string

const (
	RiskEventCreate  RiskEventAction = "create"
	RiskEventUpdate  RiskEventAction = "update"
	RiskEventSubmit  RiskEventAction = "submit"
	RiskEventApprove RiskEventAction = "approve"
	RiskEventReject  RiskEventAction = "reject"
	RiskEventStart   RiskEventAction = "start"
	RiskEventClose   RiskEventAction = "close"
	RiskEventNote    RiskEventAction = "note"
)

type RiskEvent struct {
	Model
	RiskID     uuid.UUID       `json:"riskId" gorm:"type:uuid;not null;index"`
	Action     RiskEventAction `json:"action" gorm:"type:text;not null"`
	FromStatus RiskStatus      `json:"fromStatus" gorm:"type:text;not null;default:''"`
	ToStatus   RiskStatus      `json:"toStatus" gorm:"type:text;not null;default:''"`
	Note       string          `json:"note" gorm:"type:text"`
	ActorID    string          `json:"actorId" gorm:"type:text;not null"`
	ActorLabel string          `json:"actorLabel" gorm:"type:text;not null"`
}

func (RiskEvent) TableName() string {
	return "risk_events"
}

func NewRiskEvent(riskID uuid.UUID, action RiskEventAction, from, to RiskStatus, actorID, actorLabel, note string) RiskEvent {
	return RiskEvent{
		RiskID:     riskID,
		Action:     action,
		FromStatus: from,
		ToStatus:   to,
		Note:       note,
		ActorID:    actorID,
		ActorLabel: actorLabel,
	}
}

// RiskNote is append-only and carries no UpdatedAt.
type RiskNote struct {
	ID          uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	RiskID      uuid.UUID `json:"riskId" gorm:"type:uuid;not null;index"`
	Note        string    `json:"note" gorm:"type:text;not null"`
	AuthorID    string    `json:"authorId" gorm:"type:text;not null"`
	AuthorLabel string    `json:"authorLabel" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (RiskNote) TableName() string {
	return "risk_notes"
}
