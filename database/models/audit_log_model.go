package models

import (
	"time"

	"github.com/google/uuid"
)

type AuditAction string

const (
	AuditActionCreate       AuditAction = "create"
	AuditActionUpdate       AuditAction = "update"
	AuditActionDelete       AuditAction = "delete"
	AuditActionStatusChange AuditAction = "status_change"
	AuditActionNote         AuditAction = "note"
	AuditActionAssign       AuditAction = "assign"
	AuditActionEscalate     AuditAction = "escalate"
	AuditActionSubmit       AuditAction = "submit"
	AuditActionApprove      AuditAction = "approve"
	AuditActionReject       AuditAction = "reject"
	AuditActionAttach       AuditAction = "attach"
)

// AuditLog rows are write-once. The table rejects updates and deletes.
type AuditLog struct {
	ID          uuid.UUID   `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	ActorID     *string     `json:"actorId" gorm:"type:text;index"`
	ActorLabel  string      `json:"actorLabel" gorm:"type:text;not null"`
	Action      AuditAction `json:"action" gorm:"type:text;not null"`
	ModelName   string      `json:"modelName" gorm:"type:text;not null"`
	ObjectID    *string     `json:"objectId" gorm:"type:text"`
	Description string      `json:"description" gorm:"type:text"`
	IPAddress   *string     `json:"ipAddress" gorm:"type:text"`
	CreatedAt   time.Time   `json:"createdAt"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
