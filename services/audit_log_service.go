package services

import (
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/monitoring"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/l3montree-dev/ohsms/utils"
)

type auditLogService struct {
	auditLogRepository shared.AuditLogRepository
}

var _ shared.AuditLogService = &auditLogService{}

func NewAuditLogService(auditLogRepository shared.AuditLogRepository) *auditLogService {
	return &auditLogService{
		auditLogRepository: auditLogRepository,
	}
}

// Log never fails the surrounding transaction. A failed write is counted and alerted.
func (s *auditLogService) Log(tx shared.DB, entry shared.AuditEntry) {
	row := models.AuditLog{
		ActorID:     entry.Actor.IDPtr(),
		ActorLabel:  entry.Actor.Label(),
		Action:      entry.Action,
		ModelName:   entry.ModelName,
		ObjectID:    utils.EmptyThenNil(entry.ObjectID),
		Description: entry.Description,
		IPAddress:   entry.Actor.IPPtr(),
	}
	if err := s.auditLogRepository.CreateInSavepoint(tx, &row); err != nil {
		monitoring.AuditWriteFailedAmount.Inc()
		monitoring.Alert("could not write audit log entry", err)
	}
}

func (s *auditLogService) List(pageInfo shared.PageInfo, filter dtos.AuditLogFilter) (shared.Paged[models.AuditLog], error) {
	return s.auditLogRepository.List(pageInfo, filter)
}
