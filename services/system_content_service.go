package services

import (
	"fmt"
	"strings"

	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/shared"
)

type systemContentService struct {
	systemContentRepository shared.SystemContentRepository
	scopeResolver           shared.ScopeResolver
	auditLogService         shared.AuditLogService
}

var _ shared.SystemContentService = &systemContentService{}

func NewSystemContentService(systemContentRepository shared.SystemContentRepository, scopeResolver shared.ScopeResolver, auditLogService shared.AuditLogService) *systemContentService {
	return &systemContentService{
		systemContentRepository: systemContentRepository,
		scopeResolver:           scopeResolver,
		auditLogService:         auditLogService,
	}
}

// Get only returns active content.
func (s *systemContentService) Get(contentType models.SystemContentType) (models.SystemContent, error) {
	if !contentType.IsValid() {
		return models.SystemContent{}, shared.NewFieldValidationFailed("contentType", "unknown content type")
	}
	content, err := s.systemContentRepository.ReadByType(contentType)
	if err != nil {
		return models.SystemContent{}, err
	}
	if !content.IsActive {
		return models.SystemContent{}, shared.NewNotFound("system_contents not found")
	}
	return content, nil
}

func (s *systemContentService) Upsert(actor shared.Actor, contentType models.SystemContentType, req dtos.UpsertSystemContentRequest) (models.SystemContent, error) {
	if actor.IsAnonymous() {
		return models.SystemContent{}, shared.NewPermissionDenied("authentication required")
	}
	if !s.scopeResolver.IsPermitted(s.scopeResolver.Resolve(actor.UserID), shared.ObjectSystemContent, shared.ActionUpdate) {
		return models.SystemContent{}, shared.NewPermissionDenied("not allowed to edit system content")
	}
	if !contentType.IsValid() {
		return models.SystemContent{}, shared.NewFieldValidationFailed("contentType", "unknown content type")
	}
	if err := requireText("title", req.Title); err != nil {
		return models.SystemContent{}, err
	}

	content := models.SystemContent{
		ContentType: contentType,
		Title:       strings.TrimSpace(req.Title),
		Body:        req.Body,
		IsActive:    req.IsActive,
	}
	err := s.systemContentRepository.Transaction(func(tx shared.DB) error {
		if err := s.systemContentRepository.Upsert(tx, &content); err != nil {
			return fmt.Errorf("could not save system content: %w", err)
		}
		s.auditLogService.Log(tx, shared.AuditEntry{
			Actor:       actor,
			Action:      models.AuditActionUpdate,
			ModelName:   "system_content",
			ObjectID:    string(contentType),
			Description: fmt.Sprintf("updated %s content", contentType),
		})
		return nil
	})
	return content, err
}
