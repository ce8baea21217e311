package services

import (
	"fmt"
	"strings"

	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/shared"
)

type riskReferenceService struct {
	riskReferenceRepository shared.RiskReferenceRepository
	riskTaxonomyService     shared.RiskTaxonomyService
	scopeResolver           shared.ScopeResolver
	auditLogService         shared.AuditLogService
}

var _ shared.RiskReferenceService = &riskReferenceService{}

func NewRiskReferenceService(riskReferenceRepository shared.RiskReferenceRepository, riskTaxonomyService shared.RiskTaxonomyService, scopeResolver shared.ScopeResolver, auditLogService shared.AuditLogService) *riskReferenceService {
	return &riskReferenceService{
		riskReferenceRepository: riskReferenceRepository,
		riskTaxonomyService:     riskTaxonomyService,
		scopeResolver:           scopeResolver,
		auditLogService:         auditLogService,
	}
}

func (s *riskReferenceService) Create(actor shared.Actor, req dtos.CreateRiskReferenceRequest) (models.RiskReference, error) {
	if actor.IsAnonymous() {
		return models.RiskReference{}, shared.NewPermissionDenied("authentication required")
	}
	if !s.scopeResolver.IsPermitted(s.scopeResolver.Resolve(actor.UserID), shared.ObjectRiskReference, shared.ActionCreate) {
		return models.RiskReference{}, shared.NewPermissionDenied("not allowed to manage risk references")
	}
	if err := requireText("title", req.Title); err != nil {
		return models.RiskReference{}, err
	}
	if err := requireText("description", req.Description); err != nil {
		return models.RiskReference{}, err
	}
	if req.DefaultSeverity != nil {
		if err := validateRating("defaultSeverity", *req.DefaultSeverity); err != nil {
			return models.RiskReference{}, err
		}
	}
	if req.DefaultLikelihood != nil {
		if err := validateRating("defaultLikelihood", *req.DefaultLikelihood); err != nil {
			return models.RiskReference{}, err
		}
	}
	if err := s.riskTaxonomyService.ValidateChain(req.CategoryID, req.SubCategoryID, req.CauseID); err != nil {
		return models.RiskReference{}, err
	}
	groups, err := s.riskTaxonomyService.ResolveAffectedGroups(req.AffectedGroupIDs)
	if err != nil {
		return models.RiskReference{}, err
	}

	reference := models.RiskReference{
		Title:             strings.TrimSpace(req.Title),
		Description:       req.Description,
		CategoryID:        req.CategoryID,
		SubCategoryID:     req.SubCategoryID,
		CauseID:           req.CauseID,
		AffectedGroups:    groups,
		DefaultSeverity:   req.DefaultSeverity,
		DefaultLikelihood: req.DefaultLikelihood,
		CorrectiveAction:  req.CorrectiveAction,
		PreventiveAction:  req.PreventiveAction,
		IsActive:          true,
		CreatedBy:         actor.UserID,
	}
	err = s.riskReferenceRepository.Transaction(func(tx shared.DB) error {
		if err := s.riskReferenceRepository.Create(tx, &reference); err != nil {
			return fmt.Errorf("could not create risk reference: %w", err)
		}
		s.auditLogService.Log(tx, shared.AuditEntry{
			Actor:       actor,
			Action:      models.AuditActionCreate,
			ModelName:   "risk_reference",
			ObjectID:    reference.ID.String(),
			Description: fmt.Sprintf("created risk reference %q", reference.Title),
		})
		return nil
	})
	return reference, err
}

func (s *riskReferenceService) ListActive() ([]models.RiskReference, error) {
	return s.riskReferenceRepository.ListActive()
}
