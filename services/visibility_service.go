package services

import (
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/shared"
)

type visibilityService struct {
	incidentRepository shared.IncidentRepository
	riskRepository     shared.RiskRepository
	scopeResolver      shared.ScopeResolver
}

var _ shared.VisibilityService = &visibilityService{}

func NewVisibilityService(incidentRepository shared.IncidentRepository, riskRepository shared.RiskRepository, scopeResolver shared.ScopeResolver) *visibilityService {
	return &visibilityService{
		incidentRepository: incidentRepository,
		riskRepository:     riskRepository,
		scopeResolver:      scopeResolver,
	}
}

func (s *visibilityService) VisibleIncidents(actor shared.Actor, pageInfo shared.PageInfo, query dtos.IncidentListFilter) (shared.Paged[models.Incident], error) {
	if actor.IsAnonymous() {
		return shared.NewPaged(pageInfo, 0, []models.Incident{}), nil
	}
	filter := s.scopeResolver.Resolve(actor.UserID).VisibilityFilter()
	return s.incidentRepository.ListVisible(filter, pageInfo, query)
}

func (s *visibilityService) CanViewIncident(actor shared.Actor, incident models.Incident) bool {
	return s.scopeResolver.Resolve(actor.UserID).CanViewIncident(incident)
}

func (s *visibilityService) VisibleRisks(actor shared.Actor, pageInfo shared.PageInfo, query dtos.RiskListFilter) (shared.Paged[models.Risk], error) {
	if actor.IsAnonymous() {
		return shared.NewPaged(pageInfo, 0, []models.Risk{}), nil
	}
	filter := s.scopeResolver.Resolve(actor.UserID).VisibilityFilter()
	return s.riskRepository.ListVisible(filter, pageInfo, query)
}

func (s *visibilityService) CanViewRisk(actor shared.Actor, risk models.Risk) bool {
	return s.scopeResolver.Resolve(actor.UserID).CanViewRisk(risk)
}
