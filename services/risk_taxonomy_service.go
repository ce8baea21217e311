package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/l3montree-dev/ohsms/utils"
)

type RiskTaxonomyService struct {
	riskTaxonomyRepository shared.RiskTaxonomyRepository
	scopeResolver          shared.ScopeResolver
	auditLogService        shared.AuditLogService
}

var _ shared.RiskTaxonomyService = &RiskTaxonomyService{}

func NewRiskTaxonomyService(riskTaxonomyRepository shared.RiskTaxonomyRepository, scopeResolver shared.ScopeResolver, auditLogService shared.AuditLogService) *RiskTaxonomyService {
	return &RiskTaxonomyService{
		riskTaxonomyRepository: riskTaxonomyRepository,
		scopeResolver:          scopeResolver,
		auditLogService:        auditLogService,
	}
}

func (s *RiskTaxonomyService) authorize(actor shared.Actor) error {
	if actor.IsAnonymous() {
		return shared.NewPermissionDenied("authentication required")
	}
	if !s.scopeResolver.IsPermitted(s.scopeResolver.Resolve(actor.UserID), shared.ObjectRiskTaxonomy, shared.ActionCreate) {
		return shared.NewPermissionDenied("not allowed to manage the risk taxonomy")
	}
	return nil
}

// createAudited runs create and writes the audit row in the same transaction.
func (s *RiskTaxonomyService) createAudited(actor shared.Actor, modelName string, create func(tx shared.DB) (uuid.UUID, string, error)) error {
	return s.riskTaxonomyRepository.Transaction(func(tx shared.DB) error {
		id, name, err := create(tx)
		if err != nil {
			return err
		}
		s.auditLogService.Log(tx, shared.AuditEntry{
			Actor:       actor,
			Action:      models.AuditActionCreate,
			ModelName:   modelName,
			ObjectID:    id.String(),
			Description: fmt.Sprintf("created %s %q", strings.ReplaceAll(modelName, "_", " "), name),
		})
		return nil
	})
}

func (s *RiskTaxonomyService) CreateCategory(actor shared.Actor, req dtos.CreateRiskCategoryRequest) (models.RiskCategory, error) {
	if err := s.authorize(actor); err != nil {
		return models.RiskCategory{}, err
	}
	if err := requireText("name", req.Name); err != nil {
		return models.RiskCategory{}, err
	}
	category := models.RiskCategory{Name: strings.TrimSpace(req.Name), Description: req.Description}
	err := s.createAudited(actor, "risk_category", func(tx shared.DB) (uuid.UUID, string, error) {
		err := s.riskTaxonomyRepository.CreateCategory(tx, &category)
		return category.ID, category.Name, err
	})
	return category, err
}

func (s *RiskTaxonomyService) CreateSubCategory(actor shared.Actor, categoryID uuid.UUID, req dtos.CreateNamedTaxonomyRequest) (models.RiskSubCategory, error) {
	if err := s.authorize(actor); err != nil {
		return models.RiskSubCategory{}, err
	}
	if err := requireText("name", req.Name); err != nil {
		return models.RiskSubCategory{}, err
	}
	if _, err := s.riskTaxonomyRepository.ReadCategory(categoryID); err != nil {
		return models.RiskSubCategory{}, err
	}
	subCategory := models.RiskSubCategory{CategoryID: categoryID, Name: strings.TrimSpace(req.Name)}
	err := s.createAudited(actor, "risk_sub_category", func(tx shared.DB) (uuid.UUID, string, error) {
		err := s.riskTaxonomyRepository.CreateSubCategory(tx, &subCategory)
		return subCategory.ID, subCategory.Name, err
	})
	return subCategory, err
}

func (s *RiskTaxonomyService) CreateCause(actor shared.Actor, subCategoryID uuid.UUID, req dtos.CreateNamedTaxonomyRequest) (models.RiskCause, error) {
	if err := s.authorize(actor); err != nil {
		return models.RiskCause{}, err
	}
	if err := requireText("name", req.Name); err != nil {
		return models.RiskCause{}, err
	}
	if _, err := s.riskTaxonomyRepository.ReadSubCategory(subCategoryID); err != nil {
		return models.RiskCause{}, err
	}
	cause := models.RiskCause{SubCategoryID: subCategoryID, Name: strings.TrimSpace(req.Name)}
	err := s.createAudited(actor, "risk_cause", func(tx shared.DB) (uuid.UUID, string, error) {
		err := s.riskTaxonomyRepository.CreateCause(tx, &cause)
		return cause.ID, cause.Name, err
	})
	return cause, err
}

func (s *RiskTaxonomyService) CreateAffectedGroup(actor shared.Actor, req dtos.CreateNamedTaxonomyRequest) (models.AffectedGroup, error) {
	if err := s.authorize(actor); err != nil {
		return models.AffectedGroup{}, err
	}
	if err := requireText("name", req.Name); err != nil {
		return models.AffectedGroup{}, err
	}
	group := models.AffectedGroup{Name: strings.TrimSpace(req.Name)}
	err := s.createAudited(actor, "affected_group", func(tx shared.DB) (uuid.UUID, string, error) {
		err := s.riskTaxonomyRepository.CreateAffectedGroup(tx, &group)
		return group.ID, group.Name, err
	})
	return group, err
}

func (s *RiskTaxonomyService) Categories() ([]models.RiskCategory, error) {
	return s.riskTaxonomyRepository.AllCategories()
}

func (s *RiskTaxonomyService) SubCategories(categoryID uuid.UUID) ([]models.RiskSubCategory, error) {
	return s.riskTaxonomyRepository.ListSubCategories(categoryID)
}

func (s *RiskTaxonomyService) Causes(subCategoryID uuid.UUID) ([]models.RiskCause, error) {
	return s.riskTaxonomyRepository.ListCauses(subCategoryID)
}

func (s *RiskTaxonomyService) AffectedGroups() ([]models.AffectedGroup, error) {
	return s.riskTaxonomyRepository.AllAffectedGroups()
}

// ValidateChain checks that the cause belongs to the sub-category and the
// sub-category to the category.
func (s *RiskTaxonomyService) ValidateChain(categoryID, subCategoryID, causeID uuid.UUID) error {
	if _, err := s.riskTaxonomyRepository.ReadCategory(categoryID); err != nil {
		return unknownNode("categoryId", err)
	}
	subCategory, err := s.riskTaxonomyRepository.ReadSubCategory(subCategoryID)
	if err != nil {
		return unknownNode("subCategoryId", err)
	}
	if subCategory.CategoryID != categoryID {
		return shared.NewFieldValidationFailed("subCategoryId", "does not belong to the category")
	}
	cause, err := s.riskTaxonomyRepository.ReadCause(causeID)
	if err != nil {
		return unknownNode("causeId", err)
	}
	if cause.SubCategoryID != subCategoryID {
		return shared.NewFieldValidationFailed("causeId", "does not belong to the sub-category")
	}
	return nil
}

func (s *RiskTaxonomyService) ResolveAffectedGroups(ids []uuid.UUID) ([]models.AffectedGroup, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	groups, err := s.riskTaxonomyRepository.ListAffectedGroups(ids)
	if err != nil {
		return nil, err
	}
	if len(groups) != len(ids) {
		return nil, shared.NewFieldValidationFailed("affectedGroupIds", "contains unknown affected groups")
	}
	return groups, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	return utils.UniqBy(ids, func(id uuid.UUID) uuid.UUID { return id })
}
