package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/mocks"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type riskServiceMocks struct {
	riskRepository          *mocks.RiskRepository
	riskEventRepository     *mocks.RiskEventRepository
	riskNoteRepository      *mocks.RiskNoteRepository
	riskReferenceRepository *mocks.RiskReferenceRepository
	riskTaxonomyService     *mocks.RiskTaxonomyService
	orgService              *mocks.OrgService
	scopeResolver           *mocks.ScopeResolver
	auditLogService         *mocks.AuditLogService
}

func newTestRiskService(t *testing.T) (*riskService, riskServiceMocks) {
	m := riskServiceMocks{
		riskRepository:          mocks.NewRiskRepository(t),
		riskEventRepository:     mocks.NewRiskEventRepository(t),
		riskNoteRepository:      mocks.NewRiskNoteRepository(t),
		riskReferenceRepository: mocks.NewRiskReferenceRepository(t),
		riskTaxonomyService:     mocks.NewRiskTaxonomyService(t),
		orgService:              mocks.NewOrgService(t),
		scopeResolver:           mocks.NewScopeResolver(t),
		auditLogService:         mocks.NewAuditLogService(t),
	}
	return NewRiskService(m.riskRepository, m.riskEventRepository, m.riskNoteRepository, m.riskReferenceRepository, m.riskTaxonomyService, m.orgService, m.scopeResolver, m.auditLogService), m
}

func validRiskRequest() dtos.CreateRiskRequest {
	return dtos.CreateRiskRequest{
		Title:         "Forklift collision",
		Description:   "narrow aisle in warehouse",
		CategoryID:    uuid.New(),
		SubCategoryID: uuid.New(),
		CauseID:       uuid.New(),
		Severity:      4,
		Likelihood:    3,
		ScopeType:     models.RiskScopeGeneral,
	}
}

func TestCreateRisk(t *testing.T) {
	tx := &gorm.DB{}
	actor := shared.Actor{UserID: "coordinator"}

	t.Run("should reject general risks placed on an org node", func(t *testing.T) {
		s, _ := newTestRiskService(t)
		req := validRiskRequest()
		req.BranchID = shared.Ptr(uuid.New())

		_, err := s.Create(tx, actor, req)
		assert.True(t, shared.IsValidationFailed(err))
	})

	t.Run("should require a section for section risks", func(t *testing.T) {
		s, _ := newTestRiskService(t)
		req := validRiskRequest()
		req.ScopeType = models.RiskScopeSection
		req.DepartmentID = shared.Ptr(uuid.New())

		_, err := s.Create(tx, actor, req)
		assert.True(t, shared.IsValidationFailed(err))
	})

	t.Run("should reject ratings outside of one to five", func(t *testing.T) {
		s, _ := newTestRiskService(t)
		req := validRiskRequest()
		req.Severity = 6

		_, err := s.Create(tx, actor, req)
		assert.True(t, shared.IsValidationFailed(err))
	})

	t.Run("should reject a broken taxonomy chain", func(t *testing.T) {
		s, m := newTestRiskService(t)
		req := validRiskRequest()
		m.riskTaxonomyService.On("ValidateChain", req.CategoryID, req.SubCategoryID, req.CauseID).Return(shared.NewFieldValidationFailed("causeId", "does not belong to the sub category"))

		_, err := s.Create(tx, actor, req)
		assert.True(t, shared.IsValidationFailed(err))
	})

	t.Run("should deny creation outside of the actor scope", func(t *testing.T) {
		s, m := newTestRiskService(t)
		req := validRiskRequest()
		scopes := shared.ActorScopes{UserID: "coordinator"}
		m.riskTaxonomyService.On("ValidateChain", req.CategoryID, req.SubCategoryID, req.CauseID).Return(nil)
		m.riskTaxonomyService.On("ResolveAffectedGroups", mock.Anything).Return(nil, nil)
		m.scopeResolver.On("Resolve", "coordinator").Return(scopes)
		m.scopeResolver.On("IsPermittedAt", scopes, shared.ObjectRisk, shared.ActionCreate, models.OrgPlacement{}).Return(false)

		_, err := s.Create(tx, actor, req)
		assert.True(t, shared.IsPermissionDenied(err))
	})

	t.Run("should store a draft truncated to the scope level", func(t *testing.T) {
		s, m := newTestRiskService(t)
		req := validRiskRequest()
		req.ScopeType = models.RiskScopeDepartment
		full := completePlacement()
		req.SectionID = full.SectionID
		scopes := shared.ActorScopes{UserID: "coordinator"}
		groups := []models.AffectedGroup{{Model: models.Model{ID: uuid.New()}, Name: "visitors"}}

		m.orgService.On("NormalizePlacement", mock.Anything).Return(full, nil)
		m.riskTaxonomyService.On("ValidateChain", req.CategoryID, req.SubCategoryID, req.CauseID).Return(nil)
		m.riskTaxonomyService.On("ResolveAffectedGroups", mock.Anything).Return(groups, nil)
		m.scopeResolver.On("Resolve", "coordinator").Return(scopes)
		m.scopeResolver.On("IsPermittedAt", scopes, shared.ObjectRisk, shared.ActionCreate, mock.Anything).Return(true)
		m.riskRepository.On("Create", tx, mock.Anything, mock.Anything).Return(nil)
		m.riskRepository.On("ReplaceAffectedGroups", tx, mock.Anything, mock.Anything, groups).Return(nil)
		m.riskEventRepository.On("Create", tx, mock.MatchedBy(func(ev *models.RiskEvent) bool {
			return ev.Action == models.RiskEventCreate
		})).Return(nil)
		m.auditLogService.On("Log", tx, mock.Anything).Return()

		risk, err := s.Create(tx, actor, req)
		assert.NoError(t, err)
		assert.Equal(t, models.RiskStatusDraft, risk.Status)
		assert.Nil(t, risk.SectionID)
		assert.Equal(t, full.DepartmentID, risk.DepartmentID)
		assert.Equal(t, "coordinator", risk.CreatedByID)
		assert.Equal(t, models.RiskLevelMedium, risk.Level())
	})
}

func TestCreateRiskScore(t *testing.T) {
	tx := &gorm.DB{}
	actor := shared.Actor{UserID: "coordinator"}

	for severity := 1; severity <= 5; severity++ {
		for likelihood := 1; likelihood <= 5; likelihood++ {
			t.Run(fmt.Sprintf("should persist %d x %d as %d", severity, likelihood, severity*likelihood), func(t *testing.T) {
				s, m := newTestRiskService(t)
				req := validRiskRequest()
				req.Severity = severity
				req.Likelihood = likelihood
				scopes := shared.ActorScopes{UserID: "coordinator"}

				m.riskTaxonomyService.On("ValidateChain", req.CategoryID, req.SubCategoryID, req.CauseID).Return(nil)
				m.riskTaxonomyService.On("ResolveAffectedGroups", mock.Anything).Return(nil, nil)
				m.scopeResolver.On("Resolve", "coordinator").Return(scopes)
				m.scopeResolver.On("IsPermittedAt", scopes, shared.ObjectRisk, shared.ActionCreate, mock.Anything).Return(true)
				m.riskRepository.On("Create", tx, mock.Anything, mock.MatchedBy(func(risk *models.Risk) bool {
					return risk.RiskScore == severity*likelihood
				})).Return(nil)
				m.riskEventRepository.On("Create", tx, mock.Anything).Return(nil)
				m.auditLogService.On("Log", tx, mock.Anything).Return()

				risk, err := s.Create(tx, actor, req)
				require.NoError(t, err)
				assert.Equal(t, severity*likelihood, risk.RiskScore)
			})
		}
	}
}

func TestCreateRiskFromReference(t *testing.T) {
	tx := &gorm.DB{}
	actor := shared.Actor{UserID: "coordinator"}

	t.Run("should reject inactive references", func(t *testing.T) {
		s, m := newTestRiskService(t)
		reference := models.RiskReference{Model: models.Model{ID: uuid.New()}}
		m.riskReferenceRepository.On("Read", reference.ID).Return(reference, nil)

		_, err := s.CreateFromReference(tx, actor, dtos.CreateRiskFromReferenceRequest{ReferenceID: reference.ID, ScopeType: models.RiskScopeGeneral})
		assert.True(t, shared.IsValidationFailed(err))
	})

	t.Run("should require ratings if the reference has no defaults", func(t *testing.T) {
		s, m := newTestRiskService(t)
		reference := models.RiskReference{Model: models.Model{ID: uuid.New()}, IsActive: true, DefaultSeverity: shared.Ptr(3)}
		m.riskReferenceRepository.On("Read", reference.ID).Return(reference, nil)

		_, err := s.CreateFromReference(tx, actor, dtos.CreateRiskFromReferenceRequest{ReferenceID: reference.ID, ScopeType: models.RiskScopeGeneral})
		assert.True(t, shared.IsValidationFailed(err))
	})

	t.Run("should prefer the ratings of the request over the defaults", func(t *testing.T) {
		s, m := newTestRiskService(t)
		reference := models.RiskReference{
			Model:             models.Model{ID: uuid.New()},
			Title:             "Working at height",
			Description:       "ladders without securing",
			CategoryID:        uuid.New(),
			SubCategoryID:     uuid.New(),
			CauseID:           uuid.New(),
			DefaultSeverity:   shared.Ptr(2),
			DefaultLikelihood: shared.Ptr(2),
			IsActive:          true,
		}
		scopes := shared.ActorScopes{UserID: "coordinator"}
		m.riskReferenceRepository.On("Read", reference.ID).Return(reference, nil)
		m.riskTaxonomyService.On("ValidateChain", reference.CategoryID, reference.SubCategoryID, reference.CauseID).Return(nil)
		m.riskTaxonomyService.On("ResolveAffectedGroups", mock.Anything).Return(nil, nil)
		m.scopeResolver.On("Resolve", "coordinator").Return(scopes)
		m.scopeResolver.On("IsPermittedAt", scopes, shared.ObjectRisk, shared.ActionCreate, models.OrgPlacement{}).Return(true)
		m.riskRepository.On("Create", tx, mock.Anything, mock.Anything).Return(nil)
		m.riskEventRepository.On("Create", tx, mock.Anything).Return(nil)
		m.auditLogService.On("Log", tx, mock.Anything).Return()

		risk, err := s.CreateFromReference(tx, actor, dtos.CreateRiskFromReferenceRequest{
			ReferenceID: reference.ID,
			Severity:    shared.Ptr(5),
			ScopeType:   models.RiskScopeGeneral,
		})
		assert.NoError(t, err)
		assert.Equal(t, 5, risk.Severity)
		assert.Equal(t, 2, risk.Likelihood)
		assert.Equal(t, "Working at height", risk.Title)
		assert.Equal(t, reference.ID, *risk.ReferenceID)
	})
}

func TestRiskTransitions(t *testing.T) {
	tx := &gorm.DB{}
	riskID := uuid.New()

	t.Run("should require a reason to reject", func(t *testing.T) {
		s, _ := newTestRiskService(t)

		_, err := s.Reject(tx, shared.Actor{UserID: "committee"}, riskID, "  ")
		assert.True(t, shared.IsValidationFailed(err))
	})

	t.Run("should deny approval without the permission at the risk node", func(t *testing.T) {
		s, m := newTestRiskService(t)
		risk := models.Risk{Model: models.Model{ID: riskID}, Status: models.RiskStatusSubmitted, ScopeType: models.RiskScopeGeneral}
		scopes := shared.ActorScopes{UserID: "coordinator"}
		m.riskRepository.On("ReadForUpdate", tx, riskID).Return(risk, nil)
		m.scopeResolver.On("Resolve", "coordinator").Return(scopes)
		m.scopeResolver.On("IsPermittedAt", scopes, shared.ObjectRisk, shared.ActionApprove, models.OrgPlacement{}).Return(false)

		_, err := s.Approve(tx, shared.Actor{UserID: "coordinator"}, riskID, "")
		assert.True(t, shared.IsPermissionDenied(err))
	})

	t.Run("should not start a risk which was never approved", func(t *testing.T) {
		s, m := newTestRiskService(t)
		risk := models.Risk{Model: models.Model{ID: riskID}, Status: models.RiskStatusDraft, ScopeType: models.RiskScopeGeneral}
		m.riskRepository.On("ReadForUpdate", tx, riskID).Return(risk, nil)
		m.scopeResolver.On("Resolve", "manager").Return(globalScopes("manager"))
		m.scopeResolver.On("IsPermittedAt", mock.Anything, shared.ObjectRisk, shared.ActionStart, mock.Anything).Return(true)

		_, err := s.Start(tx, shared.Actor{UserID: "manager"}, riskID, "")
		assert.True(t, shared.IsInvalidTransition(err))
	})

	t.Run("should write an approval note in the same transaction", func(t *testing.T) {
		s, m := newTestRiskService(t)
		risk := models.Risk{Model: models.Model{ID: riskID}, Status: models.RiskStatusSubmitted, ScopeType: models.RiskScopeGeneral}
		m.riskRepository.On("ReadForUpdate", tx, riskID).Return(risk, nil)
		m.scopeResolver.On("Resolve", "committee").Return(globalScopes("committee"))
		m.scopeResolver.On("IsPermittedAt", mock.Anything, shared.ObjectRisk, shared.ActionApprove, mock.Anything).Return(true)
		m.riskRepository.On("Save", tx, mock.Anything, mock.Anything).Return(nil)
		m.riskEventRepository.On("Create", tx, mock.MatchedBy(func(ev *models.RiskEvent) bool {
			return ev.FromStatus == models.RiskStatusSubmitted && ev.ToStatus == models.RiskStatusApproved
		})).Return(nil)
		m.riskNoteRepository.On("Create", tx, mock.MatchedBy(func(n *models.RiskNote) bool {
			return n.Note == "approved: budget granted"
		})).Return(nil)
		m.auditLogService.On("Log", tx, mock.Anything).Return()

		updated, err := s.Approve(tx, shared.Actor{UserID: "committee"}, riskID, " budget granted ")
		assert.NoError(t, err)
		assert.Equal(t, models.RiskStatusApproved, updated.Status)
	})
}

func TestUpdateRiskAssessment(t *testing.T) {
	tx := &gorm.DB{}
	riskID := uuid.New()

	t.Run("should only edit drafts", func(t *testing.T) {
		s, m := newTestRiskService(t)
		risk := models.Risk{Model: models.Model{ID: riskID}, Status: models.RiskStatusApproved, CreatedByID: "creator"}
		m.riskRepository.On("ReadForUpdate", tx, riskID).Return(risk, nil)
		m.scopeResolver.On("Resolve", "creator").Return(shared.ActorScopes{UserID: "creator"})

		_, err := s.UpdateAssessment(tx, shared.Actor{UserID: "creator"}, riskID, dtos.UpdateRiskAssessmentRequest{Severity: shared.Ptr(2)})
		assert.True(t, shared.IsInvalidTransition(err))
	})

	t.Run("should recalculate the score", func(t *testing.T) {
		s, m := newTestRiskService(t)
		risk := models.Risk{Model: models.Model{ID: riskID}, Status: models.RiskStatusDraft, CreatedByID: "creator", Severity: 1, Likelihood: 4, RiskScore: 4}
		m.riskRepository.On("ReadForUpdate", tx, riskID).Return(risk, nil)
		m.scopeResolver.On("Resolve", "creator").Return(shared.ActorScopes{UserID: "creator"})
		m.riskRepository.On("Save", tx, mock.Anything, mock.Anything).Return(nil)
		m.riskEventRepository.On("Create", tx, mock.Anything).Return(nil)
		m.auditLogService.On("Log", tx, mock.Anything).Return()

		updated, err := s.UpdateAssessment(tx, shared.Actor{UserID: "creator"}, riskID, dtos.UpdateRiskAssessmentRequest{Severity: shared.Ptr(5)})
		assert.NoError(t, err)
		assert.Equal(t, 20, updated.RiskScore)
		assert.Equal(t, models.RiskLevelHigh, updated.Level())
	})
}
