package services

import (
	"fmt"
	"regexp"
	"testing"
	"time"

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

type incidentServiceMocks struct {
	incidentRepository      *mocks.IncidentRepository
	incidentEventRepository *mocks.IncidentEventRepository
	riskRepository          *mocks.RiskRepository
	orgService              *mocks.OrgService
	scopeResolver           *mocks.ScopeResolver
	auditLogService         *mocks.AuditLogService
}

func newTestIncidentService(t *testing.T) (*incidentService, incidentServiceMocks) {
	m := incidentServiceMocks{
		incidentRepository:      mocks.NewIncidentRepository(t),
		incidentEventRepository: mocks.NewIncidentEventRepository(t),
		riskRepository:          mocks.NewRiskRepository(t),
		orgService:              mocks.NewOrgService(t),
		scopeResolver:           mocks.NewScopeResolver(t),
		auditLogService:         mocks.NewAuditLogService(t),
	}
	s := NewIncidentService(m.incidentRepository, m.incidentEventRepository, m.riskRepository, m.orgService, m.scopeResolver, m.auditLogService)
	s.now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	}
	return s, m
}

func completePlacement() models.OrgPlacement {
	return models.OrgPlacement{
		BranchID:     shared.Ptr(uuid.New()),
		DepartmentID: shared.Ptr(uuid.New()),
		SectionID:    shared.Ptr(uuid.New()),
	}
}

func pinnedScopes(userID string, roleCode shared.Role, placement models.OrgPlacement) shared.ActorScopes {
	return shared.ActorScopes{
		UserID: userID,
		Assignments: []models.UserRoleAssignment{{
			UserID:       userID,
			Role:         models.Role{Code: roleCode},
			OrgPlacement: placement,
		}},
	}
}

func globalScopes(userID string) shared.ActorScopes {
	return shared.ActorScopes{
		UserID:      userID,
		Assignments: []models.UserRoleAssignment{{UserID: userID, Role: models.Role{Code: "admin", IsGlobal: true}}},
	}
}

func TestCreateNormalIncident(t *testing.T) {
	tx := &gorm.DB{}
	actor := shared.Actor{UserID: "user-1", DisplayName: "Jane"}

	t.Run("should reject anonymous reporters", func(t *testing.T) {
		s, _ := newTestIncidentService(t)

		_, err := s.CreateNormal(tx, shared.Actor{}, dtos.CreateIncidentRequest{Title: "slip", Description: "wet floor"})
		assert.True(t, shared.IsPermissionDenied(err))
	})

	t.Run("should fail validation if the title is blank", func(t *testing.T) {
		s, _ := newTestIncidentService(t)

		_, err := s.CreateNormal(tx, actor, dtos.CreateIncidentRequest{Title: "   ", Description: "wet floor"})
		assert.True(t, shared.IsValidationFailed(err))
	})

	t.Run("should fail validation if the placement does not reach a section", func(t *testing.T) {
		s, m := newTestIncidentService(t)
		branchOnly := models.OrgPlacement{BranchID: shared.Ptr(uuid.New())}
		m.orgService.On("NormalizePlacement", mock.Anything).Return(branchOnly, nil)

		_, err := s.CreateNormal(tx, actor, dtos.CreateIncidentRequest{Title: "slip", Description: "wet floor"})
		assert.True(t, shared.IsValidationFailed(err))
	})

	t.Run("should number the incident by year and record the create event", func(t *testing.T) {
		s, m := newTestIncidentService(t)
		placement := completePlacement()
		m.orgService.On("NormalizePlacement", mock.Anything).Return(placement, nil)
		m.incidentRepository.On("NextNumber", tx, 2026).Return(7, nil)
		m.incidentRepository.On("Create", tx, mock.Anything, mock.MatchedBy(func(i *models.Incident) bool {
			return i.Status == models.IncidentStatusOpen && i.IncidentType == models.IncidentTypeNormal
		})).Return(nil)
		m.incidentEventRepository.On("Create", tx, mock.MatchedBy(func(ev *models.IncidentEvent) bool {
			return ev.Action == models.IncidentEventCreate
		})).Return(nil)
		m.auditLogService.On("Log", tx, mock.Anything).Return()

		incident, err := s.CreateNormal(tx, actor, dtos.CreateIncidentRequest{Title: " slip ", Description: "wet floor"})
		assert.NoError(t, err)
		assert.Equal(t, "2026-0007", incident.Number)
		assert.Equal(t, "slip", incident.Title)
		assert.Equal(t, placement, incident.OrgPlacement)
		assert.True(t, incident.IsCreatedBy("user-1"))
	})

	t.Run("should not log an audit row if the repository fails", func(t *testing.T) {
		s, m := newTestIncidentService(t)
		m.orgService.On("NormalizePlacement", mock.Anything).Return(completePlacement(), nil)
		m.incidentRepository.On("NextNumber", tx, 2026).Return(1, nil)
		m.incidentRepository.On("Create", tx, mock.Anything, mock.Anything).Return(fmt.Errorf("connection reset"))

		_, err := s.CreateNormal(tx, actor, dtos.CreateIncidentRequest{Title: "slip", Description: "wet floor"})
		assert.Error(t, err)
		m.auditLogService.AssertNotCalled(t, "Log", mock.Anything, mock.Anything)
	})
}

func TestCreateUrgentIncident(t *testing.T) {
	tx := &gorm.DB{}

	t.Run("should deny callers without the create urgent permission", func(t *testing.T) {
		s, m := newTestIncidentService(t)
		scopes := pinnedScopes("user-1", "employee", completePlacement())
		m.scopeResolver.On("Resolve", "user-1").Return(scopes)
		m.scopeResolver.On("IsPermitted", scopes, shared.ObjectIncident, shared.ActionCreateUrgent).Return(false)

		_, err := s.CreateUrgent(tx, shared.Actor{UserID: "user-1"}, dtos.CreateUrgentIncidentRequest{})
		assert.True(t, shared.IsPermissionDenied(err))
	})

	t.Run("should keep the relayed reporter details", func(t *testing.T) {
		s, m := newTestIncidentService(t)
		scopes := globalScopes("staff-1")
		m.scopeResolver.On("Resolve", "staff-1").Return(scopes)
		m.scopeResolver.On("IsPermitted", scopes, shared.ObjectIncident, shared.ActionCreateUrgent).Return(true)
		m.orgService.On("NormalizePlacement", mock.Anything).Return(completePlacement(), nil)
		m.incidentRepository.On("NextNumber", tx, 2026).Return(12, nil)
		m.incidentRepository.On("Create", tx, mock.Anything, mock.Anything).Return(nil)
		m.incidentEventRepository.On("Create", tx, mock.Anything).Return(nil)
		m.auditLogService.On("Log", tx, mock.Anything).Return()

		incident, err := s.CreateUrgent(tx, shared.Actor{UserID: "staff-1"}, dtos.CreateUrgentIncidentRequest{
			CreateIncidentRequest: dtos.CreateIncidentRequest{Title: "fire", Description: "smoke in hall 3"},
			ReporterName:          " Max ",
			ReporterPhone:         "0123",
		})
		assert.NoError(t, err)
		assert.Equal(t, models.IncidentTypeUrgent, incident.IncidentType)
		assert.Equal(t, "Max", incident.ReporterName)
		assert.Equal(t, "2026-0012", incident.Number)
	})
}

func TestCreateSecretIncident(t *testing.T) {
	tx := &gorm.DB{}

	t.Run("should require a reason", func(t *testing.T) {
		s, _ := newTestIncidentService(t)

		_, _, err := s.CreateSecret(tx, dtos.CreateSecretIncidentRequest{Title: "harassment", Description: "details"})
		assert.True(t, shared.IsValidationFailed(err))
	})

	t.Run("should return a tracking key and store no reporter identity", func(t *testing.T) {
		s, m := newTestIncidentService(t)
		m.incidentRepository.On("NextNumber", tx, 2026).Return(3, nil)
		m.incidentRepository.On("Create", tx, mock.Anything, mock.Anything).Return(nil)
		m.incidentEventRepository.On("Create", tx, mock.MatchedBy(func(ev *models.IncidentEvent) bool {
			return ev.ActorID == nil
		})).Return(nil)
		m.auditLogService.On("Log", tx, mock.Anything).Return()

		incident, key, err := s.CreateSecret(tx, dtos.CreateSecretIncidentRequest{Title: "harassment", Description: "details", SecretReason: "fear of retaliation"})
		assert.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), key)
		assert.Equal(t, key, *incident.SecretKey)
		assert.Nil(t, incident.CreatedByID)
		assert.True(t, incident.OrgPlacement.IsEmpty())
	})

	t.Run("should hand out a different key for every secret incident", func(t *testing.T) {
		s, m := newTestIncidentService(t)
		m.incidentRepository.On("NextNumber", tx, 2026).Return(4, nil).Once()
		m.incidentRepository.On("NextNumber", tx, 2026).Return(5, nil).Once()
		m.incidentRepository.On("Create", tx, mock.Anything, mock.Anything).Return(nil).Twice()
		m.incidentEventRepository.On("Create", tx, mock.Anything).Return(nil).Twice()
		m.auditLogService.On("Log", tx, mock.Anything).Return().Twice()

		req := dtos.CreateSecretIncidentRequest{Title: "harassment", Description: "details", SecretReason: "fear of retaliation"}
		first, firstKey, err := s.CreateSecret(tx, req)
		require.NoError(t, err)
		second, secondKey, err := s.CreateSecret(tx, req)
		require.NoError(t, err)

		assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), firstKey)
		assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), secondKey)
		assert.NotEqual(t, firstKey, secondKey)
		assert.NotEqual(t, *first.SecretKey, *second.SecretKey)
	})
}

func TestChangeIncidentStatus(t *testing.T) {
	tx := &gorm.DB{}
	incidentID := uuid.New()

	t.Run("should treat an unknown status as an invalid transition", func(t *testing.T) {
		s, m := newTestIncidentService(t)
		incident := models.Incident{Model: models.Model{ID: incidentID}, Status: models.IncidentStatusInProgress}
		m.incidentRepository.On("ReadForUpdate", tx, incidentID).Return(incident, nil)
		m.scopeResolver.On("Resolve", "admin").Return(globalScopes("admin"))

		_, _, err := s.ChangeStatus(tx, shared.Actor{UserID: "admin"}, incidentID, "resolved", "")
		var transitionErr *shared.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, string(models.IncidentStatusInProgress), transitionErr.From)
		assert.Equal(t, "resolved", transitionErr.To)
		m.incidentRepository.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should not let the assignee of a secret incident close it without a global role", func(t *testing.T) {
		s, m := newTestIncidentService(t)
		incident := models.Incident{Model: models.Model{ID: incidentID}, Status: models.IncidentStatusInProgress, IncidentType: models.IncidentTypeSecret, AssignedToID: shared.Ptr("officer")}
		m.incidentRepository.On("ReadForUpdate", tx, incidentID).Return(incident, nil)
		m.scopeResolver.On("Resolve", "officer").Return(shared.ActorScopes{UserID: "officer"})

		_, _, err := s.ChangeStatus(tx, shared.Actor{UserID: "officer"}, incidentID, models.IncidentStatusClosed, "")
		assert.True(t, shared.IsPermissionDenied(err))

		_, _, err = s.AddNote(tx, shared.Actor{UserID: "officer"}, incidentID, "spoke to the reporter")
		assert.True(t, shared.IsPermissionDenied(err))
		m.incidentRepository.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should deny actors who cannot see the incident", func(t *testing.T) {
		s, m := newTestIncidentService(t)
		incident := models.Incident{Model: models.Model{ID: incidentID}, Status: models.IncidentStatusOpen, OrgPlacement: completePlacement()}
		m.incidentRepository.On("ReadForUpdate", tx, incidentID).Return(incident, nil)
		m.scopeResolver.On("Resolve", "outsider").Return(pinnedScopes("outsider", "manager", completePlacement()))

		_, _, err := s.ChangeStatus(tx, shared.Actor{UserID: "outsider"}, incidentID, models.IncidentStatusInProgress, "")
		assert.True(t, shared.IsPermissionDenied(err))
	})

	t.Run("should reject reopening a closed incident", func(t *testing.T) {
		s, m := newTestIncidentService(t)
		incident := models.Incident{Model: models.Model{ID: incidentID}, Status: models.IncidentStatusClosed}
		m.incidentRepository.On("ReadForUpdate", tx, incidentID).Return(incident, nil)
		m.scopeResolver.On("Resolve", "admin").Return(globalScopes("admin"))

		_, _, err := s.ChangeStatus(tx, shared.Actor{UserID: "admin"}, incidentID, models.IncidentStatusInProgress, "")
		assert.True(t, shared.IsInvalidTransition(err))
	})

	t.Run("should stamp handled at when work starts", func(t *testing.T) {
		s, m := newTestIncidentService(t)
		placement := completePlacement()
		incident := models.Incident{Model: models.Model{ID: incidentID}, Status: models.IncidentStatusOpen, OrgPlacement: placement}
		m.incidentRepository.On("ReadForUpdate", tx, incidentID).Return(incident, nil)
		m.scopeResolver.On("Resolve", "manager").Return(pinnedScopes("manager", "manager", models.OrgPlacement{BranchID: placement.BranchID}))
		m.incidentRepository.On("Save", tx, mock.Anything, mock.Anything).Return(nil)
		m.incidentEventRepository.On("Create", tx, mock.Anything).Return(nil)
		m.auditLogService.On("Log", tx, mock.Anything).Return()

		updated, ev, err := s.ChangeStatus(tx, shared.Actor{UserID: "manager"}, incidentID, models.IncidentStatusInProgress, "on it")
		assert.NoError(t, err)
		assert.Equal(t, models.IncidentStatusInProgress, updated.Status)
		assert.NotNil(t, updated.HandledAt)
		assert.Equal(t, models.IncidentStatusOpen, ev.FromStatus)
		assert.Equal(t, models.IncidentStatusInProgress, ev.ToStatus)
	})
}

func TestIncidentSideOperations(t *testing.T) {
	tx := &gorm.DB{}
	incidentID := uuid.New()

	t.Run("should refuse to escalate a closed incident", func(t *testing.T) {
		s, m := newTestIncidentService(t)
		incident := models.Incident{Model: models.Model{ID: incidentID}, Status: models.IncidentStatusClosed}
		m.incidentRepository.On("ReadForUpdate", tx, incidentID).Return(incident, nil)
		m.scopeResolver.On("Resolve", "admin").Return(globalScopes("admin"))

		_, _, err := s.Escalate(tx, shared.Actor{UserID: "admin"}, incidentID, "")
		assert.True(t, shared.IsInvalidTransition(err))
	})

	t.Run("should keep secret incidents away from pinned managers", func(t *testing.T) {
		s, m := newTestIncidentService(t)
		incident := models.Incident{Model: models.Model{ID: incidentID}, Status: models.IncidentStatusOpen, IncidentType: models.IncidentTypeSecret, AssignedToID: shared.Ptr("manager")}
		m.incidentRepository.On("ReadForUpdate", tx, incidentID).Return(incident, nil)
		m.scopeResolver.On("Resolve", "manager").Return(pinnedScopes("manager", "manager", completePlacement()))

		_, _, err := s.Assign(tx, shared.Actor{UserID: "manager"}, incidentID, "someone-else", "")
		assert.True(t, shared.IsPermissionDenied(err))
	})

	t.Run("should assign when the scope resolver permits it at the placement", func(t *testing.T) {
		s, m := newTestIncidentService(t)
		placement := completePlacement()
		scopes := pinnedScopes("manager", "manager", placement)
		incident := models.Incident{Model: models.Model{ID: incidentID}, Status: models.IncidentStatusOpen, OrgPlacement: placement}
		m.incidentRepository.On("ReadForUpdate", tx, incidentID).Return(incident, nil)
		m.scopeResolver.On("Resolve", "manager").Return(scopes)
		m.scopeResolver.On("IsPermittedAt", scopes, shared.ObjectIncident, shared.ActionAssign, placement).Return(true)
		m.incidentRepository.On("Save", tx, mock.Anything, mock.Anything).Return(nil)
		m.incidentEventRepository.On("Create", tx, mock.Anything).Return(nil)
		m.auditLogService.On("Log", tx, mock.Anything).Return()

		updated, ev, err := s.Assign(tx, shared.Actor{UserID: "manager"}, incidentID, "officer-7", "please check")
		assert.NoError(t, err)
		assert.True(t, updated.IsAssignedTo("officer-7"))
		assert.Equal(t, models.IncidentEventAssign, ev.Action)
	})

	t.Run("should not save the incident for a note", func(t *testing.T) {
		s, m := newTestIncidentService(t)
		incident := models.Incident{Model: models.Model{ID: incidentID}, Status: models.IncidentStatusOpen, CreatedByID: shared.Ptr("reporter")}
		m.incidentRepository.On("ReadForUpdate", tx, incidentID).Return(incident, nil)
		m.scopeResolver.On("Resolve", "reporter").Return(shared.ActorScopes{UserID: "reporter"})
		m.incidentEventRepository.On("Create", tx, mock.Anything).Return(nil)
		m.auditLogService.On("Log", tx, mock.Anything).Return()

		_, ev, err := s.AddNote(tx, shared.Actor{UserID: "reporter"}, incidentID, "more details")
		assert.NoError(t, err)
		assert.Equal(t, models.IncidentEventNote, ev.Action)
		m.incidentRepository.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should fail linking a risk which does not exist", func(t *testing.T) {
		s, m := newTestIncidentService(t)
		riskID := uuid.New()
		m.riskRepository.On("Read", riskID).Return(models.Risk{}, shared.NewNotFound("risk not found"))

		_, _, err := s.LinkRisk(tx, shared.Actor{UserID: "admin"}, incidentID, riskID)
		assert.True(t, shared.IsNotFound(err))
	})
}

func TestTrackSecretIncident(t *testing.T) {
	t.Run("should answer malformed tokens without a lookup", func(t *testing.T) {
		s, _ := newTestIncidentService(t)

		for _, token := range []string{"", "short", "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz"} {
			_, _, err := s.TrackSecret(token)
			assert.True(t, shared.IsNotFound(err), token)
		}
	})

	t.Run("should answer unknown tokens with the same error", func(t *testing.T) {
		s, m := newTestIncidentService(t)
		token := newSecretKey()
		m.incidentRepository.On("ReadBySecretKey", token).Return(models.Incident{}, shared.NewNotFound("incident not found"))

		_, _, err := s.TrackSecret(token)
		assert.Equal(t, errInvalidToken, err)
	})

	t.Run("should normalize the token and return the timeline", func(t *testing.T) {
		s, m := newTestIncidentService(t)
		token := newSecretKey()
		incident := models.Incident{Model: models.Model{ID: uuid.New()}, IncidentType: models.IncidentTypeSecret}
		m.incidentRepository.On("ReadBySecretKey", token).Return(incident, nil)
		m.incidentEventRepository.On("ListByIncident", incident.ID).Return([]models.IncidentEvent{{Action: models.IncidentEventCreate}}, nil)

		found, events, err := s.TrackSecret("  " + token + " ")
		assert.NoError(t, err)
		assert.Equal(t, incident.ID, found.ID)
		assert.Len(t, events, 1)
	})
}

func TestReadIncident(t *testing.T) {
	t.Run("should deny reading an incident outside the scopes", func(t *testing.T) {
		s, m := newTestIncidentService(t)
		incident := models.Incident{Model: models.Model{ID: uuid.New()}, OrgPlacement: completePlacement()}
		m.incidentRepository.On("Read", incident.ID).Return(incident, nil)
		m.scopeResolver.On("Resolve", "").Return(shared.ActorScopes{})

		_, err := s.Read(shared.Actor{}, incident.ID)
		assert.True(t, shared.IsPermissionDenied(err))
	})
}
