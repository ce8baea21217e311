package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/mocks"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type formServiceMocks struct {
	formTemplateRepository   *mocks.FormTemplateRepository
	formSubmissionRepository *mocks.FormSubmissionRepository
	formEventRepository      *mocks.FormEventRepository
	riskReferenceRepository  *mocks.RiskReferenceRepository
	orgService               *mocks.OrgService
	scopeResolver            *mocks.ScopeResolver
	auditLogService          *mocks.AuditLogService
}

func newTestFormService(t *testing.T) (*formService, formServiceMocks) {
	m := formServiceMocks{
		formTemplateRepository:   mocks.NewFormTemplateRepository(t),
		formSubmissionRepository: mocks.NewFormSubmissionRepository(t),
		formEventRepository:      mocks.NewFormEventRepository(t),
		riskReferenceRepository:  mocks.NewRiskReferenceRepository(t),
		orgService:               mocks.NewOrgService(t),
		scopeResolver:            mocks.NewScopeResolver(t),
		auditLogService:          mocks.NewAuditLogService(t),
	}
	s := NewFormService(m.formTemplateRepository, m.formSubmissionRepository, m.formEventRepository, m.riskReferenceRepository, m.orgService, m.scopeResolver, m.auditLogService)
	s.now = func() time.Time {
		return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	}
	return s, m
}

func inspectionForm() models.FormTemplate {
	formID := uuid.New()
	return models.FormTemplate{
		Model:      models.Model{ID: formID},
		Title:      "Monthly inspection",
		Visibility: models.FormVisibilityPublic,
		IsActive:   true,
		Fields: []models.FormField{
			{Model: models.Model{ID: uuid.New()}, FormID: formID, Label: "Inspector", FieldType: models.FormFieldText, IsRequired: true},
			{Model: models.Model{ID: uuid.New()}, FormID: formID, Label: "Extinguishers", FieldType: models.FormFieldNumber},
			{Model: models.Model{ID: uuid.New()}, FormID: formID, Label: "Date", FieldType: models.FormFieldDate},
			{Model: models.Model{ID: uuid.New()}, FormID: formID, Label: "Condition", FieldType: models.FormFieldSelect, Options: "good, fair ,poor"},
			{Model: models.Model{ID: uuid.New()}, FormID: formID, Label: "Hazards", FieldType: models.FormFieldCheckbox, Options: "slip,fire,noise"},
		},
	}
}

func TestValidateAnswers(t *testing.T) {
	form := inspectionForm()
	inspector, extinguishers, date, condition, hazards := form.Fields[0], form.Fields[1], form.Fields[2], form.Fields[3], form.Fields[4]

	t.Run("should fail if a required field is missing", func(t *testing.T) {
		_, err := validateAnswers(form, []dtos.FormAnswerInput{{FieldID: extinguishers.ID, Value: "3"}})
		assert.True(t, shared.IsValidationFailed(err))
	})

	t.Run("should fail for a field of another form", func(t *testing.T) {
		_, err := validateAnswers(form, []dtos.FormAnswerInput{{FieldID: inspector.ID, Value: "Jane"}, {FieldID: uuid.New(), Value: "x"}})
		assert.True(t, shared.IsValidationFailed(err))
	})

	t.Run("should fail if a field is answered twice", func(t *testing.T) {
		_, err := validateAnswers(form, []dtos.FormAnswerInput{{FieldID: inspector.ID, Value: "Jane"}, {FieldID: inspector.ID, Value: "Max"}})
		assert.True(t, shared.IsValidationFailed(err))
	})

	t.Run("should check the value against the field type", func(t *testing.T) {
		cases := []dtos.FormAnswerInput{
			{FieldID: extinguishers.ID, Value: "three"},
			{FieldID: date.ID, Value: "01.05.2026"},
			{FieldID: condition.ID, Value: "excellent"},
			{FieldID: hazards.ID, Value: "slip,flood"},
		}
		for _, c := range cases {
			_, err := validateAnswers(form, []dtos.FormAnswerInput{{FieldID: inspector.ID, Value: "Jane"}, c})
			assert.True(t, shared.IsValidationFailed(err), c.Value)
		}
	})

	t.Run("should drop empty optional answers and keep the field order", func(t *testing.T) {
		answers, err := validateAnswers(form, []dtos.FormAnswerInput{
			{FieldID: hazards.ID, Value: "slip, noise"},
			{FieldID: condition.ID, Value: "fair"},
			{FieldID: extinguishers.ID, Value: "  "},
			{FieldID: inspector.ID, Value: " Jane "},
			{FieldID: date.ID, Value: "2026-05-01"},
		})
		assert.NoError(t, err)
		assert.Len(t, answers, 4)
		assert.Equal(t, inspector.ID, answers[0].FieldID)
		assert.Equal(t, "Jane", answers[0].Value)
		assert.Equal(t, hazards.ID, answers[3].FieldID)
	})
}

func TestSubmitForm(t *testing.T) {
	tx := &gorm.DB{}

	t.Run("should reject submissions to inactive forms", func(t *testing.T) {
		s, m := newTestFormService(t)
		form := inspectionForm()
		form.IsActive = false
		m.formTemplateRepository.On("Read", form.ID).Return(form, nil)

		_, err := s.Submit(tx, shared.Actor{}, form.ID, nil)
		assert.True(t, shared.IsValidationFailed(err))
	})

	t.Run("should deny anonymous submissions to restricted forms", func(t *testing.T) {
		s, m := newTestFormService(t)
		form := inspectionForm()
		form.Visibility = models.FormVisibilityRestricted
		m.formTemplateRepository.On("Read", form.ID).Return(form, nil)

		_, err := s.Submit(tx, shared.Actor{}, form.ID, nil)
		assert.True(t, shared.IsPermissionDenied(err))
	})

	t.Run("should store the submission with its event", func(t *testing.T) {
		s, m := newTestFormService(t)
		form := inspectionForm()
		m.formTemplateRepository.On("Read", form.ID).Return(form, nil)
		m.formSubmissionRepository.On("Create", tx, mock.Anything, mock.MatchedBy(func(sub *models.FormSubmission) bool {
			return sub.FormID == form.ID && len(sub.Answers) == 1
		})).Return(nil)
		m.formEventRepository.On("Create", tx, mock.MatchedBy(func(ev *models.FormEvent) bool {
			return ev.Action == models.FormEventSubmit && ev.SubmissionID != nil
		})).Return(nil)
		m.auditLogService.On("Log", tx, mock.Anything).Return()

		submission, err := s.Submit(tx, shared.Actor{}, form.ID, []dtos.FormAnswerInput{{FieldID: form.Fields[0].ID, Value: "Jane"}})
		assert.NoError(t, err)
		assert.Equal(t, "", submission.SubmittedBy)
		assert.Equal(t, 2026, submission.SubmittedAt.Year())
	})
}

func TestFormTemplateEditing(t *testing.T) {
	tx := &gorm.DB{}
	editor := shared.Actor{UserID: "coordinator"}

	allowEditor := func(m formServiceMocks) {
		m.scopeResolver.On("Resolve", "coordinator").Return(shared.ActorScopes{UserID: "coordinator"})
		m.scopeResolver.On("IsPermitted", mock.Anything, shared.ObjectFormTemplate, mock.Anything).Return(true)
	}

	t.Run("should deny editing without the permission", func(t *testing.T) {
		s, m := newTestFormService(t)
		m.scopeResolver.On("Resolve", "employee").Return(shared.ActorScopes{UserID: "employee"})
		m.scopeResolver.On("IsPermitted", mock.Anything, shared.ObjectFormTemplate, shared.ActionCreate).Return(false)

		_, err := s.CreateTemplate(tx, shared.Actor{UserID: "employee"}, dtos.CreateFormTemplateRequest{Title: "x", Visibility: models.FormVisibilityPublic})
		assert.True(t, shared.IsPermissionDenied(err))
	})

	t.Run("should require options for choice fields", func(t *testing.T) {
		s, m := newTestFormService(t)
		allowEditor(m)

		_, err := s.AddField(tx, editor, uuid.New(), dtos.AddFormFieldRequest{Label: "Condition", FieldType: models.FormFieldRadio, Options: []string{" "}})
		assert.True(t, shared.IsValidationFailed(err))
	})

	t.Run("should reject options containing the separator", func(t *testing.T) {
		s, m := newTestFormService(t)
		allowEditor(m)

		_, err := s.AddField(tx, editor, uuid.New(), dtos.AddFormFieldRequest{Label: "Condition", FieldType: models.FormFieldSelect, Options: []string{"good, really"}})
		assert.True(t, shared.IsValidationFailed(err))
	})

	t.Run("should store the options comma separated", func(t *testing.T) {
		s, m := newTestFormService(t)
		allowEditor(m)
		form := inspectionForm()
		m.formTemplateRepository.On("Read", form.ID).Return(form, nil)
		m.formTemplateRepository.On("CreateField", tx, mock.Anything, mock.Anything).Return(nil)
		m.formEventRepository.On("Create", tx, mock.Anything).Return(nil)
		m.auditLogService.On("Log", tx, mock.Anything).Return()

		field, err := s.AddField(tx, editor, form.ID, dtos.AddFormFieldRequest{Label: "Shift", FieldType: models.FormFieldRadio, Options: []string{"early", " late "}})
		assert.NoError(t, err)
		assert.Equal(t, "early,late", field.Options)
		assert.Equal(t, []string{"early", "late"}, field.OptionList())
	})

	t.Run("should fail attaching if no active reference remains", func(t *testing.T) {
		s, m := newTestFormService(t)
		allowEditor(m)
		id := uuid.New()
		m.riskReferenceRepository.On("ListActiveByIDs", []uuid.UUID{id}).Return([]models.RiskReference{}, nil)

		_, err := s.AttachRiskReferences(tx, editor, uuid.New(), []uuid.UUID{id, id})
		assert.True(t, shared.IsValidationFailed(err))
	})
}

func TestReadForm(t *testing.T) {
	t.Run("should hide inactive forms from anonymous callers", func(t *testing.T) {
		s, m := newTestFormService(t)
		form := inspectionForm()
		form.IsActive = false
		m.formTemplateRepository.On("Read", form.ID).Return(form, nil)

		_, err := s.Read(shared.Actor{}, form.ID)
		assert.True(t, shared.IsNotFound(err))
	})

	t.Run("should show restricted forms to users pinned at the placement", func(t *testing.T) {
		s, m := newTestFormService(t)
		placement := completePlacement()
		form := inspectionForm()
		form.Visibility = models.FormVisibilityRestricted
		form.OrgPlacement = models.OrgPlacement{BranchID: placement.BranchID}
		scopes := pinnedScopes("employee", "employee", placement.Truncate(models.OrgLevelBranch))
		m.formTemplateRepository.On("Read", form.ID).Return(form, nil)
		m.scopeResolver.On("Resolve", "employee").Return(scopes)
		m.scopeResolver.On("IsPermitted", scopes, shared.ObjectFormTemplate, mock.Anything).Return(false)

		found, err := s.Read(shared.Actor{UserID: "employee"}, form.ID)
		assert.NoError(t, err)
		assert.Equal(t, form.ID, found.ID)
	})

	t.Run("should not list submissions to non editors", func(t *testing.T) {
		s, _ := newTestFormService(t)

		_, err := s.ListSubmissions(shared.Actor{}, uuid.New(), shared.PageInfo{})
		assert.True(t, shared.IsPermissionDenied(err))
	})
}
