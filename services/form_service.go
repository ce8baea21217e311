// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/monitoring"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/l3montree-dev/ohsms/utils"
	"gorm.io/datatypes"
)

const formDateLayout = "2006-01-02"

type formService struct {
	formTemplateRepository   shared.FormTemplateRepository
	formSubmissionRepository shared.FormSubmissionRepository
	formEventRepository      shared.FormEventRepository
	riskReferenceRepository  shared.RiskReferenceRepository
	orgService               shared.OrgService
	scopeResolver            shared.ScopeResolver
	auditLogService          shared.AuditLogService
	now                      func() time.Time
}

var _ shared.FormService = &formService{}

func NewFormService(formTemplateRepository shared.FormTemplateRepository, formSubmissionRepository shared.FormSubmissionRepository, formEventRepository shared.FormEventRepository, riskReferenceRepository shared.RiskReferenceRepository, orgService shared.OrgService, scopeResolver shared.ScopeResolver, auditLogService shared.AuditLogService) *formService {
	return &formService{
		formTemplateRepository:   formTemplateRepository,
		formSubmissionRepository: formSubmissionRepository,
		formEventRepository:      formEventRepository,
		riskReferenceRepository:  riskReferenceRepository,
		orgService:               orgService,
		scopeResolver:            scopeResolver,
		auditLogService:          auditLogService,
		now:                      time.Now,
	}
}

func (s *formService) authorize(actor shared.Actor, action shared.Action) error {
	if actor.IsAnonymous() {
		return shared.NewPermissionDenied("authentication required")
	}
	if !s.scopeResolver.IsPermitted(s.scopeResolver.Resolve(actor.UserID), shared.ObjectFormTemplate, action) {
		return shared.NewPermissionDenied(fmt.Sprintf("not allowed to %s form templates", action))
	}
	return nil
}

func (s *formService) isEditor(actor shared.Actor) bool {
	if actor.IsAnonymous() {
		return false
	}
	scopes := s.scopeResolver.Resolve(actor.UserID)
	return s.scopeResolver.IsPermitted(scopes, shared.ObjectFormTemplate, shared.ActionCreate) ||
		s.scopeResolver.IsPermitted(scopes, shared.ObjectFormTemplate, shared.ActionUpdate)
}

func (s *formService) writeEvent(tx shared.DB, actor shared.Actor, formID uuid.UUID, submissionID *uuid.UUID, action models.FormEventAction, payload map[string]any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("could not marshal form event payload: %w", err)
	}
	ev := models.FormEvent{
		FormID:       formID,
		SubmissionID: submissionID,
		Action:       action,
		ActorID:      actor.IDPtr(),
		Payload:      datatypes.JSON(raw),
	}
	if err := s.formEventRepository.Create(tx, &ev); err != nil {
		return fmt.Errorf("could not create form event: %w", err)
	}
	return nil
}

func (s *formService) CreateTemplate(tx shared.DB, actor shared.Actor, req dtos.CreateFormTemplateRequest) (models.FormTemplate, error) {
	if err := s.authorize(actor, shared.ActionCreate); err != nil {
		return models.FormTemplate{}, err
	}
	if err := requireText("title", req.Title); err != nil {
		return models.FormTemplate{}, err
	}
	if req.Visibility != models.FormVisibilityPublic && req.Visibility != models.FormVisibilityRestricted {
		return models.FormTemplate{}, shared.NewFieldValidationFailed("visibility", "must be public or restricted")
	}
	placement, err := s.orgService.NormalizePlacement(req.ToModel())
	if err != nil {
		return models.FormTemplate{}, err
	}

	form := models.FormTemplate{
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		Visibility:   req.Visibility,
		OrgPlacement: placement,
		IsActive:     true,
		CreatedBy:    actor.UserID,
	}
	err = inTransaction(s.formTemplateRepository, tx, func(tx shared.DB) error {
		if err := s.formTemplateRepository.Create(tx, shared.GrantWrite(shared.WriteScopeForm), &form); err != nil {
			return fmt.Errorf("could not create form template: %w", err)
		}
		if err := s.writeEvent(tx, actor, form.ID, nil, models.FormEventCreateTemplate, map[string]any{
			"title":      form.Title,
			"visibility": form.Visibility,
		}); err != nil {
			return err
		}
		s.auditLogService.Log(tx, shared.AuditEntry{
			Actor:       actor,
			Action:      models.AuditActionCreate,
			ModelName:   "form_template",
			ObjectID:    form.ID.String(),
			Description: fmt.Sprintf("created %s form %q", form.Visibility, form.Title),
		})
		return nil
	})
	return form, err
}

func (s *formService) AddField(tx shared.DB, actor shared.Actor, formID uuid.UUID, req dtos.AddFormFieldRequest) (models.FormField, error) {
	if err := s.authorize(actor, shared.ActionUpdate); err != nil {
		return models.FormField{}, err
	}
	if err := requireText("label", req.Label); err != nil {
		return models.FormField{}, err
	}
	if !req.FieldType.IsValid() {
		return models.FormField{}, shared.NewFieldValidationFailed("fieldType", "unknown field type")
	}

	options := utils.Filter(utils.Map(req.Options, strings.TrimSpace), func(o string) bool { return o != "" })
	for _, o := range options {
		if strings.Contains(o, ",") {
			return models.FormField{}, shared.NewFieldValidationFailed("options", "must not contain commas")
		}
	}
	if req.FieldType.HasOptions() && len(options) == 0 {
		return models.FormField{}, shared.NewFieldValidationFailed("options", fmt.Sprintf("required for %s fields", req.FieldType))
	}
	if !req.FieldType.HasOptions() && len(options) > 0 {
		return models.FormField{}, shared.NewFieldValidationFailed("options", fmt.Sprintf("not allowed for %s fields", req.FieldType))
	}

	field := models.FormField{
		FormID:     formID,
		Label:      strings.TrimSpace(req.Label),
		FieldType:  req.FieldType,
		IsRequired: req.IsRequired,
		Order:      req.Order,
		Options:    strings.Join(options, ","),
	}
	err := inTransaction(s.formTemplateRepository, tx, func(tx shared.DB) error {
		if _, err := s.formTemplateRepository.Read(formID); err != nil {
			return err
		}
		if err := s.formTemplateRepository.CreateField(tx, shared.GrantWrite(shared.WriteScopeForm), &field); err != nil {
			return fmt.Errorf("could not create form field: %w", err)
		}
		if err := s.writeEvent(tx, actor, formID, nil, models.FormEventAddField, map[string]any{
			"fieldId":   field.ID,
			"label":     field.Label,
			"fieldType": field.FieldType,
		}); err != nil {
			return err
		}
		s.auditLogService.Log(tx, shared.AuditEntry{
			Actor:       actor,
			Action:      models.AuditActionUpdate,
			ModelName:   "form_template",
			ObjectID:    formID.String(),
			Description: fmt.Sprintf("added %s field %q", field.FieldType, field.Label),
		})
		return nil
	})
	return field, err
}

func (s *formService) SetActive(tx shared.DB, actor shared.Actor, formID uuid.UUID, active bool) (models.FormTemplate, error) {
	if err := s.authorize(actor, shared.ActionUpdate); err != nil {
		return models.FormTemplate{}, err
	}

	var form models.FormTemplate
	err := inTransaction(s.formTemplateRepository, tx, func(tx shared.DB) error {
		var err error
		form, err = s.formTemplateRepository.Read(formID)
		if err != nil {
			return err
		}
		form.IsActive = active
		if err := s.formTemplateRepository.Save(tx, shared.GrantWrite(shared.WriteScopeForm), &form); err != nil {
			return fmt.Errorf("could not save form template: %w", err)
		}
		action := models.FormEventDeactivate
		if active {
			action = models.FormEventActivate
		}
		if err := s.writeEvent(tx, actor, form.ID, nil, action, map[string]any{"isActive": active}); err != nil {
			return err
		}
		s.auditLogService.Log(tx, shared.AuditEntry{
			Actor:       actor,
			Action:      models.AuditActionUpdate,
			ModelName:   "form_template",
			ObjectID:    form.ID.String(),
			Description: string(action),
		})
		return nil
	})
	return form, err
}

// AttachRiskReferences replaces the linked references. Inactive or unknown
// ids are skipped.
func (s *formService) AttachRiskReferences(tx shared.DB, actor shared.Actor, formID uuid.UUID, referenceIDs []uuid.UUID) (models.FormTemplate, error) {
	if err := s.authorize(actor, shared.ActionUpdate); err != nil {
		return models.FormTemplate{}, err
	}
	references, err := s.riskReferenceRepository.ListActiveByIDs(uniqueIDs(referenceIDs))
	if err != nil {
		return models.FormTemplate{}, err
	}
	if len(references) == 0 {
		return models.FormTemplate{}, shared.NewFieldValidationFailed("referenceIds", "no active risk references given")
	}

	var form models.FormTemplate
	err = inTransaction(s.formTemplateRepository, tx, func(tx shared.DB) error {
		var err error
		form, err = s.formTemplateRepository.Read(formID)
		if err != nil {
			return err
		}
		if err := s.formTemplateRepository.ReplaceRiskReferences(tx, shared.GrantWrite(shared.WriteScopeForm), &form, references); err != nil {
			return fmt.Errorf("could not attach risk references: %w", err)
		}
		form.RiskReferences = references

		ids := make([]string, 0, len(references))
		for _, r := range references {
			ids = append(ids, r.ID.String())
		}
		if err := s.writeEvent(tx, actor, form.ID, nil, models.FormEventAttachRiskReferences, map[string]any{"referenceIds": ids}); err != nil {
			return err
		}
		s.auditLogService.Log(tx, shared.AuditEntry{
			Actor:       actor,
			Action:      models.AuditActionAttach,
			ModelName:   "form_template",
			ObjectID:    form.ID.String(),
			Description: fmt.Sprintf("attached %d risk references", len(references)),
		})
		return nil
	})
	return form, err
}

// canFill reports whether the actor may submit or read the template.
// Restricted templates need an authenticated actor with scope over the
// placement.
func (s *formService) canFill(actor shared.Actor, form models.FormTemplate) bool {
	if form.Visibility != models.FormVisibilityRestricted {
		return true
	}
	if actor.IsAnonymous() {
		return false
	}
	return s.scopeResolver.Resolve(actor.UserID).CanAccess("", form.OrgPlacement)
}

func validateAnswer(field models.FormField, value string) error {
	key := "answers." + field.ID.String()
	switch field.FieldType {
	case models.FormFieldNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return shared.NewFieldValidationFailed(key, "must be a number")
		}
	case models.FormFieldDate:
		if _, err := time.Parse(formDateLayout, value); err != nil {
			return shared.NewFieldValidationFailed(key, "must be a date (YYYY-MM-DD)")
		}
	case models.FormFieldSelect, models.FormFieldRadio:
		if !slices.Contains(field.OptionList(), value) {
			return shared.NewFieldValidationFailed(key, "must be one of the options")
		}
	case models.FormFieldCheckbox:
		options := field.OptionList()
		for _, v := range strings.Split(value, ",") {
			if !slices.Contains(options, strings.TrimSpace(v)) {
				return shared.NewFieldValidationFailed(key, "must only contain options")
			}
		}
	}
	return nil
}

// validateAnswers returns the answers to store. Empty optional answers are
// dropped.
func validateAnswers(form models.FormTemplate, inputs []dtos.FormAnswerInput) ([]models.FormAnswer, error) {
	given := make(map[uuid.UUID]string, len(inputs))
	for _, input := range inputs {
		if _, ok := form.FieldByID(input.FieldID); !ok {
			return nil, shared.NewFieldValidationFailed("answers", fmt.Sprintf("field %s does not belong to the form", input.FieldID))
		}
		if _, ok := given[input.FieldID]; ok {
			return nil, shared.NewFieldValidationFailed("answers", fmt.Sprintf("field %s answered twice", input.FieldID))
		}
		given[input.FieldID] = strings.TrimSpace(input.Value)
	}

	answers := make([]models.FormAnswer, 0, len(given))
	for _, field := range form.Fields {
		value := given[field.ID]
		if value == "" {
			if field.IsRequired {
				return nil, shared.NewFieldValidationFailed("answers."+field.ID.String(), fmt.Sprintf("%q is required", field.Label))
			}
			continue
		}
		if err := validateAnswer(field, value); err != nil {
			return nil, err
		}
		answers = append(answers, models.FormAnswer{FieldID: field.ID, Value: value})
	}
	return answers, nil
}

func (s *formService) Submit(tx shared.DB, actor shared.Actor, formID uuid.UUID, inputs []dtos.FormAnswerInput) (models.FormSubmission, error) {
	form, err := s.formTemplateRepository.Read(formID)
	if err != nil {
		return models.FormSubmission{}, err
	}
	if !form.IsActive {
		return models.FormSubmission{}, shared.NewValidationFailed("form is not active")
	}
	if !s.canFill(actor, form) {
		return models.FormSubmission{}, shared.NewPermissionDenied("not allowed to submit this form")
	}
	answers, err := validateAnswers(form, inputs)
	if err != nil {
		return models.FormSubmission{}, err
	}

	submission := models.FormSubmission{
		FormID:      form.ID,
		SubmittedBy: actor.UserID,
		SubmittedAt: s.now(),
		Answers:     answers,
	}
	err = inTransaction(s.formTemplateRepository, tx, func(tx shared.DB) error {
		if err := s.formSubmissionRepository.Create(tx, shared.GrantWrite(shared.WriteScopeForm), &submission); err != nil {
			return fmt.Errorf("could not create form submission: %w", err)
		}
		if err := s.writeEvent(tx, actor, form.ID, &submission.ID, models.FormEventSubmit, map[string]any{"answers": len(answers)}); err != nil {
			return err
		}
		s.auditLogService.Log(tx, shared.AuditEntry{
			Actor:       actor,
			Action:      models.AuditActionSubmit,
			ModelName:   "form_submission",
			ObjectID:    submission.ID.String(),
			Description: fmt.Sprintf("submitted form %q", form.Title),
		})
		return nil
	})
	if err != nil {
		return models.FormSubmission{}, err
	}
	monitoring.FormSubmissionAmount.Inc()
	return submission, nil
}

// Read hides inactive templates from everybody but editors.
func (s *formService) Read(actor shared.Actor, formID uuid.UUID) (models.FormTemplate, error) {
	form, err := s.formTemplateRepository.Read(formID)
	if err != nil {
		return models.FormTemplate{}, err
	}
	if s.isEditor(actor) {
		return form, nil
	}
	if !form.IsActive {
		return models.FormTemplate{}, shared.NewNotFound("form_templates not found")
	}
	if !s.canFill(actor, form) {
		return models.FormTemplate{}, shared.NewPermissionDenied("not allowed to view this form")
	}
	return form, nil
}

func (s *formService) List(actor shared.Actor, pageInfo shared.PageInfo) (shared.Paged[models.FormTemplate], error) {
	return s.formTemplateRepository.List(pageInfo, !s.isEditor(actor))
}

func (s *formService) ListSubmissions(actor shared.Actor, formID uuid.UUID, pageInfo shared.PageInfo) (shared.Paged[models.FormSubmission], error) {
	if !s.isEditor(actor) {
		return shared.Paged[models.FormSubmission]{}, shared.NewPermissionDenied("not allowed to read form submissions")
	}
	if _, err := s.formTemplateRepository.Read(formID); err != nil {
		return shared.Paged[models.FormSubmission]{}, err
	}
	return s.formSubmissionRepository.ListByForm(formID, pageInfo)
}
