package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/monitoring"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/l3montree-dev/ohsms/statemachine"
)

type riskService struct {
	riskRepository          shared.RiskRepository
	riskEventRepository     shared.RiskEventRepository
	riskNoteRepository      shared.RiskNoteRepository
	riskReferenceRepository shared.RiskReferenceRepository
	riskTaxonomyService     shared.RiskTaxonomyService
	orgService              shared.OrgService
	scopeResolver           shared.ScopeResolver
	auditLogService         shared.AuditLogService
}

var _ shared.RiskService = &riskService{}

func NewRiskService(riskRepository shared.RiskRepository, riskEventRepository shared.RiskEventRepository, riskNoteRepository shared.RiskNoteRepository, riskReferenceRepository shared.RiskReferenceRepository, riskTaxonomyService shared.RiskTaxonomyService, orgService shared.OrgService, scopeResolver shared.ScopeResolver, auditLogService shared.AuditLogService) *riskService {
	return &riskService{
		riskRepository:          riskRepository,
		riskEventRepository:     riskEventRepository,
		riskNoteRepository:      riskNoteRepository,
		riskReferenceRepository: riskReferenceRepository,
		riskTaxonomyService:     riskTaxonomyService,
		orgService:              orgService,
		scopeResolver:           scopeResolver,
		auditLogService:         auditLogService,
	}
}

var riskAuditActions = map[models.RiskEventAction]models.AuditAction{
	models.RiskEventSubmit:  models.AuditActionSubmit,
	models.RiskEventApprove: models.AuditActionApprove,
	models.RiskEventReject:  models.AuditActionReject,
	models.RiskEventStart:   models.AuditActionStatusChange,
	models.RiskEventClose:   models.AuditActionStatusChange,
}

func validateRating(field string, value int) error {
	if value < models.MinRiskRating || value > models.MaxRiskRating {
		return shared.NewFieldValidationFailed(field, fmt.Sprintf("must be between %d and %d", models.MinRiskRating, models.MaxRiskRating))
	}
	return nil
}

// scopedPlacement normalizes the placement and cuts it down to the level the
// scope type names. The named level itself must be present.
func (s *riskService) scopedPlacement(scopeType models.RiskScopeType, req dtos.PlacementRequest) (models.OrgPlacement, error) {
	placement := req.ToModel()
	switch scopeType {
	case models.RiskScopeGeneral:
		if !placement.IsEmpty() {
			return placement, shared.NewFieldValidationFailed("scopeType", "general risks cannot be placed on an org node")
		}
		return placement, nil
	case models.RiskScopeBranch:
		if placement.BranchID == nil && placement.DepartmentID == nil && placement.SectionID == nil {
			return placement, shared.NewFieldValidationFailed("branchId", "required for branch risks")
		}
	case models.RiskScopeDepartment:
		if placement.DepartmentID == nil && placement.SectionID == nil {
			return placement, shared.NewFieldValidationFailed("departmentId", "required for department risks")
		}
	case models.RiskScopeSection:
		if placement.SectionID == nil {
			return placement, shared.NewFieldValidationFailed("sectionId", "required for section risks")
		}
	default:
		return placement, shared.NewFieldValidationFailed("scopeType", "unknown scope type")
	}

	normalized, err := s.orgService.NormalizePlacement(placement)
	if err != nil {
		return placement, err
	}
	return normalized.Truncate(scopeType.Level()), nil
}

func (s *riskService) create(tx shared.DB, actor shared.Actor, risk *models.Risk, affectedGroupIDs []uuid.UUID) error {
	if actor.IsAnonymous() {
		return shared.NewPermissionDenied("authentication required")
	}
	if err := requireText("title", risk.Title); err != nil {
		return err
	}
	if err := requireText("description", risk.Description); err != nil {
		return err
	}
	if err := validateRating("severity", risk.Severity); err != nil {
		return err
	}
	if err := validateRating("likelihood", risk.Likelihood); err != nil {
		return err
	}
	if err := s.riskTaxonomyService.ValidateChain(risk.CategoryID, risk.SubCategoryID, risk.CauseID); err != nil {
		return err
	}
	groups, err := s.riskTaxonomyService.ResolveAffectedGroups(affectedGroupIDs)
	if err != nil {
		return err
	}
	if risk.OwnerDepartmentID != nil {
		if _, err := s.orgService.NormalizePlacement(models.OrgPlacement{DepartmentID: risk.OwnerDepartmentID}); err != nil {
			return err
		}
	}
	if !s.scopeResolver.IsPermittedAt(s.scopeResolver.Resolve(actor.UserID), shared.ObjectRisk, shared.ActionCreate, risk.Node()) {
		return shared.NewPermissionDenied("not allowed to create risks in this scope")
	}

	risk.Status = models.RiskStatusDraft
	risk.CreatedByID = actor.UserID
	risk.CreatedByName = actor.Label()
	risk.RecalculateScore()

	err = inTransaction(s.riskRepository, tx, func(tx shared.DB) error {
		permit := shared.GrantWrite(shared.WriteScopeRisk)
		if err := s.riskRepository.Create(tx, permit, risk); err != nil {
			return fmt.Errorf("could not create risk: %w", err)
		}
		if len(groups) > 0 {
			if err := s.riskRepository.ReplaceAffectedGroups(tx, permit, risk, groups); err != nil {
				return fmt.Errorf("could not link affected groups: %w", err)
			}
		}
		ev := models.NewRiskEvent(risk.ID, models.RiskEventCreate, "", models.RiskStatusDraft, actor.UserID, actor.Label(), "")
		if err := s.riskEventRepository.Create(tx, &ev); err != nil {
			return fmt.Errorf("could not create risk event: %w", err)
		}
		s.auditLogService.Log(tx, shared.AuditEntry{
			Actor:       actor,
			Action:      models.AuditActionCreate,
			ModelName:   "risk",
			ObjectID:    risk.ID.String(),
			Description: fmt.Sprintf("created %s risk %q with score %d", risk.ScopeType, risk.Title, risk.RiskScore),
		})
		return nil
	})
	if err != nil {
		return err
	}
	monitoring.RiskCreatedAmount.Inc()
	return nil
}

func (s *riskService) Create(tx shared.DB, actor shared.Actor, req dtos.CreateRiskRequest) (models.Risk, error) {
	placement, err := s.scopedPlacement(req.ScopeType, req.PlacementRequest)
	if err != nil {
		return models.Risk{}, err
	}
	risk := models.Risk{
		Title:             strings.TrimSpace(req.Title),
		Description:       req.Description,
		CategoryID:        req.CategoryID,
		SubCategoryID:     req.SubCategoryID,
		CauseID:           req.CauseID,
		Severity:          req.Severity,
		Likelihood:        req.Likelihood,
		CorrectiveAction:  req.CorrectiveAction,
		PreventiveAction:  req.PreventiveAction,
		OwnerDepartmentID: req.OwnerDepartmentID,
		OwnerPerson:       req.OwnerPerson,
		ContactChannel:    req.ContactChannel,
		ScopeType:         req.ScopeType,
		OrgPlacement:      placement,
	}
	if err := s.create(tx, actor, &risk, req.AffectedGroupIDs); err != nil {
		return models.Risk{}, err
	}
	return risk, nil
}

// CreateFromReference copies the registry entry. Ratings given in the request
// win over the defaults of the reference.
func (s *riskService) CreateFromReference(tx shared.DB, actor shared.Actor, req dtos.CreateRiskFromReferenceRequest) (models.Risk, error) {
	reference, err := s.riskReferenceRepository.Read(req.ReferenceID)
	if err != nil {
		return models.Risk{}, err
	}
	if !reference.IsActive {
		return models.Risk{}, shared.NewFieldValidationFailed("referenceId", "risk reference is inactive")
	}

	severity := reference.DefaultSeverity
	if req.Severity != nil {
		severity = req.Severity
	}
	likelihood := reference.DefaultLikelihood
	if req.Likelihood != nil {
		likelihood = req.Likelihood
	}
	if severity == nil {
		return models.Risk{}, shared.NewFieldValidationFailed("severity", "required, the reference has no default")
	}
	if likelihood == nil {
		return models.Risk{}, shared.NewFieldValidationFailed("likelihood", "required, the reference has no default")
	}

	placement, err := s.scopedPlacement(req.ScopeType, req.PlacementRequest)
	if err != nil {
		return models.Risk{}, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = reference.Title
	}
	groupIDs := make([]uuid.UUID, 0, len(reference.AffectedGroups))
	for _, g := range reference.AffectedGroups {
		groupIDs = append(groupIDs, g.ID)
	}

	risk := models.Risk{
		Title:            title,
		Description:      reference.Description,
		CategoryID:       reference.CategoryID,
		SubCategoryID:    reference.SubCategoryID,
		CauseID:          reference.CauseID,
		Severity:         *severity,
		Likelihood:       *likelihood,
		CorrectiveAction: reference.CorrectiveAction,
		PreventiveAction: reference.PreventiveAction,
		ScopeType:        req.ScopeType,
		OrgPlacement:     placement,
		ReferenceID:      &reference.ID,
	}
	if err := s.create(tx, actor, &risk, groupIDs); err != nil {
		return models.Risk{}, err
	}
	return risk, nil
}

// UpdateAssessment edits a draft. Its creator and everybody who may submit it
// inside its scope are allowed to.
func (s *riskService) UpdateAssessment(tx shared.DB, actor shared.Actor, riskID uuid.UUID, req dtos.UpdateRiskAssessmentRequest) (models.Risk, error) {
	if actor.IsAnonymous() {
		return models.Risk{}, shared.NewPermissionDenied("authentication required")
	}
	if req.Severity != nil {
		if err := validateRating("severity", *req.Severity); err != nil {
			return models.Risk{}, err
		}
	}
	if req.Likelihood != nil {
		if err := validateRating("likelihood", *req.Likelihood); err != nil {
			return models.Risk{}, err
		}
	}
	if req.Title != nil {
		if err := requireText("title", *req.Title); err != nil {
			return models.Risk{}, err
		}
	}
	if req.Description != nil {
		if err := requireText("description", *req.Description); err != nil {
			return models.Risk{}, err
		}
	}
	var groups []models.AffectedGroup
	if req.AffectedGroupIDs != nil {
		var err error
		if groups, err = s.riskTaxonomyService.ResolveAffectedGroups(*req.AffectedGroupIDs); err != nil {
			return models.Risk{}, err
		}
	}

	var risk models.Risk
	err := inTransaction(s.riskRepository, tx, func(tx shared.DB) error {
		var err error
		risk, err = s.riskRepository.ReadForUpdate(tx, riskID)
		if err != nil {
			return err
		}
		scopes := s.scopeResolver.Resolve(actor.UserID)
		if risk.CreatedByID != actor.UserID && !s.scopeResolver.IsPermittedAt(scopes, shared.ObjectRisk, shared.ActionSubmit, risk.Node()) {
			return shared.NewPermissionDenied("not allowed to edit this risk")
		}
		if risk.Status != models.RiskStatusDraft {
			return shared.NewInvalidTransition(risk.Status, models.RiskStatusDraft)
		}

		if req.Title != nil {
			risk.Title = strings.TrimSpace(*req.Title)
		}
		if req.Description != nil {
			risk.Description = *req.Description
		}
		if req.Severity != nil {
			risk.Severity = *req.Severity
		}
		if req.Likelihood != nil {
			risk.Likelihood = *req.Likelihood
		}
		if req.CorrectiveAction != nil {
			risk.CorrectiveAction = *req.CorrectiveAction
		}
		if req.PreventiveAction != nil {
			risk.PreventiveAction = *req.PreventiveAction
		}
		if req.OwnerPerson != nil {
			risk.OwnerPerson = *req.OwnerPerson
		}
		if req.ContactChannel != nil {
			risk.ContactChannel = *req.ContactChannel
		}
		risk.RecalculateScore()

		permit := shared.GrantWrite(shared.WriteScopeRisk)
		if err := s.riskRepository.Save(tx, permit, &risk); err != nil {
			return fmt.Errorf("could not save risk: %w", err)
		}
		if req.AffectedGroupIDs != nil {
			if err := s.riskRepository.ReplaceAffectedGroups(tx, permit, &risk, groups); err != nil {
				return fmt.Errorf("could not link affected groups: %w", err)
			}
		}
		ev := models.NewRiskEvent(risk.ID, models.RiskEventUpdate, risk.Status, risk.Status, actor.UserID, actor.Label(), "")
		if err := s.riskEventRepository.Create(tx, &ev); err != nil {
			return fmt.Errorf("could not create risk event: %w", err)
		}
		s.auditLogService.Log(tx, shared.AuditEntry{
			Actor:       actor,
			Action:      models.AuditActionUpdate,
			ModelName:   "risk",
			ObjectID:    risk.ID.String(),
			Description: fmt.Sprintf("updated assessment, score is now %d", risk.RiskScore),
		})
		return nil
	})
	return risk, err
}

// transition runs one step of the lifecycle. noteText, if not empty, is
// appended to the risk notes in the same transaction.
func (s *riskService) transition(tx shared.DB, actor shared.Actor, riskID uuid.UUID, action models.RiskEventAction, note string, noteText string) (models.Risk, error) {
	if actor.IsAnonymous() {
		return models.Risk{}, shared.NewPermissionDenied("authentication required")
	}
	object, permission, ok := statemachine.RiskTransitionPermission(action)
	if !ok {
		return models.Risk{}, shared.NewValidationFailed("unknown risk action " + string(action))
	}

	var risk models.Risk
	err := inTransaction(s.riskRepository, tx, func(tx shared.DB) error {
		var err error
		risk, err = s.riskRepository.ReadForUpdate(tx, riskID)
		if err != nil {
			return err
		}
		if !s.scopeResolver.IsPermittedAt(s.scopeResolver.Resolve(actor.UserID), object, permission, risk.Node()) {
			role, _ := statemachine.RiskTransitionRole(action)
			return shared.NewPermissionDenied(fmt.Sprintf("%s requires the %s role for the risk scope", action, role))
		}
		if err := statemachine.ValidateRiskTransition(action, risk.Status); err != nil {
			return err
		}

		to, _ := statemachine.RiskTransitionTarget(action)
		ev := models.NewRiskEvent(risk.ID, action, risk.Status, to, actor.UserID, actor.Label(), note)
		statemachine.ApplyRiskEvent(&risk, ev)

		if err := s.riskRepository.Save(tx, shared.GrantWrite(shared.WriteScopeRisk), &risk); err != nil {
			return fmt.Errorf("could not save risk: %w", err)
		}
		if err := s.riskEventRepository.Create(tx, &ev); err != nil {
			return fmt.Errorf("could not create risk event: %w", err)
		}
		if noteText != "" {
			riskNote := models.RiskNote{RiskID: risk.ID, Note: noteText, AuthorID: actor.UserID, AuthorLabel: actor.Label()}
			if err := s.riskNoteRepository.Create(tx, &riskNote); err != nil {
				return fmt.Errorf("could not create risk note: %w", err)
			}
		}
		s.auditLogService.Log(tx, shared.AuditEntry{
			Actor:       actor,
			Action:      riskAuditActions[action],
			ModelName:   "risk",
			ObjectID:    risk.ID.String(),
			Description: fmt.Sprintf("risk moved from %s to %s", ev.FromStatus, ev.ToStatus),
		})
		return nil
	})
	if err != nil {
		return models.Risk{}, err
	}
	monitoring.RiskTransitionAmount.WithLabelValues(string(action)).Inc()
	return risk, nil
}

func (s *riskService) Submit(tx shared.DB, actor shared.Actor, riskID uuid.UUID, note string) (models.Risk, error) {
	return s.transition(tx, actor, riskID, models.RiskEventSubmit, note, "")
}

func (s *riskService) Approve(tx shared.DB, actor shared.Actor, riskID uuid.UUID, note string) (models.Risk, error) {
	noteText := "approved"
	if strings.TrimSpace(note) != "" {
		noteText = "approved: " + strings.TrimSpace(note)
	}
	return s.transition(tx, actor, riskID, models.RiskEventApprove, note, noteText)
}

func (s *riskService) Reject(tx shared.DB, actor shared.Actor, riskID uuid.UUID, reason string) (models.Risk, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return models.Risk{}, shared.NewFieldValidationFailed("reason", "required")
	}
	return s.transition(tx, actor, riskID, models.RiskEventReject, reason, reason)
}

func (s *riskService) Start(tx shared.DB, actor shared.Actor, riskID uuid.UUID, note string) (models.Risk, error) {
	return s.transition(tx, actor, riskID, models.RiskEventStart, note, "")
}

func (s *riskService) Close(tx shared.DB, actor shared.Actor, riskID uuid.UUID, note string) (models.Risk, error) {
	return s.transition(tx, actor, riskID, models.RiskEventClose, note, "")
}

func (s *riskService) AddNote(tx shared.DB, actor shared.Actor, riskID uuid.UUID, note string) (models.RiskNote, error) {
	if actor.IsAnonymous() {
		return models.RiskNote{}, shared.NewPermissionDenied("authentication required")
	}
	note = strings.TrimSpace(note)
	if note == "" {
		return models.RiskNote{}, shared.NewFieldValidationFailed("note", "required")
	}

	riskNote := models.RiskNote{Note: note, AuthorID: actor.UserID, AuthorLabel: actor.Label()}
	err := inTransaction(s.riskRepository, tx, func(tx shared.DB) error {
		risk, err := s.riskRepository.ReadForUpdate(tx, riskID)
		if err != nil {
			return err
		}
		if !s.scopeResolver.Resolve(actor.UserID).CanViewRisk(risk) {
			return shared.NewPermissionDenied("not allowed to comment on this risk")
		}

		riskNote.RiskID = risk.ID
		if err := s.riskNoteRepository.Create(tx, &riskNote); err != nil {
			return fmt.Errorf("could not create risk note: %w", err)
		}
		ev := models.NewRiskEvent(risk.ID, models.RiskEventNote, risk.Status, risk.Status, actor.UserID, actor.Label(), note)
		if err := s.riskEventRepository.Create(tx, &ev); err != nil {
			return fmt.Errorf("could not create risk event: %w", err)
		}
		s.auditLogService.Log(tx, shared.AuditEntry{
			Actor:       actor,
			Action:      models.AuditActionNote,
			ModelName:   "risk",
			ObjectID:    risk.ID.String(),
			Description: "added a note",
		})
		return nil
	})
	return riskNote, err
}

func (s *riskService) readVisible(actor shared.Actor, riskID uuid.UUID) (models.Risk, error) {
	risk, err := s.riskRepository.Read(riskID)
	if err != nil {
		return models.Risk{}, err
	}
	if !s.scopeResolver.Resolve(actor.UserID).CanViewRisk(risk) {
		return models.Risk{}, shared.NewPermissionDenied("not allowed to view this risk")
	}
	return risk, nil
}

func (s *riskService) Detail(actor shared.Actor, riskID uuid.UUID) (dtos.RiskDetailDTO, error) {
	risk, err := s.readVisible(actor, riskID)
	if err != nil {
		return dtos.RiskDetailDTO{}, err
	}
	events, err := s.riskEventRepository.ListByRisk(riskID)
	if err != nil {
		return dtos.RiskDetailDTO{}, err
	}
	notes, err := s.riskNoteRepository.ListByRisk(riskID)
	if err != nil {
		return dtos.RiskDetailDTO{}, err
	}
	return dtos.RiskDetailDTO{
		RiskDTO: dtos.RiskToDTO(risk),
		Events:  events,
		Notes:   notes,
	}, nil
}

func (s *riskService) Notes(actor shared.Actor, riskID uuid.UUID) ([]models.RiskNote, error) {
	if _, err := s.readVisible(actor, riskID); err != nil {
		return nil, err
	}
	return s.riskNoteRepository.ListByRisk(riskID)
}
