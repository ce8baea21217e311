// Copyright (C) 2023 Tim Bastin, l3montree GmbH
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package services

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/monitoring"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/l3montree-dev/ohsms/statemachine"
)

const secretKeyLength = 32

var errInvalidToken = shared.NewNotFound("invalid token")

type incidentService struct {
	incidentRepository      shared.IncidentRepository
	incidentEventRepository shared.IncidentEventRepository
	riskRepository          shared.RiskRepository
	orgService              shared.OrgService
	scopeResolver           shared.ScopeResolver
	auditLogService         shared.AuditLogService
	now                     func() time.Time
}

var _ shared.IncidentService = &incidentService{}

func NewIncidentService(incidentRepository shared.IncidentRepository, incidentEventRepository shared.IncidentEventRepository, riskRepository shared.RiskRepository, orgService shared.OrgService, scopeResolver shared.ScopeResolver, auditLogService shared.AuditLogService) *incidentService {
	return &incidentService{
		incidentRepository:      incidentRepository,
		incidentEventRepository: incidentEventRepository,
		riskRepository:          riskRepository,
		orgService:              orgService,
		scopeResolver:           scopeResolver,
		auditLogService:         auditLogService,
		now:                     time.Now,
	}
}

// newSecretKey returns 32 hex characters of a random v4 uuid.
func newSecretKey() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return shared.NewFieldValidationFailed(field, "required")
	}
	return nil
}

func (s *incidentService) completePlacement(req dtos.PlacementRequest) (models.OrgPlacement, error) {
	placement, err := s.orgService.NormalizePlacement(req.ToModel())
	if err != nil {
		return placement, err
	}
	if !placement.IsComplete() {
		return placement, shared.NewFieldValidationFailed("sectionId", "branch, department and section are required")
	}
	return placement, nil
}

// create numbers and stores a new open incident together with its create event.
func (s *incidentService) create(tx shared.DB, actor shared.Actor, incident *models.Incident) error {
	err := inTransaction(s.incidentRepository, tx, func(tx shared.DB) error {
		now := s.now()
		seq, err := s.incidentRepository.NextNumber(tx, now.Year())
		if err != nil {
			return err
		}
		incident.Number = fmt.Sprintf("%d-%04d", now.Year(), seq)
		incident.Status = models.IncidentStatusOpen

		if err := s.incidentRepository.Create(tx, shared.GrantWrite(shared.WriteScopeIncident), incident); err != nil {
			return fmt.Errorf("could not create incident: %w", err)
		}

		ev := models.NewIncidentCreatedEvent(incident.ID, actor.IDPtr(), actor.Label())
		if err := s.incidentEventRepository.Create(tx, &ev); err != nil {
			return fmt.Errorf("could not create incident event: %w", err)
		}

		s.auditLogService.Log(tx, shared.AuditEntry{
			Actor:       actor,
			Action:      models.AuditActionCreate,
			ModelName:   "incident",
			ObjectID:    incident.ID.String(),
			Description: fmt.Sprintf("reported %s incident %s", incident.IncidentType, incident.Number),
		})
		return nil
	})
	if err != nil {
		return err
	}
	monitoring.IncidentCreatedAmount.WithLabelValues(string(incident.IncidentType)).Inc()
	return nil
}

func (s *incidentService) CreateNormal(tx shared.DB, actor shared.Actor, req dtos.CreateIncidentRequest) (models.Incident, error) {
	if actor.IsAnonymous() {
		return models.Incident{}, shared.NewPermissionDenied("authentication required to report an incident")
	}
	if err := requireText("title", req.Title); err != nil {
		return models.Incident{}, err
	}
	if err := requireText("description", req.Description); err != nil {
		return models.Incident{}, err
	}
	placement, err := s.completePlacement(req.PlacementRequest)
	if err != nil {
		return models.Incident{}, err
	}

	incident := models.Incident{
		Title:         strings.TrimSpace(req.Title),
		Description:   req.Description,
		IncidentType:  models.IncidentTypeNormal,
		OrgPlacement:  placement,
		CreatedByID:   actor.IDPtr(),
		CreatedByName: actor.Label(),
	}
	if err := s.create(tx, actor, &incident); err != nil {
		return models.Incident{}, err
	}
	return incident, nil
}

func (s *incidentService) CreateUrgent(tx shared.DB, actor shared.Actor, req dtos.CreateUrgentIncidentRequest) (models.Incident, error) {
	if actor.IsAnonymous() {
		return models.Incident{}, shared.NewPermissionDenied("authentication required to relay an urgent incident")
	}
	if !s.scopeResolver.IsPermitted(s.scopeResolver.Resolve(actor.UserID), shared.ObjectIncident, shared.ActionCreateUrgent) {
		return models.Incident{}, shared.NewPermissionDenied("only system staff may relay urgent incidents")
	}
	if err := requireText("title", req.Title); err != nil {
		return models.Incident{}, err
	}
	if err := requireText("description", req.Description); err != nil {
		return models.Incident{}, err
	}
	placement, err := s.completePlacement(req.PlacementRequest)
	if err != nil {
		return models.Incident{}, err
	}

	incident := models.Incident{
		Title:         strings.TrimSpace(req.Title),
		Description:   req.Description,
		IncidentType:  models.IncidentTypeUrgent,
		OrgPlacement:  placement,
		CreatedByID:   actor.IDPtr(),
		CreatedByName: actor.Label(),
		ReporterName:  strings.TrimSpace(req.ReporterName),
		ReporterPhone: strings.TrimSpace(req.ReporterPhone),
	}
	if err := s.create(tx, actor, &incident); err != nil {
		return models.Incident{}, err
	}
	return incident, nil
}

// CreateSecret stores the report without any reporter identity. The returned
// key is the only way to look the incident up again.
func (s *incidentService) CreateSecret(tx shared.DB, req dtos.CreateSecretIncidentRequest) (models.Incident, string, error) {
	if err := requireText("title", req.Title); err != nil {
		return models.Incident{}, "", err
	}
	if err := requireText("description", req.Description); err != nil {
		return models.Incident{}, "", err
	}
	if err := requireText("secretReason", req.SecretReason); err != nil {
		return models.Incident{}, "", err
	}

	secretKey := newSecretKey()
	incident := models.Incident{
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		IncidentType: models.IncidentTypeSecret,
		SecretKey:    &secretKey,
		SecretReason: strings.TrimSpace(req.SecretReason),
	}
	if err := s.create(tx, shared.Actor{}, &incident); err != nil {
		return models.Incident{}, "", err
	}
	return incident, secretKey, nil
}

// mayAct reports whether the actor may touch the incident. Without an action
// reading access is enough. Secret incidents stay with global holders, even
// for their assignee.
func (s *incidentService) mayAct(scopes shared.ActorScopes, incident models.Incident, action *shared.Action) bool {
	if scopes.IsGlobal() {
		return true
	}
	if incident.IncidentType == models.IncidentTypeSecret {
		return false
	}
	if !scopes.CanViewIncident(incident) {
		return false
	}
	if action == nil {
		return true
	}
	if incident.OrgPlacement.IsEmpty() {
		return false
	}
	return s.scopeResolver.IsPermittedAt(scopes, shared.ObjectIncident, *action, incident.OrgPlacement)
}

func (s *incidentService) ChangeStatus(tx shared.DB, actor shared.Actor, incidentID uuid.UUID, newStatus models.IncidentStatus, note string) (models.Incident, models.IncidentEvent, error) {
	if actor.IsAnonymous() {
		return models.Incident{}, models.IncidentEvent{}, shared.NewPermissionDenied("authentication required")
	}
	var incident models.Incident
	var ev models.IncidentEvent
	err := inTransaction(s.incidentRepository, tx, func(tx shared.DB) error {
		var err error
		incident, err = s.incidentRepository.ReadForUpdate(tx, incidentID)
		if err != nil {
			return err
		}
		if !s.mayAct(s.scopeResolver.Resolve(actor.UserID), incident, nil) {
			return shared.NewPermissionDenied("not allowed to change the status of this incident")
		}
		if err := statemachine.ValidateIncidentTransition(incident.Status, newStatus); err != nil {
			return err
		}

		ev = models.NewIncidentStatusEvent(incident.ID, statemachine.IncidentActionFor(newStatus), incident.Status, newStatus, actor.IDPtr(), actor.Label(), note)
		statemachine.ApplyIncidentEvent(&incident, ev, s.now())

		if err := s.incidentRepository.Save(tx, shared.GrantWrite(shared.WriteScopeIncident), &incident); err != nil {
			return fmt.Errorf("could not save incident: %w", err)
		}
		if err := s.incidentEventRepository.Create(tx, &ev); err != nil {
			return fmt.Errorf("could not create incident event: %w", err)
		}
		s.auditLogService.Log(tx, shared.AuditEntry{
			Actor:       actor,
			Action:      models.AuditActionStatusChange,
			ModelName:   "incident",
			ObjectID:    incident.ID.String(),
			Description: fmt.Sprintf("changed status of %s from %s to %s", incident.Number, ev.FromStatus, ev.ToStatus),
		})
		return nil
	})
	if err != nil {
		return models.Incident{}, models.IncidentEvent{}, err
	}
	monitoring.IncidentStatusChangedAmount.WithLabelValues(string(newStatus)).Inc()
	return incident, ev, nil
}

type sideOperation struct {
	action      *shared.Action
	auditAction models.AuditAction
	// build creates the event for the locked incident
	build func(incident models.Incident) (models.IncidentEvent, error)
	// describe is the audit description
	describe func(incident models.Incident) string
}

// runSideOperation records an event without a status change. The incident row
// is locked so concurrent side operations and transitions serialize.
func (s *incidentService) runSideOperation(tx shared.DB, actor shared.Actor, incidentID uuid.UUID, op sideOperation) (models.Incident, models.IncidentEvent, error) {
	if actor.IsAnonymous() {
		return models.Incident{}, models.IncidentEvent{}, shared.NewPermissionDenied("authentication required")
	}

	var incident models.Incident
	var ev models.IncidentEvent
	err := inTransaction(s.incidentRepository, tx, func(tx shared.DB) error {
		var err error
		incident, err = s.incidentRepository.ReadForUpdate(tx, incidentID)
		if err != nil {
			return err
		}
		if !s.mayAct(s.scopeResolver.Resolve(actor.UserID), incident, op.action) {
			return shared.NewPermissionDenied("not allowed to perform this operation on the incident")
		}

		ev, err = op.build(incident)
		if err != nil {
			return err
		}
		statemachine.ApplyIncidentEvent(&incident, ev, s.now())

		if ev.Action != models.IncidentEventNote {
			if err := s.incidentRepository.Save(tx, shared.GrantWrite(shared.WriteScopeIncident), &incident); err != nil {
				return fmt.Errorf("could not save incident: %w", err)
			}
		}
		if err := s.incidentEventRepository.Create(tx, &ev); err != nil {
			return fmt.Errorf("could not create incident event: %w", err)
		}
		s.auditLogService.Log(tx, shared.AuditEntry{
			Actor:       actor,
			Action:      op.auditAction,
			ModelName:   "incident",
			ObjectID:    incident.ID.String(),
			Description: op.describe(incident),
		})
		return nil
	})
	if err != nil {
		return models.Incident{}, models.IncidentEvent{}, err
	}
	return incident, ev, nil
}

func (s *incidentService) AddNote(tx shared.DB, actor shared.Actor, incidentID uuid.UUID, note string) (models.Incident, models.IncidentEvent, error) {
	if err := requireText("note", note); err != nil {
		return models.Incident{}, models.IncidentEvent{}, err
	}
	return s.runSideOperation(tx, actor, incidentID, sideOperation{
		auditAction: models.AuditActionNote,
		build: func(incident models.Incident) (models.IncidentEvent, error) {
			return models.NewIncidentNoteEvent(incident.ID, incident.Status, actor.IDPtr(), actor.Label(), note), nil
		},
		describe: func(incident models.Incident) string {
			return fmt.Sprintf("added a note to %s", incident.Number)
		},
	})
}

func (s *incidentService) Assign(tx shared.DB, actor shared.Actor, incidentID uuid.UUID, assigneeID string, note string) (models.Incident, models.IncidentEvent, error) {
	assigneeID = strings.TrimSpace(assigneeID)
	if assigneeID == "" {
		return models.Incident{}, models.IncidentEvent{}, shared.NewFieldValidationFailed("assigneeId", "required")
	}
	return s.runSideOperation(tx, actor, incidentID, sideOperation{
		action:      shared.Ptr(shared.ActionAssign),
		auditAction: models.AuditActionAssign,
		build: func(incident models.Incident) (models.IncidentEvent, error) {
			return models.NewIncidentAssignedEvent(incident.ID, incident.Status, assigneeID, actor.IDPtr(), actor.Label(), note), nil
		},
		describe: func(incident models.Incident) string {
			return fmt.Sprintf("assigned %s to %s", incident.Number, assigneeID)
		},
	})
}

func (s *incidentService) Escalate(tx shared.DB, actor shared.Actor, incidentID uuid.UUID, note string) (models.Incident, models.IncidentEvent, error) {
	incident, ev, err := s.runSideOperation(tx, actor, incidentID, sideOperation{
		action:      shared.Ptr(shared.ActionEscalate),
		auditAction: models.AuditActionEscalate,
		build: func(incident models.Incident) (models.IncidentEvent, error) {
			if statemachine.IsTerminalIncidentStatus(incident.Status) {
				return models.IncidentEvent{}, shared.NewInvalidTransition(incident.Status, incident.Status)
			}
			return models.NewIncidentEscalatedEvent(incident.ID, incident.Status, actor.IDPtr(), actor.Label(), note), nil
		},
		describe: func(incident models.Incident) string {
			return fmt.Sprintf("escalated %s", incident.Number)
		},
	})
	if err == nil {
		monitoring.IncidentEscalatedAmount.Inc()
	}
	return incident, ev, err
}

func (s *incidentService) LinkRisk(tx shared.DB, actor shared.Actor, incidentID uuid.UUID, riskID uuid.UUID) (models.Incident, models.IncidentEvent, error) {
	if actor.IsAnonymous() {
		return models.Incident{}, models.IncidentEvent{}, shared.NewPermissionDenied("authentication required")
	}
	if _, err := s.riskRepository.Read(riskID); err != nil {
		return models.Incident{}, models.IncidentEvent{}, err
	}
	return s.runSideOperation(tx, actor, incidentID, sideOperation{
		action:      shared.Ptr(shared.ActionLinkRisk),
		auditAction: models.AuditActionUpdate,
		build: func(incident models.Incident) (models.IncidentEvent, error) {
			return models.NewIncidentRiskLinkedEvent(incident.ID, incident.Status, riskID, actor.IDPtr(), actor.Label()), nil
		},
		describe: func(incident models.Incident) string {
			return fmt.Sprintf("linked risk %s to %s", riskID, incident.Number)
		},
	})
}

// TrackSecret answers every kind of bad token with the same error.
func (s *incidentService) TrackSecret(token string) (models.Incident, []models.IncidentEvent, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	if len(token) != secretKeyLength {
		monitoring.SecretTrackingFailedAmount.Inc()
		return models.Incident{}, nil, errInvalidToken
	}
	if _, err := hex.DecodeString(token); err != nil {
		monitoring.SecretTrackingFailedAmount.Inc()
		return models.Incident{}, nil, errInvalidToken
	}

	incident, err := s.incidentRepository.ReadBySecretKey(token)
	if err != nil {
		if !shared.IsNotFound(err) {
			slog.Error("could not look up secret incident", "err", err)
		}
		monitoring.SecretTrackingFailedAmount.Inc()
		return models.Incident{}, nil, errInvalidToken
	}

	events, err := s.incidentEventRepository.ListByIncident(incident.ID)
	if err != nil {
		return models.Incident{}, nil, err
	}
	return incident, events, nil
}

func (s *incidentService) Read(actor shared.Actor, incidentID uuid.UUID) (models.Incident, error) {
	incident, err := s.incidentRepository.Read(incidentID)
	if err != nil {
		return models.Incident{}, err
	}
	if !s.scopeResolver.Resolve(actor.UserID).CanViewIncident(incident) {
		return models.Incident{}, shared.NewPermissionDenied("not allowed to view this incident")
	}
	return incident, nil
}

func (s *incidentService) Timeline(actor shared.Actor, incidentID uuid.UUID) ([]models.IncidentEvent, error) {
	if _, err := s.Read(actor, incidentID); err != nil {
		return nil, err
	}
	return s.incidentEventRepository.ListByIncident(incidentID)
}
