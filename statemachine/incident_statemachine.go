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


package statemachine

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/shared"
)

var incidentTransitions = map[models.IncidentStatus][]models.IncidentStatus{
	models.IncidentStatusOpen:       {models.IncidentStatusInProgress, models.IncidentStatusClosed},
	models.IncidentStatusInProgress: {models.IncidentStatusClosed},
	models.IncidentStatusClosed:     {},
}

func IsTerminalIncidentStatus(s models.IncidentStatus) bool {
	return s == models.IncidentStatusClosed
}

// ValidateIncidentTransition fails with an InvalidTransitionError when to
// equals from or is not reachable from it.
func ValidateIncidentTransition(from, to models.IncidentStatus) error {
	for _, allowed := range incidentTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return shared.NewInvalidTransition(from, to)
}

// IncidentActionFor maps a target status to the event action which records it.
func IncidentActionFor(to models.IncidentStatus) models.IncidentEventAction {
	if to == models.IncidentStatusClosed {
		return models.IncidentEventClose
	}
	return models.IncidentEventProgress
}

// ApplyIncidentEvent projects an event onto the incident. Events are only
// created after validation, applying never fails.
func ApplyIncidentEvent(incident *models.Incident, event models.IncidentEvent, now time.Time) {
	switch event.Action {
	case models.IncidentEventCreate:
		incident.Status = models.IncidentStatusOpen
	case models.IncidentEventProgress:
		incident.Status = event.ToStatus
		if incident.HandledAt == nil {
			incident.HandledAt = &now
		}
	case models.IncidentEventClose:
		incident.Status = event.ToStatus
	case models.IncidentEventAssign:
		assigneeID, ok := event.GetArbitraryJSONData()["assigneeId"].(string)
		if !ok || assigneeID == "" {
			slog.Error("could not parse assignee", "incidentID", event.IncidentID)
			return
		}
		incident.AssignedToID = &assigneeID
	case models.IncidentEventEscalate:
		if incident.EscalatedAt == nil {
			incident.EscalatedAt = &now
		}
	case models.IncidentEventLinkRisk:
		raw, ok := event.GetArbitraryJSONData()["riskId"].(string)
		if !ok {
			slog.Error("could not parse risk id", "incidentID", event.IncidentID)
			return
		}
		riskID, err := uuid.Parse(raw)
		if err != nil {
			slog.Error("invalid risk id in event", "incidentID", event.IncidentID, "err", err)
			return
		}
		incident.RiskID = &riskID
	case models.IncidentEventNote:
		// notes do not touch the incident
	}
}
