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
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/l3montree-dev/ohsms/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateIncidentTransition(t *testing.T) {
	allowed := []struct {
		from, to models.IncidentStatus
	}{
		{models.IncidentStatusOpen, models.IncidentStatusInProgress},
		{models.IncidentStatusOpen, models.IncidentStatusClosed},
		{models.IncidentStatusInProgress, models.IncidentStatusClosed},
	}
	for _, tc := range allowed {
		t.Run("should allow "+string(tc.from)+" to "+string(tc.to), func(t *testing.T) {
			assert.NoError(t, ValidateIncidentTransition(tc.from, tc.to))
		})
	}

	rejected := []struct {
		from, to models.IncidentStatus
	}{
		{models.IncidentStatusOpen, models.IncidentStatusOpen},
		{models.IncidentStatusInProgress, models.IncidentStatusInProgress},
		{models.IncidentStatusInProgress, models.IncidentStatusOpen},
		{models.IncidentStatusClosed, models.IncidentStatusOpen},
		{models.IncidentStatusClosed, models.IncidentStatusInProgress},
		{models.IncidentStatusClosed, models.IncidentStatusClosed},
		{models.IncidentStatusOpen, "archived"},
	}
	for _, tc := range rejected {
		t.Run("should reject "+string(tc.from)+" to "+string(tc.to), func(t *testing.T) {
			err := ValidateIncidentTransition(tc.from, tc.to)
			require.Error(t, err)

			var transitionErr *shared.InvalidTransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, string(tc.from), transitionErr.From)
			assert.Equal(t, string(tc.to), transitionErr.To)
		})
	}
}

func TestIncidentActionFor(t *testing.T) {
	assert.Equal(t, models.IncidentEventProgress, IncidentActionFor(models.IncidentStatusInProgress))
	assert.Equal(t, models.IncidentEventClose, IncidentActionFor(models.IncidentStatusClosed))
}

func TestApplyIncidentEvent(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("should stamp handled at only on the first progress", func(t *testing.T) {
		incident := models.Incident{Status: models.IncidentStatusOpen}
		ev := models.NewIncidentStatusEvent(uuid.New(), models.IncidentEventProgress, models.IncidentStatusOpen, models.IncidentStatusInProgress, nil, "staff", "")

		ApplyIncidentEvent(&incident, ev, now)
		assert.Equal(t, models.IncidentStatusInProgress, incident.Status)
		require.NotNil(t, incident.HandledAt)
		assert.Equal(t, now, *incident.HandledAt)

		ApplyIncidentEvent(&incident, ev, now.Add(time.Hour))
		assert.Equal(t, now, *incident.HandledAt)
	})

	t.Run("should not stamp handled at when closing directly", func(t *testing.T) {
		incident := models.Incident{Status: models.IncidentStatusOpen}
		ev := models.NewIncidentStatusEvent(uuid.New(), models.IncidentEventClose, models.IncidentStatusOpen, models.IncidentStatusClosed, nil, "staff", "")

		ApplyIncidentEvent(&incident, ev, now)
		assert.Equal(t, models.IncidentStatusClosed, incident.Status)
		assert.Nil(t, incident.HandledAt)
	})

	t.Run("should set the assignee from the event data", func(t *testing.T) {
		incident := models.Incident{Status: models.IncidentStatusOpen}
		ev := models.NewIncidentAssignedEvent(uuid.New(), incident.Status, "user-2", utils.Ptr("user-1"), "manager", "")

		ApplyIncidentEvent(&incident, ev, now)
		require.NotNil(t, incident.AssignedToID)
		assert.Equal(t, "user-2", *incident.AssignedToID)
		assert.Equal(t, models.IncidentStatusOpen, incident.Status)
	})

	t.Run("should keep the first escalation time", func(t *testing.T) {
		first := now.Add(-time.Hour)
		incident := models.Incident{Status: models.IncidentStatusInProgress, EscalatedAt: &first}
		ev := models.NewIncidentEscalatedEvent(uuid.New(), incident.Status, nil, "committee", "")

		ApplyIncidentEvent(&incident, ev, now)
		assert.Equal(t, first, *incident.EscalatedAt)
	})

	t.Run("should link the risk", func(t *testing.T) {
		riskID := uuid.New()
		incident := models.Incident{Status: models.IncidentStatusOpen}
		ev := models.NewIncidentRiskLinkedEvent(uuid.New(), incident.Status, riskID, nil, "coordinator")

		ApplyIncidentEvent(&incident, ev, now)
		require.NotNil(t, incident.RiskID)
		assert.Equal(t, riskID, *incident.RiskID)
		assert.Equal(t, incident.Status, ev.FromStatus)
		assert.Equal(t, incident.Status, ev.ToStatus)
	})

	t.Run("should leave the incident untouched for a note", func(t *testing.T) {
		incident := models.Incident{Status: models.IncidentStatusInProgress}
		before := incident
		ApplyIncidentEvent(&incident, models.NewIncidentNoteEvent(uuid.New(), incident.Status, nil, "x", "hello"), now)
		assert.Equal(t, before, incident)
	})
}
