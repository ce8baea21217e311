package statemachine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRiskTransition(t *testing.T) {
	t.Run("should walk the happy path", func(t *testing.T) {
		status := models.RiskStatusDraft
		for _, action := range []models.RiskEventAction{models.RiskEventSubmit, models.RiskEventApprove, models.RiskEventStart, models.RiskEventClose} {
			require.NoError(t, ValidateRiskTransition(action, status), string(action))
			next, ok := RiskTransitionTarget(action)
			require.True(t, ok)
			status = next
		}
		assert.Equal(t, models.RiskStatusClosed, status)
	})

	t.Run("should reject approving a draft", func(t *testing.T) {
		err := ValidateRiskTransition(models.RiskEventApprove, models.RiskStatusDraft)

		var transitionErr *shared.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "draft", transitionErr.From)
		assert.Equal(t, "approved", transitionErr.To)
	})

	t.Run("should reject leaving a rejected risk", func(t *testing.T) {
		for _, action := range []models.RiskEventAction{models.RiskEventSubmit, models.RiskEventApprove, models.RiskEventStart, models.RiskEventClose} {
			assert.True(t, shared.IsInvalidTransition(ValidateRiskTransition(action, models.RiskStatusRejected)), string(action))
		}
	})

	t.Run("should treat unknown actions as validation errors", func(t *testing.T) {
		assert.True(t, shared.IsValidationFailed(ValidateRiskTransition(models.RiskEventNote, models.RiskStatusDraft)))
	})
}

func TestRiskTransitionRole(t *testing.T) {
	cases := map[models.RiskEventAction]shared.Role{
		models.RiskEventSubmit:  shared.RoleSafetyCoordinator,
		models.RiskEventApprove: shared.RoleSafetyCommittee,
		models.RiskEventReject:  shared.RoleSafetyCommittee,
		models.RiskEventStart:   shared.RoleDepartmentManager,
		models.RiskEventClose:   shared.RoleDepartmentManager,
	}
	for action, expected := range cases {
		role, ok := RiskTransitionRole(action)
		assert.True(t, ok)
		assert.Equal(t, expected, role, string(action))
	}
}

func TestApplyRiskEvent(t *testing.T) {
	risk := models.Risk{Status: models.RiskStatusSubmitted, Severity: 3, Likelihood: 5, RiskScore: 1}
	ApplyRiskEvent(&risk, models.NewRiskEvent(uuid.New(), models.RiskEventApprove, models.RiskStatusSubmitted, models.RiskStatusApproved, "u", "u", ""))

	assert.Equal(t, models.RiskStatusApproved, risk.Status)
	assert.Equal(t, 15, risk.RiskScore)
	assert.Equal(t, models.RiskLevelHigh, risk.Level())
}
