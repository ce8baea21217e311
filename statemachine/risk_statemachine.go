package statemachine

import (
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/shared"
)

type riskTransition struct {
	from models.RiskStatus
	to   models.RiskStatus
	// the role which may run the transition inside its scope
	role shared.Role
	// the permission matrix entry behind it
	object shared.Object
	action shared.Action
}

var riskTransitions = map[models.RiskEventAction]riskTransition{
	models.RiskEventSubmit: {
		from: models.RiskStatusDraft, to: models.RiskStatusSubmitted,
		role: shared.RoleSafetyCoordinator, object: shared.ObjectRisk, action: shared.ActionSubmit,
	},
	models.RiskEventApprove: {
		from: models.RiskStatusSubmitted, to: models.RiskStatusApproved,
		role: shared.RoleSafetyCommittee, object: shared.ObjectRisk, action: shared.ActionApprove,
	},
	models.RiskEventReject: {
		from: models.RiskStatusSubmitted, to: models.RiskStatusRejected,
		role: shared.RoleSafetyCommittee, object: shared.ObjectRisk, action: shared.ActionReject,
	},
	models.RiskEventStart: {
		from: models.RiskStatusApproved, to: models.RiskStatusInProgress,
		role: shared.RoleDepartmentManager, object: shared.ObjectRisk, action: shared.ActionStart,
	},
	models.RiskEventClose: {
		from: models.RiskStatusInProgress, to: models.RiskStatusClosed,
		role: shared.RoleDepartmentManager, object: shared.ObjectRisk, action: shared.ActionClose,
	},
}

// RiskTransitionTarget returns the status a lifecycle action leads to.
func RiskTransitionTarget(action models.RiskEventAction) (models.RiskStatus, bool) {
	t, ok := riskTransitions[action]
	return t.to, ok
}

// RiskTransitionRole returns the role code which owns a lifecycle action.
func RiskTransitionRole(action models.RiskEventAction) (shared.Role, bool) {
	t, ok := riskTransitions[action]
	return t.role, ok
}

// RiskTransitionPermission returns the (object, action) pair in the permission
// matrix which guards a lifecycle action.
func RiskTransitionPermission(action models.RiskEventAction) (shared.Object, shared.Action, bool) {
	t, ok := riskTransitions[action]
	return t.object, t.action, ok
}

// ValidateRiskTransition checks that action may run on a risk in status from.
func ValidateRiskTransition(action models.RiskEventAction, from models.RiskStatus) error {
	t, ok := riskTransitions[action]
	if !ok {
		return shared.NewValidationFailed("unknown risk action " + string(action))
	}
	if t.from != from {
		return shared.NewInvalidTransition(from, t.to)
	}
	return nil
}

// ApplyRiskEvent projects an event onto the risk.
func ApplyRiskEvent(risk *models.Risk, event models.RiskEvent) {
	switch event.Action {
	case models.RiskEventCreate:
		risk.Status = models.RiskStatusDraft
	case models.RiskEventSubmit, models.RiskEventApprove, models.RiskEventReject, models.RiskEventStart, models.RiskEventClose:
		risk.Status = event.ToStatus
	}
	risk.RecalculateScore()
}
