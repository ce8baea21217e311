// Copyright 2026 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RiskCreatedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "ohsms_risk_created_amount",
	Help: "The total number of risks created",
})

var RiskTransitionAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ohsms_risk_transition_amount",
	Help: "The total number of risk lifecycle transitions, by action",
}, []string{"action"})

var FormSubmissionAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "ohsms_form_submission_amount",
	Help: "The total number of form submissions",
})

var AuditWriteFailedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "ohsms_audit_write_failed_amount",
	Help: "The total number of audit rows which could not be written",
})
