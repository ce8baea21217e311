// Copyright 2026 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var IncidentCreatedAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ohsms_incident_created_amount",
	Help: "The total number of incidents created, by intake channel",
}, []string{"type"})

var IncidentStatusChangedAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ohsms_incident_status_changed_amount",
	Help: "The total number of incident status changes, by target status",
}, []string{"status"})

var IncidentEscalatedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "ohsms_incident_escalated_amount",
	Help: "The total number of escalated incidents",
})

var SecretTrackingFailedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "ohsms_secret_tracking_failed_amount",
	Help: "The total number of secret incident lookups with an invalid token",
})
