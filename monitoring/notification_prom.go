// Copyright 2026 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var NotificationSentAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "ohsms_notification_sent_amount",
	Help: "The total number of escalation emails sent",
})

var NotificationFailedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "ohsms_notification_failed_amount",
	Help: "The total number of escalation emails which could not be sent",
})

var IncidentBroadcastFailedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "ohsms_incident_broadcast_failed_amount",
	Help: "The total number of incident changes which could not be published",
})
