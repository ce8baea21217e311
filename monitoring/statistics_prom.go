// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var DashboardBuildAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ohsms_dashboard_build_amount",
	Help: "The total number of dashboard snapshots built, by section",
}, []string{"section"})

var DashboardBuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "ohsms_dashboard_build_duration_seconds",
	Help:    "Duration of dashboard snapshot queries in seconds",
	Buckets: prometheus.DefBuckets,
}, []string{"section"})
