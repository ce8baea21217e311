package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/mocks"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSLAPercentage(t *testing.T) {
	t.Run("should return zero without handled incidents", func(t *testing.T) {
		assert.Equal(t, 0.0, SLAPercentage(0, 0))
	})
	t.Run("should round to two decimals", func(t *testing.T) {
		assert.Equal(t, 66.67, SLAPercentage(2, 3))
		assert.Equal(t, 100.0, SLAPercentage(4, 4))
		assert.Equal(t, 14.29, SLAPercentage(1, 7))
	})
}

func TestIncidentKPIs(t *testing.T) {
	t.Run("should deny anonymous callers", func(t *testing.T) {
		s := NewDashboardService(mocks.NewStatisticsRepository(t), mocks.NewScopeResolver(t))

		_, err := s.IncidentKPIs(context.Background(), shared.Actor{})
		assert.True(t, shared.IsPermissionDenied(err))
	})

	t.Run("should scope the queries and compute the sla compliance", func(t *testing.T) {
		statisticsRepository := mocks.NewStatisticsRepository(t)
		scopeResolver := mocks.NewScopeResolver(t)
		s := NewDashboardService(statisticsRepository, scopeResolver)
		s.slaHours = 24
		s.now = func() time.Time { return time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC) }

		placement := completePlacement()
		scopes := pinnedScopes("manager", "manager", placement.Truncate(models.OrgLevelDepartment))
		scopeResolver.On("Resolve", "manager").Return(scopes)
		filter := scopes.VisibilityFilter()
		since := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)

		statisticsRepository.On("CountIncidents", filter, (*time.Time)(nil)).Return(int64(12), nil)
		statisticsRepository.On("CountIncidents", filter, &since).Return(int64(4), nil)
		statisticsRepository.On("IncidentsByStatus", filter).Return([]dtos.CountByKey{}, nil)
		statisticsRepository.On("IncidentsByType", filter).Return([]dtos.CountByKey{}, nil)
		statisticsRepository.On("TopIncidentNodes", filter, mock.Anything, 5).Return([]dtos.CountByKey{}, nil)
		statisticsRepository.On("IncidentTrend", filter, since).Return([]dtos.CountByDay{}, nil)
		statisticsRepository.On("AverageIncidentResponseSeconds", filter).Return(shared.Ptr(3600.0), nil)
		statisticsRepository.On("IncidentSLACounts", filter, 24).Return(int64(9), int64(10), nil)

		kpis, err := s.IncidentKPIs(context.Background(), shared.Actor{UserID: "manager"})
		assert.NoError(t, err)
		assert.Equal(t, int64(12), kpis.Total)
		assert.Equal(t, int64(4), kpis.Recent)
		assert.Equal(t, 30, kpis.RecentDays)
		assert.Equal(t, 90.0, kpis.SLA.Percentage)
		assert.Equal(t, 24, kpis.SLA.ThresholdHours)
		assert.Equal(t, 3600.0, *kpis.AverageResponseSeconds)
	})

	t.Run("should return the error of a failing query", func(t *testing.T) {
		statisticsRepository := mocks.NewStatisticsRepository(t)
		scopeResolver := mocks.NewScopeResolver(t)
		s := NewDashboardService(statisticsRepository, scopeResolver)
		scopeResolver.On("Resolve", "admin").Return(globalScopes("admin"))

		statisticsRepository.On("CountIncidents", mock.Anything, mock.Anything).Return(int64(0), fmt.Errorf("connection refused")).Maybe()
		statisticsRepository.On("IncidentsByStatus", mock.Anything).Return(nil, nil).Maybe()
		statisticsRepository.On("IncidentsByType", mock.Anything).Return(nil, nil).Maybe()
		statisticsRepository.On("TopIncidentNodes", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()
		statisticsRepository.On("IncidentTrend", mock.Anything, mock.Anything).Return(nil, nil).Maybe()
		statisticsRepository.On("AverageIncidentResponseSeconds", mock.Anything).Return(nil, nil).Maybe()
		statisticsRepository.On("IncidentSLACounts", mock.Anything, mock.Anything).Return(int64(0), int64(0), nil).Maybe()

		_, err := s.IncidentKPIs(context.Background(), shared.Actor{UserID: "admin"})
		assert.Error(t, err)
	})
}

func TestFormKPIs(t *testing.T) {
	t.Run("should only be available to form editors", func(t *testing.T) {
		scopeResolver := mocks.NewScopeResolver(t)
		s := NewDashboardService(mocks.NewStatisticsRepository(t), scopeResolver)
		scopes := shared.ActorScopes{UserID: "employee"}
		scopeResolver.On("Resolve", "employee").Return(scopes)
		scopeResolver.On("IsPermitted", scopes, shared.ObjectFormTemplate, mock.Anything).Return(false)

		_, err := s.FormKPIs(context.Background(), shared.Actor{UserID: "employee"})
		assert.True(t, shared.IsPermissionDenied(err))
	})
}
