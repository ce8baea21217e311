package services

import (
	"context"
	"math"
	"time"

	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/monitoring"
	"github.com/l3montree-dev/ohsms/shared"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	dashboardRecentDays  = 30
	dashboardTopLimit    = 5
	dashboardLatestLimit = 10
)

type dashboardService struct {
	statisticsRepository shared.StatisticsRepository
	scopeResolver        shared.ScopeResolver
	slaHours             int
	now                  func() time.Time
}

var _ shared.DashboardService = &dashboardService{}

func NewDashboardService(statisticsRepository shared.StatisticsRepository, scopeResolver shared.ScopeResolver) *dashboardService {
	return &dashboardService{
		statisticsRepository: statisticsRepository,
		scopeResolver:        scopeResolver,
		slaHours:             shared.SLAHoursFromEnv(),
		now:                  time.Now,
	}
}

// SLAPercentage is within / total * 100 rounded to two decimals. Without
// incidents it is 0.
func SLAPercentage(within, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(within)/float64(total)*100*100) / 100
}

// collect runs the queries concurrently and records how long the section took.
func collect(ctx context.Context, section string, queries ...func() error) error {
	start := time.Now()
	ctx, span := otel.Tracer("ohsms/services").Start(ctx, "dashboard."+section,
		trace.WithAttributes(attribute.Int("dashboard.queries", len(queries))))
	defer span.End()

	g, ctx := errgroup.WithContext(ctx)
	for _, query := range queries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return query()
		})
	}
	err := g.Wait()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "dashboard query failed")
	}
	monitoring.DashboardBuildDuration.WithLabelValues(section).Observe(time.Since(start).Seconds())
	if err == nil {
		monitoring.DashboardBuildAmount.WithLabelValues(section).Inc()
	}
	return err
}

func (s *dashboardService) filter(actor shared.Actor) (shared.VisibilityFilter, error) {
	if actor.IsAnonymous() {
		return shared.VisibilityFilter{}, shared.NewPermissionDenied("authentication required")
	}
	return s.scopeResolver.Resolve(actor.UserID).VisibilityFilter(), nil
}

func (s *dashboardService) since() time.Time {
	return s.now().AddDate(0, 0, -dashboardRecentDays)
}

func (s *dashboardService) IncidentKPIs(ctx context.Context, actor shared.Actor) (dtos.IncidentKPIs, error) {
	filter, err := s.filter(actor)
	if err != nil {
		return dtos.IncidentKPIs{}, err
	}
	since := s.since()
	kpis := dtos.IncidentKPIs{RecentDays: dashboardRecentDays, SLA: dtos.SLACompliance{ThresholdHours: s.slaHours}}

	err = collect(ctx, "incidents",
		func() (err error) {
			kpis.Total, err = s.statisticsRepository.CountIncidents(filter, nil)
			return err
		},
		func() (err error) {
			kpis.Recent, err = s.statisticsRepository.CountIncidents(filter, &since)
			return err
		},
		func() (err error) {
			kpis.ByStatus, err = s.statisticsRepository.IncidentsByStatus(filter)
			return err
		},
		func() (err error) {
			kpis.ByType, err = s.statisticsRepository.IncidentsByType(filter)
			return err
		},
		func() (err error) {
			kpis.TopBranches, err = s.statisticsRepository.TopIncidentNodes(filter, models.OrgLevelBranch, dashboardTopLimit)
			return err
		},
		func() (err error) {
			kpis.TopDepartments, err = s.statisticsRepository.TopIncidentNodes(filter, models.OrgLevelDepartment, dashboardTopLimit)
			return err
		},
		func() (err error) {
			kpis.TopSections, err = s.statisticsRepository.TopIncidentNodes(filter, models.OrgLevelSection, dashboardTopLimit)
			return err
		},
		func() (err error) {
			kpis.Trend, err = s.statisticsRepository.IncidentTrend(filter, since)
			return err
		},
		func() (err error) {
			kpis.AverageResponseSeconds, err = s.statisticsRepository.AverageIncidentResponseSeconds(filter)
			return err
		},
		func() (err error) {
			kpis.SLA.Within, kpis.SLA.Total, err = s.statisticsRepository.IncidentSLACounts(filter, s.slaHours)
			return err
		},
	)
	if err != nil {
		return dtos.IncidentKPIs{}, err
	}
	kpis.SLA.Percentage = SLAPercentage(kpis.SLA.Within, kpis.SLA.Total)
	return kpis, nil
}

func (s *dashboardService) RiskKPIs(ctx context.Context, actor shared.Actor) (dtos.RiskKPIs, error) {
	filter, err := s.filter(actor)
	if err != nil {
		return dtos.RiskKPIs{}, err
	}
	since := s.since()
	kpis := dtos.RiskKPIs{RecentDays: dashboardRecentDays}

	err = collect(ctx, "risks",
		func() (err error) {
			kpis.Total, err = s.statisticsRepository.CountRisks(filter, nil)
			return err
		},
		func() (err error) {
			kpis.Recent, err = s.statisticsRepository.CountRisks(filter, &since)
			return err
		},
		func() (err error) {
			kpis.ByStatus, err = s.statisticsRepository.RisksByStatus(filter)
			return err
		},
		func() (err error) {
			kpis.ByCategory, err = s.statisticsRepository.RisksByCategory(filter, dashboardTopLimit)
			return err
		},
		func() (err error) {
			kpis.Distribution, err = s.statisticsRepository.RiskDistribution(filter)
			return err
		},
		func() (err error) {
			kpis.Trend, err = s.statisticsRepository.RiskTrend(filter, since)
			return err
		},
	)
	if err != nil {
		return dtos.RiskKPIs{}, err
	}
	kpis.HighCount = kpis.Distribution.High
	return kpis, nil
}

func (s *dashboardService) canSeeForms(actor shared.Actor) bool {
	if actor.IsAnonymous() {
		return false
	}
	scopes := s.scopeResolver.Resolve(actor.UserID)
	return s.scopeResolver.IsPermitted(scopes, shared.ObjectFormTemplate, shared.ActionCreate) ||
		s.scopeResolver.IsPermitted(scopes, shared.ObjectFormTemplate, shared.ActionUpdate)
}

// FormKPIs are not scoped by placement, only form editors get them.
func (s *dashboardService) FormKPIs(ctx context.Context, actor shared.Actor) (dtos.FormKPIs, error) {
	if !s.canSeeForms(actor) {
		return dtos.FormKPIs{}, shared.NewPermissionDenied("not allowed to view form statistics")
	}
	since := s.since()
	kpis := dtos.FormKPIs{RecentDays: dashboardRecentDays}

	err := collect(ctx, "forms",
		func() (err error) {
			kpis.TotalTemplates, err = s.statisticsRepository.CountFormTemplates(false)
			return err
		},
		func() (err error) {
			kpis.ActiveTemplates, err = s.statisticsRepository.CountFormTemplates(true)
			return err
		},
		func() (err error) {
			kpis.TotalSubmissions, err = s.statisticsRepository.CountFormSubmissions(nil)
			return err
		},
		func() (err error) {
			kpis.RecentSubmissions, err = s.statisticsRepository.CountFormSubmissions(&since)
			return err
		},
		func() (err error) {
			kpis.EventsByAction, err = s.statisticsRepository.FormEventsByAction(since)
			return err
		},
		func() (err error) {
			kpis.Latest, err = s.statisticsRepository.LatestFormSubmissions(dashboardLatestLimit)
			return err
		},
	)
	if err != nil {
		return dtos.FormKPIs{}, err
	}
	return kpis, nil
}

func (s *dashboardService) snapshot(ctx context.Context, filter shared.VisibilityFilter) (dtos.SystemSnapshot, error) {
	snapshot := dtos.SystemSnapshot{GeneratedAt: s.now()}
	err := collect(ctx, "snapshot",
		func() (err error) {
			snapshot.IncidentsByStatus, err = s.statisticsRepository.IncidentsByStatus(filter)
			return err
		},
		func() (err error) {
			snapshot.RisksByStatus, err = s.statisticsRepository.RisksByStatus(filter)
			return err
		},
		func() (err error) {
			snapshot.LastIncidentEvent, err = s.statisticsRepository.LastIncidentEventAt(filter)
			return err
		},
	)
	return snapshot, err
}

func (s *dashboardService) Dashboard(ctx context.Context, actor shared.Actor) (dtos.DashboardDTO, error) {
	filter, err := s.filter(actor)
	if err != nil {
		return dtos.DashboardDTO{}, err
	}

	var dashboard dtos.DashboardDTO
	queries := []func() error{
		func() (err error) {
			dashboard.Incidents, err = s.IncidentKPIs(ctx, actor)
			return err
		},
		func() (err error) {
			dashboard.Risks, err = s.RiskKPIs(ctx, actor)
			return err
		},
		func() (err error) {
			dashboard.Snapshot, err = s.snapshot(ctx, filter)
			return err
		},
	}
	if s.canSeeForms(actor) {
		queries = append(queries, func() error {
			forms, err := s.FormKPIs(ctx, actor)
			if err != nil {
				return err
			}
			dashboard.Forms = &forms
			return nil
		})
	}

	if err := collect(ctx, "dashboard", queries...); err != nil {
		return dtos.DashboardDTO{}, err
	}
	return dashboard, nil
}
