package services

import (
	"github.com/l3montree-dev/ohsms/shared"
	"go.uber.org/fx"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewAuditLogService, fx.As(new(shared.AuditLogService)))),
	fx.Provide(fx.Annotate(NewOrgService, fx.As(new(shared.OrgService)))),
	fx.Provide(fx.Annotate(NewRoleAssignmentService, fx.As(new(shared.RoleAssignmentService)))),
	fx.Provide(fx.Annotate(NewIncidentService, fx.As(new(shared.IncidentService)))),
	fx.Provide(fx.Annotate(NewVisibilityService, fx.As(new(shared.VisibilityService)))),
	fx.Provide(fx.Annotate(NewRiskService, fx.As(new(shared.RiskService)))),
	fx.Provide(fx.Annotate(NewRiskTaxonomyService, fx.As(new(shared.RiskTaxonomyService)))),
	fx.Provide(fx.Annotate(NewRiskReferenceService, fx.As(new(shared.RiskReferenceService)))),
	fx.Provide(fx.Annotate(NewFormService, fx.As(new(shared.FormService)))),
	fx.Provide(fx.Annotate(NewDashboardService, fx.As(new(shared.DashboardService)))),
	fx.Provide(fx.Annotate(NewSystemContentService, fx.As(new(shared.SystemContentService)))),
	fx.Provide(fx.Annotate(NewEscalationNotifier, fx.As(new(shared.EscalationNotifier)))),
	fx.Provide(fx.Annotate(NewIncidentChangeBroadcaster, fx.As(new(shared.IncidentChangeBroadcaster)))),
)
