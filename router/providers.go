package router

import "go.uber.org/fx"

var RouterModule = fx.Options(
	fx.Provide(NewAPIV1Router),
	fx.Provide(NewIncidentRouter),
	fx.Provide(NewRiskRouter),
	fx.Provide(NewFormRouter),
	fx.Provide(NewOrgRouter),
	fx.Provide(NewReportingRouter),
)
