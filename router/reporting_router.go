package router

import (
	"github.com/l3montree-dev/ohsms/controllers"
	"github.com/l3montree-dev/ohsms/middlewares"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/labstack/echo/v4"
)

type ReportingRouter struct {
	*echo.Group
}

func NewReportingRouter(
	apiV1Router APIV1Router,
	dashboardController *controllers.DashboardController,
	systemContentController *controllers.SystemContentController,
	scopeResolver shared.ScopeResolver,
) ReportingRouter {
	dashboardRouter := apiV1Router.Group.Group("/dashboard", middlewares.RequireAuthenticated())
	dashboardRouter.GET("/", dashboardController.Overview)
	dashboardRouter.GET("/incidents/", dashboardController.Incidents)
	dashboardRouter.GET("/risks/", dashboardController.Risks)
	dashboardRouter.GET("/forms/", dashboardController.Forms)

	apiV1Router.Group.GET("/audit-logs/", systemContentController.AuditLog, middlewares.RequireGlobal())

	apiV1Router.Group.GET("/content/:contentType/", systemContentController.Read)
	apiV1Router.Group.PUT("/content/:contentType/", systemContentController.Upsert,
		middlewares.RequirePermission(scopeResolver, shared.ObjectSystemContent, shared.ActionUpdate))

	return ReportingRouter{Group: dashboardRouter}
}
