package router

import (
	"github.com/l3montree-dev/ohsms/controllers"
	"github.com/l3montree-dev/ohsms/middlewares"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/labstack/echo/v4"
)

type IncidentRouter struct {
	*echo.Group
}

func NewIncidentRouter(
	apiV1Router APIV1Router,
	incidentController *controllers.IncidentController,
	incidentService shared.IncidentService,
) IncidentRouter {
	incidentRouter := apiV1Router.Group.Group("/incidents")

	// anonymous intake and tracking
	anonymous := incidentRouter.Group("", middlewares.AnonymousRateLimit())
	anonymous.POST("/secret/", incidentController.CreateSecret)
	anonymous.POST("/track/", incidentController.Track)

	authenticated := incidentRouter.Group("", middlewares.RequireAuthenticated())
	authenticated.GET("/", incidentController.List)
	authenticated.POST("/", incidentController.Create)
	authenticated.POST("/urgent/", incidentController.CreateUrgent)

	incidentScoped := authenticated.Group("/:incidentID", middlewares.IncidentMiddleware(incidentService))
	incidentScoped.GET("/", incidentController.Read)
	incidentScoped.GET("/events/", incidentController.Timeline)
	incidentScoped.POST("/status/", incidentController.ChangeStatus)
	incidentScoped.POST("/notes/", incidentController.AddNote)
	incidentScoped.POST("/assign/", incidentController.Assign)
	incidentScoped.POST("/escalate/", incidentController.Escalate)
	incidentScoped.POST("/link-risk/", incidentController.LinkRisk)

	return IncidentRouter{Group: incidentRouter}
}
