package router

import (
	"github.com/l3montree-dev/ohsms/controllers"
	"github.com/l3montree-dev/ohsms/middlewares"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/labstack/echo/v4"
)

type FormRouter struct {
	*echo.Group
}

// NewFormRouter keeps reading and submitting open to anonymous callers. The
// service decides per template whether the caller may fill it.
func NewFormRouter(
	apiV1Router APIV1Router,
	formController *controllers.FormController,
	formService shared.FormService,
) FormRouter {
	formRouter := apiV1Router.Group.Group("/forms")
	formRouter.GET("/", formController.List)
	formRouter.POST("/", formController.Create, middlewares.RequireAuthenticated())

	formScoped := formRouter.Group("/:formID", middlewares.FormTemplateMiddleware(formService))
	formScoped.GET("/", formController.Read)
	formScoped.POST("/submissions/", formController.Submit)

	editor := formScoped.Group("", middlewares.RequireAuthenticated())
	editor.GET("/submissions/", formController.Submissions)
	editor.POST("/fields/", formController.AddField)
	editor.POST("/risk-references/", formController.AttachRiskReferences)
	editor.POST("/active/", formController.SetActive)

	return FormRouter{Group: formRouter}
}
