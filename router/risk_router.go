package router

import (
	"github.com/l3montree-dev/ohsms/controllers"
	"github.com/l3montree-dev/ohsms/middlewares"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/labstack/echo/v4"
)

type RiskRouter struct {
	*echo.Group
}

func NewRiskRouter(
	apiV1Router APIV1Router,
	riskController *controllers.RiskController,
	riskTaxonomyController *controllers.RiskTaxonomyController,
	scopeResolver shared.ScopeResolver,
) RiskRouter {
	authenticated := apiV1Router.Group.Group("", middlewares.RequireAuthenticated())

	riskRouter := authenticated.Group("/risks")
	riskRouter.GET("/", riskController.Register)
	riskRouter.POST("/", riskController.Create)
	riskRouter.POST("/from-reference/", riskController.CreateFromReference)

	riskRouter.GET("/:riskID/", riskController.Read)
	riskRouter.PUT("/:riskID/", riskController.UpdateAssessment)
	riskRouter.POST("/:riskID/submit/", riskController.Submit)
	riskRouter.POST("/:riskID/approve/", riskController.Approve)
	riskRouter.POST("/:riskID/reject/", riskController.Reject)
	riskRouter.POST("/:riskID/start/", riskController.Start)
	riskRouter.POST("/:riskID/close/", riskController.Close)
	riskRouter.GET("/:riskID/notes/", riskController.Notes)
	riskRouter.POST("/:riskID/notes/", riskController.AddNote)

	createTaxonomy := middlewares.RequirePermission(scopeResolver, shared.ObjectRiskTaxonomy, shared.ActionCreate)

	authenticated.GET("/risk-categories/", riskTaxonomyController.Categories)
	authenticated.POST("/risk-categories/", riskTaxonomyController.CreateCategory, createTaxonomy)
	authenticated.GET("/risk-categories/:categoryID/sub-categories/", riskTaxonomyController.SubCategories)
	authenticated.POST("/risk-categories/:categoryID/sub-categories/", riskTaxonomyController.CreateSubCategory, createTaxonomy)
	authenticated.GET("/risk-sub-categories/:subCategoryID/causes/", riskTaxonomyController.Causes)
	authenticated.POST("/risk-sub-categories/:subCategoryID/causes/", riskTaxonomyController.CreateCause, createTaxonomy)
	authenticated.GET("/affected-groups/", riskTaxonomyController.AffectedGroups)
	authenticated.POST("/affected-groups/", riskTaxonomyController.CreateAffectedGroup, createTaxonomy)

	authenticated.GET("/risk-references/", riskTaxonomyController.References)
	authenticated.POST("/risk-references/", riskTaxonomyController.CreateReference,
		middlewares.RequirePermission(scopeResolver, shared.ObjectRiskReference, shared.ActionCreate))

	return RiskRouter{Group: riskRouter}
}
