package router

import (
	"github.com/l3montree-dev/ohsms/controllers"
	"github.com/l3montree-dev/ohsms/middlewares"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/labstack/echo/v4"
)

type OrgRouter struct {
	*echo.Group
}

func NewOrgRouter(
	apiV1Router APIV1Router,
	orgController *controllers.OrgController,
	roleController *controllers.RoleController,
	scopeResolver shared.ScopeResolver,
) OrgRouter {
	orgRouter := apiV1Router.Group.Group("", middlewares.RequireAuthenticated())

	createOrg := middlewares.RequirePermission(scopeResolver, shared.ObjectOrg, shared.ActionCreate)
	orgRouter.GET("/org/", orgController.Tree)
	orgRouter.POST("/branches/", orgController.CreateBranch, createOrg)
	orgRouter.POST("/branches/:branchID/departments/", orgController.CreateDepartment, createOrg)
	orgRouter.POST("/departments/:departmentID/sections/", orgController.CreateSection, createOrg)

	orgRouter.GET("/roles/", roleController.Roles)
	orgRouter.GET("/users/:userID/role-assignments/", roleController.ListForUser)
	orgRouter.POST("/users/:userID/role-assignments/", roleController.Assign,
		middlewares.RequirePermission(scopeResolver, shared.ObjectRoleAssignment, shared.ActionCreate))
	orgRouter.DELETE("/role-assignments/:assignmentID/", roleController.Revoke,
		middlewares.RequirePermission(scopeResolver, shared.ObjectRoleAssignment, shared.ActionDelete))

	return OrgRouter{Group: orgRouter}
}
