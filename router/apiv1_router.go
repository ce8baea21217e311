// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package router

import (
	"github.com/l3montree-dev/ohsms/controllers"
	"github.com/l3montree-dev/ohsms/middlewares"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIV1Router struct {
	*echo.Group
}

// NewAPIV1Router mounts the unauthenticated operational endpoints and
// attaches the session and scope middlewares for everything below.
func NewAPIV1Router(
	srv *echo.Echo,
	identityClient shared.IdentityClient,
	scopeResolver shared.ScopeResolver,
	healthController *controllers.HealthController,
	roleController *controllers.RoleController,
) APIV1Router {
	apiV1Router := srv.Group("/api/v1")

	apiV1Router.GET("/health/", healthController.Health)
	apiV1Router.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))

	sessionRouter := apiV1Router.Group("",
		middlewares.SessionMiddleware(identityClient),
		middlewares.ScopeMiddleware(scopeResolver),
	)
	sessionRouter.GET("/whoami/", roleController.WhoAmI, middlewares.RequireAuthenticated())
	sessionRouter.GET("/info/", healthController.Info, middlewares.RequireGlobal())

	return APIV1Router{
		Group: sessionRouter,
	}
}
