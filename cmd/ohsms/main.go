// Copyright (C) 2023 Tim Bastin, l3montree GmbH
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/ohsms/accesscontrol"
	"github.com/l3montree-dev/ohsms/config"
	"github.com/l3montree-dev/ohsms/controllers"
	"github.com/l3montree-dev/ohsms/database"
	"github.com/l3montree-dev/ohsms/database/repositories"
	"github.com/l3montree-dev/ohsms/middlewares"
	"github.com/l3montree-dev/ohsms/monitoring"
	"github.com/l3montree-dev/ohsms/router"
	"github.com/l3montree-dev/ohsms/services"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	shutdownTracing, err := monitoring.InitTracing(context.Background(), "ohsms", config.Version)
	if err != nil {
		slog.Error("could not initialize tracing", "err", err)
		panic(err)
	}

	pool := database.NewPgxConnPool(database.GetPoolConfigFromEnv())
	db := database.NewGormDB(pool)

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("Failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(db, pool),
		fx.Provide(func(pool *pgxpool.Pool) (shared.PubSubBroker, error) {
			return database.NewPostgreSQLBroker(pool)
		}),
		fx.Provide(middlewares.Server),
		repositories.Module,
		services.Module,
		controllers.ControllerModule,
		accesscontrol.AccessControlModule,
		router.RouterModule,

		fx.Invoke(bootstrap),

		// we need to invoke all routers to register their routes
		fx.Invoke(func(router.IncidentRouter) {}),
		fx.Invoke(func(router.RiskRouter) {}),
		fx.Invoke(func(router.FormRouter) {}),
		fx.Invoke(func(router.OrgRouter) {}),
		fx.Invoke(func(router.ReportingRouter) {}),
		fx.Invoke(func(lc fx.Lifecycle, server *echo.Echo) {
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					go func() {
						if err := server.Start(listenAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
							slog.Error("server stopped", "err", err)
						}
					}()
					return nil
				},
				OnStop: func(ctx context.Context) error {
					if err := server.Shutdown(ctx); err != nil {
						return err
					}
					pool.Close()
					return shutdownTracing(ctx)
				},
			})
		}),
	).Run()
}

// bootstrap makes sure the permission matrix and the role catalogue exist
// before the first request is served.
func bootstrap(rbacProvider shared.RBACProvider, roleAssignmentService shared.RoleAssignmentService) error {
	if err := shared.BootstrapPermissions(rbacProvider.GetDomainRBAC(accesscontrol.DefaultDomain)); err != nil {
		return err
	}
	return roleAssignmentService.SeedRoles()
}

func listenAddr() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return ":" + port
}

func initSentry() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         os.Getenv("ERROR_TRACKING_DSN"),
		Environment: environment,
		Release:     config.Version,

		// In debug mode, the debug information is printed to stdout to help you
		// understand what Sentry is doing.
		Debug: environment == "dev",

		AttachStacktrace: true,
		SendDefaultPII:   false,
	})
	if err != nil {
		slog.Error("Failed to init logger", "err", err)
	}
}
