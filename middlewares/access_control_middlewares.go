// Copyright (C) 2025 l3montree GmbH
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

package middlewares

import (
	"log/slog"

	"github.com/l3montree-dev/ohsms/shared"
	"github.com/labstack/echo/v4"
)

// RequireAuthenticated rejects the anonymous session. Must run after the
// session middleware.
func RequireAuthenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if shared.GetActor(ctx).IsAnonymous() {
				return shared.NewPermissionDenied("authentication required")
			}
			return next(ctx)
		}
	}
}

// RequirePermission checks the permission matrix without a placement. Handlers
// which work on a single entity do the scoped check themselves.
func RequirePermission(scopeResolver shared.ScopeResolver, obj shared.Object, act shared.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			scopes := shared.GetScopes(ctx)
			if !scopes.IsAuthenticated() {
				return shared.NewPermissionDenied("authentication required")
			}
			if !scopeResolver.IsPermitted(scopes, obj, act) {
				slog.Warn("access denied", "user", scopes.UserID, "object", obj, "action", act)
				return shared.NewPermissionDenied("not allowed to " + string(act) + " " + string(obj))
			}
			return next(ctx)
		}
	}
}

// RequireGlobal lets only holders of a global role through.
func RequireGlobal() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			scopes := shared.GetScopes(ctx)
			if !scopes.IsGlobal() {
				slog.Warn("access denied, global role required", "user", scopes.UserID)
				return shared.NewPermissionDenied("global role required")
			}
			return next(ctx)
		}
	}
}
