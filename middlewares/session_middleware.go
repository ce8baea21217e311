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

package middlewares

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/l3montree-dev/ohsms/accesscontrol"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/labstack/echo/v4"
)

const sessionCookieName = "ory_kratos_session"

func getCookie(name string, cookies []*http.Cookie) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func cookieAuth(ctx context.Context, identityClient shared.IdentityClient, oryKratosSessionCookie string) (shared.AuthSession, error) {
	unescaped, err := url.QueryUnescape(oryKratosSessionCookie)
	if err != nil {
		return nil, err
	}

	identity, err := identityClient.GetIdentityFromCookie(ctx, unescaped)
	if err != nil {
		return nil, err
	}

	return accesscontrol.NewSession(identity.Id, accesscontrol.DisplayNameFromIdentity(identity)), nil
}

// SessionMiddleware always sets a session. Requests without a valid kratos
// cookie get the anonymous one, handlers decide whether that is enough.
func SessionMiddleware(identityClient shared.IdentityClient) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			oryKratosSessionCookie := getCookie(sessionCookieName, ctx.Cookies())
			if oryKratosSessionCookie == nil {
				shared.SetSession(ctx, accesscontrol.NoSession)
				return next(ctx)
			}

			session, err := cookieAuth(ctx.Request().Context(), identityClient, oryKratosSessionCookie.String())
			if err != nil {
				slog.Warn("could not get identity from cookie", "err", err)
				shared.SetSession(ctx, accesscontrol.NoSession)
				return next(ctx)
			}
			shared.SetSession(ctx, session)
			return next(ctx)
		}
	}
}

// ScopeMiddleware resolves the role assignments of the session user once per
// request.
func ScopeMiddleware(scopeResolver shared.ScopeResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			shared.SetScopes(ctx, scopeResolver.Resolve(shared.GetActor(ctx).UserID))
			return next(ctx)
		}
	}
}
