package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/accesscontrol"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/mocks"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/labstack/echo/v4"
	"github.com/ory/client-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSessionMiddleware(t *testing.T) {
	t.Run("should continue anonymously without a session cookie", func(t *testing.T) {
		ctx, _ := newTestContext(httptest.NewRequest(http.MethodGet, "/", nil))
		identityClient := mocks.NewIdentityClient(t)

		var called bool
		err := SessionMiddleware(identityClient)(func(ctx echo.Context) error {
			called = true
			assert.True(t, shared.GetActor(ctx).IsAnonymous())
			return nil
		})(ctx)

		assert.NoError(t, err)
		assert.True(t, called)
		identityClient.AssertNotCalled(t, "GetIdentityFromCookie", mock.Anything, mock.Anything)
	})

	t.Run("should set the session of a valid cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "abc"})
		ctx, _ := newTestContext(req)

		identityClient := mocks.NewIdentityClient(t)
		identityClient.On("GetIdentityFromCookie", mock.Anything, "ory_kratos_session=abc").Return(client.Identity{
			Id:     "user-1",
			Traits: map[string]any{"name": map[string]any{"first": "Jane", "last": "Doe"}},
		}, nil)

		err := SessionMiddleware(identityClient)(func(ctx echo.Context) error {
			actor := shared.GetActor(ctx)
			assert.Equal(t, "user-1", actor.UserID)
			assert.Equal(t, "Jane Doe", actor.DisplayName)
			return nil
		})(ctx)
		assert.NoError(t, err)
	})

	t.Run("should fall back to the anonymous actor if the cookie is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "expired"})
		ctx, _ := newTestContext(req)

		identityClient := mocks.NewIdentityClient(t)
		identityClient.On("GetIdentityFromCookie", mock.Anything, mock.Anything).Return(client.Identity{}, fmt.Errorf("401 Unauthorized"))

		var called bool
		err := SessionMiddleware(identityClient)(func(ctx echo.Context) error {
			called = true
			assert.True(t, shared.GetActor(ctx).IsAnonymous())
			return nil
		})(ctx)
		assert.NoError(t, err)
		assert.True(t, called)
	})
}

func TestScopeMiddleware(t *testing.T) {
	t.Run("should resolve the scopes of the actor", func(t *testing.T) {
		ctx, _ := newTestContext(httptest.NewRequest(http.MethodGet, "/", nil))
		shared.SetSession(ctx, accesscontrol.NewSession("user-1", "Jane Doe"))

		scopes := shared.ActorScopes{UserID: "user-1", Assignments: []models.UserRoleAssignment{{UserID: "user-1", Role: models.Role{Code: shared.RoleSafetyCoordinator}}}}
		scopeResolver := mocks.NewScopeResolver(t)
		scopeResolver.On("Resolve", "user-1").Return(scopes)

		err := ScopeMiddleware(scopeResolver)(func(ctx echo.Context) error {
			assert.Equal(t, scopes, shared.GetScopes(ctx))
			return nil
		})(ctx)
		assert.NoError(t, err)
	})
}

func TestRequirePermission(t *testing.T) {
	next := func(ctx echo.Context) error {
		return ctx.NoContent(http.StatusOK)
	}

	t.Run("should deny requests without scopes", func(t *testing.T) {
		ctx, _ := newTestContext(httptest.NewRequest(http.MethodPost, "/", nil))
		scopeResolver := mocks.NewScopeResolver(t)

		err := RequirePermission(scopeResolver, shared.ObjectRisk, shared.ActionApprove)(next)(ctx)
		assert.True(t, shared.IsPermissionDenied(err))
	})

	t.Run("should deny if the role grants nothing", func(t *testing.T) {
		ctx, _ := newTestContext(httptest.NewRequest(http.MethodPost, "/", nil))
		scopes := shared.ActorScopes{UserID: "user-1"}
		shared.SetScopes(ctx, scopes)
		scopeResolver := mocks.NewScopeResolver(t)
		scopeResolver.On("IsPermitted", scopes, shared.ObjectRisk, shared.ActionApprove).Return(false)

		err := RequirePermission(scopeResolver, shared.ObjectRisk, shared.ActionApprove)(next)(ctx)
		assert.True(t, shared.IsPermissionDenied(err))
	})

	t.Run("should call the next handler if permitted", func(t *testing.T) {
		ctx, rec := newTestContext(httptest.NewRequest(http.MethodPost, "/", nil))
		scopes := shared.ActorScopes{UserID: "user-1"}
		shared.SetScopes(ctx, scopes)
		scopeResolver := mocks.NewScopeResolver(t)
		scopeResolver.On("IsPermitted", scopes, shared.ObjectRisk, shared.ActionApprove).Return(true)

		err := RequirePermission(scopeResolver, shared.ObjectRisk, shared.ActionApprove)(next)(ctx)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireGlobal(t *testing.T) {
	next := func(ctx echo.Context) error {
		return ctx.NoContent(http.StatusOK)
	}

	t.Run("should deny pinned roles", func(t *testing.T) {
		ctx, _ := newTestContext(httptest.NewRequest(http.MethodGet, "/", nil))
		sectionID := uuid.New()
		shared.SetScopes(ctx, shared.ActorScopes{UserID: "user-1", Assignments: []models.UserRoleAssignment{{
			Role:         models.Role{Code: shared.RoleSectionManager},
			OrgPlacement: models.OrgPlacement{SectionID: &sectionID},
		}}})

		assert.True(t, shared.IsPermissionDenied(RequireGlobal()(next)(ctx)))
	})

	t.Run("should let global roles pass", func(t *testing.T) {
		ctx, rec := newTestContext(httptest.NewRequest(http.MethodGet, "/", nil))
		shared.SetScopes(ctx, shared.ActorScopes{UserID: "admin", Assignments: []models.UserRoleAssignment{{
			Role: models.Role{Code: shared.RoleSystemAdmin, IsGlobal: true},
		}}})

		assert.NoError(t, RequireGlobal()(next)(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestErrorResponse(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{shared.NewFieldValidationFailed("title", "must not be empty"), http.StatusBadRequest},
		{shared.NewPermissionDenied("nope"), http.StatusForbidden},
		{shared.NewInvalidTransition("closed", "in_progress"), http.StatusConflict},
		{fmt.Errorf("could not read incident: %w", shared.NewNotFound("incident not found")), http.StatusNotFound},
		{shared.ErrWriteNotPermitted, http.StatusInternalServerError},
		{echo.NewHTTPError(http.StatusUnsupportedMediaType, "unsupported"), http.StatusUnsupportedMediaType},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("should map %T to %d", c.err, c.code), func(t *testing.T) {
			code, _ := ErrorResponse(c.err)
			assert.Equal(t, c.code, code)
		})
	}

	t.Run("should expose the offending field of a validation error", func(t *testing.T) {
		_, body := ErrorResponse(shared.NewFieldValidationFailed("title", "must not be empty"))
		assert.Equal(t, "must not be empty", body.(errorBody).Details["title"])
	})
}

func TestAnonymousRateLimit(t *testing.T) {
	t.Run("should reject a client above the burst", func(t *testing.T) {
		e := Server()
		limit := anonymousRateLimit(2)
		next := func(ctx echo.Context) error {
			return ctx.NoContent(http.StatusOK)
		}

		var codes []int
		for range 3 {
			req := httptest.NewRequest(http.MethodPost, "/incidents/track/", nil)
			req.Header.Set(echo.HeaderXRealIP, "203.0.113.7")
			rec := httptest.NewRecorder()
			require.NoError(t, limit(next)(e.NewContext(req, rec)))
			codes = append(codes, rec.Code)
		}

		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	})

	t.Run("should count clients separately", func(t *testing.T) {
		e := Server()
		limit := anonymousRateLimit(1)
		next := func(ctx echo.Context) error {
			return ctx.NoContent(http.StatusOK)
		}

		for _, ip := range []string{"203.0.113.7", "203.0.113.8"} {
			req := httptest.NewRequest(http.MethodPost, "/incidents/secret/", nil)
			req.Header.Set(echo.HeaderXRealIP, ip)
			rec := httptest.NewRecorder()
			require.NoError(t, limit(next)(e.NewContext(req, rec)))
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})
}
