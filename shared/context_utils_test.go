package shared_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/mocks"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newContext(target string) shared.Context {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(echo.HeaderXRealIP, "10.1.2.3")
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestGetPageInfo(t *testing.T) {
	t.Run("should default to the first page of ten", func(t *testing.T) {
		pageInfo := shared.GetPageInfo(newContext("/"))
		assert.Equal(t, shared.PageInfo{Page: 1, PageSize: 10}, pageInfo)
	})

	t.Run("should cap the page size", func(t *testing.T) {
		pageInfo := shared.GetPageInfo(newContext("/?page=3&pageSize=1000"))
		assert.Equal(t, shared.PageInfo{Page: 3, PageSize: 100}, pageInfo)
	})
}

func TestGetUUIDParam(t *testing.T) {
	t.Run("should fail validation for a missing param", func(t *testing.T) {
		_, err := shared.GetUUIDParam(newContext("/"), "incidentID")
		assert.True(t, shared.IsValidationFailed(err))
	})

	t.Run("should fail validation for malformed ids", func(t *testing.T) {
		ctx := newContext("/")
		ctx.SetParamNames("incidentID")
		ctx.SetParamValues("not-a-uuid")

		_, err := shared.GetUUIDParam(ctx, "incidentID")
		assert.True(t, shared.IsValidationFailed(err))
	})

	t.Run("should parse a valid id", func(t *testing.T) {
		id := uuid.New()
		ctx := newContext("/")
		ctx.SetParamNames("incidentID")
		ctx.SetParamValues(id.String())

		parsed, err := shared.GetUUIDParam(ctx, "incidentID")
		assert.NoError(t, err)
		assert.Equal(t, id, parsed)
	})
}

func TestGetActor(t *testing.T) {
	t.Run("should return the anonymous actor without a session", func(t *testing.T) {
		actor := shared.GetActor(newContext("/"))
		assert.True(t, actor.IsAnonymous())
		assert.Equal(t, "anonymous", actor.Label())
		assert.Equal(t, "10.1.2.3", actor.IPAddress)
	})

	t.Run("should take user and display name from the session", func(t *testing.T) {
		session := mocks.NewAuthSession(t)
		session.On("GetUserID").Return("user-1")
		session.On("GetDisplayName").Return("Jane Doe")
		ctx := newContext("/")
		shared.SetSession(ctx, session)

		actor := shared.GetActor(ctx)
		assert.Equal(t, "user-1", actor.UserID)
		assert.Equal(t, "Jane Doe", actor.Label())
		assert.Equal(t, "user-1", *actor.IDPtr())
	})
}

func TestGetScopes(t *testing.T) {
	t.Run("should fall back to empty scopes", func(t *testing.T) {
		scopes := shared.GetScopes(newContext("/"))
		assert.False(t, scopes.IsAuthenticated())
		assert.False(t, scopes.IsGlobal())
	})
}
