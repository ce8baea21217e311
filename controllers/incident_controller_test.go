package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/mocks"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jsonContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func withParam(ctx echo.Context, name string, value string) echo.Context {
	ctx.SetParamNames(name)
	ctx.SetParamValues(value)
	return ctx
}

func newTestIncidentController(t *testing.T) (*IncidentController, *mocks.IncidentService, *mocks.IncidentChangeBroadcaster) {
	incidentService := mocks.NewIncidentService(t)
	broadcaster := mocks.NewIncidentChangeBroadcaster(t)
	return NewIncidentController(incidentService, mocks.NewVisibilityService(t), broadcaster), incidentService, broadcaster
}

func TestIncidentControllerCreate(t *testing.T) {
	t.Run("should reject a request without title", func(t *testing.T) {
		c, _, _ := newTestIncidentController(t)
		ctx, _ := jsonContext(http.MethodPost, `{"description":"oil on the floor"}`)

		err := c.Create(ctx)
		var validation *shared.ValidationFailedError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "required", validation.Details["title"])
	})

	t.Run("should reject malformed json", func(t *testing.T) {
		c, _, _ := newTestIncidentController(t)
		ctx, _ := jsonContext(http.MethodPost, `{"title":`)

		assert.True(t, shared.IsValidationFailed(c.Create(ctx)))
	})

	t.Run("should respond with the created incident", func(t *testing.T) {
		c, incidentService, _ := newTestIncidentController(t)
		ctx, rec := jsonContext(http.MethodPost, `{"title":"Slippery floor","description":"oil on the floor"}`)
		incidentService.On("CreateNormal", mock.Anything, mock.Anything, mock.MatchedBy(func(req dtos.CreateIncidentRequest) bool {
			return req.Title == "Slippery floor"
		})).Return(models.Incident{Number: "2026-0001", Title: "Slippery floor"}, nil)

		assert.NoError(t, c.Create(ctx))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "2026-0001")
	})
}

func TestIncidentControllerCreateSecret(t *testing.T) {
	t.Run("should return the secret key exactly once", func(t *testing.T) {
		c, incidentService, _ := newTestIncidentController(t)
		ctx, rec := jsonContext(http.MethodPost, `{"title":"Harassment","description":"...","secretReason":"fear of retaliation"}`)
		incidentService.On("CreateSecret", mock.Anything, mock.Anything).Return(models.Incident{Number: "2026-0002"}, "0123456789abcdef0123456789abcdef", nil)

		assert.NoError(t, c.CreateSecret(ctx))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp dtos.SecretIncidentCreatedResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "2026-0002", resp.Number)
		assert.Equal(t, "0123456789abcdef0123456789abcdef", resp.SecretKey)
	})
}

func TestIncidentControllerTrack(t *testing.T) {
	t.Run("should hide notes and assignments from the reporter", func(t *testing.T) {
		c, incidentService, _ := newTestIncidentController(t)
		ctx, rec := jsonContext(http.MethodPost, `{"token":"0123456789abcdef0123456789abcdef"}`)
		incidentID := uuid.New()
		incidentService.On("TrackSecret", "0123456789abcdef0123456789abcdef").Return(
			models.Incident{Model: models.Model{ID: incidentID}, Number: "2026-0002", Status: models.IncidentStatusInProgress},
			[]models.IncidentEvent{
				{IncidentID: incidentID, Action: models.IncidentEventProgress, ToStatus: models.IncidentStatusInProgress},
				{IncidentID: incidentID, Action: models.IncidentEventNote, Note: "called the works council"},
			}, nil)

		assert.NoError(t, c.Track(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "works council")

		var resp dtos.SecretIncidentStatusDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Events, 1)
	})
}

func TestIncidentControllerChangeStatus(t *testing.T) {
	t.Run("should reject an invalid incident id", func(t *testing.T) {
		c, _, _ := newTestIncidentController(t)
		ctx, _ := jsonContext(http.MethodPost, `{"status":"closed"}`)

		assert.Error(t, c.ChangeStatus(withParam(ctx, "incidentID", "not-a-uuid")))
	})

	t.Run("should require a status before calling the service", func(t *testing.T) {
		c, _, _ := newTestIncidentController(t)
		ctx, _ := jsonContext(http.MethodPost, `{"note":"fixed"}`)

		err := c.ChangeStatus(withParam(ctx, "incidentID", uuid.NewString()))
		var validation *shared.ValidationFailedError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "required", validation.Details["status"])
	})

	t.Run("should pass unknown statuses to the service", func(t *testing.T) {
		c, incidentService, broadcaster := newTestIncidentController(t)
		incidentID := uuid.New()
		ctx, _ := jsonContext(http.MethodPost, `{"status":"archived"}`)
		incidentService.On("ChangeStatus", mock.Anything, mock.Anything, incidentID, models.IncidentStatus("archived"), "").
			Return(models.Incident{}, models.IncidentEvent{}, shared.NewInvalidTransition(models.IncidentStatusOpen, "archived"))

		err := c.ChangeStatus(withParam(ctx, "incidentID", incidentID.String()))
		assert.True(t, shared.IsInvalidTransition(err))
		broadcaster.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should broadcast the change after it succeeded", func(t *testing.T) {
		c, incidentService, broadcaster := newTestIncidentController(t)
		incidentID := uuid.New()
		ctx, rec := jsonContext(http.MethodPost, `{"status":"closed","note":"fixed"}`)
		incident := models.Incident{Model: models.Model{ID: incidentID}, Status: models.IncidentStatusClosed}
		event := models.IncidentEvent{IncidentID: incidentID, Action: models.IncidentEventClose}
		incidentService.On("ChangeStatus", mock.Anything, mock.Anything, incidentID, models.IncidentStatusClosed, "fixed").Return(incident, event, nil)
		broadcaster.On("Broadcast", mock.Anything, incident, event).Return()

		assert.NoError(t, c.ChangeStatus(withParam(ctx, "incidentID", incidentID.String())))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should not broadcast failed transitions", func(t *testing.T) {
		c, incidentService, broadcaster := newTestIncidentController(t)
		incidentID := uuid.New()
		ctx, _ := jsonContext(http.MethodPost, `{"status":"in_progress"}`)
		incidentService.On("ChangeStatus", mock.Anything, mock.Anything, incidentID, models.IncidentStatusInProgress, "").
			Return(models.Incident{}, models.IncidentEvent{}, shared.NewInvalidTransition(models.IncidentStatusClosed, models.IncidentStatusInProgress))

		err := c.ChangeStatus(withParam(ctx, "incidentID", incidentID.String()))
		assert.True(t, shared.IsInvalidTransition(err))
		broadcaster.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything, mock.Anything)
	})
}
