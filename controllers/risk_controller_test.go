package controllers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/mocks"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRiskControllerTransitions(t *testing.T) {
	t.Run("should require a reason to reject", func(t *testing.T) {
		c := NewRiskController(mocks.NewRiskService(t), mocks.NewVisibilityService(t))
		ctx, _ := jsonContext(http.MethodPost, `{}`)

		err := c.Reject(withParam(ctx, "riskID", uuid.NewString()))
		assert.True(t, shared.IsValidationFailed(err))
	})

	t.Run("should pass the note of an approval", func(t *testing.T) {
		riskService := mocks.NewRiskService(t)
		c := NewRiskController(riskService, mocks.NewVisibilityService(t))
		riskID := uuid.New()
		ctx, rec := jsonContext(http.MethodPost, `{"note":"budget granted"}`)
		riskService.On("Approve", mock.Anything, mock.Anything, riskID, "budget granted").Return(models.Risk{Model: models.Model{ID: riskID}, Status: models.RiskStatusApproved}, nil)

		assert.NoError(t, c.Approve(withParam(ctx, "riskID", riskID.String())))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), string(models.RiskStatusApproved))
	})

	t.Run("should return permission errors of the service unchanged", func(t *testing.T) {
		riskService := mocks.NewRiskService(t)
		c := NewRiskController(riskService, mocks.NewVisibilityService(t))
		riskID := uuid.New()
		ctx, _ := jsonContext(http.MethodPost, `{}`)
		riskService.On("Start", mock.Anything, mock.Anything, riskID, "").Return(models.Risk{}, shared.NewPermissionDenied("not allowed to start risk"))

		err := c.Start(withParam(ctx, "riskID", riskID.String()))
		assert.True(t, shared.IsPermissionDenied(err))
	})
}

func TestRiskControllerCreate(t *testing.T) {
	t.Run("should reject ratings outside of one to five", func(t *testing.T) {
		c := NewRiskController(mocks.NewRiskService(t), mocks.NewVisibilityService(t))
		body := `{"title":"Forklift","description":"blind corner","categoryId":"` + uuid.NewString() + `","subCategoryId":"` + uuid.NewString() + `","causeId":"` + uuid.NewString() + `","severity":7,"likelihood":2,"scopeType":"general"}`
		ctx, _ := jsonContext(http.MethodPost, body)

		var validation *shared.ValidationFailedError
		require.ErrorAs(t, c.Create(ctx), &validation)
		assert.Equal(t, "max", validation.Details["severity"])
	})
}
