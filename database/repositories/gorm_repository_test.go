package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	t.Run("unique violation", func(t *testing.T) {
		err := translateError(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "branches_code_key"}))
		assert.True(t, shared.IsValidationFailed(err))
	})

	t.Run("foreign key violation", func(t *testing.T) {
		err := translateError(&pgconn.PgError{Code: "23503", ConstraintName: "departments_branch_id_fkey"})
		var validationErr *shared.ValidationFailedError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "unknown reference", validationErr.Details["departments_branch_id_fkey"])
	})

	t.Run("check violation", func(t *testing.T) {
		assert.True(t, shared.IsValidationFailed(translateError(&pgconn.PgError{Code: "23514"})))
	})

	t.Run("other error", func(t *testing.T) {
		other := errors.New("connection reset")
		assert.Equal(t, other, translateError(other))
		assert.NoError(t, translateError(nil))
	})
}

func TestNotFound(t *testing.T) {
	err := notFound[models.Incident](fmt.Errorf("read: %w", gorm.ErrRecordNotFound))
	assert.True(t, shared.IsNotFound(err))
	assert.Equal(t, "incidents not found", err.Error())

	assert.NoError(t, notFound[models.Incident](nil))
}
