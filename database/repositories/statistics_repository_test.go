package repositories

import (
	"strings"
	"testing"

	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=ohsms dbname=ohsms sslmode=disable"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func TestIncidentSLAQuery(t *testing.T) {
	t.Run("should count unhandled incidents in the total", func(t *testing.T) {
		db := newDryRunDB(t)

		sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
			var row struct {
				Within int64
				Total  int64
			}
			return incidentSLAQuery(tx.Model(&models.Incident{}), 24).Scan(&row)
		})

		assert.Contains(t, sql, "FILTER (WHERE incidents.handled_at IS NOT NULL")
		assert.Contains(t, sql, "make_interval(hours => 24)")
		_, from, found := strings.Cut(sql, "FROM")
		require.True(t, found)
		assert.NotContains(t, from, "handled_at")
	})
}
