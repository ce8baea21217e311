package repositories

import (
	"testing"
	"time"

	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/integrationtestutil"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRepositoriesOnPostgres(t *testing.T) {
	db, _ := integrationtestutil.InitDatabaseContainer(t)

	t.Run("should hand out incident numbers per year", func(t *testing.T) {
		r := NewIncidentRepository(db)

		first, err := r.NextNumber(nil, 2026)
		require.NoError(t, err)
		second, err := r.NextNumber(nil, 2026)
		require.NoError(t, err)
		other, err := r.NextNumber(nil, 2027)
		require.NoError(t, err)

		assert.Equal(t, 1, first)
		assert.Equal(t, 2, second)
		assert.Equal(t, 1, other)
	})

	t.Run("should refuse incident writes without a permit", func(t *testing.T) {
		r := NewIncidentRepository(db)

		err := r.Create(nil, shared.WritePermit{}, &models.Incident{Number: "2026-9999", Title: "x", Description: "x"})
		assert.ErrorIs(t, err, shared.ErrWriteNotPermitted)
	})

	t.Run("should measure the sla against all incidents", func(t *testing.T) {
		r := NewIncidentRepository(db)
		permit := shared.GrantWrite(shared.WriteScopeIncident)
		createdAt := time.Now().Add(-72 * time.Hour)
		handledInTime := createdAt.Add(2 * time.Hour)
		handledLate := createdAt.Add(48 * time.Hour)

		incidents := []models.Incident{
			{Number: "2026-0101", HandledAt: &handledInTime},
			{Number: "2026-0102", HandledAt: &handledLate},
			{Number: "2026-0103"},
			{Number: "2026-0104"},
		}
		for i := range incidents {
			incidents[i].Title = "Wet floor"
			incidents[i].Description = "near the entrance"
			incidents[i].IncidentType = models.IncidentTypeNormal
			incidents[i].Status = models.IncidentStatusOpen
			incidents[i].CreatedAt = createdAt
			require.NoError(t, r.Create(nil, permit, &incidents[i]))
		}

		within, total, err := NewStatisticsRepository(db).IncidentSLACounts(shared.VisibilityFilter{All: true}, 24)
		require.NoError(t, err)
		assert.Equal(t, int64(1), within)
		assert.Equal(t, int64(4), total)
	})

	t.Run("should suffix colliding branch codes", func(t *testing.T) {
		r := NewBranchRepository(db)
		north := models.Branch{Name: "North", Code: "north"}
		northAgain := models.Branch{Name: "North", Code: "north"}

		require.NoError(t, r.Create(nil, &north))
		require.NoError(t, r.Create(nil, &northAgain))
		assert.Equal(t, "north", north.Code)
		assert.Equal(t, "north-1", northAgain.Code)
	})

	t.Run("should keep the audit log append only", func(t *testing.T) {
		r := NewAuditLogRepository(db)
		entry := models.AuditLog{ActorLabel: "admin", Action: models.AuditActionCreate, ModelName: "branches", CreatedAt: time.Now()}
		require.NoError(t, r.CreateInSavepoint(nil, &entry))

		err := db.Model(&models.AuditLog{}).Where("id = ?", entry.ID).Update("description", "tampered").Error
		assert.Error(t, err)
	})

	t.Run("should leave the outer transaction usable if an audit insert fails", func(t *testing.T) {
		r := NewAuditLogRepository(db)
		existing := models.AuditLog{ActorLabel: "admin", Action: models.AuditActionCreate, ModelName: "branches"}
		require.NoError(t, r.CreateInSavepoint(nil, &existing))

		err := db.Transaction(func(tx *gorm.DB) error {
			duplicate := models.AuditLog{ID: existing.ID, ActorLabel: "admin", Action: models.AuditActionCreate, ModelName: "branches"}
			assert.Error(t, r.CreateInSavepoint(tx, &duplicate))
			branch := models.Branch{Name: "South", Code: "south"}
			return NewBranchRepository(db).Create(tx, &branch)
		})
		assert.NoError(t, err)
	})
}
