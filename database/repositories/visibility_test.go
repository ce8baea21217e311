package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=ohsms dbname=ohsms sslmode=disable"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func TestIncidentVisibility(t *testing.T) {
	db := dryRunDB(t)

	t.Run("global filter adds no condition", func(t *testing.T) {
		stmt := db.Model(&models.Incident{}).Scopes(incidentVisibility("incidents", shared.VisibilityFilter{All: true})).Find(&[]models.Incident{}).Statement
		assert.NotContains(t, stmt.SQL.String(), "WHERE")
	})

	t.Run("anonymous filter matches nothing", func(t *testing.T) {
		stmt := db.Model(&models.Incident{}).Scopes(incidentVisibility("incidents", shared.VisibilityFilter{})).Find(&[]models.Incident{}).Statement
		assert.Contains(t, stmt.SQL.String(), "1 = 0")
	})

	t.Run("user and pins are ORed", func(t *testing.T) {
		sectionID := uuid.New()
		filter := shared.VisibilityFilter{UserID: "user-1", SectionIDs: []uuid.UUID{sectionID}}
		stmt := db.Model(&models.Incident{}).Scopes(incidentVisibility("incidents", filter)).Find(&[]models.Incident{}).Statement

		sql := stmt.SQL.String()
		assert.Contains(t, sql, "incidents.created_by_id = $1 OR incidents.assigned_to_id = $2 OR incidents.section_id IN ($3)")
		assert.Equal(t, []any{"user-1", "user-1", sectionID}, stmt.Vars)
	})
}

func TestRiskVisibility(t *testing.T) {
	db := dryRunDB(t)

	t.Run("general risks need a pin", func(t *testing.T) {
		stmt := db.Model(&models.Risk{}).Scopes(riskVisibility("risks", shared.VisibilityFilter{UserID: "user-1"})).Find(&[]models.Risk{}).Statement
		assert.NotContains(t, stmt.SQL.String(), "scope_type")
	})

	t.Run("branch pin covers deeper scope types", func(t *testing.T) {
		branchID := uuid.New()
		filter := shared.VisibilityFilter{UserID: "user-1", BranchIDs: []uuid.UUID{branchID}}
		stmt := db.Model(&models.Risk{}).Scopes(riskVisibility("risks", filter)).Find(&[]models.Risk{}).Statement

		sql := stmt.SQL.String()
		assert.Contains(t, sql, "risks.scope_type = $2")
		assert.Contains(t, sql, "(risks.scope_type IN ($3,$4,$5) AND risks.branch_id IN ($6))")
		assert.Equal(t, []any{"user-1", models.RiskScopeGeneral, models.RiskScopeBranch, models.RiskScopeDepartment, models.RiskScopeSection, branchID}, stmt.Vars)
	})
}
