package repositories

import (
	"strings"

	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/shared"
	"gorm.io/gorm"
)

type condition struct {
	parts []string
	args  []any
}

func (c *condition) or(part string, args ...any) {
	c.parts = append(c.parts, part)
	c.args = append(c.args, args...)
}

// apply ORs all collected parts. Without any part nothing is visible.
func (c condition) apply(db *gorm.DB) *gorm.DB {
	if len(c.parts) == 0 {
		return db.Where("1 = 0")
	}
	return db.Where("("+strings.Join(c.parts, " OR ")+")", c.args...)
}

// incidentVisibility restricts a query on incidents to the rows the filter may see.
// An incident is visible to its reporter, its assignee and every pin covering its placement.
func incidentVisibility(table string, filter shared.VisibilityFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.All {
			return db
		}
		col := column(table)
		var c condition
		if filter.UserID != "" {
			c.or(col("created_by_id")+" = ?", filter.UserID)
			c.or(col("assigned_to_id")+" = ?", filter.UserID)
		}
		if len(filter.SectionIDs) > 0 {
			c.or(col("section_id")+" IN ?", filter.SectionIDs)
		}
		if len(filter.DepartmentIDs) > 0 {
			c.or(col("department_id")+" IN ?", filter.DepartmentIDs)
		}
		if len(filter.BranchIDs) > 0 {
			c.or(col("branch_id")+" IN ?", filter.BranchIDs)
		}
		return c.apply(db)
	}
}

// riskVisibility mirrors ActorScopes.CanViewRisk. The scope type decides which
// placement column is authoritative, general risks are visible to every pinned actor.
func riskVisibility(table string, filter shared.VisibilityFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.All {
			return db
		}
		col := column(table)
		var c condition
		if filter.UserID != "" {
			c.or(col("created_by_id")+" = ?", filter.UserID)
		}
		if filter.HasPins() {
			c.or(col("scope_type")+" = ?", models.RiskScopeGeneral)
		}
		if len(filter.SectionIDs) > 0 {
			c.or("("+col("scope_type")+" = ? AND "+col("section_id")+" IN ?)",
				models.RiskScopeSection, filter.SectionIDs)
		}
		if len(filter.DepartmentIDs) > 0 {
			c.or("("+col("scope_type")+" IN ? AND "+col("department_id")+" IN ?)",
				[]models.RiskScopeType{models.RiskScopeDepartment, models.RiskScopeSection}, filter.DepartmentIDs)
		}
		if len(filter.BranchIDs) > 0 {
			c.or("("+col("scope_type")+" IN ? AND "+col("branch_id")+" IN ?)",
				[]models.RiskScopeType{models.RiskScopeBranch, models.RiskScopeDepartment, models.RiskScopeSection}, filter.BranchIDs)
		}
		return c.apply(db)
	}
}

func column(table string) func(string) string {
	return func(name string) string {
		if table == "" {
			return name
		}
		return table + "." + name
	}
}
