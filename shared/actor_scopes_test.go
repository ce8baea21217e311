package shared_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/stretchr/testify/assert"
)

type orgTree struct {
	branch, otherBranch     uuid.UUID
	department, otherDept   uuid.UUID
	section, siblingSection uuid.UUID
}

func newOrgTree() orgTree {
	return orgTree{
		branch: uuid.New(), otherBranch: uuid.New(),
		department: uuid.New(), otherDept: uuid.New(),
		section: uuid.New(), siblingSection: uuid.New(),
	}
}

func (o orgTree) sectionNode() models.OrgPlacement {
	return models.OrgPlacement{BranchID: &o.branch, DepartmentID: &o.department, SectionID: &o.section}
}

func (o orgTree) siblingNode() models.OrgPlacement {
	return models.OrgPlacement{BranchID: &o.branch, DepartmentID: &o.department, SectionID: &o.siblingSection}
}

func (o orgTree) foreignNode() models.OrgPlacement {
	section := uuid.New()
	return models.OrgPlacement{BranchID: &o.otherBranch, DepartmentID: &o.otherDept, SectionID: &section}
}

func assignment(code string, global bool, placement models.OrgPlacement) models.UserRoleAssignment {
	return models.UserRoleAssignment{Role: models.Role{Code: code, IsGlobal: global}, OrgPlacement: placement}
}

func TestCanAccess(t *testing.T) {
	tree := newOrgTree()

	t.Run("should let global holders access everything", func(t *testing.T) {
		scopes := shared.ActorScopes{UserID: "admin", Assignments: []models.UserRoleAssignment{assignment(shared.RoleSystemAdmin, true, models.OrgPlacement{})}}
		assert.True(t, scopes.CanAccess(shared.RoleSectionManager, tree.foreignNode()))
	})

	t.Run("should cover descendants of a department pin", func(t *testing.T) {
		scopes := shared.ActorScopes{UserID: "u", Assignments: []models.UserRoleAssignment{
			assignment(shared.RoleDepartmentManager, false, models.OrgPlacement{BranchID: &tree.branch, DepartmentID: &tree.department}),
		}}
		assert.True(t, scopes.CanAccess(shared.RoleDepartmentManager, tree.sectionNode()))
		assert.True(t, scopes.CanAccess(shared.RoleDepartmentManager, tree.siblingNode()))
		assert.False(t, scopes.CanAccess(shared.RoleDepartmentManager, tree.foreignNode()))
	})

	t.Run("should not cover sibling sections", func(t *testing.T) {
		scopes := shared.ActorScopes{UserID: "u", Assignments: []models.UserRoleAssignment{assignment(shared.RoleSectionManager, false, tree.sectionNode())}}
		assert.True(t, scopes.CanAccess(shared.RoleSectionManager, tree.sectionNode()))
		assert.False(t, scopes.CanAccess(shared.RoleSectionManager, tree.siblingNode()))
	})

	t.Run("should not cover the parent of a pin", func(t *testing.T) {
		scopes := shared.ActorScopes{UserID: "u", Assignments: []models.UserRoleAssignment{assignment(shared.RoleSectionManager, false, tree.sectionNode())}}
		assert.False(t, scopes.CanAccess(shared.RoleSectionManager, models.OrgPlacement{BranchID: &tree.branch, DepartmentID: &tree.department}))
	})

	t.Run("should fail closed for unpinned non global assignments", func(t *testing.T) {
		scopes := shared.ActorScopes{UserID: "u", Assignments: []models.UserRoleAssignment{assignment(shared.RoleEmployee, false, models.OrgPlacement{})}}
		assert.False(t, scopes.CanAccess(shared.RoleEmployee, tree.sectionNode()))
		assert.False(t, scopes.CanAccess("", models.OrgPlacement{}))
	})

	t.Run("should only match the requested role", func(t *testing.T) {
		scopes := shared.ActorScopes{UserID: "u", Assignments: []models.UserRoleAssignment{assignment(shared.RoleEmployee, false, tree.sectionNode())}}
		assert.False(t, scopes.CanAccess(shared.RoleSectionManager, tree.sectionNode()))
		assert.True(t, scopes.CanAccessAny([]shared.Role{shared.RoleSectionManager, shared.RoleEmployee}, tree.sectionNode()))
	})
}

func TestCanViewIncident(t *testing.T) {
	tree := newOrgTree()

	t.Run("should let reporters and assignees see their incidents", func(t *testing.T) {
		incident := models.Incident{OrgPlacement: tree.foreignNode(), CreatedByID: shared.Ptr("reporter"), AssignedToID: shared.Ptr("officer")}
		assert.True(t, shared.ActorScopes{UserID: "reporter"}.CanViewIncident(incident))
		assert.True(t, shared.ActorScopes{UserID: "officer"}.CanViewIncident(incident))
		assert.False(t, shared.ActorScopes{UserID: "someone"}.CanViewIncident(incident))
	})

	t.Run("should hide secret incidents from pinned holders", func(t *testing.T) {
		scopes := shared.ActorScopes{UserID: "manager", Assignments: []models.UserRoleAssignment{assignment(shared.RoleBranchManager, false, models.OrgPlacement{BranchID: &tree.branch})}}
		assert.False(t, scopes.CanViewIncident(models.Incident{IncidentType: models.IncidentTypeSecret}))
	})

	t.Run("should never match the anonymous user as reporter", func(t *testing.T) {
		assert.False(t, shared.ActorScopes{}.CanViewIncident(models.Incident{CreatedByID: shared.Ptr("")}))
	})
}

func TestCanViewRisk(t *testing.T) {
	tree := newOrgTree()

	t.Run("should check branch risks against the branch only", func(t *testing.T) {
		risk := models.Risk{ScopeType: models.RiskScopeBranch, OrgPlacement: tree.sectionNode()}
		sectionHolder := shared.ActorScopes{UserID: "u", Assignments: []models.UserRoleAssignment{assignment(shared.RoleSectionManager, false, tree.sectionNode())}}
		branchHolder := shared.ActorScopes{UserID: "u", Assignments: []models.UserRoleAssignment{assignment(shared.RoleBranchManager, false, models.OrgPlacement{BranchID: &tree.branch})}}

		assert.False(t, sectionHolder.CanViewRisk(risk))
		assert.True(t, branchHolder.CanViewRisk(risk))
	})

	t.Run("should let the creator see a general risk", func(t *testing.T) {
		risk := models.Risk{ScopeType: models.RiskScopeGeneral, CreatedByID: "creator"}
		assert.True(t, shared.ActorScopes{UserID: "creator"}.CanViewRisk(risk))
	})
}

func TestVisibilityFilter(t *testing.T) {
	tree := newOrgTree()

	t.Run("should see everything as global holder", func(t *testing.T) {
		scopes := shared.ActorScopes{UserID: "admin", Assignments: []models.UserRoleAssignment{assignment(shared.RoleTopManagement, true, models.OrgPlacement{})}}
		assert.True(t, scopes.VisibilityFilter().All)
	})

	t.Run("should collect the most specific level of each pin once", func(t *testing.T) {
		scopes := shared.ActorScopes{UserID: "u", Assignments: []models.UserRoleAssignment{
			assignment(shared.RoleSectionManager, false, tree.sectionNode()),
			assignment(shared.RoleEmployee, false, tree.sectionNode()),
			assignment(shared.RoleBranchManager, false, models.OrgPlacement{BranchID: &tree.otherBranch}),
			assignment(shared.RoleExternal, false, models.OrgPlacement{}),
		}}
		filter := scopes.VisibilityFilter()
		assert.False(t, filter.All)
		assert.Equal(t, []uuid.UUID{tree.section}, filter.SectionIDs)
		assert.Equal(t, []uuid.UUID{tree.otherBranch}, filter.BranchIDs)
		assert.Empty(t, filter.DepartmentIDs)
		assert.True(t, filter.HasPins())
	})
}

func TestErrorTaxonomy(t *testing.T) {
	t.Run("should detect wrapped errors", func(t *testing.T) {
		err := fmt.Errorf("could not save: %w", shared.NewInvalidTransition(models.IncidentStatusClosed, models.IncidentStatusOpen))
		assert.True(t, shared.IsInvalidTransition(err))
		assert.False(t, shared.IsNotFound(err))
	})

	t.Run("should name the field of a validation error", func(t *testing.T) {
		err := shared.NewFieldValidationFailed("title", "required")
		assert.Equal(t, "required", err.Details["title"])
		assert.Contains(t, err.Error(), "title")
	})
}

func TestWritePermit(t *testing.T) {
	t.Run("should permit nothing as zero value", func(t *testing.T) {
		assert.ErrorIs(t, shared.WritePermit{}.Require(shared.WriteScopeIncident), shared.ErrWriteNotPermitted)
	})

	t.Run("should only permit the granted scopes", func(t *testing.T) {
		permit := shared.GrantWrite(shared.WriteScopeRisk)
		assert.NoError(t, permit.Require(shared.WriteScopeRisk))
		assert.False(t, permit.Allows(shared.WriteScopeForm))
	})
}
