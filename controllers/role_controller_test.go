package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/accesscontrol"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/mocks"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/stretchr/testify/assert"
)

func newTestRoleController(t *testing.T) *RoleController {
	provider, err := accesscontrol.NewInMemoryRBACProvider()
	assert.NoError(t, err)
	assert.NoError(t, shared.BootstrapPermissions(provider.GetDomainRBAC(accesscontrol.DefaultDomain)))
	return NewRoleController(mocks.NewRoleAssignmentService(t), provider)
}

func TestWhoAmI(t *testing.T) {
	t.Run("should list the actions the held roles allow", func(t *testing.T) {
		c := newTestRoleController(t)
		ctx, rec := jsonContext(http.MethodGet, "")
		shared.SetSession(ctx, accesscontrol.NewSession("user-1", "Jane Doe"))
		shared.SetScopes(ctx, shared.ActorScopes{UserID: "user-1", Assignments: []models.UserRoleAssignment{{
			UserID:       "user-1",
			Role:         models.Role{Code: shared.RoleSafetyCommittee},
			OrgPlacement: models.OrgPlacement{BranchID: shared.Ptr(uuid.New())},
		}}})

		assert.NoError(t, c.WhoAmI(ctx))
		var resp dtos.WhoAmIDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Jane Doe", resp.DisplayName)
		assert.False(t, resp.IsGlobal)
		assert.Contains(t, resp.Permissions[string(shared.ObjectRisk)], string(shared.ActionApprove))
		assert.NotContains(t, resp.Permissions, string(shared.ObjectSystemContent))
	})

	t.Run("should omit the permission list of global roles", func(t *testing.T) {
		c := newTestRoleController(t)
		ctx, rec := jsonContext(http.MethodGet, "")
		shared.SetSession(ctx, accesscontrol.NewSession("admin", "Admin"))
		shared.SetScopes(ctx, shared.ActorScopes{UserID: "admin", Assignments: []models.UserRoleAssignment{{
			Role: models.Role{Code: shared.RoleSystemAdmin, IsGlobal: true},
		}}})

		assert.NoError(t, c.WhoAmI(ctx))
		assert.NotContains(t, rec.Body.String(), "permissions")
	})
}
