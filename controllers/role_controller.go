package controllers

import (
	"log/slog"
	"net/http"

	"github.com/l3montree-dev/ohsms/accesscontrol"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/l3montree-dev/ohsms/utils"
)

type RoleController struct {
	roleAssignmentService shared.RoleAssignmentService
	rbac                  shared.AccessControl
}

func NewRoleController(roleAssignmentService shared.RoleAssignmentService, rbacProvider shared.RBACProvider) *RoleController {
	return &RoleController{
		roleAssignmentService: roleAssignmentService,
		rbac:                  rbacProvider.GetDomainRBAC(accesscontrol.DefaultDomain),
	}
}

var whoAmIObjects = []shared.Object{
	shared.ObjectIncident,
	shared.ObjectRisk,
	shared.ObjectRiskTaxonomy,
	shared.ObjectRiskReference,
	shared.ObjectFormTemplate,
	shared.ObjectOrg,
	shared.ObjectRoleAssignment,
	shared.ObjectSystemContent,
	shared.ObjectAuditLog,
}

// permissions merges the allowed actions of every held role. Global holders
// are permitted everything and get no list.
func (c *RoleController) permissions(scopes shared.ActorScopes) map[string][]string {
	if scopes.IsGlobal() {
		return nil
	}
	result := make(map[string][]string)
	for _, object := range whoAmIObjects {
		var actions []shared.Action
		for _, role := range scopes.RoleCodes() {
			allowed, err := c.rbac.GetAllowedActions(role, object)
			if err != nil {
				slog.Error("could not read allowed actions", "role", role, "object", object, "err", err)
				continue
			}
			actions = append(actions, allowed...)
		}
		actions = utils.UniqBy(actions, func(a shared.Action) shared.Action { return a })
		if len(actions) > 0 {
			result[string(object)] = utils.Map(actions, func(a shared.Action) string { return string(a) })
		}
	}
	return result
}

func (c *RoleController) Roles(ctx shared.Context) error {
	roles, err := c.roleAssignmentService.Roles()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, roles)
}

func (c *RoleController) ListForUser(ctx shared.Context) error {
	userID := shared.SanitizeParam(ctx.Param("userID"))
	assignments, err := c.roleAssignmentService.ListForUser(shared.GetActor(ctx), userID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, utils.Map(assignments, dtos.RoleAssignmentToDTO))
}

func (c *RoleController) Assign(ctx shared.Context) error {
	userID := shared.SanitizeParam(ctx.Param("userID"))
	if userID == "" {
		return shared.NewFieldValidationFailed("userID", "missing")
	}
	var req dtos.AssignRoleRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	assignment, err := c.roleAssignmentService.Assign(shared.GetActor(ctx), userID, req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, dtos.RoleAssignmentToDTO(assignment))
}

func (c *RoleController) Revoke(ctx shared.Context) error {
	assignmentID, err := shared.GetUUIDParam(ctx, "assignmentID")
	if err != nil {
		return err
	}
	if err := c.roleAssignmentService.Revoke(shared.GetActor(ctx), assignmentID); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// WhoAmI answers with the scopes the scope middleware resolved for the caller.
func (c *RoleController) WhoAmI(ctx shared.Context) error {
	actor := shared.GetActor(ctx)
	scopes := shared.GetScopes(ctx)
	return ctx.JSON(http.StatusOK, dtos.WhoAmIDTO{
		UserID:      actor.UserID,
		DisplayName: actor.DisplayName,
		IsGlobal:    scopes.IsGlobal(),
		Assignments: utils.Map(scopes.Assignments, dtos.RoleAssignmentToDTO),
		Permissions: c.permissions(scopes),
	})
}
