// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package controllers

import (
	"net/http"

	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/l3montree-dev/ohsms/utils"
)

type OrgController struct {
	orgService shared.OrgService
}

func NewOrgController(orgService shared.OrgService) *OrgController {
	return &OrgController{orgService: orgService}
}

// Tree lists every branch with its departments and sections.
func (c *OrgController) Tree(ctx shared.Context) error {
	branches, err := c.orgService.Tree()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, utils.Map(branches, dtos.BranchToDTO))
}

func (c *OrgController) CreateBranch(ctx shared.Context) error {
	var req dtos.CreateOrgNodeRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	branch, err := c.orgService.CreateBranch(shared.GetActor(ctx), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, branch)
}

func (c *OrgController) CreateDepartment(ctx shared.Context) error {
	branchID, err := shared.GetUUIDParam(ctx, "branchID")
	if err != nil {
		return err
	}
	var req dtos.CreateOrgNodeRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	department, err := c.orgService.CreateDepartment(shared.GetActor(ctx), branchID, req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, department)
}

func (c *OrgController) CreateSection(ctx shared.Context) error {
	departmentID, err := shared.GetUUIDParam(ctx, "departmentID")
	if err != nil {
		return err
	}
	var req dtos.CreateOrgNodeRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	section, err := c.orgService.CreateSection(shared.GetActor(ctx), departmentID, req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, section)
}
