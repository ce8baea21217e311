package controllers

import (
	"net/http"

	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/shared"
)

type RiskTaxonomyController struct {
	riskTaxonomyService  shared.RiskTaxonomyService
	riskReferenceService shared.RiskReferenceService
}

func NewRiskTaxonomyController(riskTaxonomyService shared.RiskTaxonomyService, riskReferenceService shared.RiskReferenceService) *RiskTaxonomyController {
	return &RiskTaxonomyController{
		riskTaxonomyService:  riskTaxonomyService,
		riskReferenceService: riskReferenceService,
	}
}

func (c *RiskTaxonomyController) Categories(ctx shared.Context) error {
	categories, err := c.riskTaxonomyService.Categories()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, categories)
}

func (c *RiskTaxonomyController) CreateCategory(ctx shared.Context) error {
	var req dtos.CreateRiskCategoryRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	category, err := c.riskTaxonomyService.CreateCategory(shared.GetActor(ctx), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, category)
}

func (c *RiskTaxonomyController) SubCategories(ctx shared.Context) error {
	categoryID, err := shared.GetUUIDParam(ctx, "categoryID")
	if err != nil {
		return err
	}
	subCategories, err := c.riskTaxonomyService.SubCategories(categoryID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, subCategories)
}

func (c *RiskTaxonomyController) CreateSubCategory(ctx shared.Context) error {
	categoryID, err := shared.GetUUIDParam(ctx, "categoryID")
	if err != nil {
		return err
	}
	var req dtos.CreateNamedTaxonomyRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	subCategory, err := c.riskTaxonomyService.CreateSubCategory(shared.GetActor(ctx), categoryID, req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, subCategory)
}

func (c *RiskTaxonomyController) Causes(ctx shared.Context) error {
	subCategoryID, err := shared.GetUUIDParam(ctx, "subCategoryID")
	if err != nil {
		return err
	}
	causes, err := c.riskTaxonomyService.Causes(subCategoryID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, causes)
}

func (c *RiskTaxonomyController) CreateCause(ctx shared.Context) error {
	subCategoryID, err := shared.GetUUIDParam(ctx, "subCategoryID")
	if err != nil {
		return err
	}
	var req dtos.CreateNamedTaxonomyRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	cause, err := c.riskTaxonomyService.CreateCause(shared.GetActor(ctx), subCategoryID, req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, cause)
}

func (c *RiskTaxonomyController) AffectedGroups(ctx shared.Context) error {
	groups, err := c.riskTaxonomyService.AffectedGroups()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, groups)
}

func (c *RiskTaxonomyController) CreateAffectedGroup(ctx shared.Context) error {
	var req dtos.CreateNamedTaxonomyRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	group, err := c.riskTaxonomyService.CreateAffectedGroup(shared.GetActor(ctx), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, group)
}

func (c *RiskTaxonomyController) References(ctx shared.Context) error {
	references, err := c.riskReferenceService.ListActive()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, references)
}

func (c *RiskTaxonomyController) CreateReference(ctx shared.Context) error {
	var req dtos.CreateRiskReferenceRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	reference, err := c.riskReferenceService.Create(shared.GetActor(ctx), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, reference)
}
