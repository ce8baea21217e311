package controllers

import (
	"net/http"

	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/shared"
)

type FormController struct {
	formService shared.FormService
}

func NewFormController(formService shared.FormService) *FormController {
	return &FormController{formService: formService}
}

func (c *FormController) List(ctx shared.Context) error {
	page, err := c.formService.List(shared.GetActor(ctx), shared.GetPageInfo(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, page)
}

func (c *FormController) Create(ctx shared.Context) error {
	var req dtos.CreateFormTemplateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	form, err := c.formService.CreateTemplate(nil, shared.GetActor(ctx), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, form)
}

// Read expects the form middleware to have loaded a template the actor may fill.
func (c *FormController) Read(ctx shared.Context) error {
	return ctx.JSON(http.StatusOK, shared.GetFormTemplate(ctx))
}

func (c *FormController) AddField(ctx shared.Context) error {
	form := shared.GetFormTemplate(ctx)
	var req dtos.AddFormFieldRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	field, err := c.formService.AddField(nil, shared.GetActor(ctx), form.ID, req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, field)
}

func (c *FormController) SetActive(ctx shared.Context) error {
	form := shared.GetFormTemplate(ctx)
	var req dtos.SetFormActiveRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	updated, err := c.formService.SetActive(nil, shared.GetActor(ctx), form.ID, *req.IsActive)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (c *FormController) AttachRiskReferences(ctx shared.Context) error {
	form := shared.GetFormTemplate(ctx)
	var req dtos.AttachRiskReferencesRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	updated, err := c.formService.AttachRiskReferences(nil, shared.GetActor(ctx), form.ID, req.ReferenceIDs)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (c *FormController) Submit(ctx shared.Context) error {
	form := shared.GetFormTemplate(ctx)
	var req dtos.SubmitFormRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	submission, err := c.formService.Submit(nil, shared.GetActor(ctx), form.ID, req.Answers)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, submission)
}

func (c *FormController) Submissions(ctx shared.Context) error {
	form := shared.GetFormTemplate(ctx)
	page, err := c.formService.ListSubmissions(shared.GetActor(ctx), form.ID, shared.GetPageInfo(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, page)
}
