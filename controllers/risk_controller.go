package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/l3montree-dev/ohsms/utils"
)

type RiskController struct {
	riskService       shared.RiskService
	visibilityService shared.VisibilityService
}

func NewRiskController(riskService shared.RiskService, visibilityService shared.VisibilityService) *RiskController {
	return &RiskController{
		riskService:       riskService,
		visibilityService: visibilityService,
	}
}

func (c *RiskController) Create(ctx shared.Context) error {
	var req dtos.CreateRiskRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	risk, err := c.riskService.Create(nil, shared.GetActor(ctx), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, dtos.RiskToDTO(risk))
}

func (c *RiskController) CreateFromReference(ctx shared.Context) error {
	var req dtos.CreateRiskFromReferenceRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	risk, err := c.riskService.CreateFromReference(nil, shared.GetActor(ctx), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, dtos.RiskToDTO(risk))
}

// Register is the paged risk register the actor may see.
func (c *RiskController) Register(ctx shared.Context) error {
	var filter dtos.RiskListFilter
	if err := ctx.Bind(&filter); err != nil {
		return shared.NewValidationFailed("could not decode query")
	}
	page, err := c.visibilityService.VisibleRisks(shared.GetActor(ctx), shared.GetPageInfo(ctx), filter)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, shared.NewPaged(page.PageInfo, page.Total, utils.Map(page.Data, dtos.RiskToDTO)))
}

func (c *RiskController) Read(ctx shared.Context) error {
	riskID, err := shared.GetUUIDParam(ctx, "riskID")
	if err != nil {
		return err
	}
	detail, err := c.riskService.Detail(shared.GetActor(ctx), riskID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, detail)
}

func (c *RiskController) UpdateAssessment(ctx shared.Context) error {
	riskID, err := shared.GetUUIDParam(ctx, "riskID")
	if err != nil {
		return err
	}
	var req dtos.UpdateRiskAssessmentRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	risk, err := c.riskService.UpdateAssessment(nil, shared.GetActor(ctx), riskID, req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.RiskToDTO(risk))
}

type riskTransition func(tx shared.DB, actor shared.Actor, riskID uuid.UUID, note string) (models.Risk, error)

func (c *RiskController) transition(ctx shared.Context, run riskTransition) error {
	riskID, err := shared.GetUUIDParam(ctx, "riskID")
	if err != nil {
		return err
	}
	var req dtos.RiskTransitionRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	risk, err := run(nil, shared.GetActor(ctx), riskID, req.Note)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.RiskToDTO(risk))
}

func (c *RiskController) Submit(ctx shared.Context) error {
	return c.transition(ctx, c.riskService.Submit)
}

func (c *RiskController) Approve(ctx shared.Context) error {
	return c.transition(ctx, c.riskService.Approve)
}

func (c *RiskController) Start(ctx shared.Context) error {
	return c.transition(ctx, c.riskService.Start)
}

func (c *RiskController) Close(ctx shared.Context) error {
	return c.transition(ctx, c.riskService.Close)
}

func (c *RiskController) Reject(ctx shared.Context) error {
	riskID, err := shared.GetUUIDParam(ctx, "riskID")
	if err != nil {
		return err
	}
	var req dtos.RejectRiskRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	risk, err := c.riskService.Reject(nil, shared.GetActor(ctx), riskID, req.Reason)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.RiskToDTO(risk))
}

func (c *RiskController) Notes(ctx shared.Context) error {
	riskID, err := shared.GetUUIDParam(ctx, "riskID")
	if err != nil {
		return err
	}
	notes, err := c.riskService.Notes(shared.GetActor(ctx), riskID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, notes)
}

func (c *RiskController) AddNote(ctx shared.Context) error {
	riskID, err := shared.GetUUIDParam(ctx, "riskID")
	if err != nil {
		return err
	}
	var req dtos.RiskNoteRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	note, err := c.riskService.AddNote(nil, shared.GetActor(ctx), riskID, req.Note)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, note)
}
