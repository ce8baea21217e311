package controllers

import (
	"net/http"

	"github.com/l3montree-dev/ohsms/shared"
)

type DashboardController struct {
	dashboardService shared.DashboardService
}

func NewDashboardController(dashboardService shared.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

func (c *DashboardController) Overview(ctx shared.Context) error {
	dashboard, err := c.dashboardService.Dashboard(ctx.Request().Context(), shared.GetActor(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dashboard)
}

func (c *DashboardController) Incidents(ctx shared.Context) error {
	kpis, err := c.dashboardService.IncidentKPIs(ctx.Request().Context(), shared.GetActor(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, kpis)
}

func (c *DashboardController) Risks(ctx shared.Context) error {
	kpis, err := c.dashboardService.RiskKPIs(ctx.Request().Context(), shared.GetActor(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, kpis)
}

func (c *DashboardController) Forms(ctx shared.Context) error {
	kpis, err := c.dashboardService.FormKPIs(ctx.Request().Context(), shared.GetActor(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, kpis)
}
