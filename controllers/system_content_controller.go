package controllers

import (
	"net/http"

	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/shared"
)

type SystemContentController struct {
	systemContentService shared.SystemContentService
	auditLogService      shared.AuditLogService
}

func NewSystemContentController(systemContentService shared.SystemContentService, auditLogService shared.AuditLogService) *SystemContentController {
	return &SystemContentController{
		systemContentService: systemContentService,
		auditLogService:      auditLogService,
	}
}

func (c *SystemContentController) Read(ctx shared.Context) error {
	content, err := c.systemContentService.Get(models.SystemContentType(ctx.Param("contentType")))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, content)
}

func (c *SystemContentController) Upsert(ctx shared.Context) error {
	var req dtos.UpsertSystemContentRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	content, err := c.systemContentService.Upsert(shared.GetActor(ctx), models.SystemContentType(ctx.Param("contentType")), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, content)
}

// AuditLog is mounted behind the audit_log:read permission.
func (c *SystemContentController) AuditLog(ctx shared.Context) error {
	var filter dtos.AuditLogFilter
	if err := ctx.Bind(&filter); err != nil {
		return shared.NewValidationFailed("could not decode query")
	}
	page, err := c.auditLogService.List(shared.GetPageInfo(ctx), filter)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, page)
}
