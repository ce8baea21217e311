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

	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/l3montree-dev/ohsms/utils"
)

type IncidentController struct {
	incidentService   shared.IncidentService
	visibilityService shared.VisibilityService
	broadcaster       shared.IncidentChangeBroadcaster
}

func NewIncidentController(incidentService shared.IncidentService, visibilityService shared.VisibilityService, broadcaster shared.IncidentChangeBroadcaster) *IncidentController {
	return &IncidentController{
		incidentService:   incidentService,
		visibilityService: visibilityService,
		broadcaster:       broadcaster,
	}
}

func (c *IncidentController) Create(ctx shared.Context) error {
	var req dtos.CreateIncidentRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	incident, err := c.incidentService.CreateNormal(nil, shared.GetActor(ctx), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, incident)
}

func (c *IncidentController) CreateUrgent(ctx shared.Context) error {
	var req dtos.CreateUrgentIncidentRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	incident, err := c.incidentService.CreateUrgent(nil, shared.GetActor(ctx), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, incident)
}

func (c *IncidentController) CreateSecret(ctx shared.Context) error {
	var req dtos.CreateSecretIncidentRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	incident, key, err := c.incidentService.CreateSecret(nil, req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, dtos.SecretIncidentCreatedResponse{
		Number:    incident.Number,
		SecretKey: key,
	})
}

func (c *IncidentController) Track(ctx shared.Context) error {
	var req dtos.TrackSecretIncidentRequest
	if err := ctx.Bind(&req); err != nil {
		return shared.NewValidationFailed("could not decode request")
	}
	incident, events, err := c.incidentService.TrackSecret(req.Token)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.SecretIncidentToStatusDTO(incident, events))
}

func (c *IncidentController) List(ctx shared.Context) error {
	var filter dtos.IncidentListFilter
	if err := ctx.Bind(&filter); err != nil {
		return shared.NewValidationFailed("could not decode query")
	}
	page, err := c.visibilityService.VisibleIncidents(shared.GetActor(ctx), shared.GetPageInfo(ctx), filter)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, page)
}

// Read expects the incident middleware to have loaded a visible incident.
func (c *IncidentController) Read(ctx shared.Context) error {
	return ctx.JSON(http.StatusOK, shared.GetIncident(ctx))
}

func (c *IncidentController) Timeline(ctx shared.Context) error {
	incident := shared.GetIncident(ctx)
	events, err := c.incidentService.Timeline(shared.GetActor(ctx), incident.ID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, utils.Map(events, dtos.IncidentEventToDTO))
}

// respond runs the post-commit side effects and writes the incident.
func (c *IncidentController) respond(ctx shared.Context, incident models.Incident, event models.IncidentEvent) error {
	c.broadcaster.Broadcast(ctx.Request().Context(), incident, event)
	return ctx.JSON(http.StatusOK, incident)
}

func (c *IncidentController) ChangeStatus(ctx shared.Context) error {
	incidentID, err := shared.GetUUIDParam(ctx, "incidentID")
	if err != nil {
		return err
	}
	var req dtos.ChangeIncidentStatusRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	incident, event, err := c.incidentService.ChangeStatus(nil, shared.GetActor(ctx), incidentID, req.Status, req.Note)
	if err != nil {
		return err
	}
	return c.respond(ctx, incident, event)
}

func (c *IncidentController) AddNote(ctx shared.Context) error {
	incidentID, err := shared.GetUUIDParam(ctx, "incidentID")
	if err != nil {
		return err
	}
	var req dtos.IncidentNoteRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	incident, event, err := c.incidentService.AddNote(nil, shared.GetActor(ctx), incidentID, req.Note)
	if err != nil {
		return err
	}
	return c.respond(ctx, incident, event)
}

func (c *IncidentController) Assign(ctx shared.Context) error {
	incidentID, err := shared.GetUUIDParam(ctx, "incidentID")
	if err != nil {
		return err
	}
	var req dtos.AssignIncidentRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	incident, event, err := c.incidentService.Assign(nil, shared.GetActor(ctx), incidentID, req.AssigneeID, req.Note)
	if err != nil {
		return err
	}
	return c.respond(ctx, incident, event)
}

func (c *IncidentController) Escalate(ctx shared.Context) error {
	incidentID, err := shared.GetUUIDParam(ctx, "incidentID")
	if err != nil {
		return err
	}
	var req dtos.EscalateIncidentRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	incident, event, err := c.incidentService.Escalate(nil, shared.GetActor(ctx), incidentID, req.Note)
	if err != nil {
		return err
	}
	return c.respond(ctx, incident, event)
}

func (c *IncidentController) LinkRisk(ctx shared.Context) error {
	incidentID, err := shared.GetUUIDParam(ctx, "incidentID")
	if err != nil {
		return err
	}
	var req dtos.LinkRiskRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	incident, event, err := c.incidentService.LinkRisk(nil, shared.GetActor(ctx), incidentID, req.RiskID)
	if err != nil {
		return err
	}
	return c.respond(ctx, incident, event)
}
