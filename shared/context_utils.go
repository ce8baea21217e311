package shared

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
)

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

// GetActor builds the actor of the current request. Requests without a session
// produce the anonymous actor.
func GetActor(ctx Context) Actor {
	session, ok := ctx.Get("session").(AuthSession)
	if !ok {
		return Actor{IPAddress: ctx.RealIP()}
	}
	return Actor{
		UserID:      session.GetUserID(),
		DisplayName: session.GetDisplayName(),
		IPAddress:   ctx.RealIP(),
	}
}

func SetScopes(ctx Context, scopes ActorScopes) {
	ctx.Set("scopes", scopes)
}

func GetScopes(ctx Context) ActorScopes {
	scopes, ok := ctx.Get("scopes").(ActorScopes)
	if !ok {
		return ActorScopes{}
	}
	return scopes
}

func GetParam(ctx Context, param string) string {
	v := ctx.Param(param)
	if v == "" {
		fallback := ctx.Get(param)
		if fallback == nil {
			return ""
		}
		return fallback.(string)
	}
	return v
}

func GetUUIDParam(ctx Context, param string) (uuid.UUID, error) {
	raw := SanitizeParam(GetParam(ctx, param))
	if raw == "" {
		return uuid.Nil, NewFieldValidationFailed(param, "missing")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, NewFieldValidationFailed(param, fmt.Sprintf("invalid id %q", raw))
	}
	return id, nil
}

func SetIncident(ctx Context, incident models.Incident) {
	ctx.Set("incident", incident)
}

func GetIncident(ctx Context) models.Incident {
	return ctx.Get("incident").(models.Incident)
}

func SetFormTemplate(ctx Context, form models.FormTemplate) {
	ctx.Set("formTemplate", form)
}

func GetFormTemplate(ctx Context) models.FormTemplate {
	return ctx.Get("formTemplate").(models.FormTemplate)
}

type PageInfo struct {
	PageSize int `json:"pageSize"`
	Page     int `json:"page"`
}

func (p PageInfo) ApplyOnDB(db DB) DB {
	return db.Offset((p.Page - 1) * p.PageSize).Limit(p.PageSize)
}

type Paged[T any] struct {
	PageInfo
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

func NewPaged[T any](pageInfo PageInfo, total int64, data []T) Paged[T] {
	return Paged[T]{
		PageInfo: pageInfo,
		Total:    total,
		Data:     data,
	}
}

func GetPageInfo(ctx Context) PageInfo {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(ctx.QueryParam("pageSize"))
	switch {
	case pageSize > 100:
		pageSize = 100
	case pageSize <= 0:
		pageSize = 10
	}

	return PageInfo{
		Page:     page,
		PageSize: pageSize,
	}
}
