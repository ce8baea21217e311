package middlewares

import (
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/labstack/echo/v4"
)

// IncidentMiddleware loads the incident named by :incidentID. Incidents the
// actor may not see end the request.
func IncidentMiddleware(incidentService shared.IncidentService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			incidentID, err := shared.GetUUIDParam(ctx, "incidentID")
			if err != nil {
				return err
			}
			incident, err := incidentService.Read(shared.GetActor(ctx), incidentID)
			if err != nil {
				return err
			}
			shared.SetIncident(ctx, incident)
			return next(ctx)
		}
	}
}

func FormTemplateMiddleware(formService shared.FormService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			formID, err := shared.GetUUIDParam(ctx, "formID")
			if err != nil {
				return err
			}
			form, err := formService.Read(shared.GetActor(ctx), formID)
			if err != nil {
				return err
			}
			shared.SetFormTemplate(ctx, form)
			return next(ctx)
		}
	}
}
