package middlewares

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/l3montree-dev/ohsms/monitoring"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

type errorBody struct {
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// ErrorResponse maps an error returned by a handler to status code and body.
// Domain errors keep their message, everything else becomes a bare 500.
func ErrorResponse(err error) (int, any) {
	var validation *shared.ValidationFailedError
	var denied *shared.PermissionDeniedError
	var transition *shared.InvalidTransitionError
	var notFound *shared.NotFoundError
	var he *echo.HTTPError

	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest, errorBody{Message: validation.Message, Details: validation.Details}
	case errors.As(err, &denied):
		return http.StatusForbidden, errorBody{Message: denied.Message}
	case errors.As(err, &transition):
		return http.StatusConflict, errorBody{Message: transition.Message, Details: map[string]string{"from": transition.From, "to": transition.To}}
	case errors.As(err, &notFound):
		return http.StatusNotFound, errorBody{Message: notFound.Message}
	case errors.Is(err, shared.ErrWriteNotPermitted):
		return http.StatusInternalServerError, errorBody{Message: http.StatusText(http.StatusInternalServerError)}
	case errors.As(err, &he):
		if msg, ok := he.Message.(string); ok {
			return he.Code, errorBody{Message: msg}
		}
		return he.Code, he.Message
	}
	return http.StatusInternalServerError, errorBody{Message: http.StatusText(http.StatusInternalServerError)}
}

func errorHandler(err error, ctx echo.Context) {
	// do the logging straight inside the error handler
	// this keeps controller methods clean
	slog.Error(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL)

	if ctx.Response().Committed {
		return
	}

	code, body := ErrorResponse(err)
	var he *echo.HTTPError
	if code >= http.StatusInternalServerError && !errors.As(err, &he) {
		monitoring.Alert("unhandled error in request", err)
	}

	if ctx.Request().Method == http.MethodHead {
		err = ctx.NoContent(code)
	} else {
		err = ctx.JSON(code, body)
	}
	if err != nil {
		slog.Error("could not send error response", "error", err)
	}
}

func registerMiddlewares(e *echo.Echo) {
	e.Pre(middleware.AddTrailingSlash())

	origin := os.Getenv("FRONTEND_URL")
	if origin == "" {
		origin = "http://localhost:3000"
	}
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins:     []string{origin},
			AllowHeaders:     middleware.DefaultCORSConfig.AllowHeaders,
			AllowMethods:     middleware.DefaultCORSConfig.AllowMethods,
			AllowCredentials: true,
		},
	))

	e.Use(otelecho.Middleware("ohsms"))
	e.Use(logger())
	e.Use(recovermiddleware())

	e.HTTPErrorHandler = errorHandler
}

func Server() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(99)
	registerMiddlewares(e)
	return e
}
