package shared

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/lmittmann/tint"
	"gorm.io/gorm"
)

type Server = *echo.Group
type MiddlewareFunc = echo.MiddlewareFunc
type Context = echo.Context
type DB = *gorm.DB

func Ptr[T any](t T) *T {
	return &t
}

func SanitizeParam(s string) string {
	// remove trailing or leading slashes
	return strings.Trim(s, "/")
}

// InitLogger initializes the logger with a tint handler.
// tint is a simple logging library that allows to add colors to the log output.
func InitLogger() {
	w := os.Stderr

	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			AddSource:  true,
			TimeFormat: time.Kitchen,
		}),
	))
}

func LoadConfig() error {
	return godotenv.Load()
}

var V = validator.New()

const DefaultSLAHours = 24

// SLAHoursFromEnv reads SLA_HOURS. Missing or non positive values fall back to
// DefaultSLAHours.
func SLAHoursFromEnv() int {
	v := os.Getenv("SLA_HOURS")
	if v == "" {
		return DefaultSLAHours
	}
	hours, err := strconv.Atoi(v)
	if err != nil || hours <= 0 {
		slog.Warn("invalid SLA_HOURS, using default", "value", v, "default", DefaultSLAHours)
		return DefaultSLAHours
	}
	return hours
}

// BootstrapPermissions seeds the permission matrix. It is idempotent: casbin
// ignores policies which already exist.
func BootstrapPermissions(rbac AccessControl) error {
	// management roles build on each other
	if err := rbac.InheritRole(RoleSectionManager, RoleEmployee); err != nil {
		return err
	}
	if err := rbac.InheritRole(RoleDepartmentManager, RoleSectionManager); err != nil {
		return err
	}
	if err := rbac.InheritRole(RoleBranchManager, RoleDepartmentManager); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleEmployee, ObjectIncident, []Action{
		ActionCreate,
	}); err != nil {
		return err
	}
	if err := rbac.AllowRole(RoleEmployee, ObjectRisk, []Action{
		ActionCreate,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleSystemStaff, ObjectIncident, []Action{
		ActionCreate,
		ActionCreateUrgent,
		ActionAssign,
	}); err != nil {
		return err
	}
	if err := rbac.AllowRole(RoleSystemStaff, ObjectFormTemplate, []Action{
		ActionCreate,
		ActionUpdate,
	}); err != nil {
		return err
	}
	if err := rbac.AllowRole(RoleSystemStaff, ObjectSystemContent, []Action{
		ActionUpdate,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleSafetyCoordinator, ObjectRisk, []Action{
		ActionCreate,
		ActionSubmit,
	}); err != nil {
		return err
	}
	if err := rbac.AllowRole(RoleSafetyCoordinator, ObjectIncident, []Action{
		ActionCreate,
		ActionAssign,
		ActionLinkRisk,
	}); err != nil {
		return err
	}
	if err := rbac.AllowRole(RoleSafetyCoordinator, ObjectRiskReference, []Action{
		ActionCreate,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleSafetyCommittee, ObjectRisk, []Action{
		ActionCreate,
		ActionApprove,
		ActionReject,
	}); err != nil {
		return err
	}
	if err := rbac.AllowRole(RoleSafetyCommittee, ObjectIncident, []Action{
		ActionCreate,
		ActionAssign,
		ActionEscalate,
		ActionLinkRisk,
	}); err != nil {
		return err
	}
	if err := rbac.AllowRole(RoleSafetyCommittee, ObjectFormTemplate, []Action{
		ActionCreate,
	}); err != nil {
		return err
	}
	if err := rbac.AllowRole(RoleSafetyCommittee, ObjectRiskReference, []Action{
		ActionCreate,
	}); err != nil {
		return err
	}
	if err := rbac.AllowRole(RoleSafetyCommittee, ObjectRiskTaxonomy, []Action{
		ActionCreate,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleDepartmentManager, ObjectRisk, []Action{
		ActionStart,
		ActionClose,
	}); err != nil {
		return err
	}
	if err := rbac.AllowRole(RoleDepartmentManager, ObjectIncident, []Action{
		ActionAssign,
		ActionEscalate,
	}); err != nil {
		return err
	}

	return nil
}
