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

package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/ory/client-go"
)

type Role = string

const (
	RoleSystemAdmin       Role = "system_admin"
	RoleTopManagement     Role = "top_management"
	RoleSystemStaff       Role = "system_staff"
	RoleSafetyCommittee   Role = "safety_committee"
	RoleBranchManager     Role = "branch_manager"
	RoleDepartmentManager Role = "department_manager"
	RoleSectionManager    Role = "section_manager"
	RoleSafetyCoordinator Role = "safety_coordinator"
	RoleEmployee          Role = "employee"
	RoleExternal          Role = "external"
)

type Object string

const (
	ObjectIncident       Object = "incident"
	ObjectRisk           Object = "risk"
	ObjectRiskTaxonomy   Object = "risk_taxonomy"
	ObjectRiskReference  Object = "risk_reference"
	ObjectFormTemplate   Object = "form_template"
	ObjectOrg            Object = "org"
	ObjectRoleAssignment Object = "role_assignment"
	ObjectSystemContent  Object = "system_content"
	ObjectAuditLog       Object = "audit_log"
)

type Action string

const (
	ActionCreate       Action = "create"
	ActionRead         Action = "read"
	ActionUpdate       Action = "update"
	ActionDelete       Action = "delete"
	ActionCreateUrgent Action = "create_urgent"
	ActionAssign       Action = "assign"
	ActionEscalate     Action = "escalate"
	ActionLinkRisk     Action = "link_risk"
	ActionSubmit       Action = "submit"
	ActionApprove      Action = "approve"
	ActionReject       Action = "reject"
	ActionStart        Action = "start"
	ActionClose        Action = "close"
)

type AuthSession interface {
	GetUserID() string
	GetDisplayName() string
}

// AccessControl is the permission matrix. It only knows which role may do
// what. Which user holds which role where lives in the assignment table.
type AccessControl interface {
	AllowRole(role Role, object Object, action []Action) error
	InheritRole(roleWhichGetsPermissions, roleWhichProvidesPermissions Role) error
	IsRoleAllowed(role Role, object Object, action Action) (bool, error)
	GetAllowedActions(role Role, object Object) ([]Action, error)
}

type RBACProvider interface {
	GetDomainRBAC(domain string) AccessControl
}

type ScopeResolver interface {
	Resolve(userID string) ActorScopes
	IsGlobal(userID string) bool
	HasRole(userID string, roleCode Role) bool
	ResolveScopes(userID string) []models.UserRoleAssignment
	CanAccess(userID string, roleCode Role, node models.OrgPlacement) bool
	IsPermitted(scopes ActorScopes, object Object, action Action) bool
	IsPermittedAt(scopes ActorScopes, object Object, action Action, node models.OrgPlacement) bool
	Invalidate(userID string)
}

type Transactioner interface {
	Transaction(func(tx DB) error) error
	GetDB(tx DB) DB
	Begin() DB
}

type BranchRepository interface {
	Transactioner
	Create(tx DB, branch *models.Branch) error
	Read(id uuid.UUID) (models.Branch, error)
	Tree() ([]models.Branch, error)
}

type DepartmentRepository interface {
	Create(tx DB, department *models.Department) error
	Read(id uuid.UUID) (models.Department, error)
	ListByBranch(branchID uuid.UUID) ([]models.Department, error)
}

type SectionRepository interface {
	Create(tx DB, section *models.Section) error
	Read(id uuid.UUID) (models.Section, error)
	ListByDepartment(departmentID uuid.UUID) ([]models.Section, error)
}

type RoleRepository interface {
	Transactioner
	All() ([]models.Role, error)
	ReadByCode(code string) (models.Role, error)
	Upsert(tx DB, role *models.Role) error
}

type UserRoleAssignmentRepository interface {
	Transactioner
	Create(tx DB, assignment *models.UserRoleAssignment) error
	Read(id uuid.UUID) (models.UserRoleAssignment, error)
	Delete(tx DB, id uuid.UUID) error
	ListByUser(userID string) ([]models.UserRoleAssignment, error)
}

type IncidentRepository interface {
	Transactioner
	Create(tx DB, permit WritePermit, incident *models.Incident) error
	Save(tx DB, permit WritePermit, incident *models.Incident) error
	Read(id uuid.UUID) (models.Incident, error)
	ReadForUpdate(tx DB, id uuid.UUID) (models.Incident, error)
	ReadBySecretKey(secretKey string) (models.Incident, error)
	NextNumber(tx DB, year int) (int, error)
	ListVisible(filter VisibilityFilter, pageInfo PageInfo, query dtos.IncidentListFilter) (Paged[models.Incident], error)
}

type IncidentEventRepository interface {
	Create(tx DB, event *models.IncidentEvent) error
	ListByIncident(incidentID uuid.UUID) ([]models.IncidentEvent, error)
}

type RiskRepository interface {
	Transactioner
	Create(tx DB, permit WritePermit, risk *models.Risk) error
	Save(tx DB, permit WritePermit, risk *models.Risk) error
	ReplaceAffectedGroups(tx DB, permit WritePermit, risk *models.Risk, groups []models.AffectedGroup) error
	Read(id uuid.UUID) (models.Risk, error)
	ReadForUpdate(tx DB, id uuid.UUID) (models.Risk, error)
	ListVisible(filter VisibilityFilter, pageInfo PageInfo, query dtos.RiskListFilter) (Paged[models.Risk], error)
}

type RiskEventRepository interface {
	Create(tx DB, event *models.RiskEvent) error
	ListByRisk(riskID uuid.UUID) ([]models.RiskEvent, error)
}

type RiskNoteRepository interface {
	Create(tx DB, note *models.RiskNote) error
	ListByRisk(riskID uuid.UUID) ([]models.RiskNote, error)
}

type RiskTaxonomyRepository interface {
	Transactioner
	CreateCategory(tx DB, category *models.RiskCategory) error
	CreateSubCategory(tx DB, subCategory *models.RiskSubCategory) error
	CreateCause(tx DB, cause *models.RiskCause) error
	CreateAffectedGroup(tx DB, group *models.AffectedGroup) error

	ReadCategory(id uuid.UUID) (models.RiskCategory, error)
	ReadSubCategory(id uuid.UUID) (models.RiskSubCategory, error)
	ReadCause(id uuid.UUID) (models.RiskCause, error)

	AllCategories() ([]models.RiskCategory, error)
	ListSubCategories(categoryID uuid.UUID) ([]models.RiskSubCategory, error)
	ListCauses(subCategoryID uuid.UUID) ([]models.RiskCause, error)
	AllAffectedGroups() ([]models.AffectedGroup, error)
	ListAffectedGroups(ids []uuid.UUID) ([]models.AffectedGroup, error)
}

type RiskReferenceRepository interface {
	Transactioner
	Create(tx DB, reference *models.RiskReference) error
	Read(id uuid.UUID) (models.RiskReference, error)
	ListActive() ([]models.RiskReference, error)
	ListActiveByIDs(ids []uuid.UUID) ([]models.RiskReference, error)
}

type FormTemplateRepository interface {
	Transactioner
	Create(tx DB, permit WritePermit, form *models.FormTemplate) error
	Save(tx DB, permit WritePermit, form *models.FormTemplate) error
	CreateField(tx DB, permit WritePermit, field *models.FormField) error
	ReplaceRiskReferences(tx DB, permit WritePermit, form *models.FormTemplate, references []models.RiskReference) error
	Read(id uuid.UUID) (models.FormTemplate, error)
	List(pageInfo PageInfo, onlyActive bool) (Paged[models.FormTemplate], error)
}

type FormSubmissionRepository interface {
	Create(tx DB, permit WritePermit, submission *models.FormSubmission) error
	ListByForm(formID uuid.UUID, pageInfo PageInfo) (Paged[models.FormSubmission], error)
}

type FormEventRepository interface {
	Create(tx DB, event *models.FormEvent) error
}

type AuditLogRepository interface {
	CreateInSavepoint(tx DB, entry *models.AuditLog) error
	List(pageInfo PageInfo, filter dtos.AuditLogFilter) (Paged[models.AuditLog], error)
}

type SystemContentRepository interface {
	Transactioner
	ReadByType(contentType models.SystemContentType) (models.SystemContent, error)
	Upsert(tx DB, content *models.SystemContent) error
}

type StatisticsRepository interface {
	CountIncidents(filter VisibilityFilter, since *time.Time) (int64, error)
	IncidentsByStatus(filter VisibilityFilter) ([]dtos.CountByKey, error)
	IncidentsByType(filter VisibilityFilter) ([]dtos.CountByKey, error)
	TopIncidentNodes(filter VisibilityFilter, level models.OrgLevel, limit int) ([]dtos.CountByKey, error)
	IncidentTrend(filter VisibilityFilter, since time.Time) ([]dtos.CountByDay, error)
	AverageIncidentResponseSeconds(filter VisibilityFilter) (*float64, error)
	IncidentSLACounts(filter VisibilityFilter, thresholdHours int) (within int64, total int64, err error)
	LastIncidentEventAt(filter VisibilityFilter) (*time.Time, error)

	CountRisks(filter VisibilityFilter, since *time.Time) (int64, error)
	RisksByStatus(filter VisibilityFilter) ([]dtos.CountByKey, error)
	RisksByCategory(filter VisibilityFilter, limit int) ([]dtos.CountByKey, error)
	RiskDistribution(filter VisibilityFilter) (dtos.RiskDistribution, error)
	RiskTrend(filter VisibilityFilter, since time.Time) ([]dtos.CountByDay, error)

	CountFormTemplates(onlyActive bool) (int64, error)
	CountFormSubmissions(since *time.Time) (int64, error)
	FormEventsByAction(since time.Time) ([]dtos.CountByKey, error)
	LatestFormSubmissions(limit int) ([]dtos.FormSubmissionSummary, error)
}

type AuditLogService interface {
	Log(tx DB, entry AuditEntry)
	List(pageInfo PageInfo, filter dtos.AuditLogFilter) (Paged[models.AuditLog], error)
}

type OrgService interface {
	CreateBranch(actor Actor, req dtos.CreateOrgNodeRequest) (models.Branch, error)
	CreateDepartment(actor Actor, branchID uuid.UUID, req dtos.CreateOrgNodeRequest) (models.Department, error)
	CreateSection(actor Actor, departmentID uuid.UUID, req dtos.CreateOrgNodeRequest) (models.Section, error)
	Tree() ([]models.Branch, error)
	NormalizePlacement(placement models.OrgPlacement) (models.OrgPlacement, error)
}

type RoleAssignmentService interface {
	Roles() ([]models.Role, error)
	Assign(actor Actor, userID string, req dtos.AssignRoleRequest) (models.UserRoleAssignment, error)
	Revoke(actor Actor, assignmentID uuid.UUID) error
	ListForUser(actor Actor, userID string) ([]models.UserRoleAssignment, error)
	SeedRoles() error
}

type IncidentService interface {
	CreateNormal(tx DB, actor Actor, req dtos.CreateIncidentRequest) (models.Incident, error)
	CreateUrgent(tx DB, actor Actor, req dtos.CreateUrgentIncidentRequest) (models.Incident, error)
	CreateSecret(tx DB, req dtos.CreateSecretIncidentRequest) (models.Incident, string, error)
	ChangeStatus(tx DB, actor Actor, incidentID uuid.UUID, newStatus models.IncidentStatus, note string) (models.Incident, models.IncidentEvent, error)
	AddNote(tx DB, actor Actor, incidentID uuid.UUID, note string) (models.Incident, models.IncidentEvent, error)
	Assign(tx DB, actor Actor, incidentID uuid.UUID, assigneeID string, note string) (models.Incident, models.IncidentEvent, error)
	Escalate(tx DB, actor Actor, incidentID uuid.UUID, note string) (models.Incident, models.IncidentEvent, error)
	LinkRisk(tx DB, actor Actor, incidentID uuid.UUID, riskID uuid.UUID) (models.Incident, models.IncidentEvent, error)
	TrackSecret(token string) (models.Incident, []models.IncidentEvent, error)

	Read(actor Actor, incidentID uuid.UUID) (models.Incident, error)
	Timeline(actor Actor, incidentID uuid.UUID) ([]models.IncidentEvent, error)
}

type VisibilityService interface {
	VisibleIncidents(actor Actor, pageInfo PageInfo, query dtos.IncidentListFilter) (Paged[models.Incident], error)
	CanViewIncident(actor Actor, incident models.Incident) bool
	VisibleRisks(actor Actor, pageInfo PageInfo, query dtos.RiskListFilter) (Paged[models.Risk], error)
	CanViewRisk(actor Actor, risk models.Risk) bool
}

type RiskService interface {
	Create(tx DB, actor Actor, req dtos.CreateRiskRequest) (models.Risk, error)
	CreateFromReference(tx DB, actor Actor, req dtos.CreateRiskFromReferenceRequest) (models.Risk, error)
	UpdateAssessment(tx DB, actor Actor, riskID uuid.UUID, req dtos.UpdateRiskAssessmentRequest) (models.Risk, error)
	Submit(tx DB, actor Actor, riskID uuid.UUID, note string) (models.Risk, error)
	Approve(tx DB, actor Actor, riskID uuid.UUID, note string) (models.Risk, error)
	Reject(tx DB, actor Actor, riskID uuid.UUID, reason string) (models.Risk, error)
	Start(tx DB, actor Actor, riskID uuid.UUID, note string) (models.Risk, error)
	Close(tx DB, actor Actor, riskID uuid.UUID, note string) (models.Risk, error)
	AddNote(tx DB, actor Actor, riskID uuid.UUID, note string) (models.RiskNote, error)

	Detail(actor Actor, riskID uuid.UUID) (dtos.RiskDetailDTO, error)
	Notes(actor Actor, riskID uuid.UUID) ([]models.RiskNote, error)
}

type RiskTaxonomyService interface {
	CreateCategory(actor Actor, req dtos.CreateRiskCategoryRequest) (models.RiskCategory, error)
	CreateSubCategory(actor Actor, categoryID uuid.UUID, req dtos.CreateNamedTaxonomyRequest) (models.RiskSubCategory, error)
	CreateCause(actor Actor, subCategoryID uuid.UUID, req dtos.CreateNamedTaxonomyRequest) (models.RiskCause, error)
	CreateAffectedGroup(actor Actor, req dtos.CreateNamedTaxonomyRequest) (models.AffectedGroup, error)
	Categories() ([]models.RiskCategory, error)
	SubCategories(categoryID uuid.UUID) ([]models.RiskSubCategory, error)
	Causes(subCategoryID uuid.UUID) ([]models.RiskCause, error)
	AffectedGroups() ([]models.AffectedGroup, error)
	ValidateChain(categoryID, subCategoryID, causeID uuid.UUID) error
	ResolveAffectedGroups(ids []uuid.UUID) ([]models.AffectedGroup, error)
}

type RiskReferenceService interface {
	Create(actor Actor, req dtos.CreateRiskReferenceRequest) (models.RiskReference, error)
	ListActive() ([]models.RiskReference, error)
}

type FormService interface {
	CreateTemplate(tx DB, actor Actor, req dtos.CreateFormTemplateRequest) (models.FormTemplate, error)
	AddField(tx DB, actor Actor, formID uuid.UUID, req dtos.AddFormFieldRequest) (models.FormField, error)
	SetActive(tx DB, actor Actor, formID uuid.UUID, active bool) (models.FormTemplate, error)
	AttachRiskReferences(tx DB, actor Actor, formID uuid.UUID, referenceIDs []uuid.UUID) (models.FormTemplate, error)
	Submit(tx DB, actor Actor, formID uuid.UUID, answers []dtos.FormAnswerInput) (models.FormSubmission, error)

	Read(actor Actor, formID uuid.UUID) (models.FormTemplate, error)
	List(actor Actor, pageInfo PageInfo) (Paged[models.FormTemplate], error)
	ListSubmissions(actor Actor, formID uuid.UUID, pageInfo PageInfo) (Paged[models.FormSubmission], error)
}

type DashboardService interface {
	Dashboard(ctx context.Context, actor Actor) (dtos.DashboardDTO, error)
	IncidentKPIs(ctx context.Context, actor Actor) (dtos.IncidentKPIs, error)
	RiskKPIs(ctx context.Context, actor Actor) (dtos.RiskKPIs, error)
	FormKPIs(ctx context.Context, actor Actor) (dtos.FormKPIs, error)
}

type SystemContentService interface {
	Get(contentType models.SystemContentType) (models.SystemContent, error)
	Upsert(actor Actor, contentType models.SystemContentType, req dtos.UpsertSystemContentRequest) (models.SystemContent, error)
}

// IncidentChangeBroadcaster runs the post-commit side effects of an incident
// mutation. It never fails the request.
type IncidentChangeBroadcaster interface {
	Broadcast(ctx context.Context, incident models.Incident, event models.IncidentEvent)
}

// EscalationNotifier runs after the escalation committed. Failures never reach
// the caller.
type EscalationNotifier interface {
	NotifyEscalation(ctx context.Context, incident models.Incident, event models.IncidentEvent)
}

type IdentityClient interface {
	GetIdentityFromCookie(ctx context.Context, cookie string) (client.Identity, error)
}
