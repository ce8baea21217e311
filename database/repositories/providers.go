// Copyright (C) 2024 Tim Bastin, l3montree GmbH
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package repositories

import (
	"github.com/l3montree-dev/ohsms/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewBranchRepository, fx.As(new(shared.BranchRepository)))),
	fx.Provide(fx.Annotate(NewDepartmentRepository, fx.As(new(shared.DepartmentRepository)))),
	fx.Provide(fx.Annotate(NewSectionRepository, fx.As(new(shared.SectionRepository)))),
	fx.Provide(fx.Annotate(NewRoleRepository, fx.As(new(shared.RoleRepository)))),
	fx.Provide(fx.Annotate(NewUserRoleAssignmentRepository, fx.As(new(shared.UserRoleAssignmentRepository)))),
	fx.Provide(fx.Annotate(NewIncidentRepository, fx.As(new(shared.IncidentRepository)))),
	fx.Provide(fx.Annotate(NewIncidentEventRepository, fx.As(new(shared.IncidentEventRepository)))),
	fx.Provide(fx.Annotate(NewRiskRepository, fx.As(new(shared.RiskRepository)))),
	fx.Provide(fx.Annotate(NewRiskEventRepository, fx.As(new(shared.RiskEventRepository)))),
	fx.Provide(fx.Annotate(NewRiskNoteRepository, fx.As(new(shared.RiskNoteRepository)))),
	fx.Provide(fx.Annotate(NewRiskTaxonomyRepository, fx.As(new(shared.RiskTaxonomyRepository)))),
	fx.Provide(fx.Annotate(NewRiskReferenceRepository, fx.As(new(shared.RiskReferenceRepository)))),
	fx.Provide(fx.Annotate(NewFormTemplateRepository, fx.As(new(shared.FormTemplateRepository)))),
	fx.Provide(fx.Annotate(NewFormSubmissionRepository, fx.As(new(shared.FormSubmissionRepository)))),
	fx.Provide(fx.Annotate(NewFormEventRepository, fx.As(new(shared.FormEventRepository)))),
	fx.Provide(fx.Annotate(NewAuditLogRepository, fx.As(new(shared.AuditLogRepository)))),
	fx.Provide(fx.Annotate(NewSystemContentRepository, fx.As(new(shared.SystemContentRepository)))),
	fx.Provide(fx.Annotate(NewStatisticsRepository, fx.As(new(shared.StatisticsRepository)))),
)
