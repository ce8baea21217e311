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
	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
)

// ActorScopes is the resolved set of role assignments of a single user. All
// scope decisions are pure functions of it.
type ActorScopes struct {
	UserID      string
	Assignments []models.UserRoleAssignment
}

func (s ActorScopes) IsAuthenticated() bool {
	return s.UserID != ""
}

func (s ActorScopes) IsGlobal() bool {
	for _, a := range s.Assignments {
		if a.Role.IsGlobal {
			return true
		}
	}
	return false
}

func (s ActorScopes) HasRole(roleCode Role) bool {
	for _, a := range s.Assignments {
		if a.Role.Code == roleCode {
			return true
		}
	}
	return false
}

// RoleCodes returns every distinct role code the user holds.
func (s ActorScopes) RoleCodes() []Role {
	seen := make(map[string]struct{}, len(s.Assignments))
	codes := make([]Role, 0, len(s.Assignments))
	for _, a := range s.Assignments {
		if _, ok := seen[a.Role.Code]; ok {
			continue
		}
		seen[a.Role.Code] = struct{}{}
		codes = append(codes, a.Role.Code)
	}
	return codes
}

// CanAccess reports whether the user holds roleCode (any role if empty) pinned
// at node or at one of its ancestors. Global holders always pass. Unpinned
// non global assignments never match. An empty node is covered by any pinned
// assignment.
func (s ActorScopes) CanAccess(roleCode Role, node models.OrgPlacement) bool {
	if s.IsGlobal() {
		return true
	}
	for _, a := range s.Assignments {
		if roleCode != "" && a.Role.Code != roleCode {
			continue
		}
		if !a.IsPinned() {
			continue
		}
		if node.IsEmpty() || a.OrgPlacement.Covers(node) {
			return true
		}
	}
	return false
}

// CanAccessAny is CanAccess for a set of acceptable roles.
func (s ActorScopes) CanAccessAny(roleCodes []Role, node models.OrgPlacement) bool {
	for _, code := range roleCodes {
		if s.CanAccess(code, node) {
			return true
		}
	}
	return false
}

// CanViewIncident is true for global holders, the reporter, the assignee and
// anyone with scope over the placement. Secret incidents have no placement and
// are therefore only visible to global holders and assignees.
func (s ActorScopes) CanViewIncident(incident models.Incident) bool {
	if s.IsGlobal() {
		return true
	}
	if incident.IsCreatedBy(s.UserID) || incident.IsAssignedTo(s.UserID) {
		return true
	}
	if incident.OrgPlacement.IsEmpty() {
		return false
	}
	return s.CanAccess("", incident.OrgPlacement)
}

func (s ActorScopes) CanViewRisk(risk models.Risk) bool {
	if s.IsGlobal() {
		return true
	}
	if s.UserID != "" && risk.CreatedByID == s.UserID {
		return true
	}
	return s.CanAccess("", risk.Node())
}

// VisibilityFilter translates the scopes into id sets for list queries.
type VisibilityFilter struct {
	All           bool
	UserID        string
	BranchIDs     []uuid.UUID
	DepartmentIDs []uuid.UUID
	SectionIDs    []uuid.UUID
}

// HasPins reports whether at least one pinned assignment contributed.
func (f VisibilityFilter) HasPins() bool {
	return len(f.BranchIDs) > 0 || len(f.DepartmentIDs) > 0 || len(f.SectionIDs) > 0
}

func (s ActorScopes) VisibilityFilter() VisibilityFilter {
	if s.IsGlobal() {
		return VisibilityFilter{All: true, UserID: s.UserID}
	}
	f := VisibilityFilter{UserID: s.UserID}
	for _, a := range s.Assignments {
		level, id := a.OrgPlacement.MostSpecific()
		switch level {
		case models.OrgLevelSection:
			f.SectionIDs = appendUnique(f.SectionIDs, id)
		case models.OrgLevelDepartment:
			f.DepartmentIDs = appendUnique(f.DepartmentIDs, id)
		case models.OrgLevelBranch:
			f.BranchIDs = appendUnique(f.BranchIDs, id)
		}
	}
	return f
}

func appendUnique(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
