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

package accesscontrol

import (
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/shared"
)

const (
	scopeCacheSize = 1024
	// other replicas do not see our invalidations, the ttl bounds how long
	// they may act on revoked assignments
	scopeCacheTTL = time.Minute
)

type scopeResolver struct {
	assignmentRepository shared.UserRoleAssignmentRepository
	rbac                 shared.AccessControl
	cache                *expirable.LRU[string, []models.UserRoleAssignment]
}

var _ shared.ScopeResolver = &scopeResolver{}

func NewScopeResolver(assignmentRepository shared.UserRoleAssignmentRepository, rbacProvider shared.RBACProvider) *scopeResolver {
	return &scopeResolver{
		assignmentRepository: assignmentRepository,
		rbac:                 rbacProvider.GetDomainRBAC(DefaultDomain),
		cache:                expirable.NewLRU[string, []models.UserRoleAssignment](scopeCacheSize, nil, scopeCacheTTL),
	}
}

// ResolveScopes never fails. A store error yields no assignments.
func (r *scopeResolver) ResolveScopes(userID string) []models.UserRoleAssignment {
	if userID == "" {
		return nil
	}
	if cached, ok := r.cache.Get(userID); ok {
		return cached
	}

	assignments, err := r.assignmentRepository.ListByUser(userID)
	if err != nil {
		slog.Error("could not resolve role assignments, denying access", "userID", userID, "err", err)
		return nil
	}
	r.cache.Add(userID, assignments)
	return assignments
}

func (r *scopeResolver) Resolve(userID string) shared.ActorScopes {
	return shared.ActorScopes{
		UserID:      userID,
		Assignments: r.ResolveScopes(userID),
	}
}

func (r *scopeResolver) IsGlobal(userID string) bool {
	return r.Resolve(userID).IsGlobal()
}

func (r *scopeResolver) HasRole(userID string, roleCode shared.Role) bool {
	return r.Resolve(userID).HasRole(roleCode)
}

func (r *scopeResolver) CanAccess(userID string, roleCode shared.Role, node models.OrgPlacement) bool {
	return r.Resolve(userID).CanAccess(roleCode, node)
}

// IsPermitted asks the permission matrix whether any held role may run action
// on object. Global holders are always permitted.
func (r *scopeResolver) IsPermitted(scopes shared.ActorScopes, object shared.Object, action shared.Action) bool {
	if scopes.IsGlobal() {
		return true
	}
	for _, role := range scopes.RoleCodes() {
		allowed, err := r.rbac.IsRoleAllowed(role, object, action)
		if err != nil {
			slog.Error("could not check permission", "role", role, "object", object, "action", action, "err", err)
			continue
		}
		if allowed {
			return true
		}
	}
	return false
}

// IsPermittedAt additionally requires that one of the permitted roles is
// pinned over node.
func (r *scopeResolver) IsPermittedAt(scopes shared.ActorScopes, object shared.Object, action shared.Action, node models.OrgPlacement) bool {
	if scopes.IsGlobal() {
		return true
	}
	for _, role := range scopes.RoleCodes() {
		allowed, err := r.rbac.IsRoleAllowed(role, object, action)
		if err != nil {
			slog.Error("could not check permission", "role", role, "object", object, "action", action, "err", err)
			continue
		}
		if allowed && scopes.CanAccess(role, node) {
			return true
		}
	}
	return false
}

func (r *scopeResolver) Invalidate(userID string) {
	r.cache.Remove(userID)
}
