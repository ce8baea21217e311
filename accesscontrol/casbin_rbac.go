// Copyright (C) 2023 Tim Bastin, l3montree GmbH
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
package accesscontrol

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"github.com/l3montree-dev/ohsms/shared"
	"gorm.io/gorm"
)

// DefaultDomain is the only casbin domain. The permission matrix is the same
// for every organizational node, scoping happens in the ScopeResolver.
const DefaultDomain = "ohsms"

// used when RBAC_CONFIG_PATH does not point to a readable file
const defaultRBACModel = `
[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act

[role_definition]
g = _, _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub, r.dom) && r.dom == p.dom && r.obj == p.obj && r.act == p.act
`

var _ shared.AccessControl = &casbinRBAC{}
var casbinEnforcer *casbin.SyncedEnforcer

type casbinRBAC struct {
	domain   string
	enforcer *casbin.SyncedEnforcer
}

type casbinRBACProvider struct {
	enforcer *casbin.SyncedEnforcer
}

func (c casbinRBACProvider) GetDomainRBAC(domain string) shared.AccessControl {
	return &casbinRBAC{
		domain:   domain,
		enforcer: c.enforcer,
	}
}

func roleSubject(role shared.Role) string {
	return "role::" + string(role)
}

func (c *casbinRBAC) domainName() string {
	return "domain::" + c.domain
}

func (c *casbinRBAC) policies(role shared.Role, object shared.Object, actions []shared.Action) [][]string {
	policies := make([][]string, len(actions))
	for i, ac := range actions {
		policies[i] = []string{roleSubject(role), c.domainName(), "obj::" + string(object), "act::" + string(ac)}
	}
	return policies
}

func (c *casbinRBAC) InheritRole(roleWhichGetsPermissions, roleWhichProvidesPermissions shared.Role) error {
	_, err := c.enforcer.AddRoleForUserInDomain(roleSubject(roleWhichGetsPermissions), roleSubject(roleWhichProvidesPermissions), c.domainName())
	return err
}

func (c *casbinRBAC) AllowRole(role shared.Role, object shared.Object, action []shared.Action) error {
	// AddPolicies rejects the whole batch if a single rule exists already
	for _, policy := range c.policies(role, object, action) {
		if _, err := c.enforcer.AddPolicy(policy); err != nil {
			return err
		}
	}
	return nil
}

func (c *casbinRBAC) IsRoleAllowed(role shared.Role, object shared.Object, action shared.Action) (bool, error) {
	permissions, err := c.enforcer.GetImplicitPermissionsForUser(roleSubject(role), c.domainName())
	if err != nil {
		return false, err
	}

	for _, p := range permissions {
		if p[2] == "obj::"+string(object) && p[3] == "act::"+string(action) {
			return true, nil
		}
	}
	return false, nil
}

func (c *casbinRBAC) GetAllowedActions(role shared.Role, object shared.Object) ([]shared.Action, error) {
	permissions, err := c.enforcer.GetImplicitPermissionsForUser(roleSubject(role), c.domainName())
	if err != nil {
		return nil, err
	}

	actions := make([]shared.Action, 0, len(permissions))
	seen := make(map[string]struct{}, len(permissions))
	for _, p := range permissions {
		if p[2] != "obj::"+string(object) {
			continue
		}
		if _, ok := seen[p[3]]; ok {
			continue
		}
		seen[p[3]] = struct{}{}
		actions = append(actions, shared.Action(strings.TrimPrefix(p[3], "act::")))
	}
	return actions, nil
}

// NewCasbinRBACProvider builds the provider on the casbin_rule table.
func NewCasbinRBACProvider(db *gorm.DB, broker shared.PubSubBroker) (casbinRBACProvider, error) {
	enforcer, err := buildEnforcer(db, broker)
	if err != nil {
		return casbinRBACProvider{}, err
	}
	return casbinRBACProvider{
		enforcer: enforcer,
	}, nil
}

// NewInMemoryRBACProvider keeps the policy in memory only. Used by tests and
// the CLI dry runs.
func NewInMemoryRBACProvider() (casbinRBACProvider, error) {
	m, err := model.NewModelFromString(defaultRBACModel)
	if err != nil {
		return casbinRBACProvider{}, err
	}
	e, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return casbinRBACProvider{}, err
	}
	e.EnableLog(false)
	return casbinRBACProvider{enforcer: e}, nil
}

func loadRBACModel() (model.Model, error) {
	path := os.Getenv("RBAC_CONFIG_PATH")
	if path == "" {
		path = "config/rbac_model.conf"
	}
	if _, err := os.Stat(path); err != nil {
		slog.Warn("rbac model file not found, using built-in model", "path", path)
		return model.NewModelFromString(defaultRBACModel)
	}
	return model.NewModelFromFile(path)
}

func buildEnforcer(db *gorm.DB, broker shared.PubSubBroker) (*casbin.SyncedEnforcer, error) {
	if casbinEnforcer != nil {
		return casbinEnforcer, nil
	}
	a, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, err
	}

	m, err := loadRBACModel()
	if err != nil {
		return nil, fmt.Errorf("could not load rbac model: %w", err)
	}

	e, err := casbin.NewSyncedEnforcer(m, a)
	if err != nil {
		return nil, err
	}
	e.EnableLog(false)

	if broker != nil {
		// other replicas reload their policy when we change ours
		watcher := newCasbinPubSubWatcher(broker)
		if err = e.SetWatcher(watcher); err != nil {
			return nil, fmt.Errorf("could not set watcher: %w", err)
		}
		err = watcher.SetUpdateCallback(func(string) {
			if err := e.LoadPolicy(); err != nil {
				slog.Error("error while loading policy after update", "err", err)
				return
			}
			slog.Debug("policy successfully reloaded after update")
		})
		if err != nil {
			return nil, fmt.Errorf("could not set update callback: %w", err)
		}
	}

	if err = e.LoadPolicy(); err != nil {
		slog.Error("could not load policy", "err", err)
	}

	casbinEnforcer = e
	return e, nil
}
