package accesscontrol

import (
	"github.com/l3montree-dev/ohsms/shared"
	"go.uber.org/fx"
)

// AccessControlModule provides the permission matrix, the scope resolver and
// the identity provider client.
var AccessControlModule = fx.Options(
	fx.Provide(func(db shared.DB, broker shared.PubSubBroker) (shared.RBACProvider, error) {
		return NewCasbinRBACProvider(db, broker)
	}),
	fx.Provide(fx.Annotate(NewScopeResolver, fx.As(new(shared.ScopeResolver)))),
	fx.Provide(NewOryAPIClient),
	fx.Provide(fx.Annotate(NewOryIdentityClient, fx.As(new(shared.IdentityClient)))),
)
