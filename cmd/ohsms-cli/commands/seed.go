package commands

import (
	"log/slog"

	"github.com/l3montree-dev/ohsms/accesscontrol"
	"github.com/l3montree-dev/ohsms/database/repositories"
	"github.com/l3montree-dev/ohsms/services"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/spf13/cobra"
)

// NewSeedCommand writes the role catalogue and the permission matrix. Both
// steps are idempotent.
func NewSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed roles and permissions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db := openDatabase()

			rbacProvider, err := accesscontrol.NewCasbinRBACProvider(db, nil)
			if err != nil {
				return err
			}
			if err := shared.BootstrapPermissions(rbacProvider.GetDomainRBAC(accesscontrol.DefaultDomain)); err != nil {
				return err
			}

			roleRepository := repositories.NewRoleRepository(db)
			for _, role := range services.DefaultRoles {
				r := role
				if err := roleRepository.Upsert(nil, &r); err != nil {
					return err
				}
			}
			slog.Info("seeded roles and permissions", "roles", len(services.DefaultRoles))
			return nil
		},
	}
}
