package main

import (
	"log/slog"
	"os"

	"github.com/l3montree-dev/ohsms/cmd/ohsms-cli/commands"
	"github.com/l3montree-dev/ohsms/shared"
)

func Execute() {
	err := commands.GetRootCmd().Execute()
	if err != nil {
		slog.Error("Error executing command", "err", err)
		os.Exit(1)
	}
}

func init() {
	commands.GetRootCmd().AddCommand(commands.NewMigrateCommand())
	commands.GetRootCmd().AddCommand(commands.NewSeedCommand())
	commands.GetRootCmd().AddCommand(commands.NewGrantRoleCommand())
	commands.GetRootCmd().AddCommand(commands.NewOrgCommand())
}

func main() {
	shared.InitLogger()
	Execute()
}
