package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/l3montree-dev/ohsms/database/repositories"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/services"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/l3montree-dev/ohsms/utils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

func newOrgService(db shared.DB) *services.OrgService {
	// the cli never checks permissions, NormalizePlacement and ImportTree do not need a resolver
	return services.NewOrgService(
		repositories.NewBranchRepository(db),
		repositories.NewDepartmentRepository(db),
		repositories.NewSectionRepository(db),
		nil,
		services.NewAuditLogService(repositories.NewAuditLogRepository(db)),
	)
}

func NewOrgCommand() *cobra.Command {
	org := &cobra.Command{
		Use:   "org",
		Short: "Inspect and import the organizational hierarchy",
	}
	org.AddCommand(newOrgTreeCommand(), newOrgImportCommand())
	return org
}

func newOrgTreeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print all branches, departments and sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			branches, err := newOrgService(openDatabase()).Tree()
			if err != nil {
				return err
			}
			printOrgTree(cmd, utils.Map(branches, dtos.BranchToDTO))
			return nil
		},
	}
}

func printOrgTree(cmd *cobra.Command, branches []dtos.BranchDTO) {
	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.AppendHeader(table.Row{"Branch", "Department", "Section", "ID"})
	blue := text.FgBlue

	for _, b := range branches {
		tw.AppendRow(table.Row{blue.Sprint(b.Code), "", "", b.ID})
		for _, d := range b.Departments {
			tw.AppendRow(table.Row{"", d.Code, "", d.ID})
			for _, s := range d.Sections {
				tw.AppendRow(table.Row{"", "", s.Code, s.ID})
			}
		}
	}
	tw.SetStyle(table.StyleLight)
	tw.Render()
}

func newOrgImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Create branches, departments and sections from a yaml file",
		Long: `Creates every node of the file in one transaction. Example:

branches:
  - name: Hamburg
    departments:
      - name: Logistics
        sections: [Cold Storage, Loading Dock]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var tree dtos.OrgTreeImport
			if err := yaml.UnmarshalStrict(raw, &tree); err != nil {
				return fmt.Errorf("could not parse %s: %w", args[0], err)
			}
			if len(tree.Branches) == 0 {
				return fmt.Errorf("%s contains no branches", args[0])
			}

			created, err := newOrgService(openDatabase()).ImportTree(shared.Actor{DisplayName: "ohsms-cli"}, tree)
			if err != nil {
				return err
			}
			slog.Info("imported org tree", "nodes", created)
			return nil
		},
	}
}
