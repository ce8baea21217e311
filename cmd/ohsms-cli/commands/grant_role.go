package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/database/repositories"
	"github.com/l3montree-dev/ohsms/services"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/spf13/cobra"
)

// NewGrantRoleCommand assigns a role without a permission check. It exists to
// create the first system admin.
func NewGrantRoleCommand() *cobra.Command {
	grant := cobra.Command{
		Use:   "grant-role <userID> <roleCode>",
		Short: "Assign a role to a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, roleCode := args[0], args[1]
			placement, err := placementFromFlags(cmd)
			if err != nil {
				return err
			}

			db := openDatabase()
			placement, err = newOrgService(db).NormalizePlacement(placement)
			if err != nil {
				return err
			}
			roleRepository := repositories.NewRoleRepository(db)
			assignmentRepository := repositories.NewUserRoleAssignmentRepository(db)
			auditLogService := services.NewAuditLogService(repositories.NewAuditLogRepository(db))

			role, err := roleRepository.ReadByCode(roleCode)
			if err != nil {
				return fmt.Errorf("could not find role %s: %w", roleCode, err)
			}
			if role.IsGlobal && !placement.IsEmpty() {
				return fmt.Errorf("global role %s cannot be pinned to an org node", roleCode)
			}

			assignment := models.UserRoleAssignment{
				UserID:       userID,
				RoleID:       role.ID,
				OrgPlacement: placement,
				AssignedAt:   time.Now(),
			}
			err = assignmentRepository.Transaction(func(tx shared.DB) error {
				if err := assignmentRepository.Create(tx, &assignment); err != nil {
					return err
				}
				auditLogService.Log(tx, shared.AuditEntry{
					Actor:       shared.Actor{DisplayName: "ohsms-cli"},
					Action:      models.AuditActionCreate,
					ModelName:   "user_role_assignment",
					ObjectID:    assignment.ID.String(),
					Description: fmt.Sprintf("assigned role %s to user %s", role.Code, userID),
				})
				return nil
			})
			if err != nil {
				return err
			}
			slog.Info("role granted", "user", userID, "role", roleCode, "assignment", assignment.ID)
			return nil
		},
	}
	grant.Flags().String("branch", "", "branch id")
	grant.Flags().String("department", "", "department id")
	grant.Flags().String("section", "", "section id")
	return &grant
}

func placementFromFlags(cmd *cobra.Command) (models.OrgPlacement, error) {
	var placement models.OrgPlacement
	for flag, target := range map[string]**uuid.UUID{
		"branch":     &placement.BranchID,
		"department": &placement.DepartmentID,
		"section":    &placement.SectionID,
	} {
		raw, err := cmd.Flags().GetString(flag)
		if err != nil {
			return placement, err
		}
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return placement, fmt.Errorf("invalid %s id %q: %w", flag, raw, err)
		}
		*target = &id
	}
	return placement, nil
}
