package main

import (
	"fmt"
	"os"

	"curr-backend/internal/cli"
	"curr-backend/internal/config"
	"curr-backend/internal/database"
	apperrors "curr-backend/internal/errors"
	"curr-backend/internal/logger"
	"curr-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

func main() {
	cli.LoadEnv()
	if err := newSeedCommand(cli.Connect).Execute(); err != nil {
		os.Exit(1)
	}
}

func newSeedCommand(connect cli.ConnectFunc) *cobra.Command {
	var (
		name     string
		level    int
		accounts bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create an organization with its unit hierarchy and ledger accounts",
		Example: `  seed --name "My Organization" --level 2 --accounts
  seed --level 3`,
		Args: cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validator.New().Var(level, "min=0,max=3"); err != nil {
				return apperrors.ErrInvalidLevel
			}

			log := logger.New()
			log.WithFields(map[string]interface{}{
				"name":     name,
				"level":    level,
				"accounts": accounts,
			}).Info("Starting CURR database seeding")

			db, err := connect()
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer database.Close(db)

			initializer, err := service.NewOrganizationInitializerForDB(db, log)
			if err != nil {
				return err
			}

			result, err := initializer.Initialize(service.InitializeOptions{
				Name:          name,
				ChildOrgLevel: level,
				SeedAccounts:  accounts,
			})
			if err != nil {
				log.WithError(err).Error("Seeding failed")
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Organization: %s (%s)\n", result.Organization.Name, result.Organization.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Child organizations created: %d\n", result.ChildOrganizations)
			fmt.Fprintf(cmd.OutOrStdout(), "Accounts created: %d\n", result.Accounts)
			fmt.Fprintf(cmd.OutOrStdout(), "Total records created: %d\n", result.TotalRecordsCreated)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", config.DefaultOrganizationName, "Organization name")
	cmd.Flags().IntVar(&level, "level", 0, "Child organization level (0-3)")
	cmd.Flags().BoolVar(&accounts, "accounts", false, "Seed accounts for the organization")
	return cmd
}
