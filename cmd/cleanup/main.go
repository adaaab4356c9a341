package main

import (
	"fmt"
	"os"

	"curr-backend/internal/cli"
	"curr-backend/internal/database"
	apperrors "curr-backend/internal/errors"
	"curr-backend/internal/logger"
	"curr-backend/internal/service"

	"github.com/spf13/cobra"
)

func main() {
	cli.LoadEnv()
	if err := newCleanupCommand(cli.Connect).Execute(); err != nil {
		os.Exit(1)
	}
}

func newCleanupCommand(connect cli.ConnectFunc) *cobra.Command {
	var (
		confirm bool
		dryRun  bool
	)

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Remove all accounts and organizations from the database",
		Example: `  cleanup --dry-run
  cleanup --confirm`,
		Args: cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Checked before connecting so a bare invocation never touches the database.
			if !confirm && !dryRun {
				fmt.Fprintln(cmd.ErrOrStderr(), "Use --help for more information")
				return apperrors.ErrCleanupNotConfirmed
			}

			log := logger.New()
			log.WithFields(map[string]interface{}{
				"dry_run":   dryRun,
				"confirmed": confirm,
			}).Info("Starting CURR database cleanup")

			db, err := connect()
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer database.Close(db)

			report, err := service.NewCleanerForDB(db, log).Run(dryRun)
			if err != nil {
				log.WithError(err).Error("Cleanup failed")
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Accounts: %d\n", report.Accounts)
			fmt.Fprintf(out, "Organizations: %d\n", report.Organizations)
			if report.DryRun {
				fmt.Fprintln(out, "DRY RUN - no data was deleted")
				return nil
			}
			fmt.Fprintf(out, "Deleted accounts: %d\n", report.DeletedAccounts)
			fmt.Fprintf(out, "Deleted organizations: %d\n", report.DeletedOrganizations)
			fmt.Fprintf(out, "Remaining: %d accounts, %d organizations\n", report.RemainingAccounts, report.RemainingOrgs)
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false, "Confirm deletion (required for actual cleanup)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be deleted without deleting")
	return cmd
}
