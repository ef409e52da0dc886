package cmd

import (
	"context"
	"fmt"

	"inventory-manager/core/storage"
	"inventory-manager/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on storage and database",
	Long:  `Checks if the storage bucket has the required folder structure and the database schema matches the inventory models.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// serverCmd represents the integrity server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Check the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// linksCmd represents the integrity links command
var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "Check linked third-party barcodes",
	Long:  `Reports linked barcodes whose stored hash no longer matches their data, or that are linked to several records.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, serverCmd, linksCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Fix missing folders")
}

func runIntegrityChecks(ctx context.Context, runStructure, runServer, runLinks bool) error {
	env, err := loadEnvironment(false)
	if err != nil {
		return err
	}
	logg := env.logger
	defer logg.Sync()

	store, err := storage.NewClient(env.cfg.Storage)
	if err != nil {
		return err
	}

	svc := integrity.NewService(store, env.cfg.Storage, logg, env.db)
	failed := false

	if runStructure {
		logg.Info("Checking folder structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}

		switch {
		case len(missing) == 0:
			logg.Info("Structure is intact.")
		case fixFlag:
			logg.Info("Fixing missing folders...", zap.Strings("missing", missing))
			if err := svc.FixStructure(ctx, missing); err != nil {
				return fmt.Errorf("failed to fix structure: %w", err)
			}
			logg.Info("Structure fixed successfully.")
		default:
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))
			logg.Info("Run 'integrity structure --fix' to create missing folders.")
			failed = true
		}
	}

	if runServer {
		logg.Info("Checking database schema...")
		report, err := svc.CheckServer()
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}

		for table, tbl := range report.Tables {
			if tbl.Status == "ok" {
				logg.Info("Table matches", zap.String("table", table))
				continue
			}
			logg.Warn("Table mismatch",
				zap.String("table", table),
				zap.String("status", tbl.Status),
				zap.Strings("missing_columns", tbl.MissingColumns),
				zap.Strings("type_mismatches", tbl.TypeMismatches),
			)
		}
		for _, e := range report.Errors {
			logg.Error("Schema inspection error", zap.String("error", e))
		}
		if !report.Matched {
			failed = true
		}
	}

	if runLinks {
		logg.Info("Checking linked barcodes...")
		report, err := svc.CheckLinks(ctx, true)
		if err != nil {
			return fmt.Errorf("linked barcode check failed: %w", err)
		}

		for _, p := range report.Problems {
			logg.Warn("Linked barcode problem",
				zap.String("label", p.Label),
				zap.Int("pk", p.PK),
				zap.Strings("mismatch", p.Mismatch),
			)
		}
		logg.Info("Linked barcodes checked", zap.Int("checked", report.Checked), zap.Int("problems", len(report.Problems)))
		if len(report.Problems) > 0 {
			failed = true
		}
	}

	if failed {
		return fmt.Errorf("integrity checks reported problems")
	}
	return nil
}
