package cmd

import (
	"context"
	"fmt"

	"artifact-planner/core/config"
	"artifact-planner/core/logger"
	"artifact-planner/core/storage"
	"artifact-planner/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the planner's storage, catalog and database",
	Long:  `Checks the bucket folder structure, the catalog contents and, when a database is configured, the catalog table schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), integrityRun{structure: true, catalog: true, server: true})
	},
}

var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the bucket folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), integrityRun{structure: true, fix: fixFlag})
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Load the catalog and report unusable entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), integrityRun{catalog: true})
	},
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Check the artifact_catalog table schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), integrityRun{server: true})
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, catalogCmd, serverCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing folders")
}

// integrityRun selects the checks to run.
type integrityRun struct {
	structure, catalog, server bool
	fix                        bool
}

func runIntegrityChecks(ctx context.Context, run integrityRun) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	db := connectDatabase(cfg, logg)
	catalogs, err := newCatalogCache(cfg, store, db, logg)
	if err != nil {
		return err
	}

	svc := integrity.NewService(store, cfg.Storage.Bucket, cfg.Planner, catalogs, db, logg)
	return reportIntegrity(ctx, svc, run, logg)
}

// reportIntegrity runs the selected checks and logs their findings. The
// first failing check aborts the run.
func reportIntegrity(ctx context.Context, svc *integrity.Service, run integrityRun, logg *zap.Logger) error {
	if run.structure {
		logg.Info("Checking folder structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}

		switch {
		case len(missing) == 0:
			logg.Info("Structure is intact.")
		case run.fix:
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))
			if err := svc.FixStructure(ctx, missing); err != nil {
				return fmt.Errorf("failed to fix structure: %w", err)
			}
			logg.Info("Structure fixed successfully.")
		default:
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))
			logg.Info("Run 'integrity structure --fix' to create missing folders.")
		}
	}

	if run.catalog {
		logg.Info("Checking catalog...")
		report, err := svc.CheckCatalog(ctx)
		if err != nil {
			return fmt.Errorf("catalog check failed: %w", err)
		}
		fields := []zap.Field{
			zap.Int("items", report.Items),
			zap.Int("artifacts", report.Artifacts),
			zap.Int("stones", report.Stones),
		}
		if len(report.Problems) == 0 {
			logg.Info("Catalog is usable.", fields...)
		} else {
			logg.Warn("Catalog problems found", append(fields, zap.Strings("problems", report.Problems))...)
		}
	}

	if run.server {
		report, err := svc.CheckServer()
		switch {
		case err != nil:
			return fmt.Errorf("server schema check failed: %w", err)
		case report == nil:
			logg.Info("No database configured, skipping server schema check.")
		case report.Matched:
			logg.Info("Server schema matches expected definition.")
		default:
			for table, tbl := range report.Tables {
				if len(tbl.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	return nil
}
