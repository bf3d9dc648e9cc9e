package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"artifact-planner/core/catalog"
	"artifact-planner/core/config"
	"artifact-planner/core/logger"
	"artifact-planner/core/storage"
	"artifact-planner/feature/loadout"
	"artifact-planner/feature/loadout/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// planOptions holds the flags of the plan command.
type planOptions struct {
	target   string
	backup   string
	catalog  string
	strategy string
	jsonOut  bool
}

var planOpts planOptions

// planCmd reconstructs a target loadout once and reports the plan.
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan a loadout from local files",
	Long: `Reconstruct the concrete artifact set for a target loadout and report the
steps to wear it.

The target and backup files may be YAML (.yaml, .yml) or JSON. --backup
accepts either a file path or the id of a backup stored in the bucket.

Examples:
  # Everything local
  plan --target target.yaml --backup backup.json --catalog artifacts.json

  # Backup and catalog from the configured storage
  plan --target target.yaml --backup EI1234567890

  # Machine readable output
  plan --target target.yaml --backup backup.yaml --catalog artifacts.json --json`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planOpts.target, "target", "", "Target loadout file (YAML or JSON)")
	planCmd.Flags().StringVar(&planOpts.backup, "backup", "", "Backup file, or stored backup id")
	planCmd.Flags().StringVar(&planOpts.catalog, "catalog", "", "Catalog JSON file (default: configured catalog source)")
	planCmd.Flags().StringVar(&planOpts.strategy, "strategy", "", "Prestige strategy (default: planner.strategy)")
	planCmd.Flags().BoolVar(&planOpts.jsonOut, "json", false, "Print the plan as JSON to stdout")
	_ = planCmd.MarkFlagRequired("target")

	RootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()
	zap.ReplaceGlobals(l)

	resp, err := executePlan(cmd.Context(), planOpts, cfg, l)
	if err != nil {
		return err
	}

	printPlanReport(l, resp)
	if planOpts.jsonOut {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	return nil
}

// executePlan builds the request from opts and runs it through the loadout
// service. Storage is only contacted for a stored backup or catalog.
func executePlan(ctx context.Context, opts planOptions, cfg *config.Config, l *zap.Logger) (*models.PlanResponse, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	req := models.PlanRequest{Strategy: opts.strategy}
	if err := readDoc(opts.target, &req.Target); err != nil {
		return nil, fmt.Errorf("failed to read target: %w", err)
	}

	needStorage := opts.catalog == ""
	if opts.backup != "" {
		if _, err := os.Stat(opts.backup); err == nil {
			req.Backup = &models.Backup{}
			if err := readDoc(opts.backup, req.Backup); err != nil {
				return nil, fmt.Errorf("failed to read backup: %w", err)
			}
		} else if errors.Is(err, fs.ErrNotExist) {
			req.BackupID = opts.backup
			needStorage = true
		} else {
			return nil, fmt.Errorf("failed to read backup: %w", err)
		}
	}

	var client storage.Client
	if needStorage {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		client = c
	}

	var provider catalog.Provider
	if opts.catalog != "" {
		f, err := os.Open(opts.catalog)
		if err != nil {
			return nil, fmt.Errorf("failed to open catalog: %w", err)
		}
		defer f.Close()
		cat, err := catalog.Decode(f)
		if err != nil {
			return nil, err
		}
		provider = catalog.Fixed{Catalog: cat}
	} else {
		cache, err := newCatalogCache(cfg, client, connectDatabase(cfg, l), l)
		if err != nil {
			return nil, err
		}
		provider = cache
	}

	svc := loadout.NewService(provider, client, cfg.Storage.Bucket, cfg.Planner, l)
	return svc.Plan(ctx, req)
}

// readDoc decodes a YAML or JSON file into out, chosen by extension.
func readDoc(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse YAML %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse JSON %s: %w", path, err)
		}
	}
	return nil
}

// printPlanReport logs the plan summary and every action.
func printPlanReport(l *zap.Logger, resp *models.PlanResponse) {
	s := resp.Plan.Summary

	fields := []zap.Field{
		zap.Int("total_artifacts", s.TotalArtifacts),
		zap.Int("equipped", s.Equipped),
		zap.Int("assembled", s.Assembled),
		zap.Int("awaiting_assembly", s.AwaitingAssembly),
		zap.Int("unequipped", s.Unequipped),
		zap.Int("stones_to_slot", s.StonesToSlot),
	}
	if resp.EarningsMultiplier != nil {
		fields = append(fields,
			zap.String("strategy", string(resp.Strategy)),
			zap.Float64("earnings_multiplier", *resp.EarningsMultiplier))
	}
	l.Info("Loadout plan", fields...)

	for _, a := range resp.Plan.Actions {
		actionFields := []zap.Field{
			zap.String("type", string(a.Type)),
			zap.Int("slot", a.Slot),
			zap.String("artifact", string(a.Artifact)),
			zap.String("reason", a.Reason),
		}
		if len(a.Stones) > 0 {
			stones := make([]string, len(a.Stones))
			for i, k := range a.Stones {
				stones[i] = string(k)
			}
			actionFields = append(actionFields, zap.Strings("stones", stones))
		}
		l.Info("Action", actionFields...)
	}
}
