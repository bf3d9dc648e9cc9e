package loadout

import (
	"context"
	"fmt"

	"artifact-planner/core/artifact"
	"artifact-planner/core/catalog"
	"artifact-planner/core/earnings"
	"artifact-planner/core/effects"
	"artifact-planner/core/planner"
	"artifact-planner/core/reconcile"
	"artifact-planner/core/storage"
	"artifact-planner/feature/loadout/models"

	"go.uber.org/zap"
)

// Service plans and scores loadouts.
type Service struct {
	catalogs catalog.Provider
	client   storage.Client
	bucket   string
	cfg      planner.Config
	logger   *zap.Logger
}

// NewService creates a new loadout service. client may be nil when backups
// are always sent inline.
func NewService(catalogs catalog.Provider, client storage.Client, bucket string, cfg planner.Config, logger *zap.Logger) *Service {
	return &Service{
		catalogs: catalogs,
		client:   client,
		bucket:   bucket,
		cfg:      cfg,
		logger:   logger,
	}
}

// Plan reconstructs the set realizing req.Target from the player's backup and
// reports what to keep, equip, assemble and take off.
func (s *Service) Plan(ctx context.Context, req models.PlanRequest) (*models.PlanResponse, error) {
	strategy, err := s.strategy(req.Strategy)
	if err != nil {
		return nil, err
	}
	cat, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}

	backup := req.Backup
	switch {
	case backup != nil:
	case req.BackupID != "":
		if s.client == nil {
			return nil, fmt.Errorf("%w: backup_id given but no storage is configured", ErrInvalidRequest)
		}
		if backup, err = s.loadBackup(ctx, req.BackupID); err != nil {
			return nil, err
		}
	default:
		backup = &models.Backup{}
	}

	target, err := resolveTarget(cat, req.Target)
	if err != nil {
		return nil, err
	}
	guide, err := resolveSet(cat, backup.Equipped, "equipped")
	if err != nil {
		return nil, err
	}
	inv, err := resolveArtifacts(cat, backup.Inventory, "inventory")
	if err != nil {
		return nil, err
	}

	spares := artifact.StaticInventory(inv)
	result, err := reconcile.Reconstruct(target, guide, spares)
	if err != nil {
		s.logger.Error("Set reconstruction failed",
			zap.Stringer("target", target),
			zap.Stringer("guide", guide),
			zap.Error(err))
		return nil, err
	}

	resp := &models.PlanResponse{
		Set:  models.Docs(result.Set),
		Plan: reconcile.BuildPlan(result, guide, spares),
	}
	if backup.Farm != nil {
		m := earnings.VirtualEarningsMultiplier(
			effects.NewFarm(*backup.Farm),
			effects.NewSet(result.Set, cat),
			strategy,
			s.modifiers(req.Modifiers))
		resp.Strategy = strategy
		resp.EarningsMultiplier = &m
	}

	s.logger.Debug("Loadout planned",
		zap.Stringer("set", result.Set),
		zap.Int("equipped", resp.Plan.Summary.Equipped),
		zap.Int("assembled", resp.Plan.Summary.Assembled),
		zap.Int("awaiting_assembly", resp.Plan.Summary.AwaitingAssembly))
	return resp, nil
}

// Earnings scores req.Set on req.Farm.
func (s *Service) Earnings(ctx context.Context, req models.EarningsRequest) (*models.EarningsResponse, error) {
	strategy, err := s.strategy(req.Strategy)
	if err != nil {
		return nil, err
	}
	cat, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}
	set, err := resolveSet(cat, req.Set, "set")
	if err != nil {
		return nil, err
	}

	m := earnings.VirtualEarningsMultiplier(
		effects.NewFarm(req.Farm),
		effects.NewSet(set, cat),
		strategy,
		s.modifiers(req.Modifiers))
	return &models.EarningsResponse{Strategy: strategy, EarningsMultiplier: m}, nil
}

// Strategies lists the known strategies and the configured default.
func (s *Service) Strategies() models.StrategiesResponse {
	def, err := s.cfg.DefaultStrategy()
	if err != nil {
		def = earnings.StrategyNone
	}
	return models.StrategiesResponse{Default: def, Strategies: earnings.Strategies()}
}

func (s *Service) strategy(name string) (earnings.Strategy, error) {
	if name == "" {
		name = s.cfg.Strategy
	}
	strategy, err := earnings.ParseStrategy(name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return strategy, nil
}

func (s *Service) modifiers(override *earnings.Modifiers) earnings.Modifiers {
	if override != nil {
		return *override
	}
	return s.cfg.Modifiers()
}

func (s *Service) catalog(ctx context.Context) (*catalog.Catalog, error) {
	cat, err := s.catalogs.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}
