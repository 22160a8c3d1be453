package cli

import (
	"context"
	"fmt"

	"jobmatch/internal/ai"
	"jobmatch/internal/config"
	"jobmatch/internal/engine"
	"jobmatch/internal/errors"
	"jobmatch/internal/observability"
	"jobmatch/internal/skills"
)

// engineRuntime bundles the matching engine with the resources that must be
// released when the command finishes.
type engineRuntime struct {
	engine   *engine.Engine
	delegate *ai.Delegate
	obs      *observability.ObservabilityManager
	logger   *errors.Logger
}

// newEngineRuntime wires the skill map, the optional AI delegate, and
// observability into a ready-to-use engine. The skill map watcher is started
// only when configured; it stops when the command context is canceled.
func newEngineRuntime(ctx context.Context, cfg *config.Config, logger *errors.Logger) (*engineRuntime, error) {
	obsConfig := observability.GetObservabilityConfig(cfg, Version)
	obs, err := observability.NewObservabilityManager(obsConfig, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize observability: %w", err)
	}

	skillMap := skills.NewSkillMap(logger)
	if cfg.Engine.SkillMapFile != "" {
		if err := skillMap.LoadFile(cfg.Engine.SkillMapFile); err != nil {
			return nil, fmt.Errorf("failed to load skill map file: %w", err)
		}
		if cfg.Engine.WatchSkillMap {
			watcher := skills.NewWatcher(skillMap, cfg.Engine.SkillMapFile, logger)
			watcher.OnReload(func() {
				obs.GetMetrics().RecordSkillMapReload(ctx)
			})
			if err := watcher.Start(ctx); err != nil {
				return nil, fmt.Errorf("failed to watch skill map file: %w", err)
			}
		}
	}

	aiDelegate, err := ai.NewDelegate(cfg, obs, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create AI delegate: %w", err)
	}

	// A typed nil inside the interface would bypass the engine's nil check
	var delegate engine.Delegate
	if aiDelegate != nil {
		delegate = aiDelegate
	}

	return &engineRuntime{
		engine:   engine.NewEngine(skillMap, delegate, logger, obs.GetMetrics()),
		delegate: aiDelegate,
		obs:      obs,
		logger:   logger,
	}, nil
}

// Close releases the delegate and flushes observability exporters.
func (r *engineRuntime) Close(ctx context.Context) {
	if r.delegate != nil {
		if err := r.delegate.Close(); err != nil {
			r.logger.Warn("Failed to close AI delegate", "error", err)
		}
	}
	if r.obs != nil {
		if err := r.obs.Shutdown(ctx); err != nil {
			r.logger.Warn("Failed to shut down observability", "error", err)
		}
	}
}
