// Package hoardfx provides an fx module for a shared byte cache.
package hoardfx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/hoardlib/hoard"
	"github.com/hoardlib/hoard/internal/stats"
	"github.com/hoardlib/hoard/internal/stats/logger"
)

// Config holds configuration for the cache.
type Config struct {
	// MaximumSize is the number of entries the cache can hold.
	// Default is 1024.
	MaximumSize int

	// Policy is the eviction policy name: "lru", "lfu" or
	// "oldest-insertion". Default is "lru".
	Policy string
}

// Module provides a *hoard.Cache[string, []byte].
// Requires a Config and a *zap.Logger to be provided.
var Module = fx.Module("hoard",
	fx.Provide(
		newStatsCollector,
		newCache,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("hoard.stats"))
}

// Params holds dependencies for creating the cache.
type Params struct {
	fx.In

	Config    Config
	Logger    *zap.Logger
	Collector stats.Collector
	Lifecycle fx.Lifecycle
}

// Result holds the provided cache.
type Result struct {
	fx.Out

	Cache *hoard.Cache[string, []byte]
}

func newCache(p Params) (Result, error) {
	size := p.Config.MaximumSize
	if size <= 0 {
		size = 1024
	}

	name := p.Config.Policy
	if name == "" {
		name = "lru"
	}
	policy, err := hoard.ParsePolicy(name)
	if err != nil {
		return Result{}, err
	}

	cache, err := hoard.New[string, []byte](size, policy,
		hoard.WithStats(p.Collector),
		hoard.WithLogger(p.Logger.Named("hoard")),
	)
	if err != nil {
		return Result{}, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			cache.Dispose()
			return nil
		},
	})

	return Result{Cache: cache}, nil
}
