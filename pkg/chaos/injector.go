// Package chaos injects synthetic agent failures to exercise the repair
// ladder and circuit breakers under controlled fault load.
package chaos

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/pkg/agent"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/forgeworks/metabuild/pkg/metrics"
)

// Injector decides, per agent invocation, whether to replace the real
// execution with a synthetic failure. Rules are evaluated in order; the
// first one that matches the role and fires wins.
type Injector struct {
	cfg *config.ChaosConfig

	mu        sync.Mutex
	rng       *rand.Rand
	injected  []int // per-rule injection counts
	totalHits int
}

// NewInjector creates an injector from config. A non-zero seed makes the
// fire/no-fire sequence deterministic.
func NewInjector(cfg *config.ChaosConfig) *Injector {
	if cfg == nil {
		cfg = config.DefaultChaosConfig()
	}
	var src rand.Source
	if cfg.Seed != 0 {
		src = rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed))
	} else {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Injector{
		cfg:      cfg,
		rng:      rand.New(src),
		injected: make([]int, len(cfg.Rules)),
	}
}

// Inject returns a synthetic failure for the role, or nil when no rule
// fires. The returned error carries the rule's failure class so the
// ladder and breakers treat it exactly like a real failure of that class.
func (i *Injector) Inject(role step.AgentRole) error {
	if i == nil || !i.cfg.Enabled {
		return nil
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	for idx, rule := range i.cfg.Rules {
		if rule.Role != "" && rule.Role != string(role) {
			continue
		}
		if rule.MaxInjections > 0 && i.injected[idx] >= rule.MaxInjections {
			continue
		}
		if i.rng.Float64() >= rule.Probability {
			continue
		}

		i.injected[idx]++
		i.totalHits++
		metrics.ChaosInjectionsTotal.WithLabelValues(string(role), string(rule.Class)).Inc()
		slog.Info("Chaos fault injected",
			"role", role, "class", rule.Class, "rule", idx,
			"count", i.injected[idx])

		return &agent.Error{
			Kind:    agent.KindInternal,
			Class:   rule.Class,
			Message: fmt.Sprintf("chaos: injected %s failure", rule.Class),
		}
	}
	return nil
}

// Injections returns the total number of faults injected so far.
func (i *Injector) Injections() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.totalHits
}
