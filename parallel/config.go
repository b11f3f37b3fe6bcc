// SPDX-License-Identifier: MIT

// Package parallel: dispatch configuration.
// This file defines:
//   - Config (the explicit per-call configuration value),
//   - documented defaults (constants, single source of truth),
//   - process-wide ambient state behind atomics with setters/getters,
//   - WithX functional options with strong validation (panic on
//     nonsensical values — programmer error, not runtime input).

package parallel

import (
	"runtime"
	"sync/atomic"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultThreshold is the complexity score above which bulk operations
	// run in parallel. Element-wise kernels score rows*cols; multiplication
	// scores rows*cols*inner.
	DefaultThreshold int64 = 4096

	// DefaultEnabled is the initial state of the master parallel switch.
	DefaultEnabled = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicThresholdInvalid = "parallel: WithThreshold: threshold must be >= 0"
	panicWorkersInvalid   = "parallel: WithWorkers: workers must be > 0"
)

// ---------- Ambient process-wide state ----------

// Ambient values are ordinary mutable process-wide knobs, read fresh on
// every dispatch decision. They sit behind atomics so concurrent mutation
// is race-free; which strategy a racing call observes is unspecified, but
// results are identical either way for per-cell-independent kernels.
var (
	ambientThreshold atomic.Int64
	ambientDisabled  atomic.Bool // inverted so the zero value means enabled
)

func init() {
	ambientThreshold.Store(DefaultThreshold)
	ambientDisabled.Store(!DefaultEnabled)
}

// SetThreshold updates the ambient complexity threshold.
// Panics on negative values (programmer error).
// Complexity: O(1).
func SetThreshold(threshold int64) {
	if threshold < 0 {
		panic(panicThresholdInvalid)
	}
	ambientThreshold.Store(threshold)
}

// Threshold returns the current ambient complexity threshold.
// Complexity: O(1).
func Threshold() int64 { return ambientThreshold.Load() }

// SetEnabled flips the ambient master switch for parallel execution.
// Complexity: O(1).
func SetEnabled(enabled bool) { ambientDisabled.Store(!enabled) }

// Enabled reports the ambient master switch.
// Complexity: O(1).
func Enabled() bool { return !ambientDisabled.Load() }

// ---------- Config ----------

// Config is the explicit dispatch configuration consumed by For. Public
// entry points resolve it once per call (Resolve), so the decision is made
// at call time against the live ambient values, and per-call options can
// override them without touching process state.
type Config struct {
	// Threshold is the complexity score above which the parallel branch
	// is taken.
	Threshold int64

	// Enabled gates the parallel branch entirely.
	Enabled bool

	// Workers caps the number of concurrent ranges; 0 means GOMAXPROCS.
	Workers int
}

// Ambient snapshots the process-wide defaults into a Config.
// Complexity: O(1).
func Ambient() Config {
	return Config{
		Threshold: Threshold(),
		Enabled:   Enabled(),
		Workers:   runtime.GOMAXPROCS(0),
	}
}

// ---------- Functional options ----------

// Option overrides one Config field. Safe to apply repeatedly.
type Option func(*Config)

// Resolve snapshots the ambient defaults and applies opts on top.
// Complexity: O(len(opts)).
func Resolve(opts ...Option) Config {
	cfg := Ambient()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithThreshold overrides the complexity threshold for one call.
// Panics on negative values (programmer error).
func WithThreshold(threshold int64) Option {
	if threshold < 0 {
		panic(panicThresholdInvalid)
	}

	return func(c *Config) { c.Threshold = threshold }
}

// WithSequential forces the sequential branch for one call.
func WithSequential() Option {
	return func(c *Config) { c.Enabled = false }
}

// WithParallel forces the parallel branch to be available for one call
// regardless of the ambient master switch (the threshold still applies).
func WithParallel() Option {
	return func(c *Config) { c.Enabled = true }
}

// WithWorkers caps the worker count for one call.
// Panics on non-positive values (programmer error).
func WithWorkers(workers int) Option {
	if workers <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(c *Config) { c.Workers = workers }
}
