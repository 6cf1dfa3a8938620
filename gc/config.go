// ABOUTME: Collection tuning knobs and their TOML file loader
// ABOUTME: Defaults-overlay decoding so absent keys keep default values

package gc

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Tuning controls when a heap collects.
type Tuning struct {
	// ThresholdBytes is the live-byte level above which an allocation
	// triggers a collection pass.
	ThresholdBytes uint64

	// UsedSpaceRatio bounds how full the threshold may be with live data
	// after a pass; the threshold grows to keep live bytes under this
	// fraction of it. Must be in (0, 1].
	UsedSpaceRatio float64

	// LeakOnShutdown skips the final collection pass in Close.
	LeakOnShutdown bool
}

// DefaultTuning mirrors a small cooperative heap: collect early, keep the
// threshold at most 70% occupied by live data.
func DefaultTuning() Tuning {
	return Tuning{
		ThresholdBytes: 4096,
		UsedSpaceRatio: 0.7,
	}
}

// tuning.toml key mapping.
type fileTuning struct {
	ThresholdBytes uint64  `toml:"threshold_bytes"`
	UsedSpaceRatio float64 `toml:"used_space_ratio"`
	LeakOnShutdown bool    `toml:"leak_on_shutdown"`
}

// LoadTuning reads tuning from a TOML file, overlaying only the keys the
// file defines onto the defaults.
func LoadTuning(path string) (Tuning, error) {
	cfg := DefaultTuning()

	var raw fileTuning
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Tuning{}, fmt.Errorf("load gc tuning: %w", err)
	}

	if meta.IsDefined("threshold_bytes") {
		cfg.ThresholdBytes = raw.ThresholdBytes
	}
	if meta.IsDefined("used_space_ratio") {
		cfg.UsedSpaceRatio = raw.UsedSpaceRatio
	}
	if meta.IsDefined("leak_on_shutdown") {
		cfg.LeakOnShutdown = raw.LeakOnShutdown
	}

	if cfg.ThresholdBytes == 0 {
		return Tuning{}, fmt.Errorf("load gc tuning: threshold_bytes must be positive")
	}
	if cfg.UsedSpaceRatio <= 0 || cfg.UsedSpaceRatio > 1 {
		return Tuning{}, fmt.Errorf(
			"load gc tuning: used_space_ratio %v out of range (0, 1]",
			cfg.UsedSpaceRatio,
		)
	}
	return cfg, nil
}
