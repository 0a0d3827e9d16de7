package pimrtree

import (
	"fmt"
	"time"

	"github.com/npillmayer/pimrtree/flat"
	"github.com/npillmayer/pimrtree/geom"
	"github.com/npillmayer/pimrtree/rtree"
)

const (
	// DefaultUnits is the number of execution units used if not configured.
	DefaultUnits = 4
	// DefaultWorkers is the number of workers per execution unit.
	DefaultWorkers = 16
)

// Config collects all parameters of an index.
type Config struct {
	Tree        rtree.Config
	Flat        flat.Config
	Morton      geom.MortonConfig
	Units       int           // number of execution units
	Workers     int           // workers per execution unit
	UnitTimeout time.Duration // bound on waiting for units; 0 waits indefinitely
}

// DefaultConfig returns a configuration with the standard tree and record
// layout parameters.
func DefaultConfig() Config {
	return Config{
		Tree:    rtree.DefaultConfig(),
		Flat:    flat.DefaultConfig(),
		Morton:  geom.DefaultMortonConfig(),
		Units:   DefaultUnits,
		Workers: DefaultWorkers,
	}
}

func (cfg Config) normalized() Config {
	if cfg.Tree == (rtree.Config{}) {
		cfg.Tree = rtree.DefaultConfig()
	}
	if cfg.Flat == (flat.Config{}) {
		cfg.Flat = flat.DefaultConfig()
	}
	if cfg.Units == 0 {
		cfg.Units = DefaultUnits
	}
	if cfg.Workers == 0 {
		cfg.Workers = DefaultWorkers
	}
	return cfg
}

func (cfg Config) validate() error {
	if err := cfg.Tree.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Flat.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.Units < 1 {
		return fmt.Errorf("%w: need at least one execution unit, have %d", ErrInvalidConfig, cfg.Units)
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("%w: need at least one worker per unit, have %d", ErrInvalidConfig, cfg.Workers)
	}
	if cfg.UnitTimeout < 0 {
		return fmt.Errorf("%w: negative unit timeout %v", ErrInvalidConfig, cfg.UnitTimeout)
	}
	if occ := cfg.Tree.MaxOccupancy(); cfg.Flat.Capacity < occ {
		return fmt.Errorf("%w: record capacity %d cannot hold nodes of up to %d entries",
			ErrInvalidConfig, cfg.Flat.Capacity, occ)
	}
	return nil
}

// Validate checks cfg after filling in defaults for zero values.
func (cfg Config) Validate() error {
	return cfg.normalized().validate()
}
