package rtree

import (
	"errors"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
	if cfg.Policy != PolicyBounded {
		t.Fatalf("expected bounded policy as default, got %v", cfg.Policy)
	}
	if cfg.MaxOccupancy() != 32 {
		t.Fatalf("expected max occupancy 32, got %d", cfg.MaxOccupancy())
	}
}

func TestConfigRejectsInvalidValues(t *testing.T) {
	cases := map[string]Config{
		"zero bundle":      {BundleCapacity: 0, MaxFanout: 4, MinFanout: 2},
		"fanout one":       {BundleCapacity: 4, MaxFanout: 1, MinFanout: 1},
		"min above max":    {BundleCapacity: 10, MaxFanout: 4, MinFanout: 5},
		"min above bundle": {BundleCapacity: 2, MaxFanout: 8, MinFanout: 4},
		"unknown policy":   {BundleCapacity: 4, MaxFanout: 4, MinFanout: 2, Policy: Policy(7)},
	}
	for name, cfg := range cases {
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}
}

func TestConfigNormalizesMinFanout(t *testing.T) {
	cfg := Config{BundleCapacity: 1, MaxFanout: 2}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected zero min fanout to be normalized, got %v", err)
	}
	if got := cfg.normalized().MinFanout; got != 2 {
		t.Fatalf("expected min fanout 2, got %d", got)
	}
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []Policy{PolicyBounded, PolicyUniform} {
		got, err := ParsePolicy(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePolicy(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParsePolicy("quadratic"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for unknown policy, got %v", err)
	}
}
