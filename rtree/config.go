package rtree

import "fmt"

const (
	// DefaultBundleCapacity is the maximum number of points in a leaf.
	DefaultBundleCapacity = 30
	// DefaultMaxFanout is the maximum number of children of an inner node.
	DefaultMaxFanout = 32
	// DefaultMinFanout is the lower occupancy bound m of the bounded policy.
	DefaultMinFanout = 3
)

// Policy selects how an inner node's point range is split among its children.
type Policy int

const (
	// PolicyBounded derives the child count from the range size:
	// max(ceil(n / BundleCapacity), MinFanout), clamped to MaxFanout. Child
	// ranges differ in size by at most one point. This keeps leaves within the
	// classic R-tree occupancy bounds [m, M] with M = BundleCapacity.
	//
	// The clamp keeps inner nodes within [MinFanout, MaxFanout]. If it applies,
	// children get more than BundleCapacity points each and are split again,
	// so leaves end up one or more levels further down than
	// ceil(n / BundleCapacity) alone would suggest.
	PolicyBounded Policy = iota
	// PolicyUniform always splits into MaxFanout children (fewer only if the
	// range has fewer points), with the last child absorbing the remainder.
	PolicyUniform
)

func (p Policy) String() string {
	switch p {
	case PolicyBounded:
		return "bounded"
	case PolicyUniform:
		return "uniform"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps a policy name as printed by String back to a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "bounded", "mM", "m/M":
		return PolicyBounded, nil
	case "uniform", "fanout":
		return PolicyUniform, nil
	}
	return 0, fmt.Errorf("%w: unknown policy %q", ErrInvalidConfig, name)
}

// Config configures the bulk loader.
type Config struct {
	// BundleCapacity is the maximum number of points in a leaf (and the M of
	// the bounded policy).
	BundleCapacity int
	// MinFanout is the minimum child count m of the bounded policy.
	MinFanout int
	// MaxFanout is the maximum child count of any inner node.
	MaxFanout int
	// Policy selects the split policy, PolicyBounded by default.
	Policy Policy
}

// DefaultConfig returns the configuration the index uses unless told otherwise.
func DefaultConfig() Config {
	return Config{
		BundleCapacity: DefaultBundleCapacity,
		MinFanout:      DefaultMinFanout,
		MaxFanout:      DefaultMaxFanout,
		Policy:         PolicyBounded,
	}
}

// MaxOccupancy is the largest entry count any node built with cfg can have.
func (cfg Config) MaxOccupancy() int {
	cfg = cfg.normalized()
	return max(cfg.BundleCapacity, cfg.MaxFanout)
}

func (cfg Config) normalized() Config {
	if cfg.MinFanout == 0 {
		cfg.MinFanout = max(1, min(DefaultMinFanout, cfg.MaxFanout, cfg.BundleCapacity+1))
	}
	return cfg
}

// Validate reports whether cfg describes a buildable tree.
func (cfg Config) Validate() error {
	return cfg.validate()
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.BundleCapacity < 1 {
		return fmt.Errorf("%w: bundle capacity must be >= 1, is %d", ErrInvalidConfig, cfg.BundleCapacity)
	}
	if cfg.MaxFanout < 2 {
		return fmt.Errorf("%w: max fanout must be >= 2, is %d", ErrInvalidConfig, cfg.MaxFanout)
	}
	if cfg.MinFanout < 1 || cfg.MinFanout > cfg.MaxFanout {
		return fmt.Errorf("%w: min fanout must be in [1, %d], is %d",
			ErrInvalidConfig, cfg.MaxFanout, cfg.MinFanout)
	}
	if cfg.MinFanout > cfg.BundleCapacity+1 {
		return fmt.Errorf("%w: min fanout %d would create empty children for ranges of %d points",
			ErrInvalidConfig, cfg.MinFanout, cfg.BundleCapacity+1)
	}
	switch cfg.Policy {
	case PolicyBounded, PolicyUniform:
	default:
		return fmt.Errorf("%w: unknown policy %d", ErrInvalidConfig, int(cfg.Policy))
	}
	return nil
}
