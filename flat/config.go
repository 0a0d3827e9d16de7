package flat

import "fmt"

const (
	// DefaultCapacity is the number of entry slots per record. It has to be at
	// least the larger of bundle capacity and max fanout of the tree.
	DefaultCapacity = 32
	// DefaultMaxNodes is the default node budget of one execution unit.
	DefaultMaxNodes = 10000
	// MaxCapacity is the largest capacity the blob header can express.
	MaxCapacity = 1<<16 - 1
)

// Config configures the record layout.
type Config struct {
	// Capacity is the fixed number of entry slots of every record.
	Capacity int
	// MaxNodes bounds the number of records of one flattened tree. Zero
	// means no bound.
	MaxNodes int
}

// DefaultConfig returns the layout used unless told otherwise.
func DefaultConfig() Config {
	return Config{
		Capacity: DefaultCapacity,
		MaxNodes: DefaultMaxNodes,
	}
}

func (cfg Config) validate() error {
	if cfg.Capacity < 1 || cfg.Capacity > MaxCapacity {
		return fmt.Errorf("%w: capacity must be in [1, %d], is %d", ErrInvalidConfig, MaxCapacity, cfg.Capacity)
	}
	if cfg.MaxNodes < 0 {
		return fmt.Errorf("%w: negative node budget %d", ErrInvalidConfig, cfg.MaxNodes)
	}
	return nil
}

// Validate reports whether cfg describes a usable layout.
func (cfg Config) Validate() error {
	return cfg.validate()
}
