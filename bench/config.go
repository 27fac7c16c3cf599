package bench

import (
	"errors"
	"fmt"

	"github.com/npillmayer/ordtrees"
)

// Default parameters of a run.
const (
	DefaultCount  = 1000
	DefaultMaxKey = 10000
	DefaultProbes = 1000
	DefaultSeed   = 1
)

// ErrInvalidConfig is returned for run parameters which cannot be satisfied.
var ErrInvalidConfig = errors.New("bench: invalid config")

// Config holds the parameters of a benchmark run.
type Config struct {
	Kinds     []ordtrees.Kind // engines to measure, in order
	Count     int             // number of keys to insert, duplicates included
	MaxKey    int             // keys are drawn from [1, MaxKey]
	Probes    int             // number of timed searches
	Seed      int64           // seed for key and probe generation
	MinDegree int             // B-tree minimum degree, 0 for default
}

// DefaultConfig measures all engines with default parameters.
func DefaultConfig() Config {
	return Config{
		Kinds:  ordtrees.Kinds(),
		Count:  DefaultCount,
		MaxKey: DefaultMaxKey,
		Probes: DefaultProbes,
		Seed:   DefaultSeed,
	}
}

func (cfg Config) normalized() Config {
	if len(cfg.Kinds) == 0 {
		cfg.Kinds = ordtrees.Kinds()
	}
	if cfg.MaxKey == 0 {
		cfg.MaxKey = DefaultMaxKey
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.Count < 0 {
		return fmt.Errorf("%w: negative key count %d", ErrInvalidConfig, cfg.Count)
	}
	if cfg.MaxKey < 1 {
		return fmt.Errorf("%w: maximum key must be positive, is %d", ErrInvalidConfig, cfg.MaxKey)
	}
	if cfg.Probes < 0 {
		return fmt.Errorf("%w: negative probe count %d", ErrInvalidConfig, cfg.Probes)
	}
	return nil
}
