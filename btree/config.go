package btree

import "fmt"

const (
	// DefaultMinDegree is used when Config.MinDegree is left zero.
	DefaultMinDegree = 3
	// MinimumDegree is the smallest valid minimum degree.
	MinimumDegree = 2
)

// Config configures a B-tree.
type Config struct {
	// MinDegree (t) bounds the node fan-out: every node holds at most 2t−1
	// keys and 2t children, every non-root node at least t−1 keys.
	MinDegree int
}

func (cfg Config) normalized() Config {
	if cfg.MinDegree == 0 {
		cfg.MinDegree = DefaultMinDegree
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.MinDegree < MinimumDegree {
		return fmt.Errorf("%w: minimum degree must be >= %d, is %d",
			ErrInvalidConfig, MinimumDegree, cfg.MinDegree)
	}
	return nil
}

func (cfg Config) maxKeys() int {
	return 2*cfg.MinDegree - 1
}

func (cfg Config) minKeys() int {
	return cfg.MinDegree - 1
}
