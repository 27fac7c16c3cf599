package bench

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/guiguan/caster"
	"github.com/npillmayer/ordtrees"
)

// Result holds the measurements for one engine of a run.
type Result struct {
	RunID      uuid.UUID     // identifies the run, shared by all of its results
	Kind       ordtrees.Kind // engine measured
	Inserted   int           // number of insert calls
	Distinct   int           // number of keys stored
	Height     int           // height of the engine after all insertions
	InsertTime time.Duration // total time spent inserting
	SearchTime time.Duration // mean time per search
	Probes     int           // number of searches
	Hits       int           // searches which found their key
	Err        error         // invariant violation, if any
}

// OK is true if the engine passed its invariant check.
func (r Result) OK() bool {
	return r.Err == nil
}

func (r Result) String() string {
	status := "ok"
	if r.Err != nil {
		status = r.Err.Error()
	}
	return fmt.Sprintf("%-6s keys=%d height=%d insert=%s search=%s hits=%d/%d %s",
		r.Kind, r.Distinct, r.Height, r.InsertTime, r.SearchTime, r.Hits, r.Probes, status)
}

// Run measures every engine of cfg.Kinds on the same keys and probes.
// Each result is published to cast, if cast is non-nil, before the next
// engine is measured. Run stops with ctx's error if ctx is cancelled between
// engines; results gathered up to then are returned.
func Run(ctx context.Context, cfg Config, cast *caster.Caster) ([]Result, error) {
	cfg = cfg.normalized()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	runID, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	keys := draw(rng, cfg.Count, cfg.MaxKey)
	probes := draw(rng, cfg.Probes, cfg.MaxKey)
	tracer().Infof("bench run %s: %d keys, %d probes, engines %v", runID, len(keys), len(probes), cfg.Kinds)
	results := make([]Result, 0, len(cfg.Kinds))
	for _, kind := range cfg.Kinds {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result, err := measure(ordtrees.Config{Kind: kind, MinDegree: cfg.MinDegree}, keys, probes)
		if err != nil {
			return results, err
		}
		result.RunID = runID
		results = append(results, result)
		if cast != nil {
			cast.Pub(result)
		}
	}
	return results, nil
}

func measure(cfg ordtrees.Config, keys, probes []int) (Result, error) {
	engine, err := ordtrees.New[int](cfg)
	if err != nil {
		return Result{}, err
	}
	result := Result{Kind: cfg.Kind, Inserted: len(keys), Probes: len(probes)}
	start := time.Now()
	for _, key := range keys {
		engine.Insert(key)
	}
	result.InsertTime = time.Since(start)
	start = time.Now()
	for _, key := range probes {
		if engine.Contains(key) {
			result.Hits++
		}
	}
	if len(probes) > 0 {
		result.SearchTime = time.Since(start) / time.Duration(len(probes))
	}
	result.Distinct = engine.Len()
	result.Height = engine.Height()
	if result.Err = engine.Check(); result.Err != nil {
		tracer().Errorf("%s engine: %v", cfg.Kind, result.Err)
	}
	tracer().Debugf("measured %s", result)
	return result, nil
}
