package bench

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/guiguan/caster"
	"github.com/npillmayer/ordtrees"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) func() {
	teardown := gotestingadapter.QuickConfig(t, "bench")
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	return teardown
}

func TestKeysAreReproducible(t *testing.T) {
	teardown := setup(t)
	defer teardown()
	//
	a, err := Keys(42, 1000, 10000)
	require.NoError(t, err)
	b, _ := Keys(42, 1000, 10000)
	c, _ := Keys(43, 1000, 10000)
	require.Len(t, a, 1000)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	for _, k := range a {
		require.True(t, k >= 1 && k <= 10000, "key %d out of range", k)
	}
	ones, err := Keys(1, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1}, ones)
	empty, err := Keys(1, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestKeysRejectsInvalidRange(t *testing.T) {
	teardown := setup(t)
	defer teardown()
	//
	_, err := Keys(1, 10, 0)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = Keys(1, -1, 100)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRunMeasuresAllEngines(t *testing.T) {
	teardown := setup(t)
	defer teardown()
	//
	cfg := DefaultConfig()
	cfg.Count = 500
	cfg.Probes = 200
	results, err := Run(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.Len(t, results, len(ordtrees.Kinds()))
	distinct := results[0].Distinct
	for i, r := range results {
		assert.Equal(t, cfg.Kinds[i], r.Kind)
		assert.Equal(t, results[0].RunID, r.RunID)
		assert.NotEqual(t, uuid.Nil, r.RunID)
		assert.True(t, r.OK(), "%s: %v", r.Kind, r.Err)
		assert.Equal(t, 500, r.Inserted)
		assert.Equal(t, distinct, r.Distinct, "engines disagree on distinct keys")
		assert.Equal(t, results[0].Hits, r.Hits, "engines disagree on search hits")
		assert.Equal(t, 200, r.Probes)
		assert.Positive(t, r.Height)
	}
	assert.LessOrEqual(t, distinct, 500)
	// the unbalanced tree is never lower than the balanced ones
	assert.GreaterOrEqual(t, results[0].Height, results[1].Height)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	teardown := setup(t)
	defer teardown()
	//
	_, err := Run(context.Background(), Config{Count: -1}, nil)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	_, err = Run(context.Background(), Config{Kinds: []ordtrees.Kind{ordtrees.BTree}, MinDegree: 1}, nil)
	assert.Error(t, err)
}

func TestRunHonorsCancellation(t *testing.T) {
	teardown := setup(t)
	defer teardown()
	//
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := Run(ctx, DefaultConfig(), nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestRunPublishesResults(t *testing.T) {
	teardown := setup(t)
	defer teardown()
	//
	ctx := context.Background()
	cast := caster.New(ctx)
	sub, ok := cast.Sub(ctx, 8)
	require.True(t, ok)
	done := make(chan []Result)
	go func() {
		var got []Result
		for msg := range sub {
			got = append(got, msg.(Result))
		}
		done <- got
	}()
	cfg := Config{Kinds: []ordtrees.Kind{ordtrees.AVL, ordtrees.RedBlack}, Count: 100, Probes: 10}
	results, err := Run(ctx, cfg, cast)
	require.NoError(t, err)
	cast.Close()
	published := <-done
	require.Len(t, published, 2)
	assert.Equal(t, results[0].Kind, published[0].Kind)
	assert.Equal(t, results[1].RunID, published[1].RunID)
}

func TestWriteCSV(t *testing.T) {
	teardown := setup(t)
	defer teardown()
	//
	results, err := Run(context.Background(), Config{Count: 50, Probes: 5}, nil)
	require.NoError(t, err)
	results[1].Err = errors.New("broken")
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, results))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(results)+1)
	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, "bst", records[1][1])
	assert.Equal(t, results[0].RunID.String(), records[1][0])
	assert.Equal(t, "broken", records[2][9])
	assert.Equal(t, "", records[3][9])
}
