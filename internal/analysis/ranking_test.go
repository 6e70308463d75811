package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidden-champions/county-atlas/internal/dataset"
)

func centralityRecord(label string, v dataset.Value) dataset.CountyRecord {
	return record(label, map[dataset.Key]dataset.Value{
		dataset.KeySAFCentrality: v,
	})
}

func labels(records []dataset.CountyRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Label
	}
	return out
}

func TestTopN_MissingSortsLast(t *testing.T) {
	// Scenario: A(5), B(15), C(missing). Top-2 by centrality is [B, A].
	records := []dataset.CountyRecord{
		centralityRecord("A", dataset.Some(5)),
		centralityRecord("B", dataset.Some(15)),
		centralityRecord("C", dataset.None()),
	}

	top := TopN(records, dataset.KeySAFCentrality, 2)
	assert.Equal(t, []string{"B", "A"}, labels(top))

	// A large enough N still surfaces the missing-value row, at the bottom.
	all := TopN(records, dataset.KeySAFCentrality, 10)
	assert.Equal(t, []string{"B", "A", "C"}, labels(all))
}

func TestTopN_StableOnTies(t *testing.T) {
	records := []dataset.CountyRecord{
		centralityRecord("first", dataset.Some(1)),
		centralityRecord("second", dataset.Some(1)),
		centralityRecord("third", dataset.Some(1)),
	}

	top := TopN(records, dataset.KeySAFCentrality, 3)
	assert.Equal(t, []string{"first", "second", "third"}, labels(top))
}

func TestTopN_StableAmongMissing(t *testing.T) {
	records := []dataset.CountyRecord{
		centralityRecord("m1", dataset.None()),
		centralityRecord("v", dataset.Some(3)),
		centralityRecord("m2", dataset.None()),
	}

	top := TopN(records, dataset.KeySAFCentrality, 3)
	assert.Equal(t, []string{"v", "m1", "m2"}, labels(top))
}

func TestTopN_DoesNotMutateInput(t *testing.T) {
	records := []dataset.CountyRecord{
		centralityRecord("low", dataset.Some(1)),
		centralityRecord("high", dataset.Some(9)),
	}

	_ = TopN(records, dataset.KeySAFCentrality, 2)
	assert.Equal(t, []string{"low", "high"}, labels(records))
}

func TestTopN_Bounds(t *testing.T) {
	records := []dataset.CountyRecord{
		centralityRecord("a", dataset.Some(1)),
		centralityRecord("b", dataset.Some(2)),
	}

	assert.Empty(t, TopN(records, dataset.KeySAFCentrality, 0))
	assert.Empty(t, TopN(records, dataset.KeySAFCentrality, -1))

	full := TopN(records, dataset.KeySAFCentrality, 99)
	require.Len(t, full, 2)
	assert.Equal(t, []string{"b", "a"}, labels(full))
}
