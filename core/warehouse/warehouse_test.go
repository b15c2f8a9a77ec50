package warehouse

import (
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/siherrmann/wordarray/helper"
	"github.com/siherrmann/wordarray/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWarehouse(t *testing.T) {
	w := NewWarehouse(nil, nil)

	require.NotNil(t, w)
	assert.Equal(t, Name, w.Name())
	assert.Equal(t, 0, w.Len())
}

func TestWarehouseHandleEventAdd(t *testing.T) {
	t.Run("Computes statistics for a new array", func(t *testing.T) {
		w := NewWarehouse(nil, nil)
		array := model.NewWordArray([]string{"hello", "world", "test"})

		err := w.HandleEvent(model.Event{Array: array, Kind: model.EventAdd})
		require.NoError(t, err)

		stats, ok := w.Statistics(array.ID())
		require.True(t, ok, "Expected statistics to be present")
		assert.InDelta(t, 14.0/3.0, stats.AverageLength, 1e-9)
		assert.Equal(t, 14, stats.TotalCharacters)
		assert.Equal(t, 5, stats.MaxLength)
		assert.Equal(t, 4, stats.MinLength)
		assert.Equal(t, 3, stats.WordCount)
	})

	t.Run("Empty array gets an all zero record", func(t *testing.T) {
		w := NewWarehouse(nil, nil)
		array := model.NewWordArray(nil)

		require.NoError(t, w.HandleEvent(model.Event{Array: array, Kind: model.EventAdd}))

		stats, ok := w.Statistics(array.ID())
		require.True(t, ok)
		assert.Equal(t, model.Statistics{}, stats)
	})

	t.Run("Repeated ADD replaces the record", func(t *testing.T) {
		w := NewWarehouse(nil, nil)
		original := model.NewWordArray([]string{"a"})
		require.NoError(t, w.HandleEvent(model.Event{Array: original, Kind: model.EventAdd}))
		require.NoError(t, w.HandleEvent(model.Event{Array: original, Kind: model.EventAdd}))

		stats, ok := w.Statistics(original.ID())
		require.True(t, ok)
		assert.Equal(t, 1, stats.WordCount)
		assert.Equal(t, 1, w.Len())
	})

	t.Run("Nil array is ignored", func(t *testing.T) {
		w := NewWarehouse(nil, nil)

		assert.NoError(t, w.HandleEvent(model.Event{Kind: model.EventAdd}))
		assert.Equal(t, 0, w.Len())
	})
}

func TestWarehouseHandleEventRemove(t *testing.T) {
	t.Run("Evicts an existing record", func(t *testing.T) {
		w := NewWarehouse(nil, nil)
		array := model.NewWordArray([]string{"single"})
		require.NoError(t, w.HandleEvent(model.Event{Array: array, Kind: model.EventAdd}))

		require.NoError(t, w.HandleEvent(model.Event{Array: array, Kind: model.EventRemove}))

		_, ok := w.Statistics(array.ID())
		assert.False(t, ok, "Expected statistics to be absent after REMOVE")
	})

	t.Run("Unknown ID is a no-op", func(t *testing.T) {
		w := NewWarehouse(nil, nil)
		kept := model.NewWordArray([]string{"kept"})
		require.NoError(t, w.HandleEvent(model.Event{Array: kept, Kind: model.EventAdd}))

		err := w.HandleEvent(model.Event{Array: model.NewWordArray(nil), Kind: model.EventRemove})

		assert.NoError(t, err)
		assert.Equal(t, 1, w.Len())
	})
}

func TestWarehouseHandleEventUnknownKind(t *testing.T) {
	w := NewWarehouse(nil, nil)
	array := model.NewWordArray([]string{"a"})

	err := w.HandleEvent(model.Event{Array: array, Kind: model.EventKind("UPDATE")})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "UPDATE")
	assert.Equal(t, 0, w.Len())
}

func TestWarehouseStatistics(t *testing.T) {
	t.Run("Unknown ID is absent, not a zero record", func(t *testing.T) {
		w := NewWarehouse(nil, nil)

		stats, ok := w.Statistics(uuid.New())

		assert.False(t, ok)
		assert.Equal(t, model.Statistics{}, stats)
	})

	t.Run("Returned record cannot change the cache", func(t *testing.T) {
		w := NewWarehouse(nil, nil)
		array := model.NewWordArray([]string{"abc"})
		require.NoError(t, w.HandleEvent(model.Event{Array: array, Kind: model.EventAdd}))

		stats, _ := w.Statistics(array.ID())
		stats.MaxLength = 100

		cached, _ := w.Statistics(array.ID())
		assert.Equal(t, 3, cached.MaxLength)
	})
}

func TestWarehouseClear(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := helper.NewMetrics("test", reg)
	require.NoError(t, err)

	w := NewWarehouse(nil, metrics)
	for _, words := range [][]string{{"a"}, {"b", "c"}} {
		require.NoError(t, w.HandleEvent(model.Event{Array: model.NewWordArray(words), Kind: model.EventAdd}))
	}
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.WarehouseRecords))

	w.Clear()

	assert.Equal(t, 0, w.Len())
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.WarehouseRecords))
}
