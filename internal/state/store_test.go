package state

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobvie/gearlist/internal/storage"
)

func newTestStore(t *testing.T) (*Store, *storage.MockBackend) {
	t.Helper()
	backend := storage.NewMockBackend()
	store := NewStore(backend, "light")
	store.Load()
	return store, backend
}

func TestStore_SetGetRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	tests := []struct {
		name  string
		path  string
		value any
	}{
		{name: "flat key", path: "theme2", value: "dark"},
		{name: "nested path creates intermediates", path: "a.b.c", value: float64(5)},
		{name: "boolean leaf", path: "hideout.battery-cell", value: true},
		{name: "deep path", path: "w.x.y.z", value: "deep"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store.Set(tt.path, tt.value)

			got, ok := store.Get(tt.path)
			require.True(t, ok)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestStore_GetDefault(t *testing.T) {
	store, _ := newTestStore(t)

	assert.Equal(t, "fallback", store.GetDefault("a.b.c", "fallback"))

	store.Set("a.b.c", 5)
	assert.Equal(t, 5, store.GetDefault("a.b.c", "fallback"))
}

func TestStore_GetStopsAtNonTraversableIntermediate(t *testing.T) {
	store, _ := newTestStore(t)

	store.Set("a.b", "scalar")

	_, ok := store.Get("a.b.c")
	assert.False(t, ok)
	assert.Equal(t, "fallback", store.GetDefault("a.b.c", "fallback"))
}

func TestStore_SetOverwritesNonMapIntermediate(t *testing.T) {
	store, _ := newTestStore(t)

	store.Set("a.b", "scalar")
	store.Set("a.b.c", true)

	got, ok := store.Get("a.b.c")
	require.True(t, ok)
	assert.Equal(t, true, got)
}

func TestStore_ToggleTwiceRestoresOriginal(t *testing.T) {
	store, _ := newTestStore(t)

	require.False(t, store.GetBool("hideout.fuel-cell"))

	assert.True(t, store.Toggle("hideout.fuel-cell"))
	assert.False(t, store.Toggle("hideout.fuel-cell"))
	assert.False(t, store.GetBool("hideout.fuel-cell"))
}

func TestStore_ToggleTreatsNonBoolAsFalse(t *testing.T) {
	store, _ := newTestStore(t)

	store.Set("a.b", "not a bool")
	assert.True(t, store.Toggle("a.b"))
}

func TestStore_LoadMissingBlobStartsFresh(t *testing.T) {
	store, _ := newTestStore(t)

	collapsed, ok := store.Get("collapsed")
	require.True(t, ok)
	assert.Empty(t, collapsed)
	assert.Equal(t, "light", store.Theme())
}

func TestStore_LoadCorruptBlobStartsFresh(t *testing.T) {
	backend := storage.NewMockBackend()
	backend.Set(storage.KeyState, []byte("{not json"))

	store := NewStore(backend, "light")
	store.Load()

	_, ok := store.Get("collapsed")
	assert.True(t, ok)
	assert.Equal(t, "light", store.Theme())
}

func TestStore_LoadRestoresPersistedState(t *testing.T) {
	backend := storage.NewMockBackend()

	first := NewStore(backend, "light")
	first.Load()
	first.SetItemCompleted("hideout", "battery-cell-station-x", true)

	second := NewStore(backend, "light")
	second.Load()
	assert.True(t, second.ItemCompleted("hideout", "battery-cell-station-x"))
}

func TestStore_DedicatedThemeKeyWinsOverBlob(t *testing.T) {
	backend := storage.NewMockBackend()
	blob, err := json.Marshal(map[string]any{"theme": "light", "collapsed": map[string]any{}})
	require.NoError(t, err)
	backend.Set(storage.KeyState, blob)
	backend.Set(storage.KeyTheme, []byte("dark"))

	store := NewStore(backend, "light")
	store.Load()

	assert.Equal(t, "dark", store.Theme())
}

func TestStore_SetThemeWritesBothKeys(t *testing.T) {
	store, backend := newTestStore(t)

	store.SetTheme("dark")

	data, err := backend.Read(storage.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", string(data))

	blob, err := backend.Read(storage.KeyState)
	require.NoError(t, err)
	var tree map[string]any
	require.NoError(t, json.Unmarshal(blob, &tree))
	assert.Equal(t, "dark", tree["theme"])
}

func TestStore_PersistFailureStillUpdatesMemoryAndNotifies(t *testing.T) {
	store, backend := newTestStore(t)
	backend.FailWrites = errors.New("quota exceeded")

	notified := false
	unsubscribe := store.Subscribe("hideout.battery-cell", func(path string, value any) {
		notified = true
		assert.Equal(t, "hideout.battery-cell", path)
		assert.Equal(t, true, value)
	})
	defer unsubscribe()

	store.Set("hideout.battery-cell", true)

	assert.True(t, store.GetBool("hideout.battery-cell"))
	assert.True(t, notified)
}

func TestStore_SubscribeExactPathOnly(t *testing.T) {
	store, _ := newTestStore(t)

	var calls []string
	store.Subscribe("a.b", func(path string, value any) {
		calls = append(calls, path)
	})

	store.Set("a.b.c", true)
	store.Set("a", true)
	assert.Empty(t, calls)

	store.Set("a.b", true)
	assert.Equal(t, []string{"a.b"}, calls)
}

func TestStore_PanickingSubscriberDoesNotStopOthers(t *testing.T) {
	store, _ := newTestStore(t)

	store.Subscribe("x", func(path string, value any) {
		panic("listener broke")
	})

	secondRan := false
	store.Subscribe("x", func(path string, value any) {
		secondRan = true
	})

	require.NotPanics(t, func() {
		store.Set("x", 1)
	})
	assert.True(t, secondRan)
}

func TestStore_Unsubscribe(t *testing.T) {
	store, _ := newTestStore(t)

	calls := 0
	unsubscribe := store.Subscribe("x", func(path string, value any) {
		calls++
	})

	store.Set("x", 1)
	unsubscribe()
	store.Set("x", 2)

	assert.Equal(t, 1, calls)
}

func TestStore_StateReturnsTopLevelCopy(t *testing.T) {
	store, _ := newTestStore(t)
	store.Set("a", 1)

	snapshot := store.State()
	snapshot["a"] = 2
	delete(snapshot, "collapsed")

	got, ok := store.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, got)
	_, ok = store.Get("collapsed")
	assert.True(t, ok)
}

func TestStore_ClearRemovesKeysAndWritesBackup(t *testing.T) {
	store, backend := newTestStore(t)
	store.SetItemCompleted("hideout", "battery-cell", true)
	store.SetTheme("dark")

	store.Clear()

	assert.False(t, backend.Has(storage.KeyState))
	assert.False(t, backend.Has(storage.KeyTheme))
	assert.False(t, store.ItemCompleted("hideout", "battery-cell"))
	assert.Equal(t, "light", store.Theme())

	backupFound := false
	for _, key := range backend.Keys() {
		if strings.Contains(key, "backup") {
			backupFound = true
		}
	}
	assert.True(t, backupFound, "expected a backup snapshot key")
}

func TestStore_ClearSurvivesDeleteFailure(t *testing.T) {
	store, backend := newTestStore(t)
	store.SetItemCompleted("hideout", "battery-cell", true)
	backend.FailDeletes = errors.New("readonly storage")

	require.NotPanics(t, store.Clear)

	// The in-memory reset happens even when the durable keys stay behind.
	assert.False(t, store.ItemCompleted("hideout", "battery-cell"))
	assert.True(t, backend.Has(storage.KeyState))
}

func TestStore_CompletionAndCollapseWrappers(t *testing.T) {
	store, _ := newTestStore(t)

	assert.False(t, store.ItemCompleted("hideout", "battery-cell"))
	assert.True(t, store.ToggleItem("hideout", "battery-cell"))
	assert.True(t, store.ItemCompleted("hideout", "battery-cell"))

	assert.False(t, store.GroupCollapsed("station-x"))
	assert.True(t, store.ToggleGroup("station-x"))
	assert.True(t, store.GroupCollapsed("station-x"))

	// Collapse flags live under their own sub-tree, not beside projects.
	_, ok := store.Get("collapsed.station-x")
	assert.True(t, ok)
}
