package cursor

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/orgball2608/nitter-relay-telegram-bot/pkg/config"
	"github.com/orgball2608/nitter-relay-telegram-bot/pkg/logger"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, statePath string) *File {
	t.Helper()
	cfg := &config.Config{}
	cfg.State.FilePath = statePath
	return NewFile(Opts{
		Config: cfg,
		Logger: logger.New(logger.Opts{}),
	})
}

func TestFileStore(t *testing.T) {
	t.Run("AbsentFileStartsEmpty", func(t *testing.T) {
		store := newTestStore(t, filepath.Join(t.TempDir(), "state.json"))
		require.Empty(t, store.Snapshot())

		_, ok := store.Get("alice")
		require.False(t, ok)
	})

	t.Run("CorruptFileStartsEmpty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		store := newTestStore(t, path)
		require.Empty(t, store.Snapshot())
	})

	t.Run("SaveLoadRoundtrip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state.json")

		store := newTestStore(t, path)
		store.Advance("alice", "101")
		store.Advance("bob", "2000")
		require.NoError(t, store.Save())

		reloaded := newTestStore(t, path)
		id, ok := reloaded.Get("alice")
		require.True(t, ok)
		require.Equal(t, "101", id)
		require.Equal(t, map[string]string{"alice": "101", "bob": "2000"}, reloaded.Snapshot())
	})

	t.Run("SaveOverwritesWholesale", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"stale":"1"}`), 0o644))

		store := newTestStore(t, path)
		store.state = map[string]string{"alice": "5"}
		require.NoError(t, store.Save())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var onDisk map[string]string
		require.NoError(t, json.Unmarshal(data, &onDisk))
		require.Equal(t, map[string]string{"alice": "5"}, onDisk)
	})

	t.Run("AdvanceIsMonotonic", func(t *testing.T) {
		store := newTestStore(t, filepath.Join(t.TempDir(), "state.json"))

		store.Advance("alice", "101")
		store.Advance("alice", "100") // rewind attempt is ignored
		id, _ := store.Get("alice")
		require.Equal(t, "101", id)

		store.Advance("alice", "102")
		id, _ = store.Get("alice")
		require.Equal(t, "102", id)
	})

	t.Run("AdvanceComparesNumerically", func(t *testing.T) {
		store := newTestStore(t, filepath.Join(t.TempDir(), "state.json"))

		store.Advance("alice", "99")
		store.Advance("alice", "100") // lexically smaller, numerically greater
		id, _ := store.Get("alice")
		require.Equal(t, "100", id)
	})

	t.Run("AdvanceIgnoresNonNumeric", func(t *testing.T) {
		store := newTestStore(t, filepath.Join(t.TempDir(), "state.json"))

		store.Advance("alice", "abc")
		_, ok := store.Get("alice")
		require.False(t, ok)
	})

	t.Run("SnapshotIsACopy", func(t *testing.T) {
		store := newTestStore(t, filepath.Join(t.TempDir(), "state.json"))
		store.Advance("alice", "1")

		snap := store.Snapshot()
		snap["alice"] = "999"

		id, _ := store.Get("alice")
		require.Equal(t, "1", id)
	})
}
