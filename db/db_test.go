package db_test

import (
	"os"
	"path/filepath"
	"testing"

	"cyclehud/cycle"
	"cyclehud/db"
	"cyclehud/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(formSpec, name string) model.CycleEntry {
	return model.CycleEntry{
		FormSpec: formSpec,
		Name:     name,
		Kind:     model.KindSpell,
		Color:    model.Color{R: 92, G: 171, B: 214, A: 255},
	}
}

func TestConnectToMemoryDB(t *testing.T) {
	t.Run("fresh store should load empty cycles", func(t *testing.T) {
		store, err := db.ConnectDB(":memory:")
		require.NoError(t, err)
		defer store.Close()

		data, err := store.Load()

		assert.NoError(t, err)
		for _, slot := range model.SlotActions {
			assert.Equal(t, 0, data.Len(slot))
		}
	})

	t.Run("should round-trip rotations preserving order", func(t *testing.T) {
		store, err := db.ConnectDB(":memory:")
		require.NoError(t, err)
		defer store.Close()

		data := cycle.New()
		data.Toggle(model.Left, entry("mod.esp|0x01", "Frostbite"))
		data.Toggle(model.Left, entry("mod.esp|0x02", "Flames"))
		data.Toggle(model.Right, entry("mod.esp|0x03", "Iron Sword"))
		data.Toggle(model.Power, entry("mod.esp|0x04", "Battle Cry"))
		// put Flames on top of the left cycle before saving
		data.Advance(model.Left, 1)

		require.NoError(t, store.Save(data))

		loaded, err := store.Load()
		require.NoError(t, err)

		assert.Equal(t, []string{"Flames", "Frostbite"}, loaded.Names(model.Left))
		assert.Equal(t, []string{"Iron Sword"}, loaded.Names(model.Right))
		assert.Equal(t, []string{"Battle Cry"}, loaded.Names(model.Power))
		assert.Equal(t, 0, loaded.Len(model.Utility))

		got := loaded.Entries(model.Left)[0]
		assert.Equal(t, model.KindSpell, got.Kind)
		assert.Equal(t, uint8(171), got.Color.G)
	})

	t.Run("save should fully replace the previous snapshot", func(t *testing.T) {
		store, err := db.ConnectDB(":memory:")
		require.NoError(t, err)
		defer store.Close()

		data := cycle.New()
		data.Toggle(model.Utility, entry("mod.esp|0x01", "Health Potion"))
		require.NoError(t, store.Save(data))

		data.Toggle(model.Utility, entry("mod.esp|0x01", "Health Potion")) // remove again
		data.Toggle(model.Utility, entry("mod.esp|0x02", "Lockpick"))
		require.NoError(t, store.Save(data))

		loaded, err := store.Load()
		require.NoError(t, err)

		assert.Equal(t, []string{"Lockpick"}, loaded.Names(model.Utility))
	})
}

func TestCorruptStore(t *testing.T) {
	t.Run("should fail to open garbage files", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cycles.sqlite")
		require.NoError(t, os.WriteFile(path, []byte("this is not a database"), 0o644))

		_, err := db.ConnectDB(path)

		assert.Error(t, err)
	})

	t.Run("should still start a session over a garbage file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cycles.sqlite")
		require.NoError(t, os.WriteFile(path, []byte("this is not a database"), 0o644))

		store, err := db.ConnectOrFallback(path)
		require.NoError(t, err)
		defer store.Close()

		data, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, 0, data.Len(model.Left))

		data.Toggle(model.Left, entry("weapon/dagger.esp", "Dagger"))
		assert.NoError(t, store.Save(data))
	})
}

func TestMerge(t *testing.T) {
	t.Run("should union slots keeping first-seen order", func(t *testing.T) {
		first, err := db.ConnectDB(":memory:")
		require.NoError(t, err)
		defer first.Close()
		second, err := db.ConnectDB(":memory:")
		require.NoError(t, err)
		defer second.Close()
		out, err := db.ConnectDB(":memory:")
		require.NoError(t, err)
		defer out.Close()

		a := cycle.New()
		a.Toggle(model.Left, entry("mod.esp|0x01", "Frostbite"))
		a.Toggle(model.Left, entry("mod.esp|0x02", "Flames"))
		require.NoError(t, first.Save(a))

		b := cycle.New()
		b.Toggle(model.Left, entry("mod.esp|0x02", "Flames"))
		b.Toggle(model.Left, entry("mod.esp|0x03", "Sparks"))
		b.Toggle(model.Right, entry("mod.esp|0x04", "Dagger"))
		require.NoError(t, second.Save(b))

		require.NoError(t, db.Merge([]*db.SQLiteStore{first, second}, out))

		merged, err := out.Load()
		require.NoError(t, err)

		assert.Equal(t, []string{"Frostbite", "Flames", "Sparks"}, merged.Names(model.Left))
		assert.Equal(t, []string{"Dagger"}, merged.Names(model.Right))
	})
}
