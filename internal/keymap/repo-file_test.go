package keymap_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/robgonnella/keycombo/internal/exception"
	"github.com/robgonnella/keycombo/internal/keymap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepo(t *testing.T) {
	km := &keymap.Keymap{
		Name: "editor",
		Bindings: map[string][]string{
			"quit": {"ctrl-q", "esc"},
			"save": {"ctrl-s"},
		},
	}

	for _, ext := range []string{".yaml", ".yml", ".json", ".toml"} {
		t.Run("saves and loads "+ext, func(st *testing.T) {
			path := filepath.Join(st.TempDir(), "nested", "editor"+ext)

			repo := keymap.NewFileRepo(path)

			assert.Equal(st, path, repo.Path())

			require.NoError(st, repo.Save(km))

			loaded, err := repo.Load()

			require.NoError(st, err)
			assert.Equal(st, km, loaded)
		})
	}

	t.Run("loads yaml keymap", func(st *testing.T) {
		path := filepath.Join(st.TempDir(), "vim.yml")

		data := "name: vim\nbindings:\n  left: [h, left]\n  right:\n    - l\n"

		require.NoError(st, os.WriteFile(path, []byte(data), 0644))

		loaded, err := keymap.NewFileRepo(path).Load()

		require.NoError(st, err)
		assert.Equal(st, "vim", loaded.Name)
		assert.Equal(st, []string{"h", "left"}, loaded.Bindings["left"])
		assert.Equal(st, []string{"l"}, loaded.Bindings["right"])
	})

	t.Run("loads toml keymap", func(st *testing.T) {
		path := filepath.Join(st.TempDir(), "emacs.toml")

		data := "name = \"emacs\"\n\n[bindings]\nsave = [\"ctrl-x\"]\n"

		require.NoError(st, os.WriteFile(path, []byte(data), 0644))

		loaded, err := keymap.NewFileRepo(path).Load()

		require.NoError(st, err)
		assert.Equal(st, "emacs", loaded.Name)
		assert.Equal(st, []string{"ctrl-x"}, loaded.Bindings["save"])
	})

	t.Run("names keymap after file", func(st *testing.T) {
		path := filepath.Join(st.TempDir(), "unnamed.json")

		require.NoError(st, os.WriteFile(path, []byte(`{}`), 0644))

		loaded, err := keymap.NewFileRepo(path).Load()

		require.NoError(st, err)
		assert.Equal(st, "unnamed", loaded.Name)
		assert.NotNil(st, loaded.Bindings)
		assert.Empty(st, loaded.Bindings)
	})

	t.Run("returns error for unsupported extension", func(st *testing.T) {
		path := filepath.Join(st.TempDir(), "keys.ini")

		require.NoError(st, os.WriteFile(path, []byte("quit=q"), 0644))

		repo := keymap.NewFileRepo(path)

		_, err := repo.Load()

		assert.ErrorIs(st, err, exception.ErrUnsupportedFormat)
		assert.ErrorIs(st, repo.Save(km), exception.ErrUnsupportedFormat)
	})

	t.Run("returns error for malformed file", func(st *testing.T) {
		path := filepath.Join(st.TempDir(), "broken.json")

		require.NoError(st, os.WriteFile(path, []byte(`{"bindings": [}`), 0644))

		_, err := keymap.NewFileRepo(path).Load()

		assert.Error(st, err)
	})

	t.Run("returns error for missing file", func(st *testing.T) {
		_, err := keymap.NewFileRepo(filepath.Join(st.TempDir(), "nope.yaml")).Load()

		assert.ErrorIs(st, err, os.ErrNotExist)
	})
}
