package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/panshare/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	t.Parallel()

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "dir", "results.json")

		err := fs.WriteReport(path, []byte(`[]`))

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(data))
	})

	t.Run("overwrites an existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "results.json")

		require.NoError(t, fs.WriteReport(path, []byte(`["old"]`)))
		require.NoError(t, fs.WriteReport(path, []byte(`["new"]`)))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[\"new\"]\n", string(data))
	})

	t.Run("does not duplicate a trailing newline", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "results.json")

		require.NoError(t, fs.WriteReport(path, []byte("[]\n")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(data))
	})
}
