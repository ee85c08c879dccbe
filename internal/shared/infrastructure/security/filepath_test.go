package security

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFilePath(t *testing.T) {
	t.Run("rejects empty path", func(t *testing.T) {
		_, err := ValidateFilePath("  ")
		assert.ErrorIs(t, err, ErrInvalidPath)
	})

	t.Run("rejects NUL byte", func(t *testing.T) {
		_, err := ValidateFilePath("tasks\x00.json")
		assert.ErrorIs(t, err, ErrInvalidPath)
	})

	t.Run("resolves existing file", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "tasks.json")
		require.NoError(t, os.WriteFile(file, []byte("[]"), 0o600))

		got, err := ValidateFilePath(filepath.Join(dir, ".", "sub", "..", "tasks.json"))
		require.NoError(t, err)

		// /tmp may itself be a symlink, e.g. on macOS
		want, _ := filepath.EvalSymlinks(file)
		assert.Equal(t, want, got)
	})

	t.Run("keeps missing file cleaned", func(t *testing.T) {
		dir := t.TempDir()
		got, err := ValidateFilePath(filepath.Join(dir, "a", "..", "missing.json"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "missing.json"), got)
	})

	t.Run("makes relative paths absolute", func(t *testing.T) {
		got, err := ValidateFilePath("missing-relative.json")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})
}

func TestReadUserFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "tasks.json")
	require.NoError(t, os.WriteFile(file, []byte(`[{"name":"a"}]`), 0o600))

	tests := []struct {
		name     string
		path     string
		maxBytes int64
		want     string
		wantErr  error
	}{
		{name: "reads file", path: file, want: `[{"name":"a"}]`},
		{name: "no limit", path: file, maxBytes: 0, want: `[{"name":"a"}]`},
		{name: "too large", path: file, maxBytes: 4, wantErr: ErrInvalidPath},
		{name: "directory", path: dir, wantErr: ErrInvalidPath},
		{name: "missing", path: filepath.Join(dir, "nope.json"), wantErr: fs.ErrNotExist},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadUserFile(tt.path, tt.maxBytes)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}
