package test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// MakeLogDir creates the named files under root, each holding a single line.
func MakeLogDir(t *testing.T, root string, names ...string) {
	t.Helper()
	const allowOwnerPerm = 0o700
	require.Nil(t, os.MkdirAll(root, allowOwnerPerm))
	for _, name := range names {
		require.Nil(t, os.WriteFile(filepath.Join(root, name), []byte("line\n"), 0o600))
	}
}

// ListDir returns the names directly under root, sorted.
func ListDir(t *testing.T, root string) []string {
	t.Helper()
	entries, err := os.ReadDir(root)
	require.Nil(t, err)
	ret := make([]string, 0, len(entries))
	for _, e := range entries {
		ret = append(ret, e.Name())
	}
	return ret
}
