package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpacahq/logroller/metrics"
)

func TestWriteTextfile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "logroller.prom")
	metrics.HighestIndex.Set(3)

	require.Nil(t, metrics.WriteTextfile(path))

	b, err := os.ReadFile(path)
	require.Nil(t, err)
	assert.True(t, strings.Contains(string(b), "alpaca_logroller_highest_index"))
	assert.True(t, strings.Contains(string(b), "alpaca_logroller_rotations_total"))
}

func TestWriteTextfileDisabled(t *testing.T) {
	t.Parallel()
	assert.Nil(t, metrics.WriteTextfile(""))
}
