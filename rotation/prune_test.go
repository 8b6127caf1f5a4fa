package rotation_test

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpacahq/logroller/filespec"
	"github.com/alpacahq/logroller/rotation"
	"github.com/alpacahq/logroller/utils/test"
)

func TestPruner_Prune(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		keep        int
		wantRemoved []string
		wantLeft    []string
	}{
		"ok/ oldest archives and their compressed copies are removed": {
			keep:        2,
			wantRemoved: []string{"app_r00000.log.gz", "app_r00001.log", "app_r00001.log.gz", "app_r00010.log"},
			wantLeft:    []string{"app.log", "app_r00099.log", "app_r00100.log", "app_rCURRENT.log"},
		},
		"ok/ nothing to do below the limit": {
			keep:     10,
			wantLeft: []string{"app.log", "app_r00000.log.gz", "app_r00001.log", "app_r00001.log.gz", "app_r00010.log", "app_r00099.log", "app_r00100.log", "app_rCURRENT.log"},
		},
		"ok/ zero keeps everything": {
			keep:     0,
			wantLeft: []string{"app.log", "app_r00000.log.gz", "app_r00001.log", "app_r00001.log.gz", "app_r00010.log", "app_r00099.log", "app_r00100.log", "app_rCURRENT.log"},
		},
	}
	for name := range tests {
		tt := tests[name]
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			// --- given ---
			dir := t.TempDir()
			test.MakeLogDir(t, dir,
				"app.log", "app_rCURRENT.log", "app_r00000.log.gz", "app_r00001.log", "app_r00001.log.gz",
				"app_r00010.log", "app_r00099.log", "app_r00100.log",
			)
			spec := filespec.FileSpec{Directory: dir, Basename: "app"}

			// --- when ---
			removed, err := rotation.NewPruner(spec, rotation.NewFinder(os.ReadDir)).Prune(tt.keep)

			// --- then ---
			require.Nil(t, err)
			var removedNames []string
			for _, p := range removed {
				removedNames = append(removedNames, filepath.Base(p))
			}
			sort.Strings(removedNames)
			assert.Equal(t, tt.wantRemoved, removedNames)

			assert.Equal(t, tt.wantLeft, test.ListDir(t, dir))
		})
	}
}

func TestPruner_PruneListingError(t *testing.T) {
	t.Parallel()
	listErr := errors.New("boom")

	_, err := rotation.NewPruner(filespec.FileSpec{}, &staticLister{err: listErr}).Prune(1)

	assert.Equal(t, listErr, err)
}
