package rotation_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpacahq/logroller/filespec"
	"github.com/alpacahq/logroller/rotation"
)

func touch(t *testing.T, path, content string) {
	t.Helper()
	require.Nil(t, os.WriteFile(path, []byte(content), 0o600))
}

func names(candidates []rotation.Candidate) []string {
	ret := make([]string, len(candidates))
	for i, c := range candidates {
		ret[i] = c.Name
	}
	return ret
}

func TestFinder_Find(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		spec      filespec.FileSpec
		files     []string
		dirs      []string
		wantNames []string
		wantStems []string
	}{
		"ok/ basename": {
			spec: filespec.FileSpec{Basename: "app"},
			files: []string{
				"app_r00001.log", "app_r00000.log", "app_rCURRENT.log",
				"app_r00002.txt", "other_r00005.log", "app.log",
			},
			dirs:      []string{"app_r00009.log"},
			wantNames: []string{"app_r00000.log", "app_r00001.log"},
			wantStems: []string{"app_r00000", "app_r00001"},
		},
		"ok/ infix only": {
			spec:      filespec.FileSpec{Suffix: "trc"},
			files:     []string{"r00003.trc", "r00001.trc", "rCURRENT.trc", "app_r00004.trc"},
			wantNames: []string{"r00001.trc", "r00003.trc"},
			wantStems: []string{"r00001", "r00003"},
		},
		"ok/ discriminant does not match plain basename archives": {
			spec:      filespec.FileSpec{Basename: "app", Discriminant: "node1"},
			files:     []string{"app_node1_r00003.log", "app_r00004.log"},
			wantNames: []string{"app_node1_r00003.log"},
			wantStems: []string{"app_node1_r00003"},
		},
		"ok/ compressed duplicate counted once": {
			spec:      filespec.FileSpec{Basename: "app"},
			files:     []string{"app_r00001.log", "app_r00001.log.gz", "app_r00000.log.gz"},
			wantNames: []string{"app_r00000.log.gz", "app_r00001.log"},
			wantStems: []string{"app_r00000", "app_r00001"},
		},
		"ok/ special characters in the basename are literal": {
			spec:      filespec.FileSpec{Basename: "a*b"},
			files:     []string{"a*b_r00001.log", "axb_r00002.log"},
			wantNames: []string{"a*b_r00001.log"},
			wantStems: []string{"a*b_r00001"},
		},
	}
	for name := range tests {
		tt := tests[name]
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			// --- given ---
			dir := t.TempDir()
			for _, f := range tt.files {
				touch(t, filepath.Join(dir, f), "x")
			}
			for _, d := range tt.dirs {
				require.Nil(t, os.Mkdir(filepath.Join(dir, d), 0o700))
			}
			spec := tt.spec
			spec.Directory = dir

			// --- when ---
			got, err := rotation.NewFinder(os.ReadDir).Find(spec)

			// --- then ---
			require.Nil(t, err)
			if diff := cmp.Diff(tt.wantNames, names(got)); diff != "" {
				t.Errorf("names mismatch (-want +got):\n%s", diff)
			}
			stems := make([]string, len(got))
			for i, c := range got {
				stems[i] = c.Stem
				assert.Equal(t, filepath.Join(dir, c.Name), c.Path)
			}
			if diff := cmp.Diff(tt.wantStems, stems); diff != "" {
				t.Errorf("stems mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFinder_FindDuplicates(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "app_r00001.log.gz"), "zz")
	touch(t, filepath.Join(dir, "app_r00001.log"), "plain")

	got, err := rotation.NewFinder(os.ReadDir).Find(filespec.FileSpec{Directory: dir, Basename: "app"})

	require.Nil(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].Compressed)
	assert.Equal(t, int64(len("plain")), got[0].Size)
	assert.Equal(t, []string{filepath.Join(dir, "app_r00001.log.gz")}, got[0].Duplicates)
}

func TestFinder_FindMissingDirectory(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "not-yet-created")

	got, err := rotation.NewFinder(os.ReadDir).Find(filespec.FileSpec{Directory: dir})

	assert.Nil(t, err)
	assert.Empty(t, got)
}

func TestFinder_FindReadError(t *testing.T) {
	t.Parallel()
	dirRead := func(string) ([]os.DirEntry, error) {
		return nil, fs.ErrPermission
	}

	_, err := rotation.NewFinder(dirRead).Find(filespec.FileSpec{Directory: "logs"})

	assert.True(t, errors.Is(err, fs.ErrPermission))
}
