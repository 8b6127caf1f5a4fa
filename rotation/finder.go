package rotation

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/alpacahq/logroller/filespec"
	"github.com/alpacahq/logroller/utils/log"
)

// CompressedExt is appended to an archive that was compressed after rotation.
const CompressedExt = ".gz"

// Candidate is an archive file of the rotation sequence.
type Candidate struct {
	Name string
	// Stem is Name without the suffix and without CompressedExt.
	Stem string
	Path string
	Size int64
	// Compressed is true when only the compressed representation exists.
	Compressed bool
	// Duplicates holds the paths of other representations of the same
	// archive, i.e. a compressed copy next to the plain file.
	Duplicates []string
}

// Lister enumerates the numbered archives of a FileSpec.
type Lister interface {
	Find(spec filespec.FileSpec) ([]Candidate, error)
}

type Finder struct {
	dirRead func(name string) ([]os.DirEntry, error)
}

func NewFinder(dirRead func(name string) ([]os.DirEntry, error)) *Finder {
	return &Finder{dirRead: dirRead}
}

// Find returns the numbered archives directly under spec.Directory, sorted by name.
// The active file is excluded, and an archive present both plain and compressed
// is returned once. A missing directory yields no candidates.
func (f *Finder) Find(spec filespec.FileSpec) ([]Candidate, error) {
	dir := spec.Directory
	if dir == "" {
		dir = "."
	}
	plain, compressed, err := archivePatterns(spec)
	if err != nil {
		return nil, err
	}

	entries, err := f.dirRead(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to read the directory %s: %w", dir, err)
	}

	ext := "." + spec.SuffixOrDefault()
	byStem := make(map[string]*Candidate)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		var (
			stem         string
			isCompressed bool
		)
		switch {
		case plain.Match(name):
			stem = strings.TrimSuffix(name, ext)
		case compressed.Match(name):
			stem = strings.TrimSuffix(name, ext+CompressedExt)
			isCompressed = true
		default:
			continue
		}

		path := filepath.Join(dir, name)
		if prev, found := byStem[stem]; found {
			// the plain file wins over its compressed copy
			if prev.Compressed && !isCompressed {
				prev.Duplicates = append(prev.Duplicates, prev.Path)
				prev.Name, prev.Path, prev.Compressed = name, path, false
				prev.Size = entrySize(entry)
			} else {
				prev.Duplicates = append(prev.Duplicates, path)
			}
			continue
		}

		log.Debug("found an archive: %s", name)
		byStem[stem] = &Candidate{
			Name:       name,
			Stem:       stem,
			Path:       path,
			Size:       entrySize(entry),
			Compressed: isCompressed,
		}
	}

	ret := make([]Candidate, 0, len(byStem))
	for _, c := range byStem {
		ret = append(ret, *c)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Name < ret[j].Name })
	return ret, nil
}

// archivePatterns compiles the name patterns of plain and compressed archives.
// "r" followed by a digit excludes the active file (CurrentInfix).
func archivePatterns(spec filespec.FileSpec) (plain, compressed glob.Glob, err error) {
	base := glob.QuoteMeta(spec.Prefix()) + infixMarker + "[0-9]*" + glob.QuoteMeta("."+spec.SuffixOrDefault())
	plain, err = glob.Compile(base)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid archive name pattern %s: %w", base, err)
	}
	compressed, err = glob.Compile(base + glob.QuoteMeta(CompressedExt))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid compressed archive name pattern %s: %w", base, err)
	}
	return plain, compressed, nil
}

func entrySize(entry os.DirEntry) int64 {
	info, err := entry.Info()
	if err != nil {
		// removed since the directory was read
		return 0
	}
	return info.Size()
}
