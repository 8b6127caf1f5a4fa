// Package rotation allocates the index of the next archived log segment and
// moves the active log file into the archive sequence.
//
// The filesystem is the only state: when the caller does not know the current
// index, it is recovered from the names of the archives on disk.
package rotation

import (
	"errors"
	"io/fs"
	"math"

	"github.com/alpacahq/logroller/filespec"
	"github.com/alpacahq/logroller/metrics"
	"github.com/alpacahq/logroller/utils/log"
)

// ErrIndexExhausted is returned when the next index would not fit in a uint32.
var ErrIndexExhausted = errors.New("rotation index exhausted")

type Allocator struct {
	spec   filespec.FileSpec
	lister Lister
	rename func(oldPath, newPath string) error
}

type AllocatorOption func(a *Allocator)

// WithRename replaces the function used to move the active file, Move by default.
func WithRename(rename func(oldPath, newPath string) error) AllocatorOption {
	return func(a *Allocator) {
		a.rename = rename
	}
}

func NewAllocator(spec filespec.FileSpec, lister Lister, options ...AllocatorOption) *Allocator {
	a := &Allocator{
		spec:   spec,
		lister: lister,
		rename: Move,
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// ResolveIndex returns the index to use for the next rotation of the active file.
//
// A non-nil known index is trusted as is. Otherwise the index following the
// highest archive on disk is used, or 0 when there is none.
// When rotateNow is true the active file is renamed to the archive of that
// index, and the index following it is returned. A missing active file is not
// an error. Any other rename error is returned unchanged together with the
// index that was about to be used.
func (a *Allocator) ResolveIndex(known *uint32, rotateNow bool) (uint32, error) {
	var idx uint32
	if known != nil {
		idx = *known
	} else {
		next, err := a.nextFreeIndex()
		if err != nil {
			return 0, err
		}
		idx = next
	}

	if !rotateNow {
		return idx, nil
	}
	if idx == math.MaxUint32 {
		return idx, ErrIndexExhausted
	}

	current := a.spec.PathFor(CurrentInfix)
	archive := a.spec.PathFor(NumberInfix(idx))
	err := a.rename(current, archive)
	switch {
	case err == nil:
		metrics.RotationsTotal.Inc()
		return idx + 1, nil
	case errors.Is(err, fs.ErrNotExist):
		log.Debug("no active file %s to rotate", current)
		metrics.MissingActiveTotal.Inc()
		return idx, nil
	default:
		log.Error("failed to rotate %s to %s: %v", current, archive, err)
		metrics.RotationFailuresTotal.Inc()
		return idx, err
	}
}

func (a *Allocator) nextFreeIndex() (uint32, error) {
	candidates, err := a.lister.Find(a.spec)
	if err != nil {
		return 0, err
	}
	highest, ok := HighestIndex(a.spec, candidates)
	if !ok {
		return 0, nil
	}
	metrics.HighestIndex.Set(float64(highest))
	if highest == math.MaxUint32 {
		return 0, ErrIndexExhausted
	}
	return highest + 1, nil
}
