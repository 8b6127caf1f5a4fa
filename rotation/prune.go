package rotation

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/alpacahq/logroller/filespec"
	"github.com/alpacahq/logroller/metrics"
	"github.com/alpacahq/logroller/utils/log"
)

type Pruner struct {
	spec   filespec.FileSpec
	lister Lister
	remove func(name string) error
}

func NewPruner(spec filespec.FileSpec, lister Lister) *Pruner {
	return &Pruner{spec: spec, lister: lister, remove: os.Remove}
}

// Prune removes the oldest archives so that at most keep of them remain,
// and returns the removed paths. keep <= 0 disables pruning.
// Compressed copies are removed along with their archive.
func (p *Pruner) Prune(keep int) ([]string, error) {
	if keep <= 0 {
		return nil, nil
	}
	candidates, err := p.lister.Find(p.spec)
	if err != nil {
		return nil, err
	}

	type indexed struct {
		idx uint32
		c   Candidate
	}
	shape := p.spec.Shape()
	archives := make([]indexed, 0, len(candidates))
	for _, c := range candidates {
		idx, outcome := indexOf(shape, c.Stem)
		if outcome == outcomeSkipped {
			continue
		}
		archives = append(archives, indexed{idx: idx, c: c})
	}
	if len(archives) <= keep {
		return nil, nil
	}
	sort.SliceStable(archives, func(i, j int) bool { return archives[i].idx < archives[j].idx })

	var removed []string
	for _, a := range archives[:len(archives)-keep] {
		for _, path := range append([]string{a.c.Path}, a.c.Duplicates...) {
			if err := p.remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return removed, fmt.Errorf("failed to remove archive %s: %w", path, err)
			}
			log.Info("removed archive %s", path)
			removed = append(removed, path)
			metrics.PrunedArchivesTotal.Inc()
		}
	}
	return removed, nil
}
