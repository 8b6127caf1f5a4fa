package rotation

import (
	"strings"

	"github.com/alpacahq/logroller/filespec"
)

type parseOutcome int8

const (
	outcomeParsed parseOutcome = iota
	// outcomeFallbackZero: the infix was found but its digits did not parse.
	outcomeFallbackZero
	// outcomeSkipped: the stem does not carry an infix at all.
	outcomeSkipped
)

// indexOf extracts the archive index from a file stem. It never fails:
// unparsable digits count as index 0 and a stem without infix is skipped.
func indexOf(shape filespec.Shape, stem string) (uint32, parseOutcome) {
	var digits string
	switch shape {
	case filespec.ShapeInfixOnly:
		// the stem is the infix, only the leading marker has to go
		if stem == "" {
			return 0, outcomeSkipped
		}
		digits = stem[len(infixMarker):]
	case filespec.ShapeBasename, filespec.ShapeDiscriminant, filespec.ShapeTimestamp:
		pos := strings.LastIndex(stem, infixSeparatorMarker)
		if pos < 0 {
			return 0, outcomeSkipped
		}
		digits = stem[pos+len(infixSeparatorMarker):]
	default:
		return 0, outcomeSkipped
	}

	idx, ok := parseIndex(digits)
	if !ok {
		return 0, outcomeFallbackZero
	}
	return idx, outcomeParsed
}

// HighestIndex returns the highest archive index among the candidates.
// ok is false when no candidate carries an infix, in particular when the
// list is empty.
func HighestIndex(spec filespec.FileSpec, candidates []Candidate) (highest uint32, ok bool) {
	shape := spec.Shape()
	for _, c := range candidates {
		idx, outcome := indexOf(shape, c.Stem)
		if outcome == outcomeSkipped {
			continue
		}
		if !ok || idx > highest {
			highest = idx
		}
		ok = true
	}
	return highest, ok
}

// ArchiveIndex returns the index carried by a candidate's name. ok is false
// when the name has no infix.
func ArchiveIndex(spec filespec.FileSpec, c Candidate) (idx uint32, ok bool) {
	idx, outcome := indexOf(spec.Shape(), c.Stem)
	return idx, outcome != outcomeSkipped
}
