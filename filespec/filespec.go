// Package filespec builds the paths of a rolling log file and its archives.
//
// A file name is composed from the optional components
// basename, discriminant, timestamp and infix, joined by "_", followed by
// "." and the suffix. e.g. "app_node1_r00003.log" or "r00003.log".
package filespec

import (
	"path/filepath"
	"strings"
)

const (
	// DefaultSuffix is used when FileSpec.Suffix is empty.
	DefaultSuffix = "log"
	separator     = "_"
)

// Shape tells which component precedes the infix in a file name.
// The infix is located differently depending on it.
type Shape int8

const (
	// ShapeInfixOnly means the stem is the infix and nothing else ("r00003").
	ShapeInfixOnly Shape = iota
	// ShapeBasename means the infix follows the basename ("app_r00003").
	ShapeBasename
	// ShapeDiscriminant means the infix follows a discriminant ("app_node1_r00003").
	ShapeDiscriminant
	// ShapeTimestamp means the infix follows a timestamp ("app_2024-01-02_r00003").
	ShapeTimestamp
)

func (s Shape) String() string {
	switch s {
	case ShapeInfixOnly:
		return "infix-only"
	case ShapeBasename:
		return "basename"
	case ShapeDiscriminant:
		return "discriminant"
	case ShapeTimestamp:
		return "timestamp"
	default:
		return "unknown"
	}
}

// FileSpec is the naming authority for one log file and its archives.
type FileSpec struct {
	Directory    string
	Basename     string
	Discriminant string
	// Timestamp is the already formatted timestamp fragment, empty when unused.
	Timestamp string
	Suffix    string
}

func (fs FileSpec) HasBasename() bool {
	return fs.Basename != ""
}

func (fs FileSpec) HasDiscriminant() bool {
	return fs.Discriminant != ""
}

func (fs FileSpec) UsesTimestamp() bool {
	return fs.Timestamp != ""
}

// Shape classifies the spec by the last component present before the infix.
func (fs FileSpec) Shape() Shape {
	switch {
	case fs.UsesTimestamp():
		return ShapeTimestamp
	case fs.HasDiscriminant():
		return ShapeDiscriminant
	case fs.HasBasename():
		return ShapeBasename
	default:
		return ShapeInfixOnly
	}
}

// SuffixOrDefault returns the file extension without the leading dot.
func (fs FileSpec) SuffixOrDefault() string {
	if fs.Suffix == "" {
		return DefaultSuffix
	}
	return strings.TrimPrefix(fs.Suffix, ".")
}

// Prefix is the part of the stem that precedes the infix, including the
// trailing separator. It is empty for ShapeInfixOnly.
func (fs FileSpec) Prefix() string {
	var parts []string
	for _, p := range []string{fs.Basename, fs.Discriminant, fs.Timestamp} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, separator) + separator
}

// FileName returns the base name for the given infix. An empty infix yields
// the name without any infix.
func (fs FileSpec) FileName(infix string) string {
	stem := fs.Prefix() + infix
	if infix == "" {
		stem = strings.TrimSuffix(stem, separator)
	}
	return stem + "." + fs.SuffixOrDefault()
}

// PathFor returns the full path of the file carrying the given infix.
func (fs FileSpec) PathFor(infix string) string {
	return filepath.Join(fs.Directory, fs.FileName(infix))
}
