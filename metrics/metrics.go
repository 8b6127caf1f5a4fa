package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var namespace = "alpaca"
var subsystem = "logroller"

var (
	// RotationsTotal stores the number of active files moved into the archive sequence
	RotationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rotations_total",
		Help:      "Number of successful rotations of the active log file",
	})

	// RotationFailuresTotal stores the number of rotations that failed with an I/O error
	RotationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rotation_failures_total",
		Help:      "Number of rotations that failed for a reason other than a missing active file",
	})

	// MissingActiveTotal stores the number of rotations requested while no active file existed
	MissingActiveTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "missing_active_total",
		Help:      "Number of rotation requests that found no active file to rotate",
	})

	// HighestIndex stores the highest archive index discovered on disk
	HighestIndex = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "highest_index",
		Help:      "Highest archive index found by the last directory scan",
	})

	// ArchiveBytes stores the total size of the archives found by the last listing
	ArchiveBytes = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "archive_bytes",
		Help:      "Total size in bytes of the archives found by the last listing",
	})

	// PrunedArchivesTotal stores the number of archives removed by pruning
	PrunedArchivesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "pruned_archives_total",
		Help:      "Number of archives removed to honor the keep limit",
	})
)
