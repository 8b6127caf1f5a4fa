package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// WriteTextfile dumps the registered metrics in the text exposition format,
// for node_exporter's textfile collector. It is a no-op when path is empty.
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
