package list

import (
	"fmt"
	"text/tabwriter"

	"code.cloudfoundry.org/bytefmt"
	"github.com/spf13/cobra"

	"github.com/alpacahq/logroller/internal/di"
	"github.com/alpacahq/logroller/metrics"
	"github.com/alpacahq/logroller/rotation"
	"github.com/alpacahq/logroller/utils"
	"github.com/alpacahq/logroller/utils/log"
)

const (
	usage                 = "list"
	short                 = "List the archives of the active log file"
	long                  = "This command lists the numbered archives found in the log directory with their index and size"
	example               = "logroller list --config <path>"
	defaultConfigFilePath = "./logroller.yml"
	configDesc            = "set the path for the logroller YAML configuration file"
)

var (
	// Cmd is the list command.
	Cmd = &cobra.Command{
		Use:     usage,
		Short:   short,
		Long:    long,
		Aliases: []string{"ls"},
		Example: example,
		RunE:    executeList,
	}
	// configFilePath set flag for a path to the config file.
	configFilePath string
)

// nolint:gochecknoinits // cobra's standard way to initialize flags
func init() {
	Cmd.Flags().StringVarP(&configFilePath, "config", "c", defaultConfigFilePath, configDesc)
}

func executeList(cmd *cobra.Command, _ []string) error {
	config, err := utils.LoadConfig(configFilePath)
	if err != nil {
		return err
	}
	c := di.NewContainer(config)
	spec := c.GetFileSpec()

	candidates, err := c.GetFinder().Find(spec)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tNAME\tSIZE")
	var total int64
	for _, cand := range candidates {
		index := "-"
		if idx, ok := rotation.ArchiveIndex(spec, cand); ok {
			index = fmt.Sprint(idx)
		}
		total += cand.Size
		fmt.Fprintf(w, "%s\t%s\t%s\n", index, cand.Name, bytefmt.ByteSize(uint64(cand.Size)))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	metrics.ArchiveBytes.Set(float64(total))
	if err := metrics.WriteTextfile(config.MetricsTextfile); err != nil {
		log.Error("failed to write metrics to %s: %v", config.MetricsTextfile, err)
	}
	return nil
}
