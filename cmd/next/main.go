package next

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alpacahq/logroller/internal/di"
	"github.com/alpacahq/logroller/metrics"
	"github.com/alpacahq/logroller/utils"
	"github.com/alpacahq/logroller/utils/log"
)

const (
	usage                 = "next"
	short                 = "Print the index the next rotation will use"
	long                  = "This command scans the log directory and prints the archive index the next rotation of the active file will use"
	example               = "logroller next --config <path>"
	defaultConfigFilePath = "./logroller.yml"
	configDesc            = "set the path for the logroller YAML configuration file"
)

var (
	// Cmd is the next command.
	Cmd = &cobra.Command{
		Use:     usage,
		Short:   short,
		Long:    long,
		Example: example,
		RunE:    executeNext,
	}
	// configFilePath set flag for a path to the config file.
	configFilePath string
)

// nolint:gochecknoinits // cobra's standard way to initialize flags
func init() {
	Cmd.Flags().StringVarP(&configFilePath, "config", "c", defaultConfigFilePath, configDesc)
}

func executeNext(cmd *cobra.Command, _ []string) error {
	config, err := utils.LoadConfig(configFilePath)
	if err != nil {
		return err
	}
	c := di.NewContainer(config)

	idx, err := c.GetAllocator().ResolveIndex(nil, false)
	if err != nil {
		return fmt.Errorf("failed to resolve the next index: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), idx)

	if err := metrics.WriteTextfile(config.MetricsTextfile); err != nil {
		log.Error("failed to write metrics to %s: %v", config.MetricsTextfile, err)
	}
	return nil
}
