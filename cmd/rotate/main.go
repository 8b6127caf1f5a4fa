package rotate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alpacahq/logroller/internal/di"
	"github.com/alpacahq/logroller/metrics"
	"github.com/alpacahq/logroller/utils"
	"github.com/alpacahq/logroller/utils/log"
)

const (
	usage                 = "rotate"
	short                 = "Move the active log file into the archive sequence"
	long                  = "This command renames the active log file to the next free archive index and prints the index to use for the following rotation"
	example               = "logroller rotate --config <path> [--index <n>]"
	defaultConfigFilePath = "./logroller.yml"
	configDesc            = "set the path for the logroller YAML configuration file"
	indexDesc             = "archive index to use instead of scanning the log directory"
	indexFlag             = "index"
)

var (
	// Cmd is the rotate command.
	Cmd = &cobra.Command{
		Use:        usage,
		Short:      short,
		Long:       long,
		Aliases:    []string{"r"},
		SuggestFor: []string{"roll"},
		Example:    example,
		RunE:       executeRotate,
	}
	// configFilePath set flag for a path to the config file.
	configFilePath string
	// knownIndex is only used when the flag was given.
	knownIndex uint32
)

// nolint:gochecknoinits // cobra's standard way to initialize flags
func init() {
	Cmd.Flags().StringVarP(&configFilePath, "config", "c", defaultConfigFilePath, configDesc)
	Cmd.Flags().Uint32VarP(&knownIndex, indexFlag, "i", 0, indexDesc)
}

func executeRotate(cmd *cobra.Command, _ []string) error {
	config, err := utils.LoadConfig(configFilePath)
	if err != nil {
		return err
	}
	c := di.NewContainer(config)
	defer func() {
		if err := metrics.WriteTextfile(config.MetricsTextfile); err != nil {
			log.Error("failed to write metrics to %s: %v", config.MetricsTextfile, err)
		}
	}()

	var known *uint32
	if cmd.Flags().Changed(indexFlag) {
		known = &knownIndex
	}
	idx, err := c.GetAllocator().ResolveIndex(known, true)
	if err != nil {
		return fmt.Errorf("failed to rotate %s: %w", c.GetAbsDir(), err)
	}

	if config.KeepArchives > 0 {
		if _, err := c.GetPruner().Prune(config.KeepArchives); err != nil {
			return fmt.Errorf("failed to prune archives: %w", err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), idx)
	return nil
}
