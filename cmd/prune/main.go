package prune

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alpacahq/logroller/internal/di"
	"github.com/alpacahq/logroller/metrics"
	"github.com/alpacahq/logroller/utils"
	"github.com/alpacahq/logroller/utils/log"
)

const (
	usage                 = "prune"
	short                 = "Remove the oldest archives beyond the keep limit"
	long                  = "This command removes the oldest archives, and their compressed copies, so that at most keep archives remain"
	example               = "logroller prune --config <path> [--keep <n>]"
	defaultConfigFilePath = "./logroller.yml"
	configDesc            = "set the path for the logroller YAML configuration file"
	keepDesc              = "number of archives to keep, overrides keep_archives of the config"
	keepFlag              = "keep"
)

var (
	// Cmd is the prune command.
	Cmd = &cobra.Command{
		Use:        usage,
		Short:      short,
		Long:       long,
		SuggestFor: []string{"clean", "cleanup"},
		Example:    example,
		RunE:       executePrune,
	}
	// configFilePath set flag for a path to the config file.
	configFilePath string
	keep           int
)

// nolint:gochecknoinits // cobra's standard way to initialize flags
func init() {
	Cmd.Flags().StringVarP(&configFilePath, "config", "c", defaultConfigFilePath, configDesc)
	Cmd.Flags().IntVarP(&keep, keepFlag, "k", 0, keepDesc)
}

func executePrune(cmd *cobra.Command, _ []string) error {
	config, err := utils.LoadConfig(configFilePath)
	if err != nil {
		return err
	}
	c := di.NewContainer(config)

	limit := config.KeepArchives
	if cmd.Flags().Changed(keepFlag) {
		limit = keep
	}
	if limit <= 0 {
		log.Info("no keep limit configured, nothing to prune")
		return nil
	}

	removed, err := c.GetPruner().Prune(limit)
	for _, path := range removed {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	if werr := metrics.WriteTextfile(config.MetricsTextfile); werr != nil {
		log.Error("failed to write metrics to %s: %v", config.MetricsTextfile, werr)
	}
	return err
}
