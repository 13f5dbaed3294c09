package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Resolve the config the same way play does (--config, user and local
config directories, embedded defaults) and print it with --difficulty applied.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.MarshalYAML(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
