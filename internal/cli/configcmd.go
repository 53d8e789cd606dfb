package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the semverpack configuration file",
	}
	cmd.AddCommand(newConfigInitCmd(opts))
	cmd.AddCommand(newConfigShowCmd(opts))
	return cmd
}

func newConfigInitCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:         "init [PATH]",
		Short:       "Write a configuration file with default values",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{annotationConfigOptional: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			file := opts.configFile
			if len(args) == 1 {
				file = args[0]
			}
			if file == "" {
				var err error
				if file, err = GetDefaultConfigPath(); err != nil {
					return err
				}
			}
			if err := DefaultConfig().WriteConfig(file); err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), fmt.Sprintf("Config written to %s", file),
				map[string]string{"config_file": file})
		},
	}
}

func newConfigShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the configuration in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			text := fmt.Sprintf("Version: %s\nOutput: %s\nLog level: %s", cfg.Version, cfg.Output, cfg.LogLevel)
			return opts.print(cmd.OutOrStdout(), text, map[string]string{
				"version":   cfg.Version,
				"output":    cfg.Output,
				"log_level": cfg.LogLevel,
			})
		},
	}
}
