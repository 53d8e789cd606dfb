// Package cli implements the semverpack command line interface.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/tansive/semverpack/internal/account"
	"github.com/tansive/semverpack/internal/common/apperrors"
	"github.com/tansive/semverpack/internal/common/logtrace"
)

// Version is the semverpack CLI version.
const Version = "v0.1.0"

var okLabel = color.New(color.FgGreen)
var errorLabel = color.New(color.FgRed)

var (
	ErrUsage           apperrors.Error = apperrors.New("invalid usage").SetExitCode(2).SetExpandError(true)
	ErrInvalidArgument apperrors.Error = ErrUsage.New("invalid argument")
)

// annotationConfigOptional marks commands that run even when an explicit
// --config file does not exist yet.
const annotationConfigOptional = "semverpack/config-optional"

// rootOptions holds the persistent flags and the configuration resolved from
// them before any subcommand runs.
type rootOptions struct {
	configFile string
	jsonOutput bool
	output     string

	cfg *Config
}

// NewRootCmd builds the semverpack command tree.
func NewRootCmd() *cobra.Command {
	cmd, _ := newRootCmd()
	return cmd
}

func newRootCmd() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "semverpack [command] [flags]",
		Short: "Pack and unpack semantic versions stored as a single 64-bit integer",
		Long: `semverpack converts between major.minor.patch versions and their packed
64-bit integer form (major: 21 bits, minor: 21 bits, patch: 22 bits).

Examples:
  # Pack 1.2.3
  semverpack pack 1 2 3

  # Unpack a stored integer
  semverpack unpack 8796101410819

  # Bump the patch of a stored integer
  semverpack set 8796101410819 --patch 4`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "", "", "Path to configuration file to override default")
	cmd.PersistentFlags().BoolVarP(&opts.jsonOutput, "json", "j", false, "Output in JSON format")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "Output format: text, json or yaml")

	cmd.AddCommand(newPackCmd(opts))
	cmd.AddCommand(newUnpackCmd(opts))
	cmd.AddCommand(newSetCmd(opts))
	cmd.AddCommand(newLoginCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newVersionCmd(opts))

	return cmd, opts
}

// Execute runs the CLI and exits with the code carried by the returned error.
// This is called by main.main().
func Execute() {
	cmd, opts := newRootCmd()
	if err := cmd.Execute(); err != nil {
		printError(cmd.ErrOrStderr(), opts.format(), err)
		os.Exit(apperrors.ExitCode(err))
	}
}

// resolve loads the configuration, applies flag overrides and validates the
// result. Flags win over both the config file and the environment.
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	file := o.configFile
	required := file != "" && cmd.Annotations[annotationConfigOptional] == ""
	if file == "" {
		var err error
		file, err = GetDefaultConfigPath()
		if err != nil {
			log.Debug().Err(err).Msg("no user config directory, using default configuration")
		}
	}

	cfg, err := LoadConfig(file, required)
	if err != nil {
		return err
	}
	switch {
	case o.jsonOutput:
		cfg.Output = OutputJSON
	case o.output != "":
		cfg.Output = o.output
	}
	if err := cfg.ValidateConfig(); err != nil {
		if o.output != "" && !o.jsonOutput {
			return ErrUsage.MsgErr("invalid --output", err)
		}
		return err
	}
	o.cfg = cfg

	logtrace.InitLoggerWithWriter(cmd.ErrOrStderr(), cfg.LogLevel)
	log.Debug().
		Str("config_file", file).
		Str("output", cfg.Output).
		Str("command", cmd.Name()).
		Msg("configuration loaded")
	return nil
}

// format returns the output format in effect, falling back to flags when the
// configuration could not be loaded.
func (o *rootOptions) format() string {
	if o.cfg != nil {
		return o.cfg.Output
	}
	if o.jsonOutput {
		return OutputJSON
	}
	return OutputText
}

// print writes data in the configured format, or text in text mode.
func (o *rootOptions) print(w io.Writer, text string, data any) error {
	switch o.format() {
	case OutputJSON:
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case OutputYAML:
		out, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		_, err := fmt.Fprintln(w, text)
		return err
	}
}

func printError(w io.Writer, format string, err error) {
	msg := err.Error()
	var ae apperrors.Error
	if errors.As(err, &ae) {
		msg = ae.ErrorAll()
	}
	if format == OutputJSON {
		out, _ := json.MarshalIndent(map[string]string{"error": msg}, "", "  ")
		fmt.Fprintln(w, string(out))
		return
	}
	errorLabel.Fprintf(w, "Error: %s\n", msg)
}

type versionInfo struct {
	Version            string `json:"version"`
	LoginSchemaVersion string `json:"login_schema_version"`
	ConfigFile         string `json:"config_file"`
}

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of semverpack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := opts.configFile
			if configPath == "" {
				p, err := GetDefaultConfigPath()
				if err != nil {
					p = "unknown"
				}
				configPath = p
			}
			info := versionInfo{
				Version:            Version,
				LoginSchemaVersion: account.LoginSchemaVersion.String(),
				ConfigFile:         configPath,
			}
			text := fmt.Sprintf("semverpack %s\nLogin schema: %s\nConfig file: %s",
				info.Version, info.LoginSchemaVersion, info.ConfigFile)
			return opts.print(cmd.OutOrStdout(), text, info)
		},
	}
}
