package cli

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/tansive/semverpack/internal/common/apperrors"
)

// DefaultConfigFile is the name of the config file in the user config dir.
const DefaultConfigFile = "config.yaml"

// ConfigFormatVersion is the current version of the config file format.
const ConfigFormatVersion = "0.1.0"

// Environment variables that override the config file.
const (
	EnvOutput   = "SEMVERPACK_OUTPUT"
	EnvLogLevel = "SEMVERPACK_LOG_LEVEL"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var validOutputs = []string{OutputText, OutputJSON, OutputYAML}

var ErrConfig apperrors.Error = apperrors.New("invalid configuration").SetExitCode(3).SetExpandError(true)

// Config is the semverpack CLI configuration.
type Config struct {
	// Version of the configuration file format
	Version string `yaml:"version" toml:"version"`
	// Output is the default output format: text, json or yaml
	Output string `yaml:"output" toml:"output"`
	// LogLevel is a zerolog level name
	LogLevel string `yaml:"log_level" toml:"log_level"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Version:  ConfigFormatVersion,
		Output:   OutputText,
		LogLevel: "info",
	}
}

// GetDefaultConfigPath returns the OS-specific config path, e.g.
// ~/.config/semverpack/config.yaml on Linux.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user config directory")
	}
	return filepath.Join(configDir, "semverpack", DefaultConfigFile), nil
}

// LoadConfig reads file and applies environment overrides (including a .env
// file in the working directory). A missing or empty file path yields the
// defaults unless required is set. Files ending in .toml are decoded as TOML,
// everything else as YAML. Only the format version is checked here; the output
// format is left for ValidateConfig once flag overrides are in place.
func LoadConfig(file string, required bool) (*Config, error) {
	cfg := DefaultConfig()

	content, err := readConfigFile(file)
	switch {
	case err == nil:
		if err := decodeConfig(file, content, cfg); err != nil {
			return nil, err
		}
	case os.IsNotExist(err) && !required:
	default:
		return nil, ErrConfig.MsgErr("unable to read config file", errors.Wrap(err, file))
	}

	if cwd, err := os.Getwd(); err == nil {
		_ = godotenv.Load(filepath.Join(cwd, ".env")) // no error if .env doesn't exist
	}
	cfg.applyEnv()
	cfg.normalize()

	if err := cfg.validateVersion(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readConfigFile(file string) ([]byte, error) {
	if file == "" {
		return nil, os.ErrNotExist
	}
	return os.ReadFile(file)
}

func decodeConfig(file string, content []byte, cfg *Config) error {
	var err error
	if strings.EqualFold(filepath.Ext(file), ".toml") {
		_, err = toml.Decode(string(content), cfg)
	} else {
		err = yaml.Unmarshal(content, cfg)
	}
	if err != nil {
		return ErrConfig.MsgErr("unable to parse config file", errors.Wrap(err, file))
	}
	return nil
}

func (cfg *Config) applyEnv() {
	if v := os.Getenv(EnvOutput); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}

// ValidateConfig checks the format version and output format.
func (cfg *Config) ValidateConfig() error {
	if err := cfg.validateVersion(); err != nil {
		return err
	}
	cfg.normalize()
	if !slices.Contains(validOutputs, cfg.Output) {
		return ErrConfig.Msg("unsupported output format: " + cfg.Output)
	}
	return nil
}

func (cfg *Config) validateVersion() error {
	if cfg.Version != ConfigFormatVersion {
		return ErrConfig.Msg("unsupported config file format version: " + cfg.Version)
	}
	return nil
}

func (cfg *Config) normalize() {
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
}

// WriteConfig writes cfg to file, creating parent directories. The format
// follows the file extension as in LoadConfig.
func (cfg *Config) WriteConfig(file string) error {
	if file == "" {
		return ErrConfig.Msg("file path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return errors.Wrap(err, "unable to create config directory")
	}

	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(file), ".toml") {
		var b strings.Builder
		err = toml.NewEncoder(&b).Encode(cfg)
		data = []byte(b.String())
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return errors.Wrap(err, "unable to generate configuration")
	}

	if err := os.WriteFile(file, data, 0o600); err != nil {
		return errors.Wrap(err, "unable to write config file")
	}
	return nil
}
