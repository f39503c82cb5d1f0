// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Ahinurosora-bb/BBL-434-LAB/internal/ori"
	"github.com/spf13/viper"
)

const (
	// Backbone is the replication machinery prepended to every plasmid
	Backbone = "ATGC_REPA_REPB_REPC_SEQUENCE"

	// OutputDir is the directory that plasmids are written to
	OutputDir = "Output"

	// OutputFile is the name of the plasmid FASTA file in OutputDir
	OutputFile = "Output.fa"

	// SpacerLength is the number of random bp after each restriction site
	SpacerLength = 6

	// envPrefix is prepended to setting names for environment overrides, ex: PLASCON_SEED
	envPrefix = "PLASCON"
)

// Config is the root-level settings struct and is a mix
// of settings available in settings.yaml and those
// available from the command line
type Config struct {
	// Backbone is prepended to the ORI and features
	Backbone string `mapstructure:"backbone"`

	// ScanWindow is the length of each scored window
	ScanWindow int `mapstructure:"scan-window"`

	// Stride is the step between scored windows
	Stride int `mapstructure:"stride"`

	// Window + 1 is the length of the located ORI
	Window int `mapstructure:"window"`

	// SpacerLength is the length of the random spacer after restriction sites
	SpacerLength int `mapstructure:"spacer-length"`

	// OutputDir is where the plasmid FASTA is written
	OutputDir string `mapstructure:"out-dir"`

	// OutputFile is the name of the plasmid FASTA
	OutputFile string `mapstructure:"out-file"`

	// JSON is whether to write a JSON summary next to the FASTA
	JSON bool `mapstructure:"json"`

	// Seed for spacer generation. 0 seeds from the clock
	Seed uint64 `mapstructure:"seed"`

	// Strict is whether an unrecognized feature is an error
	Strict bool `mapstructure:"strict"`

	// Catalog is an optional path to a file of restriction sites and genes
	Catalog string `mapstructure:"catalog"`

	// Verbose is whether to log the ORI and features
	Verbose bool `mapstructure:"verbose"`
}

func init() {
	SetDefaults()
}

// SetDefaults registers the default settings with viper.
func SetDefaults() {
	viper.SetDefault("backbone", Backbone)
	viper.SetDefault("scan-window", ori.ScanWindow)
	viper.SetDefault("stride", ori.Stride)
	viper.SetDefault("window", ori.Window)
	viper.SetDefault("spacer-length", SpacerLength)
	viper.SetDefault("out-dir", OutputDir)
	viper.SetDefault("out-file", OutputFile)
	viper.SetDefault("json", false)
	viper.SetDefault("seed", 0)
	viper.SetDefault("strict", false)
	viper.SetDefault("catalog", "")
	viper.SetDefault("verbose", false)
}

// Setup reads a settings file into viper: either the one passed or
// settings.yaml in ~/.plascon if it exists. Settings can also be set
// through PLASCON_ prefixed environment variables.
func Setup(file string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if file != "" {
		viper.SetConfigFile(file)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil // no home, only defaults and flags
		}
		viper.AddConfigPath(filepath.Join(home, ".plascon"))
		viper.SetConfigName("settings")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read settings: %w", err)
	}

	return nil
}

// New returns a new Config struct populated by
// Viper settings (either from the local settings.yaml)
// and/or command line arguments
func New() *Config {
	c := Config{}
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode into struct, %v", err)
	}

	return &c
}
