// Package cmd is for command line interactions with the plascon application
package cmd

import (
	"fmt"
	"log"

	"github.com/Ahinurosora-bb/BBL-434-LAB/config"
	"github.com/Ahinurosora-bb/BBL-434-LAB/internal/ori"
	"github.com/Ahinurosora-bb/BBL-434-LAB/internal/plasmid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var settingsFile string

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "plascon",
	Short: `Design plasmids from an origin of replication and a list of features.
The origin is found in a reference sequence, restriction sites and marker
genes are appended after it and a replication backbone is prepended`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(func() {
		if err := config.Setup(settingsFile); err != nil {
			log.Fatalf("%v", err)
		}
	})

	RootCmd.PersistentFlags().StringVar(&settingsFile, "config", "", "settings file (default is $HOME/.plascon/settings.yaml)")
	RootCmd.PersistentFlags().StringP("catalog", "c", "", "file of restriction sites and genes to use instead of the built-in ones")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "whether to log the ORI and each feature")
	RootCmd.PersistentFlags().Int("scan-window", ori.ScanWindow, "length of the windows scored when finding an ORI")
	RootCmd.PersistentFlags().Int("stride", ori.Stride, "distance between scored windows")
	RootCmd.PersistentFlags().Int("window", ori.Window, "the ORI is window+1 bp long")

	for _, name := range []string{"catalog", "verbose", "scan-window", "stride", "window"} {
		if err := viper.BindPFlag(name, RootCmd.PersistentFlags().Lookup(name)); err != nil {
			log.Fatalf("%v", err)
		}
	}
}

// exactArgs is cobra.ExactArgs with an error that wraps plasmid.ErrArity
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s accepts %d arg(s), received %d", plasmid.ErrArity, cmd.CommandPath(), n, len(args))
		}
		return nil
	}
}
