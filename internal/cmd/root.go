package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for dataset
func NewRootCommand() *cobra.Command {
	return newRootCommand(defaultEnvironment())
}

func newRootCommand(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Check, archive and checksum datasets described in a config file",
		Long: `dataset manages collections of related files ("datasets") declared in a
block-structured config file:

  sample1
  {
      first   /data/sample1_R1.fq
      second  /data/sample1_R2.fq
      RL      100
  }

It verifies that declared files exist, bundles them into <name>.tar,
prints their checksums, and helps write new blocks interactively.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints the error once and maps it to an exit code
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("settings", "", "Path to settings file (default: $"+settingsEnvName+" or ./.dataset.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().String("log-dir", "", "Also write a run log to this directory")
	cmd.PersistentFlags().Bool("strict", false, "Exit with code 3 if any selected dataset is missing files or fails")

	// Add subcommands
	cmd.AddCommand(newCheckCommand(env))
	cmd.AddCommand(newTarCommand(env))
	cmd.AddCommand(newMD5Command(env))
	cmd.AddCommand(newHammerCommand(env))

	return cmd
}
