package cmd

import (
	"github.com/harrison/dataset/internal/config"
	"github.com/harrison/dataset/internal/executor"
	"github.com/spf13/cobra"
)

// operation builds the action for one run; tools lists the binaries it needs.
type operation struct {
	use   string
	short string
	long  string
	args  cobra.PositionalArgs
	tools func(cfg *config.Config) []string
	build func(cmd *cobra.Command, env *environment, cfg *config.Config) executor.Action
}

func newCheckCommand(env *environment) *cobra.Command {
	return newOperationCommand(env, operation{
		use:   "check <config>",
		short: "Report datasets whose declared files all exist",
		long: `Check parses the config and, for every dataset whose declared files all
exist, prints "<name> is present". Datasets with missing files get a warning
listing the missing paths.`,
		args:  cobra.ExactArgs(1),
		tools: func(*config.Config) []string { return nil },
		build: func(cmd *cobra.Command, _ *environment, _ *config.Config) executor.Action {
			return executor.NewCheckAction(cmd.OutOrStdout())
		},
	})
}

func newTarCommand(env *environment) *cobra.Command {
	return newOperationCommand(env, operation{
		use:   "tar <config> [pattern]",
		short: "Archive each complete dataset into <name>.tar",
		long: `Tar bundles the declared files of every complete dataset into <name>.tar in
the current directory. An existing archive is never overwritten.

The optional pattern is a regular expression matched anywhere in the dataset
name; only matching datasets are archived.`,
		args:  cobra.RangeArgs(1, 2),
		tools: func(cfg *config.Config) []string { return []string{cfg.Tools.Archiver} },
		build: func(cmd *cobra.Command, env *environment, cfg *config.Config) executor.Action {
			archiver := executor.NewTarArchiver(env.runner, cfg.Tools.Archiver)
			return executor.NewTarAction(cmd.OutOrStdout(), archiver, env.workDir)
		},
	})
}

func newMD5Command(env *environment) *cobra.Command {
	return newOperationCommand(env, operation{
		use:   "md5 <config> [pattern]",
		short: "Print checksums of the files of each complete dataset",
		long: `Md5 prints the dataset name followed by one checksum line per declared file,
in field order (first, second, ..., reference_genome).

The optional pattern is a regular expression matched anywhere in the dataset
name; only matching datasets are checksummed.`,
		args:  cobra.RangeArgs(1, 2),
		tools: func(cfg *config.Config) []string { return []string{cfg.Tools.Checksum} },
		build: func(cmd *cobra.Command, env *environment, cfg *config.Config) executor.Action {
			return executor.NewMD5Action(cmd.OutOrStdout(), executor.NewMD5Checksummer(env.runner, cfg.Tools.Checksum))
		},
	})
}

func newOperationCommand(env *environment, op operation) *cobra.Command {
	return &cobra.Command{
		Use:   op.use,
		Short: op.short,
		Long:  op.long,
		Args:  op.args,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, env, op, args)
		},
	}
}

func runOperation(cmd *cobra.Command, env *environment, op operation, args []string) error {
	pattern := ""
	if len(args) > 1 {
		pattern = args[1]
	}
	filter, err := executor.NameFilter(pattern)
	if err != nil {
		return err
	}

	s, err := newSession(cmd, env)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := executor.CheckTools(env.lookPath, op.tools(s.cfg)...); err != nil {
		return err
	}

	engine := executor.NewEngine(cmd.OutOrStdout(), executor.WithLogger(s.log))
	summary, err := engine.Process(cmd.Context(), args[0], op.build(cmd, env, s.cfg), filter)
	if summary != nil && summary.Total > 0 {
		s.log.LogSummary(*summary)
	}
	if err != nil {
		return err
	}

	if s.cfg.Strict && !summary.Clean() {
		return &IncompleteError{Missing: summary.Missing, Failed: summary.Failed}
	}
	return nil
}
