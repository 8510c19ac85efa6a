package cmd

import (
	"fmt"

	"github.com/harrison/dataset/internal/executor"
	"github.com/harrison/dataset/internal/models"
	"github.com/harrison/dataset/internal/wizard"
	"github.com/spf13/cobra"
)

func newHammerCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "hammer <prefix>",
		Short: "Interactively write a dataset block from files matching a prefix",
		Long: `Hammer lists the files whose path starts with <prefix>, asks which of them
is each read file and the reference genome, asks for the remaining
properties, and prints a dataset block ready to paste into a config file.

It then creates a dated working directory (bh<YYYYMMDD> by default) and
shows a directory listing. Nothing happens if no file matches the prefix.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHammer(cmd, env, args[0])
		},
	}
}

func runHammer(cmd *cobra.Command, env *environment, prefix string) error {
	s, err := newSession(cmd, env)
	if err != nil {
		return err
	}
	defer s.Close()

	out := cmd.OutOrStdout()
	w := wizard.New(
		executor.NewDirectoryLister(env.runner, s.cfg.Tools.Lister),
		wizard.NewConsoleAnswers(env.stdin, out),
		out,
		wizardFields(),
		wizard.WithWorkdirPrefix(s.cfg.WorkdirPrefix),
		wizard.WithBaseDir(env.workDir),
		wizard.WithClock(env.now),
		wizard.WithPreflight(func() error {
			return executor.CheckTools(env.lookPath, s.cfg.Tools.Lister)
		}),
	)

	res, err := w.Run(cmd.Context(), prefix)
	if err != nil {
		return fmt.Errorf("hammer: %w", err)
	}
	if res == nil {
		s.log.LogDebug(fmt.Sprintf("no files match %s*", prefix))
		return nil
	}
	s.log.LogInfo(fmt.Sprintf("created %s", res.WorkDir))
	return nil
}

// wizardFields lists every known property in vocabulary order.
func wizardFields() []wizard.FieldSpec {
	props := models.Props()
	fields := make([]wizard.FieldSpec, len(props))
	for i, key := range props {
		kind := wizard.TextField
		if models.IsFileField(key) {
			kind = wizard.FileField
		}
		fields[i] = wizard.FieldSpec{Key: key, Kind: kind}
	}
	return fields
}
