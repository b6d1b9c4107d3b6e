package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/brandonbloom/later/internal/version"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCommand(defaultEnvironment()).ExecuteContext(context.Background())
}

func newRootCommand(env environment) *cobra.Command {
	var clearAll bool
	cmd := &cobra.Command{
		Use:           "later [TASK]",
		Short:         "Remember tasks for later",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return usageError(cmd, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, env, args, clearAll)
		},
	}

	cmd.Flags().BoolVarP(&clearAll, "clear", "c", false, "remove all tasks")
	cmd.Flags().BoolP("version", "V", false, "print the later version")
	cmd.SetVersionTemplate("{{.Name}} version {{.Version}}\n")
	cmd.SetFlagErrorFunc(usageError)

	return cmd
}

// usageError appends the generated usage text to argument syntax errors,
// which otherwise surface with SilenceUsage set.
func usageError(cmd *cobra.Command, err error) error {
	return fmt.Errorf("%w\n\n%s", err, strings.TrimRight(cmd.UsageString(), "\n"))
}

func runRoot(cmd *cobra.Command, env environment, args []string, clearAll bool) error {
	cfg, err := env.loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	p := newPalette(out, cfg.Color)

	if len(args) == 1 && clearAll {
		fmt.Fprintln(out, p.fail("Cannot clear and print tasks simultaneously."))
		return nil
	}

	tasks, err := env.openStore(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	switch {
	case len(args) == 1:
		return runAdd(ctx, out, p, tasks, args[0])
	case clearAll:
		return runClear(ctx, out, p, tasks)
	default:
		return runList(ctx, out, p, tasks, terminalWidth(out))
	}
}
