package minigrepcli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minigrep/internal/config"
	"minigrep/internal/runner"
	"minigrep/internal/version"
)

func NewRootCommand() *cobra.Command {
	opts := newDefaultOptions()
	cmd := &cobra.Command{
		Use:   "minigrep [flags] [--] <query> <filepath>",
		Short: "Print the lines of a file that contain a query",
		Long: "Print every line of <filepath> that contains <query>.\n\n" +
			"Set IGNORE_CASE (to any value) for case-insensitive matching.\n" +
			"Flags are only read before <query>; use -- when the query starts with '-'.",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := optionsFrom(cmd)
			if opts == nil {
				return fmt.Errorf("options missing")
			}

			cfg, err := config.Build(append([]string{cmd.Name()}, args...), os.LookupEnv)
			if err != nil {
				return err
			}

			var ex *ExplainCollector
			if opts.Explain != "" {
				ex = NewExplainCollector(ExplainOptions{Format: opts.Explain})
			}

			ropts := runner.Options{
				Out:    cmd.OutOrStdout(),
				Format: opts.Format(),
			}
			if ex != nil {
				ropts.Explain = ex
			}

			if err := runner.Run(cfg, ropts); err != nil {
				return err
			}

			if ex != nil {
				_ = ex.Emit(cmd.ErrOrStderr())
			}
			return nil
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.Version = version.String()
	cmd.InitDefaultVersionFlag()

	withOptionsContext(cmd, opts)
	bindFlags(cmd, opts)
	cmd.Flags().SetInterspersed(false)

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if opts := optionsFrom(cmd); opts != nil {
			return opts.Prepare()
		}
		return nil
	}

	return cmd
}
