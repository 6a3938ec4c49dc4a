package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/spacemeshos/bitswap/session"
)

// replCmd represents the repl command.
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Start an interactive session: choose a number type, enter a value, then
swap groups of its bits as many times as needed.

Enter ".." to go back one step and "q" at the type prompt to quit.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, _ []string) error {
	r, err := session.NewRunner(cmd.InOrStdin(), cmd.OutOrStdout(),
		session.WithLogger(logger),
		session.WithKind(cfg.Kind()),
		session.WithRuler(cfg.ShowRuler),
		session.WithPlan(cfg.ShowPlan),
	)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	return r.Run(ctx)
}
