package cmd

import (
	"github.com/spf13/cobra"

	"github.com/spacemeshos/bitswap/bitbuf"
	"github.com/spacemeshos/bitswap/session"
)

// showCmd represents the show command.
var showCmd = &cobra.Command{
	Use:   "show VALUE",
	Short: "Print the binary representation of a number",
	Long: `Print the binary representation of a number, most-significant bit first.
Use --type r for an 80-bit extended float. Pass negative values after "--".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := selectedKind()
		value, err := bitbuf.Parse(kind, args[0])
		if err != nil {
			return err
		}

		return session.NewPrinter(cmd.OutOrStdout(), cfg.ShowRuler, cfg.ShowPlan).PrintValue(kind, value)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// selectedKind returns the configured number kind, defaulting to integer.
func selectedKind() bitbuf.Kind {
	if kind := cfg.Kind(); kind != 0 {
		return kind
	}
	return bitbuf.KindInteger
}
