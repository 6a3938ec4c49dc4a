package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/bitswap/bitbuf"
	"github.com/spacemeshos/bitswap/session"
	"github.com/spacemeshos/bitswap/swap"
)

// swapCmd represents the swap command.
var swapCmd = &cobra.Command{
	Use:   "swap VALUE FIRST_START FIRST_LEN SECOND_START SECOND_LEN",
	Short: "Swap two groups of bits of a number",
	Long: `Swap two disjoint groups of bits of a number and print the value before
and after. The bits between the groups are kept, shifted by the difference
of the group lengths. Bit 0 is the least-significant bit.

A group may not reach the most-significant bit.`,
	Args: cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := selectedKind()
		value, err := bitbuf.Parse(kind, args[0])
		if err != nil {
			return err
		}

		first, second, err := session.ParseGroups(args[1:])
		if err != nil {
			return err
		}

		plan, err := swap.Request{Buffer: value, First: first, Second: second}.Plan()
		if err != nil {
			return fmt.Errorf("swap rejected: %w", err)
		}
		after := plan.Apply(value)

		logger.Debug("groups swapped",
			zap.Stringer("kind", kind),
			zap.Any("moves", plan.Moves),
			zap.Stringer("after", after),
		)

		return session.NewPrinter(cmd.OutOrStdout(), cfg.ShowRuler, cfg.ShowPlan).PrintSwap(kind, value, after, plan)
	},
}

func init() {
	rootCmd.AddCommand(swapCmd)
}
