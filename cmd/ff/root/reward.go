package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"focusflow/internal/engine"
	"focusflow/internal/ui"
)

func newRewardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reward",
		Short: "Manage rewards redeemable with XP",
	}

	cmd.AddCommand(
		newRewardAddCmd(),
		newRewardListCmd(),
		newRewardRedeemCmd(),
		newRewardRmCmd(),
	)

	return cmd
}

func newRewardAddCmd() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a reward",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cost <= 0 {
				return errors.New("cost must be a positive amount of XP")
			}

			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			r := eng.AddReward(ctx, engine.RewardInput{
				Title:  strings.TrimSpace(args[0]),
				XPCost: cost,
			})
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconGift+" Added"),
				r.Title,
				ui.Muted.Render(fmt.Sprintf("(%d XP)", r.XPCost)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("id: "+r.ID))
			return nil
		},
	}

	cmd.Flags().IntVarP(&cost, "cost", "x", 100, "XP cost")

	return cmd
}

func newRewardListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rewards",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			rewards := eng.Rewards()
			balance := eng.Progress().TotalXP
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconGift, "Rewards"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Balance", fmt.Sprintf("%d XP", balance)))
			if len(rewards) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no rewards — add one with `ff reward add`)"))
				return nil
			}
			for _, r := range rewards {
				affordable := ""
				if !r.IsUnlocked && balance < r.XPCost {
					affordable = " " + ui.Bad.Render("(can't afford)")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s%s %s\n",
					ui.RewardStatus(r.IsUnlocked),
					r.Title,
					ui.Muted.Render(fmt.Sprintf("(%d XP)", r.XPCost)),
					affordable,
					ui.Muted.Render("["+r.ID+"]"))
			}
			return nil
		},
	}

	return cmd
}

func newRewardRedeemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redeem <id>",
		Short: "Redeem a reward with earned XP",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !eng.RedeemReward(ctx, args[0]) {
				return fmt.Errorf("reward %s not found, already redeemed, or not enough XP", args[0])
			}

			p := eng.Progress()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				ui.Gold.Render(ui.IconTrophy+" Redeemed!"),
				ui.Muted.Render(fmt.Sprintf("(%d XP left)", p.TotalXP)))
			return nil
		},
	}

	return cmd
}

func newRewardRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a reward (no refund)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			eng.DeleteReward(ctx, args[0])
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Deleted ")+ui.Muted.Render(args[0]))
			return nil
		},
	}

	return cmd
}
