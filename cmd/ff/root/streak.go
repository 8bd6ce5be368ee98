package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"focusflow/internal/ui"
)

func newStreakCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Recompute and show the daily streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			eng.UpdateStreak(ctx)
			p := eng.Progress()

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconFlame, "Streak"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Current", fmt.Sprintf("%d days", p.CurrentStreak)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Longest", fmt.Sprintf("%d days", p.LongestStreak)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Last active", p.LastActiveDate))
			return nil
		},
	}

	return cmd
}
