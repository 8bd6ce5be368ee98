package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"focusflow/internal/engine"
	"focusflow/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show progress: level, XP, streaks, milestones",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p := eng.Progress()
			bar := ui.XPBar(engine.XPIntoLevel(p.TotalXP), engine.XPPerLevel, 30)

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "Progress"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", p.CurrentLevel))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("XP", fmt.Sprintf("%d %s %d to next level", p.TotalXP, bar, engine.XPToNextLevel(p.TotalXP))))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", fmt.Sprintf("%s %d days (longest %d)", ui.IconFlame, p.CurrentStreak, p.LongestStreak)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Tasks completed", p.TotalTasksCompleted))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Focus minutes", p.TotalFocusMinutes))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Badges", len(p.EarnedBadges)))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconChart+" Milestones"))
			for _, m := range engine.Milestones() {
				mark := ui.Muted.Render("·")
				label := ui.Muted.Render(m.Label)
				if p.TotalXP >= m.XP {
					mark = ui.Good.Render("✔")
					label = ui.Key.Render(m.Label)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s — %s\n", mark, label, ui.Muted.Render(fmt.Sprintf("(%d XP)", m.XP)), ui.Muted.Render(m.Reward))
			}
			return nil
		},
	}

	return cmd
}
