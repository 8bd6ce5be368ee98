package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"focusflow/internal/engine"
	"focusflow/internal/ui"
)

func newBadgesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "badges",
		Short: "Check badge criteria and list earned badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			// Award whatever the recorded state now qualifies for.
			checker := engine.NewBadgeChecker(eng.Progress(), eng.Tasks(), eng.Rewards())
			for _, id := range checker.EligibleNow() {
				eng.AddBadge(ctx, id)
			}

			p := eng.Progress()
			earned := map[string]bool{}
			for _, id := range p.EarnedBadges {
				earned[id] = true
			}

			catalog := engine.AllBadges()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBadge, "Badges"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Unlocked", fmt.Sprintf("%d / %d", len(p.EarnedBadges), len(catalog))))
			for _, b := range catalog {
				status := ui.Muted.Render("locked")
				if earned[b.ID] {
					status = ui.Gold.Render("earned")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s — %s\n", b.Icon, status, ui.Key.Render(b.Label), ui.Muted.Render(b.Description))
			}
			return nil
		},
	}

	return cmd
}
