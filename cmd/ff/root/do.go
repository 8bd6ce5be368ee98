package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"focusflow/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a task",
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

			t, ok := eng.Task(args[0])
			if !ok {
				return fmt.Errorf("task %s not found", args[0])
			}
			if t.Completed {
				return fmt.Errorf("task %s is already completed", args[0])
			}

			before := eng.Progress()
			res := eng.CompleteTask(ctx, args[0])
			eng.UpdateStreak(ctx)

			p := eng.Progress()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconDone+" Completed"),
				t.Title,
				ui.Muted.Render(fmt.Sprintf("(+%d XP, total %d)", t.XP, p.TotalXP)))
			if res.LeveledUp {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.BadgeLevelUp, ui.Gold.Render(fmt.Sprintf("You are now level %d!", res.NewLevel)))
			}
			if p.CurrentStreak > before.CurrentStreak {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconFlame, ui.Warn.Render(fmt.Sprintf("%d-day streak", p.CurrentStreak)))
			}
			if err := eng.LastSaveErr(); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" progress recorded but could not be saved: "+err.Error()))
			}
			return nil
		},
	}

	return cmd
}
