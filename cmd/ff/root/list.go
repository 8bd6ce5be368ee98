package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"focusflow/internal/ui"
)

func newListCmd() *cobra.Command {
	var showDone bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks (newest first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tasks := eng.Tasks()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTask, "Tasks"))
			shown := 0
			for _, t := range tasks {
				if t.Completed && !showDone {
					continue
				}
				shown++
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s %s %s\n",
					ui.TaskStatus(t.Completed),
					t.Title,
					ui.DifficultyText(t.Difficulty),
					ui.Muted.Render(fmt.Sprintf("%s · %d min · %d XP · due %s", t.Category, t.Duration, t.XP, t.DueDate)),
					ui.Muted.Render("["+t.ID+"]"))
			}
			if shown == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no tasks — add one with `ff add`)"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showDone, "all", "a", false, "Include completed tasks")

	return cmd
}
