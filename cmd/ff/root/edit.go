package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"focusflow/internal/engine"
	"focusflow/internal/ui"
)

func newEditCmd() *cobra.Command {
	var title string
	var duration int
	var difficulty string
	var category string
	var dueDate string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task (updates only the flags you pass)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var upd engine.TaskUpdate
			if cmd.Flags().Changed("title") {
				upd.Title = &title
			}
			if cmd.Flags().Changed("duration") {
				if duration <= 0 {
					return errors.New("duration must be a positive number of minutes")
				}
				upd.Duration = &duration
			}
			if cmd.Flags().Changed("diff") {
				d, err := engine.ParseDifficulty(difficulty)
				if err != nil {
					return err
				}
				upd.Difficulty = &d
			}
			if cmd.Flags().Changed("category") {
				c, err := engine.ParseCategory(category)
				if err != nil {
					return err
				}
				upd.Category = &c
			}
			if cmd.Flags().Changed("due") {
				if _, err := time.Parse(engine.DateLayout, dueDate); err != nil {
					return fmt.Errorf("due date must be YYYY-MM-DD: %q", dueDate)
				}
				upd.DueDate = &dueDate
			}
			if upd == (engine.TaskUpdate{}) {
				return errors.New("nothing to update; pass at least one of --title, --duration, --diff, --category, --due")
			}

			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			eng.UpdateTask(ctx, args[0], upd)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Updated ")+ui.Muted.Render(args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().IntVarP(&duration, "duration", "m", 0, "New duration in minutes")
	cmd.Flags().StringVarP(&difficulty, "diff", "d", "", "New difficulty (easy|medium|hard|elite)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "New category (work|personal|health|learning)")
	cmd.Flags().StringVar(&dueDate, "due", "", "New due date (YYYY-MM-DD)")

	return cmd
}
