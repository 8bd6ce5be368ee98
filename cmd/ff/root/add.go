package root

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"focusflow/internal/engine"
	"focusflow/internal/ui"
)

func newAddCmd() *cobra.Command {
	var duration int
	var difficulty string
	var category string
	var dueDate string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			diff, err := engine.ParseDifficulty(difficulty)
			if err != nil {
				return err
			}
			cat, err := engine.ParseCategory(category)
			if err != nil {
				return err
			}
			if duration <= 0 {
				return errors.New("duration must be a positive number of minutes")
			}
			due := strings.TrimSpace(dueDate)
			if due == "" {
				due = time.Now().Format(engine.DateLayout)
			} else if _, err := time.Parse(engine.DateLayout, due); err != nil {
				return fmt.Errorf("due date must be YYYY-MM-DD: %q", dueDate)
			}

			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			t := eng.AddTask(ctx, engine.TaskInput{
				Title:      strings.TrimSpace(args[0]),
				Duration:   duration,
				Difficulty: diff,
				Category:   cat,
				DueDate:    due,
			})

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"),
				t.Title,
				ui.DifficultyText(t.Difficulty),
				ui.Muted.Render(fmt.Sprintf("(%d min, %d XP, due %s)", t.Duration, t.XP, t.DueDate)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("id: "+t.ID))
			return nil
		},
	}

	cmd.Flags().IntVarP(&duration, "duration", "m", 25, "Duration in minutes")
	cmd.Flags().StringVarP(&difficulty, "diff", "d", "Medium", "Difficulty (easy|medium|hard|elite)")
	cmd.Flags().StringVarP(&category, "category", "c", "Personal", "Category (work|personal|health|learning)")
	cmd.Flags().StringVar(&dueDate, "due", "", "Due date (YYYY-MM-DD, default today)")

	return cmd
}
