package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"focusflow/internal/ui"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
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

			eng.DeleteTask(ctx, args[0])
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Deleted ")+ui.Muted.Render(args[0]))
			return nil
		},
	}

	return cmd
}
