package root

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"focusflow/internal/engine"
	"focusflow/internal/ui"
)

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a JSON backup of all data",
		Long:  "Export the full state (progress, tasks, rewards) as a JSON backup file. This is a one-way dump for safekeeping; FocusFlow does not re-import it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			bundle := eng.ExportBundle()
			data, err := json.MarshalIndent(bundle, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal backup: %w", err)
			}

			path := out
			if path == "" {
				path = fmt.Sprintf("focusflow-backup-%s.json", time.Now().Format(engine.DateLayout))
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write backup: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconExport+" Exported"), ui.Muted.Render(path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default focusflow-backup-YYYY-MM-DD.json)")

	return cmd
}
