package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"focusflow/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "ff",
	Short:         "FocusFlow — gamified focus & task tracker",
	Long:          "FocusFlow is a local-first CLI/TUI productivity tracker: complete tasks to earn XP, level up, keep streaks, earn badges, and redeem XP for your own rewards.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newEditCmd(),
		newRmCmd(),
		newDoCmd(),
		newListCmd(),
		newRewardCmd(),
		newStreakCmd(),
		newBadgesCmd(),
		newStatusCmd(),
		newExportCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
