package cli

import (
	"github.com/spf13/cobra"

	"github.com/snapvo/snapvo/internal/logging"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "snapvo",
	Short: "Render annotated subtitle frames from videos",
	Long: `Snapvo captures a video frame and composes it with the subtitles
active at that moment into a single shareable image.

Several display modes are available: overlay burns the captions into the
frame, separated adds a dedicated subtitle panel, card and elegant produce
quote-card layouts, and stitch stacks one subtitle strip per cue.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
