package cmds

import (
	"github.com/spf13/cobra"
)

// VERSION of the animatic CLI.
const VERSION = "0.2.0"

// RootCmd is the animatic command tree.
var RootCmd = &cobra.Command{
	Use:     "animatic",
	Version: VERSION,
	Short:   "Render, play and save frame-sequenced animations.",
	Long: "Animatic is a frame-sequencing animation engine. It builds animations " +
		"from yaml scene files, plays them to a sink at a display interval, and " +
		"saves them to media files through native or encoder-backed writers.",
}

// Execute runs the command tree.
func Execute() error {
	return RootCmd.Execute()
}
