package cmds

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/matt-g-everett/animatic/anim"
	"github.com/matt-g-everett/animatic/scene"
	"github.com/matt-g-everett/animatic/writers"
)

var (
	renderScene  string
	renderOut    string
	renderWriter string
	renderFps    int
	renderExtra  []string

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Render a scene and save it to a media file.",
		Long: "Render builds the animation described by a yaml scene file and saves " +
			"it to the output file using the chosen writer. The output format is " +
			"inferred from the filename extension and validated against the " +
			"writer's supported set before any encoder is started.",
		Run: func(cmd *cobra.Command, args []string) {
			sc, err := scene.Load(renderScene)
			if err != nil {
				color.Red(err.Error())
				os.Exit(1)
			}

			a, err := sc.Build()
			if err != nil {
				color.Red(err.Error())
				os.Exit(1)
			}

			opts := anim.SaveOptions{FPS: renderFps, ExtraArgs: renderExtra}
			if err := anim.Save(a, renderOut, renderWriter, opts); err != nil {
				color.Red(err.Error())
				os.Exit(1)
			}
			color.Green("Saved %d frames to %s", a.FrameCount(), renderOut)
		},
	}
)

func init() {
	renderCmd.Flags().StringVar(&renderScene, "scene", "scene.yaml", "Yaml scene file describing the animation.")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output media file; the extension picks the format.")
	renderCmd.Flags().StringVarP(&renderWriter, "writer", "w", "native", "Writer to encode with. See the writers command.")
	renderCmd.Flags().IntVar(&renderFps, "fps", anim.DefaultFPS, "Frame rate of the saved file. Independent of the scene's display interval.")
	renderCmd.Flags().StringArrayVar(&renderExtra, "extra-arg", nil, "Extra argument passed through to the encoder. Repeatable.")
	renderCmd.MarkFlagRequired("out")
	RootCmd.AddCommand(renderCmd)
}

// writersCmd lists the registered writers and their supported formats.
var writersCmd = &cobra.Command{
	Use:   "writers",
	Short: "List the available writers and their supported formats.",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range writers.Names() {
			w, err := writers.New(name)
			if err != nil {
				continue
			}
			color.Cyan("%s", name)
			color.White("  %v", w.Formats())
		}
	},
}

func init() {
	RootCmd.AddCommand(writersCmd)
}
