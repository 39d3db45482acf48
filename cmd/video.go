package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ThalesGroup/requin-2023-experiment/internal/adapters/video"
)

func newVideoCmd(app *app) *cobra.Command {
	cross := video.DefaultCrossParams()
	stream := video.DefaultStreamParams()

	cmd := &cobra.Command{
		Use:   "video <output-file>",
		Short: "Render a fixation-cross video stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.logger.Info().
				Str("output", args[0]).
				Int("duration_seconds", stream.DurationSeconds).
				Msg("rendering fixation stream")
			return video.WriteStreamFile(args[0], video.FixationCross(cross), stream)
		},
	}

	cmd.Flags().IntVar(&cross.Width, "width", cross.Width, "Frame width in pixels")
	cmd.Flags().IntVar(&cross.Height, "height", cross.Height, "Frame height in pixels")
	cmd.Flags().Float64Var(&cross.SizeRatio, "size-ratio", cross.SizeRatio, "Cross size as a fraction of the shorter dimension")
	cmd.Flags().IntVar(&cross.Thickness, "thickness", cross.Thickness, "Cross line thickness in pixels")
	cmd.Flags().IntVar(&stream.DurationSeconds, "duration", stream.DurationSeconds, "Stream length in seconds")
	cmd.Flags().IntVar(&stream.FrameRate, "fps", stream.FrameRate, "Frames per second")
	cmd.Flags().Float64Var(&stream.FadeSeconds, "fade", stream.FadeSeconds, "Fade-to-black length at the end in seconds")

	return cmd
}
