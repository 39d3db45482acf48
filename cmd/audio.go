package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ThalesGroup/requin-2023-experiment/internal/adapters/audio"
)

func newAudioCmd(app *app) *cobra.Command {
	var (
		seed   int64
		params = audio.DefaultMixParams()
	)

	cmd := &cobra.Command{
		Use:   "audio <input-dir> <output-file>",
		Short: "Mix WAV clips into a session-length stimulus track",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.logger.Info().
				Str("input", args[0]).
				Str("output", args[1]).
				Int64("seed", seed).
				Msg("mixing stimulus track")
			return audio.NewMixer(seed).Mix(args[0], args[1], params)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "Seed for clip and silence draws")
	cmd.Flags().IntVar(&params.TotalMinutes, "minutes", params.TotalMinutes, "Track length in minutes")
	cmd.Flags().Float64Var(&params.SilenceMinSeconds, "silence-min", params.SilenceMinSeconds, "Minimum silence between clips in seconds")
	cmd.Flags().Float64Var(&params.SilenceMaxSeconds, "silence-max", params.SilenceMaxSeconds, "Maximum silence between clips in seconds")
	cmd.Flags().Float64Var(&params.TransitionSeconds, "transition", params.TransitionSeconds, "Onset ramp length in seconds")
	cmd.Flags().StringSliceVar(&params.FileNames, "files", nil, "Restrict mixing to these clip file names")

	return cmd
}
