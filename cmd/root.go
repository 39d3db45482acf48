package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "matbgen",
		Short:         "MATB-II scenario and stimulus generator",
		Long:          "matbgen generates randomized MATB-II event scenarios for experiment sessions, converts externally authored schedule scripts, and renders the matching audio and video stimuli.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app := wireApp()

	rootCmd.AddCommand(
		newVersionCmd(),
		newScenarioCmd(app),
		newImportCmd(app),
		newAudioCmd(app),
		newVideoCmd(app),
	)

	return rootCmd
}
