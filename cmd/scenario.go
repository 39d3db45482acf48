package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ThalesGroup/requin-2023-experiment/internal/application"
)

func newScenarioCmd(app *app) *cobra.Command {
	var (
		seed        int64
		maxAttempts int
		paramsFile  string
		stemsDir    string
		manifestOut string
		noManifest  bool
	)

	cmd := &cobra.Command{
		Use:   "scenario <output-dir>",
		Short: "Generate the scenario file set for both difficulty conditions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputDir := args[0]

			manifestPath := manifestOut
			if noManifest {
				manifestPath = ""
			} else if manifestPath == "" {
				manifestPath = filepath.Join(outputDir, "run_manifest.toml")
			}

			service, err := app.scenarioService(paramsFile, stemsDir, manifestPath)
			if err != nil {
				return err
			}
			return service.CreateScenarioSet(cmd.Context(), outputDir, seed, maxAttempts)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "Starting seed for every scenario")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", application.MaxGenerationAttempts, "Regeneration attempts per scenario")
	cmd.Flags().StringVar(&paramsFile, "params", "", "Path to the JSON parameter file")
	cmd.Flags().StringVar(&stemsDir, "stems", "", "Directory of communication recordings (default: built-in catalogue)")
	cmd.Flags().StringVar(&manifestOut, "manifest", "", "Run manifest path (default: <output-dir>/run_manifest.toml)")
	cmd.Flags().BoolVar(&noManifest, "no-manifest", false, "Skip writing the run manifest")

	return cmd
}
