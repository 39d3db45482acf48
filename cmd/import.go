package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ThalesGroup/requin-2023-experiment/internal/application"
)

func newImportCmd(app *app) *cobra.Command {
	var (
		seed       int64
		condition  string
		paramsFile string
		stemsDir   string
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "import <script-file>",
		Short: "Generate a scenario whose monitoring and comm events come from a schedule script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := app.sessionParams(paramsFile, condition)
			if err != nil {
				return err
			}

			document, _, err := app.importService(stemsDir).GenerateWithScript(args[0], seed, params)
			if err != nil {
				return err
			}

			if outputFile == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), document)
				return err
			}
			if err := os.WriteFile(outputFile, []byte(document), 0o644); err != nil {
				return fmt.Errorf("write scenario file: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for the generated portions of the scenario")
	cmd.Flags().StringVar(&condition, "condition", application.ConditionHigh, "Difficulty condition (high or low)")
	cmd.Flags().StringVar(&paramsFile, "params", "", "Path to the JSON parameter file")
	cmd.Flags().StringVar(&stemsDir, "stems", "", "Directory of communication recordings (default: built-in catalogue)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")

	return cmd
}
