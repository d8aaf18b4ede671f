package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ekaya-inc/genie-spaces/pkg/codec"
	"github.com/ekaya-inc/genie-spaces/pkg/models"
)

var validateFormat string

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a Genie Space configuration file",
	Long: `Parse a JSON configuration file and validate it against the space export
schema, then print a structural summary. Runs entirely locally - useful for
catching errors before an import.

Examples:
  genie validate my-space.json
  genie validate my-space.json --output yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		export, err := codec.Decode(data)
		if err != nil {
			return err
		}

		rendered, err := renderSummary(models.Summarize(export), validateFormat)
		if err != nil {
			return err
		}

		if validateFormat == formatTable {
			fmt.Fprintf(cmd.OutOrStdout(), "%s Valid configuration: %s\n\n",
				SuccessStyle.Render("✓"), ValueStyle.Render(path))
		}
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateFormat, "output", formatTable, "summary format: table, yaml, or json")
}
