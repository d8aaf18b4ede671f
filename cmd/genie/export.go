package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ekaya-inc/genie-spaces/pkg/codec"
)

var (
	exportOutput  string
	exportCompact bool
)

var exportCmd = &cobra.Command{
	Use:   "export <space-id>",
	Short: "Export a Genie Space to JSON",
	Long: `Export the complete configuration of a Genie Space: tables, metric views,
instructions, sample questions, and benchmarks.

Examples:
  genie export 01ef1a2b3c4d5e6f
  genie export 01ef1a2b3c4d5e6f -o exports/my-space.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spaceID := args[0]

		c, err := newClient()
		if err != nil {
			return err
		}

		if exportOutput != "" {
			if _, err := c.ExportSpaceToFile(cmd.Context(), spaceID, exportOutput); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Exported space %s to %s\n",
				SuccessStyle.Render("✓"), ValueStyle.Render(spaceID), ValueStyle.Render(exportOutput))
			return nil
		}

		space, err := c.ExportSpace(cmd.Context(), spaceID)
		if err != nil {
			return err
		}
		export, err := space.GetExport()
		if err != nil {
			return err
		}

		var doc []byte
		if exportCompact {
			doc, err = codec.EncodeCompact(export)
		} else {
			doc, err = codec.Encode(export)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(doc))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file path (default: stdout)")
	exportCmd.Flags().BoolVar(&exportCompact, "compact", false, "emit compact JSON instead of indented")
}
