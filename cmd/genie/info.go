package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ekaya-inc/genie-spaces/pkg/models"
)

var infoFormat string

var infoCmd = &cobra.Command{
	Use:   "info <space-id>",
	Short: "Show a summary of a Genie Space",
	Long: `Display space metadata and a structural summary of its configuration
without printing the full JSON document.

Examples:
  genie info 01ef1a2b3c4d5e6f`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		space, err := c.ExportSpace(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		export, err := space.GetExport()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		description := space.Description
		if description == "" {
			description = "-"
		}
		warehouse := space.WarehouseID
		if warehouse == "" {
			warehouse = "-"
		}
		fmt.Fprintln(out, PanelStyle.Render(fmt.Sprintf(
			"Title:       %s\nSpace ID:    %s\nWarehouse:   %s\nDescription: %s",
			ValueStyle.Render(space.Title),
			ValueStyle.Render(space.SpaceID),
			ValueStyle.Render(warehouse),
			description,
		)))

		rendered, err := renderSummary(models.Summarize(export), infoFormat)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, rendered)

		if export.DataSources != nil && len(export.DataSources.Tables) > 0 {
			fmt.Fprintf(out, "\nTables:\n")
			for _, t := range export.DataSources.Tables {
				fmt.Fprintf(out, "  %s %s\n",
					ValueStyle.Render(t.Identifier),
					MutedStyle.Render(fmt.Sprintf("(%s configured)", countNoun(len(t.ColumnConfigs), "column"))))
			}
		}

		if export.Config != nil && len(export.Config.SampleQuestions) > 0 {
			fmt.Fprintf(out, "\nSample questions:\n")
			for i, q := range export.Config.SampleQuestions {
				fmt.Fprintf(out, "  %d. %s\n", i+1, strings.Join(q.Question, " "))
			}
		}

		return nil
	},
}

func init() {
	infoCmd.Flags().StringVar(&infoFormat, "output", formatTable, "summary format: table, yaml, or json")
}
