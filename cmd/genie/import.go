package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ekaya-inc/genie-spaces/pkg/client"
)

var (
	importWarehouse   string
	importParentPath  string
	importTitle       string
	importDescription string
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Create a new Genie Space from a JSON file",
	Long: `Create a new Genie Space from an exported configuration file. The document
is validated locally before anything is sent to the workspace.

Examples:
  genie import my-space.json -w abc123 -p "/Workspace/Users/me/Genie Spaces"
  genie import my-space.json -w abc123 -p "/Workspace/Shared/Spaces" --title "Production Space"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		space, err := c.ImportSpaceFromFile(cmd.Context(), args[0], client.ImportRequest{
			WarehouseID: importWarehouse,
			ParentPath:  importParentPath,
			Title:       importTitle,
			Description: importDescription,
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), PanelStyle.Render(fmt.Sprintf(
			"%s Space created\n\nTitle:     %s\nSpace ID:  %s\nWarehouse: %s",
			SuccessStyle.Render("✓"),
			ValueStyle.Render(space.Title),
			ValueStyle.Render(space.SpaceID),
			ValueStyle.Render(importWarehouse),
		)))
		return nil
	},
}

func init() {
	importCmd.Flags().StringVarP(&importWarehouse, "warehouse", "w", "", "SQL warehouse id for the new space")
	importCmd.Flags().StringVarP(&importParentPath, "path", "p", "", "workspace path for the new space")
	importCmd.Flags().StringVar(&importTitle, "title", "", "display title for the space")
	importCmd.Flags().StringVarP(&importDescription, "description", "d", "", "description for the space")
	_ = importCmd.MarkFlagRequired("warehouse")
	_ = importCmd.MarkFlagRequired("path")
}
