package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ekaya-inc/genie-spaces/pkg/client"
)

var (
	updateFile        string
	updateTitle       string
	updateDescription string
	updateWarehouse   string
)

var updateCmd = &cobra.Command{
	Use:   "update <space-id>",
	Short: "Update an existing Genie Space",
	Long: `Update the configuration or metadata of an existing Genie Space. Only the
supplied fields are sent; at least one must be given.

Examples:
  genie update 01ef1a2b3c4d5e6f --file updated-config.json
  genie update 01ef1a2b3c4d5e6f --title "New Title"
  genie update 01ef1a2b3c4d5e6f --warehouse new-warehouse-id`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spaceID := args[0]

		c, err := newClient()
		if err != nil {
			return err
		}

		req := client.UpdateRequest{
			Title:       updateTitle,
			Description: updateDescription,
			WarehouseID: updateWarehouse,
		}

		var space *client.Space
		if updateFile != "" {
			space, err = c.UpdateSpaceFromFile(cmd.Context(), spaceID, updateFile, req)
		} else {
			space, err = c.UpdateSpace(cmd.Context(), spaceID, req)
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), PanelStyle.Render(fmt.Sprintf(
			"%s Space updated\n\nTitle:    %s\nSpace ID: %s",
			SuccessStyle.Render("✓"),
			ValueStyle.Render(space.Title),
			ValueStyle.Render(space.SpaceID),
		)))
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updateFile, "file", "f", "", "JSON configuration file to apply")
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "new display title")
	updateCmd.Flags().StringVarP(&updateDescription, "description", "d", "", "new description")
	updateCmd.Flags().StringVarP(&updateWarehouse, "warehouse", "w", "", "new SQL warehouse id")
}
