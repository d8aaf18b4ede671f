package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ekaya-inc/genie-spaces/pkg/client"
)

var (
	cloneWarehouse  string
	cloneParentPath string
	cloneTitle      string
)

var cloneCmd = &cobra.Command{
	Use:   "clone <source-space-id>",
	Short: "Clone a Genie Space to a new location",
	Long: `Export a space and import it as a new space, optionally under a different
warehouse. The two steps are sequential and not atomic: a failed import
leaves no new space, and the source is never modified.

Examples:
  genie clone 01ef1a2b3c4d5e6f -w def456 -p "/Workspace/Users/me/Spaces" --title "Dev Copy"
  genie clone 01ef1a2b3c4d5e6f -w prod-warehouse -p "/Workspace/Shared/Genie Spaces"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sourceID := args[0]

		c, err := newClient()
		if err != nil {
			return err
		}

		space, err := c.CloneSpace(cmd.Context(), sourceID, client.CloneRequest{
			WarehouseID: cloneWarehouse,
			ParentPath:  cloneParentPath,
			Title:       cloneTitle,
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), PanelStyle.Render(fmt.Sprintf(
			"%s Space cloned\n\nNew Title:    %s\nNew Space ID: %s\nSource ID:    %s",
			SuccessStyle.Render("✓"),
			ValueStyle.Render(space.Title),
			ValueStyle.Render(space.SpaceID),
			ValueStyle.Render(sourceID),
		)))
		return nil
	},
}

func init() {
	cloneCmd.Flags().StringVarP(&cloneWarehouse, "warehouse", "w", "", "SQL warehouse id for the new space")
	cloneCmd.Flags().StringVarP(&cloneParentPath, "path", "p", "", "workspace path for the new space")
	cloneCmd.Flags().StringVar(&cloneTitle, "title", "", "title for the cloned space (default: source title)")
	_ = cloneCmd.MarkFlagRequired("warehouse")
	_ = cloneCmd.MarkFlagRequired("path")
}
