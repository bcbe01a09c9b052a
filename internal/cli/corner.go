package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCornerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "corner <name> <category> <image-ref>",
		Short: "Record a corner photo for a tenant",
		Long:  "Append a corner photo to a tenant's history for a room category. Categories: bedrooms, bathrooms, kitchen, livingRooms, externalView, addRooms, addExternalSpace.",
		Args:  cobra.ExactArgs(3),
		RunE:  runCorner,
	}
}

func runCorner(cmd *cobra.Command, args []string) error {
	c := newAPIClient()

	corner, err := c.AddCorner(args[0], args[1], args[2])
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(corner)
	}

	fmt.Printf("Corner #%d recorded for %s.\n", corner.Side, args[0])
	return nil
}
