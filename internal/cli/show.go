package cli

import (
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <key>",
		Short: "Show survey details",
		Long:  "Show the full contents of a committed survey, including room entries, images, and verification data.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	c := newAPIClient()

	stored, err := c.GetSurvey(args[0])
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(stored)
	}

	printSurveySummary(stored)
	return nil
}
