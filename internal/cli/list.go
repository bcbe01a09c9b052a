package cli

import (
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List committed surveys",
		Long:  "List all committed property surveys known to the server.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	c := newAPIClient()

	surveys, err := c.ListSurveys()
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(surveys)
	}

	return printSurveyTable(surveys)
}
