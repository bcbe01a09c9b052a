package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newProblemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "problem <name> <image-ref> <description...>",
		Short: "Report a problem for a tenant",
		Long:  "File a problem report with a photo against a tenant's record.",
		Args:  cobra.MinimumNArgs(3),
		RunE:  runProblem,
	}
}

func runProblem(cmd *cobra.Command, args []string) error {
	description := strings.Join(args[2:], " ")

	c := newAPIClient()

	problem, err := c.ReportProblem(args[0], args[1], description)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(problem)
	}

	fmt.Printf("Problem reported for %s.\n  %s\n", args[0], problem.Description)
	return nil
}
