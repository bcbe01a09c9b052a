package cli

import (
	"github.com/spf13/cobra"
)

func newTenantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tenants [name]",
		Short: "List tenants or show one",
		Long:  "With no argument, list all tenant records. With a name, show that tenant's corner photos and problem reports.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTenants,
	}
}

func runTenants(cmd *cobra.Command, args []string) error {
	c := newAPIClient()

	if len(args) == 1 {
		info, err := c.GetTenant(args[0])
		if err != nil {
			return err
		}
		if isJSON() {
			return printJSON(info)
		}
		printTenantSummary(info)
		return nil
	}

	tenants, err := c.ListTenants()
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(tenants)
	}

	return printTenantTable(tenants)
}
