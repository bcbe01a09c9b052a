package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTenantCmd() *cobra.Command {
	var landlord string

	cmd := &cobra.Command{
		Use:   "tenant <survey-key> <name> <phone>",
		Short: "Invite a tenant to a survey",
		Long:  "Invite a tenant to a committed survey. The server sends a one-time code to the tenant's phone and links the tenant to the survey record.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTenant(args[0], args[1], args[2], landlord)
		},
	}

	cmd.Flags().StringVar(&landlord, "landlord", "", "landlord name to include in the invitation message")

	return cmd
}

func runTenant(surveyKey, name, phone, landlord string) error {
	c := newAPIClient()

	info, err := c.InviteTenant(surveyKey, landlord, name, phone)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(info)
	}

	fmt.Printf("Invited %s (%s) to survey %s.\n", info.Name, info.PhoneNumber, surveyKey)
	return nil
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <name> <otp>",
		Short: "Verify a tenant's one-time code",
		Args:  cobra.ExactArgs(2),
		RunE:  runVerify,
	}
}

func runVerify(cmd *cobra.Command, args []string) error {
	c := newAPIClient()

	info, err := c.VerifyOTP(args[0], args[1])
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(info)
	}

	fmt.Printf("Verified %s.\n", info.Name)
	return nil
}
