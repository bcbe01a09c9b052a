package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set-server <url>",
			Short: "Set the API server URL",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				cfg.ServerURL = args[0]
				if err := saveConfig(cfg); err != nil {
					return err
				}
				fmt.Printf("Server URL set to %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Show the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if isJSON() {
					return printJSON(map[string]string{"server_url": getServerURL()})
				}
				fmt.Printf("Server URL: %s\n", getServerURL())
				return nil
			},
		},
	)

	return cmd
}
