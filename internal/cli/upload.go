package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload an image",
		Long:  "Upload an image file to durable storage and print its reference.",
		Args:  cobra.ExactArgs(1),
		RunE:  runUpload,
	}
}

func runUpload(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}

	c := newAPIClient()

	url, err := c.UploadImage(data)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]string{"url": url})
	}

	fmt.Println(url)
	return nil
}
