package cli

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/homedoc/homedoc/internal/blob"
	"github.com/homedoc/homedoc/internal/logging"
	"github.com/homedoc/homedoc/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int
	var dev bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  "Start the HTTP API server backing the survey wizard, image uploads, and tenant endpoints.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port, dev)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on")
	cmd.Flags().BoolVar(&dev, "dev", false, "dev mode: human-readable logs")

	return cmd
}

func runServe(ctx context.Context, port int, dev bool) error {
	// Optional; blob store settings usually live in .env during development.
	_ = godotenv.Load()

	logging.Setup(dev)

	database, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer closeDB(database)

	if ctx == nil {
		ctx = context.Background()
	}
	blobs, err := blob.OpenFromEnv(ctx)
	if err != nil {
		return fmt.Errorf("opening blob store: %w", err)
	}

	server, err := web.NewServer(database, blobs)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return server.ListenAndServe(port)
}
