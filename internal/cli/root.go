// Package cli defines the cobra command tree for homedoc.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/homedoc/homedoc/internal/client"
	"github.com/homedoc/homedoc/internal/db"
)

var (
	flagFormat     string
	flagDB         string
	flagLegacyURLs bool
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "homedoc",
		Short:         "Document rental properties before move-in",
		Long:          "A tool to document the state of rental properties. Landlords walk through a survey wizard room by room, attach geotagged photos, and commit the record; tenants add corner photos and report problems against it.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (default: ~/.homedoc/homedoc.db)")
	root.PersistentFlags().BoolVar(&flagLegacyURLs, "legacy-url-encoding", false, "encode image references even when the media marker is absent")

	root.AddCommand(
		newListCmd(),
		newShowCmd(),
		newUploadCmd(),
		newCaptureCmd(),
		newTenantCmd(),
		newTenantsCmd(),
		newCornerCmd(),
		newProblemCmd(),
		newVerifyCmd(),
		newServeCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return root
}

// openDB opens the SQLite database using the --db flag or default path.
// Used by the serve command to pass the DB to the web server.
func openDB() (*sql.DB, error) {
	path := flagDB
	if path == "" {
		var err error
		path, err = db.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return db.Open(path)
}

// newAPIClient creates an HTTP client for the homedoc API.
func newAPIClient() *client.Client {
	return client.New(getServerURL())
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeDB closes the database, logging any error to stderr.
func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}
