package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "joe-photos",
		Short:         "A photo album library with Person and Location tags",
		Long:          "Joe Photos keeps named albums of photo references, tags them with people and places, and finds them again by tag.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("storage-driver", "", "album store: json, sqlite3, mysql or postgres (default json)")
	flags.String("storage-path", "", "JSON document path for the json driver (default albums.json)")
	flags.String("db-dsn", "", "database DSN for SQL drivers")
	flags.String("log-level", "", "debug, info, warn or error (default info)")
	flags.String("log-format", "", "console or json (default console)")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newAlbumCmd())
	rootCmd.AddCommand(newPhotoCmd())
	rootCmd.AddCommand(newTagCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newSuggestCmd())

	return rootCmd
}
