package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Bring the album store up to date",
		Long: "Applies pending schema migrations for SQL drivers. For every driver the collection is\n" +
			"loaded once, which assigns IDs to photos stored without one and writes them back.",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, cfg, closeLib, err := openLibrary(cmd)
			if err != nil {
				return err
			}
			defer closeLib()

			log.Info().
				Str("driver", cfg.Storage.Driver).
				Int("albums", len(lib.AlbumNames(cmd.Context()))).
				Msg("migrations complete")
			return nil
		},
	}
}
