package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateAlbums, downCreateAlbums)
}

func upCreateAlbums(ctx context.Context, tx *sql.Tx) error {
	key := keyType()
	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS albums (
    name_key %[1]s NOT NULL PRIMARY KEY,
    name     %[1]s NOT NULL,
    position INTEGER NOT NULL
)`, key),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS photos (
    id         %[1]s NOT NULL PRIMARY KEY,
    album_key  %[1]s NOT NULL REFERENCES albums (name_key) ON DELETE CASCADE,
    position   INTEGER NOT NULL,
    image_path TEXT NOT NULL,
    filename   TEXT NOT NULL
)`, key),
		`CREATE INDEX photos_album_position_idx ON photos (album_key, position)`,
	}
	for _, ddl := range stmts {
		if _, err := tx.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("create albums schema: %w", err)
		}
	}
	return nil
}

func downCreateAlbums(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS photos`); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS albums`)
	return err
}
