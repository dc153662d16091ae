package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreatePhotoTags, downCreatePhotoTags)
}

func upCreatePhotoTags(ctx context.Context, tx *sql.Tx) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS photo_tags (
    photo_id  %[1]s NOT NULL REFERENCES photos (id) ON DELETE CASCADE,
    position  INTEGER NOT NULL,
    tag_type  %[1]s NOT NULL,
    tag_value %[1]s NOT NULL,
    PRIMARY KEY (photo_id, position)
)`, keyType())
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create photo_tags table: %w", err)
	}
	_, err := tx.ExecContext(ctx, `CREATE INDEX photo_tags_type_value_idx ON photo_tags (tag_type, tag_value)`)
	return err
}

func downCreatePhotoTags(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS photo_tags`)
	return err
}
