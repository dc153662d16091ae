package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/joestump/joe-photos/internal/domain"
)

type albumRow struct {
	Name     string `db:"name"`
	NameKey  string `db:"name_key"`
	Position int    `db:"position"`
}

type photoRow struct {
	ID        string `db:"id"`
	AlbumKey  string `db:"album_key"`
	Position  int    `db:"position"`
	ImagePath string `db:"image_path"`
	Filename  string `db:"filename"`
}

type tagRow struct {
	PhotoID  string `db:"photo_id"`
	Position int    `db:"position"`
	TagType  string `db:"tag_type"`
	TagValue string `db:"tag_value"`
}

// SQLStore keeps the collection in the albums, photos and photo_tags tables.
// Like FileStore it stores whole snapshots; row order is kept in the position
// columns.
type SQLStore struct {
	db *sqlx.DB
}

// NewSQLStore returns a SQLStore over a migrated database.
func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

// q rebinds ? placeholders to the driver's native format.
func (s *SQLStore) q(query string) string { return s.db.Rebind(query) }

// Load rebuilds the album tree.
func (s *SQLStore) Load(ctx context.Context) ([]*domain.Album, error) {
	var albumRows []albumRow
	if err := s.db.SelectContext(ctx, &albumRows, `SELECT name, name_key, position FROM albums ORDER BY position ASC`); err != nil {
		return nil, fmt.Errorf("select albums: %w", err)
	}
	var photoRows []photoRow
	if err := s.db.SelectContext(ctx, &photoRows, `
		SELECT id, album_key, position, image_path, filename FROM photos ORDER BY album_key ASC, position ASC
	`); err != nil {
		return nil, fmt.Errorf("select photos: %w", err)
	}
	var tagRows []tagRow
	if err := s.db.SelectContext(ctx, &tagRows, `
		SELECT photo_id, position, tag_type, tag_value FROM photo_tags ORDER BY photo_id ASC, position ASC
	`); err != nil {
		return nil, fmt.Errorf("select photo tags: %w", err)
	}

	tagsByPhoto := make(map[string][]domain.Tag)
	for _, r := range tagRows {
		var t domain.TagType
		_ = t.UnmarshalText([]byte(r.TagType))
		tagsByPhoto[r.PhotoID] = append(tagsByPhoto[r.PhotoID], domain.Tag{Type: t, Value: r.TagValue})
	}

	photosByAlbum := make(map[string][]*domain.Photo)
	for _, r := range photoRows {
		tags := tagsByPhoto[r.ID]
		if tags == nil {
			tags = []domain.Tag{}
		}
		photosByAlbum[r.AlbumKey] = append(photosByAlbum[r.AlbumKey], &domain.Photo{
			ID:        r.ID,
			ImagePath: r.ImagePath,
			Filename:  r.Filename,
			Tags:      tags,
		})
	}

	albums := make([]*domain.Album, 0, len(albumRows))
	for _, r := range albumRows {
		a := domain.NewAlbum(r.Name)
		if photos := photosByAlbum[r.NameKey]; photos != nil {
			a.Photos = photos
		}
		albums = append(albums, a)
	}
	return albums, nil
}

// Save replaces every row in one transaction.
func (s *SQLStore) Save(ctx context.Context, albums []*domain.Album) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"photo_tags", "photos", "albums"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	insertAlbum := s.q(`INSERT INTO albums (name, name_key, position) VALUES (?, ?, ?)`)
	insertPhoto := s.q(`INSERT INTO photos (id, album_key, position, image_path, filename) VALUES (?, ?, ?, ?, ?)`)
	insertTag := s.q(`INSERT INTO photo_tags (photo_id, position, tag_type, tag_value) VALUES (?, ?, ?, ?)`)

	for i, a := range albums {
		key := domain.NameKey(a.Name)
		if _, err := tx.ExecContext(ctx, insertAlbum, a.Name, key, i); err != nil {
			return fmt.Errorf("insert album %q: %w", a.Name, err)
		}
		for j, p := range a.Photos {
			if _, err := tx.ExecContext(ctx, insertPhoto, p.ID, key, j, p.ImagePath, p.Filename); err != nil {
				return fmt.Errorf("insert photo %s: %w", p.ID, err)
			}
			for k, t := range p.Tags {
				if _, err := tx.ExecContext(ctx, insertTag, p.ID, k, t.Type.String(), t.Value); err != nil {
					return fmt.Errorf("insert tag for photo %s: %w", p.ID, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}
