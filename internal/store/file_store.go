package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joestump/joe-photos/internal/domain"
)

// FileStore keeps the collection in a single JSON document.
type FileStore struct {
	path string
	now  func() time.Time
}

// NewFileStore returns a FileStore backed by path. The parent directory is
// created on first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// Load decodes the document. A missing file yields an empty collection. A file
// that cannot be decoded is renamed to <path>.corrupt-<timestamp> so the next
// Save does not overwrite it, and ErrCorrupt is returned.
func (s *FileStore) Load(_ context.Context) ([]*domain.Album, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []*domain.Album{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read album store: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []*domain.Album{}, nil
	}

	var albums []*domain.Album
	if err := json.Unmarshal(data, &albums); err != nil {
		backup, qerr := s.quarantine()
		if qerr != nil {
			return nil, fmt.Errorf("%w: %v (quarantine failed: %v)", ErrCorrupt, err, qerr)
		}
		return nil, fmt.Errorf("%w: %v (moved to %s)", ErrCorrupt, err, backup)
	}

	return normalize(albums), nil
}

// Save writes the document to a temporary file in the same directory and
// renames it over the target, so readers see either the old or the new
// document.
func (s *FileStore) Save(_ context.Context, albums []*domain.Album) error {
	if albums == nil {
		albums = []*domain.Album{}
	}
	data, err := json.MarshalIndent(albums, "", "  ")
	if err != nil {
		return fmt.Errorf("encode albums: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace album store: %w", err)
	}
	return nil
}

func (s *FileStore) quarantine() (string, error) {
	backup := fmt.Sprintf("%s.corrupt-%s", s.path, s.now().UTC().Format("20060102T150405Z"))
	if err := os.Rename(s.path, backup); err != nil {
		return "", err
	}
	return backup, nil
}

// normalize fills in what older documents may omit: nil slices become empty
// and a missing filename is derived from the image path. Missing IDs are left
// empty for the library to assign.
func normalize(albums []*domain.Album) []*domain.Album {
	out := make([]*domain.Album, 0, len(albums))
	for _, a := range albums {
		if a == nil {
			continue
		}
		photos := make([]*domain.Photo, 0, len(a.Photos))
		for _, p := range a.Photos {
			if p == nil {
				continue
			}
			if p.Filename == "" && p.ImagePath != "" {
				p.Filename = filepath.Base(p.ImagePath)
			}
			if p.Tags == nil {
				p.Tags = []domain.Tag{}
			}
			photos = append(photos, p)
		}
		a.Photos = photos
		out = append(out, a)
	}
	return out
}
