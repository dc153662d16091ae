// Package library is the single owner of the album collection. Every read and
// write of albums, photos and tags goes through a Library, which validates the
// request, applies it to the in-memory collection and writes the whole
// collection back through its store.Gateway before returning.
package library

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/joestump/joe-photos/internal/domain"
	"github.com/joestump/joe-photos/internal/logger"
	"github.com/joestump/joe-photos/internal/metrics"
	"github.com/joestump/joe-photos/internal/store"
)

type state int

const (
	unloaded state = iota
	loaded
	closed
)

// Library serializes all operations behind one mutex that covers both the
// in-memory mutation and the persist that follows it.
type Library struct {
	mu      sync.Mutex
	gateway store.Gateway
	log     zerolog.Logger
	state   state
	albums  []*domain.Album
}

// Option configures a Library.
type Option func(*Library)

// WithLogger replaces the default component logger.
func WithLogger(l zerolog.Logger) Option {
	return func(lib *Library) { lib.log = l }
}

// New returns an unloaded Library. The collection is loaded by Init, or by the
// first operation if Init was not called.
func New(gateway store.Gateway, opts ...Option) *Library {
	lib := &Library{
		gateway: gateway,
		log:     logger.New("library"),
	}
	for _, opt := range opts {
		opt(lib)
	}
	return lib
}

// Init loads the collection. Load failures are logged and leave an empty
// collection; Init only fails once the library is closed.
func (l *Library) Init(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ready(ctx)
}

// Close releases the collection. Every later call returns ErrClosed.
func (l *Library) Close(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = closed
	l.albums = nil
	return nil
}

// Albums returns the live collection. Callers must treat it as read-only and
// must not share it across goroutines; use Snapshot for that.
func (l *Library) Albums(ctx context.Context) []*domain.Album {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.ready(ctx) != nil {
		return nil
	}
	return l.albums
}

// Snapshot returns a deep copy of the collection.
func (l *Library) Snapshot(ctx context.Context) []*domain.Album {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.ready(ctx) != nil {
		return nil
	}
	return domain.CloneAll(l.albums)
}

// AlbumNames lists album names in collection order.
func (l *Library) AlbumNames(ctx context.Context) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.ready(ctx) != nil {
		return nil
	}
	names := make([]string, len(l.albums))
	for i, a := range l.albums {
		names[i] = a.Name
	}
	return names
}

// FindAlbum returns the album named name, ignoring case, or nil.
func (l *Library) FindAlbum(ctx context.Context, name string) *domain.Album {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.ready(ctx) != nil {
		return nil
	}
	return domain.FindAlbum(l.albums, name)
}

// CreateAlbum appends a new, empty album.
func (l *Library) CreateAlbum(ctx context.Context, name string) (*domain.Album, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ready(ctx); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, l.fail("create_album", ErrBlankName)
	}
	if domain.FindAlbum(l.albums, name) != nil {
		return nil, l.fail("create_album", fmt.Errorf("%w: %q", ErrAlbumExists, name))
	}

	a := domain.NewAlbum(name)
	l.albums = append(l.albums, a)
	l.persist(ctx, "create_album")
	l.log.Debug().Str("album", name).Msg("album created")
	return a, nil
}

// DeleteAlbum removes an album together with its photos.
func (l *Library) DeleteAlbum(ctx context.Context, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ready(ctx); err != nil {
		return err
	}

	for i, a := range l.albums {
		if a.HasName(name) {
			l.albums = append(l.albums[:i], l.albums[i+1:]...)
			l.persist(ctx, "delete_album")
			l.log.Debug().Str("album", a.Name).Int("photos", a.PhotoCount()).Msg("album deleted")
			return nil
		}
	}
	return l.fail("delete_album", fmt.Errorf("%w: %q", ErrAlbumNotFound, name))
}

// RenameAlbum renames in place and returns the renamed album. A new name that
// differs only by case from the current one is allowed; a name held by
// another album is not.
func (l *Library) RenameAlbum(ctx context.Context, oldName, newName string) (*domain.Album, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ready(ctx); err != nil {
		return nil, err
	}

	a := domain.FindAlbum(l.albums, oldName)
	if a == nil {
		return nil, l.fail("rename_album", fmt.Errorf("%w: %q", ErrAlbumNotFound, oldName))
	}
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, l.fail("rename_album", ErrBlankName)
	}
	if existing := domain.FindAlbum(l.albums, newName); existing != nil && existing != a {
		return nil, l.fail("rename_album", fmt.Errorf("%w: %q", ErrAlbumExists, newName))
	}

	a.Name = newName
	l.persist(ctx, "rename_album")
	return a, nil
}

// AddPhoto appends a photo with a fresh ID. An empty filename is derived from
// imagePath.
func (l *Library) AddPhoto(ctx context.Context, albumName, imagePath, filename string) (*domain.Photo, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ready(ctx); err != nil {
		return nil, err
	}

	a := domain.FindAlbum(l.albums, albumName)
	if a == nil {
		return nil, l.fail("add_photo", fmt.Errorf("%w: %q", ErrAlbumNotFound, albumName))
	}
	if strings.TrimSpace(imagePath) == "" {
		return nil, l.fail("add_photo", fmt.Errorf("%w: image path", ErrBlankName))
	}

	p := domain.NewPhoto(imagePath, strings.TrimSpace(filename))
	a.AddPhoto(p)
	l.persist(ctx, "add_photo")
	l.log.Debug().Str("album", a.Name).Str("photo_id", p.ID).Msg("photo added")
	return p, nil
}

// RemovePhotoByID deletes a photo from an album.
func (l *Library) RemovePhotoByID(ctx context.Context, albumName, photoID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ready(ctx); err != nil {
		return err
	}

	a, p, err := l.photoInAlbum(albumName, photoID)
	if err != nil {
		return l.fail("remove_photo", err)
	}
	a.RemovePhoto(p)
	l.persist(ctx, "remove_photo")
	return nil
}

// RemovePhoto deletes the first photo in the album matching imagePath, or
// failing that filename.
func (l *Library) RemovePhoto(ctx context.Context, albumName, imagePath, filename string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ready(ctx); err != nil {
		return err
	}

	a, p, err := l.photoByLocationInAlbum(albumName, imagePath, filename)
	if err != nil {
		return l.fail("remove_photo", err)
	}
	a.RemovePhoto(p)
	l.persist(ctx, "remove_photo")
	return nil
}

// MovePhotoByID transfers a photo to the end of another album, keeping its ID
// and tags.
func (l *Library) MovePhotoByID(ctx context.Context, fromAlbum, toAlbum, photoID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ready(ctx); err != nil {
		return err
	}

	dst := domain.FindAlbum(l.albums, toAlbum)
	if dst == nil {
		return l.fail("move_photo", fmt.Errorf("%w: %q", ErrAlbumNotFound, toAlbum))
	}
	src, p, err := l.photoInAlbum(fromAlbum, photoID)
	if err != nil {
		return l.fail("move_photo", err)
	}
	l.move(ctx, src, dst, p)
	return nil
}

// MovePhoto is MovePhotoByID for callers that only know the photo's path or
// filename within the source album.
func (l *Library) MovePhoto(ctx context.Context, fromAlbum, toAlbum, imagePath, filename string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ready(ctx); err != nil {
		return err
	}

	dst := domain.FindAlbum(l.albums, toAlbum)
	if dst == nil {
		return l.fail("move_photo", fmt.Errorf("%w: %q", ErrAlbumNotFound, toAlbum))
	}
	src, p, err := l.photoByLocationInAlbum(fromAlbum, imagePath, filename)
	if err != nil {
		return l.fail("move_photo", err)
	}
	l.move(ctx, src, dst, p)
	return nil
}

// RenamePhotoByID changes a photo's display name.
func (l *Library) RenamePhotoByID(ctx context.Context, albumName, photoID, newFilename string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ready(ctx); err != nil {
		return err
	}

	newFilename = strings.TrimSpace(newFilename)
	if newFilename == "" {
		return l.fail("rename_photo", ErrBlankName)
	}
	_, p, err := l.photoInAlbum(albumName, photoID)
	if err != nil {
		return l.fail("rename_photo", err)
	}
	p.Filename = newFilename
	l.persist(ctx, "rename_photo")
	return nil
}

// RenamePhotoAt changes the display name of the photo at index within the
// album.
func (l *Library) RenamePhotoAt(ctx context.Context, albumName string, index int, newFilename string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ready(ctx); err != nil {
		return err
	}

	newFilename = strings.TrimSpace(newFilename)
	if newFilename == "" {
		return l.fail("rename_photo", ErrBlankName)
	}
	a := domain.FindAlbum(l.albums, albumName)
	if a == nil {
		return l.fail("rename_photo", fmt.Errorf("%w: %q", ErrAlbumNotFound, albumName))
	}
	p := a.PhotoAt(index)
	if p == nil {
		return l.fail("rename_photo", fmt.Errorf("%w: index %d", ErrPhotoNotFound, index))
	}
	p.Filename = newFilename
	l.persist(ctx, "rename_photo")
	return nil
}

// AddTag attaches tag to a photo. The photo is looked up by ID in albumName
// and, if it has since moved, in every other album.
func (l *Library) AddTag(ctx context.Context, albumName, photoID string, tag domain.Tag) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ready(ctx); err != nil {
		return err
	}

	tag = domain.NewTag(tag.Type, tag.Value)
	if tag.Value == "" {
		return l.fail("add_tag", fmt.Errorf("%w: tag value", ErrBlankName))
	}
	p := l.photoAnywhere(albumName, photoID)
	if p == nil {
		return l.fail("add_tag", fmt.Errorf("%w: %s", ErrPhotoNotFound, photoID))
	}
	if !p.AddTag(tag) {
		return l.fail("add_tag", fmt.Errorf("%w: %s", ErrDuplicateTag, tag))
	}
	l.persist(ctx, "add_tag")
	return nil
}

// RemoveTag detaches the first tag equal to tag, using the same lookup as
// AddTag.
func (l *Library) RemoveTag(ctx context.Context, albumName, photoID string, tag domain.Tag) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ready(ctx); err != nil {
		return err
	}

	p := l.photoAnywhere(albumName, photoID)
	if p == nil {
		return l.fail("remove_tag", fmt.Errorf("%w: %s", ErrPhotoNotFound, photoID))
	}
	if !p.RemoveTag(domain.NewTag(tag.Type, tag.Value)) {
		return l.fail("remove_tag", fmt.Errorf("%w: %s", ErrTagNotFound, tag))
	}
	l.persist(ctx, "remove_tag")
	return nil
}

// LocatePhoto resolves a photo from its path or filename, for callers that do
// not have its ID yet. The named album is searched first, then every album.
func (l *Library) LocatePhoto(ctx context.Context, albumName, imagePath, filename string) (*domain.Album, *domain.Photo, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ready(ctx); err != nil {
		return nil, nil, err
	}

	if a := domain.FindAlbum(l.albums, albumName); a != nil {
		if p := a.PhotoByLocation(imagePath, filename); p != nil {
			return a, p, nil
		}
	}
	if imagePath != "" || filename != "" {
		for _, a := range l.albums {
			if p := a.PhotoByLocation(imagePath, filename); p != nil {
				return a, p, nil
			}
		}
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrPhotoNotFound, firstNonEmpty(imagePath, filename))
}

// ready performs the lazy load. Callers hold l.mu.
func (l *Library) ready(ctx context.Context) error {
	switch l.state {
	case closed:
		return ErrClosed
	case loaded:
		return nil
	}

	albums, err := l.gateway.Load(ctx)
	if err != nil {
		l.log.Error().Err(err).Msg("load albums; starting with an empty library")
		albums = nil
	}
	if albums == nil {
		albums = []*domain.Album{}
	}
	l.albums = albums
	l.state = loaded

	if n := domain.AssignMissingIDs(l.albums); n > 0 {
		l.log.Info().Int("photos", n).Msg("assigned ids to photos saved without one")
		l.persist(ctx, "migrate_ids")
	}
	metrics.SetCollectionSize(l.albums)
	return nil
}

// persist writes the collection. A failed write is logged and counted but not
// returned: the in-memory edit stands and the next successful persist writes
// it out.
func (l *Library) persist(ctx context.Context, op string) {
	start := time.Now()
	err := l.gateway.Save(ctx, l.albums)
	metrics.PersistDuration.Observe(time.Since(start).Seconds())
	metrics.SetCollectionSize(l.albums)
	if err != nil {
		metrics.MutationsTotal.WithLabelValues(op, "persist_failed").Inc()
		metrics.PersistErrorsTotal.Inc()
		l.log.Error().Err(err).Str("op", op).Msg("persist albums")
		return
	}
	metrics.MutationsTotal.WithLabelValues(op, "ok").Inc()
}

func (l *Library) fail(op string, err error) error {
	metrics.MutationsTotal.WithLabelValues(op, "rejected").Inc()
	return err
}

func (l *Library) move(ctx context.Context, src, dst *domain.Album, p *domain.Photo) {
	if src == dst {
		return
	}
	src.RemovePhoto(p)
	dst.AddPhoto(p)
	l.persist(ctx, "move_photo")
	l.log.Debug().Str("from", src.Name).Str("to", dst.Name).Str("photo_id", p.ID).Msg("photo moved")
}

func (l *Library) photoInAlbum(albumName, photoID string) (*domain.Album, *domain.Photo, error) {
	a := domain.FindAlbum(l.albums, albumName)
	if a == nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrAlbumNotFound, albumName)
	}
	p := a.PhotoByID(photoID)
	if p == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrPhotoNotFound, photoID)
	}
	return a, p, nil
}

func (l *Library) photoByLocationInAlbum(albumName, imagePath, filename string) (*domain.Album, *domain.Photo, error) {
	a := domain.FindAlbum(l.albums, albumName)
	if a == nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrAlbumNotFound, albumName)
	}
	p := a.PhotoByLocation(imagePath, filename)
	if p == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrPhotoNotFound, firstNonEmpty(imagePath, filename))
	}
	return a, p, nil
}

func (l *Library) photoAnywhere(albumName, photoID string) *domain.Photo {
	if a := domain.FindAlbum(l.albums, albumName); a != nil {
		if p := a.PhotoByID(photoID); p != nil {
			return p
		}
	}
	for _, a := range l.albums {
		if p := a.PhotoByID(photoID); p != nil {
			return p
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
