package library

import "errors"

// Validation failures. Each one names the precondition that failed so callers
// can pick a specific message; wrapped variants carry the offending value.
var (
	ErrBlankName     = errors.New("name must not be blank")
	ErrAlbumExists   = errors.New("album already exists")
	ErrAlbumNotFound = errors.New("album not found")
	ErrPhotoNotFound = errors.New("photo not found")
	ErrDuplicateTag  = errors.New("photo already has this tag")
	ErrTagNotFound   = errors.New("photo does not have this tag")
	ErrClosed        = errors.New("library is closed")
)
