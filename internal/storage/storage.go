package storage

import "errors"

var (
	ErrVenueNotFound  = errors.New("venue not found")
	ErrArtistNotFound = errors.New("artist not found")
	// ErrShowReferenceNotFound means a show points at an artist or venue that does not exist.
	ErrShowReferenceNotFound = errors.New("show references missing artist or venue")
)
