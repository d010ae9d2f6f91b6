package models

import "time"

type ShowInput struct {
	ArtistID  int       `json:"artist_id" validate:"required,gt=0"`
	VenueID   int       `json:"venue_id" validate:"required,gt=0"`
	StartTime time.Time `json:"start_time" validate:"required"`
}

// ArtistShow is a show as seen from its venue: the counterpart is the artist.
type ArtistShow struct {
	ArtistID        int       `json:"artist_id" db:"artist_id"`
	ArtistName      string    `json:"artist_name" db:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link" db:"artist_image_link"`
	StartTime       string    `json:"start_time" db:"-"`
	StartsAt        time.Time `json:"-" db:"start_time"`
}

// VenueShow is a show as seen from its artist.
type VenueShow struct {
	VenueID        int       `json:"venue_id" db:"venue_id"`
	VenueName      string    `json:"venue_name" db:"venue_name"`
	VenueImageLink string    `json:"venue_image_link" db:"venue_image_link"`
	StartTime      string    `json:"start_time" db:"-"`
	StartsAt       time.Time `json:"-" db:"start_time"`
}

type ShowListing struct {
	ID              int       `json:"id" db:"id"`
	VenueID         int       `json:"venue_id" db:"venue_id"`
	VenueName       string    `json:"venue_name" db:"venue_name"`
	VenueImageLink  string    `json:"venue_image_link" db:"venue_image_link"`
	ArtistID        int       `json:"artist_id" db:"artist_id"`
	ArtistName      string    `json:"artist_name" db:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link" db:"artist_image_link"`
	StartTime       string    `json:"start_time" db:"-"`
	StartsAt        time.Time `json:"-" db:"start_time"`
}

func (s ArtistShow) Starts() time.Time { return s.StartsAt }

func (s VenueShow) Starts() time.Time { return s.StartsAt }
