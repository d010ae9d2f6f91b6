package models

import "github.com/lib/pq"

type Artist struct {
	ID                 int            `json:"id" db:"id"`
	Name               string         `json:"name" db:"name"`
	City               string         `json:"city" db:"city"`
	State              string         `json:"state" db:"state"`
	Phone              string         `json:"phone" db:"phone"`
	Genres             pq.StringArray `json:"genres" db:"genres"`
	ImageLink          string         `json:"image_link" db:"image_link"`
	WebsiteLink        string         `json:"website_link" db:"website_link"`
	FacebookLink       string         `json:"facebook_link" db:"facebook_link"`
	SeekingVenue       bool           `json:"seeking_venue" db:"seeking_venue"`
	SeekingDescription string         `json:"seeking_description" db:"seeking_description"`
}

type ArtistInput struct {
	Name               string   `json:"name" validate:"required,max=120"`
	City               string   `json:"city" validate:"required,max=120"`
	State              string   `json:"state" validate:"required,len=2,uppercase"`
	Phone              string   `json:"phone" validate:"max=120"`
	Genres             []string `json:"genres" validate:"required,min=1,dive,required"`
	ImageLink          string   `json:"image_link" validate:"omitempty,url,max=500"`
	WebsiteLink        string   `json:"website_link" validate:"omitempty,url,max=120"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,url,max=120"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" validate:"max=500"`
}

type ArtistSummary struct {
	ID                 int    `json:"id" db:"id"`
	Name               string `json:"name" db:"name"`
	UpcomingShowsCount int    `json:"upcoming_shows_count" db:"upcoming_shows_count"`
}

type ArtistDetail struct {
	Artist
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

type ArtistSearchResult struct {
	Count int             `json:"count"`
	Data  []ArtistSummary `json:"data"`
}
