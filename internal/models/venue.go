package models

import "github.com/lib/pq"

type Venue struct {
	ID                 int            `json:"id" db:"id"`
	Name               string         `json:"name" db:"name"`
	City               string         `json:"city" db:"city"`
	State              string         `json:"state" db:"state"`
	Address            string         `json:"address" db:"address"`
	Phone              string         `json:"phone" db:"phone"`
	Genres             pq.StringArray `json:"genres" db:"genres"`
	ImageLink          string         `json:"image_link" db:"image_link"`
	WebsiteLink        string         `json:"website_link" db:"website_link"`
	FacebookLink       string         `json:"facebook_link" db:"facebook_link"`
	SeekingTalent      bool           `json:"seeking_talent" db:"seeking_talent"`
	SeekingDescription string         `json:"seeking_description" db:"seeking_description"`
}

// VenueInput is the writable part of a Venue, shared by create and edit.
type VenueInput struct {
	Name               string   `json:"name" validate:"required,max=120"`
	City               string   `json:"city" validate:"required,max=120"`
	State              string   `json:"state" validate:"required,len=2,uppercase"`
	Address            string   `json:"address" validate:"required,max=120"`
	Phone              string   `json:"phone" validate:"max=120"`
	Genres             []string `json:"genres" validate:"required,min=1,dive,required"`
	ImageLink          string   `json:"image_link" validate:"omitempty,url,max=500"`
	WebsiteLink        string   `json:"website_link" validate:"omitempty,url,max=120"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,url,max=120"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description" validate:"max=500"`
}

type VenueSummary struct {
	ID                 int    `json:"id" db:"id"`
	Name               string `json:"name" db:"name"`
	UpcomingShowsCount int    `json:"upcoming_shows_count" db:"upcoming_shows_count"`
}

// VenueRow is a VenueSummary together with the area it belongs to.
type VenueRow struct {
	VenueSummary
	City  string `db:"city"`
	State string `db:"state"`
}

// Area groups the venues of one (city, state) pair.
type Area struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

type VenueDetail struct {
	Venue
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

type VenueSearchResult struct {
	Count int            `json:"count"`
	Data  []VenueSummary `json:"data"`
}
