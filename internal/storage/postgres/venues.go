package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/lib/pq"
	"venueBooker/internal/lib/listing"
	"venueBooker/internal/models"
	"venueBooker/internal/storage"
)

func (s *Storage) ListVenueAreas(ctx context.Context) ([]models.Area, error) {
	const op = "storage.postgres.ListVenueAreas"

	query := `
		SELECT v.id, v.name, v.city, v.state,
			COUNT(sh.id) FILTER (WHERE sh.start_time > $1) AS upcoming_shows_count
		FROM venues v
		LEFT JOIN shows sh ON sh.venue_id = v.id
		GROUP BY v.id
		ORDER BY v.state, v.city, v.id`

	var rows []models.VenueRow
	if err := s.DB.SelectContext(ctx, &rows, query, s.now()); err != nil {
		return nil, fmt.Errorf("%s: failed to get venues: %w", op, err)
	}

	return listing.GroupByArea(rows), nil
}

func (s *Storage) SearchVenues(ctx context.Context, term string) (*models.VenueSearchResult, error) {
	const op = "storage.postgres.SearchVenues"

	query := `
		SELECT v.id, v.name,
			COUNT(sh.id) FILTER (WHERE sh.start_time > $2) AS upcoming_shows_count
		FROM venues v
		LEFT JOIN shows sh ON sh.venue_id = v.id
		WHERE v.name ILIKE $1
		GROUP BY v.id
		ORDER BY v.name, v.id`

	venues := make([]models.VenueSummary, 0)
	if err := s.DB.SelectContext(ctx, &venues, query, likePattern(term), s.now()); err != nil {
		return nil, fmt.Errorf("%s: failed to search venues: %w", op, err)
	}

	return &models.VenueSearchResult{
		Count: len(venues),
		Data:  venues,
	}, nil
}

func (s *Storage) GetVenue(ctx context.Context, id int) (*models.VenueDetail, error) {
	const op = "storage.postgres.GetVenue"

	query := `
		SELECT id, name, city, state, address, phone, genres, image_link,
			website_link, facebook_link, seeking_talent, seeking_description
		FROM venues
		WHERE id = $1`

	var venue models.Venue
	if err := s.DB.GetContext(ctx, &venue, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrVenueNotFound)
		}
		return nil, fmt.Errorf("%s: failed to get venue: %w", op, err)
	}

	showsQuery := `
		SELECT a.id AS artist_id, a.name AS artist_name, a.image_link AS artist_image_link, sh.start_time
		FROM shows sh
		JOIN artists a ON a.id = sh.artist_id
		WHERE sh.venue_id = $1
		ORDER BY sh.start_time, sh.id`

	var shows []models.ArtistShow
	if err := s.DB.SelectContext(ctx, &shows, showsQuery, id); err != nil {
		return nil, fmt.Errorf("%s: failed to get venue shows: %w", op, err)
	}

	for i := range shows {
		shows[i].StartTime = listing.FormatDetail(shows[i].StartsAt)
	}

	past, upcoming := listing.Partition(shows, s.now())

	return &models.VenueDetail{
		Venue:              venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *Storage) CreateVenue(ctx context.Context, in models.VenueInput) (int, error) {
	const op = "storage.postgres.CreateVenue"

	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO venues (name, city, state, address, phone, genres, image_link,
			website_link, facebook_link, seeking_talent, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var id int
	err = tx.QueryRowContext(ctx, query,
		in.Name,
		in.City,
		in.State,
		in.Address,
		in.Phone,
		pq.Array(in.Genres),
		in.ImageLink,
		in.WebsiteLink,
		in.FacebookLink,
		in.SeekingTalent,
		in.SeekingDescription,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to create venue: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateVenue(ctx context.Context, id int, in models.VenueInput) error {
	const op = "storage.postgres.UpdateVenue"

	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var existing int
	err = tx.QueryRowContext(ctx, `SELECT id FROM venues WHERE id = $1 FOR UPDATE`, id).Scan(&existing)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, storage.ErrVenueNotFound)
		}
		return fmt.Errorf("%s: failed to load venue: %w", op, err)
	}

	query := `
		UPDATE venues
		SET name = $2, city = $3, state = $4, address = $5, phone = $6, genres = $7,
			image_link = $8, website_link = $9, facebook_link = $10,
			seeking_talent = $11, seeking_description = $12
		WHERE id = $1`

	_, err = tx.ExecContext(ctx, query,
		id,
		in.Name,
		in.City,
		in.State,
		in.Address,
		in.Phone,
		pq.Array(in.Genres),
		in.ImageLink,
		in.WebsiteLink,
		in.FacebookLink,
		in.SeekingTalent,
		in.SeekingDescription,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to update venue: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return nil
}

// DeleteVenue removes the venue and every show booked at it.
func (s *Storage) DeleteVenue(ctx context.Context, id int) error {
	const op = "storage.postgres.DeleteVenue"

	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = $1`, id); err != nil {
		return fmt.Errorf("%s: failed to delete venue shows: %w", op, err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: failed to delete venue: %w", op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get affected rows: %w", op, err)
	}

	if affected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrVenueNotFound)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return nil
}
