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

func (s *Storage) ListArtists(ctx context.Context) ([]models.ArtistSummary, error) {
	const op = "storage.postgres.ListArtists"

	query := `
		SELECT a.id, a.name,
			COUNT(sh.id) FILTER (WHERE sh.start_time > $1) AS upcoming_shows_count
		FROM artists a
		LEFT JOIN shows sh ON sh.artist_id = a.id
		GROUP BY a.id
		ORDER BY a.name, a.id`

	artists := make([]models.ArtistSummary, 0)
	if err := s.DB.SelectContext(ctx, &artists, query, s.now()); err != nil {
		return nil, fmt.Errorf("%s: failed to get artists: %w", op, err)
	}

	return artists, nil
}

func (s *Storage) SearchArtists(ctx context.Context, term string) (*models.ArtistSearchResult, error) {
	const op = "storage.postgres.SearchArtists"

	query := `
		SELECT a.id, a.name,
			COUNT(sh.id) FILTER (WHERE sh.start_time > $2) AS upcoming_shows_count
		FROM artists a
		LEFT JOIN shows sh ON sh.artist_id = a.id
		WHERE a.name ILIKE $1
		GROUP BY a.id
		ORDER BY a.name, a.id`

	artists := make([]models.ArtistSummary, 0)
	if err := s.DB.SelectContext(ctx, &artists, query, likePattern(term), s.now()); err != nil {
		return nil, fmt.Errorf("%s: failed to search artists: %w", op, err)
	}

	return &models.ArtistSearchResult{
		Count: len(artists),
		Data:  artists,
	}, nil
}

func (s *Storage) GetArtist(ctx context.Context, id int) (*models.ArtistDetail, error) {
	const op = "storage.postgres.GetArtist"

	query := `
		SELECT id, name, city, state, phone, genres, image_link,
			website_link, facebook_link, seeking_venue, seeking_description
		FROM artists
		WHERE id = $1`

	var artist models.Artist
	if err := s.DB.GetContext(ctx, &artist, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrArtistNotFound)
		}
		return nil, fmt.Errorf("%s: failed to get artist: %w", op, err)
	}

	showsQuery := `
		SELECT v.id AS venue_id, v.name AS venue_name, v.image_link AS venue_image_link, sh.start_time
		FROM shows sh
		JOIN venues v ON v.id = sh.venue_id
		WHERE sh.artist_id = $1
		ORDER BY sh.start_time, sh.id`

	var shows []models.VenueShow
	if err := s.DB.SelectContext(ctx, &shows, showsQuery, id); err != nil {
		return nil, fmt.Errorf("%s: failed to get artist shows: %w", op, err)
	}

	for i := range shows {
		shows[i].StartTime = listing.FormatDetail(shows[i].StartsAt)
	}

	past, upcoming := listing.Partition(shows, s.now())

	return &models.ArtistDetail{
		Artist:             artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *Storage) CreateArtist(ctx context.Context, in models.ArtistInput) (int, error) {
	const op = "storage.postgres.CreateArtist"

	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO artists (name, city, state, phone, genres, image_link,
			website_link, facebook_link, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id int
	err = tx.QueryRowContext(ctx, query,
		in.Name,
		in.City,
		in.State,
		in.Phone,
		pq.Array(in.Genres),
		in.ImageLink,
		in.WebsiteLink,
		in.FacebookLink,
		in.SeekingVenue,
		in.SeekingDescription,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to create artist: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateArtist(ctx context.Context, id int, in models.ArtistInput) error {
	const op = "storage.postgres.UpdateArtist"

	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var existing int
	err = tx.QueryRowContext(ctx, `SELECT id FROM artists WHERE id = $1 FOR UPDATE`, id).Scan(&existing)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, storage.ErrArtistNotFound)
		}
		return fmt.Errorf("%s: failed to load artist: %w", op, err)
	}

	query := `
		UPDATE artists
		SET name = $2, city = $3, state = $4, phone = $5, genres = $6,
			image_link = $7, website_link = $8, facebook_link = $9,
			seeking_venue = $10, seeking_description = $11
		WHERE id = $1`

	_, err = tx.ExecContext(ctx, query,
		id,
		in.Name,
		in.City,
		in.State,
		in.Phone,
		pq.Array(in.Genres),
		in.ImageLink,
		in.WebsiteLink,
		in.FacebookLink,
		in.SeekingVenue,
		in.SeekingDescription,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to update artist: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return nil
}

func (s *Storage) DeleteArtist(ctx context.Context, id int) error {
	const op = "storage.postgres.DeleteArtist"

	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE artist_id = $1`, id); err != nil {
		return fmt.Errorf("%s: failed to delete artist shows: %w", op, err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: failed to delete artist: %w", op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get affected rows: %w", op, err)
	}

	if affected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrArtistNotFound)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return nil
}
