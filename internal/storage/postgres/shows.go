package postgres

import (
	"context"
	"fmt"
	"venueBooker/internal/lib/listing"
	"venueBooker/internal/models"
	"venueBooker/internal/storage"
)

func (s *Storage) ListShows(ctx context.Context) ([]models.ShowListing, error) {
	const op = "storage.postgres.ListShows"

	query := `
		SELECT sh.id, sh.start_time,
			v.id AS venue_id, v.name AS venue_name, v.image_link AS venue_image_link,
			a.id AS artist_id, a.name AS artist_name, a.image_link AS artist_image_link
		FROM shows sh
		JOIN venues v ON v.id = sh.venue_id
		JOIN artists a ON a.id = sh.artist_id
		ORDER BY sh.start_time, sh.id`

	shows := make([]models.ShowListing, 0)
	if err := s.DB.SelectContext(ctx, &shows, query); err != nil {
		return nil, fmt.Errorf("%s: failed to get shows: %w", op, err)
	}

	for i := range shows {
		shows[i].StartTime = listing.FormatList(shows[i].StartsAt)
	}

	return shows, nil
}

func (s *Storage) CreateShow(ctx context.Context, in models.ShowInput) (int, error) {
	const op = "storage.postgres.CreateShow"

	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO shows (start_time, artist_id, venue_id)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int
	err = tx.QueryRowContext(ctx, query, in.StartTime, in.ArtistID, in.VenueID).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrShowReferenceNotFound)
		}
		return 0, fmt.Errorf("%s: failed to create show: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return id, nil
}
