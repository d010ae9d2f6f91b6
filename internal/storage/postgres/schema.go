package postgres

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS venues (
	id                  SERIAL PRIMARY KEY,
	name                VARCHAR(120) NOT NULL,
	city                VARCHAR(120) NOT NULL,
	state               VARCHAR(120) NOT NULL,
	address             VARCHAR(120) NOT NULL DEFAULT '',
	phone               VARCHAR(120) NOT NULL DEFAULT '',
	genres              TEXT[] NOT NULL DEFAULT '{}',
	image_link          VARCHAR(500) NOT NULL DEFAULT '',
	website_link        VARCHAR(120) NOT NULL DEFAULT '',
	facebook_link       VARCHAR(120) NOT NULL DEFAULT '',
	seeking_talent      BOOLEAN NOT NULL DEFAULT FALSE,
	seeking_description VARCHAR(500) NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS artists (
	id                  SERIAL PRIMARY KEY,
	name                VARCHAR(120) NOT NULL,
	city                VARCHAR(120) NOT NULL,
	state               VARCHAR(120) NOT NULL,
	phone               VARCHAR(120) NOT NULL DEFAULT '',
	genres              TEXT[] NOT NULL DEFAULT '{}',
	image_link          VARCHAR(500) NOT NULL DEFAULT '',
	website_link        VARCHAR(120) NOT NULL DEFAULT '',
	facebook_link       VARCHAR(120) NOT NULL DEFAULT '',
	seeking_venue       BOOLEAN NOT NULL DEFAULT FALSE,
	seeking_description VARCHAR(500) NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS shows (
	id         SERIAL PRIMARY KEY,
	start_time TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	artist_id  INTEGER NOT NULL REFERENCES artists (id) ON DELETE CASCADE,
	venue_id   INTEGER NOT NULL REFERENCES venues (id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS shows_venue_id_start_time_idx ON shows (venue_id, start_time);
CREATE INDEX IF NOT EXISTS shows_artist_id_start_time_idx ON shows (artist_id, start_time);
`

// Migrate creates the tables if they are missing. It is safe to run on every start.
func (s *Storage) Migrate(ctx context.Context) error {
	const op = "storage.postgres.Migrate"

	if _, err := s.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%s: failed to create schema: %w", op, err)
	}

	return nil
}
