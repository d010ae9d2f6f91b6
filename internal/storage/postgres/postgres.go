package postgres

import (
	"context"
	"errors"
	"fmt"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"strings"
	"time"
	"venueBooker/internal/config"
)

const pgForeignKeyViolation = "23503"

type Storage struct {
	DB  *sqlx.DB
	now func() time.Time
}

type Option func(*Storage)

// WithClock replaces time.Now as the source of "now" for upcoming/past splits.
func WithClock(now func() time.Time) Option {
	return func(s *Storage) {
		s.now = now
	}
}

func New(db *sqlx.DB, opts ...Option) *Storage {
	s := &Storage{
		DB:  db,
		now: time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func InitDB(dbCfg *config.Database, opts ...Option) (*Storage, error) {
	const op = "storage.postgres.InitDB"

	db, err := sqlx.Open("postgres", dbCfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open database: %w", op, err)
	}

	db.SetMaxOpenConns(dbCfg.MaxOpenConns)
	db.SetMaxIdleConns(dbCfg.MaxIdleConns)
	db.SetConnMaxLifetime(dbCfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: failed to connect to the database: %w", op, err)
	}

	return New(db, opts...), nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// likePattern turns a search term into an ILIKE substring pattern, escaping
// the LIKE wildcards so they match literally.
func likePattern(term string) string {
	escaper := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return "%" + escaper.Replace(strings.TrimSpace(term)) + "%"
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && pqErr.Code == pgForeignKeyViolation
}
