package trip

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps each trip's itinerary as a JSONB document.
// Table layout lives in internal/infra/migrations.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Insert(ctx context.Context, t *Trip) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO trips (id, body, created_at, updated_at)
        VALUES ($1, $2, $3, $4)`,
		t.ID,
		t.Itinerary,
		t.CreatedAt,
		t.UpdatedAt,
	)
	return err
}

func (s *PostgresStore) List(ctx context.Context) ([]Trip, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, body, created_at, updated_at
        FROM trips
        ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Trip{}
	for rows.Next() {
		var t Trip
		if err := rows.Scan(&t.ID, &t.Itinerary, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		normalize(&t)
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Delete(ctx context.Context, id string) (*Trip, error) {
	row := s.db.QueryRow(ctx, `
        DELETE FROM trips
        WHERE id = $1
        RETURNING id, body, created_at, updated_at`, id,
	)
	var t Trip
	err := row.Scan(&t.ID, &t.Itinerary, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	normalize(&t)
	return &t, nil
}
