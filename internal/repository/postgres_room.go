package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-service/internal/domain"
)

type PostgresRoomRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRoomRepository(db *pgxpool.Pool) *PostgresRoomRepository {
	return &PostgresRoomRepository{
		db: db,
	}
}

func (p *PostgresRoomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	query := `SELECT id, cinema_id, name, capacity_seat FROM rooms WHERE id = $1`

	var room domain.Room

	err := p.db.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.CinemaID,
		&room.Name,
		&room.CapacitySeat,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}

	return &room, nil
}
