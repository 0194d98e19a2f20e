package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-service/internal/domain"
)

type PostgresCinemaRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCinemaRepository(db *pgxpool.Pool) *PostgresCinemaRepository {
	return &PostgresCinemaRepository{
		db: db,
	}
}

func (p *PostgresCinemaRepository) FindByID(ctx context.Context, id string) (*domain.Cinema, error) {
	query := `SELECT id, name, city, address, zip_code, phone_number FROM cinemas WHERE id = $1`

	var cinema domain.Cinema

	err := p.db.QueryRow(ctx, query, id).Scan(
		&cinema.ID,
		&cinema.Name,
		&cinema.City,
		&cinema.Address,
		&cinema.ZipCode,
		&cinema.PhoneNumber,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}

	return &cinema, nil
}
