package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-service/internal/domain"
	"github.com/shopspring/decimal"
)

const screeningColumns = `s.id, s.room_id, s.movie_id, s.starts_at, s.ends_at, s.base_price, s.currency, s.extra_minutes`

type PostgresScreeningRepository struct {
	db *pgxpool.Pool
}

func NewPostgresScreeningRepository(db *pgxpool.Pool) *PostgresScreeningRepository {
	return &PostgresScreeningRepository{
		db: db,
	}
}

func (p *PostgresScreeningRepository) FindAll(ctx context.Context, filters domain.ScreeningFilters) ([]domain.Screening, error) {
	query, args := buildScreeningQuery("", filters)

	return p.query(ctx, query, args...)
}

func (p *PostgresScreeningRepository) FindByMovieID(
	ctx context.Context,
	movieID string,
	filters domain.ScreeningFilters) ([]domain.Screening, error) {

	query, args := buildScreeningQuery(movieID, filters)

	return p.query(ctx, query, args...)
}

func (p *PostgresScreeningRepository) FindMovieIDsByCinemaID(ctx context.Context, cinemaID string) ([]string, error) {
	query := `
		SELECT DISTINCT s.movie_id
		FROM screenings s
		INNER JOIN rooms r ON r.id = s.room_id
		WHERE r.cinema_id = $1
		ORDER BY s.movie_id`

	rows, err := p.db.Query(ctx, query, cinemaID)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (p *PostgresScreeningRepository) FindByID(ctx context.Context, id string) (*domain.Screening, error) {
	query := `SELECT ` + screeningColumns + ` FROM screenings s WHERE s.id = $1`

	screening, err := scanScreening(p.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}

	return &screening, nil
}

func (p *PostgresScreeningRepository) ListByRoomID(
	ctx context.Context,
	roomID string,
	from, to *time.Time) ([]domain.Screening, error) {

	query := `SELECT ` + screeningColumns + `
		FROM screenings s
		WHERE s.room_id = $1
			AND ($2::timestamptz IS NULL OR s.starts_at >= $2::timestamptz)
			AND ($3::timestamptz IS NULL OR s.ends_at <= $3::timestamptz)
		ORDER BY s.starts_at ASC, s.id ASC`

	return p.query(ctx, query, roomID, from, to)
}

func (p *PostgresScreeningRepository) HasOverlap(
	ctx context.Context,
	roomID string,
	slot domain.TimeRange,
	excludeID string) (bool, error) {

	return hasOverlap(ctx, p.db, roomID, slot, excludeID)
}

// Create inserts the screening after locking its room, so two concurrent
// schedules for the same room cannot both pass the overlap check.
func (p *PostgresScreeningRepository) Create(ctx context.Context, screening *domain.Screening) error {
	if screening.ID == "" {
		screening.ID = uuid.NewString()
	}

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		err := lockRoom(ctx, tx, screening.RoomID)
		if err != nil {
			return err
		}

		overlap, err := hasOverlap(ctx, tx, screening.RoomID, screening.Slot, "")
		if err != nil {
			return err
		}
		if overlap {
			return domain.ErrScreeningOverlap
		}

		query := `
			INSERT INTO screenings (id, room_id, movie_id, starts_at, ends_at, base_price, currency, extra_minutes)
			VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8)`

		_, err = tx.Exec(ctx,
			query,
			screening.ID,
			screening.RoomID,
			screening.MovieID,
			screening.Slot.Start,
			screening.Slot.End,
			screening.Price.Amount.String(),
			screening.Price.Currency,
			screening.ExtraMinutes)

		return mapWriteError(err)
	})
}

func (p *PostgresScreeningRepository) Update(ctx context.Context, screening *domain.Screening) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		err := lockRoom(ctx, tx, screening.RoomID)
		if err != nil {
			return err
		}

		overlap, err := hasOverlap(ctx, tx, screening.RoomID, screening.Slot, screening.ID)
		if err != nil {
			return err
		}
		if overlap {
			return domain.ErrScreeningOverlap
		}

		query := `
			UPDATE screenings
			SET starts_at = $2, ends_at = $3, base_price = $4::numeric, currency = $5, extra_minutes = $6,
				updated_at = NOW()
			WHERE id = $1`

		tag, err := tx.Exec(ctx,
			query,
			screening.ID,
			screening.Slot.Start,
			screening.Slot.End,
			screening.Price.Amount.String(),
			screening.Price.Currency,
			screening.ExtraMinutes)
		if err != nil {
			return mapWriteError(err)
		}

		if tag.RowsAffected() == 0 {
			return domain.ErrRecordNotFound
		}

		return nil
	})
}

func (p *PostgresScreeningRepository) Delete(ctx context.Context, id string) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM screenings WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresScreeningRepository) query(ctx context.Context, query string, args ...any) ([]domain.Screening, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	screenings := []domain.Screening{}

	for rows.Next() {
		screening, err := scanScreening(rows)
		if err != nil {
			return nil, err
		}

		screenings = append(screenings, screening)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return screenings, nil
}

// buildScreeningQuery renders the storage stage of the screening filters.
// Sorting always falls back to start time then id so equal prices keep a
// stable order.
func buildScreeningQuery(movieID string, filters domain.ScreeningFilters) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if movieID != "" {
		conditions = append(conditions, "s.movie_id = "+arg(movieID))
	}
	if filters.FromDate != nil {
		conditions = append(conditions, "s.starts_at >= "+arg(*filters.FromDate))
	}
	if filters.ToDate != nil {
		conditions = append(conditions, "s.starts_at <= "+arg(*filters.ToDate))
	}
	if filters.HasAvailableSeats != nil {
		if *filters.HasAvailableSeats {
			conditions = append(conditions, "r.capacity_seat > 0")
		} else {
			conditions = append(conditions, "r.capacity_seat = 0")
		}
	}
	if filters.CinemaID != "" {
		conditions = append(conditions, "c.id = "+arg(filters.CinemaID))
	}
	if filters.CityName != "" {
		conditions = append(conditions, "c.city ILIKE '%' || "+arg(escapeLike(filters.CityName))+" || '%'")
	}
	if filters.PriceMax != nil {
		conditions = append(conditions, "s.base_price <= "+arg(filters.PriceMax.String())+"::numeric")
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + screeningColumns + `
		FROM screenings s
		LEFT JOIN rooms r ON r.id = s.room_id
		LEFT JOIN cinemas c ON c.id = r.cinema_id`)

	if len(conditions) > 0 {
		sb.WriteString("\n\t\tWHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}

	column := "s." + filters.SortColumn()
	sb.WriteString("\n\t\tORDER BY " + column + " " + filters.SortDirection())
	if column != "s.starts_at" {
		sb.WriteString(", s.starts_at ASC")
	}
	sb.WriteString(", s.id ASC")

	return sb.String(), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func hasOverlap(ctx context.Context, q querier, roomID string, slot domain.TimeRange, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM screenings
			WHERE room_id = $1
				AND starts_at < $3
				AND ends_at > $2
				AND ($4 = '' OR id <> $4)
		)`

	var exists bool
	err := q.QueryRow(ctx, query, roomID, slot.Start, slot.End, excludeID).Scan(&exists)

	return exists, err
}

func lockRoom(ctx context.Context, tx pgx.Tx, roomID string) error {
	var id string
	err := tx.QueryRow(ctx, `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`, roomID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.NotFoundError{Entity: "room", ID: roomID}
		}
		return err
	}

	return nil
}

func scanScreening(row pgx.Row) (domain.Screening, error) {
	var (
		s     domain.Screening
		price pgtype.Numeric
	)

	err := row.Scan(
		&s.ID,
		&s.RoomID,
		&s.MovieID,
		&s.Slot.Start,
		&s.Slot.End,
		&price,
		&s.Price.Currency,
		&s.ExtraMinutes,
	)
	if err != nil {
		return domain.Screening{}, err
	}

	s.Slot.Start = s.Slot.Start.UTC()
	s.Slot.End = s.Slot.End.UTC()
	s.Price.Amount = numericToDecimal(price)

	return s, nil
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func mapWriteError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.ForeignKeyViolation:
		return domain.ErrRecordNotFound
	case pgerrcode.ExclusionViolation:
		return domain.ErrScreeningOverlap
	case pgerrcode.CheckViolation:
		switch pgErr.ConstraintName {
		case "screenings_base_price_check":
			return domain.ErrNegativeAmount
		case "screenings_extra_minutes_check":
			return domain.ErrNegativeMinutes
		default:
			return domain.ErrInvalidTimeRange
		}
	default:
		return err
	}
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}
