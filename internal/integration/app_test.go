package integration_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-service/internal/app"
	"github.com/metinatakli/cinema-service/internal/handler"
	"github.com/metinatakli/cinema-service/internal/moviecatalog"
	"github.com/metinatakli/cinema-service/internal/repository"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App     *app.Application
	DB      *pgxpool.Pool
	Redis   *redis.Client
	Catalog *moviecatalog.StaticCatalog

	Screenings *repository.PostgresScreeningRepository
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	catalog := moviecatalog.NewStaticCatalog()
	screenings := repository.NewPostgresScreeningRepository(db)

	application := app.NewApp(cfg, logger, app.Dependencies{
		Screenings: screenings,
		Rooms:      repository.NewPostgresRoomRepository(db),
		Cinemas:    repository.NewPostgresCinemaRepository(db),
		Catalog:    catalog,
		Redis:      redisClient,
		Checks: map[string]handler.Check{
			"postgres": db.Ping,
			"redis": func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			},
		},
	})

	return &TestApp{
		App:        application,
		DB:         db,
		Redis:      redisClient,
		Catalog:    catalog,
		Screenings: screenings,
	}, nil
}

func (a *TestApp) Close() {
	a.Redis.Close()
	a.DB.Close()
}
