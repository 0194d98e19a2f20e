package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/metinatakli/cinema-service/internal/domain"
	"github.com/metinatakli/cinema-service/internal/handler"
	"github.com/metinatakli/cinema-service/internal/middleware"
	"github.com/metinatakli/cinema-service/internal/moviecatalog"
	"github.com/metinatakli/cinema-service/internal/repository"
	"github.com/metinatakli/cinema-service/internal/screening"
	appvalidator "github.com/metinatakli/cinema-service/internal/validator"
	"github.com/metinatakli/cinema-service/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const serviceName = "cinema-service"

var (
	version = vcs.Version()
)

type Application struct {
	config    Config
	logger    *slog.Logger
	validator *validator.Validate

	aggregator  *screening.Aggregator
	scheduler   *screening.Scheduler
	rateLimiter *middleware.RateLimiter

	*handler.HealthcheckHandler
}

type Config struct {
	Port int
	Env  string
	DB   struct {
		DSN          string
		MaxOpenConns int
		MaxIdleTime  time.Duration
	}
	Redis struct {
		URL          string
		MaxOpenConns int
		MaxIdleConns int
		MaxIdleTime  time.Duration
	}
	MovieCatalog struct {
		URL      string
		Timeout  time.Duration
		MaxTries uint
	}
	RateLimit         middleware.RateLimitConfig
	EnrichConcurrency int
	CatalogTimeout    time.Duration
	OtelCollectorUrl  string
}

// ParseConfig reads flags from args. Every flag falls back to an environment
// variable looked up through getenv, so a .env file loaded beforehand works
// the same as exported variables.
func ParseConfig(args []string, getenv func(string) string) (Config, bool, error) {
	var cfg Config

	fs := flag.NewFlagSet(serviceName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	env := envLookup{getenv: getenv}

	fs.IntVar(&cfg.Port, "port", env.int("PORT", 3000), "server port")
	fs.StringVar(&cfg.Env, "env", env.string("ENV", "dev"), "Environment (dev|staging|prod)")

	fs.StringVar(&cfg.DB.DSN, "db-dsn", env.string("DB_DSN", ""), "PostgreSQL DSN")
	fs.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", env.int("DB_MAX_OPEN_CONNS", 25), "PostgreSQL max open connections")
	fs.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", env.duration("DB_MAX_IDLE_TIME", 15*time.Minute), "PostgreSQL max idle time for connections")

	fs.StringVar(&cfg.Redis.URL, "redis-url", env.string("REDIS_URL", ""), "Redis URL (redis://host:port/db), rate limiting is disabled when empty")
	fs.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", env.int("REDIS_MAX_OPEN_CONNS", 25), "Redis max open connections")
	fs.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", env.int("REDIS_MAX_IDLE_CONNS", 10), "Redis max idle connections")
	fs.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", env.duration("REDIS_MAX_IDLE_TIME", 2*time.Minute), "Redis max idle time for connections")

	fs.StringVar(&cfg.MovieCatalog.URL, "movie-catalog-url", env.string("MOVIE_CATALOG_URL", ""), "Base URL of the movie service")
	fs.DurationVar(&cfg.MovieCatalog.Timeout, "movie-catalog-timeout", env.duration("MOVIE_CATALOG_TIMEOUT", 2*time.Second), "Timeout of a single movie service request")
	fs.UintVar(&cfg.MovieCatalog.MaxTries, "movie-catalog-max-tries", uint(env.int("MOVIE_CATALOG_MAX_TRIES", 3)), "Attempts per movie lookup")

	fs.BoolVar(&cfg.RateLimit.Enabled, "limiter-enabled", env.bool("LIMITER_ENABLED", true), "Enable rate limiter")
	fs.IntVar(&cfg.RateLimit.Capacity, "limiter-burst", env.int("LIMITER_BURST", 20), "Rate limiter maximum burst")
	fs.IntVar(&cfg.RateLimit.RefillTokens, "limiter-rps", env.int("LIMITER_RPS", 10), "Rate limiter tokens added per interval")
	fs.DurationVar(&cfg.RateLimit.RefillInterval, "limiter-interval", env.duration("LIMITER_INTERVAL", time.Second), "Rate limiter refill interval")

	fs.IntVar(&cfg.EnrichConcurrency, "enrich-concurrency", env.int("ENRICH_CONCURRENCY", screening.DefaultConcurrency), "Screenings enriched in parallel")
	fs.DurationVar(&cfg.CatalogTimeout, "enrich-catalog-timeout", env.duration("ENRICH_CATALOG_TIMEOUT", screening.DefaultCatalogTimeout), "Deadline of a movie lookup while enriching screenings")
	fs.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", env.string("OTEL_COLLECTOR_URL", ""), "OpenTelemetry collector gRPC endpoint")

	displayVersion := fs.Bool("version", false, "Display version and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, false, err
	}

	if env.err != nil {
		return Config{}, false, env.err
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, false, fmt.Errorf("invalid port %d", cfg.Port)
	}

	return cfg, *displayVersion, nil
}

type envLookup struct {
	getenv func(string) string
	err    error
}

func (e *envLookup) string(key, def string) string {
	if v := e.getenv(key); v != "" {
		return v
	}
	return def
}

func (e *envLookup) int(key string, def int) int {
	v := e.getenv(key)
	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		e.err = errors.Join(e.err, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func (e *envLookup) bool(key string, def bool) bool {
	v := e.getenv(key)
	if v == "" {
		return def
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		e.err = errors.Join(e.err, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return b
}

func (e *envLookup) duration(key string, def time.Duration) time.Duration {
	v := e.getenv(key)
	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		e.err = errors.Join(e.err, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}

func Run() error {
	// a missing .env file is fine, the environment may be set by the runtime
	_ = godotenv.Load()

	cfg, displayVersion, err := ParseConfig(os.Args[1:], os.Getenv)
	if err != nil {
		return err
	}

	if displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	stdout := slog.NewTextHandler(os.Stdout, nil)
	app := &Application{
		config: cfg,
		logger: slog.New(stdout),
	}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		app.logger = slog.New(NewMultiHandler(stdout, otelslog.NewHandler(serviceName)))
	}

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	deps := Dependencies{
		Screenings: repository.NewPostgresScreeningRepository(db),
		Rooms:      repository.NewPostgresRoomRepository(db),
		Cinemas:    repository.NewPostgresCinemaRepository(db),
		Checks: map[string]handler.Check{
			"postgres": db.Ping,
		},
	}

	if cfg.Redis.URL != "" {
		redisClient, err := NewRedisClient(cfg)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		deps.Redis = redisClient
		deps.Checks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	} else {
		app.logger.Warn("redis URL not set, rate limiting disabled")
	}

	deps.Catalog, err = app.newMovieCatalog()
	if err != nil {
		return err
	}

	app = NewApp(cfg, app.logger, deps)

	return app.run()
}

// Dependencies are the collaborators of the HTTP layer. A nil Redis disables
// rate limiting.
type Dependencies struct {
	Screenings domain.ScreeningRepository
	Rooms      domain.RoomRepository
	Cinemas    domain.CinemaRepository
	Catalog    domain.MovieCatalog
	Redis      redis.Scripter
	Checks     map[string]handler.Check
}

func NewApp(cfg Config, logger *slog.Logger, deps Dependencies) *Application {
	app := &Application{
		config:    cfg,
		logger:    logger,
		validator: appvalidator.NewValidator(),
		aggregator: screening.NewAggregator(deps.Screenings, deps.Rooms, deps.Cinemas, deps.Catalog,
			screening.WithLogger(logger),
			screening.WithConcurrency(cfg.EnrichConcurrency),
			screening.WithCatalogTimeout(cfg.CatalogTimeout),
		),
		scheduler:          screening.NewScheduler(deps.Screenings, deps.Rooms, deps.Catalog, logger),
		HealthcheckHandler: handler.NewHealthcheckHandler(cfg.Env, deps.Checks, logger),
	}

	if deps.Redis != nil {
		app.rateLimiter = middleware.NewRateLimiter(cfg.RateLimit, deps.Redis, logger)
	}

	return app
}

func (app *Application) newMovieCatalog() (domain.MovieCatalog, error) {
	if app.config.MovieCatalog.URL == "" {
		app.logger.Warn("movie catalog URL not set, every movie resolves to the placeholder")
		return moviecatalog.NewStaticCatalog(), nil
	}

	return moviecatalog.NewHTTPCatalog(moviecatalog.Options{
		BaseURL:  app.config.MovieCatalog.URL,
		Timeout:  app.config.MovieCatalog.Timeout,
		MaxTries: app.config.MovieCatalog.MaxTries,
	})
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, err
	}

	opts.MaxIdleConns = cfg.Redis.MaxIdleConns
	opts.MaxActiveConns = cfg.Redis.MaxOpenConns
	opts.ConnMaxIdleTime = cfg.Redis.MaxIdleTime

	rdb := redis.NewClient(opts)

	if err := redisotel.InstrumentTracing(rdb); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env, "version", version)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}
