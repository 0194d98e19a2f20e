package integration_test

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/metinatakli/cinema-service/internal/app"
	"github.com/metinatakli/cinema-service/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
)

const (
	dbName         = "cinema"
	dbUser         = "test_user"
	dbPassword     = "test_password"
	dbImageName    = "postgres:17-alpine"
	cacheImageName = "redis:7"
)

type BaseSuite struct {
	suite.Suite
	app            *TestApp
	dbContainer    *PostgresContainer
	cacheContainer *RedisContainer
}

func (s *BaseSuite) SetupSuite() {
	ctx := context.Background()

	postgresContainer, err := getDbContainer(ctx)
	require.NoError(s.T(), err, "failed to start postgres container")

	redisContainer, err := getCacheContainer(ctx)
	require.NoError(s.T(), err, "failed to start redis container")

	s.dbContainer = postgresContainer
	s.cacheContainer = redisContainer

	var cfg app.Config
	cfg.Port = 3000
	cfg.Env = "test"
	cfg.DB.DSN = postgresContainer.ConnectionString
	cfg.DB.MaxOpenConns = 10
	cfg.DB.MaxIdleTime = 2 * time.Minute
	cfg.Redis.URL = redisContainer.ConnectionString
	cfg.Redis.MaxOpenConns = 10
	cfg.Redis.MaxIdleConns = 10
	cfg.Redis.MaxIdleTime = 2 * time.Minute
	cfg.EnrichConcurrency = 4
	cfg.CatalogTimeout = time.Second
	cfg.RateLimit = middleware.RateLimitConfig{
		Enabled:        true,
		Capacity:       1000,
		RefillTokens:   1000,
		RefillInterval: time.Second,
		Prefix:         "it",
	}

	testApp, err := newTestApp(cfg)
	require.NoError(s.T(), err, "cannot initialize app")

	s.app = testApp
}

func (s *BaseSuite) TearDownSuite() {
	if s.app != nil {
		s.app.Close()
	}

	var containers []testcontainers.Container
	if s.dbContainer != nil {
		containers = append(containers, s.dbContainer.PostgresContainer)
	}
	if s.cacheContainer != nil {
		containers = append(containers, s.cacheContainer.RedisContainer)
	}

	for _, c := range containers {
		if err := testcontainers.TerminateContainer(c); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
}

type Scenario struct {
	Name             string
	Method           string
	URL              string
	Body             io.Reader
	Headers          map[string]string
	ExpectedStatus   int
	ExpectedResponse string
	BeforeTestFunc   func(t testing.TB, app *TestApp)
	AfterTestFunc    func(t testing.TB, app *TestApp, res *http.Response)
}

func (s Scenario) Run(t *testing.T, testApp *TestApp) {
	t.Run(s.Name, func(t *testing.T) {
		req, err := prepareRequest(s.Method, s.URL, s.Body, s.Headers)
		require.NoError(t, err)

		if s.BeforeTestFunc != nil {
			s.BeforeTestFunc(t, testApp)
		}

		rec := httptest.NewRecorder()
		testApp.App.Routes().ServeHTTP(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		assert.Equal(t, s.ExpectedStatus, res.StatusCode)

		if s.ExpectedResponse != "" {
			compareResponse(t, res.Body, s.ExpectedResponse)
		}

		if s.AfterTestFunc != nil {
			s.AfterTestFunc(t, testApp, res)
		}
	})
}
