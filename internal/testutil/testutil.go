package testutil

import (
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/harsha/nutrition-dashboard/internal/api"
	"github.com/harsha/nutrition-dashboard/internal/config"
	"github.com/harsha/nutrition-dashboard/internal/identity"
	"github.com/harsha/nutrition-dashboard/internal/repository"
	repoSqlite "github.com/harsha/nutrition-dashboard/internal/repository/sqlite"
	"github.com/harsha/nutrition-dashboard/internal/service"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestDB wraps a throwaway SQLite database backed by a temp file, so each
// test gets its own isolated store with the real pragmas and constraints.
type TestDB struct {
	DB *gorm.DB
}

func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	db, err := repoSqlite.NewConnection(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	return &TestDB{DB: db}
}

// TestConfig returns a configuration suitable for testing. MinCost keeps
// bcrypt fast.
func TestConfig() *config.Config {
	return &config.Config{
		Port:             "0",
		Environment:      "test",
		DatabasePath:     ":memory:",
		BcryptCost:       bcrypt.MinCost,
		IdentityCacheTTL: time.Minute,
	}
}

// TestServer holds all components for integration testing.
type TestServer struct {
	Server     *httptest.Server
	DB         *TestDB
	Repos      *repository.Repositories
	Services   *service.Services
	Identities *identity.Cache
	Config     *config.Config
}

// NewTestServer creates a complete test server with all dependencies.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	testDB := NewTestDB(t)
	cfg := TestConfig()

	repos := repoSqlite.NewRepositories(testDB.DB)
	services := service.NewServices(repos, cfg)
	identities := identity.New(cfg.IdentityCacheTTL)
	router := api.NewRouter(services, identities, cfg)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server:     server,
		DB:         testDB,
		Repos:      repos,
		Services:   services,
		Identities: identities,
		Config:     cfg,
	}
}

// URL joins a path onto the test server base URL.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}
