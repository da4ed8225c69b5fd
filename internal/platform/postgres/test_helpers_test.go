package postgres

import (
	"database/sql"
	"os"
	"testing"

	"github.com/aimun-naharr/food-donation-app-server/migrations"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a connection to the database named by DATABASE_URL,
// applies the embedded migrations, and truncates the tables so each test
// starts clean. Tests are skipped when no database is configured.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set; skipping postgres integration tests")
	}

	db, err := sql.Open("pgx", url)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	goose.SetBaseFS(migrations.FS)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, "."))

	_, err = db.Exec("TRUNCATE users, supplies")
	require.NoError(t, err)

	return db
}
