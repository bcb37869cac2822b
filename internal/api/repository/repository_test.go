package repository_test

import (
	"collaband/CollaBand/internal/api/models"
	"collaband/CollaBand/internal/api/repository"
	"collaband/CollaBand/internal/db"
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// newTestDB opens an in-memory SQLite database with the full schema. A
// single connection keeps every query on the same memory database.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	require.NoError(t, db.InitializeSchema(conn))

	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// newTestUser inserts a user and returns it.
func newTestUser(t *testing.T, conn *sqlx.DB, username, email string) *models.User {
	t.Helper()

	repo := repository.NewUserRepository(conn)
	user := &models.User{Username: username, Email: email}
	require.NoError(t, repo.CreateUser(context.Background(), user, "sup3rsecret"))
	return user
}

func projectCount(t *testing.T, conn *sqlx.DB) int {
	t.Helper()

	var n int
	require.NoError(t, conn.Get(&n, `SELECT COUNT(*) FROM projects`))
	return n
}
