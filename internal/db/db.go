package db

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

var (
	Once sync.Once

	DBConn *sqlx.DB
)

// DBConnect opens (once) the application's SQLite database. The path is
// taken from COLLABAND_DB, defaulting to ./collaband.db.
func DBConnect() (*sqlx.DB, error) {
	Once.Do(func() {
		dbPath := os.Getenv("COLLABAND_DB")
		if dbPath == "" {
			dbPath = "./collaband.db"
		}
		pool, err := sqlx.Open("sqlite3", dbPath)
		if err != nil {
			log.Fatalf("Failed to open database connection: %v", err)
		}
		fmt.Printf("Connected to database at %s!\n", dbPath)
		DBConn = pool
	})
	return DBConn, nil
}

// InitializeDB opens the database and verifies the schema.
func InitializeDB() error {
	DB, err := DBConnect()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := InitializeSchema(DB); err != nil {
		return err
	}

	log.Println("DB connection initialized and schema verified.")

	return nil
}

// InitializeSchema enables foreign keys and creates the users, projects and
// chats tables if they do not exist. The UNIQUE constraint on
// chats.initiator_id keeps concurrent first requests from creating two
// chats for the same initiator.
func InitializeSchema(DB *sqlx.DB) error {
	if _, err := DB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS projects (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS chats (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		initiator_id INTEGER NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE
	);`

	if _, err := DB.Exec(schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}
