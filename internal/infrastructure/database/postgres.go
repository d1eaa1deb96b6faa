package database

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

// PostgreSQLClient is the direct-connection client used by the venues
// repository.
type PostgreSQLClient struct {
	DB *sql.DB
}

// NewPostgreSQLClient connects to the project's Postgres database using the
// Supabase connection parameters from the environment.
func NewPostgreSQLClient() (*PostgreSQLClient, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabasePassword := os.Getenv("SUPABASE_DB_PASSWORD")

	if supabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL environment variable is not set")
	}
	if supabasePassword == "" {
		return nil, fmt.Errorf("SUPABASE_DB_PASSWORD environment variable is not set")
	}

	// https://xxx.supabase.co -> xxx.supabase.co
	host := strings.TrimPrefix(supabaseURL, "https://")

	connStr := fmt.Sprintf(
		"host=db.%s port=6543 user=postgres password=%s dbname=postgres sslmode=require",
		host, supabasePassword,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize postgres connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	return &PostgreSQLClient{DB: db}, nil
}

// NewPostgreSQLClientWithRetry retries the initial connection, for cold
// starts where the pooler is still waking up.
func NewPostgreSQLClientWithRetry(attempts int, interval time.Duration) (*PostgreSQLClient, error) {
	var lastErr error
	for i := 0; i < attempts; i++ {
		client, err := NewPostgreSQLClient()
		if err == nil {
			return client, nil
		}
		lastErr = err
		time.Sleep(interval)
	}
	return nil, fmt.Errorf("postgres connection failed after %d attempts: %w", attempts, lastErr)
}

// Close closes the database connection.
func (pc *PostgreSQLClient) Close() error {
	if pc.DB != nil {
		return pc.DB.Close()
	}
	return nil
}

// HealthCheck pings the database.
func (pc *PostgreSQLClient) HealthCheck() error {
	if pc.DB == nil {
		return fmt.Errorf("postgres client is not initialized")
	}
	return pc.DB.Ping()
}
