package config

import (
    "context"
    "database/sql"
    "fmt"
    "log"
    "time"

    _ "github.com/lib/pq"
)

var DB *sql.DB

const retryDelay = 5 * time.Second

// InitDBWithRetry attempts to connect to PostgreSQL with retries
func InitDBWithRetry(maxRetries int) error {
    var err error
    for i := 0; i < maxRetries; i++ {
        err = InitDB()
        if err == nil {
            return nil
        }
        log.Printf("Failed to connect to PostgreSQL (attempt %d/%d): %v", i+1, maxRetries, err)
        time.Sleep(retryDelay)
    }
    return fmt.Errorf("failed to connect to PostgreSQL after %d attempts: %v", maxRetries, err)
}

func InitDB() error {
    host := GetEnvWithDefault("DB_HOST", "localhost")
    port := GetEnvWithDefault("DB_PORT", "5432")
    user := GetEnvWithDefault("DB_USER", "postgres")
    password := GetEnvWithDefault("DB_PASSWORD", "")
    dbname := GetEnvWithDefault("DB_NAME", "railbook")
    sslmode := GetEnvWithDefault("DB_SSL_MODE", "disable")

    log.Printf("DB Host: %s", host)
    log.Printf("DB Port: %s", port)
    log.Printf("DB Name: %s", dbname)
    log.Printf("DB User: %s", user)
    log.Printf("SSL Mode: %s", sslmode)

    connStr := fmt.Sprintf(
        "host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
        host, port, user, password, dbname, sslmode)

    var err error
    DB, err = sql.Open("postgres", connStr)
    if err != nil {
        return fmt.Errorf("error opening PostgreSQL database: %v", err)
    }

    // Set connection pool settings
    DB.SetMaxOpenConns(25)
    DB.SetMaxIdleConns(5)
    DB.SetConnMaxLifetime(5 * time.Minute)

    // Verify connection with timeout
    ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()

    if err = DB.PingContext(ctx); err != nil {
        return fmt.Errorf("error connecting to PostgreSQL database: %v", err)
    }

    log.Printf("Successfully connected to PostgreSQL database: %s", dbname)

    if err := ensureSchema(ctx); err != nil {
        return fmt.Errorf("error preparing booking schema: %v", err)
    }

    return nil
}

// ensureSchema creates the booking tables when they do not exist yet. The
// routes table is external; it only matters when ROUTE_SOURCE=db and the
// importer that fills it owns its shape.
func ensureSchema(ctx context.Context) error {
    statements := []string{
        `CREATE TABLE IF NOT EXISTS bookings (
            id          BIGSERIAL PRIMARY KEY,
            reference   TEXT NOT NULL UNIQUE,
            status      TEXT NOT NULL,
            class       TEXT NOT NULL,
            total_price NUMERIC(10,2) NOT NULL,
            created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
        `CREATE TABLE IF NOT EXISTS booking_segments (
            id          BIGSERIAL PRIMARY KEY,
            booking_id  BIGINT NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
            leg_order   INT NOT NULL,
            route_id    TEXT NOT NULL,
            from_city   TEXT NOT NULL,
            to_city     TEXT NOT NULL,
            depart_time TEXT NOT NULL,
            arrive_time TEXT NOT NULL,
            train_type  TEXT,
            price       NUMERIC(10,2) NOT NULL
        )`,
        `CREATE TABLE IF NOT EXISTS travellers (
            id            BIGSERIAL PRIMARY KEY,
            booking_id    BIGINT NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
            first_name    TEXT NOT NULL,
            last_name     TEXT NOT NULL,
            age           INT NOT NULL,
            government_id TEXT NOT NULL
        )`,
        `CREATE TABLE IF NOT EXISTS tickets (
            id            BIGSERIAL PRIMARY KEY,
            booking_id    BIGINT NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
            traveller_id  BIGINT NOT NULL REFERENCES travellers(id) ON DELETE CASCADE,
            ticket_number TEXT NOT NULL UNIQUE
        )`,
        `CREATE INDEX IF NOT EXISTS idx_booking_segments_booking ON booking_segments (booking_id)`,
        `CREATE INDEX IF NOT EXISTS idx_travellers_booking ON travellers (booking_id)`,
    }

    for _, stmt := range statements {
        if _, err := DB.ExecContext(ctx, stmt); err != nil {
            return err
        }
    }

    log.Printf("Verified booking schema")
    return nil
}

func CheckPostgresHealth() error {
    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()

    if err := DB.PingContext(ctx); err != nil {
        return fmt.Errorf("PostgreSQL health check failed: %v", err)
    }
    return nil
}

// Graceful shutdown
func CloseDB() {
    if DB != nil {
        if err := DB.Close(); err != nil {
            log.Printf("Error closing PostgreSQL connection: %v", err)
        }
    }
}

// WithTransaction runs fn inside a serializable transaction, rolling back
// on error or panic.
func WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
    tx, err := DB.BeginTx(ctx, &sql.TxOptions{
        Isolation: sql.LevelSerializable,
    })
    if err != nil {
        return err
    }

    defer func() {
        if p := recover(); p != nil {
            tx.Rollback()
            panic(p)
        }
    }()

    if err := fn(tx); err != nil {
        tx.Rollback()
        return err
    }

    return tx.Commit()
}
