package postgres

//nolint:revive
import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"vetclinic/config"
)

const (
	maxIdleConnections = 10
	maxOpenConnections = 10
	connMaxLifetime    = 30 * time.Minute
)

// Connection holds the read replica and the primary. Booking decisions always
// read from Write inside a transaction, Read serves listings only.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func (c *Connection) Close() error {
	if c.Read != nil && c.Read != c.Write {
		if err := c.Read.Close(); err != nil {
			return fmt.Errorf("failed to close read connection: %w", err)
		}
	}

	if c.Write != nil {
		if err := c.Write.Close(); err != nil {
			return fmt.Errorf("failed to close write connection: %w", err)
		}
	}

	return nil
}

// New connects both nodes. A read node without a host reuses the write pool.
func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres
	retry := retryPolicy{attempts: pg.MaxRetry, wait: time.Duration(pg.RetryWaitTime) * time.Second}

	write := connect("write", pg.Write, pg.Prefix, retry)
	if pg.Read.Host == "" {
		return &Connection{Read: write, Write: write}
	}

	return &Connection{
		Read:  connect("read", pg.Read, pg.Prefix, retry),
		Write: write,
	}
}

type retryPolicy struct {
	attempts int
	wait     time.Duration
}

// connect dials node until it answers or the policy runs out, which is fatal.
func connect(name string, node config.PostgresNode, prefix string, retry retryPolicy) *sqlx.DB {
	logCtx := log.With().
		Str("name", name).
		Str("host", node.Host).
		Str("port", node.Port).
		Str("db", prefix+node.Name).
		Logger()

	attempts := max(retry.attempts, 1)
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sqlx.Connect("postgres", node.DSN(prefix, nil))
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			db.SetConnMaxLifetime(connMaxLifetime)

			logCtx.Info().Msg("Connected to database")

			return db
		}

		logCtx.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database")

		if attempt < attempts {
			time.Sleep(retry.wait)
		}
	}

	logCtx.Fatal().Int("attempts", attempts).Msg("Giving up connecting to database")

	return nil
}
