package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"

	"vetclinic/config"
)

const migrationsSource = "file://migrations/postgres"

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionDrop   = "drop"
	ActionStepUp = "step-up"
)

type action struct {
	run     func(mig *migrate.Migrate) error
	done    string
	failure string
}

var actions = map[string]action{
	ActionUp: {
		run:     (*migrate.Migrate).Up,
		done:    "Database migrations completed successfully",
		failure: "error running migrations",
	},
	ActionStepUp: {
		run:     func(mig *migrate.Migrate) error { return mig.Steps(1) },
		done:    "Database migrations completed successfully",
		failure: "error running migrations",
	},
	ActionDown: {
		run:     func(mig *migrate.Migrate) error { return mig.Steps(-1) },
		done:    "Database migrations rolled back successfully",
		failure: "error rolling back migrations",
	},
	ActionDrop: {
		run:     (*migrate.Migrate).Down,
		done:    "Database migrations rolled back successfully",
		failure: "error rolling back migrations",
	},
}

// connectionString targets the write node; migrations never run against a replica.
func connectionString(config *config.Config) string {
	params := url.Values{}
	if config.DB.Postgres.MigrationTable != "" {
		params.Set("x-migrations-table", config.DB.Postgres.MigrationTable)
	}

	return config.DB.Postgres.Write.DSN(config.DB.Postgres.Prefix, params)
}

func Runner(config *config.Config, name string) error {
	act, ok := actions[name]
	if !ok {
		return fmt.Errorf("unknown migration action %q", name)
	}

	mig, err := migrate.New(migrationsSource, connectionString(config))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	if err := act.run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: %w", act.failure, err)
	}

	log.Info().Str("action", name).Msg(act.done)

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, ActionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, ActionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, ActionDrop)
}
