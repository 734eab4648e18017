package config_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"vetclinic/config"
)

func TestPostgresNode_DSN(t *testing.T) {
	node := config.PostgresNode{
		Host:     "db",
		Port:     "5432",
		Username: "clinic",
		Password: "p@ss/word",
		Name:     "vetclinic",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://clinic:p%40ss%2Fword@db:5432/vetclinic?sslmode=disable", node.DSN("", nil))

	params := url.Values{}
	params.Set("x-migrations-table", "schema_migrations")
	node.Timezone = "UTC"

	assert.Equal(t,
		"postgres://clinic:p%40ss%2Fword@db:5432/test_vetclinic?sslmode=disable&timezone=UTC&x-migrations-table=schema_migrations",
		node.DSN("test_", params),
	)
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SCHEDULER_VISIT_EXPIRATION_SECONDS", "60")

	cfg := config.Get()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 60, cfg.Scheduler.VisitExpirationSeconds)
	assert.Equal(t, "visit-events", cfg.Kafka.Topics.Visit)
}
