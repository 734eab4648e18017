package di

import (
	"vetclinic/infras/kafka"
	"vetclinic/infras/otel"
	"vetclinic/infras/postgres"
	"vetclinic/internal/jobs/expiration"
	"vetclinic/transport/http"
)

// App holds the long-running parts of the process and the resources they must release.
type App struct {
	HTTP       *http.HTTP
	Expiration *expiration.Job
	DB         *postgres.Connection
	Kafka      kafka.Client
	Otel       otel.Otel
}
