package expiration

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"vetclinic/config"
	"vetclinic/infras/otel"
	"vetclinic/shared/constant"
)

const defaultInterval = time.Hour

// Expirer moves elapsed visits to EXPIRED and reports how many changed.
type Expirer interface {
	ExpireElapsed(ctx context.Context) (int, error)
}

// Job sweeps elapsed visits once at start and then after every interval, measured
// from the end of the previous sweep.
type Job struct {
	expirer  Expirer
	interval time.Duration
	otel     otel.Otel
}

func New(expirer Expirer, cfg *config.Config, otel otel.Otel) *Job {
	interval := time.Duration(cfg.Scheduler.VisitExpirationSeconds) * time.Second
	if interval <= 0 {
		interval = defaultInterval
	}

	return &Job{
		expirer:  expirer,
		interval: interval,
		otel:     otel,
	}
}

// Run blocks until ctx is cancelled.
func (j *Job) Run(ctx context.Context) {
	log.Info().Dur("interval", j.interval).Msg("visit expiration job started")

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("visit expiration job stopped")

			return
		case <-timer.C:
			j.RunOnce(ctx)
			timer.Reset(j.interval)
		}
	}
}

// RunOnce performs a single sweep. Failures are logged and retried on the next run.
func (j *Job) RunOnce(ctx context.Context) {
	ctx, scope := j.otel.NewScope(ctx, constant.OtelJobScopeName, constant.OtelJobScopeName+".ExpireVisits")
	defer scope.End()

	expired, err := j.expirer.ExpireElapsed(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to expire elapsed visits")

		return
	}

	scope.SetAttribute("visits.expired", expired)

	if expired > 0 {
		log.Info().Int("expired", expired).Msg("expired elapsed visits")
	}
}
