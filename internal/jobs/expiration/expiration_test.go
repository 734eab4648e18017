package expiration_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vetclinic/config"
	otelMocks "vetclinic/infras/otel/mocks"
	"vetclinic/internal/jobs/expiration"
)

type countingExpirer struct {
	calls atomic.Int32
	err   error
}

func (c *countingExpirer) ExpireElapsed(context.Context) (int, error) {
	c.calls.Add(1)

	return 1, c.err
}

func TestJob_RunsImmediatelyThenRepeats(t *testing.T) {
	cfg := &config.Config{}
	cfg.Scheduler.VisitExpirationSeconds = 1

	expirer := &countingExpirer{}
	job := expiration.New(expirer, cfg, otelMocks.NewOtel())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		job.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return expirer.calls.Load() >= 1 }, 500*time.Millisecond, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return expirer.calls.Load() >= 2 }, 3*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop after cancellation")
	}
}

func TestJob_RunOnceSurvivesFailures(t *testing.T) {
	expirer := &countingExpirer{err: errors.New("database error")}
	job := expiration.New(expirer, &config.Config{}, otelMocks.NewOtel())

	job.RunOnce(context.Background())
	job.RunOnce(context.Background())

	assert.Equal(t, int32(2), expirer.calls.Load())
}
