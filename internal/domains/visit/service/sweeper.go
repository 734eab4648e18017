package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"vetclinic/internal/domains/visit/model"
	"vetclinic/shared/constant"
)

// ExpireElapsed moves every SCHEDULED visit whose end has passed to EXPIRED and
// returns how many changed. Running it again with nothing newly elapsed changes nothing.
func (s *serviceImpl) ExpireElapsed(ctx context.Context) (expired int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExpireElapsed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := s.clock.Now()

	var (
		visits  []model.Visit
		changed int64
	)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		elapsed, err := s.repo.FindExpiredScheduled(ctx, now)
		if err != nil {
			log.Error().Err(err).Msg("failed to get elapsed visits")

			return fmt.Errorf("failed to get elapsed visits: %w", err)
		}

		if len(elapsed) == 0 {
			return nil
		}

		ids := make([]string, len(elapsed))
		for i, visit := range elapsed {
			ids[i] = visit.ID
		}

		if changed, err = s.repo.MarkExpired(ctx, ids, now, constant.SystemUser); err != nil {
			log.Error().Err(err).Msg("failed to expire visits")

			return fmt.Errorf("failed to expire visits: %w", err)
		}

		for i := range elapsed {
			elapsed[i].Status = model.StatusExpired
			elapsed[i].ModifiedAt = now
			elapsed[i].ModifiedBy = constant.SystemUser
		}

		visits = elapsed

		return nil
	})
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	if changed > 0 {
		s.afterCommit(ctx, EventVisitExpired, constant.SystemUser, visits...)
	}

	return int(changed), nil
}
