package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"vetclinic/infras/otel"
	"vetclinic/internal/domains/visit/repository"
	"vetclinic/shared/constant"
	"vetclinic/shared/failure"
	"vetclinic/shared/timerange"
)

// MinimalLeadTime is how far ahead of now a visit must start.
const MinimalLeadTime = 60 * time.Minute

var (
	ErrPastStart        = failure.IncorrectData("Visit startDateTime need to be in future.")
	ErrLeadTimeTooShort = failure.IncorrectData("The time to your visit is too short.")
	ErrSlotTaken        = failure.IncorrectData("This date is not available.")
)

// ConflictValidator checks a proposed visit window for a vet against the clock and
// the vet's existing bookings. It never writes.
type ConflictValidator interface {
	Validate(ctx context.Context, vetID string, start time.Time, duration time.Duration, now time.Time) error
}

type conflictValidatorImpl struct {
	visits repository.Visit
	otel   otel.Otel
}

func NewConflictValidator(visits repository.Visit, otel otel.Otel) ConflictValidator {
	return &conflictValidatorImpl{
		visits: visits,
		otel:   otel,
	}
}

func (v *conflictValidatorImpl) Validate(ctx context.Context, vetID string, start time.Time, duration time.Duration, now time.Time) (err error) {
	ctx, scope := v.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ValidateVisit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !start.After(now) {
		return ErrPastStart
	}

	if start.Sub(now) < MinimalLeadTime {
		return ErrLeadTimeTooShort
	}

	overlapping, err := v.visits.FindOverlappingForVet(ctx, vetID, timerange.New(start, duration))
	if err != nil {
		log.Error().Err(err).Str("vet_id", vetID).Msg("failed to get overlapping visits")

		return fmt.Errorf("failed to get overlapping visits: %w", err)
	}

	if len(overlapping) > 0 {
		return ErrSlotTaken
	}

	return nil
}
