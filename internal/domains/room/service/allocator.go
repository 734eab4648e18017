package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"vetclinic/infras/otel"
	roomRepo "vetclinic/internal/domains/room/repository"
	visitRepo "vetclinic/internal/domains/visit/repository"
	"vetclinic/shared/constant"
	"vetclinic/shared/failure"
	"vetclinic/shared/timerange"
)

var ErrNoFreeRoom = failure.IncorrectData("There is no free treatment room.")

// Allocator picks a treatment room that no visit occupies during a time range.
type Allocator interface {
	Allocate(ctx context.Context, r timerange.Range) (string, error)
}

type allocatorImpl struct {
	rooms  roomRepo.Room
	visits visitRepo.Visit
	otel   otel.Otel
}

func NewAllocator(rooms roomRepo.Room, visits visitRepo.Visit, otel otel.Otel) Allocator {
	return &allocatorImpl{
		rooms:  rooms,
		visits: visits,
		otel:   otel,
	}
}

// Allocate returns the first room, in pool order, that is not held by any visit
// overlapping r. Visits of every status hold their room.
func (a *allocatorImpl) Allocate(ctx context.Context, r timerange.Range) (roomID string, err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AllocateRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := a.rooms.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get treatment rooms")

		return constant.Empty, fmt.Errorf("failed to get treatment rooms: %w", err)
	}

	overlapping, err := a.visits.FindOverlappingInRange(ctx, r)
	if err != nil {
		log.Error().Err(err).Msg("failed to get overlapping visits")

		return constant.Empty, fmt.Errorf("failed to get overlapping visits: %w", err)
	}

	taken := make([]string, 0, len(overlapping))
	for _, v := range overlapping {
		taken = append(taken, v.TreatmentRoomID)
	}

	for _, room := range rooms {
		if !slices.Contains(taken, room.ID) {
			return room.ID, nil
		}
	}

	return constant.Empty, ErrNoFreeRoom
}
