package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	vetModel "vetclinic/internal/domains/vet/model"
	"vetclinic/internal/domains/visit/model"
	"vetclinic/internal/domains/visit/model/dto"
	"vetclinic/shared"
	"vetclinic/shared/cache"
	"vetclinic/shared/constant"
	"vetclinic/shared/failure"
	"vetclinic/shared/timerange"
)

const (
	// SlotSize is the step availability is reported in.
	SlotSize = 15 * time.Minute

	maxAvailabilityRange = 31 * 24 * time.Hour
)

var (
	ErrRangeTooLong  = failure.IncorrectData("The requested range is too long.")
	ErrRangeReversed = failure.IncorrectData("end_date_time must not be before start_date_time.")
)

// GetAvailable reports, for every slot of the range with at least one free vet, which
// vets are free. An empty vet id list means every vet.
func (s *serviceImpl) GetAvailable(ctx context.Context, req dto.GetAvailableRequest) (res dto.GetAvailableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	start, end, err := req.Range()
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	if end.Before(start) {
		return res, ErrRangeReversed
	}

	if end.Sub(start) > maxAvailabilityRange {
		return res, ErrRangeTooLong
	}

	generation, cached := s.availabilityGeneration(ctx)
	cacheKey := req.CacheKey(shared.BuildCacheKey(cacheGetAvailableVisits, generation))

	if cached {
		err = s.cache.Get(ctx, cacheKey, &res)
		if err == nil {
			log.Info().Str("cacheKey", cacheKey).Msg("cache hit for available visits")

			return res, nil
		}

		if !errors.Is(err, cache.Nil) {
			log.Warn().Err(err).Str("cacheKey", cacheKey).Msg("failed to read available visits from cache")
		}
	}

	vets, err := s.candidateVets(ctx, req.VetIDs)
	if err != nil {
		return res, err
	}

	visits := []model.Visit{}

	if len(vets) > 0 {
		ids := make([]string, len(vets))
		for i, vet := range vets {
			ids[i] = vet.ID
		}

		visits, err = s.repo.FindFullyWithinRange(ctx, timerange.Range{Start: start, End: end}, ids)
		if err != nil {
			log.Error().Err(err).Msg("failed to get visits within range")

			return res, fmt.Errorf("failed to get visits within range: %w", err)
		}
	}

	res.FromSlots(scanSlots(start, end, vets, visits))

	if cached {
		if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save available visits to cache")
		}
	}

	return res, nil
}

// availabilityGeneration returns the generation availability entries are currently
// stored under. Entries are only used when the generation could be read.
func (s *serviceImpl) availabilityGeneration(ctx context.Context) (string, bool) {
	var generation string

	err := s.cache.Get(ctx, cacheAvailabilityGeneration, &generation)
	if err == nil {
		return generation, true
	}

	if errors.Is(err, cache.Nil) {
		return initialAvailabilityGeneration, true
	}

	log.Warn().Err(err).Msg("failed to read availability cache generation")

	return constant.Empty, false
}

// rotateAvailability starts a new generation so nothing computed before a write is
// served after it. It runs after commit and before the write returns. Entries of the
// previous generation are dropped in the background.
func (s *serviceImpl) rotateAvailability(ctx context.Context) {
	previous, known := s.availabilityGeneration(ctx)

	err := s.cache.Save(ctx, cacheAvailabilityGeneration, uuid.NewString(), 0)
	if err != nil {
		log.Error().Err(err).Msg("failed to rotate availability cache generation")
		shared.InvalidateCaches(ctx, s.cache, cacheGetAvailableVisits+":")

		return
	}

	if known {
		go shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheGetAvailableVisits, previous)+":")
	}
}

func (s *serviceImpl) candidateVets(ctx context.Context, ids []string) ([]vetModel.Vet, error) {
	var (
		vets []vetModel.Vet
		err  error
	)

	if len(ids) == 0 {
		vets, err = s.vetRepo.GetAll(ctx)
	} else {
		vets, err = s.vetRepo.GetByIDs(ctx, ids)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to get vets")

		return nil, fmt.Errorf("failed to get vets: %w", err)
	}

	return vets, nil
}

// scanSlots walks [start, end) in SlotSize steps. A trailing slot that runs past end is
// still reported. A vet is busy in a slot only when one visit covers the whole slot,
// and free when the slot lies inside the working window and the vet is not busy.
// Slots without a free vet are left out.
func scanSlots(start, end time.Time, vets []vetModel.Vet, visits []model.Visit) []dto.AvailableSlot {
	booked := make(map[string][]timerange.Range, len(vets))
	for _, visit := range visits {
		booked[visit.VetID] = append(booked[visit.VetID], visit.Range())
	}

	slots := []dto.AvailableSlot{}

	for slotStart := start; slotStart.Before(end); slotStart = slotStart.Add(SlotSize) {
		slot := timerange.New(slotStart, SlotSize)

		free := []string{}

		for _, vet := range vets {
			if vet.WorksThrough(slot.Start, slot.End) && !coveredBy(slot, booked[vet.ID]) {
				free = append(free, vet.ID)
			}
		}

		if len(free) > 0 {
			slots = append(slots, dto.AvailableSlot{StartDateTime: slotStart, VetIDs: free})
		}
	}

	return slots
}

func coveredBy(slot timerange.Range, ranges []timerange.Range) bool {
	for _, r := range ranges {
		if slot.Within(r) {
			return true
		}
	}

	return false
}
