package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"vetclinic/config"
	"vetclinic/infras/kafka"
	"vetclinic/infras/otel"
	"vetclinic/infras/postgres"
	clientService "vetclinic/internal/domains/client/service"
	petRepo "vetclinic/internal/domains/pet/repository"
	roomService "vetclinic/internal/domains/room/service"
	vetRepo "vetclinic/internal/domains/vet/repository"
	"vetclinic/internal/domains/visit/model"
	"vetclinic/internal/domains/visit/model/dto"
	"vetclinic/internal/domains/visit/repository"
	"vetclinic/shared"
	"vetclinic/shared/cache"
	"vetclinic/shared/clock"
	"vetclinic/shared/constant"
	gDto "vetclinic/shared/dto"
	"vetclinic/shared/failure"
	gModel "vetclinic/shared/model"
	"vetclinic/shared/timerange"
)

const (
	cacheGetAvailableVisits       = "visit:available"
	cacheAvailabilityGeneration   = "visit:availability-generation"
	initialAvailabilityGeneration = "0"

	lockKeyVet   = "vet"
	lockKeyVisit = "visit"
	lockKeyRooms = "treatment-rooms"
)

const (
	EventVisitCreated   = "visit.created"
	EventVisitFinalized = "visit.finalized"
	EventVisitDeleted   = "visit.deleted"
	EventVisitExpired   = "visit.expired"
)

var (
	ErrWrongVet            = failure.IncorrectData("Wrong vet id.")
	ErrWrongPet            = failure.IncorrectData("Wrong pet id.")
	ErrNoFreeRoom          = roomService.ErrNoFreeRoom
	ErrOutsideWorkingHours = failure.IncorrectData("This vet doesn't work at this hour.")
	ErrVisitNotFound       = failure.ResourceNotFound("Wrong id.")
)

type Visit interface {
	Create(ctx context.Context, req dto.CreateVisitRequest) (dto.VisitResponse, error)
	Finalize(ctx context.Context, id string, req dto.FinalizeVisitRequest) (dto.VisitResponse, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (dto.VisitResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetVisitsResponse, error)
	GetAvailable(ctx context.Context, req dto.GetAvailableRequest) (dto.GetAvailableResponse, error)
	ExpireElapsed(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo      repository.Visit
	vetRepo   vetRepo.Vet
	petRepo   petRepo.Pet
	ownership clientService.Ownership
	allocator roomService.Allocator
	validator ConflictValidator
	tx        postgres.Transactor
	clock     clock.Clock
	cfg       *config.Config
	cache     cache.RedisCache
	kafka     kafka.Client
	otel      otel.Otel
}

func New(
	repo repository.Visit,
	vetRepo vetRepo.Vet,
	petRepo petRepo.Pet,
	ownership clientService.Ownership,
	allocator roomService.Allocator,
	validator ConflictValidator,
	tx postgres.Transactor,
	clk clock.Clock,
	cfg *config.Config,
	cache cache.RedisCache,
	kafka kafka.Client,
	otel otel.Otel,
) Visit {
	return &serviceImpl{
		repo:      repo,
		vetRepo:   vetRepo,
		petRepo:   petRepo,
		ownership: ownership,
		allocator: allocator,
		validator: validator,
		tx:        tx,
		clock:     clk,
		cfg:       cfg,
		cache:     cache,
		kafka:     kafka,
		otel:      otel,
	}
}

// Create books a visit. The vet and the room pool stay locked from validation until
// the insert commits, so concurrent bookings cannot both pass the overlap checks.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateVisitRequest) (res dto.VisitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	start, err := req.Start()
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	requester := shared.RequesterFromContext(ctx)
	now := s.clock.Now()

	var visit model.Visit

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		visit, err = s.book(ctx, requester, req, start, now)

		return err
	}, shared.BuildCacheKey(lockKeyVet, req.VetID), lockKeyRooms)
	if err != nil {
		if failure.IsExclusionViolation(err) {
			return res, exclusionFailure(err)
		}

		if failure.GetCode(err) < 500 {
			log.Info().Err(err).Str("vet_id", req.VetID).Str("pet_id", req.PetID).Msg("visit rejected")
		}

		return res, err
	}

	s.afterCommit(ctx, EventVisitCreated, requester.Username, visit)

	res.FromModel(visit)

	return res, nil
}

func (s *serviceImpl) book(
	ctx context.Context,
	requester gModel.Requester,
	req dto.CreateVisitRequest,
	start, now time.Time,
) (model.Visit, error) {
	duration := req.Duration()

	vet, err := s.vetRepo.Get(ctx, req.VetID)
	if err != nil {
		log.Error().Err(err).Str("vet_id", req.VetID).Msg("failed to get vet")

		return model.Visit{}, fmt.Errorf("failed to get vet: %w", err)
	}

	if vet.ID == constant.Empty {
		return model.Visit{}, ErrWrongVet
	}

	if err = s.validator.Validate(ctx, vet.ID, start, duration, now); err != nil {
		return model.Visit{}, err //nolint:wrapcheck
	}

	pet, err := s.petRepo.Get(ctx, req.PetID)
	if err != nil {
		log.Error().Err(err).Str("pet_id", req.PetID).Msg("failed to get pet")

		return model.Visit{}, fmt.Errorf("failed to get pet: %w", err)
	}

	if pet.ID == constant.Empty {
		return model.Visit{}, ErrWrongPet
	}

	authorized, err := s.ownership.IsRequesterAuthorizedForClient(ctx, requester, pet.ClientID)
	if err != nil {
		return model.Visit{}, fmt.Errorf("failed to authorize requester: %w", err)
	}

	if !authorized {
		return model.Visit{}, ErrVisitNotFound
	}

	roomID, err := s.allocator.Allocate(ctx, timerange.New(start, duration))
	if err != nil {
		return model.Visit{}, err //nolint:wrapcheck
	}

	if !vet.WorksAt(start) {
		return model.Visit{}, ErrOutsideWorkingHours
	}

	visit := model.Visit{
		ID:              uuid.NewString(),
		VetID:           vet.ID,
		PetID:           pet.ID,
		TreatmentRoomID: roomID,
		Price:           req.Price,
		VisitType:       req.VisitType,
		OperationType:   req.OperationType,
		Status:          model.StatusScheduled,
		Metadata:        gModel.NewMetadata(now, requester.Username),
	}
	visit.SetSchedule(start, duration)

	if err = s.repo.Insert(ctx, visit); err != nil {
		log.Error().Err(err).Msg("failed to create visit")

		return model.Visit{}, fmt.Errorf("failed to create visit: %w", err)
	}

	return visit, nil
}

// exclusionFailure maps a storage overlap violation onto the rejection the checks
// would have produced.
func exclusionFailure(err error) error {
	if failure.ConstraintName(err) == model.ConstraintRoomNoOverlap {
		return ErrNoFreeRoom
	}

	return ErrSlotTaken
}

// Finalize replaces the description and moves the visit to the requested status when
// it is one of FINISHED, DID_NOT_APPEAR or CANCELLED. Any other target keeps the status.
// A CANCELLED visit only leaves CANCELLED while its vet is still free for its time.
func (s *serviceImpl) Finalize(ctx context.Context, id string, req dto.FinalizeVisitRequest) (res dto.VisitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Finalize")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	requester := shared.RequesterFromContext(ctx)

	vetID, err := s.vetOf(ctx, id)
	if err != nil {
		return res, err
	}

	var visit model.Visit

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		visit, err = s.repo.Get(ctx, id)
		if err != nil {
			log.Error().Err(err).Str("visit_id", id).Msg("failed to get visit")

			return fmt.Errorf("failed to get visit: %w", err)
		}

		if visit.ID == constant.Empty {
			return ErrVisitNotFound
		}

		if target := model.Status(req.Status); target.IsFinalizeTarget() {
			if visit.Status == model.StatusCancelled && target != model.StatusCancelled {
				if err = s.ensureVetFree(ctx, visit); err != nil {
					return err
				}
			}

			visit.Status = target
		}

		visit.Description = req.Description
		visit.ModifiedAt = s.clock.Now()
		visit.ModifiedBy = requester.Username

		if err = s.repo.UpdateStatusAndDescription(ctx, visit); err != nil {
			log.Error().Err(err).Str("visit_id", id).Msg("failed to finalize visit")

			return fmt.Errorf("failed to finalize visit: %w", err)
		}

		return nil
	}, shared.BuildCacheKey(lockKeyVisit, id), shared.BuildCacheKey(lockKeyVet, vetID))
	if err != nil {
		if failure.IsExclusionViolation(err) {
			return res, exclusionFailure(err)
		}

		return res, err //nolint:wrapcheck
	}

	s.afterCommit(ctx, EventVisitFinalized, requester.Username, visit)

	res.FromModel(visit)

	return res, nil
}

// vetOf reads the vet of a visit through the primary. A visit never changes vet, so
// the result can pick the lock of a later transaction.
func (s *serviceImpl) vetOf(ctx context.Context, id string) (vetID string, err error) {
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		visit, err := s.repo.Get(ctx, id)
		if err != nil {
			log.Error().Err(err).Str("visit_id", id).Msg("failed to get visit")

			return fmt.Errorf("failed to get visit: %w", err)
		}

		if visit.ID == constant.Empty {
			return ErrVisitNotFound
		}

		vetID = visit.VetID

		return nil
	})

	return vetID, err //nolint:wrapcheck
}

// ensureVetFree rejects bringing visit back when another live visit of its vet
// overlaps it.
func (s *serviceImpl) ensureVetFree(ctx context.Context, visit model.Visit) error {
	overlapping, err := s.repo.FindOverlappingForVet(ctx, visit.VetID, visit.Range())
	if err != nil {
		log.Error().Err(err).Str("vet_id", visit.VetID).Msg("failed to get overlapping visits")

		return fmt.Errorf("failed to get overlapping visits: %w", err)
	}

	for _, other := range overlapping {
		if other.ID != visit.ID {
			return ErrSlotTaken
		}
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var visit model.Visit

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		visit, err = s.repo.Get(ctx, id)
		if err != nil {
			log.Error().Err(err).Str("visit_id", id).Msg("failed to get visit")

			return fmt.Errorf("failed to get visit: %w", err)
		}

		if visit.ID == constant.Empty {
			return ErrVisitNotFound
		}

		if _, err = s.repo.Delete(ctx, id); err != nil {
			log.Error().Err(err).Str("visit_id", id).Msg("failed to delete visit")

			return fmt.Errorf("failed to delete visit: %w", err)
		}

		return nil
	}, shared.BuildCacheKey(lockKeyVisit, id))
	if err != nil {
		return err //nolint:wrapcheck
	}

	s.afterCommit(ctx, EventVisitDeleted, shared.RequesterFromContext(ctx).Username, visit)

	return nil
}

// Get hides visits the requester may not see behind the same error as unknown ids.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.VisitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	visit, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("visit_id", id).Msg("failed to get visit")

		return res, fmt.Errorf("failed to get visit: %w", err)
	}

	if visit.ID == constant.Empty {
		return res, ErrVisitNotFound
	}

	pet, err := s.petRepo.Get(ctx, visit.PetID)
	if err != nil {
		log.Error().Err(err).Str("pet_id", visit.PetID).Msg("failed to get pet")

		return res, fmt.Errorf("failed to get pet: %w", err)
	}

	authorized, err := s.ownership.IsRequesterAuthorizedForClient(ctx, shared.RequesterFromContext(ctx), pet.ClientID)
	if err != nil {
		return res, fmt.Errorf("failed to authorize requester: %w", err)
	}

	if pet.ID == constant.Empty || !authorized {
		return res, ErrVisitNotFound
	}

	res.FromModel(visit)

	return res, nil
}

// GetAll lists the visits the requester may see. Clients only see visits of their own pets.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetVisitsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.RestrictSort(model.FieldStartDateTime,
		model.FieldStartDateTime, model.FieldEndDateTime, model.FieldStatus, constant.FieldCreatedAt)

	owner := constant.Empty
	if requester := shared.RequesterFromContext(ctx); requester.IsClient() {
		owner = requester.Username
	}

	total, err := s.repo.Count(ctx, owner)
	if err != nil {
		log.Error().Err(err).Msg("failed to count visits")

		return res, fmt.Errorf("failed to count visits: %w", err)
	}

	visits, err := s.repo.GetAll(ctx, params, owner)
	if err != nil {
		log.Error().Err(err).Msg("failed to get visits")

		return res, fmt.Errorf("failed to get visits: %w", err)
	}

	res.FromModels(visits, total, params.Limit)

	return res, nil
}

// afterCommit retires cached availability and announces the change. Neither step can
// affect the outcome of the committed write.
func (s *serviceImpl) afterCommit(ctx context.Context, eventType, actor string, visits ...model.Visit) {
	at := s.clock.Now()

	s.rotateAvailability(context.WithoutCancel(ctx))

	go func() {
		c, scope := s.otel.NewScope(context.WithoutCancel(ctx), constant.OtelEventScopeName, constant.OtelEventScopeName+"."+eventType)
		defer scope.End()

		scope.SetAttribute("event.count", len(visits))

		messages := make([]kafka.Message, 0, len(visits))
		for _, visit := range visits {
			messages = append(messages, kafka.Message{
				Key:   visit.ID,
				Value: dto.NewVisitEvent(eventType, visit, at, actor),
			})
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.Visit, messages...); err != nil {
			log.Warn().Err(err).Str("event", eventType).Msg("failed to publish visit events")
			scope.TraceError(err)
		}
	}()
}
