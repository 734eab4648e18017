package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"vetclinic/infras/otel"
	"vetclinic/infras/postgres"
	clientModel "vetclinic/internal/domains/client/model"
	petModel "vetclinic/internal/domains/pet/model"
	"vetclinic/internal/domains/visit/model"
	"vetclinic/shared"
	"vetclinic/shared/constant"
	gDto "vetclinic/shared/dto"
	gRepo "vetclinic/shared/repository"
	"vetclinic/shared/timerange"
)

const (
	argRangeStart  = "range_start"
	argRangeEnd    = "range_end"
	argStatus      = "current_status"
	argOwner       = "owner"
	argExpiredFrom = "expired_before"
)

// Visit is the booking store. Every range query uses closed intervals: a visit touching
// the range boundary overlaps it.
type Visit interface {
	Get(ctx context.Context, id string) (model.Visit, error)
	GetAll(ctx context.Context, params gDto.QueryParams, owner string) ([]model.Visit, error)
	Count(ctx context.Context, owner string) (int, error)
	FindOverlappingForVet(ctx context.Context, vetID string, r timerange.Range) ([]model.Visit, error)
	FindOverlappingInRange(ctx context.Context, r timerange.Range) ([]model.Visit, error)
	FindFullyWithinRange(ctx context.Context, r timerange.Range, vetIDs []string) ([]model.Visit, error)
	FindExpiredScheduled(ctx context.Context, now time.Time) ([]model.Visit, error)
	Insert(ctx context.Context, visit model.Visit) error
	UpdateStatusAndDescription(ctx context.Context, visit model.Visit) error
	MarkExpired(ctx context.Context, ids []string, at time.Time, username string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Visit]
}

func New(db *postgres.Connection, otel otel.Otel) Visit {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Visit](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

var orderByStart = gDto.QueryParams{SortBy: model.TableName + "." + model.FieldStartDateTime, SortDir: gDto.SortDirAsc}

func column(field string) gDto.Filter {
	return gDto.Filter{Field: field, Table: model.TableName}
}

func startsNoLaterThan(t time.Time) gDto.Filter {
	f := column(model.FieldStartDateTime)
	f.ArgName, f.Value, f.Operator = argRangeEnd, t, gDto.FilterOperatorLessEq

	return f
}

func endsNoEarlierThan(t time.Time) gDto.Filter {
	f := column(model.FieldEndDateTime)
	f.ArgName, f.Value, f.Operator = argRangeStart, t, gDto.FilterOperatorGreaterEq

	return f
}

func statusIs(status model.Status, operator string) gDto.Filter {
	f := column(model.FieldStatus)
	f.ArgName, f.Value, f.Operator = argStatus, string(status), operator

	return f
}

// ownedBy restricts visits to pets whose client account matches owner, ignoring case.
// An empty owner matches everything.
func ownedBy(owner string) gDto.FilterGroup {
	if owner == constant.Empty {
		return gDto.FilterGroup{}
	}

	query := "visits.pet_id IN (SELECT " + petModel.TableName + "." + petModel.FieldID +
		" FROM " + petModel.TableName +
		" JOIN " + clientModel.TableName + " ON " + clientModel.TableName + "." + clientModel.FieldID + " = " + petModel.TableName + "." + petModel.FieldClientID +
		" WHERE LOWER(" + clientModel.TableName + "." + clientModel.FieldUserID + ") = LOWER(:" + argOwner + "))"

	return gDto.And(gDto.Filter{
		Operator: gDto.FilterPlainQuery,
		Value:    query,
		Args:     map[string]any{argOwner: owner},
	})
}

// Get returns the zero Visit when id is unknown.
func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Visit, error) {
	return r.Repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, owner string) ([]model.Visit, error) {
	return r.Repository.GetAll(ctx, params, ownedBy(owner)) //nolint:wrapcheck
}

func (r *repositoryImpl) Count(ctx context.Context, owner string) (int, error) {
	return r.Repository.Count(ctx, ownedBy(owner)) //nolint:wrapcheck
}

func (r *repositoryImpl) FindOverlappingForVet(ctx context.Context, vetID string, rng timerange.Range) ([]model.Visit, error) {
	vet := column(model.FieldVetID)
	vet.Value, vet.Operator = vetID, gDto.FilterOperatorEq

	filter := gDto.And(
		vet,
		statusIs(model.StatusCancelled, gDto.FilterOperatorNotEq),
		startsNoLaterThan(rng.End),
		endsNoEarlierThan(rng.Start),
	)

	return r.Repository.GetAll(ctx, orderByStart, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) FindOverlappingInRange(ctx context.Context, rng timerange.Range) ([]model.Visit, error) {
	filter := gDto.And(
		startsNoLaterThan(rng.End),
		endsNoEarlierThan(rng.Start),
	)

	return r.Repository.GetAll(ctx, orderByStart, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) FindFullyWithinRange(ctx context.Context, rng timerange.Range, vetIDs []string) ([]model.Visit, error) {
	start := column(model.FieldStartDateTime)
	start.ArgName, start.Value, start.Operator = argRangeStart, rng.Start, gDto.FilterOperatorGreaterEq

	end := column(model.FieldEndDateTime)
	end.ArgName, end.Value, end.Operator = argRangeEnd, rng.End, gDto.FilterOperatorLessEq

	vets := column(model.FieldVetID)
	vets.Value, vets.Operator = vetIDs, gDto.FilterOperatorIn

	filter := gDto.And(
		start,
		end,
		vets,
		statusIs(model.StatusCancelled, gDto.FilterOperatorNotEq),
	)

	return r.Repository.GetAll(ctx, orderByStart, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) FindExpiredScheduled(ctx context.Context, now time.Time) ([]model.Visit, error) {
	end := column(model.FieldEndDateTime)
	end.ArgName, end.Value, end.Operator = argExpiredFrom, now, gDto.FilterOperatorLess

	filter := gDto.And(
		statusIs(model.StatusScheduled, gDto.FilterOperatorEq),
		end,
	)

	return r.Repository.GetAll(ctx, orderByStart, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Insert(ctx context.Context, visit model.Visit) error {
	return r.Repository.Insert(ctx, visit) //nolint:wrapcheck
}

func (r *repositoryImpl) UpdateStatusAndDescription(ctx context.Context, visit model.Visit) error {
	fields := map[string]any{
		model.FieldStatus:        string(visit.Status),
		model.FieldDescription:   visit.Description,
		constant.FieldModifiedAt: visit.ModifiedAt,
		constant.FieldModifiedBy: visit.ModifiedBy,
	}

	_, err := r.Repository.Update(ctx, fields, shared.FilterByID(visit.ID, model.FieldID, model.TableName))

	return err //nolint:wrapcheck
}

// MarkExpired moves the given visits to EXPIRED, skipping any that left SCHEDULED meanwhile.
func (r *repositoryImpl) MarkExpired(ctx context.Context, ids []string, at time.Time, username string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	fields := map[string]any{
		model.FieldStatus:        string(model.StatusExpired),
		constant.FieldModifiedAt: at,
		constant.FieldModifiedBy: username,
	}

	byID := column(model.FieldID)
	byID.Value, byID.Operator = ids, gDto.FilterOperatorIn

	filter := gDto.And(byID, statusIs(model.StatusScheduled, gDto.FilterOperatorEq))

	return r.Repository.Update(ctx, fields, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (int64, error) {
	return r.Repository.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}
