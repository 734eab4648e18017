package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"vetclinic/infras/otel"
	"vetclinic/infras/postgres"
	"vetclinic/internal/domains/vet/model"
	"vetclinic/shared"
	gDto "vetclinic/shared/dto"
	gRepo "vetclinic/shared/repository"
)

type Vet interface {
	Get(ctx context.Context, id string) (model.Vet, error)
	GetAll(ctx context.Context) ([]model.Vet, error)
	GetByIDs(ctx context.Context, ids []string) ([]model.Vet, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Vet]
}

func New(db *postgres.Connection, otel otel.Otel) Vet {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Vet](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

var orderByID = gDto.QueryParams{SortBy: model.TableName + "." + model.FieldID, SortDir: gDto.SortDirAsc}

// Get returns the zero Vet when id is unknown.
func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Vet, error) {
	return r.Repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAll(ctx context.Context) ([]model.Vet, error) {
	return r.Repository.GetAll(ctx, orderByID, gDto.FilterGroup{}) //nolint:wrapcheck
}

func (r *repositoryImpl) GetByIDs(ctx context.Context, ids []string) ([]model.Vet, error) {
	filter := gDto.And(gDto.Filter{
		Field:    model.FieldID,
		Value:    ids,
		Operator: gDto.FilterOperatorIn,
		Table:    model.TableName,
	})

	return r.Repository.GetAll(ctx, orderByID, filter) //nolint:wrapcheck
}
