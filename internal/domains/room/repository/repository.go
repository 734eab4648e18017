package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"vetclinic/infras/otel"
	"vetclinic/infras/postgres"
	"vetclinic/internal/domains/room/model"
	gDto "vetclinic/shared/dto"
	gRepo "vetclinic/shared/repository"
)

type Room interface {
	GetAll(ctx context.Context) ([]model.TreatmentRoom, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.TreatmentRoom]
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.TreatmentRoom](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) ([]model.TreatmentRoom, error) {
	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldID, SortDir: gDto.SortDirAsc}

	return r.Repository.GetAll(ctx, params, gDto.FilterGroup{}) //nolint:wrapcheck
}
