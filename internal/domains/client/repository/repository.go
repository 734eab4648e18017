package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"vetclinic/infras/otel"
	"vetclinic/infras/postgres"
	"vetclinic/internal/domains/client/model"
	"vetclinic/shared"
	gRepo "vetclinic/shared/repository"
)

type Client interface {
	Get(ctx context.Context, id string) (model.Client, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Client]
}

func New(db *postgres.Connection, otel otel.Otel) Client {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Client](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// Get returns the zero Client when id is unknown.
func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Client, error) {
	return r.Repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}
