package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"vetclinic/infras/otel"
	"vetclinic/infras/postgres"
	"vetclinic/internal/domains/pet/model"
	"vetclinic/shared"
	gRepo "vetclinic/shared/repository"
)

type Pet interface {
	Get(ctx context.Context, id string) (model.Pet, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Pet]
}

func New(db *postgres.Connection, otel otel.Otel) Pet {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Pet](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// Get returns the zero Pet when id is unknown.
func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Pet, error) {
	return r.Repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}
