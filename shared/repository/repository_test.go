package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	otelMocks "vetclinic/infras/otel/mocks"
	"vetclinic/shared/dto"
	"vetclinic/shared/model"
)

type row struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Internal string
	Skipped  string `db:"-"`
	model.Metadata
}

func TestColumns(t *testing.T) {
	repo := NewRepository[row]("row", "rows", "id", nil, otelMocks.NewOtel())

	assert.Equal(t, []string{"id", "name", "created_at", "modified_at", "created_by", "modified_by"}, repo.columns)
	assert.Equal(t, "rows.id, rows.name, rows.created_at, rows.modified_at, rows.created_by, rows.modified_by", repo.selectList())
}

func TestWhereClause(t *testing.T) {
	where, args := whereClause(dto.FilterGroup{})
	assert.Empty(t, where)
	assert.NotNil(t, args)

	where, args = whereClause(dto.And(dto.Filter{
		Table:    "rows",
		Field:    "id",
		Operator: dto.FilterOperatorEq,
		Value:    "r-1",
	}))
	assert.Contains(t, where, " WHERE ")
	assert.Contains(t, where, "rows.id")
	assert.Contains(t, args, "id")
}
