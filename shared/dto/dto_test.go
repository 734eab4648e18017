package dto_test

import (
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetclinic/shared/constant"
	"vetclinic/shared/dto"
	"vetclinic/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	})

	parsedCreated, err := time.Parse(constant.DateFormat, metadata.CreatedAt)
	require.NoError(t, err)
	assert.True(t, parsedCreated.Equal(createdAt))

	parsedModified, err := time.Parse(constant.DateFormat, metadata.ModifiedAt)
	require.NoError(t, err)
	assert.True(t, parsedModified.Equal(modifiedAt))

	assert.Equal(t, "creator", metadata.CreatedBy)
	assert.Equal(t, "modifier", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:           "all valid parameters",
			queryParams:    map[string]string{"page": "2", "limit": "20", "sort_by": "start_date_time", "sort_dir": "asc"},
			defaultRequest: false,
			expected:       dto.QueryParams{Page: 2, Limit: 20, SortBy: "start_date_time", SortDir: "ASC"},
		},
		{
			name:           "defaults applied",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "no defaults",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name:           "invalid numbers fall back",
			queryParams:    map[string]string{"page": "-1", "limit": "x"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "unknown sort direction ignored",
			queryParams:    map[string]string{"sort_dir": "sideways"},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := url.Values{}
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}

			req := httptest.NewRequest("GET", "/v1/visits?"+query.Encode(), nil)

			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, *queryParams)
		})
	}
}

func TestQueryParams_RestrictSort(t *testing.T) {
	q := dto.QueryParams{SortBy: "1; DROP TABLE visits"}
	q.RestrictSort("start_date_time", "start_date_time", "created_at")

	assert.Equal(t, "start_date_time", q.SortBy)
	assert.Equal(t, dto.SortDirAsc, q.SortDir)

	q = dto.QueryParams{SortBy: "created_at", SortDir: dto.SortDirDesc}
	q.RestrictSort("start_date_time", "start_date_time", "created_at")

	assert.Equal(t, "created_at", q.SortBy)
	assert.Equal(t, dto.SortDirDesc, q.SortDir)
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	now := time.Date(2021, 4, 14, 10, 0, 0, 0, time.UTC)

	group := dto.And(
		dto.Filter{Field: "vet_id", Value: "v1", Operator: dto.FilterOperatorEq, Table: "visits"},
		dto.Filter{Field: "status", Value: []string{"CANCELLED"}, Operator: dto.FilterOperatorNotIn},
		dto.Filter{Field: "end_date_time", ArgName: "now", Value: now, Operator: dto.FilterOperatorLess},
	)

	where, args := group.GetWhereClause()

	assert.Equal(t, "(visits.vet_id = :vet_id AND status NOT IN (:status_0) AND end_date_time < :now)", where)
	assert.Equal(t, map[string]any{"vet_id": "v1", "status_0": "CANCELLED", "now": now}, args)
}

func TestFilter_EmptyIn(t *testing.T) {
	in := dto.Filter{Field: "vet_id", Value: []string{}, Operator: dto.FilterOperatorIn}
	notIn := dto.Filter{Field: "vet_id", Value: []string{}, Operator: dto.FilterOperatorNotIn}

	where, _ := in.GetWhereClause()
	assert.Equal(t, "FALSE", where)

	where, _ = notIn.GetWhereClause()
	assert.Equal(t, "TRUE", where)
}

func TestFilterGroup_Nested(t *testing.T) {
	group := dto.And(
		dto.Filter{Field: "id", Value: "x", Operator: dto.FilterOperatorEq},
		dto.Or(
			dto.Filter{Field: "a", Value: 1, Operator: dto.FilterOperatorGreater},
			dto.Filter{Field: "b", Operator: dto.FilterIsNull},
		),
	)

	where, args := group.GetWhereClause()

	assert.Equal(t, "(id = :id AND (a > :a OR b IS NULL))", where)
	assert.Len(t, args, 2)
}

func TestFilter_PlainQueryArgs(t *testing.T) {
	filter := dto.Filter{
		Operator: dto.FilterPlainQuery,
		Value:    "visits.pet_id IN (SELECT id FROM pets WHERE owner = :owner)",
		Args:     map[string]any{"owner": "jane"},
	}

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(visits.pet_id IN (SELECT id FROM pets WHERE owner = :owner))", where)
	assert.Equal(t, map[string]any{"owner": "jane"}, args)
}

func TestFilterGroup_SkipsEmptyGroups(t *testing.T) {
	group := dto.And(
		dto.Filter{Field: "id", Value: "x", Operator: dto.FilterOperatorEq},
		dto.FilterGroup{},
	)

	where, _ := group.GetWhereClause()

	assert.Equal(t, "(id = :id)", where)
}
