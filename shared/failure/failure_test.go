package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"vetclinic/shared/failure"
)

func TestFailureKinds(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "incorrect data",
			err:     failure.IncorrectData("Wrong vet id."),
			code:    http.StatusBadRequest,
			message: "Wrong vet id.",
		},
		{
			name:    "bad request from string",
			err:     failure.BadRequestFromString("start_date_time is required"),
			code:    http.StatusBadRequest,
			message: "start_date_time is required",
		},
		{
			name:    "resource not found",
			err:     failure.ResourceNotFound("Wrong id."),
			code:    http.StatusNotFound,
			message: "Wrong id.",
		},
		{
			name:    "unauthorized",
			err:     failure.Unauthorized("Token has expired"),
			code:    http.StatusUnauthorized,
			message: "Token has expired",
		},
		{
			name:    "forbidden",
			err:     failure.Forbidden("role not allowed"),
			code:    http.StatusForbidden,
			message: "role not allowed",
		},
		{
			name:    "internal",
			err:     failure.InternalError(errors.New("connection reset")),
			code:    http.StatusInternalServerError,
			message: "connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestNilWrappers(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode_Wrapped(t *testing.T) {
	err := fmt.Errorf("create visit: %w", failure.IncorrectData("There is no free treatment room."))

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(nil))
}

func TestIsExclusionViolation(t *testing.T) {
	exclusion := &pq.Error{Code: "23P01", Constraint: "visits_vet_no_overlap"}
	unique := &pq.Error{Code: "23505", Constraint: "visits_pkey"}

	assert.True(t, failure.IsExclusionViolation(fmt.Errorf("insert: %w", exclusion)))
	assert.False(t, failure.IsExclusionViolation(unique))
	assert.False(t, failure.IsExclusionViolation(errors.New("other")))

	assert.Equal(t, "visits_vet_no_overlap", failure.ConstraintName(exclusion))
	assert.Empty(t, failure.ConstraintName(errors.New("other")))
}
