package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetclinic/shared/failure"
	"vetclinic/shared/validator"
)

type visitRequest struct {
	VetID           string `json:"vet_id"           validate:"required,uuid"`
	DurationMinutes int64  `json:"duration_minutes" validate:"required,gt=0"`
	Price           string `json:"price"            validate:"required,decimal"`
	VisitType       string `json:"visit_type"       validate:"required,oneof=CONSULTATION OPERATION"`
}

func validRequest() visitRequest {
	return visitRequest{
		VetID:           "0b0f6f8e-3b8b-4bb0-9b3f-7d1d5b1f2b11",
		DurationMinutes: 60,
		Price:           "120.50",
		VisitType:       "CONSULTATION",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *visitRequest)
		message string
	}{
		{name: "valid", mutate: func(_ *visitRequest) {}},
		{name: "missing vet", mutate: func(r *visitRequest) { r.VetID = "" }, message: "vet_id is required"},
		{name: "vet not uuid", mutate: func(r *visitRequest) { r.VetID = "7" }, message: "vet_id must be a valid UUID"},
		{name: "negative duration", mutate: func(r *visitRequest) { r.DurationMinutes = -15 }, message: "duration_minutes must be greater than 0"},
		{name: "price three decimals", mutate: func(r *visitRequest) { r.Price = "1.005" }, message: "price must be a decimal amount with at most two fraction digits"},
		{name: "price negative", mutate: func(r *visitRequest) { r.Price = "-3" }, message: "price must be a decimal amount with at most two fraction digits"},
		{name: "unknown type", mutate: func(r *visitRequest) { r.VisitType = "GROOMING" }, message: "visit_type must be one of CONSULTATION OPERATION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)
			if tt.message == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("admin", "oneof=admin vet client"))
	assert.Error(t, validator.ValidateVar("guest", "oneof=admin vet client"))
	assert.NoError(t, validator.ValidateVar("", "empty"))
	assert.Error(t, validator.ValidateVar("x", "empty"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid body",
			jsonBody: `{"vet_id":"0b0f6f8e-3b8b-4bb0-9b3f-7d1d5b1f2b11","duration_minutes":30,"price":"80","visit_type":"OPERATION"}`,
		},
		{
			name:        "malformed body",
			jsonBody:    `{"vet_id":}`,
			expectError: true,
		},
		{
			name:        "unknown field",
			jsonBody:    `{"vet_id":"0b0f6f8e-3b8b-4bb0-9b3f-7d1d5b1f2b11","duration_minutes":30,"price":"80","visit_type":"OPERATION","room":"A"}`,
			expectError: true,
		},
		{
			name:        "empty body",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data visitRequest

			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)
			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
