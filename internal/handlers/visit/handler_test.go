package visit_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "vetclinic/infras/otel/mocks"
	"vetclinic/internal/domains/visit/model/dto"
	"vetclinic/internal/domains/visit/service"
	serviceMocks "vetclinic/internal/domains/visit/service/mocks"
	visitHandler "vetclinic/internal/handlers/visit"
)

const (
	vetA = "0b0f6f8e-3b8b-4bb0-9b3f-7d1d5b1f2b11"
	vetB = "6a4c1c0e-93a4-4d8e-a7a6-1f0f4e3c2d22"
	petA = "9e2d7c55-1f3a-4f38-8d0e-2b8c6e4a7f33"
)

func newRouter(t *testing.T) (*serviceMocks.MockVisit, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockVisit(ctrl)

	handler := visitHandler.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	return body
}

func TestCreateVisit(t *testing.T) {
	validBody := `{"vet_id":"` + vetA + `","pet_id":"` + petA + `","start_date_time":"2021-04-15T10:00:00Z",` +
		`"duration_minutes":30,"price":"80.00","visit_type":"CONSULTATION","operation_type":"AT_CLINIC"}`

	t.Run("invalid body never reaches the service", func(t *testing.T) {
		_, router := newRouter(t)

		recorder := serve(router, http.MethodPost, "/v1/visits/", `{"vet_id":"nope"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.NotEmpty(t, decode(t, recorder)["error"])
	})

	t.Run("created", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req dto.CreateVisitRequest) (dto.VisitResponse, error) {
				assert.Equal(t, vetA, req.VetID)
				assert.Equal(t, int64(30), req.DurationMinutes)

				return dto.VisitResponse{ID: "visit-1", Status: "SCHEDULED"}, nil
			})

		recorder := serve(router, http.MethodPost, "/v1/visits/", validBody)

		require.Equal(t, http.StatusCreated, recorder.Code)

		data, ok := decode(t, recorder)["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "visit-1", data["id"])
	})

	t.Run("booking rule rejection", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.VisitResponse{}, service.ErrSlotTaken)

		recorder := serve(router, http.MethodPost, "/v1/visits/", validBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, service.ErrSlotTaken.Error(), decode(t, recorder)["error"])
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.VisitResponse{}, errors.New("connection reset"))

		recorder := serve(router, http.MethodPost, "/v1/visits/", validBody)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestGetAvailableVisits(t *testing.T) {
	t.Run("vet ids from repeated and comma separated params", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().GetAvailable(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req dto.GetAvailableRequest) (dto.GetAvailableResponse, error) {
				assert.Equal(t, "2021-04-15T08:00:00Z", req.StartDateTime)
				assert.Equal(t, "2021-04-15T09:00:00Z", req.EndDateTime)
				assert.Equal(t, []string{vetA, vetB}, req.VetIDs)

				return dto.GetAvailableResponse{Slots: []dto.AvailableSlotResponse{
					{StartDateTime: "2021-04-15T08:00:00Z", VetIDs: []string{vetA}},
				}}, nil
			})

		target := "/v1/visits/available?start_date_time=2021-04-15T08:00:00Z&end_date_time=2021-04-15T09:00:00Z" +
			"&vet_ids=" + vetA + "&vet_ids=" + vetB
		recorder := serve(router, http.MethodGet, target, "")

		require.Equal(t, http.StatusOK, recorder.Code)

		data, ok := decode(t, recorder)["data"].(map[string]any)
		require.True(t, ok)
		assert.Len(t, data["slots"], 1)
	})

	t.Run("comma separated", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().GetAvailable(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req dto.GetAvailableRequest) (dto.GetAvailableResponse, error) {
				assert.Equal(t, []string{vetA, vetB}, req.VetIDs)

				return dto.GetAvailableResponse{}, nil
			})

		target := "/v1/visits/available?start_date_time=2021-04-15T08:00:00Z&end_date_time=2021-04-15T09:00:00Z" +
			"&vet_ids=" + vetA + "," + vetB
		recorder := serve(router, http.MethodGet, target, "")

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("missing range", func(t *testing.T) {
		_, router := newRouter(t)

		recorder := serve(router, http.MethodGet, "/v1/visits/available?end_date_time=2021-04-15T09:00:00Z", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("malformed vet id", func(t *testing.T) {
		_, router := newRouter(t)

		target := "/v1/visits/available?start_date_time=2021-04-15T08:00:00Z&end_date_time=2021-04-15T09:00:00Z&vet_ids=7"
		recorder := serve(router, http.MethodGet, target, "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestFinalizeVisit(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Finalize(gomock.Any(), "visit-1", dto.FinalizeVisitRequest{Status: "FINISHED", Description: "all good"}).
		Return(dto.VisitResponse{ID: "visit-1", Status: "FINISHED", Description: "all good"}, nil)

	recorder := serve(router, http.MethodPatch, "/v1/visits/visit-1", `{"status":"FINISHED","description":"all good"}`)

	require.Equal(t, http.StatusOK, recorder.Code)

	data, ok := decode(t, recorder)["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "FINISHED", data["status"])
}

func TestGetVisitByID_NotFound(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Get(gomock.Any(), "missing").Return(dto.VisitResponse{}, service.ErrVisitNotFound)

	recorder := serve(router, http.MethodGet, "/v1/visits/missing", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Wrong id.", decode(t, recorder)["error"])
}

func TestDeleteVisit(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Delete(gomock.Any(), "visit-1").Return(nil)

	recorder := serve(router, http.MethodDelete, "/v1/visits/visit-1", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Visit deleted successfully", decode(t, recorder)["message"])
}

func TestExpireElapsedVisits(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().ExpireElapsed(gomock.Any()).Return(3, nil)

	recorder := serve(router, http.MethodPost, "/v1/jobs/expiration", "")

	require.Equal(t, http.StatusOK, recorder.Code)

	data, ok := decode(t, recorder)["data"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 3, data["expired"], 0)
}
