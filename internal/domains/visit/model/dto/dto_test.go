package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetclinic/internal/domains/visit/model"
	"vetclinic/internal/domains/visit/model/dto"
	gModel "vetclinic/shared/model"
)

func TestCreateVisitRequest_Start(t *testing.T) {
	req := dto.CreateVisitRequest{StartDateTime: "2021-04-15T10:00:00+02:00", DurationMinutes: 45}

	start, err := req.Start()
	require.NoError(t, err)

	_, offset := start.Zone()
	assert.Equal(t, 2*60*60, offset)
	assert.True(t, start.Equal(time.Date(2021, 4, 15, 8, 0, 0, 0, time.UTC)))
	assert.Equal(t, 45*time.Minute, req.Duration())

	req.StartDateTime = "tomorrow"
	_, err = req.Start()
	assert.Error(t, err)
}

func TestVisitResponse_FromModel(t *testing.T) {
	start := time.Date(2021, 4, 15, 10, 0, 0, 0, time.UTC)

	visit := model.Visit{
		ID:              "visit-1",
		VetID:           "vet-1",
		PetID:           "pet-1",
		TreatmentRoomID: "room-1",
		Price:           "120.50",
		VisitType:       model.VisitTypeConsultation,
		OperationType:   model.OperationTypeAtClinic,
		Description:     "checkup",
		Status:          model.StatusScheduled,
		Metadata:        gModel.NewMetadata(start, "alice"),
	}
	visit.SetSchedule(start, 30*time.Minute)

	var response dto.VisitResponse
	response.FromModel(visit)

	assert.Equal(t, "visit-1", response.ID)
	assert.Equal(t, "room-1", response.TreatmentRoomID)
	assert.Equal(t, int64(30), response.DurationMinutes)
	assert.Equal(t, "120.50", response.Price)
	assert.Equal(t, "SCHEDULED", response.Status)
	assert.Equal(t, "alice", response.CreatedBy)
	assert.NotEmpty(t, response.StartDateTime)
	assert.NotEmpty(t, response.EndDateTime)
}

func TestGetVisitsResponse_FromModels(t *testing.T) {
	visits := []model.Visit{{ID: "a"}, {ID: "b"}}

	var response dto.GetVisitsResponse
	response.FromModels(visits, 12, 5)

	assert.Len(t, response.Visits, 2)
	assert.Equal(t, 12, response.TotalData)
	assert.Equal(t, 3, response.TotalPage)
}

func TestGetAvailableRequest(t *testing.T) {
	req := dto.GetAvailableRequest{
		StartDateTime: "2021-04-14T01:00:00Z",
		EndDateTime:   "2021-04-17T15:30:00Z",
		VetIDs:        []string{"b", "a"},
	}

	start, end, err := req.Range()
	require.NoError(t, err)
	assert.True(t, start.Before(end))

	reordered := req
	reordered.VetIDs = []string{"a", "b"}
	assert.Equal(t, req.CacheKey("visit:available"), reordered.CacheKey("visit:available"))

	req.EndDateTime = "soon"
	_, _, err = req.Range()
	assert.Error(t, err)
}

func TestGetAvailableResponse_FromSlots(t *testing.T) {
	start := time.Date(2021, 4, 14, 1, 0, 0, 0, time.FixedZone("", 3600))

	var response dto.GetAvailableResponse
	response.FromSlots([]dto.AvailableSlot{{StartDateTime: start, VetIDs: []string{"vet-1"}}})

	require.Len(t, response.Slots, 1)
	assert.Equal(t, "2021-04-14T01:00:00+01:00", response.Slots[0].StartDateTime)
	assert.Equal(t, []string{"vet-1"}, response.Slots[0].VetIDs)
}

func TestNewVisitEvent(t *testing.T) {
	start := time.Date(2021, 4, 15, 10, 0, 0, 0, time.UTC)

	visit := model.Visit{ID: "visit-1", VetID: "vet-1", Status: model.StatusExpired}
	visit.SetSchedule(start, time.Hour)

	event := dto.NewVisitEvent("visit.expired", visit, start.Add(2*time.Hour), "system")

	assert.Equal(t, "visit.expired", event.Type)
	assert.Equal(t, "EXPIRED", event.Status)
	assert.Equal(t, "2021-04-15T11:00:00Z", event.EndDateTime)
	assert.Equal(t, "2021-04-15T12:00:00Z", event.OccurredAt)
	assert.Equal(t, "system", event.Actor)
}
