package dto

import (
	"fmt"
	"time"

	"vetclinic/internal/domains/visit/model"
	"vetclinic/shared"
	"vetclinic/shared/constant"
	gDto "vetclinic/shared/dto"
	"vetclinic/shared/timezone"
)

type CreateVisitRequest struct {
	VetID           string `json:"vet_id"           validate:"required,uuid"`
	PetID           string `json:"pet_id"           validate:"required,uuid"`
	StartDateTime   string `json:"start_date_time"  validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	DurationMinutes int64  `json:"duration_minutes" validate:"gte=0,max=1440"`
	Price           string `json:"price"            validate:"required,decimal"`
	VisitType       string `json:"visit_type"       validate:"required,oneof=CONSULTATION OPERATION VACCINATION CONTROL"`
	OperationType   string `json:"operation_type"   validate:"required,oneof=AT_CLINIC HOME REMOTE"`
}

// Start parses StartDateTime keeping the offset the requester sent.
func (c *CreateVisitRequest) Start() (time.Time, error) {
	start, err := timezone.ParseRFC3339(c.StartDateTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: %w", constant.RequestParamStartDateTime, err)
	}

	return start, nil
}

func (c *CreateVisitRequest) Duration() time.Duration {
	return time.Duration(c.DurationMinutes) * time.Minute
}

// FinalizeVisitRequest carries the requested target status. Targets outside
// FINISHED, DID_NOT_APPEAR and CANCELLED leave the status unchanged.
type FinalizeVisitRequest struct {
	Status      string `json:"status"      validate:"required,max=32"`
	Description string `json:"description" validate:"max=1000"`
}

type VisitResponse struct {
	ID              string `json:"id"`
	VetID           string `json:"vet_id"`
	PetID           string `json:"pet_id"`
	TreatmentRoomID string `json:"treatment_room_id"`
	StartDateTime   string `json:"start_date_time"`
	EndDateTime     string `json:"end_date_time"`
	DurationMinutes int64  `json:"duration_minutes"`
	Price           string `json:"price"`
	VisitType       string `json:"visit_type"`
	OperationType   string `json:"operation_type"`
	Description     string `json:"description"`
	Status          string `json:"status"`
	gDto.Metadata
}

func (r *VisitResponse) FromModel(visit model.Visit) {
	r.ID = visit.ID
	r.VetID = visit.VetID
	r.PetID = visit.PetID
	r.TreatmentRoomID = visit.TreatmentRoomID
	r.StartDateTime = timezone.Format(visit.StartDateTime, constant.DateFormat)
	r.EndDateTime = timezone.Format(visit.EndDateTime, constant.DateFormat)
	r.DurationMinutes = int64(visit.Duration() / time.Minute)
	r.Price = visit.Price
	r.VisitType = visit.VisitType
	r.OperationType = visit.OperationType
	r.Description = visit.Description
	r.Status = string(visit.Status)
	r.Metadata.FromModel(visit.Metadata)
}

type GetVisitsResponse struct {
	Visits    []VisitResponse `json:"visits"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetVisitsResponse) FromModels(models []model.Visit, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Visits = make([]VisitResponse, len(models))
	for i, mod := range models {
		r.Visits[i].FromModel(mod)
	}
}

type GetAvailableRequest struct {
	StartDateTime string   `json:"start_date_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndDateTime   string   `json:"end_date_time"   validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	VetIDs        []string `json:"vet_ids"         validate:"omitempty,dive,uuid"`
}

// Range parses both bounds keeping their offsets.
func (g *GetAvailableRequest) Range() (start, end time.Time, err error) {
	start, err = timezone.ParseRFC3339(g.StartDateTime)
	if err != nil {
		return start, end, fmt.Errorf("invalid %s: %w", constant.RequestParamStartDateTime, err)
	}

	end, err = timezone.ParseRFC3339(g.EndDateTime)
	if err != nil {
		return start, end, fmt.Errorf("invalid %s: %w", constant.RequestParamEndDateTime, err)
	}

	return start, end, nil
}

// CacheKey identifies the query regardless of the order vet ids were sent in.
func (g *GetAvailableRequest) CacheKey(prefix string) string {
	return shared.BuildCacheKeyWithQuery(prefix, map[string]string{
		constant.RequestParamStartDateTime: g.StartDateTime,
		constant.RequestParamEndDateTime:   g.EndDateTime,
		constant.RequestParamVetIDs:        shared.JoinSorted(g.VetIDs),
	})
}

// AvailableSlot is one 15-minute slot with the vets free for all of it.
type AvailableSlot struct {
	StartDateTime time.Time
	VetIDs        []string
}

type AvailableSlotResponse struct {
	StartDateTime string   `json:"start_date_time"`
	VetIDs        []string `json:"vet_ids"`
}

func (r *AvailableSlotResponse) FromSlot(slot AvailableSlot) {
	r.StartDateTime = slot.StartDateTime.Format(constant.DateFormat)
	r.VetIDs = slot.VetIDs
}

type GetAvailableResponse struct {
	Slots []AvailableSlotResponse `json:"slots"`
}

func (r *GetAvailableResponse) FromSlots(slots []AvailableSlot) {
	r.Slots = make([]AvailableSlotResponse, len(slots))
	for i, slot := range slots {
		r.Slots[i].FromSlot(slot)
	}
}

// VisitEvent is published after a visit write commits.
type VisitEvent struct {
	Type            string `json:"type"`
	VisitID         string `json:"visit_id"`
	VetID           string `json:"vet_id"`
	PetID           string `json:"pet_id"`
	TreatmentRoomID string `json:"treatment_room_id"`
	Status          string `json:"status"`
	StartDateTime   string `json:"start_date_time"`
	EndDateTime     string `json:"end_date_time"`
	OccurredAt      string `json:"occurred_at"`
	Actor           string `json:"actor"`
}

func NewVisitEvent(eventType string, visit model.Visit, at time.Time, actor string) VisitEvent {
	return VisitEvent{
		Type:            eventType,
		VisitID:         visit.ID,
		VetID:           visit.VetID,
		PetID:           visit.PetID,
		TreatmentRoomID: visit.TreatmentRoomID,
		Status:          string(visit.Status),
		StartDateTime:   visit.StartDateTime.Format(constant.DateFormat),
		EndDateTime:     visit.EndDateTime.Format(constant.DateFormat),
		OccurredAt:      at.Format(constant.DateFormat),
		Actor:           actor,
	}
}

type ExpireElapsedResponse struct {
	Expired int `json:"expired"`
}
