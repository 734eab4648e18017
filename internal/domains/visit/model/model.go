package model

import (
	"time"

	"vetclinic/shared/model"
	"vetclinic/shared/timerange"
)

const (
	TableName  = "visits"
	EntityName = "visit"

	FieldID              = "id"
	FieldVetID           = "vet_id"
	FieldPetID           = "pet_id"
	FieldTreatmentRoomID = "treatment_room_id"
	FieldStartDateTime   = "start_date_time"
	FieldDurationSeconds = "duration_seconds"
	FieldEndDateTime     = "end_date_time"
	FieldPrice           = "price"
	FieldVisitType       = "visit_type"
	FieldOperationType   = "operation_type"
	FieldDescription     = "description"
	FieldStatus          = "status"
)

// Exclusion constraints backing the overlap rules in storage.
const (
	ConstraintVetNoOverlap  = "visits_vet_no_overlap"
	ConstraintRoomNoOverlap = "visits_room_no_overlap"
)

type Status string

const (
	StatusScheduled    Status = "SCHEDULED"
	StatusFinished     Status = "FINISHED"
	StatusDidNotAppear Status = "DID_NOT_APPEAR"
	StatusCancelled    Status = "CANCELLED"
	StatusExpired      Status = "EXPIRED"
)

// IsFinalizeTarget reports whether status may be set through an explicit finalize.
func (s Status) IsFinalizeTarget() bool {
	switch s {
	case StatusFinished, StatusDidNotAppear, StatusCancelled:
		return true
	default:
		return false
	}
}

// Visit types and operation types are classification only and carry no scheduling meaning.
const (
	VisitTypeConsultation = "CONSULTATION"
	VisitTypeOperation    = "OPERATION"
	VisitTypeVaccination  = "VACCINATION"
	VisitTypeControl      = "CONTROL"

	OperationTypeAtClinic = "AT_CLINIC"
	OperationTypeHome     = "HOME"
	OperationTypeRemote   = "REMOTE"
)

type Visit struct {
	ID              string    `db:"id"`
	VetID           string    `db:"vet_id"`
	PetID           string    `db:"pet_id"`
	TreatmentRoomID string    `db:"treatment_room_id"`
	StartDateTime   time.Time `db:"start_date_time"`
	DurationSeconds int64     `db:"duration_seconds"`
	EndDateTime     time.Time `db:"end_date_time"`
	Price           string    `db:"price"`
	VisitType       string    `db:"visit_type"`
	OperationType   string    `db:"operation_type"`
	Description     string    `db:"description"`
	Status          Status    `db:"status"`
	model.Metadata
}

func (v Visit) Duration() time.Duration {
	return time.Duration(v.DurationSeconds) * time.Second
}

// Range is the closed interval the visit occupies.
func (v Visit) Range() timerange.Range {
	return timerange.Range{Start: v.StartDateTime, End: v.EndDateTime}
}

// SetSchedule fixes start and duration and derives the end once.
func (v *Visit) SetSchedule(start time.Time, duration time.Duration) {
	v.StartDateTime = start
	v.DurationSeconds = int64(duration / time.Second)
	v.EndDateTime = start.Add(duration)
}
