package model

import (
	"time"

	"vetclinic/shared/model"
	"vetclinic/shared/timeofday"
)

const (
	TableName  = "vets"
	EntityName = "vet"

	FieldID            = "id"
	FieldName          = "name"
	FieldSurname       = "surname"
	FieldWorkStartTime = "work_start_time"
	FieldWorkEndTime   = "work_end_time"
)

type Vet struct {
	ID            string              `db:"id"`
	Name          string              `db:"name"`
	Surname       string              `db:"surname"`
	WorkStartTime timeofday.TimeOfDay `db:"work_start_time"`
	WorkEndTime   timeofday.TimeOfDay `db:"work_end_time"`
	model.Metadata
}

// LocalTime is the wall-clock time of instant at the offset the vet's hours are kept in.
func (v Vet) LocalTime(instant time.Time) timeofday.TimeOfDay {
	return timeofday.At(instant, v.WorkStartTime.Offset())
}

// WorksAt reports whether instant falls within the daily working window, both ends included.
// Shifts crossing midnight are not supported.
func (v Vet) WorksAt(instant time.Time) bool {
	return v.LocalTime(instant).Within(v.WorkStartTime, v.WorkEndTime)
}

// WorksThrough reports whether both ends of [from, to] fall within the working window.
func (v Vet) WorksThrough(from, to time.Time) bool {
	return v.WorksAt(from) && v.WorksAt(to)
}
