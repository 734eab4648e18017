package model

import "vetclinic/shared/model"

const (
	TableName  = "treatment_rooms"
	EntityName = "treatment_room"

	FieldID   = "id"
	FieldName = "name"
)

// TreatmentRoom is an interchangeable member of the room pool. Name is for display only.
type TreatmentRoom struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	model.Metadata
}
