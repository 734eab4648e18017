package model

import "vetclinic/shared/model"

const (
	TableName  = "pets"
	EntityName = "pet"

	FieldID       = "id"
	FieldClientID = "client_id"
	FieldName     = "name"
)

type Pet struct {
	ID       string `db:"id"`
	ClientID string `db:"client_id"`
	Name     string `db:"name"`
	model.Metadata
}
