package model

import (
	"database/sql"

	"vetclinic/shared/model"
)

const (
	TableName  = "clients"
	EntityName = "client"

	FieldID     = "id"
	FieldUserID = "user_id"
	FieldName   = "name"
)

// Client owns pets. UserID links the client to a login account and is empty for
// clients registered at the desk.
type Client struct {
	ID     string         `db:"id"`
	UserID sql.NullString `db:"user_id"`
	Name   string         `db:"name"`
	model.Metadata
}
