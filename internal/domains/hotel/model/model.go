package model

import "lodge/shared/model"

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID          = "id"
	FieldName        = "name"
	FieldLocation    = "location"
	FieldDescription = "description"
	FieldImage       = "image"
	FieldActive      = "active"
)

type Hotel struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Location    string `db:"location"`
	Description string `db:"description"`
	Image       string `db:"image"`
	Active      bool   `db:"active"`
	model.Metadata
}
