package model

import "lodge/shared/model"

const (
	TableName  = "facilities"
	EntityName = "facility"

	FieldID   = "id"
	FieldName = "name"

	JoinTableName    = "room_facilities"
	JoinEntityName   = "room_facility"
	JoinFieldRoomID  = "room_id"
	JoinFieldValueID = "facility_id"
)

// Facility is a hotel-level amenity catalog entry, e.g. "Pool" or "Parking".
type Facility struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	model.Metadata
}

// RoomFacility links a room type to a catalog facility.
type RoomFacility struct {
	RoomID     string `db:"room_id"`
	FacilityID string `db:"facility_id"`
}
