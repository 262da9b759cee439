package model

import "lodge/shared/model"

const (
	TableName  = "amenities"
	EntityName = "amenity"

	FieldID   = "id"
	FieldName = "name"

	JoinTableName    = "room_amenities"
	JoinEntityName   = "room_amenity"
	JoinFieldRoomID  = "room_id"
	JoinFieldValueID = "amenity_id"
)

// Amenity is a room-level catalog entry, e.g. "WiFi" or "Mini bar".
type Amenity struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	model.Metadata
}

// RoomAmenity links a room type to a catalog amenity.
type RoomAmenity struct {
	RoomID    string `db:"room_id"`
	AmenityID string `db:"amenity_id"`
}
