package model

const (
	EntityName = "image"
)
