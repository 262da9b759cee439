package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/amenity/model"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
)

type Amenity interface {
	Insert(ctx context.Context, model model.Amenity) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Amenity, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Amenity, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ReplaceRoomAmenitiesTx(ctx context.Context, sqltx gRepo.Tx, roomID string, amenityIDs []string) error
	GetByRoom(ctx context.Context, roomID string) ([]model.Amenity, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Amenity]
	join gRepo.Repository[model.RoomAmenity]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Amenity {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Amenity](model.EntityName, model.TableName, model.FieldID, db, otel),
		join:       gRepo.NewRepository[model.RoomAmenity](model.JoinEntityName, model.JoinTableName, model.JoinFieldRoomID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ReplaceRoomAmenitiesTx rewrites the room's amenity links inside the given
// transaction.
func (repo *repositoryImpl) ReplaceRoomAmenitiesTx(ctx context.Context, sqltx gRepo.Tx, roomID string, amenityIDs []string) error {
	roomFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.JoinFieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.JoinTableName,
			},
		},
	}

	if err := repo.join.DeleteTx(ctx, sqltx, roomFilter); err != nil {
		return err
	}

	if len(amenityIDs) == 0 {
		return nil
	}

	links := make([]model.RoomAmenity, len(amenityIDs))
	for i, amenityID := range amenityIDs {
		links[i] = model.RoomAmenity{RoomID: roomID, AmenityID: amenityID}
	}

	return repo.join.InsertBulkTx(ctx, sqltx, links)
}

// GetByRoom loads the amenity catalog entries linked to one room.
func (repo *repositoryImpl) GetByRoom(ctx context.Context, roomID string) ([]model.Amenity, error) {
	roomFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.JoinFieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.JoinTableName,
			},
		},
	}

	links, err := repo.join.GetAll(ctx, gDto.QueryParams{}, roomFilter)
	if err != nil {
		return nil, err
	}

	if len(links) == 0 {
		return []model.Amenity{}, nil
	}

	ids := make([]string, len(links))
	for i, link := range links {
		ids[i] = link.AmenityID
	}

	return repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorIn,
				Value:    ids,
				Table:    model.TableName,
			},
		},
	})
}
