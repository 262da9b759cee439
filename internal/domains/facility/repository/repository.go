package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/facility/model"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
)

type Facility interface {
	Insert(ctx context.Context, model model.Facility) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Facility, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Facility, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ReplaceRoomFacilitiesTx(ctx context.Context, sqltx gRepo.Tx, roomID string, facilityIDs []string) error
	GetByRoom(ctx context.Context, roomID string) ([]model.Facility, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Facility]
	join gRepo.Repository[model.RoomFacility]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Facility {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Facility](model.EntityName, model.TableName, model.FieldID, db, otel),
		join:       gRepo.NewRepository[model.RoomFacility](model.JoinEntityName, model.JoinTableName, model.JoinFieldRoomID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ReplaceRoomFacilitiesTx rewrites the room's facility links inside the given
// transaction.
func (repo *repositoryImpl) ReplaceRoomFacilitiesTx(ctx context.Context, sqltx gRepo.Tx, roomID string, facilityIDs []string) error {
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

	if len(facilityIDs) == 0 {
		return nil
	}

	links := make([]model.RoomFacility, len(facilityIDs))
	for i, facilityID := range facilityIDs {
		links[i] = model.RoomFacility{RoomID: roomID, FacilityID: facilityID}
	}

	return repo.join.InsertBulkTx(ctx, sqltx, links)
}

// GetByRoom loads the facility catalog entries linked to one room.
func (repo *repositoryImpl) GetByRoom(ctx context.Context, roomID string) ([]model.Facility, error) {
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
		return []model.Facility{}, nil
	}

	ids := make([]string, len(links))
	for i, link := range links {
		ids[i] = link.FacilityID
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
