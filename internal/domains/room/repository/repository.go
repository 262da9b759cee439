package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/room/model"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	InsertTx(ctx context.Context, sqltx gRepo.Tx, model model.Room) error
	UpdateTx(ctx context.Context, sqltx gRepo.Tx, req map[string]any, filter gDto.FilterGroup) error
	BeginTx(ctx context.Context) (gRepo.Tx, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetForUpdateTx(ctx context.Context, sqltx gRepo.Tx, filter gDto.FilterGroup) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// BeginTx opens a write transaction so the room row and its facility and
// amenity links change together.
func (repo *repositoryImpl) BeginTx(ctx context.Context) (gRepo.Tx, error) {
	sqltx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	return sqltx, nil
}
