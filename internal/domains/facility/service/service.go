package service

import (
	"context"
	"fmt"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/facility/model"
	"lodge/internal/domains/facility/model/dto"
	"lodge/internal/domains/facility/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetFacility    = "facility:get"
	cacheGetAllFacility = "facility:gets"
)

type Facility interface {
	Create(ctx context.Context, req dto.CreateFacilityRequest) error
	GetAll(ctx context.Context) (dto.GetFacilitiesResponse, error)
	Get(ctx context.Context, id string) (dto.FacilityResponse, error)
	Update(ctx context.Context, req dto.UpdateFacilityRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Facility
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Facility, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Facility {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFacilityRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create facility")

		return fmt.Errorf("failed to create facility: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllFacility)
	}()

	return nil
}

// GetAll returns the whole facility catalog. The catalog is small and changes
// rarely, so it is cached with the longer catalog TTL.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetFacilitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllFacility, "all")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for facilities")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.FieldName,
		SortDir: "ASC",
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get facilities")

		return res, fmt.Errorf("failed to get facilities: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.CatalogTTL); err != nil {
			log.Error().Err(err).Msg("failed to save facilities to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.FacilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetFacility, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for facility")

		return res, nil
	}

	facility, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get facility")

		return res, fmt.Errorf("failed to get facility: %w", err)
	}

	if facility.ID == constant.Empty {
		return res, failure.NotFound("facility not found") // nolint:wrapcheck
	}

	res.FromModel(facility)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.CatalogTTL); err != nil {
			log.Error().Err(err).Msg("failed to save facility to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateFacilityRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check facility existence")

		return fmt.Errorf("failed to check facility existence: %w", err)
	}

	if !exist {
		return failure.NotFound("facility not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update facility")

		return fmt.Errorf("failed to update facility: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetFacility, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete facility cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllFacility)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check facility existence")

		return fmt.Errorf("failed to check facility existence: %w", err)
	}

	if !exist {
		return failure.NotFound("facility not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete facility")

		return fmt.Errorf("failed to delete facility: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetFacility, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete facility cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllFacility)
	}()

	return nil
}
