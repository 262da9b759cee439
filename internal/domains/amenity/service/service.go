package service

import (
	"context"
	"fmt"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/amenity/model"
	"lodge/internal/domains/amenity/model/dto"
	"lodge/internal/domains/amenity/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAmenity    = "amenity:get"
	cacheGetAllAmenity = "amenity:gets"
)

type Amenity interface {
	Create(ctx context.Context, req dto.CreateAmenityRequest) error
	GetAll(ctx context.Context) (dto.GetAmenitiesResponse, error)
	Get(ctx context.Context, id string) (dto.AmenityResponse, error)
	Update(ctx context.Context, req dto.UpdateAmenityRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Amenity
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Amenity, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Amenity {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAmenityRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create amenity")

		return fmt.Errorf("failed to create amenity: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAmenity)
	}()

	return nil
}

// GetAll returns the whole amenity catalog, cached with the catalog TTL.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetAmenitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllAmenity, "all")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for amenities")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.FieldName,
		SortDir: "ASC",
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get amenities")

		return res, fmt.Errorf("failed to get amenities: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.CatalogTTL); err != nil {
			log.Error().Err(err).Msg("failed to save amenities to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AmenityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAmenity, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for amenity")

		return res, nil
	}

	amenity, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get amenity")

		return res, fmt.Errorf("failed to get amenity: %w", err)
	}

	if amenity.ID == constant.Empty {
		return res, failure.NotFound("amenity not found") // nolint:wrapcheck
	}

	res.FromModel(amenity)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.CatalogTTL); err != nil {
			log.Error().Err(err).Msg("failed to save amenity to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAmenityRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check amenity existence")

		return fmt.Errorf("failed to check amenity existence: %w", err)
	}

	if !exist {
		return failure.NotFound("amenity not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update amenity")

		return fmt.Errorf("failed to update amenity: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAmenity, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete amenity cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAmenity)
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
		log.Error().Err(err).Msg("failed to check amenity existence")

		return fmt.Errorf("failed to check amenity existence: %w", err)
	}

	if !exist {
		return failure.NotFound("amenity not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete amenity")

		return fmt.Errorf("failed to delete amenity: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAmenity, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete amenity cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAmenity)
	}()

	return nil
}
