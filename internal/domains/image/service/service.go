package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/infras/s3"
	"lodge/internal/domains/image/model"
	"lodge/internal/domains/image/model/dto"
	"lodge/internal/events"
	"lodge/shared/constant"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrDeleteImagesFromS3 = errors.New("failed to delete images from S3")
)

type Image interface {
	Upload(ctx context.Context, req dto.UploadImageRequest) (dto.UploadImageResponse, error)
	DeleteImagesFromS3(ctx context.Context, req dto.DeleteImagesRequest) error
}

type serviceImpl struct {
	cfg   *config.Config
	otel  otel.Otel
	s3    s3.S3
	kafka kafka.Client
}

func New(cfg *config.Config, otel otel.Otel, s3 s3.S3, kafka kafka.Client) Image {
	return &serviceImpl{
		cfg:   cfg,
		otel:  otel,
		s3:    s3,
		kafka: kafka,
	}
}

// Upload stores the file in the bucket under a random name and asks the
// worker to produce resized variants.
func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadImageRequest) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := s.cfg.External.S3.BucketName
	filename := uuid.NewString()

	parts := strings.Split(req.Image.Filename, ".")
	if len(parts) > 1 {
		filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
	}

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return res, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		event := events.ImageResizeEvent{
			ObjectName: filename,
			URL:        url,
			Entity:     model.EntityName,
		}

		err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.ImageResize, kafka.Message{
			Key:   filename,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("objectName", filename).Msg("failed to publish image resize event")
		}
	}()

	res.FromUpload(url, filename)

	return res, nil
}

func (s *serviceImpl) DeleteImagesFromS3(ctx context.Context, req dto.DeleteImagesRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteImagesFromS3")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := s.cfg.External.S3.BucketName

	var deleteErrors []error

	for _, imageURL := range req.ImageURLs {
		objectName := s.s3.GetObjectNameFromURL(bucketName, imageURL)
		if objectName == constant.Empty {
			log.Warn().Str("url", imageURL).Msg("failed to extract object name from URL")

			continue
		}

		if err := s.s3.DeleteFile(ctx, bucketName, model.EntityName, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete file from S3")
			deleteErrors = append(deleteErrors, err)
		}
	}

	if len(deleteErrors) > 0 {
		return fmt.Errorf("%w: %d images", ErrDeleteImagesFromS3, len(deleteErrors))
	}

	return nil
}
