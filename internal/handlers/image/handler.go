package image

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/image/model/dto"
	"lodge/internal/domains/image/service"
	"lodge/shared/constant"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Image
	otel    otel.Otel
}

func New(service service.Image, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/images", func(r chi.Router) {
		r.Post("/", handler.UploadImage)
		r.Delete("/", handler.DeleteImages)
	})
}

// UploadImage uploads a standalone image to the object store.
// @Summary Upload an image
// @Description Upload an image file. The stored URL can then be attached to hotels or rooms.
// @Tags Image
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} response.Data[dto.UploadImageResponse] "Image uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/images [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UploadImageRequest{}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Image uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// DeleteImages removes uploaded images from the object store.
// @Summary Delete images
// @Description Delete the images referenced by the given URLs from the object store.
// @Tags Image
// @Accept json
// @Produce json
// @Param request body dto.DeleteImagesRequest true "Delete Images Request"
// @Success 200 {object} response.Message "Images deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/images [delete]
// @Security BearerAuth
func (handler *Handler) DeleteImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteImages")
	defer scope.End()

	req := dto.DeleteImagesRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.DeleteImagesFromS3(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete images")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Images deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Images deleted successfully")
}
