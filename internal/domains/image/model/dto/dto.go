package dto

import (
	"mime/multipart"
)

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile multipart.File        `json:"-"`
}

type UploadImageResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadImageResponse) FromUpload(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}

type DeleteImagesRequest struct {
	ImageURLs []string `json:"image_urls" validate:"required,min=1,dive,url"`
}
