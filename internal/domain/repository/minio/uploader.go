package minio

import (
	"context"
	"io"

	"jailoo/internal/domain/entity"
)

type Uploader interface {
	UploadVideo(ctx context.Context, body io.Reader, fileSize int64,
		declaredType string,
	) (entity.VideoUploadResult, error)
}
