package abstraction

import (
	"context"
	"io"

	"jailoo/internal/domain/dto"
)

type Replacer interface {
	Replace(ctx context.Context, id int64, file io.Reader, fileSize int64,
		fileType string) (dto.ReplaceVideoResponse, int, error)
}
