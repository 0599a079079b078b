package abstraction

import (
	"context"
	"io"

	"jailoo/internal/domain/dto"
)

// CreatePostInput carries the multipart form of a create-post request.
type CreatePostInput struct {
	Title     string
	Content   string
	Fact      string
	Region    string
	Season    string
	MapRegion string
	MapURL    *string

	File     io.Reader
	FileSize int64
	FileType string
}

type Creator interface {
	Create(ctx context.Context, in CreatePostInput) (dto.PostResponse, int, error)
}
