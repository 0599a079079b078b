package database

import (
	"context"

	"jailoo/internal/domain/model"
)

type Writer interface {
	// NextID allocates the next post id from the sequence.
	NextID(ctx context.Context) (int64, error)
	Write(ctx context.Context, post *model.Post) error
}
