package abstraction

import (
	"context"

	"jailoo/internal/domain/model"
)

// Getter defines the interface for resolving a video object to its post.
type Getter interface {
	GetByVideoFile(ctx context.Context, object string) (*model.Post, error)
}
