package abstraction

import (
	"context"

	"jailoo/internal/domain/dto"
)

type Updater interface {
	Update(ctx context.Context, req dto.UpdatePostRequest) (dto.PostResponse, int, error)
}
