package abstraction

import (
	"context"

	"jailoo/internal/domain/dto"
)

type Lister interface {
	List(ctx context.Context, desc bool) ([]dto.PostResponse, int, error)
}
