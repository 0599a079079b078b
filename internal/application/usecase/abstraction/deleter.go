package abstraction

import "context"

// Deleter defines the interface for deleting a post and its video blob.
type Deleter interface {
	Delete(ctx context.Context, id int64) (int, error)
}
