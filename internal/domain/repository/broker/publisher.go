package broker

import "context"

// Publisher hands a stored video object name to the downstream processing
// stream (transcode/thumbnail pipeline, owned by another service).
type Publisher interface {
	Publish(ctx context.Context, object string) error
}
