package outbound

import "context"

// ArtifactPublisherPort uploads the rendered video to durable storage and
// returns the storage-relative path persisted back onto the content item.
type ArtifactPublisherPort interface {
	Publish(ctx context.Context, fileName string, video []byte) (string, error)
}
