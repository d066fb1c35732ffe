package outbound

import (
	"context"

	"github.com/Mulith/create-video-short/domain"
)

// ContentStorePort is the persistent store of record. The pipeline reads
// one item at the start of a run and writes status fields back only on
// success; failures leave the persisted status untouched.
type ContentStorePort interface {
	// GetContentItem loads the item with its scenes and rendered assets
	// eagerly joined, scenes ordered ascending by scene number.
	GetContentItem(ctx context.Context, id string) (*domain.ContentItem, error)

	// MarkVideoCompleted sets video_status to completed, records the
	// storage path and bumps updated_at.
	MarkVideoCompleted(ctx context.Context, id string, storagePath string) error
}
