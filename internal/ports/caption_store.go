package ports

import (
	"context"

	"github.com/bnema/gallery-captioner/internal/domain"
)

// CaptionStore persists the working list. Load reports domain.ErrStoreNotFound
// when nothing has been saved yet.
type CaptionStore interface {
	Load(ctx context.Context) (domain.WorkingList, error)
	Save(ctx context.Context, records domain.WorkingList) error
	Path() string
}
