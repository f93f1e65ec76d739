package ports

import (
	"context"

	"github.com/beyond-platform/content-api/internal/core/domain"
)

// ContentRepository defines the persistence contract for the content catalog
// and its like relations. One implementation serves all three kinds; the kind
// selects the table pair.
type ContentRepository interface {
	Create(ctx context.Context, item *domain.ContentItem) (*domain.ContentItem, error)
	// Update rewrites title and description. Returns domain.ErrItemNotFound
	// when the id does not exist.
	Update(ctx context.Context, kind domain.Kind, id uint, title, description string) error
	// Delete removes an item and its likes. Deleting a missing id is a no-op.
	Delete(ctx context.Context, kind domain.Kind, id uint) error
	// List returns all items of a kind, most recently created first.
	List(ctx context.Context, kind domain.Kind) ([]domain.ContentItem, error)

	// Like records a (user, item) like. Duplicate likes are absorbed by the
	// unique-pair constraint; the call is safe under concurrent duplicates.
	Like(ctx context.Context, kind domain.Kind, userID, itemID uint) error
	// Unlike removes a like. Removing an absent like is a no-op.
	Unlike(ctx context.Context, kind domain.Kind, userID, itemID uint) error
	LikeCount(ctx context.Context, kind domain.Kind, itemID uint) (int64, error)
	HasLiked(ctx context.Context, kind domain.Kind, userID, itemID uint) (bool, error)
}
