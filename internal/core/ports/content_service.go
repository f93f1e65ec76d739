package ports

import (
	"context"

	"github.com/beyond-platform/content-api/internal/core/domain"
)

type CreateItemInput struct {
	Kind        domain.Kind
	Title       string
	URL         string
	Description string
}

type UpdateItemInput struct {
	Kind        domain.Kind
	ID          uint
	Title       string
	Description string
}

// ContentItemView is a catalog entry decorated for a specific viewer.
type ContentItemView struct {
	domain.ContentItem
	Likes int64 `json:"likes"`
	Liked bool  `json:"liked"`
}

// ContentService is the content catalog: admin-side CRUD plus viewer-side
// browsing and likes.
type ContentService interface {
	Create(ctx context.Context, in CreateItemInput) (*domain.ContentItem, error)
	Update(ctx context.Context, in UpdateItemInput) error
	Delete(ctx context.Context, kind domain.Kind, id uint) error
	// List returns all items of a kind decorated with like counts and the
	// viewer's own liked flag.
	List(ctx context.Context, kind domain.Kind, viewerID uint) ([]ContentItemView, error)

	Like(ctx context.Context, kind domain.Kind, userID, itemID uint) error
	Unlike(ctx context.Context, kind domain.Kind, userID, itemID uint) error
	LikeCount(ctx context.Context, kind domain.Kind, itemID uint) (int64, error)
}
