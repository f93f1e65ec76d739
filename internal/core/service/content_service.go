package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/beyond-platform/content-api/internal/core/domain"
	"github.com/beyond-platform/content-api/internal/core/ports"
)

// ContentService implements the content catalog: admin CRUD plus viewer-side
// browsing and likes. One instance serves all three kinds.
type ContentService struct {
	repo ports.ContentRepository
	log  zerolog.Logger
}

func NewContentService(repo ports.ContentRepository, log zerolog.Logger) *ContentService {
	return &ContentService{repo: repo, log: log}
}

func (s *ContentService) Create(ctx context.Context, in ports.CreateItemInput) (*domain.ContentItem, error) {
	if !in.Kind.Valid() {
		return nil, domain.ErrUnknownKind
	}
	if in.Title == "" || in.URL == "" {
		return nil, fmt.Errorf("%w: title and url are required", domain.ErrValidation)
	}

	item := &domain.ContentItem{
		Kind:        in.Kind,
		Title:       in.Title,
		URL:         in.URL,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("kind", string(created.Kind)).Uint("item_id", created.ID).Str("title", created.Title).Msg("content item created")
	return created, nil
}

func (s *ContentService) Update(ctx context.Context, in ports.UpdateItemInput) error {
	if !in.Kind.Valid() {
		return domain.ErrUnknownKind
	}
	if in.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if err := s.repo.Update(ctx, in.Kind, in.ID, in.Title, in.Description); err != nil {
		return err
	}
	s.log.Info().Str("kind", string(in.Kind)).Uint("item_id", in.ID).Msg("content item updated")
	return nil
}

func (s *ContentService) Delete(ctx context.Context, kind domain.Kind, id uint) error {
	if !kind.Valid() {
		return domain.ErrUnknownKind
	}
	if err := s.repo.Delete(ctx, kind, id); err != nil {
		return err
	}
	s.log.Info().Str("kind", string(kind)).Uint("item_id", id).Msg("content item deleted")
	return nil
}

func (s *ContentService) List(ctx context.Context, kind domain.Kind, viewerID uint) ([]ports.ContentItemView, error) {
	if !kind.Valid() {
		return nil, domain.ErrUnknownKind
	}

	items, err := s.repo.List(ctx, kind)
	if err != nil {
		return nil, err
	}

	views := make([]ports.ContentItemView, 0, len(items))
	for _, item := range items {
		view := ports.ContentItemView{ContentItem: item}

		view.Likes, err = s.repo.LikeCount(ctx, kind, item.ID)
		if err != nil {
			return nil, err
		}
		if viewerID > 0 {
			view.Liked, err = s.repo.HasLiked(ctx, kind, viewerID, item.ID)
			if err != nil {
				return nil, err
			}
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *ContentService) Like(ctx context.Context, kind domain.Kind, userID, itemID uint) error {
	if !kind.Valid() {
		return domain.ErrUnknownKind
	}
	return s.repo.Like(ctx, kind, userID, itemID)
}

func (s *ContentService) Unlike(ctx context.Context, kind domain.Kind, userID, itemID uint) error {
	if !kind.Valid() {
		return domain.ErrUnknownKind
	}
	return s.repo.Unlike(ctx, kind, userID, itemID)
}

func (s *ContentService) LikeCount(ctx context.Context, kind domain.Kind, itemID uint) (int64, error) {
	if !kind.Valid() {
		return 0, domain.ErrUnknownKind
	}
	return s.repo.LikeCount(ctx, kind, itemID)
}
