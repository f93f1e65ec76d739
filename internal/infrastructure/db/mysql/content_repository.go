package mysql

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/beyond-platform/content-api/internal/core/domain"
)

// kindTables maps each content kind to its item and like tables. The three
// kinds share one schema; only the table names differ.
var kindTables = map[domain.Kind]struct{ items, likes string }{
	domain.KindVideo:   {items: "videos", likes: "video_likes"},
	domain.KindPodcast: {items: "podcasts", likes: "podcast_likes"},
	domain.KindSummit:  {items: "summits", likes: "summit_likes"},
}

type contentRow struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:255;not null"`
	URL         string `gorm:"size:1024;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
}

// likeRow's composite primary key is the unique-pair invariant: one like per
// (user, item), enforced by the database under concurrent duplicate calls.
type likeRow struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false"`
	ItemID uint `gorm:"primaryKey;autoIncrement:false"`
}

// ContentRepository persists catalog items and like relations for all kinds.
type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

func tablesFor(kind domain.Kind) (items, likes string, err error) {
	t, ok := kindTables[kind]
	if !ok {
		return "", "", domain.ErrUnknownKind
	}
	return t.items, t.likes, nil
}

func (r *ContentRepository) Create(ctx context.Context, item *domain.ContentItem) (*domain.ContentItem, error) {
	items, _, err := tablesFor(item.Kind)
	if err != nil {
		return nil, err
	}

	row := contentRow{
		Title:       item.Title,
		URL:         item.URL,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Table(items).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("insert %s: %w", items, err)
	}

	created := *item
	created.ID = row.ID
	return &created, nil
}

func (r *ContentRepository) Update(ctx context.Context, kind domain.Kind, id uint, title, description string) error {
	items, _, err := tablesFor(kind)
	if err != nil {
		return err
	}
	tx := r.db.WithContext(ctx)

	var count int64
	if err := tx.Table(items).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("update %s: %w", items, err)
	}
	if count == 0 {
		return domain.ErrItemNotFound
	}

	err = tx.Table(items).Where("id = ?", id).Updates(map[string]any{
		"title":       title,
		"description": description,
	}).Error
	if err != nil {
		return fmt.Errorf("update %s: %w", items, err)
	}
	return nil
}

func (r *ContentRepository) Delete(ctx context.Context, kind domain.Kind, id uint) error {
	items, likes, err := tablesFor(kind)
	if err != nil {
		return err
	}
	tx := r.db.WithContext(ctx)

	if err := tx.Table(items).Where("id = ?", id).Delete(&contentRow{}).Error; err != nil {
		return fmt.Errorf("delete %s: %w", items, err)
	}
	// Likes carry no foreign key; sweep them here.
	if err := tx.Table(likes).Where("item_id = ?", id).Delete(&likeRow{}).Error; err != nil {
		return fmt.Errorf("delete %s: %w", likes, err)
	}
	return nil
}

func (r *ContentRepository) List(ctx context.Context, kind domain.Kind) ([]domain.ContentItem, error) {
	items, _, err := tablesFor(kind)
	if err != nil {
		return nil, err
	}

	var rows []contentRow
	if err := r.db.WithContext(ctx).Table(items).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", items, err)
	}

	out := make([]domain.ContentItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ContentItem{
			ID:          row.ID,
			Kind:        kind,
			Title:       row.Title,
			URL:         row.URL,
			Description: row.Description,
			CreatedAt:   row.CreatedAt,
		})
	}
	return out, nil
}

func (r *ContentRepository) Like(ctx context.Context, kind domain.Kind, userID, itemID uint) error {
	_, likes, err := tablesFor(kind)
	if err != nil {
		return err
	}
	err = r.db.WithContext(ctx).
		Table(likes).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&likeRow{UserID: userID, ItemID: itemID}).Error
	if err != nil {
		return fmt.Errorf("insert like: %w", err)
	}
	return nil
}

func (r *ContentRepository) Unlike(ctx context.Context, kind domain.Kind, userID, itemID uint) error {
	_, likes, err := tablesFor(kind)
	if err != nil {
		return err
	}
	err = r.db.WithContext(ctx).
		Table(likes).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&likeRow{}).Error
	if err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	return nil
}

func (r *ContentRepository) LikeCount(ctx context.Context, kind domain.Kind, itemID uint) (int64, error) {
	_, likes, err := tablesFor(kind)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := r.db.WithContext(ctx).Table(likes).Where("item_id = ?", itemID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return count, nil
}

func (r *ContentRepository) HasLiked(ctx context.Context, kind domain.Kind, userID, itemID uint) (bool, error) {
	_, likes, err := tablesFor(kind)
	if err != nil {
		return false, err
	}
	var count int64
	err = r.db.WithContext(ctx).
		Table(likes).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check like: %w", err)
	}
	return count > 0, nil
}
