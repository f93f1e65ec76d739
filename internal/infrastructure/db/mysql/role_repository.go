package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/beyond-platform/content-api/internal/core/domain"
)

// RoleRepository persists the role catalog in the roles table.
//
// User.Role references roles by name without a hard foreign key; renaming or
// deleting a role does not cascade. Deletion is refused while users still
// carry the role, which keeps the catalog consistent in practice.
type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

type roleRow struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:64;uniqueIndex;not null"`
}

func (roleRow) TableName() string { return "roles" }

func (r *RoleRepository) Create(ctx context.Context, name string) (*domain.Role, error) {
	row := roleRow{Name: name}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrRoleExists
		}
		return nil, fmt.Errorf("insert role: %w", err)
	}
	return &domain.Role{ID: row.ID, Name: row.Name}, nil
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	var row roleRow
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return &domain.Role{ID: row.ID, Name: row.Name}, nil
}

func (r *RoleRepository) Rename(ctx context.Context, id uint, name string) error {
	tx := r.db.WithContext(ctx)

	var row roleRow
	if err := tx.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRoleNotFound
		}
		return fmt.Errorf("find role: %w", err)
	}

	if err := tx.Model(&roleRow{}).Where("id = ?", id).Update("name", name).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrRoleExists
		}
		return fmt.Errorf("rename role: %w", err)
	}
	return nil
}

func (r *RoleRepository) Delete(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx)

	var row roleRow
	if err := tx.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRoleNotFound
		}
		return fmt.Errorf("find role: %w", err)
	}

	var assigned int64
	if err := tx.Model(&userRow{}).Where("role = ?", row.Name).Count(&assigned).Error; err != nil {
		return fmt.Errorf("count role users: %w", err)
	}
	if assigned > 0 {
		return domain.ErrRoleInUse
	}

	if err := tx.Delete(&roleRow{}, id).Error; err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}

func (r *RoleRepository) List(ctx context.Context) ([]domain.Role, error) {
	var rows []roleRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	roles := make([]domain.Role, 0, len(rows))
	for _, row := range rows {
		roles = append(roles, domain.Role{ID: row.ID, Name: row.Name})
	}
	return roles, nil
}
