package mysql

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/beyond-platform/content-api/internal/core/domain"
	"github.com/beyond-platform/content-api/internal/core/service"
)

// Config captures the minimal settings required to open a MySQL pool.
type Config struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

// Connect opens a gorm handle and verifies connectivity with a ping.
// TranslateError is enabled so repositories can match gorm.ErrDuplicatedKey
// instead of driver-specific error codes.
func Connect(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("mysql open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("mysql pool: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("mysql ping: %w", err)
	}
	return db, nil
}

// Migrate creates or updates every table the platform depends on: users,
// roles, and one item + like table pair per content kind. The resulting
// schema is the durable on-disk contract backups and admin tooling rely on.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&userRow{}, &roleRow{}); err != nil {
		return fmt.Errorf("migrate users/roles: %w", err)
	}
	for _, kind := range domain.Kinds {
		t := kindTables[kind]
		if err := db.Table(t.items).AutoMigrate(&contentRow{}); err != nil {
			return fmt.Errorf("migrate %s: %w", t.items, err)
		}
		if err := db.Table(t.likes).AutoMigrate(&likeRow{}); err != nil {
			return fmt.Errorf("migrate %s: %w", t.likes, err)
		}
	}
	return nil
}

// Seed inserts the default role catalog and, when no admin account exists
// yet, the bootstrap administrator. Operators are expected to rotate the
// initial credential after first login.
func Seed(db *gorm.DB, hasher *service.PasswordHasher, adminPassword string, log zerolog.Logger) error {
	for _, name := range domain.DefaultRoles {
		res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&roleRow{Name: name})
		if res.Error != nil {
			return fmt.Errorf("seed role %s: %w", name, res.Error)
		}
	}

	var count int64
	if err := db.Model(&userRow{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	salt, digest, err := hasher.Hash(adminPassword)
	if err != nil {
		return err
	}
	admin := userRow{
		Username:     "admin",
		Salt:         salt,
		PasswordHash: digest,
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	log.Info().Msg("bootstrap admin account created; rotate its initial password")
	return nil
}
