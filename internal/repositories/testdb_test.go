package repositories

import (
	"testing"

	"devstudio_backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB поднимает чистую in-memory SQLite БД со всей схемой.
// TranslateError включен, как в продакшен-подключении: уникальные
// индексы должны приходить как gorm.ErrDuplicatedKey.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("не удалось открыть тестовую БД: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Review{},
		&models.Service{},
		&models.TeamMember{},
		&models.Contact{},
		&models.HomePageHero{},
	)
	if err != nil {
		t.Fatalf("не удалось выполнить миграции: %v", err)
	}

	return db
}
