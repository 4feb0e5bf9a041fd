package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"devstudio_backend/internal/auth"
	"devstudio_backend/internal/models"
	"devstudio_backend/internal/repositories"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

// fakeEmailProvider записывает отправленные письма вместо доставки.
type fakeEmailProvider struct {
	mu sync.Mutex

	verificationCodes []string
	resetURLs         []string
	changedNotices    int

	failNext error
}

func (f *fakeEmailProvider) SendVerificationCode(ctx context.Context, to, name, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}
	f.verificationCodes = append(f.verificationCodes, code)
	return nil
}

func (f *fakeEmailProvider) SendPasswordReset(ctx context.Context, to, name, resetURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}
	f.resetURLs = append(f.resetURLs, resetURL)
	return nil
}

func (f *fakeEmailProvider) SendPasswordChanged(ctx context.Context, to, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.changedNotices++
	return nil
}

func (f *fakeEmailProvider) lastVerificationCode() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.verificationCodes) == 0 {
		return ""
	}
	return f.verificationCodes[len(f.verificationCodes)-1]
}

func (f *fakeEmailProvider) lastResetURL() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.resetURLs) == 0 {
		return ""
	}
	return f.resetURLs[len(f.resetURLs)-1]
}

type authFixture struct {
	db       *gorm.DB
	service  *AuthServiceImpl
	userRepo repositories.UserRepository
	emails   *fakeEmailProvider
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	db := newTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	emails := &fakeEmailProvider{}

	service := NewAuthService(
		userRepo,
		auth.NewHasher(bcrypt.MinCost),
		auth.NewTokenCodec("test-access", "test-refresh", 15*time.Minute, 30*24*time.Hour),
		emails,
		"http://localhost:4000",
	)

	return &authFixture{
		db:       db,
		service:  service,
		userRepo: userRepo,
		emails:   emails,
	}
}
