package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"devstudio_backend/internal/config"
	"devstudio_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testServer struct {
	db     *gorm.DB
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Server.PublicURL = "http://localhost:4000"
	cfg.JWT.AccessSecret = "test-access"
	cfg.JWT.RefreshSecret = "test-refresh"
	cfg.JWT.AccessTTLMin = 15
	cfg.JWT.RefreshTTLDays = 30
	cfg.Auth.BcryptCost = bcrypt.MinCost

	return &testServer{db: db, router: SetupRouter(cfg, db)}
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

// verificationCode читает код подтверждения напрямую из БД: в тестах
// почта отключена и письмо никуда не уходит.
func (ts *testServer) verificationCode(t *testing.T, email string) string {
	t.Helper()
	var user models.User
	require.NoError(t, ts.db.First(&user, "email = ?", email).Error)
	require.NotEmpty(t, user.VerificationCode)
	return user.VerificationCode
}

func (ts *testServer) seedAdmin(t *testing.T) []*http.Cookie {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin_password1"), bcrypt.MinCost)
	require.NoError(t, err)
	admin := &models.User{
		Name:         "Administrator",
		Email:        "admin@test.com",
		PasswordHash: string(hash),
		Role:         models.UserRoleAdmin,
		IsActive:     true,
		IsVerified:   true,
	}
	require.NoError(t, ts.db.Create(admin).Error)

	w := ts.do(t, http.MethodPost, "/api/v1/users/login", map[string]string{
		"email":    "admin@test.com",
		"password": "admin_password1",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Result().Cookies()
}

func TestAuthFlow_RegisterVerifyLoginProfile(t *testing.T) {
	ts := newTestServer(t)

	// Регистрация
	w := ts.do(t, http.MethodPost, "/api/v1/users/register", map[string]string{
		"name":             "Alice",
		"email":            "alice@test.com",
		"password":         "super_password123",
		"password_confirm": "super_password123",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Registration successful")
	assert.NotContains(t, w.Body.String(), "password", "Хеш пароля не должен утекать в ответ")

	// До верификации вход выдает токены, но профиль закрыт
	w = ts.do(t, http.MethodPost, "/api/v1/users/login", map[string]string{
		"email":    "alice@test.com",
		"password": "super_password123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	unverifiedCookies := w.Result().Cookies()
	assert.NotEmpty(t, unverifiedCookies)

	w = ts.do(t, http.MethodGet, "/api/v1/users/profile", nil, unverifiedCookies)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "User not verified")

	// Верификация незарегистрированного email - 404
	w = ts.do(t, http.MethodPost, "/api/v1/users/verify-email", map[string]string{
		"email": "ghost@test.com",
		"code":  "123456",
	}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Верификация кодом
	code := ts.verificationCode(t, "alice@test.com")
	w = ts.do(t, http.MethodPost, "/api/v1/users/verify-email", map[string]string{
		"email": "alice@test.com",
		"code":  code,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Вход и профиль через cookie
	w = ts.do(t, http.MethodPost, "/api/v1/users/login", map[string]string{
		"email":    "alice@test.com",
		"password": "super_password123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()

	var hasAccess, hasRefresh bool
	for _, c := range cookies {
		switch c.Name {
		case "accessToken":
			hasAccess = true
			assert.True(t, c.HttpOnly, "accessToken cookie должна быть HTTPOnly")
		case "refreshToken":
			hasRefresh = true
			assert.True(t, c.HttpOnly, "refreshToken cookie должна быть HTTPOnly")
		}
	}
	assert.True(t, hasAccess)
	assert.True(t, hasRefresh)

	w = ts.do(t, http.MethodGet, "/api/v1/users/profile", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@test.com")
}

func TestAuthFlow_ValidationErrors(t *testing.T) {
	ts := newTestServer(t)

	// Несовпадающие пароли
	w := ts.do(t, http.MethodPost, "/api/v1/users/register", map[string]string{
		"name":             "Alice",
		"email":            "alice@test.com",
		"password":         "super_password123",
		"password_confirm": "different_password",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Невалидный email
	w = ts.do(t, http.MethodPost, "/api/v1/users/register", map[string]string{
		"name":             "Alice",
		"email":            "not-an-email",
		"password":         "super_password123",
		"password_confirm": "super_password123",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Короткий пароль
	w = ts.do(t, http.MethodPost, "/api/v1/users/register", map[string]string{
		"name":             "Alice",
		"email":            "alice@test.com",
		"password":         "short",
		"password_confirm": "short",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Имя короче трех символов
	w = ts.do(t, http.MethodPost, "/api/v1/users/register", map[string]string{
		"name":             "Al",
		"email":            "al@test.com",
		"password":         "super_password123",
		"password_confirm": "super_password123",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthFlow_RefreshAndLogout(t *testing.T) {
	ts := newTestServer(t)
	cookies := ts.seedAdmin(t)

	w := ts.do(t, http.MethodPost, "/api/v1/users/refresh-token", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "access_token")

	w = ts.do(t, http.MethodPost, "/api/v1/users/logout", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		assert.Less(t, c.MaxAge, 0, "Logout должен стирать cookie %s", c.Name)
	}
}

func TestRoleGates(t *testing.T) {
	ts := newTestServer(t)
	adminCookies := ts.seedAdmin(t)

	// Обычный верифицированный пользователь
	hash, err := bcrypt.GenerateFromPassword([]byte("user_password1"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, ts.db.Create(&models.User{
		Name:         "Plain User",
		Email:        "user@test.com",
		PasswordHash: string(hash),
		Role:         models.UserRoleUser,
		IsActive:     true,
		IsVerified:   true,
	}).Error)

	w := ts.do(t, http.MethodPost, "/api/v1/users/login", map[string]string{
		"email":    "user@test.com",
		"password": "user_password1",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	userCookies := w.Result().Cookies()

	// Список пользователей: только админ
	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/v1/users", nil, adminCookies).Code)
	assert.Equal(t, http.StatusForbidden, ts.do(t, http.MethodGet, "/api/v1/users", nil, userCookies).Code)
	assert.Equal(t, http.StatusUnauthorized, ts.do(t, http.MethodGet, "/api/v1/users", nil, nil).Code)
}

func TestPublicRoutes(t *testing.T) {
	ts := newTestServer(t)

	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/health", nil, nil).Code)
	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/v1/reviews", nil, nil).Code)
	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/v1/services", nil, nil).Code)
	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/v1/team", nil, nil).Code)

	// Контент главной еще не создан
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/api/v1/home", nil, nil).Code)

	// Публичная форма обратной связи
	w := ts.do(t, http.MethodPost, "/api/v1/contacts", map[string]string{
		"name":    "Visitor",
		"email":   "visitor@test.com",
		"subject": "Question",
		"message": "I would like to discuss a project with you.",
	}, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestProjectLifecycle(t *testing.T) {
	ts := newTestServer(t)
	adminCookies := ts.seedAdmin(t)

	// Клиент подает заявку
	hash, err := bcrypt.GenerateFromPassword([]byte("user_password1"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, ts.db.Create(&models.User{
		Name:         "Client",
		Email:        "client@test.com",
		PasswordHash: string(hash),
		Role:         models.UserRoleUser,
		IsActive:     true,
		IsVerified:   true,
	}).Error)

	w := ts.do(t, http.MethodPost, "/api/v1/users/login", map[string]string{
		"email":    "client@test.com",
		"password": "user_password1",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	clientCookies := w.Result().Cookies()

	w = ts.do(t, http.MethodPost, "/api/v1/projects", map[string]interface{}{
		"project_name":    "Corporate site",
		"project_type":    "website",
		"budget_range":    "1k_5k",
		"project_details": "We need a small corporate web site with a blog.",
	}, clientCookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "pending", created.Data.Status)
	projectID := created.Data.ID

	// Клиент видит свою заявку, админ двигает статус
	w = ts.do(t, http.MethodGet, "/api/v1/projects/"+projectID, nil, clientCookies)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodPatch, "/api/v1/projects/"+projectID+"/status", map[string]string{"status": "in_review"}, adminCookies)
	require.Equal(t, http.StatusOK, w.Code)

	// Недопустимый переход отклоняется
	w = ts.do(t, http.MethodPatch, "/api/v1/projects/"+projectID+"/status", map[string]string{"status": "completed"}, adminCookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Клиент не может менять статус
	w = ts.do(t, http.MethodPatch, "/api/v1/projects/"+projectID+"/status", map[string]string{"status": "approved"}, clientCookies)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
