package handlers

import (
	"net/http"

	"devstudio_backend/internal/middleware"
	"devstudio_backend/internal/services"
	"devstudio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

const refreshTokenCookie = "refreshToken"

// CookieConfig - параметры auth cookie. Secure включается в production.
type CookieConfig struct {
	Secure        bool
	AccessMaxAge  int // секунды
	RefreshMaxAge int // секунды
}

// AuthHandler - HTTP-слой жизненного цикла учетных данных.
// Токены уходят и в теле ответа, и в HTTPOnly cookie.
type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	cookies     CookieConfig
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, cookies CookieConfig) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		cookies:     cookies,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Created(c, "Registration successful. Please check your email for the verification code.", user)
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.VerifyEmail(c.Request.Context(), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "Email verified successfully", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setAuthCookies(c, resp.AccessToken, resp.RefreshToken)
	OK(c, "Logged in successfully", resp)
}

// RefreshToken - обмен refresh токена на новую пару. Токен берется из
// cookie, при его отсутствии - из тела запроса.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshTokenCookie)
	if err != nil || refreshToken == "" {
		var req struct {
			RefreshToken string `json:"refresh_token" binding:"required"`
		}
		if !h.BindAndValidate_JSON(c, &req) {
			return
		}
		refreshToken = req.RefreshToken
	}

	resp, err := h.authService.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setAuthCookies(c, resp.AccessToken, resp.RefreshToken)
	OK(c, "Token refreshed", resp)
}

// Logout - выход. Состояние на сервере не хранится, достаточно
// стереть cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearAuthCookies(c)
	OK(c, "Logged out successfully", nil)
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	OK(c, "Password reset link sent to email", nil)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	token := c.Param("token")

	var req dto.ResetPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), token, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.clearAuthCookies(c)
	OK(c, "Password has been reset. Please log in with your new password.", nil)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.ChangePassword(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setAuthCookies(c, resp.AccessToken, resp.RefreshToken)
	OK(c, "Password updated successfully", resp)
}

func (h *AuthHandler) setAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AccessTokenCookie, accessToken, h.cookies.AccessMaxAge, "/", "", h.cookies.Secure, true)
	c.SetCookie(refreshTokenCookie, refreshToken, h.cookies.RefreshMaxAge, "/", "", h.cookies.Secure, true)
}

func (h *AuthHandler) clearAuthCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", h.cookies.Secure, true)
	c.SetCookie(refreshTokenCookie, "", -1, "/", "", h.cookies.Secure, true)
}
