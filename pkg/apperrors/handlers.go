package apperrors

import (
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - единый конверт ошибки на границе HTTP.
// Повторяет формат успешных ответов: {success, message, ...}.
// Поле stack заполняется только вне production.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Stack   string      `json:"stack,omitempty"`
}

// GinErrorHandler - обработчик ошибок для Gin
type GinErrorHandler struct {
	Debug bool
}

// HandleGinError переводит любую ошибку в конверт ответа.
// Внутренние детали (текст ошибки стора, стек) наружу не выходят,
// кроме режима разработки.
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	resp := ErrorResponse{
		Success: false,
		Message: appErr.Message,
		Details: appErr.Details,
	}

	if appErr.HTTPCode >= 500 {
		slog.Error("Server error", "error", appErr.Error())
		if !h.Debug {
			// В продакшене скрываем детали системных ошибок
			resp.Message = "Internal server error"
			resp.Details = nil
		}
	}

	if h.Debug {
		resp.Stack = string(debug.Stack())
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, resp)
}

var defaultHandler = &GinErrorHandler{Debug: false}

// SetDebug переключает режим вывода stack trace. Вызывается один раз
// при старте приложения, до обработки запросов.
func SetDebug(debug bool) {
	defaultHandler.Debug = debug
}

// HandleError - быстрая функция-помощник для Gin
func HandleError(c *gin.Context, err error) {
	defaultHandler.HandleGinError(c, err)
}
