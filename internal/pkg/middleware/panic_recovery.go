package middleware

import (
	"fmt"
	"net/http"
	"runtime"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/karibustays/karibu/internal/pkg/logger"
)

// PanicRecoveryConfig holds configuration for panic recovery middleware
type PanicRecoveryConfig struct {
	StackSize       int
	DisableStackAll bool
	Logger          *logger.ZapLogger
}

// DefaultPanicRecoveryConfig returns default configuration for panic recovery
func DefaultPanicRecoveryConfig() PanicRecoveryConfig {
	return PanicRecoveryConfig{
		StackSize:       4 << 10, // 4 KB
		DisableStackAll: false,
		Logger:          nil,
	}
}

// PanicRecoveryMiddleware creates a middleware that recovers from panics
// and logs them with New Relic integration and stack traces
func PanicRecoveryMiddleware(config PanicRecoveryConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, config)
				}
			}()

			return next(c)
		}
	}
}

// PanicRecoveryWithZapMiddleware creates panic recovery middleware with Zap logger
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	config := DefaultPanicRecoveryConfig()
	config.Logger = zapLogger
	return PanicRecoveryMiddleware(config)
}

// handlePanic handles the panic recovery, logging, and response
func handlePanic(c echo.Context, r interface{}, config PanicRecoveryConfig) {
	stackTrace := string(debug.Stack())

	method := c.Request().Method
	path := c.Request().URL.Path
	clientIP := c.RealIP()
	userAgent := c.Request().UserAgent()

	requestID := c.Response().Header().Get("X-Request-ID")
	if requestID == "" {
		requestID = c.Request().Header.Get("X-Request-ID")
	}

	panicMsg := fmt.Sprintf("Panic recovered: %v", r)

	var callerInfo string
	if pc, file, line, ok := runtime.Caller(4); ok {
		fn := runtime.FuncForPC(pc)
		if fn != nil {
			callerInfo = fmt.Sprintf("%s:%d %s", file, line, fn.Name())
		} else {
			callerInfo = fmt.Sprintf("%s:%d", file, line)
		}
	}

	config.Logger.Error(panicMsg,
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", stackTrace),
		logger.String("caller", callerInfo),
		logger.String("method", method),
		logger.String("path", path),
		logger.String("client_ip", clientIP),
		logger.String("user_agent", userAgent),
		logger.String("request_id", requestID),
	)

	// Report to New Relic if a transaction is running
	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.NoticeError(fmt.Errorf("panic: %v", r))
	}

	// Respond only if nothing has been written yet
	if !c.Response().Committed {
		_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Internal server error",
		})
	}
}
