package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/karibustays/karibu/internal/pkg/models"
	"github.com/karibustays/karibu/internal/utils"
)

const (
	// APIKeyHeader is the header carrying the service API key
	APIKeyHeader = "X-API-Key"
)

// APIKeyMiddleware guards service-to-service endpoints with a shared key.
// The key is injected through config rather than read from a package-level map.
type APIKeyMiddleware struct {
	cfg *models.APIKeyConfig
}

// NewAPIKeyMiddleware creates a new API key middleware
func NewAPIKeyMiddleware(cfg *models.APIKeyConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{cfg: cfg}
}

// Handler validates the API key on admin/maintenance endpoints
func (m *APIKeyMiddleware) Handler() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			if m.cfg.AdminKey == "" ||
				subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.cfg.AdminKey)) != 1 {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
