package apicontrollers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Version is overridden at build time with -ldflags "-X ...".
var Version = "0.1.0"

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

type VersionResponse struct {
	Version string `json:"version" example:"0.1.0"`
}

type ManagementController struct {
	logger *zap.Logger
	db     Pinger
}

// NewManagementController builds the management endpoints. db may be nil
// when the embedded store is used.
func NewManagementController(logger *zap.Logger, db Pinger) *ManagementController {
	return &ManagementController{
		logger: logger,
		db:     db,
	}
}

// RegisterRoutes registers the unauthenticated management routes with Echo
func (c *ManagementController) RegisterRoutes(e *echo.Echo) {
	e.GET("/management/health", c.Health)
	e.GET("/version", c.Version)
	e.GET("/management/version", c.Version)
}

// Health godoc
// @Summary Health check
// @Description Returns 200 while the service and its database are reachable.
// @Tags management
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /management/health [get]
func (c *ManagementController) Health(ctx echo.Context) error {
	if c.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request().Context(), 2*time.Second)
		defer cancel()
		if err := c.db.Ping(pingCtx); err != nil {
			c.logger.Warn("Health check failed", zap.Error(err))
			return ctx.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		}
	}
	return ctx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Version godoc
// @Summary Service version
// @Tags management
// @Produce json
// @Success 200 {object} VersionResponse
// @Router /version [get]
// @Router /management/version [get]
func (c *ManagementController) Version(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, VersionResponse{Version: Version})
}
