package api

import (
	"net/http"

	apicontrollers "github.com/drujensen/chatkeeper/internal/api/controllers"
	apimiddleware "github.com/drujensen/chatkeeper/internal/api/middleware"
	"github.com/drujensen/chatkeeper/internal/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "github.com/drujensen/chatkeeper/docs" // Import the generated docs package
)

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	ChatService services.ChatService
	Verifier    apimiddleware.KeyVerifier
	Auth        apimiddleware.AuthConfig
	// DB is pinged by the health endpoint; nil for the embedded store.
	DB     apicontrollers.Pinger
	Logger *zap.Logger
}

// NewServer wires middleware, management routes, swagger and the
// authenticated /v1 API onto a new echo instance.
func NewServer(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(apimiddleware.RequestLogger(deps.Logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Management Routes
	apicontrollers.NewManagementController(deps.Logger, deps.DB).RegisterRoutes(e)

	// Swagger route
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusTemporaryRedirect, "/swagger/index.html")
	})

	// API Routes
	v1 := e.Group("/v1", apimiddleware.APIKeyAuth(deps.Verifier, deps.Auth, deps.Logger))
	apicontrollers.NewChatController(deps.Logger, deps.ChatService).RegisterRoutes(v1)
	apicontrollers.NewConversationController(deps.Logger, deps.ChatService).RegisterRoutes(v1)

	return e
}
