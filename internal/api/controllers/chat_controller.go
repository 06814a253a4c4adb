package apicontrollers

import (
	"net/http"

	"github.com/drujensen/chatkeeper/internal/api/middleware"
	"github.com/drujensen/chatkeeper/internal/domain/entities"
	"github.com/drujensen/chatkeeper/internal/domain/errs"
	"github.com/drujensen/chatkeeper/internal/domain/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ChatController struct {
	logger      *zap.Logger
	chatService services.ChatService
}

func NewChatController(logger *zap.Logger, chatService services.ChatService) *ChatController {
	return &ChatController{
		logger:      logger,
		chatService: chatService,
	}
}

// RegisterRoutes registers all chat completion routes with Echo
func (c *ChatController) RegisterRoutes(e *echo.Group) {
	e.POST("/chat/completions", c.CreateChatCompletion)
	e.GET("/chat/completions", c.ListChatCompletions)
	e.GET("/chat/completions/:id", c.GetChatCompletion)
	e.GET("/chat/completions/:id/messages", c.ListMessages)
	e.GET("/chat/completions/:id/messages/:message_id/plot", c.GetPlot)
}

// CreateChatCompletion godoc
// @Summary Create or continue a chat completion
// @Description Starts a new conversation from the given messages, or continues the conversation named by completion_id with the last message.
// @Tags chat
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body entities.ChatCompletionRequest true "Chat completion request"
// @Success 200 {object} entities.ChatCompletionResponse "Assistant reply"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Invalid API key"
// @Failure 404 {object} ErrorResponse "Conversation not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /v1/chat/completions [post]
func (c *ChatController) CreateChatCompletion(ctx echo.Context) error {
	var request entities.ChatCompletionRequest
	if err := ctx.Bind(&request); err != nil {
		return c.handleError(ctx, errs.ValidationErrorf("invalid request body"))
	}

	response, err := c.chatService.HandleChatCompletion(ctx.Request().Context(), &request, middleware.Username(ctx))
	if err != nil {
		return c.handleError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListChatCompletions godoc
// @Summary List chat completions
// @Description Lists the caller's conversations, newest first, each with its last message.
// @Tags chat
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {array} entities.ChatCompletionResponse "Chat completions"
// @Failure 400 {object} ErrorResponse "Invalid paging parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /v1/chat/completions [get]
// @Deprecated
func (c *ChatController) ListChatCompletions(ctx echo.Context) error {
	page, limit, err := bindPage(ctx)
	if err != nil {
		return c.handleError(ctx, err)
	}

	responses, err := c.chatService.Find(ctx.Request().Context(), middleware.Username(ctx), page, limit)
	if err != nil {
		return c.handleError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, responses)
}

// GetChatCompletion godoc
// @Summary Get a chat completion by ID
// @Description Returns the whole conversation, one choice per message.
// @Tags chat
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Completion ID"
// @Success 200 {object} entities.ChatCompletionResponse "Chat completion"
// @Failure 404 {object} ErrorResponse "Chat completion not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /v1/chat/completions/{id} [get]
func (c *ChatController) GetChatCompletion(ctx echo.Context) error {
	response, err := c.chatService.FindByID(ctx.Request().Context(), middleware.Username(ctx), ctx.Param("id"))
	if err != nil {
		return c.handleError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListMessages godoc
// @Summary List the messages of a chat completion
// @Tags chat
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Completion ID"
// @Success 200 {array} entities.MessageResponse "Messages, empty when the completion does not exist"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /v1/chat/completions/{id}/messages [get]
// @Deprecated
func (c *ChatController) ListMessages(ctx echo.Context) error {
	messages, err := c.chatService.FindMessages(ctx.Request().Context(), middleware.Username(ctx), ctx.Param("id"))
	if err != nil {
		return c.handleError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messages)
}

// GetPlot godoc
// @Summary Get the figure attached to a message
// @Description Returns the plot figure of one message, or null when the message has none.
// @Tags chat
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Completion ID"
// @Param message_id path string true "Message ID"
// @Success 200 {object} map[string]interface{} "Figure"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /v1/chat/completions/{id}/messages/{message_id}/plot [get]
func (c *ChatController) GetPlot(ctx echo.Context) error {
	figure, err := c.chatService.FindPlotByMessage(ctx.Request().Context(), middleware.Username(ctx), ctx.Param("id"), ctx.Param("message_id"))
	if err != nil {
		return c.handleError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, figure)
}

func (c *ChatController) handleError(ctx echo.Context, err error) error {
	return respondError(ctx, c.logger, err)
}
