package apicontrollers

import (
	"net/http"

	"github.com/drujensen/chatkeeper/internal/api/middleware"
	"github.com/drujensen/chatkeeper/internal/domain/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ConversationController struct {
	logger      *zap.Logger
	chatService services.ChatService
}

func NewConversationController(logger *zap.Logger, chatService services.ChatService) *ConversationController {
	return &ConversationController{
		logger:      logger,
		chatService: chatService,
	}
}

// RegisterRoutes registers the conversation history routes with Echo
func (c *ConversationController) RegisterRoutes(e *echo.Group) {
	e.GET("/conversations", c.ListConversations)
	e.GET("/conversations/:id", c.GetConversation)
}

// ListConversations godoc
// @Summary List conversations
// @Description Lists the caller's conversation history, most recently updated first.
// @Tags conversation
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size (default 100)"
// @Success 200 {object} entities.ConversationListResponse "Conversations"
// @Failure 400 {object} ErrorResponse "Invalid paging parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /v1/conversations [get]
func (c *ConversationController) ListConversations(ctx echo.Context) error {
	page, limit, err := bindPage(ctx)
	if err != nil {
		return respondError(ctx, c.logger, err)
	}

	list, err := c.chatService.FindAllConversations(ctx.Request().Context(), middleware.Username(ctx), page, limit)
	if err != nil {
		return respondError(ctx, c.logger, err)
	}

	return ctx.JSON(http.StatusOK, list)
}

// GetConversation godoc
// @Summary Get a conversation by ID
// @Tags conversation
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Completion ID"
// @Success 200 {object} entities.ConversationItemResponse "Conversation"
// @Failure 404 {object} ErrorResponse "Conversation not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /v1/conversations/{id} [get]
func (c *ConversationController) GetConversation(ctx echo.Context) error {
	item, err := c.chatService.FindConversationByID(ctx.Request().Context(), middleware.Username(ctx), ctx.Param("id"))
	if err != nil {
		return respondError(ctx, c.logger, err)
	}

	return ctx.JSON(http.StatusOK, item)
}
