package services

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/drujensen/chatkeeper/internal/domain/entities"
	errors "github.com/drujensen/chatkeeper/internal/domain/errs"
	"github.com/drujensen/chatkeeper/internal/domain/events"
	"github.com/drujensen/chatkeeper/internal/domain/interfaces"
	"github.com/drujensen/chatkeeper/internal/domain/mappers"

	"go.uber.org/zap"
)

// DefaultConversationLimit is the page size of the conversation history
// listing when the caller does not pass one.
const DefaultConversationLimit = 100

// MaxConversationLimit matches the largest page a repository will return.
const MaxConversationLimit = 100

type ChatService interface {
	HandleChatCompletion(ctx context.Context, request *entities.ChatCompletionRequest, username string) (*entities.ChatCompletionResponse, error)
	Find(ctx context.Context, username string, page, limit int) ([]*entities.ChatCompletionResponse, error)
	FindByID(ctx context.Context, username, id string) (*entities.ChatCompletionResponse, error)
	FindMessages(ctx context.Context, username, id string) ([]entities.MessageResponse, error)
	FindPlotByMessage(ctx context.Context, username, id, messageID string) (map[string]any, error)
	FindAllConversations(ctx context.Context, username string, page, limit int) (*entities.ConversationListResponse, error)
	FindConversationByID(ctx context.Context, username, id string) (*entities.ConversationItemResponse, error)
}

type chatService struct {
	conversationRepo   interfaces.ConversationRepository
	agentClient        interfaces.AgentClient
	tokenCounter       interfaces.TokenCounter
	chatMapper         *mappers.ChatMapper
	conversationMapper *mappers.ConversationMapper
	agentTimeout       time.Duration
	logger             *zap.Logger
}

func NewChatService(
	conversationRepo interfaces.ConversationRepository,
	agentClient interfaces.AgentClient,
	tokenCounter interfaces.TokenCounter,
	agentTimeout time.Duration,
	logger *zap.Logger,
) *chatService {
	return &chatService{
		conversationRepo:   conversationRepo,
		agentClient:        agentClient,
		tokenCounter:       tokenCounter,
		chatMapper:         mappers.NewChatMapper(),
		conversationMapper: mappers.NewConversationMapper(),
		agentTimeout:       agentTimeout,
		logger:             logger,
	}
}

func (s *chatService) HandleChatCompletion(ctx context.Context, request *entities.ChatCompletionRequest, username string) (*entities.ChatCompletionResponse, error) {
	if err := validateChatRequest(request); err != nil {
		s.logger.Warn("Rejected chat completion request", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	conversation := s.chatMapper.ToModel(request)
	conversation.CreatedBy = username
	conversation.LastUpdatedBy = username

	isNew := true
	if request.CompletionID != "" {
		existing, err := s.conversationRepo.FindByID(ctx, request.CompletionID, entities.Projection{ExcludeMessages: true})
		if err != nil {
			s.logger.Error("Failed to look up conversation", zap.String("completion_id", request.CompletionID), zap.Error(err))
			return nil, err
		}
		if existing != nil {
			if existing.CreatedBy != username {
				return nil, errors.NotFoundErrorf("conversation not found: %s", request.CompletionID)
			}
			isNew = false
			// Earlier turns are already stored, only the newest one is appended.
			conversation.Messages = conversation.Messages[len(conversation.Messages)-1:]
		}
	}

	saved, err := s.conversationRepo.Save(ctx, conversation)
	if err != nil {
		s.logger.Error("Failed to save user message", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	if isNew {
		events.PublishConversationCreatedEvent(saved)
	}
	events.PublishConversationUpdatedEvent(saved.ConversationID, username, lastMessages(saved.Messages, len(conversation.Messages)))

	userMessage := request.LastMessage().Content
	reply, err := s.callAgent(ctx, &entities.AgentRequest{
		ConversationID: saved.ConversationID,
		Username:       username,
		Message:        userMessage,
	})
	if err != nil {
		s.logger.Error("Agent failed to process message",
			zap.String("conversation_id", saved.ConversationID),
			zap.String("agent", s.agentClient.Name()),
			zap.Error(err))
		return nil, err
	}

	assistant := entities.NewMessage(entities.RoleAssistant, reply.Message)
	assistant.Figure = reply.Figure
	saved, err = s.conversationRepo.Save(ctx, &entities.Conversation{
		ConversationID: saved.ConversationID,
		LastUpdatedBy:  username,
		Messages:       []entities.Message{*assistant},
	})
	if err != nil {
		s.logger.Error("Failed to save assistant message", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	events.PublishConversationUpdatedEvent(saved.ConversationID, username, lastMessages(saved.Messages, 1))

	response := s.chatMapper.ToSchema(saved, true)
	response.Usage = s.usage(request, reply.Message)

	s.logger.Info("Chat completion handled",
		zap.String("conversation_id", saved.ConversationID),
		zap.String("username", username),
		zap.Int("messages", len(saved.Messages)))

	return response, nil
}

func (s *chatService) callAgent(ctx context.Context, request *entities.AgentRequest) (*entities.AgentResponse, error) {
	if s.agentTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.agentTimeout)
		defer cancel()
	}

	reply, err := s.agentClient.Process(ctx, request)
	if err != nil {
		return nil, errors.AgentErrorf("agent %s failed: %v", s.agentClient.Name(), err)
	}
	if reply == nil || strings.TrimSpace(reply.Message) == "" {
		return nil, errors.AgentErrorf("agent %s returned an empty message", s.agentClient.Name())
	}
	return reply, nil
}

func (s *chatService) usage(request *entities.ChatCompletionRequest, reply string) *entities.Usage {
	if s.tokenCounter == nil {
		return nil
	}
	prompt := 0
	for _, msg := range request.Messages {
		prompt += s.tokenCounter.Count(msg.Content)
	}
	completion := s.tokenCounter.Count(reply)
	return &entities.Usage{
		PromptTokens:     prompt,
		CompletionTokens: completion,
		TotalTokens:      prompt + completion,
	}
}

func (s *chatService) Find(ctx context.Context, username string, page, limit int) ([]*entities.ChatCompletionResponse, error) {
	conversations, err := s.conversationRepo.Find(ctx, entities.ConversationFilter{CreatedBy: username}, page, limit, entities.DefaultSort)
	if err != nil {
		s.logger.Error("Failed to list chat completions", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	return s.chatMapper.ToSchemaList(conversations, true), nil
}

func (s *chatService) FindByID(ctx context.Context, username, id string) (*entities.ChatCompletionResponse, error) {
	conversation, err := s.findOwned(ctx, username, id, entities.Projection{})
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, errors.NotFoundErrorf("chat completion not found: %s", id)
	}

	return s.chatMapper.ToSchema(conversation, false), nil
}

func (s *chatService) FindMessages(ctx context.Context, username, id string) ([]entities.MessageResponse, error) {
	conversation, err := s.findOwned(ctx, username, id, entities.Projection{ExcludeMessages: true})
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return []entities.MessageResponse{}, nil
	}

	messages, err := s.conversationRepo.FindMessages(ctx, id)
	if err != nil {
		s.logger.Error("Failed to load messages", zap.String("conversation_id", id), zap.Error(err))
		return nil, err
	}

	return s.chatMapper.ToMessageResponses(messages), nil
}

func (s *chatService) FindPlotByMessage(ctx context.Context, username, id, messageID string) (map[string]any, error) {
	conversation, err := s.findOwned(ctx, username, id, entities.Projection{ExcludeMessages: true})
	if err != nil || conversation == nil {
		return nil, err
	}

	figure, err := s.conversationRepo.FindFigure(ctx, id, messageID)
	if err != nil {
		s.logger.Error("Failed to load figure",
			zap.String("conversation_id", id),
			zap.String("message_id", messageID),
			zap.Error(err))
		return nil, err
	}

	return figure, nil
}

func (s *chatService) FindAllConversations(ctx context.Context, username string, page, limit int) (*entities.ConversationListResponse, error) {
	if limit < 1 {
		limit = DefaultConversationLimit
	}
	if limit > MaxConversationLimit {
		limit = MaxConversationLimit
	}
	if page < 1 {
		page = 1
	}
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}

	filter := entities.ConversationFilter{CreatedBy: username}
	sort := entities.SortOrder{Field: entities.SortByLastUpdatedDate, Descending: true}

	conversations, err := s.conversationRepo.Find(ctx, filter, page, limit, sort)
	if err != nil {
		s.logger.Error("Failed to list conversations", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	total, err := s.conversationRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to count conversations", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	return &entities.ConversationListResponse{
		Items:  s.conversationMapper.ToSchemaList(conversations),
		Total:  total,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}, nil
}

func (s *chatService) FindConversationByID(ctx context.Context, username, id string) (*entities.ConversationItemResponse, error) {
	conversation, err := s.findOwned(ctx, username, id, entities.Projection{ExcludeMessages: true})
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, errors.NotFoundErrorf("conversation not found: %s", id)
	}

	item := s.conversationMapper.ToSchema(conversation)
	return &item, nil
}

// findOwned loads a conversation and hides it when it belongs to someone else.
func (s *chatService) findOwned(ctx context.Context, username, id string, projection entities.Projection) (*entities.Conversation, error) {
	if id == "" {
		return nil, errors.ValidationErrorf("completion id is required")
	}

	conversation, err := s.conversationRepo.FindByID(ctx, id, projection)
	if err != nil {
		s.logger.Error("Failed to load conversation", zap.String("conversation_id", id), zap.Error(err))
		return nil, err
	}
	if conversation == nil || conversation.CreatedBy != username {
		return nil, nil
	}
	return conversation, nil
}

func validateChatRequest(request *entities.ChatCompletionRequest) error {
	if request == nil || len(request.Messages) == 0 {
		return errors.ValidationErrorf("messages are required")
	}
	if request.Stream {
		return errors.ValidationErrorf("streaming is not supported")
	}
	for i, msg := range request.Messages {
		if !entities.ValidRole(msg.Role) {
			return errors.ValidationErrorf("message %d has an invalid role: %q", i, msg.Role)
		}
	}
	last := request.LastMessage()
	if last.Role != entities.RoleUser {
		return errors.ValidationErrorf("the last message must have role %q", entities.RoleUser)
	}
	if strings.TrimSpace(last.Content) == "" {
		return errors.ValidationErrorf("the last message must have content")
	}
	return nil
}

func lastMessages(messages []entities.Message, n int) []entities.Message {
	if n > len(messages) {
		n = len(messages)
	}
	return messages[len(messages)-n:]
}

var _ ChatService = (*chatService)(nil)
