package defaults

import (
	"context"

	"github.com/drujensen/chatkeeper/internal/domain/entities"
	"github.com/drujensen/chatkeeper/internal/domain/interfaces"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// DefaultConversations returns the sample history loaded into an empty
// store for the given owner.
func DefaultConversations(owner string) []*entities.Conversation {
	return []*entities.Conversation{
		{
			ConversationID: "8B0F6A52-4E1D-4C5A-9D0B-0C8B1F7E2A11",
			Model:          "gpt-4o",
			CreatedBy:      owner,
			Messages: []entities.Message{
				{Role: entities.RoleSystem, Content: "You are a helpful data analyst."},
				{Role: entities.RoleUser, Content: "Show me monthly sales for the last quarter"},
				{
					Role:    entities.RoleAssistant,
					Content: "Here is the monthly sales breakdown for the last quarter.",
					Figure: map[string]any{
						"data": []any{
							map[string]any{
								"type": "bar",
								"x":    []any{"Jul", "Aug", "Sep"},
								"y":    []any{12500, 14200, 13100},
							},
						},
						"layout": map[string]any{"title": "Monthly sales"},
					},
				},
			},
		},
		{
			ConversationID: "3C6E9D27-71B4-4F0E-8A55-6D2F4B9A0C38",
			Model:          "gpt-4o",
			CreatedBy:      owner,
			IsStarred:      true,
			Messages: []entities.Message{
				{Role: entities.RoleUser, Content: "How many active customers do we have?"},
				{Role: entities.RoleAssistant, Content: "There are 1,284 active customers this month."},
			},
		},
	}
}

// SeedConversations loads DefaultConversations when owner has no stored
// conversations yet.
func SeedConversations(ctx context.Context, repo interfaces.ConversationRepository, owner string, logger *zap.Logger) error {
	total, err := repo.Count(ctx, entities.ConversationFilter{CreatedBy: owner})
	if err != nil {
		logger.Error("Failed to count conversations", zap.Error(err))
		return err
	}
	if total > 0 {
		logger.Debug("Skipping seed data, conversations exist", zap.String("owner", owner), zap.String("total", humanize.Comma(total)))
		return nil
	}

	seeded := 0
	for _, conversation := range DefaultConversations(owner) {
		conversation.LastUpdatedBy = owner
		if _, err := repo.Save(ctx, conversation); err != nil {
			logger.Error("Failed to create default conversation", zap.String("conversation_id", conversation.ConversationID), zap.Error(err))
			return err
		}
		seeded += len(conversation.Messages)
	}
	logger.Info("Initialized conversations with default data",
		zap.String("owner", owner),
		zap.String("messages", humanize.Comma(int64(seeded))))

	return nil
}
