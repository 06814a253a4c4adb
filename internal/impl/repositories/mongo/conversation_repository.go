package repositories_mongo

import (
	"context"
	"time"

	"github.com/drujensen/chatkeeper/internal/domain/entities"
	"github.com/drujensen/chatkeeper/internal/domain/errs"
	"github.com/drujensen/chatkeeper/internal/domain/interfaces"
	"github.com/drujensen/chatkeeper/internal/impl/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// CollectionName is the collection holding one document per conversation.
const CollectionName = "chat_completion"

type MongoConversationRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func NewMongoConversationRepository(collection *mongo.Collection, logger *zap.Logger) *MongoConversationRepository {
	return &MongoConversationRepository{
		collection: collection,
		logger:     logger,
	}
}

// EnsureIndexes creates the unique index on conversation_id that makes a
// second concurrent create for the same identifier fail, plus the index
// backing owner scoped listings.
func (r *MongoConversationRepository) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "conversation_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("conversation_id_unique"),
		},
		{
			Keys:    bson.D{{Key: "created_by", Value: 1}, {Key: "created_date", Value: -1}},
			Options: options.Index().SetName("created_by_created_date"),
		},
	}

	names, err := r.collection.Indexes().CreateMany(ctx, models)
	if err != nil {
		return errs.InternalErrorf("failed to create indexes: %v", err)
	}
	r.logger.Info("Ensured conversation indexes", zap.Strings("indexes", names))
	return nil
}

func (r *MongoConversationRepository) Save(ctx context.Context, conversation *entities.Conversation) (*entities.Conversation, error) {
	if conversation == nil {
		return nil, errs.ValidationErrorf("conversation is required")
	}

	if conversation.ConversationID != "" {
		existing, err := r.FindByID(ctx, conversation.ConversationID, entities.Projection{ExcludeMessages: true})
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return r.update(ctx, conversation)
		}
	}

	return r.create(ctx, conversation)
}

func (r *MongoConversationRepository) create(ctx context.Context, conversation *entities.Conversation) (*entities.Conversation, error) {
	record := conversation.Clone()
	record.ID = primitive.NilObjectID
	repositories.PrepareCreate(record, entities.Timestamp())

	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errs.DuplicateErrorf("conversation already exists: %s", record.ConversationID)
		}
		r.logger.Error("Failed to insert conversation", zap.String("conversation_id", record.ConversationID), zap.Error(err))
		return nil, errs.InternalErrorf("failed to create conversation: %v", err)
	}

	return r.reload(ctx, record.ConversationID)
}

func (r *MongoConversationRepository) update(ctx context.Context, conversation *entities.Conversation) (*entities.Conversation, error) {
	update, err := buildUpdate(conversation, entities.Timestamp())
	if err != nil {
		return nil, err
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"conversation_id": conversation.ConversationID}, update)
	if err != nil {
		r.logger.Error("Failed to update conversation", zap.String("conversation_id", conversation.ConversationID), zap.Error(err))
		return nil, errs.InternalErrorf("failed to update conversation: %v", err)
	}
	if result.MatchedCount == 0 {
		return nil, errs.NotFoundErrorf("conversation not found: %s", conversation.ConversationID)
	}

	return r.reload(ctx, conversation.ConversationID)
}

func (r *MongoConversationRepository) reload(ctx context.Context, conversationID string) (*entities.Conversation, error) {
	saved, err := r.FindByID(ctx, conversationID, entities.Projection{})
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, errs.NotFoundErrorf("conversation not found after save: %s", conversationID)
	}
	return saved, nil
}

// buildUpdate turns a conversation into a $set of its updatable, non-zero
// fields plus a $push of its messages.
func buildUpdate(conversation *entities.Conversation, now time.Time) (bson.M, error) {
	raw, err := bson.Marshal(conversation)
	if err != nil {
		return nil, errs.InternalErrorf("failed to marshal conversation: %v", err)
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, errs.InternalErrorf("failed to unmarshal conversation: %v", err)
	}

	for _, field := range repositories.NonUpdatableFields {
		delete(fields, field)
	}
	delete(fields, "messages")
	for key, value := range fields {
		if isZeroValue(value) {
			delete(fields, key)
		}
	}
	fields["last_updated_date"] = now

	update := bson.M{"$set": fields}

	messages := conversation.Clone().Messages
	if len(messages) > 0 {
		repositories.StampMessages(messages, now)
		update["$push"] = bson.M{"messages": bson.M{"$each": messages}}
	}

	return update, nil
}

func isZeroValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case primitive.DateTime:
		return v.Time().IsZero()
	}
	return false
}

func (r *MongoConversationRepository) Find(ctx context.Context, filter entities.ConversationFilter, page, limit int, sort entities.SortOrder) ([]*entities.Conversation, error) {
	skip, limit := repositories.NormalizePage(page, limit)
	sort = repositories.NormalizeSort(sort)

	direction := 1
	if sort.Descending {
		direction = -1
	}
	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: sort.Field, Value: direction}, {Key: "_id", Value: direction}})

	cursor, err := r.collection.Find(ctx, filterDocument(filter), opts)
	if err != nil {
		return nil, errs.InternalErrorf("failed to list conversations: %v", err)
	}
	defer cursor.Close(ctx)

	conversations := make([]*entities.Conversation, 0, limit)
	for cursor.Next(ctx) {
		var conversation entities.Conversation
		if err := cursor.Decode(&conversation); err != nil {
			return nil, errs.InternalErrorf("failed to decode conversation: %v", err)
		}
		conversations = append(conversations, &conversation)
	}

	if err := cursor.Err(); err != nil {
		return nil, errs.InternalErrorf("failed to list conversations: %v", err)
	}

	return conversations, nil
}

func (r *MongoConversationRepository) Count(ctx context.Context, filter entities.ConversationFilter) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, filterDocument(filter))
	if err != nil {
		return 0, errs.InternalErrorf("failed to count conversations: %v", err)
	}
	return count, nil
}

func (r *MongoConversationRepository) FindByID(ctx context.Context, conversationID string, projection entities.Projection) (*entities.Conversation, error) {
	opts := options.FindOne()
	if projection.ExcludeMessages {
		opts.SetProjection(bson.M{"messages": 0})
	}

	var conversation entities.Conversation
	err := r.collection.FindOne(ctx, bson.M{"conversation_id": conversationID}, opts).Decode(&conversation)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errs.InternalErrorf("failed to get conversation: %v", err)
	}

	return &conversation, nil
}

func (r *MongoConversationRepository) FindMessages(ctx context.Context, conversationID string) ([]entities.Message, error) {
	opts := options.FindOne().SetProjection(bson.M{"messages": 1})

	var result struct {
		Messages []entities.Message `bson:"messages"`
	}
	err := r.collection.FindOne(ctx, bson.M{"conversation_id": conversationID}, opts).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return []entities.Message{}, nil
	}
	if err != nil {
		return nil, errs.InternalErrorf("failed to get messages: %v", err)
	}
	if result.Messages == nil {
		return []entities.Message{}, nil
	}

	return result.Messages, nil
}

func (r *MongoConversationRepository) FindFigure(ctx context.Context, conversationID, messageID string) (map[string]any, error) {
	query := bson.M{"conversation_id": conversationID, "messages.message_id": messageID}
	opts := options.FindOne().SetProjection(bson.M{"messages.$": 1})

	var result struct {
		Messages []entities.Message `bson:"messages"`
	}
	err := r.collection.FindOne(ctx, query, opts).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errs.InternalErrorf("failed to get figure: %v", err)
	}
	if len(result.Messages) == 0 {
		return nil, nil
	}

	return result.Messages[0].Figure, nil
}

func filterDocument(filter entities.ConversationFilter) bson.M {
	query := bson.M{}
	if filter.CreatedBy != "" {
		query["created_by"] = filter.CreatedBy
	}
	return query
}

var _ interfaces.ConversationRepository = (*MongoConversationRepository)(nil)
