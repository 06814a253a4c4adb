package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/drujensen/chatkeeper/internal/api"
	apicontrollers "github.com/drujensen/chatkeeper/internal/api/controllers"
	apimiddleware "github.com/drujensen/chatkeeper/internal/api/middleware"
	"github.com/drujensen/chatkeeper/internal/domain/events"
	"github.com/drujensen/chatkeeper/internal/domain/interfaces"
	"github.com/drujensen/chatkeeper/internal/domain/mappers"
	"github.com/drujensen/chatkeeper/internal/domain/services"
	"github.com/drujensen/chatkeeper/internal/impl/agent"
	"github.com/drujensen/chatkeeper/internal/impl/auth"
	"github.com/drujensen/chatkeeper/internal/impl/config"
	"github.com/drujensen/chatkeeper/internal/impl/database"
	"github.com/drujensen/chatkeeper/internal/impl/defaults"
	"github.com/drujensen/chatkeeper/internal/impl/logging"
	repositories_memory "github.com/drujensen/chatkeeper/internal/impl/repositories/memory"
	repositories_mongo "github.com/drujensen/chatkeeper/internal/impl/repositories/mongo"
	"github.com/drujensen/chatkeeper/internal/impl/tokens"

	"go.uber.org/zap"
)

//	@title			Chat Completion API
//	@version		1.0
//	@description	OpenAI compatible chat completion API that stores every conversation.

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				API key in the format: sk-{username}-{base64_encoded_data}

// @host	localhost:8080
// @BasePath	/
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.InitConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogFileName)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var conversationRepo interfaces.ConversationRepository
	var pinger apicontrollers.Pinger

	switch cfg.DatabaseType {
	case config.DatabaseTypeMongo:
		db, err := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabaseName, logger)
		if err != nil {
			return fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = db.Disconnect(shutdownCtx)
		}()

		mongoRepo := repositories_mongo.NewMongoConversationRepository(db.Collection(repositories_mongo.CollectionName), logger)
		if err := mongoRepo.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("failed to create indexes: %w", err)
		}
		conversationRepo = mongoRepo
		pinger = db
	default:
		conversationRepo = repositories_memory.NewMemoryConversationRepository(logger)
		if cfg.SeedInitialData {
			if err := defaults.SeedConversations(ctx, conversationRepo, cfg.DefaultUsername, logger); err != nil {
				return fmt.Errorf("failed to seed initial data: %w", err)
			}
		}
	}

	verifier, err := auth.NewKeyVerifier(cfg.SecretKey, cfg.AuthCacheTTL, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize API key cache: %w", err)
	}
	defer verifier.Close()

	unsubscribeAudit := events.SubscribeAuditLog(logger)
	defer unsubscribeAudit()

	agentClient := agent.NewPlaceholderAgentClient(cfg.AgentName, logger)
	tokenCounter := tokens.NewTiktokenCounter(mappers.DefaultModel, logger)
	chatService := services.NewChatService(conversationRepo, agentClient, tokenCounter, cfg.AgentTimeout, logger)

	e := api.NewServer(api.Dependencies{
		ChatService: chatService,
		Verifier:    verifier,
		Auth: apimiddleware.AuthConfig{
			Enabled:         cfg.SecurityEnabled,
			DefaultUsername: cfg.DefaultUsername,
		},
		DB:     pinger,
		Logger: logger,
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server",
			zap.String("address", cfg.ServerAddress),
			zap.String("database_type", cfg.DatabaseType),
			zap.Bool("security_enabled", cfg.SecurityEnabled))
		if err := e.Start(cfg.ServerAddress); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
