package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

/**
 * @description
 * This package manages the MongoDB connection used by the conversation store.
 * The client is created once in cmd/server, handed to the repository as a
 * collection handle and closed on shutdown.
 *
 * Key features:
 * - Connection: Connects and pings within ConnectTimeout so a bad URI fails at startup.
 * - Collection Access: Hands out collection handles of the configured database.
 * - Health: Ping backs the management health endpoint.
 *
 * @dependencies
 * - go.mongodb.org/mongo-driver/mongo: Official MongoDB driver for Go.
 * - go.uber.org/zap: Structured logging for connection events and errors.
 */

// ConnectTimeout bounds the initial connect and ping.
const ConnectTimeout = 10 * time.Second

// MongoDB holds the MongoDB client and database handle.
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *zap.Logger
}

// NewMongoDB connects to uri, verifies the connection with a ping and
// selects dbName.
//
// Returns:
// - *MongoDB: The initialized MongoDB instance.
// - error: Any error encountered during connection or ping (e.g., network failure, invalid URI).
func NewMongoDB(uri string, dbName string, logger *zap.Logger) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetAppName("chatkeeper").
		SetServerSelectionTimeout(ConnectTimeout).
		SetBSONOptions(&options.BSONOptions{
			// Figures are free-form documents and must serialize back to JSON objects.
			DefaultDocumentM: true,
		})
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.Error("Failed to connect to MongoDB", zap.Error(err))
		return nil, err
	}

	// Verify the connection with a ping
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Error("Failed to ping MongoDB", zap.Error(err))
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info("Successfully connected to MongoDB", zap.String("database", dbName))

	return &MongoDB{
		client:   client,
		database: client.Database(dbName),
		logger:   logger,
	}, nil
}

// Collection returns a handle to the specified collection in the database.
func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.database.Collection(name)
}

// Ping reports whether the primary is reachable.
func (m *MongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Disconnect closes the MongoDB client connection.
// It should be called when the application is shutting down to release resources.
func (m *MongoDB) Disconnect(ctx context.Context) error {
	if err := m.client.Disconnect(ctx); err != nil {
		m.logger.Error("Failed to disconnect from MongoDB", zap.Error(err))
		return err
	}
	m.logger.Info("Disconnected from MongoDB")
	return nil
}
