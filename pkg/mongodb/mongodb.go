package mongodb

import (
	"context"
	"fmt"

	"github.com/MentorBridge/backend/config"
	"github.com/MentorBridge/backend/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Client owns the process-wide MongoDB connection. Callers obtain it once
// from Connect and release it with Disconnect; there is no implicit global.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes the connection and verifies it with a ping.
func Connect(ctx context.Context, cfg config.MongoConfig) (*Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetConnectTimeout(cfg.ConnectTimeout)

	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.GetLogger().Info("Connected to MongoDB",
		zap.String("database", cfg.Database),
	)

	return &Client{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Database returns the application database handle.
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Ping checks connectivity against the primary.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// Disconnect releases the connection pool.
func (c *Client) Disconnect(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	logger.GetLogger().Info("Disconnected from MongoDB")
	return nil
}
