// Package store holds the MongoDB client and the per-collection stores.
package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const databaseName = "altQueryDB"

// Client wraps the mongo connection and exposes the service collections.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens the MongoDB connection and pings it so a broken store fails
// the process at startup instead of surfacing on the first request.
func Connect(ctx context.Context, mongoURI string) (*Client, error) {
	opts := options.Client().
		ApplyURI(mongoURI).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}

	return &Client{
		client: client,
		db:     client.Database(databaseName),
	}, nil
}

func (c *Client) QueriesCollection() *mongo.Collection {
	return c.db.Collection("queries")
}

func (c *Client) RecommendationCollection() *mongo.Collection {
	return c.db.Collection("recommendation")
}

func (c *Client) HelpCollection() *mongo.Collection {
	return c.db.Collection("help")
}

func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// EnsureIndexes creates the lookup indexes the handlers filter on.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	queryIndexes := []mongo.IndexModel{
		{Keys: map[string]int{"userEmail": 1}},
		{Keys: map[string]int{"productName": 1}},
	}
	if _, err := c.QueriesCollection().Indexes().CreateMany(ctx, queryIndexes); err != nil {
		return fmt.Errorf("create queries indexes: %w", err)
	}

	recIndexes := []mongo.IndexModel{
		{Keys: map[string]int{"queryId": 1}},
		{Keys: map[string]int{"recUserEmail": 1}},
		{Keys: map[string]int{"userEmails": 1}},
	}
	if _, err := c.RecommendationCollection().Indexes().CreateMany(ctx, recIndexes); err != nil {
		return fmt.Errorf("create recommendation indexes: %w", err)
	}
	return nil
}
