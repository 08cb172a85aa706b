package store

import (
	"context"

	"altquery/internal/domain"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// HelpStore is write-only; help submissions are never read back by this service.
type HelpStore struct {
	coll *mongo.Collection
}

func NewHelpStore(coll *mongo.Collection) *HelpStore {
	return &HelpStore{coll: coll}
}

func (s *HelpStore) Insert(ctx context.Context, doc map[string]any) (domain.InsertResult, error) {
	return insertOne(ctx, s.coll, doc)
}
