package store

import (
	"context"

	"altquery/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// RecommendationsStore performs the recommendation-collection operations.
type RecommendationsStore struct {
	coll *mongo.Collection
}

func NewRecommendationsStore(coll *mongo.Collection) *RecommendationsStore {
	return &RecommendationsStore{coll: coll}
}

func (s *RecommendationsStore) Insert(ctx context.Context, doc map[string]any) (domain.InsertResult, error) {
	return insertOne(ctx, s.coll, doc)
}

// ByRecommender returns recommendations authored by email, newest first.
func (s *RecommendationsStore) ByRecommender(ctx context.Context, email string) ([]bson.M, error) {
	opts := options.Find().SetSort(byNewest)
	return findAll(ctx, s.coll, bson.M{"recUserEmail": email}, opts)
}

// ForUser returns recommendations targeting email, newest first.
func (s *RecommendationsStore) ForUser(ctx context.Context, email string) ([]bson.M, error) {
	opts := options.Find().SetSort(byNewest)
	return findAll(ctx, s.coll, bson.M{"userEmails": email}, opts)
}

// ForQuery returns recommendations attached to a query. queryId is stored as
// the plain hex string the client submitted, not an ObjectID.
func (s *RecommendationsStore) ForQuery(ctx context.Context, queryID string) ([]bson.M, error) {
	opts := options.Find().SetSort(byNewest)
	return findAll(ctx, s.coll, bson.M{"queryId": queryID}, opts)
}

func (s *RecommendationsStore) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	return deleteOneByID(ctx, s.coll, id)
}
