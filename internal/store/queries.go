package store

import (
	"context"
	"errors"
	"regexp"

	"altquery/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// byNewest sorts on _id descending; ObjectIDs embed the creation timestamp,
// so this is descending creation order.
var byNewest = bson.D{{Key: "_id", Value: -1}}

// QueriesStore performs the queries-collection operations.
type QueriesStore struct {
	coll *mongo.Collection
}

func NewQueriesStore(coll *mongo.Collection) *QueriesStore {
	return &QueriesStore{coll: coll}
}

// searchFilter matches productName by case-insensitive substring. The term is
// escaped so regex metacharacters in user input stay literal; an empty term
// matches every document.
func searchFilter(term string) bson.M {
	return bson.M{
		"productName": bson.M{"$regex": regexp.QuoteMeta(term), "$options": "i"},
	}
}

// offsetFor converts a 1-indexed page number to a cursor offset.
func offsetFor(page, size int64) int64 {
	return (page - 1) * size
}

func parseObjectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, domain.ValidationError{Field: "id", Msg: "not a valid object id", Err: err}
	}
	return oid, nil
}

// Insert stores the document exactly as submitted.
func (s *QueriesStore) Insert(ctx context.Context, doc map[string]any) (domain.InsertResult, error) {
	return insertOne(ctx, s.coll, doc)
}

// Latest returns the limit most recently created documents.
func (s *QueriesStore) Latest(ctx context.Context, limit int64) ([]bson.M, error) {
	opts := options.Find().SetSort(byNewest).SetLimit(limit)
	return findAll(ctx, s.coll, bson.M{}, opts)
}

// Search returns one page of matching documents, newest first.
func (s *QueriesStore) Search(ctx context.Context, term string, page, size int64) ([]bson.M, error) {
	opts := options.Find().
		SetSort(byNewest).
		SetSkip(offsetFor(page, size)).
		SetLimit(size)
	return findAll(ctx, s.coll, searchFilter(term), opts)
}

// CountMatching counts documents under the same filter Search uses.
func (s *QueriesStore) CountMatching(ctx context.Context, term string) (int64, error) {
	return s.coll.CountDocuments(ctx, searchFilter(term))
}

// OwnedBy returns every document whose userEmail equals email, newest first.
func (s *QueriesStore) OwnedBy(ctx context.Context, email string) ([]bson.M, error) {
	opts := options.Find().SetSort(byNewest)
	return findAll(ctx, s.coll, bson.M{"userEmail": email}, opts)
}

// ByID returns a single document, or nil when the id matches nothing.
func (s *QueriesStore) ByID(ctx context.Context, id string) (bson.M, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc bson.M
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// MergeUpdate overwrites only the fields present in fields, leaving the rest
// of the document untouched.
func (s *QueriesStore) MergeUpdate(ctx context.Context, id string, fields map[string]any) (domain.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return domain.UpdateResult{}, err
	}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return domain.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// AddToRecommendationCount applies an atomic $inc of delta to the counter.
// Concurrent increments commute, so no further coordination is needed.
func (s *QueriesStore) AddToRecommendationCount(ctx context.Context, id string, delta int) (domain.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return domain.UpdateResult{}, err
	}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"recommendationCount": delta}})
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return domain.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// Delete removes one document. A missing target yields DeletedCount 0.
func (s *QueriesStore) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	return deleteOneByID(ctx, s.coll, id)
}

// shared collection helpers

func insertOne(ctx context.Context, coll *mongo.Collection, doc map[string]any) (domain.InsertResult, error) {
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return domain.InsertResult{}, err
	}

	out := domain.InsertResult{Acknowledged: res.Acknowledged}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		out.InsertedID = oid.Hex()
	}
	return out, nil
}

func findAll(ctx context.Context, coll *mongo.Collection, filter bson.M, opts *options.FindOptionsBuilder) ([]bson.M, error) {
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func deleteOneByID(ctx context.Context, coll *mongo.Collection, id string) (domain.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return domain.DeleteResult{}, err
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return domain.DeleteResult{}, err
	}
	return domain.DeleteResult{Acknowledged: res.Acknowledged, DeletedCount: res.DeletedCount}, nil
}
