package exchange

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// inserter is the part of *mongo.Collection the recorder writes through.
type inserter interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// MongoRecorder appends exchanges to a collection.
type MongoRecorder struct {
	col inserter
}

// NewMongoRecorder ensures a (documentId, createdAt) index for per-document
// history queries run outside the service.
func NewMongoRecorder(ctx context.Context, col *mongo.Collection) (*MongoRecorder, error) {
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "documentId", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("document_created"),
	}
	if _, err := col.Indexes().CreateOne(ctx, idx); err != nil {
		return nil, fmt.Errorf("create exchange index: %w", err)
	}
	return &MongoRecorder{col: col}, nil
}

func (m *MongoRecorder) Record(ctx context.Context, e *Exchange) error {
	if _, err := m.col.InsertOne(ctx, e); err != nil {
		return fmt.Errorf("insert exchange %s: %w", e.ID, err)
	}
	return nil
}
