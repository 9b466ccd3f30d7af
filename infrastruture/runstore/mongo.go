package runstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps one document per run: {_id, seconds, finishedAt}.
type MongoStore struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewMongoStore creates a store on the given database and collection.
func NewMongoStore(client *mongo.Client, dbName, collectionName string) *MongoStore {
	return &MongoStore{
		collection: client.Database(dbName).Collection(collectionName),
		now:        time.Now,
	}
}

type runDocument struct {
	ID         string    `bson:"_id"`
	Seconds    float64   `bson:"seconds"`
	FinishedAt time.Time `bson:"finishedAt"`
}

// Append inserts a run.
func (s *MongoStore) Append(ctx context.Context, seconds float64) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	doc := runDocument{
		ID:         uuid.NewString(),
		Seconds:    seconds,
		FinishedAt: s.now().UTC(),
	}
	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	return nil
}

// LoadAll returns every run ordered by finish time.
func (s *MongoStore) LoadAll(ctx context.Context) ([]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "finishedAt", Value: 1}}).
		SetProjection(bson.M{"seconds": 1})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}

	var docs []runDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding runs: %w", err)
	}

	runs := make([]float64, 0, len(docs))
	for _, d := range docs {
		runs = append(runs, d.Seconds)
	}
	return runs, nil
}
