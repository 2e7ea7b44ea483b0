// Package replaystore persists and retrieves replay records: a level's
// format version, random seed, and the per-tick per-admiral input masks
// needed to reproduce a match deterministically (P1). It is the only
// package that imports mongo-driver — the engine package itself never
// touches storage.
package replaystore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// InputFrame is one admiral's recorded key mask for one tick.
type InputFrame struct {
	Tick    int32  `bson:"tick"`
	Admiral int32  `bson:"admiral"`
	KeyMask uint32 `bson:"keyMask"`
}

// Replay is one complete recorded match.
type Replay struct {
	ID            bson.ObjectID `bson:"_id,omitempty"`
	LevelName     string        `bson:"levelName"`
	FormatVersion string        `bson:"formatVersion"`
	RandomSeed    uint32        `bson:"randomSeed"`
	RecordedAt    time.Time     `bson:"recordedAt"`
	Frames        []InputFrame  `bson:"frames"`
	Winner        int32         `bson:"winner"`
}

// Store wraps a mongo collection scoped to replay documents.
type Store struct {
	collection *mongo.Collection
}

// Connect dials uri and returns a Store backed by database.collection
// "replays".
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("replaystore: connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("replaystore: ping: %w", err)
	}
	return &Store{collection: client.Database(database).Collection("replays")}, nil
}

// Save inserts r, assigning r.ID if it is unset.
func (s *Store) Save(ctx context.Context, r *Replay) error {
	if r.ID.IsZero() {
		r.ID = bson.NewObjectID()
	}
	if r.RecordedAt.IsZero() {
		r.RecordedAt = time.Now()
	}
	_, err := s.collection.InsertOne(ctx, r)
	if err != nil {
		return fmt.Errorf("replaystore: save %q: %w", r.LevelName, err)
	}
	return nil
}

// Load fetches the replay with the given id.
func (s *Store) Load(ctx context.Context, id bson.ObjectID) (*Replay, error) {
	var r Replay
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	if err != nil {
		return nil, fmt.Errorf("replaystore: load %s: %w", id.Hex(), err)
	}
	return &r, nil
}

// ListByLevel returns every recorded replay for levelName, most recent
// first.
func (s *Store) ListByLevel(ctx context.Context, levelName string) ([]Replay, error) {
	opts := options.Find().SetSort(bson.D{{Key: "recordedAt", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{"levelName": levelName}, opts)
	if err != nil {
		return nil, fmt.Errorf("replaystore: list %q: %w", levelName, err)
	}
	defer cursor.Close(ctx)

	var out []Replay
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("replaystore: decode list %q: %w", levelName, err)
	}
	return out, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.collection.Database().Client().Disconnect(ctx)
}
