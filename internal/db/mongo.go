package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/event"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	CollectionUsers       = "users"
	CollectionExercises   = "exercises"
	CollectionWorkouts    = "workouts"
	CollectionWorkoutLogs = "workoutLogs"
)

type NewMongoClientParams struct {
	URI            string
	DBName         string
	ConnectTimeout time.Duration
	PoolMonitor    *event.PoolMonitor
}

// NewMongoDB connects to the document store, pings it and makes sure the indexes exist.
// The returned client is process wide and has to be disconnected on shutdown.
func NewMongoDB(ctx context.Context, params NewMongoClientParams) (*mongo.Client, *mongo.Database, error) {
	if params.ConnectTimeout == 0 {
		params.ConnectTimeout = 10 * time.Second
	}

	clientOpts := options.Client().
		ApplyURI(params.URI).
		SetConnectTimeout(params.ConnectTimeout)
	if params.PoolMonitor != nil {
		clientOpts.SetPoolMonitor(params.PoolMonitor)
	}

	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, params.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	database := client.Database(params.DBName)
	// the unique username index is the only guard against concurrent signups
	if err := EnsureIndexes(ctx, database); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ensure indexes: %w", err)
	}

	return client, database, nil
}

// EnsureIndexes creates the lookup indexes and the unique username index.
// The unique index is what keeps two concurrent signups with the same username apart.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	type idx struct {
		col    string
		keys   bson.D
		unique bool
	}

	indexes := []idx{
		{CollectionUsers, bson.D{{Key: "username", Value: 1}}, true},
		{CollectionUsers, bson.D{{Key: "email", Value: 1}}, false},

		{CollectionExercises, bson.D{{Key: "name", Value: 1}}, false},
		{CollectionExercises, bson.D{{Key: "bodyPart", Value: 1}}, false},
		{CollectionExercises, bson.D{{Key: "equipment", Value: 1}}, false},
		{CollectionExercises, bson.D{{Key: "target", Value: 1}}, false},

		{CollectionWorkouts, bson.D{{Key: "creator", Value: 1}}, false},

		{CollectionWorkoutLogs, bson.D{{Key: "userId", Value: 1}}, false},
		{CollectionWorkoutLogs, bson.D{{Key: "workoutId", Value: 1}}, false},
		{CollectionWorkoutLogs, bson.D{{Key: "day", Value: 1}}, false},
	}

	for _, i := range indexes {
		model := mongo.IndexModel{Keys: i.keys}
		if i.unique {
			model.Options = options.Index().SetUnique(true)
		}
		if _, err := database.Collection(i.col).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create index on %s: %w", i.col, err)
		}
	}

	return nil
}
