// Package testinternals holds helpers shared by the repo and handler tests.
package testinternals

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/2beens/fittrack/internal/db"

	"github.com/brianvoe/gofakeit/v6"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const MongoTestURIEnv = "FITTRACK_MONGO_TEST_URI"

// MongoTestDatabase connects to the test Mongo instance and returns a fresh database,
// dropped again on cleanup. The test is skipped if Mongo is not reachable.
// Each call gets its own database, so packages running in parallel do not collide.
func MongoTestDatabase(t testing.TB) *mongo.Database {
	t.Helper()

	uri := os.Getenv(MongoTestURIEnv)
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	dbName := fmt.Sprintf("fittrack_test_%d", time.Now().UnixNano())
	ctx := context.Background()
	client, database, err := db.NewMongoDB(ctx, db.NewMongoClientParams{
		URI:            uri,
		DBName:         dbName,
		ConnectTimeout: 2 * time.Second,
	})
	if err != nil {
		t.Skipf("mongo not available: %s", err)
	}

	t.Cleanup(func() {
		_ = database.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	return database
}

// RandomUsername returns an alphanumeric username, unique enough for a test run.
func RandomUsername() string {
	name := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, gofakeit.Username())
	return fmt.Sprintf("%s%d", name, gofakeit.Number(1000, 9999))
}

func RandomEmail() string {
	return gofakeit.Email()
}

func RandomPassword() string {
	return gofakeit.Password(true, true, true, false, false, 12)
}
