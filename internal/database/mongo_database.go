package database

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	syslog "github.com/creditdesk/bureau-data-service/internal/system/log"
)

// MongoDB struct holds the client and database handle used for the raw
// payload archive.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

var (
	mongoInstance *MongoDB
	mongoOnce     sync.Once
)

// ConnectMongoDB initializes a global MongoDB connection
func ConnectMongoDB(uri, dbName string) *MongoDB {
	mongoOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			log.Fatalf("Failed to create MongoDB client: %v", err)
		}

		// Ping to ensure connection is live
		if err = client.Ping(ctx, nil); err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}

		syslog.GetLogger().Info("Connected to MongoDB")

		mongoInstance = &MongoDB{
			Client:   client,
			Database: client.Database(dbName),
		}
	})

	return mongoInstance
}

// GetMongoDBInstance returns the MongoDB instance
func GetMongoDBInstance() *MongoDB {
	return mongoInstance
}
