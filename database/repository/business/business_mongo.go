package businessRepo

import (
	"context"
	"time"

	"betulbuzz/config"
	"betulbuzz/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBusinessRepo implements BusinessRepository using MongoDB.
type MongoBusinessRepo struct {
	coll    *mongo.Collection
	reviews *mongo.Collection
}

// NewMongoBusinessRepo creates a new instance of BusinessRepository using MongoDB.
func NewMongoBusinessRepo() BusinessRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoBusinessRepo{
		coll:    db.Collection("businesses"),
		reviews: db.Collection("reviews"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
