package services

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"realty-bot/models"
)

var (
	mongoClient *mongo.Client
	database    *mongo.Database
)

// GetDatabase returns the MongoDB database instance
func GetDatabase() *mongo.Database {
	return database
}

// PingMongoDB reports whether the database connection is alive.
func PingMongoDB(ctx context.Context) error {
	if mongoClient == nil {
		return mongo.ErrClientDisconnected
	}
	return mongoClient.Ping(ctx, nil)
}

// InitMongoDB initializes MongoDB connection
func InitMongoDB(ctx context.Context, uri string) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(uri)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	slog.Info("Connected to MongoDB")
	mongoClient = client

	return client, nil
}

// InitServices initializes all services
func InitServices(client *mongo.Client, databaseName string) {
	database = client.Database(databaseName)

	// Create indexes
	createIndexes()
}

// createIndexes creates necessary database indexes
func createIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	messagesCollection := database.Collection("messages")
	messagesCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"lead_id": 1}},
		{Keys: bson.M{"timestamp": -1}},
	})

	leadsCollection := database.Collection("leads")
	leadsCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"lead_id": 1}, Options: options.Index().SetUnique(true)},
		{Keys: bson.M{"status": 1}},
		{Keys: bson.M{"last_seen": -1}},
	})

	repliesCollection := database.Collection("replies")
	repliesCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"lead_id": 1}},
		{Keys: bson.M{"timestamp": -1}},
	})

	usersCollection := database.Collection("users")
	usersCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"username": 1}, Options: options.Index().SetUnique(true)},
		{Keys: bson.M{"email": 1}},
	})
}

// SaveMessage saves a conversation turn to the messages collection
func SaveMessage(ctx context.Context, message *models.Message) error {
	collection := database.Collection("messages")
	_, err := collection.InsertOne(ctx, message)
	return err
}

// SaveReply records the raw and normalized assistant output for a lead
func SaveReply(ctx context.Context, reply *models.Reply) error {
	collection := database.Collection("replies")
	_, err := collection.InsertOne(ctx, reply)
	return err
}
