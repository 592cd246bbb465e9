package db

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"council/db/models"
	"council/debate"
)

// ErrNotInitialized is returned when Mongo persistence is used without a
// prior InitMongoDB call.
var ErrNotInitialized = errors.New("mongodb connection not initialized")

const debatesCollection = "debates"

// SaveDebateResult inserts a finished debate run.
func SaveDebateResult(ctx context.Context, result *debate.Result) error {
	if !Initialized() {
		return ErrNotInitialized
	}

	topic := result.Transcript.Topic
	doc := models.DebateDocument{
		TopicID:     topic.ID,
		Title:       topic.Title,
		Description: topic.Description,
		Constraints: topic.Constraints,
		Messages:    make([]models.MessageDocument, 0, result.Transcript.Len()),
		SavedAt:     time.Now(),
	}
	for _, msg := range result.Transcript.Messages() {
		doc.Messages = append(doc.Messages, models.MessageDocument{
			SpeakerID:   msg.SpeakerID,
			SpeakerName: msg.SpeakerName,
			Role:        string(msg.Role),
			Content:     msg.Content,
			Stage:       string(msg.Stage),
			TurnIndex:   msg.TurnIndex,
		})
	}
	if result.Consensus != nil {
		doc.Consensus = &models.ConsensusDocument{
			Text:  result.Consensus.Text,
			Notes: result.Consensus.Notes,
		}
	}

	collection := GetCollection(debatesCollection)
	_, err := collection.InsertOne(ctx, doc)
	return err
}

// ListDebates retrieves up to limit persisted debates, most recent first.
func ListDebates(ctx context.Context, limit, offset int) ([]models.DebateDocument, int64, error) {
	if !Initialized() {
		return nil, 0, ErrNotInitialized
	}

	collection := GetCollection(debatesCollection)

	total, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "saved_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var debates []models.DebateDocument
	if err := cursor.All(ctx, &debates); err != nil {
		return nil, 0, err
	}
	return debates, total, nil
}

// CreateDebateIndexes creates the indexes the list endpoint relies on.
func CreateDebateIndexes() {
	if !Initialized() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "saved_at", Value: -1}}},
		{Keys: bson.D{{Key: "topic_id", Value: 1}}},
	}

	collection := GetCollection(debatesCollection)
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("Failed to create indexes: %v", err)
	}
}
