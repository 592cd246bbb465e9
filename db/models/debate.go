package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DebateDocument is one persisted debate run.
type DebateDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	TopicID     string             `bson:"topic_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Constraints string             `bson:"constraints,omitempty"`
	Messages    []MessageDocument  `bson:"messages"`
	Consensus   *ConsensusDocument `bson:"consensus,omitempty"`
	SavedAt     time.Time          `bson:"saved_at"`
}

// MessageDocument is one transcript entry within a DebateDocument.
type MessageDocument struct {
	SpeakerID   string `bson:"speaker_id"`
	SpeakerName string `bson:"speaker_name"`
	Role        string `bson:"role"` // "system", "user" or "assistant"
	Content     string `bson:"content"`
	Stage       string `bson:"stage"` // "opening", "rebuttal" or "consensus"
	TurnIndex   int    `bson:"turn_index"`
}

// ConsensusDocument is the synthesized conclusion within a DebateDocument.
type ConsensusDocument struct {
	Text  string `bson:"text"`
	Notes string `bson:"notes,omitempty"`
}
