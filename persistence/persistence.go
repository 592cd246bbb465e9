// Package persistence writes finished debates to disk as JSON records.
// Persistence is the caller's job, not the orchestrator's: a failed run
// leaves nothing behind unless the caller saves the partial transcript
// explicitly.
package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"council/debate"
)

// TopicRecord is the persisted form of a debate topic.
type TopicRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Constraints string `json:"constraints,omitempty"`
}

// MessageRecord is the persisted form of one transcript entry.
type MessageRecord struct {
	SpeakerID   string `json:"speaker_id"`
	SpeakerName string `json:"speaker_name"`
	Role        string `json:"role"`
	Content     string `json:"content"`
	Stage       string `json:"stage"`
	TurnIndex   int    `json:"turn_index"`
}

// ConsensusRecord is the persisted form of a consensus result.
type ConsensusRecord struct {
	Text  string `json:"text"`
	Notes string `json:"notes,omitempty"`
}

// DebateRecord is the JSON document written for one finished debate.
type DebateRecord struct {
	Meta struct {
		SavedAtUTC string `json:"saved_at_utc"`
	} `json:"meta"`
	Topic     TopicRecord      `json:"topic"`
	Messages  []MessageRecord  `json:"messages"`
	Consensus *ConsensusRecord `json:"consensus"`
}

// NewDebateRecord converts a debate result into its persisted form.
func NewDebateRecord(result *debate.Result, savedAt time.Time) *DebateRecord {
	topic := result.Transcript.Topic
	record := &DebateRecord{
		Topic: TopicRecord{
			ID:          topic.ID,
			Title:       topic.Title,
			Description: topic.Description,
			Constraints: topic.Constraints,
		},
		Messages: make([]MessageRecord, 0, result.Transcript.Len()),
	}
	record.Meta.SavedAtUTC = savedAt.UTC().Format("20060102T150405Z")

	for _, msg := range result.Transcript.Messages() {
		record.Messages = append(record.Messages, MessageRecord{
			SpeakerID:   msg.SpeakerID,
			SpeakerName: msg.SpeakerName,
			Role:        string(msg.Role),
			Content:     msg.Content,
			Stage:       string(msg.Stage),
			TurnIndex:   msg.TurnIndex,
		})
	}
	if result.Consensus != nil {
		record.Consensus = &ConsensusRecord{
			Text:  result.Consensus.Text,
			Notes: result.Consensus.Notes,
		}
	}
	return record
}

// SaveDebateResult persists a result to dir as
// "{UTC timestamp}_{topic id}.json" and returns the written path.
func SaveDebateResult(dir string, result *debate.Result) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create debates dir: %w", err)
	}

	record := NewDebateRecord(result, time.Now())
	topicID := record.Topic.ID
	if topicID == "" {
		topicID = "topic"
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.json", record.Meta.SavedAtUTC, topicID))

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal debate record: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write debate record: %w", err)
	}
	return path, nil
}

// ListSavedDebates returns up to limit debate record paths, most recent
// first. The timestamp-prefixed naming makes lexical order chronological.
func ListSavedDebates(dir string, limit int) ([]string, error) {
	entries, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Sort(sort.Reverse(sort.StringSlice(entries)))
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
