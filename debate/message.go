package debate

import "council/llm"

// Stage is a phase of the debate state machine.
type Stage string

const (
	StageOpening   Stage = "opening"
	StageRebuttal  Stage = "rebuttal"
	StageConsensus Stage = "consensus"
)

// Message is a single entry in the debate transcript. Messages are immutable
// once appended.
type Message struct {
	SpeakerID   string   `json:"speaker_id"`
	SpeakerName string   `json:"speaker_name"`
	Role        llm.Role `json:"role"`
	Content     string   `json:"content"`
	Stage       Stage    `json:"stage"`
	// TurnIndex increases monotonically across the entire debate,
	// regardless of stage or rebuttal round.
	TurnIndex int `json:"turn_index"`
}

// Transcript is the topic plus the append-only ordered record of everything
// said. Only the orchestrator appends; everything else reads.
type Transcript struct {
	Topic    Topic
	messages []Message
}

// NewTranscript creates an empty transcript bound to a topic.
func NewTranscript(topic Topic) *Transcript {
	return &Transcript{Topic: topic}
}

// Append records a new message, assigning it the next turn index. Turn
// indices start at 0 and have no gaps.
func (t *Transcript) Append(speakerID, speakerName string, role llm.Role, content string, stage Stage) Message {
	msg := Message{
		SpeakerID:   speakerID,
		SpeakerName: speakerName,
		Role:        role,
		Content:     content,
		Stage:       stage,
		TurnIndex:   len(t.messages),
	}
	t.messages = append(t.messages, msg)
	return msg
}

// Messages returns a copy of the ordered message list.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len returns the number of messages appended so far.
func (t *Transcript) Len() int {
	return len(t.messages)
}
