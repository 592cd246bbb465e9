package debate

// TurnEvaluation scores a single transcript message.
type TurnEvaluation struct {
	MessageIndex         int     `json:"message_index"`
	LogicalClarity       float64 `json:"logical_clarity"`         // 0.0 - 1.0
	UseOfEvidence        float64 `json:"use_of_evidence"`         // 0.0 - 1.0
	FairnessToOtherViews float64 `json:"fairness_to_other_views"` // 0.0 - 1.0
	Notes                string  `json:"notes,omitempty"`
}

// Evaluator scores a finished transcript turn by turn.
type Evaluator interface {
	Evaluate(topic Topic, transcript []Message) []TurnEvaluation
}

// NoOpEvaluator assigns neutral scores to every turn. It exists so callers
// can wire evaluation end to end before an LLM-based or rule-based
// evaluator is plugged in.
type NoOpEvaluator struct{}

func (NoOpEvaluator) Evaluate(topic Topic, transcript []Message) []TurnEvaluation {
	results := make([]TurnEvaluation, 0, len(transcript))
	for idx := range transcript {
		results = append(results, TurnEvaluation{
			MessageIndex:         idx,
			LogicalClarity:       0.5,
			UseOfEvidence:        0.5,
			FairnessToOtherViews: 0.5,
			Notes:                "no-op evaluator",
		})
	}
	return results
}
