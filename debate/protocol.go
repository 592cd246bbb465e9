package debate

import "council/agent"

// RoundConfig holds the protocol's tunable parameters.
type RoundConfig struct {
	// NumRebuttalRounds is how many full council rebuttal cycles to run.
	// Zero skips rebuttals entirely; negative values are treated as zero.
	NumRebuttalRounds int
}

// DefaultRoundConfig is one rebuttal round.
func DefaultRoundConfig() RoundConfig {
	return RoundConfig{NumRebuttalRounds: 1}
}

// Protocol decides turn order per stage and how many rebuttal rounds to run.
// Implementations must be stateless and deterministic for a given council.
type Protocol interface {
	// OpeningOrder returns the order agents give their opening statements.
	OpeningOrder(council []*agent.Agent) []*agent.Agent
	// RebuttalOrder returns the order agents speak within each rebuttal round.
	RebuttalOrder(council []*agent.Agent) []*agent.Agent
	// NumRebuttalRounds returns the configured rebuttal round count.
	NumRebuttalRounds() int
}

// BasicProtocol speaks every agent once per stage, in council order.
type BasicProtocol struct {
	config RoundConfig
}

// NewBasicProtocol creates a protocol with the given round configuration.
func NewBasicProtocol(cfg RoundConfig) *BasicProtocol {
	if cfg.NumRebuttalRounds < 0 {
		cfg.NumRebuttalRounds = 0
	}
	return &BasicProtocol{config: cfg}
}

func (p *BasicProtocol) OpeningOrder(council []*agent.Agent) []*agent.Agent {
	out := make([]*agent.Agent, len(council))
	copy(out, council)
	return out
}

func (p *BasicProtocol) RebuttalOrder(council []*agent.Agent) []*agent.Agent {
	out := make([]*agent.Agent, len(council))
	copy(out, council)
	return out
}

func (p *BasicProtocol) NumRebuttalRounds() int {
	return p.config.NumRebuttalRounds
}
