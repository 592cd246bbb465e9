package agent

import (
	"fmt"
	"sort"
	"strings"

	"council/config"
	"council/llm"
	"council/prompts"
)

// roleSpec maps a role id to its display name and preferred model alias.
type roleSpec struct {
	name              string
	defaultModelAlias string
}

// roleRegistry is the dispatch table from role id to agent construction
// data. The aliases here must exist in Settings.Models; resolveModelAlias
// falls back to the global default when they don't.
var roleRegistry = map[string]roleSpec{
	"indian_historian":         {name: "Indian Historian", defaultModelAlias: "gpt_oss_latest"},
	"civilizational_historian": {name: "Civilizational Historian", defaultModelAlias: "gpt_oss_latest"},
	"religion_expert":          {name: "Religion Expert", defaultModelAlias: "gpt_oss_latest"},
	"anthropology_expert":      {name: "Anthropology Expert", defaultModelAlias: "gpt_oss_latest"},
	"policymaker_expert":       {name: "Policy Analyst / Policymaker", defaultModelAlias: "gpt_oss_latest"},
}

// KnownRoles returns the sorted role ids that can be spawned into a council.
func KnownRoles() []string {
	roles := make([]string, 0, len(roleRegistry))
	for r := range roleRegistry {
		roles = append(roles, r)
	}
	sort.Strings(roles)
	return roles
}

// resolveModelAlias returns the preferred model alias for a role. If the
// registered alias is missing from the model table (stale config), it falls
// back to the global default alias. This fallback is a deliberate safety
// net, not an error.
func resolveModelAlias(roleID string, settings *config.Settings) string {
	spec, ok := roleRegistry[roleID]
	alias := settings.DefaultModelAlias
	if ok && spec.defaultModelAlias != "" {
		alias = spec.defaultModelAlias
	}
	if _, ok := settings.Models[alias]; !ok {
		return settings.DefaultModelAlias
	}
	return alias
}

// NewCouncil builds the ordered list of agents for the given role ids. A nil
// roles slice uses Settings.CouncilRoles. Unknown role ids are a
// configuration error.
func NewCouncil(client llm.Client, roles []string, settings *config.Settings) ([]*Agent, error) {
	if roles == nil {
		roles = settings.CouncilRoles
	}

	council := make([]*Agent, 0, len(roles))
	for _, roleID := range roles {
		spec, ok := roleRegistry[roleID]
		if !ok {
			return nil, fmt.Errorf("no agent registered for role %q (known roles: %s)",
				roleID, strings.Join(KnownRoles(), ", "))
		}
		systemPrompt, err := prompts.RoleSystemPrompt(roleID)
		if err != nil {
			return nil, err
		}
		council = append(council, New(Config{
			Name:       spec.name,
			RoleID:     roleID,
			ModelAlias: resolveModelAlias(roleID, settings),
		}, client, systemPrompt))
	}
	return council, nil
}
