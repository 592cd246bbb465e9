package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"council/config"
)

func registrySettings() *config.Settings {
	return &config.Settings{
		DefaultModelAlias: "gpt_oss_latest",
		Models: map[string]config.ModelConfig{
			"gpt_oss_latest": {Name: "gpt-oss:latest"},
		},
		CouncilRoles: []string{"indian_historian", "policymaker_expert"},
	}
}

func TestNewCouncil_BuildsAgentsInRoleOrder(t *testing.T) {
	client := &captureClient{}

	council, err := NewCouncil(client, []string{"policymaker_expert", "religion_expert"}, registrySettings())

	require.NoError(t, err)
	require.Len(t, council, 2)
	assert.Equal(t, "policymaker_expert", council[0].RoleID)
	assert.Equal(t, "Policy Analyst / Policymaker", council[0].Name)
	assert.Equal(t, "religion_expert", council[1].RoleID)
	assert.NotEmpty(t, council[0].SystemPrompt())
}

func TestNewCouncil_NilRolesUseSettings(t *testing.T) {
	client := &captureClient{}

	council, err := NewCouncil(client, nil, registrySettings())

	require.NoError(t, err)
	require.Len(t, council, 2)
	assert.Equal(t, "indian_historian", council[0].RoleID)
}

func TestNewCouncil_UnknownRoleListsKnownRoles(t *testing.T) {
	client := &captureClient{}

	_, err := NewCouncil(client, []string{"astrologer"}, registrySettings())

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"astrologer"`)
	assert.Contains(t, err.Error(), "known roles")
	assert.Contains(t, err.Error(), "indian_historian")
}

func TestNewCouncil_StaleAliasFallsBackToDefault(t *testing.T) {
	client := &captureClient{}
	// The registry prefers gpt_oss_latest, which is missing here; the
	// agent must fall back to the global default alias.
	settings := &config.Settings{
		DefaultModelAlias: "gemini_flash",
		Models: map[string]config.ModelConfig{
			"gemini_flash": {Name: "gemini-2.5-flash"},
		},
	}

	council, err := NewCouncil(client, []string{"religion_expert"}, settings)

	require.NoError(t, err)
	assert.Equal(t, "gemini_flash", council[0].ModelAlias)
}

func TestKnownRoles_SortedAndComplete(t *testing.T) {
	roles := KnownRoles()

	assert.Equal(t, []string{
		"anthropology_expert",
		"civilizational_historian",
		"indian_historian",
		"policymaker_expert",
		"religion_expert",
	}, roles)
}
