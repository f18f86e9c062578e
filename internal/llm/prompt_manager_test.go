package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPromptManager_RendersActionPlanner(t *testing.T) {
	pm, err := NewPromptManager()
	require.NoError(t, err)

	out, err := pm.Render(ActionPlannerPrompt, "ollama", ActionPlannerData{
		Goal:         "send bob an email",
		FunctionList: "// Send an email.\nEmailPlugin.Send\nNo parameters.",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "[REAL SCENARIO STARTS HERE]")
	assert.Contains(t, out, "EmailPlugin.Send")
	assert.Contains(t, out, "Goal: send bob an email")
}

func TestPromptManager_ProviderOverride(t *testing.T) {
	pm, err := NewPromptManager()
	require.NoError(t, err)
	require.NoError(t, pm.Register(ActionPlannerPrompt, "gemini", "gemini: {{.Goal}}"))

	out, err := pm.Render(ActionPlannerPrompt, "gemini", ActionPlannerData{Goal: "g"})
	require.NoError(t, err)
	assert.Equal(t, "gemini: g", out)

	_, err = pm.Render("unknown", DefaultProvider, nil)
	assert.Error(t, err)
}

func TestSplitPromptFileName(t *testing.T) {
	key, provider, err := splitPromptFileName("action_planner_default.prompt")
	require.NoError(t, err)
	assert.Equal(t, ActionPlannerPrompt, key)
	assert.Equal(t, DefaultProvider, provider)

	for _, bad := range []string{"noprovider.prompt", "_default.prompt", "key_.prompt"} {
		_, _, err := splitPromptFileName(bad)
		assert.Error(t, err, bad)
	}
}
