package dialogue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/sakurako/internal/config"
)

func TestNewClientSelectsBackend(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Dialogue: config.DialogueConfig{
		Backend:  "docomo",
		Persona:  "kansai",
		Endpoint: config.DefaultDialogueEndpoint,
	}}

	client, err := NewClient(context.Background(), cfg, "id", discardLogger())
	require.NoError(t, err)

	chat, ok := client.(*Chat)
	require.True(t, ok)
	assert.Equal(t, PersonaKansai, chat.Persona())
}

func TestNewClientErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]config.DialogueConfig{
		"unknown backend": {Backend: "eliza", Persona: "sakurako"},
		"unknown persona": {Backend: "docomo", Persona: "robot"},
	}
	for name, dc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := NewClient(context.Background(), &config.Config{Dialogue: dc}, "id", discardLogger())
			require.Error(t, err)
		})
	}

	_, err := NewClient(context.Background(), &config.Config{Dialogue: config.DialogueConfig{Backend: "gemini"}}, "id", discardLogger())
	require.Error(t, err, "gemini backend needs an API key")
}
