package dialogue

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/edgard/sakurako/internal/config"
)

// NewClient builds the dialogue client selected by cfg.Dialogue.Backend.
// id is the docomo API key from the credential file.
func NewClient(ctx context.Context, cfg *config.Config, id string, log *slog.Logger) (Client, error) {
	persona, err := ParsePersona(cfg.Dialogue.Persona)
	if err != nil {
		return nil, err
	}

	switch cfg.Dialogue.Backend {
	case "docomo", "":
		chat := NewChat(id, persona,
			WithEndpoint(cfg.Dialogue.Endpoint),
			WithHTTPClient(&http.Client{Timeout: cfg.Dialogue.Timeout}),
			WithLogger(log),
		)
		log.Info("Docomo dialogue client initialized", "persona", persona, "endpoint", cfg.Dialogue.Endpoint)
		return chat, nil
	case "gemini":
		return NewGeminiChat(ctx, GeminiConfig{
			APIKey:            cfg.Gemini.APIKey,
			Model:             cfg.Gemini.Model,
			Temperature:       cfg.Gemini.Temperature,
			SystemInstruction: cfg.Gemini.SystemInstruction,
			Persona:           persona,
		}, log)
	default:
		return nil, fmt.Errorf("unknown dialogue backend %q", cfg.Dialogue.Backend)
	}
}
