package config

import "time"

// Config holds every tunable of the bot. Secrets live in the credential
// file, not here, except for the optional Gemini key.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Slack     SlackConfig     `mapstructure:"slack"`
	Dialogue  DialogueConfig  `mapstructure:"dialogue"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// SlackConfig controls the RTM client.
type SlackConfig struct {
	Debug bool `mapstructure:"debug"`
}

// DialogueConfig selects and tunes the dialogue service backend.
type DialogueConfig struct {
	Backend  string        `mapstructure:"backend"  validate:"required,oneof=docomo gemini"`
	Persona  string        `mapstructure:"persona"  validate:"required,oneof=sakurako kansai akachan"`
	Endpoint string        `mapstructure:"endpoint" validate:"required,url"`
	Timeout  time.Duration `mapstructure:"timeout"  validate:"min=0"`
}

// GeminiConfig is used when Dialogue.Backend is "gemini".
type GeminiConfig struct {
	APIKey            string  `mapstructure:"api_key"`
	Model             string  `mapstructure:"model"              validate:"required"`
	Temperature       float32 `mapstructure:"temperature"        validate:"min=0,max=2"`
	SystemInstruction string  `mapstructure:"system_instruction"`
}

// SchedulerConfig lists scheduled tasks by registry name.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks" validate:"dive"`
}

// TaskConfig enables a task and gives its cron schedule (seconds field allowed).
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule" validate:"required_if=Enabled true"`
}
