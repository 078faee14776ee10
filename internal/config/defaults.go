package config

import "github.com/spf13/viper"

// Default values for configuration.
const (
	DefaultLogLevel = "debug"

	DefaultDialogueBackend  = "docomo"
	DefaultDialoguePersona  = "sakurako"
	DefaultDialogueEndpoint = "https://api.apigw.smt.docomo.ne.jp/dialogue/v1/dialogue"

	DefaultGeminiModel       = "gemini-2.0-flash"
	DefaultGeminiTemperature = 1.0
	DefaultGeminiInstruction = "You are Sakurako, a cheerful member of a team chat. Reply in one or two short, casual sentences in the language the user writes in."

	DefaultRosterRefreshSchedule = "0 */30 * * * *"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.json", false)

	v.SetDefault("slack.debug", false)

	v.SetDefault("dialogue.backend", DefaultDialogueBackend)
	v.SetDefault("dialogue.persona", DefaultDialoguePersona)
	v.SetDefault("dialogue.endpoint", DefaultDialogueEndpoint)
	v.SetDefault("dialogue.timeout", 0)

	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", DefaultGeminiModel)
	v.SetDefault("gemini.temperature", DefaultGeminiTemperature)
	v.SetDefault("gemini.system_instruction", DefaultGeminiInstruction)

	v.SetDefault("scheduler.tasks", map[string]any{
		"roster_refresh": map[string]any{
			"enabled":  false,
			"schedule": DefaultRosterRefreshSchedule,
		},
	})
}
