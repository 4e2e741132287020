package bot

import (
	"time"
)

// BotConfig represents the configuration for the bot
type BotConfig struct {
	// Maximum length in runes of an /ask or /explain argument
	TopicMaxLen int
	// How long a user must be inactive before a reminder is sent
	ReminderAfter time.Duration
}

// DefaultConfig returns the default bot configuration
func DefaultConfig() *BotConfig {
	return &BotConfig{
		TopicMaxLen:   200,
		ReminderAfter: 24 * time.Hour,
	}
}
