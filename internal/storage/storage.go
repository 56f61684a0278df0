package storage

import "time"

// Source of a bot response. Every interaction is tagged with exactly one.
const (
	SourceChatGPT = "chatgpt"
	SourcePokeAPI = "pokeapi"
)

// Interaction is one user exchange: the command argument and the reply the
// bot produced for it. Rows are append-only; nothing updates or deletes them.
// Fallback replies are persisted the same way as real ones.
type Interaction struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      int64  `gorm:"index"`
	UserMessage string `gorm:"type:text"`
	BotResponse string `gorm:"type:text"`
	Source      string `gorm:"size:16;index"`
	CreatedAt   time.Time
}

func (Interaction) TableName() string { return "user_messages" }

// Recorder abstracts persistence of interactions.
// AppendInteraction must be safe for concurrent use.
type Recorder interface {
	AppendInteraction(interaction Interaction) error
}

// DayStats aggregates one calendar day of interactions.
type DayStats struct {
	Date        string
	Total       int64
	UniqueUsers int64
	BySource    map[string]int64
}
