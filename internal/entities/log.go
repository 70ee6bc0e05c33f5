package entities

import "time"

// LogCategory classifies a combat log entry.
type LogCategory string

// Combat log categories.
const (
	LogDamage  LogCategory = "damage"
	LogCrit    LogCategory = "crit"
	LogDodge   LogCategory = "dodge"
	LogAbility LogCategory = "ability"
	LogSystem  LogCategory = "system"
)

// Log actors.
const (
	ActorPlayer  = "player"
	ActorMonster = "monster"
)

// CombatLogEntry is one event in a session's combat log.
type CombatLogEntry struct {
	Timestamp time.Time   `json:"timestamp"`
	Category  LogCategory `json:"category"`
	Actor     string      `json:"actor,omitempty"`
	Message   string      `json:"message"`
	Damage    int         `json:"damage,omitempty"`
}
