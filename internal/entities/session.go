package entities

import "time"

// maxLogEntries bounds the combat log; older entries are discarded.
const maxLogEntries = 50

// CombatSession is the per-player combat state machine. At most one session
// exists per player; it lives on Player.ActiveCombat from initialization
// until settlement (or flee) clears it.
type CombatSession struct {
	Monster           *MonsterInstance     `json:"monster"`
	PlayerNextAttack  time.Time            `json:"playerNextAttack"`
	MonsterNextAttack time.Time            `json:"monsterNextAttack"`
	TurnCount         int                  `json:"turnCount"`
	AbilityCooldowns  map[string]time.Time `json:"abilityCooldowns,omitempty"`
	Log               []CombatLogEntry     `json:"log,omitempty"`
	StartedAt         time.Time            `json:"startedAt"`
}

// NewCombatSession creates a session around a freshly snapshotted monster.
func NewCombatSession(monster *MonsterInstance, startedAt, playerNext, monsterNext time.Time) *CombatSession {
	return &CombatSession{
		Monster:           monster,
		PlayerNextAttack:  playerNext,
		MonsterNextAttack: monsterNext,
		AbilityCooldowns:  make(map[string]time.Time),
		StartedAt:         startedAt,
	}
}

// AppendLog records a combat event, trimming the log to its cap.
func (s *CombatSession) AppendLog(category LogCategory, actor, message string, damage int, at time.Time) {
	s.Log = append(s.Log, CombatLogEntry{
		Timestamp: at,
		Category:  category,
		Actor:     actor,
		Message:   message,
		Damage:    damage,
	})
	if len(s.Log) > maxLogEntries {
		s.Log = s.Log[len(s.Log)-maxLogEntries:]
	}
}

// DamageMonster deducts health from the monster snapshot and reports
// whether it was defeated. This is the only mutation path for the snapshot.
func (s *CombatSession) DamageMonster(amount int) bool {
	s.Monster.Health.Reduce(amount)
	return s.Monster.Health.IsEmpty()
}

// CooldownRemaining returns how long until the ability is usable again.
// Expired entries are pruned as they are observed.
func (s *CombatSession) CooldownRemaining(abilityID string, now time.Time) time.Duration {
	readyAt, ok := s.AbilityCooldowns[abilityID]
	if !ok {
		return 0
	}
	if !readyAt.After(now) {
		delete(s.AbilityCooldowns, abilityID)
		return 0
	}
	return readyAt.Sub(now)
}

// StartCooldown marks the ability unusable until now+d.
func (s *CombatSession) StartCooldown(abilityID string, now time.Time, d time.Duration) {
	if s.AbilityCooldowns == nil {
		s.AbilityCooldowns = make(map[string]time.Time)
	}
	s.AbilityCooldowns[abilityID] = now.Add(d)
}
