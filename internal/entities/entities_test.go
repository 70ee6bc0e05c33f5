package entities_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/combat-api/internal/entities"
)

func TestPool_ReduceClampsAtZero(t *testing.T) {
	p := entities.NewPool(10)

	removed := p.Reduce(4)
	assert.Equal(t, 4, removed)
	assert.Equal(t, 6, p.Current)

	removed = p.Reduce(100)
	assert.Equal(t, 6, removed)
	assert.Equal(t, 0, p.Current)
	assert.True(t, p.IsEmpty())

	// Reducing an empty pool is a no-op
	assert.Equal(t, 0, p.Reduce(5))
	assert.Equal(t, 0, p.Current)
}

func TestPool_RestoreClampsAtMax(t *testing.T) {
	p := entities.Pool{Current: 3, Max: 10}

	restored := p.Restore(100)
	assert.Equal(t, 7, restored)
	assert.Equal(t, 10, p.Current)

	p.Reduce(10)
	p.Fill()
	assert.Equal(t, 10, p.Current)
}

func TestPool_NegativeAmountsIgnored(t *testing.T) {
	p := entities.NewPool(10)
	assert.Equal(t, 0, p.Reduce(-5))
	assert.Equal(t, 10, p.Current)
	assert.Equal(t, 0, p.Restore(-5))
	assert.Equal(t, 10, p.Current)
}

func TestCombatSession_LogCap(t *testing.T) {
	s := entities.NewCombatSession(&entities.MonsterInstance{Health: entities.NewPool(10)}, time.Now(), time.Now(), time.Now())

	for i := 0; i < 60; i++ {
		s.AppendLog(entities.LogDamage, entities.ActorPlayer, fmt.Sprintf("hit %d", i), 1, time.Now())
	}

	assert.Len(t, s.Log, 50)
	assert.Equal(t, "hit 59", s.Log[len(s.Log)-1].Message)
	assert.Equal(t, "hit 10", s.Log[0].Message)
}

func TestCombatSession_DamageMonster(t *testing.T) {
	monster := &entities.MonsterInstance{Health: entities.NewPool(5)}
	s := entities.NewCombatSession(monster, time.Now(), time.Now(), time.Now())

	assert.False(t, s.DamageMonster(3))
	assert.Equal(t, 2, monster.Health.Current)
	assert.True(t, s.DamageMonster(10))
	assert.Equal(t, 0, monster.Health.Current)
}

func TestCombatSession_Cooldowns(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := entities.NewCombatSession(&entities.MonsterInstance{}, now, now, now)

	assert.Zero(t, s.CooldownRemaining("poison_strike", now))

	s.StartCooldown("poison_strike", now, 6*time.Second)
	assert.Equal(t, 6*time.Second, s.CooldownRemaining("poison_strike", now))
	assert.Equal(t, 2*time.Second, s.CooldownRemaining("poison_strike", now.Add(4*time.Second)))

	// Expired entries are pruned on observation
	assert.Zero(t, s.CooldownRemaining("poison_strike", now.Add(7*time.Second)))
	_, stillThere := s.AbilityCooldowns["poison_strike"]
	assert.False(t, stillThere)
}

func TestPlayer_TakeDamage(t *testing.T) {
	p := &entities.Player{Health: entities.NewPool(20)}

	assert.False(t, p.TakeDamage(19))
	assert.Equal(t, 1, p.Health.Current)
	assert.True(t, p.TakeDamage(5))
	assert.Equal(t, 0, p.Health.Current)
}

func TestPlayer_InCombat(t *testing.T) {
	p := &entities.Player{}
	assert.False(t, p.InCombat())

	p.ActiveCombat = entities.NewCombatSession(&entities.MonsterInstance{MonsterID: "forest_wolf"}, time.Now(), time.Now(), time.Now())
	assert.True(t, p.InCombat())

	p.ClearCombat()
	assert.False(t, p.InCombat())
}

func TestPlayer_AddSkillExperience(t *testing.T) {
	p := &entities.Player{
		Skills: map[string]entities.Skill{
			"oneHanded": {Level: 1, MainAttribute: "strength"},
		},
	}

	progress := p.AddSkillExperience("oneHanded", 50)
	assert.False(t, progress.LeveledUp)
	assert.Equal(t, 1, progress.NewLevel)

	// Level 1 -> 2 at 100 XP
	progress = p.AddSkillExperience("oneHanded", 60)
	assert.True(t, progress.LeveledUp)
	assert.Equal(t, 2, progress.NewLevel)
	assert.Equal(t, 10, p.Skills["oneHanded"].Experience)
}

func TestPlayer_AddSkillExperience_UnknownSkillStartsAtOne(t *testing.T) {
	p := &entities.Player{}
	progress := p.AddSkillExperience("ranged", 10)
	assert.Equal(t, 1, progress.NewLevel)
	assert.Equal(t, 10, p.Skills["ranged"].Experience)
}

func TestPlayer_EquippedInstanceIDs(t *testing.T) {
	p := &entities.Player{
		EquipmentSlots: map[string]string{
			entities.SlotMainHand: "inst_1",
			entities.SlotOffHand:  "",
			"chest":               "inst_2",
		},
	}

	ids := p.EquippedInstanceIDs()
	assert.Len(t, ids, 2)
	assert.ElementsMatch(t, []string{"inst_1", "inst_2"}, ids)
}

func TestUnarmedProfile(t *testing.T) {
	w := entities.Unarmed()
	assert.Equal(t, "1d2", w.DamageRoll)
	assert.Equal(t, 3.0, w.AttackSpeed)
	assert.Equal(t, 0.05, w.CritChance)
	assert.Equal(t, entities.DefaultSkillScalar, w.SkillScalar)
}
