package combat

import (
	"github.com/KirkDiggler/combat-api/internal/content"
	"github.com/KirkDiggler/combat-api/internal/entities"
)

// snapshotMonster copies a monster definition into a runtime instance the
// session owns. Maps and slices are copied so a fight never aliases the
// shared definition.
func snapshotMonster(def *content.Monster, instanceID string) *entities.MonsterInstance {
	attributes := make(map[string]entities.Attribute, len(def.Attributes))
	for name, attr := range def.Attributes {
		attributes[name] = attr
	}
	skills := make(map[string]entities.Skill, len(def.Skills))
	for name, skill := range def.Skills {
		skills[name] = skill
	}

	// A fresh instance always enters the fight at full health and mana,
	// whatever the definition's authored current values.
	health := def.Stats.Health
	health.Fill()
	mana := def.Stats.Mana
	mana.Fill()

	instance := &entities.MonsterInstance{
		InstanceID:  instanceID,
		MonsterID:   def.MonsterID,
		Name:        def.Name,
		Level:       def.Level,
		Health:      health,
		Mana:        mana,
		Attributes:  attributes,
		Skills:      skills,
		CombatStats: def.CombatStats,
		GoldDrop:    def.GoldDrop,
		Experience:  def.Experience,
	}

	if def.Equipment.Weapon != nil {
		weapon := *def.Equipment.Weapon
		instance.Equipment.Weapon = &weapon
	}
	if def.Equipment.Armor != nil {
		armor := *def.Equipment.Armor
		instance.Equipment.Armor = &armor
	}
	if def.Equipment.Natural != nil {
		natural := *def.Equipment.Natural
		instance.Equipment.Natural = &natural
	}

	instance.PassiveAbilities = append(instance.PassiveAbilities, def.PassiveAbilities...)
	instance.LootTables = append(instance.LootTables, def.LootTables...)

	return instance
}
