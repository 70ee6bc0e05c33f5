// Package content holds the static game-content registries the combat
// engine reads: monster, ability, and item definitions plus drop tables.
// Registries are read-only after load; Reload swaps whole definition maps
// atomically so readers never observe a partially rebuilt set.
package content

import (
	"github.com/KirkDiggler/combat-api/internal/dice"
	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/errors"
)

// MonsterStats holds a monster definition's resource pools.
type MonsterStats struct {
	Health entities.Pool `json:"health"`
	Mana   entities.Pool `json:"mana"`
}

// Monster is a static monster definition. Runtime state lives in
// entities.MonsterInstance, snapshotted from this at combat start.
type Monster struct {
	MonsterID        string                        `json:"monsterId"`
	Name             string                        `json:"name"`
	Description      string                        `json:"description,omitempty"`
	Level            int                           `json:"level"`
	Stats            MonsterStats                  `json:"stats"`
	Attributes       map[string]entities.Attribute `json:"attributes,omitempty"`
	Skills           map[string]entities.Skill     `json:"skills,omitempty"`
	Equipment        entities.MonsterEquipment     `json:"equipment"`
	CombatStats      entities.BaseCombatStats      `json:"combatStats"`
	PassiveAbilities []entities.PassiveAbility     `json:"passiveAbilities,omitempty"`
	LootTables       []string                      `json:"lootTables,omitempty"`
	GoldDrop         entities.GoldRange            `json:"goldDrop"`
	Experience       int                           `json:"experience"`
}

// Validate checks a monster definition at content-load time.
func (m *Monster) Validate() error {
	if m.MonsterID == "" {
		return errors.InvalidArgument("monster ID is required")
	}
	if m.Stats.Health.Max <= 0 {
		return errors.InvalidArgumentf("monster %s: max health must be positive", m.MonsterID)
	}
	for _, weapon := range []*entities.WeaponProfile{m.Equipment.Weapon, m.Equipment.Natural} {
		if weapon == nil {
			continue
		}
		if _, _, _, err := dice.ParseNotation(weapon.DamageRoll); err != nil {
			return errors.Wrapf(err, "monster %s: weapon %q", m.MonsterID, weapon.Name)
		}
		if weapon.AttackSpeed <= 0 {
			return errors.InvalidArgumentf("monster %s: weapon %q: attack speed must be positive", m.MonsterID, weapon.Name)
		}
	}
	if m.GoldDrop.Min < 0 || m.GoldDrop.Max < m.GoldDrop.Min {
		return errors.InvalidArgumentf("monster %s: gold drop range [%d,%d] is invalid", m.MonsterID, m.GoldDrop.Min, m.GoldDrop.Max)
	}
	return nil
}

// AbilityRequirements gate which weapons an ability can be used with.
type AbilityRequirements struct {
	WeaponTypes   []string `json:"weaponTypes,omitempty"`
	MinSkillLevel int      `json:"minSkillLevel,omitempty"`
}

// AbilityEffects are the modifiers an active ability applies on use.
type AbilityEffects struct {
	CritChanceBonus float64 `json:"critChanceBonus,omitempty"`
}

// Ability is a static active-ability definition.
type Ability struct {
	AbilityID       string              `json:"abilityId"`
	Name            string              `json:"name"`
	Description     string              `json:"description,omitempty"`
	Type            string              `json:"type,omitempty"`
	TargetType      string              `json:"targetType,omitempty"`
	PowerMultiplier float64             `json:"powerMultiplier"`
	ManaCost        int                 `json:"manaCost"`
	CooldownSeconds float64             `json:"cooldown"`
	Requirements    AbilityRequirements `json:"requirements"`
	Effects         AbilityEffects      `json:"effects"`
}

// Validate checks an ability definition at content-load time.
func (a *Ability) Validate() error {
	if a.AbilityID == "" {
		return errors.InvalidArgument("ability ID is required")
	}
	if a.PowerMultiplier < 0 {
		return errors.InvalidArgumentf("ability %s: power multiplier must not be negative", a.AbilityID)
	}
	if a.ManaCost < 0 {
		return errors.InvalidArgumentf("ability %s: mana cost must not be negative", a.AbilityID)
	}
	if a.CooldownSeconds < 0 {
		return errors.InvalidArgumentf("ability %s: cooldown must not be negative", a.AbilityID)
	}
	return nil
}

// UsableWith reports whether the ability can be used with a weapon governed
// by the given skill.
func (a *Ability) UsableWith(skillScalar string) bool {
	for _, weaponType := range a.Requirements.WeaponTypes {
		if weaponType == skillScalar {
			return true
		}
	}
	return false
}

// ItemProperties are the combat-relevant properties of an item definition.
// A non-empty DamageRoll marks the item as a weapon.
type ItemProperties struct {
	Armor       int     `json:"armor,omitempty"`
	Evasion     int     `json:"evasion,omitempty"`
	DamageRoll  string  `json:"damageRoll,omitempty"`
	AttackSpeed float64 `json:"attackSpeed,omitempty"`
	CritChance  float64 `json:"critChance,omitempty"`
	SkillScalar string  `json:"skillScalar,omitempty"`
}

// Item is a static item definition.
type Item struct {
	ItemID        string         `json:"itemId"`
	Name          string         `json:"name"`
	Category      string         `json:"category,omitempty"`
	Subcategories []string       `json:"subcategories,omitempty"`
	Properties    ItemProperties `json:"properties"`
}

// Validate checks an item definition at content-load time.
func (i *Item) Validate() error {
	if i.ItemID == "" {
		return errors.InvalidArgument("item ID is required")
	}
	if i.Properties.DamageRoll != "" {
		if _, _, _, err := dice.ParseNotation(i.Properties.DamageRoll); err != nil {
			return errors.Wrapf(err, "item %s", i.ItemID)
		}
	}
	if i.Properties.AttackSpeed < 0 {
		return errors.InvalidArgumentf("item %s: attack speed must not be negative", i.ItemID)
	}
	return nil
}

// WeaponProfile derives the weapon view of the item, filling authored gaps
// with the unarmed defaults.
func (i *Item) WeaponProfile() entities.WeaponProfile {
	profile := entities.Unarmed()
	profile.Name = i.Name
	if i.Properties.DamageRoll != "" {
		profile.DamageRoll = i.Properties.DamageRoll
	}
	if i.Properties.AttackSpeed > 0 {
		profile.AttackSpeed = i.Properties.AttackSpeed
	}
	// Zero is a legitimate crit chance, not an unset one.
	profile.CritChance = i.Properties.CritChance
	if i.Properties.SkillScalar != "" {
		profile.SkillScalar = i.Properties.SkillScalar
	}
	return profile
}
