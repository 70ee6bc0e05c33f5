package entities

// GoldRange is the inclusive gold drop range for a defeated monster.
type GoldRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// BaseCombatStats are an entity's innate armor and evasion before equipment
// and passives.
type BaseCombatStats struct {
	Armor   int `json:"armor"`
	Evasion int `json:"evasion"`
}

// MonsterInstance is the runtime snapshot of a monster definition taken when
// combat starts. It is owned exclusively by the combat session it belongs
// to; health deduction goes through CombatSession.DamageMonster, never
// through external aliases.
type MonsterInstance struct {
	InstanceID       string               `json:"instanceId"`
	MonsterID        string               `json:"monsterId"`
	Name             string               `json:"name"`
	Level            int                  `json:"level"`
	Health           Pool                 `json:"health"`
	Mana             Pool                 `json:"mana"`
	Attributes       map[string]Attribute `json:"attributes"`
	Skills           map[string]Skill     `json:"skills"`
	Equipment        MonsterEquipment     `json:"equipment"`
	CombatStats      BaseCombatStats      `json:"combatStats"`
	PassiveAbilities []PassiveAbility     `json:"passiveAbilities,omitempty"`
	LootTables       []string             `json:"lootTables,omitempty"`
	GoldDrop         GoldRange            `json:"goldDrop"`
	Experience       int                  `json:"experience"`
}

// GetID returns the instance's unique ID.
func (m *MonsterInstance) GetID() string {
	return m.InstanceID
}

// GetType returns the entity type.
func (m *MonsterInstance) GetType() string {
	return "monster"
}

// HealthPool returns the instance's health pool.
func (m *MonsterInstance) HealthPool() *Pool {
	return &m.Health
}

// AttributeNamed returns the named attribute and whether it exists.
func (m *MonsterInstance) AttributeNamed(name string) (Attribute, bool) {
	attr, ok := m.Attributes[name]
	return attr, ok
}

// SkillNamed returns the named skill and whether it exists.
func (m *MonsterInstance) SkillNamed(name string) (Skill, bool) {
	skill, ok := m.Skills[name]
	return skill, ok
}

// Passives returns the instance's passive abilities.
func (m *MonsterInstance) Passives() []PassiveAbility {
	return m.PassiveAbilities
}
