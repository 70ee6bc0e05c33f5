package entities

import "time"

// CombatRecord is a player's lifetime combat counters.
type CombatRecord struct {
	MonstersDefeated int `json:"monstersDefeated"`
	TotalDamageDealt int `json:"totalDamageDealt"`
	TotalDamageTaken int `json:"totalDamageTaken"`
	CriticalHits     int `json:"criticalHits"`
	Dodges           int `json:"dodges"`
	Deaths           int `json:"deaths"`
}

// Player is the in-memory representation of a player character. The combat
// engine mutates it directly; persistence happens through the player
// repository when a fight settles.
type Player struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Gold             int                  `json:"gold"`
	Health           Pool                 `json:"health"`
	Mana             Pool                 `json:"mana"`
	Attributes       map[string]Attribute `json:"attributes"`
	Skills           map[string]Skill     `json:"skills"`
	EquipmentSlots   map[string]string    `json:"equipmentSlots,omitempty"` // slot -> instance ID
	Inventory        []ItemInstance       `json:"inventory,omitempty"`
	PassiveAbilities []PassiveAbility     `json:"passiveAbilities,omitempty"`
	CombatRecord     CombatRecord         `json:"combatRecord"`
	ActiveCombat     *CombatSession       `json:"activeCombat,omitempty"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
}

// GetID returns the player's ID.
func (p *Player) GetID() string {
	return p.ID
}

// GetType returns the entity type.
func (p *Player) GetType() string {
	return "player"
}

// HealthPool returns the player's health pool.
func (p *Player) HealthPool() *Pool {
	return &p.Health
}

// AttributeNamed returns the named attribute and whether it exists.
func (p *Player) AttributeNamed(name string) (Attribute, bool) {
	attr, ok := p.Attributes[name]
	return attr, ok
}

// SkillNamed returns the named skill and whether it exists.
func (p *Player) SkillNamed(name string) (Skill, bool) {
	skill, ok := p.Skills[name]
	return skill, ok
}

// Passives returns the player's passive abilities.
func (p *Player) Passives() []PassiveAbility {
	return p.PassiveAbilities
}

// InCombat reports whether the player has an active combat session.
func (p *Player) InCombat() bool {
	return p.ActiveCombat != nil && p.ActiveCombat.Monster != nil
}

// ClearCombat drops the active combat session.
func (p *Player) ClearCombat() {
	p.ActiveCombat = nil
}

// TakeDamage applies damage to the player and reports whether it was fatal.
func (p *Player) TakeDamage(amount int) bool {
	p.Health.Reduce(amount)
	return p.Health.IsEmpty()
}

// Heal restores health, clamped at max.
func (p *Player) Heal(amount int) int {
	return p.Health.Restore(amount)
}

// UseMana spends mana, clamped at zero.
func (p *Player) UseMana(amount int) {
	p.Mana.Reduce(amount)
}

// RestoreMana restores mana, clamped at max.
func (p *Player) RestoreMana(amount int) int {
	return p.Mana.Restore(amount)
}

// AddGold adds gold to the player's purse.
func (p *Player) AddGold(amount int) {
	p.Gold += amount
}

// Item returns the inventory item with the given instance ID, or nil.
func (p *Player) Item(instanceID string) *ItemInstance {
	for i := range p.Inventory {
		if p.Inventory[i].InstanceID == instanceID {
			return &p.Inventory[i]
		}
	}
	return nil
}

// AddItem appends an item instance to the player's inventory.
func (p *Player) AddItem(item ItemInstance) {
	p.Inventory = append(p.Inventory, item)
}

// EquippedInstanceIDs returns the instance IDs currently occupying
// equipment slots.
func (p *Player) EquippedInstanceIDs() []string {
	ids := make([]string, 0, len(p.EquipmentSlots))
	for _, instanceID := range p.EquipmentSlots {
		if instanceID != "" {
			ids = append(ids, instanceID)
		}
	}
	return ids
}

// AddSkillExperience awards experience to the named skill, leveling it up
// as thresholds are crossed. Unknown skills start at level 1.
func (p *Player) AddSkillExperience(name string, amount int) SkillProgress {
	if p.Skills == nil {
		p.Skills = make(map[string]Skill)
	}

	skill, ok := p.Skills[name]
	if !ok {
		skill = Skill{Level: 1, MainAttribute: "strength"}
	}

	startLevel := skill.Level
	skill.Experience += amount
	for skill.Experience >= skillLevelThreshold(skill.Level) {
		skill.Experience -= skillLevelThreshold(skill.Level)
		skill.Level++
	}
	p.Skills[name] = skill

	return SkillProgress{
		Skill:     name,
		Awarded:   amount,
		LeveledUp: skill.Level > startLevel,
		NewLevel:  skill.Level,
	}
}
