package combat

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/combat-api/internal/content"
	"github.com/KirkDiggler/combat-api/internal/entities"
)

// Combatant is either side of a fight. Players and monster instances both
// satisfy it.
type Combatant interface {
	core.Entity
	HealthPool() *entities.Pool
	AttributeNamed(name string) (entities.Attribute, bool)
	SkillNamed(name string) (entities.Skill, bool)
	Passives() []entities.PassiveAbility
}

// evasionCap bounds dodge chance; armor mitigation is deliberately uncapped
// and only approaches 1 asymptotically.
const evasionCap = 0.75

// ArmorReduction converts total armor into a damage mitigation fraction.
func ArmorReduction(armor int) float64 {
	if armor <= 0 {
		return 0
	}
	return float64(armor) / float64(armor+1000)
}

// DodgeChance converts total evasion into a dodge probability.
func DodgeChance(evasion int) float64 {
	if evasion <= 0 {
		return 0
	}
	chance := float64(evasion) / float64(evasion+1000)
	return min(evasionCap, chance)
}

// passiveActive reports whether a passive ability currently applies. A
// passive with no trigger always applies; a below-half-health trigger
// applies only while the owner is under 50% health.
func passiveActive(c Combatant, p *entities.PassiveAbility) bool {
	switch p.Effects.Trigger {
	case "":
		return true
	case entities.TriggerBelowHalfHealth:
		health := c.HealthPool()
		return health.Current*2 < health.Max
	default:
		return false
	}
}

// weaponProfile derives the combatant's equipped weapon view. Monsters use
// their weapon then their natural attack; players use the main-hand slot.
// An empty slot is a legitimate unarmed fighter; only a dangling instance
// or definition reference returns nil, which the damage pipeline treats as
// a fixed 1-damage hit.
func (o *orchestrator) weaponProfile(c Combatant) *entities.WeaponProfile {
	switch e := c.(type) {
	case *entities.MonsterInstance:
		if e.Equipment.Weapon != nil {
			return e.Equipment.Weapon
		}
		if e.Equipment.Natural != nil {
			return e.Equipment.Natural
		}
		unarmed := entities.Unarmed()
		return &unarmed
	case *entities.Player:
		instanceID := e.EquipmentSlots[entities.SlotMainHand]
		if instanceID == "" {
			unarmed := entities.Unarmed()
			return &unarmed
		}
		item := e.Item(instanceID)
		if item == nil {
			return nil
		}
		def, ok := o.content.Items.Get(item.ItemID)
		if !ok {
			return nil
		}
		profile := def.WeaponProfile()
		return &profile
	default:
		return nil
	}
}

// totalArmor sums base armor, active passive bonuses, and for players the
// armor of every equipped item across all slots.
func (o *orchestrator) totalArmor(c Combatant) int {
	total := 0
	passives := c.Passives()
	for i := range passives {
		if passiveActive(c, &passives[i]) {
			total += passives[i].Effects.ArmorBonus
		}
	}

	switch e := c.(type) {
	case *entities.MonsterInstance:
		total += e.CombatStats.Armor
	case *entities.Player:
		for _, item := range o.equippedItems(e) {
			total += item.Properties.Armor
		}
	}
	return total
}

// totalEvasion mirrors totalArmor for evasion.
func (o *orchestrator) totalEvasion(c Combatant) int {
	total := 0
	passives := c.Passives()
	for i := range passives {
		if passiveActive(c, &passives[i]) {
			total += passives[i].Effects.EvasionBonus
		}
	}

	switch e := c.(type) {
	case *entities.MonsterInstance:
		total += e.CombatStats.Evasion
	case *entities.Player:
		for _, item := range o.equippedItems(e) {
			total += item.Properties.Evasion
		}
	}
	return total
}

// passiveCritBonus sums critChanceBonus across active passives.
func passiveCritBonus(c Combatant) float64 {
	total := 0.0
	passives := c.Passives()
	for i := range passives {
		if passiveActive(c, &passives[i]) {
			total += passives[i].Effects.CritChanceBonus
		}
	}
	return total
}

// equippedItems resolves the definitions of everything the player wears,
// skipping dangling references.
func (o *orchestrator) equippedItems(p *entities.Player) []content.Item {
	var items []content.Item
	for _, instanceID := range p.EquippedInstanceIDs() {
		instance := p.Item(instanceID)
		if instance == nil {
			continue
		}
		if def, ok := o.content.Items.Get(instance.ItemID); ok {
			items = append(items, def)
		}
	}
	return items
}
