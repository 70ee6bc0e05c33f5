package combat

import (
	"github.com/KirkDiggler/combat-api/internal/dice"
	"github.com/KirkDiggler/combat-api/internal/errors"
)

// Level scaling caps. Skill and attribute each contribute at most +2.
const (
	levelBonusDivisor = 10
	levelBonusCap     = 2
)

type resolveOptions struct {
	isAbility    bool
	abilityPower float64
	critBonus    float64
}

type damageResult struct {
	Damage     int
	IsCrit     bool
	IsDodge    bool
	WeaponName string
}

// resolveDamage runs one attack through the full pipeline: weapon roll,
// ability multiplier, level scaling, crit, passive damage bonuses, dodge,
// armor mitigation, and the 1-damage floor.
func (o *orchestrator) resolveDamage(attacker, defender Combatant, opts resolveOptions) (*damageResult, error) {
	weapon := o.weaponProfile(attacker)
	if weapon == nil {
		// Nothing derivable to swing with. A flat hit keeps the fight
		// moving instead of stalling on broken equipment references.
		return &damageResult{Damage: 1, WeaponName: "Fists"}, nil
	}

	damage, err := dice.Roll(weapon.DamageRoll)
	if err != nil {
		return nil, errors.Wrapf(err, "rolling %s for %s", weapon.DamageRoll, attacker.GetID())
	}

	if opts.isAbility {
		damage = int(float64(damage) * opts.abilityPower)
	}

	damage += levelBonus(attacker, weapon.SkillScalar)

	critChance := weapon.CritChance + opts.critBonus + passiveCritBonus(attacker)
	isCrit := dice.Chance(critChance)
	if isCrit {
		damage *= 2
	}

	damage = applyPassiveDamageBonuses(attacker, damage)

	if dice.Chance(DodgeChance(o.totalEvasion(defender))) {
		return &damageResult{IsDodge: true, WeaponName: weapon.Name}, nil
	}

	mitigation := ArmorReduction(o.totalArmor(defender))
	damage = int(float64(damage) * (1 - mitigation))

	if damage < 1 {
		damage = 1
	}

	return &damageResult{
		Damage:     damage,
		IsCrit:     isCrit,
		WeaponName: weapon.Name,
	}, nil
}

// levelBonus is the diminishing flat bonus from the governing skill and its
// linked attribute, at most +4 total. Missing skills and attributes count
// as level 1.
func levelBonus(attacker Combatant, skillScalar string) int {
	skillLevel := 1
	attrLevel := 1

	if skill, ok := attacker.SkillNamed(skillScalar); ok {
		skillLevel = skill.Level
		if attr, found := attacker.AttributeNamed(skill.MainAttribute); found {
			attrLevel = attr.Level
		}
	}

	return min(levelBonusCap, skillLevel/levelBonusDivisor) +
		min(levelBonusCap, attrLevel/levelBonusDivisor)
}

// applyPassiveDamageBonuses multiplies in each active passive's damage
// bonus, truncating after every passive. Triggered bonuses only count while
// the trigger holds, which passiveActive already checks against the
// attacker's health.
func applyPassiveDamageBonuses(attacker Combatant, damage int) int {
	passives := attacker.Passives()
	for i := range passives {
		bonus := passives[i].Effects.DamageBonus
		if bonus == 0 {
			continue
		}
		if passiveActive(attacker, &passives[i]) {
			damage = int(float64(damage) * (1 + bonus))
		}
	}
	return damage
}
