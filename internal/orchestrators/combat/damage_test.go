package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/combat-api/internal/entities"
)

func TestApplyPassiveDamageBonusesFloorsPerPassive(t *testing.T) {
	m := &entities.MonsterInstance{
		Health: entities.NewPool(30),
		PassiveAbilities: []entities.PassiveAbility{
			{AbilityID: "a", Effects: entities.PassiveEffects{DamageBonus: 0.1}},
			{AbilityID: "b", Effects: entities.PassiveEffects{DamageBonus: 0.1}},
		},
	}

	// Each bonus truncates before the next applies: 5*1.1 -> 5, 5*1.1 -> 5.
	// A single float pass would give int(5*1.21) = 6.
	assert.Equal(t, 5, applyPassiveDamageBonuses(m, 5))

	// 10 -> 11 -> 12, same as the float pass here, so both passives count.
	assert.Equal(t, 12, applyPassiveDamageBonuses(m, 10))
}

func TestApplyPassiveDamageBonusesSkipsDormantTrigger(t *testing.T) {
	m := &entities.MonsterInstance{
		Health: entities.NewPool(30),
		PassiveAbilities: []entities.PassiveAbility{{
			AbilityID: "rage",
			Effects: entities.PassiveEffects{
				DamageBonus: 1.0,
				Trigger:     entities.TriggerBelowHalfHealth,
			},
		}},
	}

	assert.Equal(t, 4, applyPassiveDamageBonuses(m, 4))

	m.Health.Current = 10
	assert.Equal(t, 8, applyPassiveDamageBonuses(m, 4))
}
