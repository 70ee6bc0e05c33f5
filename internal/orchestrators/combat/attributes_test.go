package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/combat-api/internal/orchestrators/combat"
)

func TestArmorReduction(t *testing.T) {
	assert.Equal(t, 0.0, combat.ArmorReduction(0))
	assert.Equal(t, 0.0, combat.ArmorReduction(-50))
	assert.InDelta(t, 0.5, combat.ArmorReduction(1000), 1e-9)

	// Strictly increasing, never reaching 1.
	prev := -1.0
	for armor := 0; armor <= 50000; armor += 250 {
		reduction := combat.ArmorReduction(armor)
		assert.Greater(t, reduction, prev, "armor %d", armor)
		assert.Less(t, reduction, 1.0, "armor %d", armor)
		prev = reduction
	}
}

func TestDodgeChance(t *testing.T) {
	assert.Equal(t, 0.0, combat.DodgeChance(0))
	assert.Equal(t, 0.0, combat.DodgeChance(-10))
	assert.InDelta(t, 0.5, combat.DodgeChance(1000), 1e-9)

	// At 3000 evasion the natural value is exactly 0.75; verify the cap
	// already holds just past it.
	assert.InDelta(t, 0.75, combat.DodgeChance(3000), 1e-9)
	assert.Equal(t, 0.75, combat.DodgeChance(3001))
	assert.Equal(t, 0.75, combat.DodgeChance(1000000))
}
