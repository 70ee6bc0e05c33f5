package combat

import (
	"github.com/KirkDiggler/combat-api/internal/content"
	"github.com/KirkDiggler/combat-api/internal/entities"
)

// InitializeCombatInput defines the input for starting a fight
type InitializeCombatInput struct {
	Player    *entities.Player
	MonsterID string
}

// InitializeCombatOutput defines the output for starting a fight
type InitializeCombatOutput struct {
	Monster *entities.MonsterInstance
	// AvailableAbilities are the abilities usable with the player's
	// equipped weapon at fight start.
	AvailableAbilities []content.Ability
}

// ProcessTurnInput defines the input for processing a combat turn
type ProcessTurnInput struct {
	Player *entities.Player
}

// ProcessTurnOutput defines the output for processing a combat turn.
// PlayerDamage is damage dealt to the player this turn; MonsterDamage is
// damage dealt to the monster.
type ProcessTurnOutput struct {
	PlayerAttacked  bool
	MonsterAttacked bool
	PlayerDamage    int
	MonsterDamage   int
	PlayerDefeated  bool
	MonsterDefeated bool
}

// UseAbilityInput defines the input for using an active ability
type UseAbilityInput struct {
	Player    *entities.Player
	AbilityID string
}

// UseAbilityOutput defines the output for using an active ability
type UseAbilityOutput struct {
	AbilityName     string
	Damage          int
	IsCrit          bool
	IsDodge         bool
	MonsterDefeated bool
}

// AwardRewardsInput defines the input for settling a concluded fight
type AwardRewardsInput struct {
	Player  *entities.Player
	Victory bool
}

// AwardRewardsOutput defines the output for settling a concluded fight.
// Gold and Experience are set on victory; GoldLost on defeat.
type AwardRewardsOutput struct {
	Gold          int
	GoldLost      int
	Experience    int
	Items         []entities.ItemInstance
	SkillProgress *entities.SkillProgress
}

// FleeInput defines the input for abandoning a fight
type FleeInput struct {
	Player *entities.Player
}

// FleeOutput defines the output for abandoning a fight
type FleeOutput struct {
	// Empty for now, can be extended later
}

// ListWeaponAbilitiesInput defines the input for listing usable abilities
type ListWeaponAbilitiesInput struct {
	Player *entities.Player
}

// ListWeaponAbilitiesOutput defines the output for listing usable abilities
type ListWeaponAbilitiesOutput struct {
	Abilities []content.Ability
}
