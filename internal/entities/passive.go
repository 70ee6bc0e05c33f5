package entities

// TriggerBelowHalfHealth marks a passive damage bonus that only applies
// while the owner is below 50% of max health.
const TriggerBelowHalfHealth = "below_50_percent_hp"

// PassiveEffects is the closed set of modifiers a passive ability can carry.
// Zero values mean the effect is absent.
type PassiveEffects struct {
	ArmorBonus      int     `json:"armorBonus,omitempty"`
	EvasionBonus    int     `json:"evasionBonus,omitempty"`
	CritChanceBonus float64 `json:"critChanceBonus,omitempty"`
	DamageBonus     float64 `json:"damageBonus,omitempty"`
	Trigger         string  `json:"trigger,omitempty"`
}

// PassiveAbility is an always-present or conditionally triggered modifier on
// an entity.
type PassiveAbility struct {
	AbilityID   string         `json:"abilityId"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Effects     PassiveEffects `json:"effects"`
}
