package entities

// DefaultSkillScalar is the skill that governs unarmed and untyped weapons.
const DefaultSkillScalar = "oneHanded"

// WeaponProfile is the derived view of whatever an entity attacks with:
// an equipped item, a monster's natural weapon, or bare fists.
type WeaponProfile struct {
	Name        string  `json:"name"`
	DamageRoll  string  `json:"damageRoll"`
	AttackSpeed float64 `json:"attackSpeed"` // seconds between attacks
	CritChance  float64 `json:"critChance"`
	SkillScalar string  `json:"skillScalar"`
}

// Unarmed returns the profile substituted when an entity has no weapon
// equipped.
func Unarmed() WeaponProfile {
	return WeaponProfile{
		Name:        "Unarmed",
		DamageRoll:  "1d2",
		AttackSpeed: 3.0,
		CritChance:  0.05,
		SkillScalar: DefaultSkillScalar,
	}
}

// MonsterArmor is a monster's worn armor entry.
type MonsterArmor struct {
	Name    string `json:"name"`
	Armor   int    `json:"armor"`
	Evasion int    `json:"evasion"`
}

// MonsterEquipment holds a monster's weapon, armor, and natural attacks.
// Claws and teeth live in Natural for creatures that carry nothing.
type MonsterEquipment struct {
	Weapon  *WeaponProfile `json:"weapon,omitempty"`
	Armor   *MonsterArmor  `json:"armor,omitempty"`
	Natural *WeaponProfile `json:"natural,omitempty"`
}
