package entities

// Attribute is a leveled primary attribute (strength, dexterity, ...).
type Attribute struct {
	Level      int `json:"level"`
	Experience int `json:"experience"`
}

// Skill is a leveled combat skill. MainAttribute names the attribute whose
// level contributes to damage scaling for weapons governed by this skill.
type Skill struct {
	Level         int    `json:"level"`
	Experience    int    `json:"experience"`
	MainAttribute string `json:"mainAttribute"`
}

// SkillProgress reports the outcome of awarding skill experience.
type SkillProgress struct {
	Skill     string `json:"skill"`
	Awarded   int    `json:"awarded"`
	LeveledUp bool   `json:"leveledUp"`
	NewLevel  int    `json:"newLevel"`
}

// skillLevelThreshold is the experience required to advance past the given
// level.
func skillLevelThreshold(level int) int {
	return level * 100
}
