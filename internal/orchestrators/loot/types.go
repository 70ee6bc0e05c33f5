package loot

import "github.com/KirkDiggler/combat-api/internal/content"

// RollOptions tune a roll without changing the table. They pass through
// nested tables unchanged, so a bonus applies at whatever depth the draw
// lands.
type RollOptions struct {
	QualityMultiplierBonus float64
}

// Drop is one resolved item drop. A nil Drop means the table resolved to
// nothing.
type Drop struct {
	ItemID            string
	Quantity          int
	QualityBonus      content.QualityBonus
	QualityMultiplier float64
}

// RollTableInput defines the input for rolling a single drop table
type RollTableInput struct {
	DropTableID string
	Options     *RollOptions
}

// RollTableOutput defines the output for rolling a single drop table
type RollTableOutput struct {
	Drop *Drop
}

// RollTablesInput defines the input for rolling several drop tables
type RollTablesInput struct {
	DropTableIDs []string
	Options      *RollOptions
}

// RollTablesOutput defines the output for rolling several drop tables
type RollTablesOutput struct {
	Drops []*Drop
}

// TableStatsInput defines the input for summarizing a drop table
type TableStatsInput struct {
	DropTableID string
}

// EntryStats summarizes one entry of a drop table
type EntryStats struct {
	Kind        content.EntryKind
	ReferenceID string
	Weight      int
	Chance      float64
}

// TableStatsOutput defines the output for summarizing a drop table
type TableStatsOutput struct {
	DropTableID string
	Name        string
	TotalWeight int
	Entries     []EntryStats
}
