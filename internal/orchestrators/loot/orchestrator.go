// Package loot implements the loot orchestrator for resolving weighted drop tables
package loot

//go:generate mockgen -destination=mock/mock_service.go -package=lootmock github.com/KirkDiggler/combat-api/internal/orchestrators/loot Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/combat-api/internal/content"
	"github.com/KirkDiggler/combat-api/internal/dice"
	"github.com/KirkDiggler/combat-api/internal/errors"
)

// Nested tables deeper than this resolve to nothing. Authored content should
// never get close; hitting the limit is logged as a content bug.
const maxTableDepth = 5

// Service defines the interface for loot resolution
type Service interface {
	// RollTable resolves one drop table to a single drop, or nil for
	// nothing. Unknown tables and over-deep nesting resolve to nothing
	// rather than erroring.
	RollTable(ctx context.Context, input *RollTableInput) (*RollTableOutput, error)

	// RollTables resolves several tables independently and collects the
	// non-nothing drops
	RollTables(ctx context.Context, input *RollTablesInput) (*RollTablesOutput, error)

	// TableStats summarizes a table's entries and odds for tooling
	TableStats(ctx context.Context, input *TableStatsInput) (*TableStatsOutput, error)
}

// Config holds the dependencies for the loot orchestrator
type Config struct {
	Tables *content.Store[content.DropTable]
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Tables == nil {
		vb.RequiredField("Tables")
	}

	return vb.Build()
}

type orchestrator struct {
	tables *content.Store[content.DropTable]
}

// NewOrchestrator creates a new loot orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		tables: cfg.Tables,
	}, nil
}

func (o *orchestrator) RollTable(ctx context.Context, input *RollTableInput) (*RollTableOutput, error) {
	if input == nil || input.DropTableID == "" {
		return nil, errors.InvalidArgument("drop table ID is required")
	}

	drop, err := o.rollTable(ctx, input.DropTableID, input.Options, 0)
	if err != nil {
		return nil, err
	}

	return &RollTableOutput{Drop: drop}, nil
}

func (o *orchestrator) RollTables(ctx context.Context, input *RollTablesInput) (*RollTablesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	drops := make([]*Drop, 0, len(input.DropTableIDs))
	for _, tableID := range input.DropTableIDs {
		drop, err := o.rollTable(ctx, tableID, input.Options, 0)
		if err != nil {
			return nil, err
		}
		if drop != nil {
			drops = append(drops, drop)
		}
	}

	return &RollTablesOutput{Drops: drops}, nil
}

func (o *orchestrator) TableStats(ctx context.Context, input *TableStatsInput) (*TableStatsOutput, error) {
	if input == nil || input.DropTableID == "" {
		return nil, errors.InvalidArgument("drop table ID is required")
	}

	table, ok := o.tables.Get(input.DropTableID)
	if !ok {
		return nil, errors.NotFoundf("drop table %s not found", input.DropTableID)
	}

	totalWeight := table.TotalWeight()
	entries := make([]EntryStats, 0, len(table.Entries))
	for i := range table.Entries {
		entry := &table.Entries[i]
		stats := EntryStats{
			Kind:   entry.Kind(),
			Weight: entry.Weight,
			Chance: float64(entry.Weight) / float64(totalWeight),
		}
		switch stats.Kind {
		case content.EntryItem:
			stats.ReferenceID = entry.ItemID
		case content.EntryTable:
			stats.ReferenceID = entry.DropTableID
		}
		entries = append(entries, stats)
	}

	return &TableStatsOutput{
		DropTableID: table.DropTableID,
		Name:        table.Name,
		TotalWeight: totalWeight,
		Entries:     entries,
	}, nil
}

// rollTable resolves one table at the given nesting depth. A nil drop with a
// nil error means the table resolved to nothing.
func (o *orchestrator) rollTable(ctx context.Context, tableID string, opts *RollOptions, depth int) (*Drop, error) {
	if depth > maxTableDepth {
		slog.WarnContext(ctx, "drop table nesting exceeds depth limit, resolving to nothing",
			"drop_table_id", tableID,
			"depth", depth)
		return nil, nil
	}

	// Unknown tables degrade to nothing so one dangling reference in a
	// monster's loot list cannot void the rest of its drops.
	table, ok := o.tables.Get(tableID)
	if !ok {
		slog.WarnContext(ctx, "unknown drop table, resolving to nothing",
			"drop_table_id", tableID,
			"depth", depth)
		return nil, nil
	}

	entry := pickEntry(&table)
	if entry == nil {
		return nil, errors.Internalf("drop table %s has no pickable entries", tableID)
	}

	switch entry.Kind() {
	case content.EntryNothing:
		return nil, nil
	case content.EntryTable:
		// Options pass through nested tables unchanged.
		return o.rollTable(ctx, entry.DropTableID, opts, depth+1)
	default:
		return resolveItemEntry(entry, opts), nil
	}
}

// pickEntry draws one entry by weight, scanning entries in authored order.
func pickEntry(table *content.DropTable) *content.DropEntry {
	weights := make([]int, len(table.Entries))
	for i := range table.Entries {
		weights[i] = table.Entries[i].Weight
	}

	idx, ok := dice.PickWeighted(weights)
	if !ok {
		return nil
	}
	return &table.Entries[idx]
}

func resolveItemEntry(entry *content.DropEntry, opts *RollOptions) *Drop {
	quantity := entry.Quantity.Min
	if entry.Quantity.Max > entry.Quantity.Min {
		quantity = dice.IntBetween(entry.Quantity.Min, entry.Quantity.Max)
	}

	drop := &Drop{
		ItemID:            entry.ItemID,
		Quantity:          quantity,
		QualityBonus:      entry.QualityBonus,
		QualityMultiplier: entry.QualityMultiplier,
	}
	if opts != nil {
		drop.QualityMultiplier += opts.QualityMultiplierBonus
	}
	return drop
}
