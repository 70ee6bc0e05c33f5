package content

import (
	"encoding/json"

	"github.com/KirkDiggler/combat-api/internal/errors"
)

// EntryKind tags what a drop-table entry resolves to. Entry shape is
// classified once at load so the resolver dispatches on the tag instead of
// sniffing populated fields.
type EntryKind string

const (
	// EntryItem awards an item stack.
	EntryItem EntryKind = "item"
	// EntryTable recurses into a nested drop table.
	EntryTable EntryKind = "table"
	// EntryNothing awards nothing. Weighted empty slots keep table odds
	// explicit instead of relying on weights summing short.
	EntryNothing EntryKind = "nothing"
)

// QuantityRange is an inclusive item-count range. Content may author it as
// a bare number or as a {"min","max"} object.
type QuantityRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// UnmarshalJSON accepts either 3 or {"min": 1, "max": 3}.
func (q *QuantityRange) UnmarshalJSON(data []byte) error {
	var fixed int
	if err := json.Unmarshal(data, &fixed); err == nil {
		q.Min = fixed
		q.Max = fixed
		return nil
	}

	type quantityRange QuantityRange
	var ranged quantityRange
	if err := json.Unmarshal(data, &ranged); err != nil {
		return errors.Wrap(err, "quantity must be a number or a min/max object")
	}
	*q = QuantityRange(ranged)
	return nil
}

// MarshalJSON writes fixed quantities back as a bare number.
func (q QuantityRange) MarshalJSON() ([]byte, error) {
	if q.Min == q.Max {
		return json.Marshal(q.Min)
	}
	type quantityRange QuantityRange
	return json.Marshal(quantityRange(q))
}

// IsZero reports whether the range was never authored.
func (q QuantityRange) IsZero() bool {
	return q.Min == 0 && q.Max == 0
}

// QualityBonus maps quality names to flat bonuses. Content may author it as
// a bare number, which applies to every quality the item carries.
type QualityBonus map[string]int

// UnmarshalJSON accepts either 5 or {"sharpness": 5, "balance": 2}.
func (b *QualityBonus) UnmarshalJSON(data []byte) error {
	var flat int
	if err := json.Unmarshal(data, &flat); err == nil {
		*b = QualityBonus{"*": flat}
		return nil
	}

	var named map[string]int
	if err := json.Unmarshal(data, &named); err != nil {
		return errors.Wrap(err, "quality bonus must be a number or a quality/bonus object")
	}
	*b = QualityBonus(named)
	return nil
}

// DropEntry is one weighted slot in a drop table. Exactly one of ItemID,
// DropTableID, or DropNothing identifies what the slot yields; Kind reports
// which after classification.
type DropEntry struct {
	ItemID            string        `json:"itemId,omitempty"`
	DropTableID       string        `json:"dropTableId,omitempty"`
	Type              string        `json:"type,omitempty"`
	DropNothing       bool          `json:"dropNothing,omitempty"`
	Weight            int           `json:"weight"`
	Quantity          QuantityRange `json:"quantity,omitzero"`
	QualityBonus      QualityBonus  `json:"qualityBonus,omitempty"`
	QualityMultiplier float64       `json:"qualityMultiplier,omitempty"`
}

// Kind classifies the entry. An explicit dropNothing flag wins over any
// stray IDs. A nested table is either typed "dropTable" outright or carries
// a table ID without an item ID.
func (e *DropEntry) Kind() EntryKind {
	switch {
	case e.DropNothing:
		return EntryNothing
	case e.Type == "dropTable" || (e.DropTableID != "" && e.ItemID == ""):
		return EntryTable
	default:
		return EntryItem
	}
}

// DropTable is a static weighted loot table. Entries may nest further
// tables by ID.
type DropTable struct {
	DropTableID string      `json:"dropTableId"`
	Name        string      `json:"name,omitempty"`
	Description string      `json:"description,omitempty"`
	Entries     []DropEntry `json:"entries"`
}

// Validate checks a drop table definition at content-load time. Nested
// table references are checked for existence by the library once every
// table is loaded.
func (t *DropTable) Validate() error {
	if t.DropTableID == "" {
		return errors.InvalidArgument("drop table ID is required")
	}
	if len(t.Entries) == 0 {
		return errors.InvalidArgumentf("drop table %s: at least one entry is required", t.DropTableID)
	}
	for i := range t.Entries {
		entry := &t.Entries[i]
		if entry.Weight <= 0 {
			return errors.InvalidArgumentf("drop table %s: entry %d: weight must be positive", t.DropTableID, i)
		}
		switch entry.Kind() {
		case EntryItem:
			if entry.ItemID == "" {
				return errors.InvalidArgumentf("drop table %s: entry %d: item ID is required", t.DropTableID, i)
			}
			if entry.Quantity.IsZero() {
				return errors.InvalidArgumentf("drop table %s: entry %d: quantity is required", t.DropTableID, i)
			}
			if entry.Quantity.Min < 1 || entry.Quantity.Max < entry.Quantity.Min {
				return errors.InvalidArgumentf("drop table %s: entry %d: quantity range [%d,%d] is invalid",
					t.DropTableID, i, entry.Quantity.Min, entry.Quantity.Max)
			}
		case EntryTable:
			if entry.DropTableID == "" {
				return errors.InvalidArgumentf("drop table %s: entry %d: nested drop table ID is required", t.DropTableID, i)
			}
		}
	}
	return nil
}

// TotalWeight sums the entry weights.
func (t *DropTable) TotalWeight() int {
	total := 0
	for i := range t.Entries {
		total += t.Entries[i].Weight
	}
	return total
}
