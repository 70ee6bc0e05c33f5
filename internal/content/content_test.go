package content_test

import (
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/combat-api/internal/content"
	"github.com/KirkDiggler/combat-api/internal/content/defaults"
	"github.com/KirkDiggler/combat-api/internal/errors"
)

type ContentTestSuite struct {
	suite.Suite
}

func (s *ContentTestSuite) TestLoadDefaults() {
	lib, err := content.LoadFS(defaults.FS())
	s.Require().NoError(err)

	s.Equal(3, lib.Monsters.Len())
	s.Equal(4, lib.Abilities.Len())
	s.Equal(5, lib.Items.Len())
	s.Equal(4, lib.DropTables.Len())

	goblin, ok := lib.Monsters.Get("goblin_scout")
	s.Require().True(ok)
	s.Equal("Goblin Scout", goblin.Name)
	s.Equal(45, goblin.Stats.Health.Max)
	s.Require().NotNil(goblin.Equipment.Weapon)
	s.Equal("1d4", goblin.Equipment.Weapon.DamageRoll)
	s.Equal([]string{"goblin_common"}, goblin.LootTables)

	wolf, ok := lib.Monsters.Get("forest_wolf")
	s.Require().True(ok)
	s.Nil(wolf.Equipment.Weapon)
	s.Require().NotNil(wolf.Equipment.Natural)
	s.Equal("Bite", wolf.Equipment.Natural.Name)
	s.Require().Len(wolf.PassiveAbilities, 1)
	s.Equal("below_50_percent_hp", wolf.PassiveAbilities[0].Effects.Trigger)
}

func (s *ContentTestSuite) TestLoadDefaultsDropTableShapes() {
	lib, err := content.LoadFS(defaults.FS())
	s.Require().NoError(err)

	bandit, ok := lib.DropTables.Get("bandit_common")
	s.Require().True(ok)
	s.Require().Len(bandit.Entries, 4)
	s.Equal(content.EntryItem, bandit.Entries[0].Kind())
	s.Equal(content.EntryTable, bandit.Entries[2].Kind())
	s.Equal("rare_valuables", bandit.Entries[2].DropTableID)
	s.Equal(content.EntryNothing, bandit.Entries[3].Kind())
	s.Equal(100, bandit.TotalWeight())

	pelts, ok := lib.DropTables.Get("wolf_pelts")
	s.Require().True(ok)
	s.Equal(content.QuantityRange{Min: 1, Max: 3}, pelts.Entries[0].Quantity)
	s.Equal(content.QualityBonus{"*": 2}, pelts.Entries[0].QualityBonus)
}

func (s *ContentTestSuite) TestAbilitiesForWeapon() {
	lib, err := content.LoadFS(defaults.FS())
	s.Require().NoError(err)

	oneHanded := lib.AbilitiesForWeapon("oneHanded")
	s.Require().Len(oneHanded, 2)
	s.Equal("heavy_swing", oneHanded[0].AbilityID)
	s.Equal("poison_strike", oneHanded[1].AbilityID)

	s.Empty(lib.AbilitiesForWeapon("polearm"))
}

func (s *ContentTestSuite) TestReloadRejectsBadContentAndKeepsOldSet() {
	lib, err := content.LoadFS(defaults.FS())
	s.Require().NoError(err)

	bad := fstest.MapFS{
		"monsters/broken.json": &fstest.MapFile{Data: []byte(`{"monsterId": "broken"}`)},
	}
	err = lib.ReloadFS(bad)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	// The failed reload must not disturb the previous set.
	s.Equal(3, lib.Monsters.Len())
	_, ok := lib.Monsters.Get("goblin_scout")
	s.True(ok)
}

func (s *ContentTestSuite) TestReloadRejectsUnknownNestedTable() {
	fsys := fstest.MapFS{
		"drop_tables/orphan.json": &fstest.MapFile{Data: []byte(`{
			"dropTableId": "orphan",
			"entries": [
				{ "type": "dropTable", "dropTableId": "no_such_table", "weight": 10 },
				{ "dropNothing": true, "weight": 90 }
			]
		}`)},
	}
	_, err := content.LoadFS(fsys)
	s.Require().Error(err)
	s.Contains(err.Error(), "no_such_table")
}

func (s *ContentTestSuite) TestReloadRejectsMonsterWithUnknownLootTable() {
	fsys := fstest.MapFS{
		"monsters/stray.json": &fstest.MapFile{Data: []byte(`{
			"monsterId": "stray",
			"name": "Stray",
			"stats": { "health": { "current": 10, "max": 10 } },
			"lootTables": ["missing_table"],
			"goldDrop": { "min": 0, "max": 0 }
		}`)},
	}
	_, err := content.LoadFS(fsys)
	s.Require().Error(err)
	s.Contains(err.Error(), "missing_table")
}

func TestContentTestSuite(t *testing.T) {
	suite.Run(t, new(ContentTestSuite))
}

func TestDropEntryKind(t *testing.T) {
	tests := []struct {
		name  string
		entry content.DropEntry
		want  content.EntryKind
	}{
		{
			name:  "item",
			entry: content.DropEntry{ItemID: "rusty_sword", Weight: 10, Quantity: content.QuantityRange{Min: 1, Max: 1}},
			want:  content.EntryItem,
		},
		{
			name:  "nested table by type",
			entry: content.DropEntry{Type: "dropTable", DropTableID: "inner", Weight: 10},
			want:  content.EntryTable,
		},
		{
			name:  "nested table by reference",
			entry: content.DropEntry{DropTableID: "inner", Weight: 10},
			want:  content.EntryTable,
		},
		{
			name:  "nothing",
			entry: content.DropEntry{DropNothing: true, Weight: 10},
			want:  content.EntryNothing,
		},
		{
			name:  "nothing wins over a stray table reference",
			entry: content.DropEntry{DropNothing: true, DropTableID: "inner", Weight: 10},
			want:  content.EntryNothing,
		},
		{
			name:  "item ID blocks implicit table detection",
			entry: content.DropEntry{ItemID: "rusty_sword", DropTableID: "inner", Weight: 10, Quantity: content.QuantityRange{Min: 1, Max: 1}},
			want:  content.EntryItem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDropTableValidate(t *testing.T) {
	valid := content.DropTable{
		DropTableID: "t",
		Entries: []content.DropEntry{
			{ItemID: "a", Weight: 10, Quantity: content.QuantityRange{Min: 1, Max: 2}},
			{DropNothing: true, Weight: 90},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	tests := []struct {
		name  string
		table content.DropTable
	}{
		{
			name:  "missing id",
			table: content.DropTable{Entries: []content.DropEntry{{DropNothing: true, Weight: 1}}},
		},
		{
			name:  "no entries",
			table: content.DropTable{DropTableID: "t"},
		},
		{
			name: "zero weight",
			table: content.DropTable{DropTableID: "t", Entries: []content.DropEntry{
				{DropNothing: true, Weight: 0},
			}},
		},
		{
			name: "item without quantity",
			table: content.DropTable{DropTableID: "t", Entries: []content.DropEntry{
				{ItemID: "a", Weight: 10},
			}},
		},
		{
			name: "inverted quantity range",
			table: content.DropTable{DropTableID: "t", Entries: []content.DropEntry{
				{ItemID: "a", Weight: 10, Quantity: content.QuantityRange{Min: 3, Max: 1}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.IsInvalidArgument(err) {
				t.Errorf("Validate() code = %v, want invalid_argument", errors.GetCode(err))
			}
		})
	}
}

func TestQuantityRangeUnmarshal(t *testing.T) {
	var fixed content.QuantityRange
	if err := json.Unmarshal([]byte(`3`), &fixed); err != nil {
		t.Fatalf("unmarshal fixed: %v", err)
	}
	if fixed.Min != 3 || fixed.Max != 3 {
		t.Errorf("fixed = %+v, want {3 3}", fixed)
	}

	var ranged content.QuantityRange
	if err := json.Unmarshal([]byte(`{"min": 1, "max": 4}`), &ranged); err != nil {
		t.Fatalf("unmarshal ranged: %v", err)
	}
	if ranged.Min != 1 || ranged.Max != 4 {
		t.Errorf("ranged = %+v, want {1 4}", ranged)
	}

	if err := json.Unmarshal([]byte(`"many"`), &ranged); err == nil {
		t.Error("unmarshal string: want error")
	}
}

func TestQualityBonusUnmarshal(t *testing.T) {
	var flat content.QualityBonus
	if err := json.Unmarshal([]byte(`5`), &flat); err != nil {
		t.Fatalf("unmarshal flat: %v", err)
	}
	if flat["*"] != 5 {
		t.Errorf("flat = %v, want map[*:5]", flat)
	}

	var named content.QualityBonus
	if err := json.Unmarshal([]byte(`{"sharpness": 3}`), &named); err != nil {
		t.Fatalf("unmarshal named: %v", err)
	}
	if named["sharpness"] != 3 {
		t.Errorf("named = %v, want map[sharpness:3]", named)
	}
}

func TestStoreReplace(t *testing.T) {
	store := content.NewStore(
		func(i content.Item) string { return i.ItemID },
		content.Item{ItemID: "a"},
		content.Item{ItemID: "b"},
	)
	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", store.Len())
	}

	store.Replace([]content.Item{{ItemID: "c"}})
	if store.Len() != 1 {
		t.Fatalf("Len() after replace = %d, want 1", store.Len())
	}
	if _, ok := store.Get("a"); ok {
		t.Error("Get(a) found after replace")
	}
	if _, ok := store.Get("c"); !ok {
		t.Error("Get(c) not found after replace")
	}
}
