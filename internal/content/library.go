package content

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"os"
	"path"

	"github.com/KirkDiggler/combat-api/internal/errors"
)

// Directory layout a content tree follows. Each directory holds one JSON
// file per definition.
const (
	monstersDir   = "monsters"
	abilitiesDir  = "abilities"
	itemsDir      = "items"
	dropTablesDir = "drop_tables"
)

// Library bundles the four content registries the engine reads.
type Library struct {
	Monsters   *Store[Monster]
	Abilities  *Store[Ability]
	Items      *Store[Item]
	DropTables *Store[DropTable]
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{
		Monsters:   NewStore(func(m Monster) string { return m.MonsterID }),
		Abilities:  NewStore(func(a Ability) string { return a.AbilityID }),
		Items:      NewStore(func(i Item) string { return i.ItemID }),
		DropTables: NewStore(func(t DropTable) string { return t.DropTableID }),
	}
}

// LoadFS loads a library from a content tree.
func LoadFS(fsys fs.FS) (*Library, error) {
	lib := NewLibrary()
	if err := lib.ReloadFS(fsys); err != nil {
		return nil, err
	}
	return lib, nil
}

// LoadDir loads a library from a content directory on disk.
func LoadDir(dir string) (*Library, error) {
	return LoadFS(os.DirFS(dir))
}

// ReloadFS reparses the content tree and swaps the registries in. Any
// parse or validation failure leaves the current registries untouched.
func (l *Library) ReloadFS(fsys fs.FS) error {
	monsters, err := loadDefs[Monster](fsys, monstersDir)
	if err != nil {
		return err
	}
	abilities, err := loadDefs[Ability](fsys, abilitiesDir)
	if err != nil {
		return err
	}
	items, err := loadDefs[Item](fsys, itemsDir)
	if err != nil {
		return err
	}
	dropTables, err := loadDefs[DropTable](fsys, dropTablesDir)
	if err != nil {
		return err
	}

	if err := checkReferences(monsters, dropTables); err != nil {
		return err
	}

	l.Monsters.Replace(monsters)
	l.Abilities.Replace(abilities)
	l.Items.Replace(items)
	l.DropTables.Replace(dropTables)

	slog.Info("content loaded",
		"monsters", len(monsters),
		"abilities", len(abilities),
		"items", len(items),
		"drop_tables", len(dropTables))
	return nil
}

// AbilitiesForWeapon returns the abilities usable with a weapon governed by
// the given skill, sorted by ID.
func (l *Library) AbilitiesForWeapon(skillScalar string) []Ability {
	var out []Ability
	for _, ability := range l.Abilities.All() {
		if ability.UsableWith(skillScalar) {
			out = append(out, ability)
		}
	}
	return out
}

type validator interface {
	Validate() error
}

func loadDefs[T any](fsys fs.FS, dir string) ([]T, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.json"))
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", dir)
	}

	defs := make([]T, 0, len(files))
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", file)
		}
		var def T
		if err := json.Unmarshal(data, &def); err != nil {
			return nil, errors.InvalidArgumentf("parsing %s: %v", file, err)
		}
		if v, ok := any(&def).(validator); ok {
			if err := v.Validate(); err != nil {
				return nil, errors.Wrapf(err, "validating %s", file)
			}
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// checkReferences verifies that nested drop-table references and monster
// loot-table references all resolve within the loaded set.
func checkReferences(monsters []Monster, dropTables []DropTable) error {
	tableIDs := make(map[string]struct{}, len(dropTables))
	for i := range dropTables {
		tableIDs[dropTables[i].DropTableID] = struct{}{}
	}

	for i := range dropTables {
		table := &dropTables[i]
		for j := range table.Entries {
			entry := &table.Entries[j]
			if entry.Kind() != EntryTable {
				continue
			}
			if _, ok := tableIDs[entry.DropTableID]; !ok {
				return errors.InvalidArgumentf("drop table %s: entry %d references unknown table %s",
					table.DropTableID, j, entry.DropTableID)
			}
		}
	}

	for i := range monsters {
		monster := &monsters[i]
		for _, tableID := range monster.LootTables {
			if _, ok := tableIDs[tableID]; !ok {
				return errors.InvalidArgumentf("monster %s references unknown drop table %s",
					monster.MonsterID, tableID)
			}
		}
	}
	return nil
}
