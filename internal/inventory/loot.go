package inventory

import (
	"github.com/samdwyer/gridvale/internal/gamedata"
	"github.com/samdwyer/gridvale/internal/save"
)

// GenerateLoot draws one item from the eligible pool with probability
// proportional to LootWeight. Equipment already obtained on this save is
// excluded, so each piece drops at most once; consumables and upgrades are
// always eligible. An empty pool returns nil with a warning.
func (e *Engine) GenerateLoot() *gamedata.ItemDef {
	var pool []*gamedata.ItemDef
	total := 0
	for _, def := range e.items.All() {
		def := def
		if def.LootWeight <= 0 {
			continue
		}
		if def.Type == gamedata.ItemEquipment && e.inv.HasObtained(def.ID) {
			continue
		}
		pool = append(pool, &def)
		total += def.LootWeight
	}
	if len(pool) == 0 || total <= 0 {
		e.logger.Warn("loot pool is empty")
		return nil
	}

	roll := e.rng.Intn(total)
	for _, def := range pool {
		roll -= def.LootWeight
		if roll < 0 {
			return def
		}
	}
	return pool[len(pool)-1]
}

// PreGenerateChestContents fixes a chest's contents ahead of time, so a
// preview (or a save taken mid-exploration) and the eventual open agree.
// A chest that already has contents, or was already opened, is untouched.
func (e *Engine) PreGenerateChestContents(chestID string) {
	chest := e.chests[chestID]
	if chest == nil {
		chest = &save.ChestState{}
		e.chests[chestID] = chest
	}
	if chest.Opened || len(chest.Contents) > 0 {
		return
	}
	if item := e.GenerateLoot(); item != nil {
		chest.Contents = []string{item.ID}
	}
}

// OpenChest opens a chest at most once. The first open fixes the contents
// permanently (reusing any pre-generated roll) and adds them to the
// inventory; every later call is a no-op reporting the chest as spent.
func (e *Engine) OpenChest(chestID string) ([]string, bool) {
	chest := e.chests[chestID]
	if chest == nil {
		chest = &save.ChestState{}
		e.chests[chestID] = chest
	}
	if chest.Opened {
		return nil, false
	}

	if len(chest.Contents) == 0 {
		if item := e.GenerateLoot(); item != nil {
			chest.Contents = []string{item.ID}
		}
	}
	chest.Opened = true

	for _, id := range chest.Contents {
		e.AddItem(id)
	}
	return chest.Contents, true
}
