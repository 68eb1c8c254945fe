package inventory

import (
	"math/rand"
	"testing"

	"github.com/samdwyer/gridvale/internal/gamedata"
	"github.com/samdwyer/gridvale/internal/save"
)

func newTestEngine(seed int64) (*Engine, *save.SaveData) {
	data := save.DefaultSave(1)
	engine := NewEngine(
		gamedata.MustLoadItemRegistry(),
		&data.Inventory,
		data.Chests,
		rand.New(rand.NewSource(seed)),
		nil,
	)
	return engine, data
}

func TestAddItemConsumableStacks(t *testing.T) {
	engine, data := newTestEngine(1)

	engine.AddItem("healing_draught")
	engine.AddItem("healing_draught")

	if got := data.Inventory.Consumables["healing_draught"]; got != 2 {
		t.Errorf("Consumable count = %d, want 2", got)
	}
}

func TestAddItemEquipmentOnce(t *testing.T) {
	engine, data := newTestEngine(1)

	if !engine.AddItem("iron_blade") {
		t.Fatal("First acquisition should succeed")
	}
	if engine.AddItem("iron_blade") {
		t.Error("Duplicate equipment should be rejected")
	}
	if len(data.Inventory.Unequipped) != 1 {
		t.Errorf("Unequipped pile = %v, want exactly one blade", data.Inventory.Unequipped)
	}
	if !data.Inventory.HasObtained("iron_blade") {
		t.Error("Obtained set should record the acquisition")
	}
}

func TestAddItemUpgradeBanksToken(t *testing.T) {
	engine, data := newTestEngine(1)

	engine.AddItem("rune_of_power")
	if data.Inventory.BonusTokens != 1 {
		t.Errorf("BonusTokens = %d, want 1", data.Inventory.BonusTokens)
	}
}

func TestAddItemUnknownID(t *testing.T) {
	engine, data := newTestEngine(1)

	if engine.AddItem("philosopher_stone") {
		t.Error("Unknown item id should be rejected, not panic")
	}
	if len(data.Inventory.Consumables) != 0 || data.Inventory.BonusTokens != 0 {
		t.Error("Rejected item should leave the inventory untouched")
	}
}

func TestUseConsumable(t *testing.T) {
	engine, data := newTestEngine(1)
	engine.AddItem("healing_draught")

	def, ok := engine.UseConsumable("healing_draught")
	if !ok {
		t.Fatal("Using a held consumable should succeed")
	}
	if def.Effect.Kind != "heal" {
		t.Errorf("Effect kind = %q, want heal", def.Effect.Kind)
	}
	if _, held := data.Inventory.Consumables["healing_draught"]; held {
		t.Error("Count should drop to zero and the entry should be removed")
	}

	if _, ok := engine.UseConsumable("healing_draught"); ok {
		t.Error("Using an unheld consumable should be a no-op")
	}
}

func TestEquipAndUnequip(t *testing.T) {
	engine, data := newTestEngine(1)
	engine.AddItem("iron_blade")
	engine.AddItem("oak_ward")
	hero := data.Heroes["aldric"]

	if !engine.Equip(hero, "iron_blade") {
		t.Fatal("Equipping from the unequipped pile should succeed")
	}
	if hero.EquippedItemID != "iron_blade" {
		t.Errorf("EquippedItemID = %q, want iron_blade", hero.EquippedItemID)
	}

	// Equipping something else swaps the blade back to the pile
	if !engine.Equip(hero, "oak_ward") {
		t.Fatal("Swapping equipment should succeed")
	}
	if hero.EquippedItemID != "oak_ward" {
		t.Errorf("EquippedItemID = %q, want oak_ward", hero.EquippedItemID)
	}
	found := false
	for _, id := range data.Inventory.Unequipped {
		if id == "iron_blade" {
			found = true
		}
	}
	if !found {
		t.Error("Swapped-out equipment should return to the unequipped pile")
	}

	if !engine.Unequip(hero) {
		t.Fatal("Unequip should succeed")
	}
	if hero.EquippedItemID != "" {
		t.Error("Hero should wear nothing after unequip")
	}
	if engine.Unequip(hero) {
		t.Error("Unequip with nothing worn should be a no-op")
	}
}

func TestEquipNotInPile(t *testing.T) {
	engine, data := newTestEngine(1)
	hero := data.Heroes["aldric"]

	if engine.Equip(hero, "iron_blade") {
		t.Error("Equipping an unowned item should fail")
	}
	if engine.Equip(hero, "healing_draught") {
		t.Error("Equipping a consumable should fail")
	}
}

func TestSpendBonusToken(t *testing.T) {
	engine, data := newTestEngine(1)
	hero := data.Heroes["aldric"]

	if engine.SpendBonusToken(hero) {
		t.Error("Spending with no tokens should fail")
	}

	engine.AddItem("rune_of_power")
	if !engine.SpendBonusToken(hero) {
		t.Fatal("Spending a banked token should succeed")
	}
	if hero.DamageBonus != 1 {
		t.Errorf("DamageBonus = %d, want 1", hero.DamageBonus)
	}
	if data.Inventory.BonusTokens != 0 {
		t.Errorf("BonusTokens = %d, want 0 after spend", data.Inventory.BonusTokens)
	}
}

func TestEquipmentBonuses(t *testing.T) {
	engine, data := newTestEngine(1)
	engine.AddItem("iron_blade")
	hero := data.Heroes["aldric"]

	if d, def := engine.EquipmentBonuses(hero); d != 0 || def != 0 {
		t.Errorf("Bare hero bonuses = %d/%d, want 0/0", d, def)
	}

	engine.Equip(hero, "iron_blade")
	if d, def := engine.EquipmentBonuses(hero); d != 2 || def != 0 {
		t.Errorf("Iron blade bonuses = %d/%d, want 2/0", d, def)
	}
}
