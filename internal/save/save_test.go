package save

import (
	"path/filepath"
	"testing"
	"time"
)

func TestStoreRoundTrip(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "saves.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer store.Close()

	// An unsaved slot loads as absent, not as an error
	if _, ok, err := store.Load(1); err != nil || ok {
		t.Fatalf("Load of empty slot = (%v, %v), want absent with no error", ok, err)
	}

	data := DefaultSave(1)
	data.ActiveHero = "mira"
	data.MapID = "gridvale_keep"
	data.PartyX = 14
	data.PartyY = 7
	data.PlaySeconds = 321
	data.Heroes["aldric"].TotalXP = 75
	data.Heroes["aldric"].Level = 2
	data.Inventory.Consumables["healing_draught"] = 3
	data.Inventory.Obtained = []string{"iron_blade"}
	data.Inventory.Unequipped = []string{"iron_blade"}
	data.Chests["chest_1"] = &ChestState{Opened: true, Contents: []string{"mana_philtre"}}
	data.Flags["met_warden"] = true

	if err := store.Save(data); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, ok, err := store.Load(1)
	if err != nil || !ok {
		t.Fatalf("Load after save = (%v, %v)", ok, err)
	}
	if loaded.Heroes["aldric"].TotalXP != 75 || loaded.Heroes["aldric"].Level != 2 {
		t.Errorf("Hero state = %+v, want XP 75 level 2", loaded.Heroes["aldric"])
	}
	if loaded.ActiveHero != "mira" {
		t.Errorf("ActiveHero = %q, want mira", loaded.ActiveHero)
	}
	if loaded.MapID != "gridvale_keep" || loaded.PartyX != 14 || loaded.PartyY != 7 {
		t.Errorf("Location = %q (%d,%d), want gridvale_keep (14,7)",
			loaded.MapID, loaded.PartyX, loaded.PartyY)
	}
	if loaded.PlaySeconds != 321 {
		t.Errorf("PlaySeconds = %d, want 321", loaded.PlaySeconds)
	}
	if loaded.Inventory.Consumables["healing_draught"] != 3 {
		t.Errorf("Consumable count = %d, want 3", loaded.Inventory.Consumables["healing_draught"])
	}
	if !loaded.Inventory.HasObtained("iron_blade") {
		t.Error("Obtained set should survive the round trip")
	}
	chest := loaded.Chests["chest_1"]
	if chest == nil || !chest.Opened || len(chest.Contents) != 1 {
		t.Errorf("Chest state = %+v, want opened with 1 item", chest)
	}
	if !loaded.Flags["met_warden"] {
		t.Error("Flags should survive the round trip")
	}
	if _, err := time.Parse(time.RFC3339, loaded.SavedAt); err != nil {
		t.Errorf("SavedAt %q is not RFC 3339: %v", loaded.SavedAt, err)
	}
}

func TestStoreOverwritesSlot(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "saves.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer store.Close()

	first := DefaultSave(2)
	first.Heroes["mira"].TotalXP = 10
	if err := store.Save(first); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second := DefaultSave(2)
	second.Heroes["mira"].TotalXP = 99
	if err := store.Save(second); err != nil {
		t.Fatalf("Save overwrite: %v", err)
	}

	loaded, _, err := store.Load(2)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Heroes["mira"].TotalXP != 99 {
		t.Errorf("TotalXP = %d, want the overwritten 99", loaded.Heroes["mira"].TotalXP)
	}
}

func TestMigrateBackfillsDefaults(t *testing.T) {
	data := &SaveData{Slot: 1, PlaySeconds: -10}
	data.Heroes = map[HeroID]*HeroProgressionState{
		"aldric": {TotalXP: -5, Level: 0, CurrentHP: -3},
	}

	Migrate(data)

	h := data.Heroes["aldric"]
	if h.Level != 1 {
		t.Errorf("Level = %d, want backfilled 1", h.Level)
	}
	if h.TotalXP != 0 || h.CurrentHP != 0 {
		t.Errorf("Negative vitals should clamp to 0, got XP %d HP %d", h.TotalXP, h.CurrentHP)
	}
	if data.Inventory.Consumables == nil || data.Chests == nil || data.Flags == nil {
		t.Error("Migrate should allocate every map")
	}
	if data.SavedAt == "" {
		t.Error("Migrate should stamp SavedAt")
	}
	if data.ActiveHero != "aldric" {
		t.Errorf("ActiveHero = %q, want the present roster hero aldric", data.ActiveHero)
	}
	if data.PlaySeconds != 0 {
		t.Errorf("PlaySeconds = %d, want negative clock clamped to 0", data.PlaySeconds)
	}
}

func TestMigrateKeepsValidActiveHero(t *testing.T) {
	data := DefaultSave(1)
	data.ActiveHero = "tessai"

	Migrate(data)

	if data.ActiveHero != "tessai" {
		t.Errorf("ActiveHero = %q, want tessai left alone", data.ActiveHero)
	}
}

func TestDefaultSave(t *testing.T) {
	data := DefaultSave(3)

	if data.Slot != 3 {
		t.Errorf("Slot = %d, want 3", data.Slot)
	}
	if data.ActiveHero != StartingHeroes[0] {
		t.Errorf("ActiveHero = %q, want %q", data.ActiveHero, StartingHeroes[0])
	}
	if len(data.Heroes) != len(StartingHeroes) {
		t.Fatalf("Hero count = %d, want %d", len(data.Heroes), len(StartingHeroes))
	}
	for _, id := range StartingHeroes {
		h, ok := data.Heroes[id]
		if !ok {
			t.Fatalf("Starting hero %q missing", id)
		}
		if h.Level != 1 || h.TotalXP != 0 {
			t.Errorf("Hero %q = %+v, want fresh level 1", id, h)
		}
	}
}
