package inventory

import (
	"testing"
)

func TestGenerateLootExcludesObtainedEquipment(t *testing.T) {
	engine, _ := newTestEngine(7)
	engine.AddItem("iron_blade")
	engine.AddItem("oak_ward")
	engine.AddItem("silver_talisman")

	// With all equipment obtained, no draw may ever produce equipment again
	for i := 0; i < 200; i++ {
		item := engine.GenerateLoot()
		if item == nil {
			t.Fatal("Pool with consumables left should never come up empty")
		}
		switch item.ID {
		case "iron_blade", "oak_ward", "silver_talisman":
			t.Fatalf("Draw %d produced already-obtained equipment %q", i, item.ID)
		}
	}
}

func TestGenerateLootWeightDistribution(t *testing.T) {
	engine, _ := newTestEngine(42)

	counts := make(map[string]int)
	const draws = 5000
	for i := 0; i < draws; i++ {
		item := engine.GenerateLoot()
		if item == nil {
			t.Fatal("Full pool should never come up empty")
		}
		counts[item.ID]++
	}

	// healing_draught (weight 40) should land well ahead of
	// silver_talisman (weight 5); exact ratios are noise at this sample size
	if counts["healing_draught"] < counts["silver_talisman"]*3 {
		t.Errorf("Weight 40 item drew %d, weight 5 item drew %d; distribution looks wrong",
			counts["healing_draught"], counts["silver_talisman"])
	}
	// Every eligible item should appear at least once in 5000 draws
	for _, id := range []string{"healing_draught", "mana_philtre", "rune_of_power", "iron_blade", "oak_ward", "silver_talisman"} {
		if counts[id] == 0 {
			t.Errorf("Item %q never drawn in %d draws", id, draws)
		}
	}
}

func TestOpenChestAtMostOnce(t *testing.T) {
	engine, data := newTestEngine(3)

	contents, ok := engine.OpenChest("chest_entry_hall")
	if !ok {
		t.Fatal("First open should succeed")
	}
	if len(contents) == 0 {
		t.Fatal("First open should yield loot")
	}

	// The second open must be a no-op: no new loot, no state change
	before := len(data.Inventory.Obtained) + data.Inventory.BonusTokens
	for _, c := range data.Inventory.Consumables {
		before += c
	}

	if _, ok := engine.OpenChest("chest_entry_hall"); ok {
		t.Error("Second open should report the chest as spent")
	}

	after := len(data.Inventory.Obtained) + data.Inventory.BonusTokens
	for _, c := range data.Inventory.Consumables {
		after += c
	}
	if before != after {
		t.Error("Second open must not grant anything")
	}

	chest := data.Chests["chest_entry_hall"]
	if chest == nil || !chest.Opened {
		t.Error("Chest state should be recorded as opened")
	}
}

func TestOpenChestReusesPreGeneratedContents(t *testing.T) {
	engine, data := newTestEngine(9)

	engine.PreGenerateChestContents("chest_vault")
	rolled := append([]string(nil), data.Chests["chest_vault"].Contents...)
	if len(rolled) == 0 {
		t.Fatal("Pre-generation should fix contents")
	}

	// Pre-generating again must not re-roll
	engine.PreGenerateChestContents("chest_vault")
	if got := data.Chests["chest_vault"].Contents; len(got) != len(rolled) || got[0] != rolled[0] {
		t.Errorf("Re-roll changed contents from %v to %v", rolled, got)
	}

	contents, ok := engine.OpenChest("chest_vault")
	if !ok {
		t.Fatal("Open should succeed")
	}
	if len(contents) != len(rolled) || contents[0] != rolled[0] {
		t.Errorf("Open yielded %v, want the pre-rolled %v", contents, rolled)
	}
}

func TestOpenChestContentsPersistAfterOpen(t *testing.T) {
	engine, data := newTestEngine(11)

	contents, _ := engine.OpenChest("chest_cellar")
	chest := data.Chests["chest_cellar"]
	if len(chest.Contents) != len(contents) {
		t.Error("Opened chest should keep its fixed contents for the save file")
	}
}
