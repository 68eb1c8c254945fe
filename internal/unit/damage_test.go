package unit

import (
	"testing"

	"github.com/samdwyer/gridvale/internal/gamedata"
)

func TestApplyDamageClampsAtZero(t *testing.T) {
	u := newTestUnit("goblin", TeamEnemy, 15)

	out := u.ApplyDamage(40)
	if out.Dealt != 15 {
		t.Errorf("Dealt = %d, want 15 (clamped to remaining HP)", out.Dealt)
	}
	if u.HP() != 0 {
		t.Errorf("HP = %d, want 0", u.HP())
	}
	if !out.KnockedOut {
		t.Error("Dropping to 0 should report a knockout")
	}
}

func TestApplyDamageOnDownedUnit(t *testing.T) {
	u := newTestUnit("goblin", TeamEnemy, 15)
	u.ApplyDamage(15)

	out := u.ApplyDamage(10)
	if out.Dealt != 0 || out.KnockedOut {
		t.Errorf("Damage on a downed unit = %+v, want no HP change and no repeat knockout", out)
	}
	if u.HP() != 0 {
		t.Errorf("HP = %d, want 0", u.HP())
	}
}

func TestApplyDamageNonPositive(t *testing.T) {
	u := newTestUnit("goblin", TeamEnemy, 15)
	u.AddStatusEffect(StatusEffect{Type: gamedata.StatusHidden, Duration: 3})

	out := u.ApplyDamage(0)
	if out.Dealt != 0 || out.BrokeStealth {
		t.Errorf("Zero damage = %+v, want no HP change and stealth intact", out)
	}
	if !u.HasStatusEffect(gamedata.StatusHidden) {
		t.Error("Zero damage should not break stealth")
	}

	out = u.ApplyDamage(-5)
	if out.Dealt != 0 || u.HP() != 15 {
		t.Error("Negative damage should be a no-op")
	}
}

func TestApplyDamageBreaksStealth(t *testing.T) {
	u := newTestUnit("tessai", TeamHero, 24)
	u.AddStatusEffect(StatusEffect{Type: gamedata.StatusHidden, Duration: 3})

	out := u.ApplyDamage(1)
	if !out.BrokeStealth {
		t.Error("Any positive damage should break stealth")
	}
	if u.HasStatusEffect(gamedata.StatusHidden) {
		t.Error("Hidden should be removed after taking damage")
	}
}

func TestStealthBreaksEvenAtFloor(t *testing.T) {
	u := newTestUnit("tessai", TeamHero, 24)
	u.ApplyDamage(24)
	u.AddStatusEffect(StatusEffect{Type: gamedata.StatusHidden, Duration: 3})

	// HP is already 0, but positive damage still strips hidden
	out := u.ApplyDamage(5)
	if out.Dealt != 0 {
		t.Errorf("Dealt = %d on a downed unit, want 0", out.Dealt)
	}
	if !out.BrokeStealth || u.HasStatusEffect(gamedata.StatusHidden) {
		t.Error("Positive damage should break stealth even with HP at the floor")
	}
}

func TestKnockoutAttachesPermanentMarker(t *testing.T) {
	u := newTestUnit("aldric", TeamHero, 30)
	u.ApplyDamage(30)

	e, ok := u.GetStatusEffect(gamedata.StatusUnconscious)
	if !ok {
		t.Fatal("Knocked-out unit should carry the unconscious marker")
	}
	if !e.Permanent() {
		t.Error("Unconscious marker should be permanent, not timed")
	}

	// End-of-turn processing must not clear it
	u.ProcessStatusEffects()
	if !u.HasStatusEffect(gamedata.StatusUnconscious) {
		t.Error("Unconscious marker should survive end-of-turn processing")
	}
}

func TestApplyHealingClampsAtMax(t *testing.T) {
	u := newTestUnit("aldric", TeamHero, 30)
	u.ApplyDamage(10)

	out := u.ApplyHealing(25)
	if out.Healed != 10 {
		t.Errorf("Healed = %d, want 10 (clamped to missing HP)", out.Healed)
	}
	if u.HP() != 30 {
		t.Errorf("HP = %d, want 30", u.HP())
	}
	if out.Revived {
		t.Error("Healing a conscious unit should not report a revive")
	}
}

func TestApplyHealingRevives(t *testing.T) {
	u := newTestUnit("aldric", TeamHero, 30)
	u.ApplyDamage(30)

	out := u.ApplyHealing(8)
	if !out.Revived {
		t.Error("Healing a downed unit above 0 should revive it")
	}
	if u.Unconscious() {
		t.Error("Revived unit should no longer be unconscious")
	}
	if u.HasStatusEffect(gamedata.StatusUnconscious) {
		t.Error("Revive should clear the unconscious marker")
	}
	if u.HP() != 8 {
		t.Errorf("HP after revive = %d, want 8", u.HP())
	}
}

func TestApplyHealingNoOpAtFull(t *testing.T) {
	u := newTestUnit("aldric", TeamHero, 30)

	out := u.ApplyHealing(10)
	if out.Healed != 0 || u.HP() != 30 {
		t.Error("Healing at full HP should be a no-op")
	}

	out = u.ApplyHealing(-3)
	if out.Healed != 0 {
		t.Error("Negative healing should be a no-op")
	}
}

func TestDamageHealRoundTrip(t *testing.T) {
	u := newTestUnit("aldric", TeamHero, 30)

	// A sequence of damage and healing always keeps HP in [0, MaxHP]
	steps := []struct {
		damage int
		heal   int
	}{
		{12, 0}, {0, 5}, {40, 0}, {0, 3}, {1, 0}, {0, 100}, {29, 0}, {0, 2},
	}
	for i, s := range steps {
		if s.damage > 0 {
			u.ApplyDamage(s.damage)
		}
		if s.heal > 0 {
			u.ApplyHealing(s.heal)
		}
		if u.HP() < 0 || u.HP() > u.MaxHP {
			t.Fatalf("Step %d: HP %d out of range [0, %d]", i, u.HP(), u.MaxHP)
		}
		if (u.HP() == 0) != u.Unconscious() {
			t.Fatalf("Step %d: HP %d inconsistent with unconscious=%v", i, u.HP(), u.Unconscious())
		}
	}
}
