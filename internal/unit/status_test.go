package unit

import (
	"testing"

	"github.com/samdwyer/gridvale/internal/gamedata"
)

func TestAddStatusEffectReplacesSameType(t *testing.T) {
	u := newTestUnit("aldric", TeamHero, 30)

	u.AddStatusEffect(StatusEffect{Type: gamedata.StatusBarkskin, Duration: 3, Value: 3})
	u.AddStatusEffect(StatusEffect{Type: gamedata.StatusBarkskin, Duration: 1, Value: 5})

	effects := u.StatusEffects()
	if len(effects) != 1 {
		t.Fatalf("Effect count = %d, want 1 (same type replaces, never stacks)", len(effects))
	}
	if effects[0].Duration != 1 || effects[0].Value != 5 {
		t.Errorf("Effect = %+v, want the replacement's duration 1 and value 5", effects[0])
	}
}

func TestAddStatusEffectUnknownTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Attaching an unrecognized status effect type should panic")
		}
	}()
	u := newTestUnit("aldric", TeamHero, 30)
	u.AddStatusEffect(StatusEffect{Type: "petrified", Duration: 2})
}

func TestProcessStatusEffects(t *testing.T) {
	u := newTestUnit("aldric", TeamHero, 30)
	u.AddStatusEffect(StatusEffect{Type: gamedata.StatusRage, Duration: 2})
	u.AddStatusEffect(StatusEffect{Type: gamedata.StatusHidden, Duration: 1})
	u.AddStatusEffect(StatusEffect{Type: gamedata.StatusDodge, Duration: DurationPermanent})

	expired := u.ProcessStatusEffects()
	if len(expired) != 1 || expired[0] != gamedata.StatusHidden {
		t.Errorf("First tick expired %v, want only hidden", expired)
	}
	if !u.HasStatusEffect(gamedata.StatusRage) {
		t.Error("Rage at 1 remaining turn should still be active")
	}

	expired = u.ProcessStatusEffects()
	if len(expired) != 1 || expired[0] != gamedata.StatusRage {
		t.Errorf("Second tick expired %v, want only rage", expired)
	}

	// Permanent effects never decrement
	for i := 0; i < 10; i++ {
		if got := u.ProcessStatusEffects(); len(got) != 0 {
			t.Fatalf("Permanent effect expired on tick %d", i)
		}
	}
	if !u.HasStatusEffect(gamedata.StatusDodge) {
		t.Error("Permanent effect should survive any number of ticks")
	}
}

func TestGetStatusEffect(t *testing.T) {
	u := newTestUnit("aldric", TeamHero, 30)

	if _, ok := u.GetStatusEffect(gamedata.StatusRage); ok {
		t.Error("GetStatusEffect should miss when the effect is absent")
	}

	u.AddStatusEffect(StatusEffect{Type: gamedata.StatusRage, Duration: 2, Value: 4})
	e, ok := u.GetStatusEffect(gamedata.StatusRage)
	if !ok {
		t.Fatal("GetStatusEffect should find the attached effect")
	}
	if e.Duration != 2 || e.Value != 4 {
		t.Errorf("GetStatusEffect = %+v, want duration 2 value 4", e)
	}
}

func TestRemoveStatusEffect(t *testing.T) {
	u := newTestUnit("aldric", TeamHero, 30)
	u.AddStatusEffect(StatusEffect{Type: gamedata.StatusRage, Duration: 2})
	u.AddStatusEffect(StatusEffect{Type: gamedata.StatusHidden, Duration: 3})

	u.RemoveStatusEffect(gamedata.StatusRage)
	if u.HasStatusEffect(gamedata.StatusRage) {
		t.Error("Removed effect should be gone")
	}
	if !u.HasStatusEffect(gamedata.StatusHidden) {
		t.Error("Unrelated effect should survive removal")
	}

	// Removing an absent type is a no-op
	u.RemoveStatusEffect(gamedata.StatusRage)
}

func TestStatusEffectsReturnsCopy(t *testing.T) {
	u := newTestUnit("aldric", TeamHero, 30)
	u.AddStatusEffect(StatusEffect{Type: gamedata.StatusRage, Duration: 2})

	effects := u.StatusEffects()
	effects[0].Duration = 99

	e, _ := u.GetStatusEffect(gamedata.StatusRage)
	if e.Duration != 2 {
		t.Error("Mutating the returned slice should not affect the unit's effects")
	}
}
