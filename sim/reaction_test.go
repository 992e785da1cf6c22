package sim

import "testing"

func TestAcidTurnsToHydrogenNextToMetal(t *testing.T) {
	w := New(10, 10, 1, WithSeed(2))
	w.Set(5, 5, "acid")
	w.Set(6, 5, "iron")
	reacted := false
	for i := 0; i < 500; i++ {
		w.reactionStep(5, 5)
		if w.Get(5, 5) == "hydrogen" {
			reacted = true
			break
		}
	}
	if !reacted {
		t.Fatal("expected acid to eventually turn to hydrogen next to metal")
	}
	if w.Get(6, 5) != "iron" {
		t.Fatal("the metal neighbor itself is untouched by the reaction")
	}
}

func TestAcidDoesNotReactWithNonMetal(t *testing.T) {
	w := New(10, 10, 1, WithSeed(2))
	w.Set(5, 5, "acid")
	w.Set(6, 5, "stone")
	for i := 0; i < 200; i++ {
		w.reactionStep(5, 5)
	}
	if w.Get(6, 5) != "stone" || w.Get(5, 5) != "acid" {
		t.Fatal("acid must not react with a non-metal neighbor")
	}
}

func TestHydrogenIgnitesNearHeat(t *testing.T) {
	w := New(60, 60, 1, WithSeed(5))
	w.Set(30, 30, "hydrogen")
	w.Set(31, 30, "fire")
	ignited := false
	for i := 0; i < 200; i++ {
		w.reactionStep(30, 30)
		if w.Get(30, 30) == "steam" {
			ignited = true
			break
		}
	}
	if !ignited {
		t.Fatal("expected hydrogen to eventually detonate and leave steam next to fire")
	}
}

func TestHydrogenDoesNotIgniteNextToInertMaterial(t *testing.T) {
	w := New(60, 60, 1, WithSeed(5))
	w.Set(30, 30, "hydrogen", 900)
	w.Set(31, 30, "stone", 900)
	w.Set(29, 30, "stone", 900)
	w.Set(30, 29, "stone", 900)
	w.Set(30, 31, "stone", 900)
	for i := 0; i < 200; i++ {
		w.reactionStep(30, 30)
	}
	if w.Get(30, 30) != "hydrogen" {
		t.Fatal("hydrogen must not ignite next to a neighbor that doesn't support combustion")
	}
}
