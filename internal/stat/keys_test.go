package stat

import "testing"

func TestLookup(t *testing.T) {
	d, ok := Lookup(FinalDamage)
	if !ok {
		t.Fatal("Lookup(final_damage) missing")
	}
	if d.Stacking != StackMultFinalDamage {
		t.Errorf("final_damage stacking = %v, want multiplicative", d.Stacking)
	}
	if _, ok := Lookup(Key("mana")); ok {
		t.Error("Lookup(unknown) reported ok")
	}
}

func TestIsGeneric(t *testing.T) {
	if !IsGeneric(MainStatFlat) || !IsGeneric(MainStatPct) {
		t.Error("generic main-stat keys not reported generic")
	}
	if IsGeneric(DEXFlat) {
		t.Error("dex_flat reported generic")
	}
}

func TestAttributeKeys(t *testing.T) {
	if FlatKey(AttrLUK) != LUKFlat {
		t.Errorf("FlatKey(luk) = %s, want luk_flat", FlatKey(AttrLUK))
	}
	if PctKey(AttrINT) != INTPct {
		t.Errorf("PctKey(int) = %s, want int_pct", PctKey(AttrINT))
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName(BossDamage); got != "Boss Damage %" {
		t.Errorf("DisplayName(boss_damage) = %q", got)
	}
	// Unknown keys fall back to a readable title case.
	if got := DisplayName(Key("pet_damage")); got != "Pet Damage" {
		t.Errorf("DisplayName fallback = %q, want \"Pet Damage\"", got)
	}
}

func TestFormatValue(t *testing.T) {
	if got := FormatValue(DamagePct, 45.25); got != "45.2%" {
		t.Errorf("FormatValue(damage_pct) = %q, want 45.2%%", got)
	}
	if got := FormatValue(AttackFlat, 1234); got != "1234" {
		t.Errorf("FormatValue(attack_flat) = %q, want 1234", got)
	}
}

func TestKeys_CoversVocabulary(t *testing.T) {
	keys := Keys()
	if len(keys) != len(definitions) {
		t.Fatalf("Keys() returned %d keys, definitions has %d", len(keys), len(definitions))
	}
	for _, k := range keys {
		if err := Validate(k); err != nil {
			t.Errorf("vocabulary key %s fails validation: %v", k, err)
		}
	}
}
