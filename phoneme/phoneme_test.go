package phoneme

import "testing"

func TestBaseDurationOrdering(t *testing.T) {
	if !(BaseDuration(Elongated) > BaseDuration(Long)) {
		t.Errorf("elongated (%v) must exceed long (%v)", BaseDuration(Elongated), BaseDuration(Long))
	}
	if !(BaseDuration(Long) > BaseDuration(Short)) {
		t.Errorf("long (%v) must exceed short (%v)", BaseDuration(Long), BaseDuration(Short))
	}
}

func TestTableLookup(t *testing.T) {
	tbl := Default()
	for _, p := range tbl.All() {
		def, ok := tbl.Lookup(p)
		if !ok {
			t.Fatalf("catalogue phoneme %s not found", p)
		}
		if def.Phoneme != p {
			t.Errorf("definition for %s names %s", p, def.Phoneme)
		}
		if def.Type != Pause && !def.HasFormants() {
			t.Errorf("%s has no formant targets", p)
		}
	}
}

func TestLookupMissing(t *testing.T) {
	if _, ok := Default().Lookup("zz"); ok {
		t.Error("should not find undefined phoneme")
	}
}

func TestNearestByType(t *testing.T) {
	tbl := Default()
	cases := []Type{Vowel, Stop, Fricative, Nasal, Liquid, Trill, Approximant, Affricate, Flap}
	for _, tp := range cases {
		def, ok := tbl.NearestByType(tp)
		if !ok {
			t.Fatalf("no substitute for type %s", tp)
		}
		if def.Type != tp {
			t.Errorf("substitute for %s has type %s", tp, def.Type)
		}
		if !def.HasFormants() {
			t.Errorf("substitute %s for %s has no formants", def.Phoneme, tp)
		}
	}
}

func TestFlapIsNotStop(t *testing.T) {
	tbl := Default()
	def, ok := tbl.Lookup("dx")
	if !ok {
		t.Fatal("dx not in catalogue")
	}
	if def.Type != Flap {
		t.Errorf("dx type = %s, want flap", def.Type)
	}
}

func TestAffricatesAreNotStops(t *testing.T) {
	tbl := Default()
	for _, p := range []Phoneme{"ch", "jh"} {
		def, ok := tbl.Lookup(p)
		if !ok {
			t.Fatalf("%s not in catalogue", p)
		}
		if def.Type != Affricate {
			t.Errorf("%s type = %s, want affricate", p, def.Type)
		}
	}
}
