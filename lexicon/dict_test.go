package lexicon

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/ieee0824/speak-go/phoneme"
)

func testDict() *Dictionary {
	d := NewDictionary()
	d.Add(Entry{Word: "cat", Phonemes: p("k", "ae", "t"), StressIndex: 1})
	d.Add(Entry{Word: "do", Phonemes: p("d", "uw"), StressIndex: 1})
	d.Add(Entry{Word: "the", Phonemes: p("dh", "ax"), StressIndex: -1, Function: true})
	d.AddGroup(&RuleGroup{
		Name: "suffixes",
		Span: Suffix,
		Rules: []Rule{
			{Pattern: "ing", Phonemes: p("ih", "ng")},
			{Pattern: "s", Phonemes: p("s")},
		},
	})
	return d
}

func TestExactMatchPrecedence(t *testing.T) {
	d := testDict()
	// an exact entry must win over any applicable rule
	d.Add(Entry{Word: "cats", Phonemes: p("k", "ae", "t", "z"), StressIndex: 1})

	res, err := d.Lookup("cats")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if res.Kind != KindExact {
		t.Errorf("kind = %v, want exact", res.Kind)
	}
	want := p("k", "ae", "t", "z")
	if !reflect.DeepEqual(res.Phonemes, want) {
		t.Errorf("phonemes = %v, want %v", res.Phonemes, want)
	}
}

func TestCaseFolding(t *testing.T) {
	d := testDict()
	res, err := d.Lookup("CAT")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if res.Kind != KindExact {
		t.Errorf("kind = %v, want exact", res.Kind)
	}
}

func TestSuffixRule(t *testing.T) {
	d := testDict()
	res, err := d.Lookup("cats")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if res.Kind != KindRule {
		t.Errorf("kind = %v, want rule", res.Kind)
	}
	want := p("k", "ae", "t", "s")
	if !reflect.DeepEqual(res.Phonemes, want) {
		t.Errorf("phonemes = %v, want %v", res.Phonemes, want)
	}
	if res.StressIndex != 1 {
		t.Errorf("stress index = %d, want 1 (inherited from stem)", res.StressIndex)
	}
}

func TestLongestSuffixWins(t *testing.T) {
	d := testDict()
	d.Add(Entry{Word: "play", Phonemes: p("p", "l", "ey"), StressIndex: 2})

	// "playing": suffix "ing" (len 3) must beat "s"-type short rules in
	// any group, regardless of declaration order
	d.AddGroup(&RuleGroup{
		Name:  "late",
		Span:  Suffix,
		Rules: []Rule{{Pattern: "g", Phonemes: p("g")}},
	})
	res, err := d.Lookup("playing")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	want := p("p", "l", "ey", "ih", "ng")
	if !reflect.DeepEqual(res.Phonemes, want) {
		t.Errorf("phonemes = %v, want %v", res.Phonemes, want)
	}
}

func TestNoMatch(t *testing.T) {
	d := testDict()
	_, err := d.Lookup("xylophone")
	if err != ErrNoMatch {
		t.Errorf("err = %v, want ErrNoMatch", err)
	}
}

func TestFunctionWordFlag(t *testing.T) {
	d := testDict()
	res, err := d.Lookup("the")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if !res.Function {
		t.Error("function flag lost")
	}
}

func TestSaveLoad(t *testing.T) {
	d := testDict()
	var buf bytes.Buffer
	if err := d.Save(&buf); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	loaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if loaded.Len() != d.Len() {
		t.Fatalf("entries = %d, want %d", loaded.Len(), d.Len())
	}
	if len(loaded.Groups()) != len(d.Groups()) {
		t.Fatalf("groups = %d, want %d", len(loaded.Groups()), len(d.Groups()))
	}

	// cascade must behave identically after a round trip
	res, err := loaded.Lookup("cats")
	if err != nil {
		t.Fatalf("Lookup after load: %v", err)
	}
	want := p("k", "ae", "t", "s")
	if !reflect.DeepEqual(res.Phonemes, want) {
		t.Errorf("phonemes = %v, want %v", res.Phonemes, want)
	}
}

func TestBuiltin(t *testing.T) {
	d := Builtin()
	if d.Len() == 0 {
		t.Fatal("builtin dictionary is empty")
	}
	res, err := d.Lookup("hello")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if res.Kind != KindExact {
		t.Errorf("kind = %v, want exact", res.Kind)
	}
	tbl := phoneme.Default()
	for _, e := range builtinEntries {
		for _, ph := range e.Phonemes {
			if _, ok := tbl.Lookup(ph); !ok {
				t.Errorf("entry %q uses unknown phoneme %s", e.Word, ph)
			}
		}
	}
}
