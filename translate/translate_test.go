package translate

import (
	"reflect"
	"testing"

	"github.com/ieee0824/speak-go/lexicon"
	"github.com/ieee0824/speak-go/phoneme"
	"github.com/ieee0824/speak-go/voice"
)

func ph(ps ...string) []phoneme.Phoneme {
	out := make([]phoneme.Phoneme, len(ps))
	for i, s := range ps {
		out[i] = phoneme.Phoneme(s)
	}
	return out
}

func newTranslator(d *lexicon.Dictionary) *Translator {
	return New(phoneme.Default(), voice.Default(), d)
}

func clauseOf(words ...string) Clause {
	c := Clause{Type: Statement}
	for _, w := range words {
		c.Tokens = append(c.Tokens, Token{Text: w})
	}
	return c
}

func symbols(l List) []string {
	var out []string
	for _, e := range l {
		out = append(out, string(e.Phoneme))
	}
	return out
}

func TestDictionaryEntryWins(t *testing.T) {
	d := lexicon.NewDictionary()
	d.Add(lexicon.Entry{Word: "cats", Phonemes: ph("k", "ae", "t", "s"), StressIndex: 1})

	list := newTranslator(d).Translate(clauseOf("cats"))
	want := []string{"k", "ae", "t", "s", "pau"}
	if !reflect.DeepEqual(symbols(list), want) {
		t.Fatalf("phonemes = %v, want %v", symbols(list), want)
	}
	if list[1].Stress != StressPrimary {
		t.Errorf("stress on %s = %v, want primary on dictionary nucleus", list[1].Phoneme, list[1].Stress)
	}
}

func TestFallbackWithoutEntry(t *testing.T) {
	// empty dictionary: "cats" must go through the per-letter heuristic
	list := newTranslator(lexicon.NewDictionary()).Translate(clauseOf("cats"))
	want := []string{"k", "ae", "t", "s", "pau"}
	if !reflect.DeepEqual(symbols(list), want) {
		t.Fatalf("phonemes = %v, want %v", symbols(list), want)
	}
}

func TestIdempotence(t *testing.T) {
	tr := newTranslator(lexicon.Builtin())
	c := clauseOf("the", "cat", "reads")
	first := tr.Translate(c)
	second := tr.Translate(c)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated translation of the same clause differs")
	}
}

func TestEmptyClause(t *testing.T) {
	tr := newTranslator(lexicon.Builtin())
	if list := tr.Translate(Clause{}); list != nil {
		t.Errorf("empty clause list = %v, want nil", list)
	}
	if list := tr.Translate(clauseOf("", "  ")); list != nil {
		t.Errorf("whitespace clause list = %v, want nil", list)
	}
}

func TestCompoundSplit(t *testing.T) {
	d := lexicon.NewDictionary()
	d.Add(lexicon.Entry{Word: "cat", Phonemes: ph("k", "ae", "t"), StressIndex: 1})
	d.Add(lexicon.Entry{Word: "dog", Phonemes: ph("d", "ao", "g"), StressIndex: 1})

	list := newTranslator(d).Translate(clauseOf("cat-dog"))
	want := []string{"k", "ae", "t", "d", "ao", "g", "pau"}
	if !reflect.DeepEqual(symbols(list), want) {
		t.Fatalf("phonemes = %v, want %v", symbols(list), want)
	}
}

func TestCompoundSubPartFallsBack(t *testing.T) {
	d := lexicon.NewDictionary()
	d.Add(lexicon.Entry{Word: "cat", Phonemes: ph("k", "ae", "t"), StressIndex: 1})

	// "box" has no entry and no rules; the sub-part must go through the
	// fallback instead of re-entering the splitter
	list := newTranslator(d).Translate(clauseOf("cat-box"))
	want := []string{"k", "ae", "t", "b", "aa", "k", "s", "pau"}
	if !reflect.DeepEqual(symbols(list), want) {
		t.Fatalf("phonemes = %v, want %v", symbols(list), want)
	}
}

func TestTypoTolerance(t *testing.T) {
	d := lexicon.NewDictionary()
	d.Add(lexicon.Entry{Word: "hello", Phonemes: ph("hh", "ax", "l", "ow"), StressIndex: 3})

	list := newTranslator(d).Translate(clauseOf("helo"))
	want := []string{"hh", "ax", "l", "ow", "pau"}
	if !reflect.DeepEqual(symbols(list), want) {
		t.Fatalf("phonemes = %v, want nearest headword, got %v", want, symbols(list))
	}
}

func TestTypoToleranceSkipsShortWords(t *testing.T) {
	d := lexicon.NewDictionary()
	d.Add(lexicon.Entry{Word: "on", Phonemes: ph("aa", "n"), Function: true})

	// "one" is a near miss of "on" but too short for typo matching; it
	// must use the letter fallback instead
	list := newTranslator(d).Translate(clauseOf("one"))
	want := []string{"aa", "n", "eh", "pau"}
	if !reflect.DeepEqual(symbols(list), want) {
		t.Fatalf("phonemes = %v, want %v", symbols(list), want)
	}
}

func TestFunctionWordUnstressed(t *testing.T) {
	list := newTranslator(lexicon.Builtin()).Translate(clauseOf("the"))
	for _, e := range list {
		if e.Stress != StressNone {
			t.Errorf("function word entry %s has stress %v", e.Phoneme, e.Stress)
		}
	}
}

func TestDefaultStressPenultimateVowel(t *testing.T) {
	d := lexicon.NewDictionary()
	// no stress annotation: default rule must pick the penultimate vowel
	d.Add(lexicon.Entry{Word: "tomato", Phonemes: ph("t", "ax", "m", "aa", "t", "ow"), StressIndex: -1})

	list := newTranslator(d).Translate(clauseOf("tomato"))
	if list[3].Stress != StressPrimary {
		t.Errorf("stress not on penultimate vowel aa: %+v", list[:6])
	}
	for i, e := range list[:6] {
		if i != 3 && e.Stress != StressNone {
			t.Errorf("unexpected stress on entry %d (%s)", i, e.Phoneme)
		}
	}
}

func TestPhonemeOverrideDirective(t *testing.T) {
	tr := newTranslator(lexicon.Builtin())
	c := Clause{Type: Statement, Tokens: []Token{
		{Text: "tomato", PhonemeOverride: ph("t", "ax", "m", "ey", "t", "ow")},
	}}
	list := tr.Translate(c)
	want := []string{"t", "ax", "m", "ey", "t", "ow", "pau"}
	if !reflect.DeepEqual(symbols(list), want) {
		t.Fatalf("phonemes = %v, want %v", symbols(list), want)
	}
}

func TestStressOverrideDirective(t *testing.T) {
	none := StressNone
	secondary := StressSecondary
	d := lexicon.NewDictionary()
	d.Add(lexicon.Entry{Word: "cat", Phonemes: ph("k", "ae", "t"), StressIndex: 1})

	tr := newTranslator(d)

	list := tr.Translate(Clause{Tokens: []Token{{Text: "cat", StressOverride: &none}}})
	if list[1].Stress != StressNone {
		t.Errorf("stress = %v, want suppressed", list[1].Stress)
	}

	list = tr.Translate(Clause{Tokens: []Token{{Text: "cat", StressOverride: &secondary}}})
	if list[1].Stress != StressSecondary {
		t.Errorf("stress = %v, want secondary", list[1].Stress)
	}
}

func TestTypesAreTableDriven(t *testing.T) {
	list := newTranslator(lexicon.Builtin()).Translate(clauseOf("cat"))
	wantTypes := []phoneme.Type{phoneme.Stop, phoneme.Vowel, phoneme.Stop, phoneme.Pause}
	for i, e := range list {
		if e.Type != wantTypes[i] {
			t.Errorf("entry %d (%s) type = %v, want %v", i, e.Phoneme, e.Type, wantTypes[i])
		}
	}
}

func TestListString(t *testing.T) {
	d := lexicon.NewDictionary()
	d.Add(lexicon.Entry{Word: "cat", Phonemes: ph("k", "ae", "t"), StressIndex: 1})
	list := newTranslator(d).Translate(clauseOf("cat"))
	if got := list.String(); got != "k 'ae t pau" {
		t.Errorf("String() = %q, want %q", got, "k 'ae t pau")
	}
}
