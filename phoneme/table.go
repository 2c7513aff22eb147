package phoneme

// Table is the phoneme catalogue: one Definition per phoneme, shared
// read-only across all utterances.
type Table struct {
	defs   map[Phoneme]*Definition
	byType map[Type][]*Definition
}

// f builds a formant target.
func f(freq, bw, amp float64) Formant {
	return Formant{Freq: freq, Bw: bw, Amp: amp}
}

// The catalogue covers the English phoneme inventory plus trill and flap
// variants used by other languages. Vowel formants follow published
// steady-state measurements; consonant formants are locus values.
var catalogue = []Definition{
	// Silence
	{Phoneme: "pau", Type: Pause, Voicing: Unvoiced, Class: Short},

	// Vowels: lax vowels are Short, tense vowels Long, diphthong-like
	// and rhotacized vowels Elongated.
	{Phoneme: "iy", Type: Vowel, Voicing: Voiced, Class: Long,
		Formants: [NumFormants]Formant{f(285, 60, 1), f(2373, 90, 0.5), f(3088, 150, 0.25)}},
	{Phoneme: "ih", Type: Vowel, Voicing: Voiced, Class: Short,
		Formants: [NumFormants]Formant{f(356, 60, 1), f(2098, 90, 0.5), f(2696, 150, 0.25)}},
	{Phoneme: "eh", Type: Vowel, Voicing: Voiced, Class: Short,
		Formants: [NumFormants]Formant{f(569, 60, 1), f(1965, 90, 0.5), f(2636, 150, 0.25)}},
	{Phoneme: "ae", Type: Vowel, Voicing: Voiced, Class: Long,
		Formants: [NumFormants]Formant{f(748, 70, 1), f(1746, 100, 0.5), f(2460, 150, 0.25)}},
	{Phoneme: "aa", Type: Vowel, Voicing: Voiced, Class: Long,
		Formants: [NumFormants]Formant{f(710, 70, 1), f(1100, 100, 0.5), f(2540, 150, 0.25)}},
	{Phoneme: "ah", Type: Vowel, Voicing: Voiced, Class: Short,
		Formants: [NumFormants]Formant{f(677, 70, 1), f(1083, 100, 0.5), f(2340, 150, 0.25)}},
	{Phoneme: "ao", Type: Vowel, Voicing: Voiced, Class: Long,
		Formants: [NumFormants]Formant{f(599, 70, 1), f(891, 100, 0.5), f(2605, 150, 0.25)}},
	{Phoneme: "uh", Type: Vowel, Voicing: Voiced, Class: Short,
		Formants: [NumFormants]Formant{f(376, 60, 1), f(950, 90, 0.5), f(2440, 150, 0.25)}},
	{Phoneme: "uw", Type: Vowel, Voicing: Voiced, Class: Long,
		Formants: [NumFormants]Formant{f(309, 60, 1), f(939, 90, 0.5), f(2320, 150, 0.25)}},
	{Phoneme: "er", Type: Vowel, Voicing: Voiced, Class: Elongated,
		Formants: [NumFormants]Formant{f(474, 70, 1), f(1379, 100, 0.5), f(1710, 150, 0.25)}},
	{Phoneme: "ax", Type: Vowel, Voicing: Voiced, Class: Short,
		Formants: [NumFormants]Formant{f(500, 70, 1), f(1150, 100, 0.5), f(1650, 150, 0.25)}},
	{Phoneme: "ay", Type: Vowel, Voicing: Voiced, Class: Elongated,
		Formants: [NumFormants]Formant{f(710, 70, 1), f(1500, 100, 0.5), f(2540, 150, 0.25)}},
	{Phoneme: "aw", Type: Vowel, Voicing: Voiced, Class: Elongated,
		Formants: [NumFormants]Formant{f(700, 70, 1), f(1200, 100, 0.5), f(2400, 150, 0.25)}},
	{Phoneme: "ow", Type: Vowel, Voicing: Voiced, Class: Elongated,
		Formants: [NumFormants]Formant{f(540, 70, 1), f(900, 100, 0.5), f(2400, 150, 0.25)}},
	{Phoneme: "ey", Type: Vowel, Voicing: Voiced, Class: Elongated,
		Formants: [NumFormants]Formant{f(480, 60, 1), f(2100, 90, 0.5), f(2700, 150, 0.25)}},
	{Phoneme: "oy", Type: Vowel, Voicing: Voiced, Class: Elongated,
		Formants: [NumFormants]Formant{f(560, 70, 1), f(1200, 100, 0.5), f(2500, 150, 0.25)}},

	// Stops
	{Phoneme: "p", Type: Stop, Voicing: Unvoiced, Class: Short,
		Formants: [NumFormants]Formant{f(100, 150, 0.2), f(500, 200, 0.15), f(2500, 300, 0.05)}},
	{Phoneme: "b", Type: Stop, Voicing: Voiced, Class: Short,
		Formants: [NumFormants]Formant{f(100, 100, 0.5), f(500, 150, 0.3), f(2500, 250, 0.1)}},
	{Phoneme: "t", Type: Stop, Voicing: Unvoiced, Class: Short,
		Formants: [NumFormants]Formant{f(100, 150, 0.2), f(1700, 200, 0.15), f(2600, 300, 0.1)}},
	{Phoneme: "d", Type: Stop, Voicing: Voiced, Class: Short,
		Formants: [NumFormants]Formant{f(100, 100, 0.5), f(1700, 150, 0.3), f(2600, 250, 0.1)}},
	{Phoneme: "k", Type: Stop, Voicing: Unvoiced, Class: Short,
		Formants: [NumFormants]Formant{f(100, 150, 0.2), f(1300, 200, 0.15), f(2200, 300, 0.1)}},
	{Phoneme: "g", Type: Stop, Voicing: Voiced, Class: Short,
		Formants: [NumFormants]Formant{f(100, 100, 0.5), f(1300, 150, 0.3), f(2200, 250, 0.1)}},

	// Fricatives
	{Phoneme: "f", Type: Fricative, Voicing: Unvoiced, Class: Long,
		Formants: [NumFormants]Formant{f(1100, 300, 0.3), f(2100, 350, 0.2), f(4500, 500, 0.3)}},
	{Phoneme: "v", Type: Fricative, Voicing: Mixed, Class: Long,
		Formants: [NumFormants]Formant{f(300, 100, 0.5), f(1100, 300, 0.3), f(2100, 350, 0.2)}},
	{Phoneme: "th", Type: Fricative, Voicing: Unvoiced, Class: Long,
		Formants: [NumFormants]Formant{f(1300, 300, 0.25), f(2000, 350, 0.2), f(5000, 600, 0.3)}},
	{Phoneme: "dh", Type: Fricative, Voicing: Mixed, Class: Long,
		Formants: [NumFormants]Formant{f(300, 100, 0.5), f(1300, 300, 0.25), f(2000, 350, 0.2)}},
	{Phoneme: "s", Type: Fricative, Voicing: Unvoiced, Class: Long,
		Formants: [NumFormants]Formant{f(1400, 300, 0.2), f(4500, 400, 0.6), f(6000, 600, 0.4)}},
	{Phoneme: "z", Type: Fricative, Voicing: Mixed, Class: Long,
		Formants: [NumFormants]Formant{f(250, 80, 0.5), f(1400, 300, 0.2), f(4500, 400, 0.5)}},
	{Phoneme: "sh", Type: Fricative, Voicing: Unvoiced, Class: Long,
		Formants: [NumFormants]Formant{f(1800, 300, 0.3), f(2600, 350, 0.5), f(4000, 500, 0.3)}},
	{Phoneme: "zh", Type: Fricative, Voicing: Mixed, Class: Long,
		Formants: [NumFormants]Formant{f(250, 80, 0.5), f(1800, 300, 0.3), f(2600, 350, 0.4)}},
	{Phoneme: "hh", Type: Fricative, Voicing: Unvoiced, Class: Short,
		Formants: [NumFormants]Formant{f(500, 300, 0.3), f(1500, 400, 0.3), f(2500, 500, 0.2)}},

	// Nasals
	{Phoneme: "m", Type: Nasal, Voicing: Voiced, Class: Short,
		Formants: [NumFormants]Formant{f(250, 80, 0.8), f(1100, 200, 0.2), f(2100, 300, 0.1)}},
	{Phoneme: "n", Type: Nasal, Voicing: Voiced, Class: Short,
		Formants: [NumFormants]Formant{f(250, 80, 0.8), f(1400, 200, 0.25), f(2300, 300, 0.1)}},
	{Phoneme: "ng", Type: Nasal, Voicing: Voiced, Class: Short,
		Formants: [NumFormants]Formant{f(250, 80, 0.8), f(1300, 200, 0.2), f(2100, 300, 0.1)}},

	// Liquid
	{Phoneme: "l", Type: Liquid, Voicing: Voiced, Class: Short,
		Formants: [NumFormants]Formant{f(300, 80, 0.8), f(1225, 150, 0.4), f(2950, 250, 0.15)}},

	// Trill (rolled r, non-English languages)
	{Phoneme: "rr", Type: Trill, Voicing: Voiced, Class: Long,
		Formants: [NumFormants]Formant{f(350, 100, 0.7), f(1300, 200, 0.4), f(2200, 300, 0.15)}},

	// Approximants
	{Phoneme: "r", Type: Approximant, Voicing: Voiced, Class: Short,
		Formants: [NumFormants]Formant{f(400, 100, 0.8), f(1200, 150, 0.4), f(1600, 250, 0.3)}},
	{Phoneme: "w", Type: Approximant, Voicing: Voiced, Class: Short,
		Formants: [NumFormants]Formant{f(300, 80, 0.8), f(700, 150, 0.4), f(2200, 300, 0.1)}},
	{Phoneme: "y", Type: Approximant, Voicing: Voiced, Class: Short,
		Formants: [NumFormants]Formant{f(280, 70, 0.8), f(2200, 150, 0.4), f(3000, 300, 0.15)}},

	// Affricates
	{Phoneme: "ch", Type: Affricate, Voicing: Unvoiced, Class: Long,
		Formants: [NumFormants]Formant{f(1800, 300, 0.3), f(2600, 350, 0.5), f(4000, 500, 0.3)}},
	{Phoneme: "jh", Type: Affricate, Voicing: Mixed, Class: Long,
		Formants: [NumFormants]Formant{f(250, 80, 0.5), f(1800, 300, 0.3), f(2600, 350, 0.4)}},

	// Flap (AmE "butter", distinct from a voiced stop)
	{Phoneme: "dx", Type: Flap, Voicing: Voiced, Class: Short,
		Formants: [NumFormants]Formant{f(300, 100, 0.6), f(1600, 200, 0.3), f(2600, 300, 0.1)}},
}

var defaultTable = buildTable()

func buildTable() *Table {
	t := &Table{
		defs:   make(map[Phoneme]*Definition, len(catalogue)),
		byType: make(map[Type][]*Definition),
	}
	for i := range catalogue {
		d := &catalogue[i]
		t.defs[d.Phoneme] = d
		t.byType[d.Type] = append(t.byType[d.Type], d)
	}
	return t
}

// Default returns the built-in catalogue. It is immutable and safe for
// unsynchronized concurrent reads.
func Default() *Table {
	return defaultTable
}

// Lookup returns the definition for a phoneme.
func (t *Table) Lookup(p Phoneme) (*Definition, bool) {
	d, ok := t.defs[p]
	return d, ok
}

// NearestByType returns a defined phoneme of the given type with populated
// formant targets. It is the substitution target for table gaps.
func (t *Table) NearestByType(tp Type) (*Definition, bool) {
	for _, d := range t.byType[tp] {
		if d.HasFormants() {
			return d, true
		}
	}
	return nil, false
}

// All returns every phoneme in the catalogue.
func (t *Table) All() []Phoneme {
	ps := make([]Phoneme, 0, len(t.defs))
	for p := range t.defs {
		ps = append(ps, p)
	}
	return ps
}
