package lexicon

import "github.com/ieee0824/speak-go/phoneme"

// p is a shorthand to build a phoneme slice.
func p(ps ...phoneme.Phoneme) []phoneme.Phoneme { return ps }

// clusterPhonemes maps letter clusters to phoneme sequences for the
// degraded no-match path. Two-letter clusters are checked before single
// letters (longest match).
var clusterPhonemes = []struct {
	cluster  string
	phonemes []phoneme.Phoneme
}{
	// digraphs — must come before single letters
	{"ch", p("ch")},
	{"sh", p("sh")},
	{"th", p("th")},
	{"ph", p("f")},
	{"wh", p("w")},
	{"ck", p("k")},
	{"ng", p("ng")},
	{"qu", p("k", "w")},
	{"ee", p("iy")},
	{"oo", p("uw")},
	{"ea", p("iy")},
	{"ai", p("ey")},
	{"ay", p("ey")},
	{"oa", p("ow")},
	{"ou", p("aw")},
	{"ow", p("ow")},
	{"oy", p("oy")},
	{"oi", p("oy")},

	// single letters
	{"a", p("ae")},
	{"b", p("b")},
	{"c", p("k")},
	{"d", p("d")},
	{"e", p("eh")},
	{"f", p("f")},
	{"g", p("g")},
	{"h", p("hh")},
	{"i", p("ih")},
	{"j", p("jh")},
	{"k", p("k")},
	{"l", p("l")},
	{"m", p("m")},
	{"n", p("n")},
	{"o", p("aa")},
	{"p", p("p")},
	{"q", p("k")},
	{"r", p("r")},
	{"s", p("s")},
	{"t", p("t")},
	{"u", p("ah")},
	{"v", p("v")},
	{"w", p("w")},
	{"x", p("k", "s")},
	{"y", p("y")},
	{"z", p("z")},
}

// clusterMap indexes one- and two-letter clusters for fast lookup.
// Built at init time from clusterPhonemes.
var clusterMap2 map[string][]phoneme.Phoneme // 2-letter entries
var clusterMap1 map[string][]phoneme.Phoneme // 1-letter entries

func init() {
	clusterMap2 = make(map[string][]phoneme.Phoneme)
	clusterMap1 = make(map[string][]phoneme.Phoneme)
	for _, e := range clusterPhonemes {
		if len([]rune(e.cluster)) == 2 {
			clusterMap2[e.cluster] = e.phonemes
		} else {
			clusterMap1[e.cluster] = e.phonemes
		}
	}
}

// Fallback converts a word to phonemes one letter cluster at a time. It is
// the degraded-quality path taken after ErrNoMatch. Unknown characters are
// silently skipped.
func Fallback(word string) []phoneme.Phoneme {
	runes := []rune(foldKey(word))
	var result []phoneme.Phoneme
	for i := 0; i < len(runes); {
		// Try 2-letter match first (longest match)
		if i+1 < len(runes) {
			key := string(runes[i : i+2])
			if ph, ok := clusterMap2[key]; ok {
				result = append(result, ph...)
				i += 2
				continue
			}
		}
		key := string(runes[i : i+1])
		if ph, ok := clusterMap1[key]; ok {
			result = append(result, ph...)
		}
		i++
	}
	return result
}
