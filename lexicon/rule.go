package lexicon

import "github.com/ieee0824/speak-go/phoneme"

// Span is the part of a word a rule group matches against.
type Span int

const (
	// Prefix rules match the letters preceding the stem. Their patterns
	// are authored from the stem boundary outward, so matching compares
	// the reversed prefix against the pattern. A forward comparison
	// selects different rules and is a defect, not a variant.
	Prefix Span = iota
	Suffix
	Infix
)

// Rule maps a literal letter pattern, with optional letter context, to a
// phoneme string. In Pre/Post context strings the marker '_' matches the
// word edge.
type Rule struct {
	Pattern  string
	Pre      string
	Post     string
	Phonemes []phoneme.Phoneme
}

// RuleGroup is an ordered set of rules sharing one span. Group declaration
// order breaks ties between equally long matches.
type RuleGroup struct {
	Name  string
	Span  Span
	Rules []Rule
}

// cascade applies the rule groups to a word that has no exact entry.
// Affix groups are tried first: the longest literal match wins, ties
// resolved by group then rule declaration order. If no affix rule applies,
// the infix groups must spell out the entire word.
func (d *Dictionary) cascade(word []rune) (Result, bool) {
	if r, ok := d.affixMatch(word); ok {
		return r, true
	}
	if ph, ok := d.spellOut(word); ok {
		return Result{Phonemes: ph, Kind: KindRule, StressIndex: -1}, true
	}
	return Result{}, false
}

func (d *Dictionary) affixMatch(word []rune) (Result, bool) {
	var best Result
	bestLen := 0
	for _, g := range d.groups {
		if g.Span == Infix {
			continue
		}
		for i := range g.Rules {
			r := &g.Rules[i]
			plen := len([]rune(r.Pattern))
			if plen <= bestLen { // strict improvement only: earliest declaration wins ties
				continue
			}
			if cand, ok := d.applyAffix(g.Span, r, word); ok {
				best = cand
				bestLen = plen
			}
		}
	}
	if bestLen == 0 {
		return Result{}, false
	}
	return best, true
}

// applyAffix tries one prefix or suffix rule: the rest of the word (the
// stem) must resolve through an exact dictionary entry. Stem resolution is
// exact-only so the cascade cannot recurse into itself.
func (d *Dictionary) applyAffix(span Span, r *Rule, word []rune) (Result, bool) {
	pat := []rune(r.Pattern)
	plen := len(pat)
	if plen == 0 || plen >= len(word) {
		return Result{}, false
	}

	switch span {
	case Suffix:
		stem := word[:len(word)-plen]
		tail := word[len(word)-plen:]
		for i := range pat {
			if tail[i] != pat[i] {
				return Result{}, false
			}
		}
		if !matchBefore(word, len(stem), r.Pre) {
			return Result{}, false
		}
		e, ok := d.entries[string(stem)]
		if !ok {
			return Result{}, false
		}
		ph := make([]phoneme.Phoneme, 0, len(e.Phonemes)+len(r.Phonemes))
		ph = append(ph, e.Phonemes...)
		ph = append(ph, r.Phonemes...)
		return Result{Phonemes: ph, Kind: KindRule, StressIndex: e.StressIndex, Function: e.Function}, true

	case Prefix:
		// Reversed scan: pattern rune i is compared to the letter i
		// positions left of the stem boundary.
		for i := range pat {
			if word[plen-1-i] != pat[i] {
				return Result{}, false
			}
		}
		stem := word[plen:]
		if !matchAfter(word, plen, r.Post) {
			return Result{}, false
		}
		e, ok := d.entries[string(stem)]
		if !ok {
			return Result{}, false
		}
		ph := make([]phoneme.Phoneme, 0, len(r.Phonemes)+len(e.Phonemes))
		ph = append(ph, r.Phonemes...)
		ph = append(ph, e.Phonemes...)
		stress := e.StressIndex
		if stress >= 0 {
			stress += len(r.Phonemes)
		}
		return Result{Phonemes: ph, Kind: KindRule, StressIndex: stress, Function: e.Function}, true
	}
	return Result{}, false
}

// spellOut transcribes the word letter-span by letter-span using the infix
// groups. Every position must be covered by some rule, otherwise the word
// is a cascade miss.
func (d *Dictionary) spellOut(word []rune) ([]phoneme.Phoneme, bool) {
	var out []phoneme.Phoneme
	covered := false
	for pos := 0; pos < len(word); {
		r, plen := d.bestInfixAt(word, pos)
		if r == nil {
			return nil, false
		}
		out = append(out, r.Phonemes...)
		pos += plen
		covered = true
	}
	return out, covered
}

func (d *Dictionary) bestInfixAt(word []rune, pos int) (*Rule, int) {
	var best *Rule
	bestLen := 0
	for _, g := range d.groups {
		if g.Span != Infix {
			continue
		}
		for i := range g.Rules {
			r := &g.Rules[i]
			pat := []rune(r.Pattern)
			plen := len(pat)
			if plen == 0 || plen <= bestLen || pos+plen > len(word) {
				continue
			}
			ok := true
			for j := range pat {
				if word[pos+j] != pat[j] {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			if !matchBefore(word, pos, r.Pre) || !matchAfter(word, pos+plen, r.Post) {
				continue
			}
			best = r
			bestLen = plen
		}
	}
	return best, bestLen
}

// matchBefore checks a Pre context: its letters are compared right to left
// against the letters immediately before pos. '_' matches the word edge.
func matchBefore(word []rune, pos int, ctx string) bool {
	if ctx == "" {
		return true
	}
	cr := []rune(ctx)
	for i := len(cr) - 1; i >= 0; i-- {
		off := len(cr) - 1 - i // distance left of pos
		idx := pos - 1 - off
		if cr[i] == '_' {
			if idx >= 0 {
				return false
			}
			continue
		}
		if idx < 0 || word[idx] != cr[i] {
			return false
		}
	}
	return true
}

// matchAfter checks a Post context against the letters starting at pos.
func matchAfter(word []rune, pos int, ctx string) bool {
	if ctx == "" {
		return true
	}
	for i, c := range []rune(ctx) {
		idx := pos + i
		if c == '_' {
			if idx < len(word) {
				return false
			}
			continue
		}
		if idx >= len(word) || word[idx] != c {
			return false
		}
	}
	return true
}
