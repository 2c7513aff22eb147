// Package translate turns segmented clauses into untimed phoneme lists:
// dictionary lookup, compound splitting, fallback transcription and
// stress assignment.
package translate

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ieee0824/speak-go/lexicon"
	"github.com/ieee0824/speak-go/phoneme"
	"github.com/ieee0824/speak-go/voice"
)

// minTypoLen is the shortest word eligible for nearest-headword typo
// tolerance.
const minTypoLen = 4

// Translator converts clauses to phoneme lists. It holds only shared
// read-only state and is safe for concurrent use.
type Translator struct {
	Table *phoneme.Table
	// Dicts is the ordered fallback chain of dictionaries; the first
	// successful lookup wins.
	Dicts []*lexicon.Dictionary
	Voice *voice.Voice
}

// New creates a translator over a dictionary chain.
func New(table *phoneme.Table, v *voice.Voice, dicts ...*lexicon.Dictionary) *Translator {
	return &Translator{Table: table, Dicts: dicts, Voice: v}
}

// Translate converts one clause into an untimed phoneme list. A clause
// that is empty after tokenization yields an empty list, never an error:
// one bad clause must not abort a document. The result depends only on
// the inputs, so repeated translation is identical.
func (t *Translator) Translate(c Clause) List {
	var list List
	lastWord := -1
	for i := range c.Tokens {
		if strings.TrimSpace(c.Tokens[i].Text) == "" && c.Tokens[i].PhonemeOverride == nil {
			continue
		}
		entries := t.word(&c.Tokens[i], i)
		if len(entries) == 0 {
			continue
		}
		list = append(list, entries...)
		lastWord = i
	}
	if lastWord < 0 {
		return nil
	}
	// clause-final pause
	list = append(list, Entry{Phoneme: "pau", Type: phoneme.Pause, WordIndex: -1})
	return list
}

// word translates a single token into list entries.
func (t *Translator) word(tok *Token, wordIndex int) []Entry {
	var ph []phoneme.Phoneme
	stressIdx := -1
	function := false

	switch {
	case tok.PhonemeOverride != nil:
		ph = tok.PhonemeOverride
	default:
		res := t.lookup(tok.Text, true)
		ph = res.Phonemes
		stressIdx = res.StressIndex
		function = res.Function
	}
	if len(ph) == 0 {
		return nil
	}

	entries := make([]Entry, 0, len(ph))
	for _, p := range ph {
		tp := phoneme.Vowel
		if def, ok := t.Table.Lookup(p); ok {
			tp = def.Type
		} else {
			log.Warn().Str("phoneme", string(p)).Str("word", tok.Text).
				Msg("phoneme missing from table, treated as vowel")
		}
		entries = append(entries, Entry{
			Phoneme:   p,
			Type:      tp,
			WordIndex: wordIndex,
			Function:  function,
			WordPitch: tok.Pitch,
			WordRate:  tok.Rate,
		})
	}

	t.assignStress(entries, stressIdx, function, tok.StressOverride)
	return entries
}

// lookup resolves a word through the dictionary chain. On a total miss a
// compound word is split once and its parts translated independently;
// sub-parts that still miss go straight to the letter-cluster fallback,
// never back into the splitter.
func (t *Translator) lookup(word string, allowSplit bool) lexicon.Result {
	for _, d := range t.Dicts {
		res, err := d.Lookup(word)
		if err == nil {
			return res
		}
	}

	if allowSplit {
		if parts := t.splitCompound(word); len(parts) > 1 {
			var joined []phoneme.Phoneme
			for _, part := range parts {
				sub := t.lookup(part, false)
				joined = append(joined, sub.Phonemes...)
			}
			return lexicon.Result{Phonemes: joined, Kind: lexicon.KindRule, StressIndex: -1}
		}
	}

	// typo tolerance: a near miss against a known headword reads better
	// than a letter-by-letter guess. Short words are excluded so function
	// words never capture each other.
	if len([]rune(word)) >= minTypoLen {
		for _, d := range t.Dicts {
			if e, ok := d.Nearest(word, 1); ok {
				log.Debug().Str("word", word).Str("headword", e.Word).
					Msg("no exact or rule match, using nearest headword")
				return lexicon.Result{
					Phonemes:    e.Phonemes,
					Kind:        lexicon.KindExact,
					StressIndex: e.StressIndex,
					Function:    e.Function,
				}
			}
		}
	}

	log.Debug().Str("word", word).Msg("no dictionary or rule match, using letter fallback")
	return lexicon.Result{
		Phonemes:    lexicon.Fallback(word),
		Kind:        lexicon.KindRule,
		StressIndex: -1,
	}
}

// splitCompound splits on internal boundaries (hyphen, apostrophe).
func (t *Translator) splitCompound(word string) []string {
	seps := t.Voice.Tokens.Compound
	if seps == "" {
		return nil
	}
	parts := strings.FieldsFunc(word, func(r rune) bool {
		return strings.ContainsRune(seps, r)
	})
	return parts
}

// assignStress marks the syllable nucleus. Dictionary annotation wins;
// otherwise the language default stress rule picks a vowel. Function
// words stay unstressed unless a directive overrides them.
func (t *Translator) assignStress(entries []Entry, dictIdx int, function bool, override *Stress) {
	level := StressPrimary
	if override != nil {
		level = *override
		if level == StressNone {
			return
		}
	} else if function {
		return
	}

	if dictIdx >= 0 && dictIdx < len(entries) {
		entries[dictIdx].Stress = level
		return
	}

	nucleus := t.defaultNucleus(entries)
	if nucleus >= 0 {
		entries[nucleus].Stress = level
	}
}

// defaultNucleus applies the configured stress rule over the word's
// vowels.
func (t *Translator) defaultNucleus(entries []Entry) int {
	var vowels []int
	for i, e := range entries {
		if e.Type == phoneme.Vowel {
			vowels = append(vowels, i)
		}
	}
	if len(vowels) == 0 {
		return -1
	}
	switch t.Voice.StressRule {
	case "first":
		return vowels[0]
	case "last":
		return vowels[len(vowels)-1]
	default: // penultimate
		if len(vowels) >= 2 {
			return vowels[len(vowels)-2]
		}
		return vowels[0]
	}
}
