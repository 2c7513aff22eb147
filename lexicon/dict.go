package lexicon

import (
	"errors"
	"strings"

	"github.com/ieee0824/speak-go/phoneme"
)

// ErrNoMatch is returned when neither the dictionary nor any rule group
// can translate a word. Callers recover via the letter-cluster fallback;
// it never aborts an utterance.
var ErrNoMatch = errors.New("lexicon: no dictionary entry or rule matches")

// Kind reports how a lookup result was produced.
type Kind int

const (
	KindExact Kind = iota // direct dictionary entry
	KindRule              // assembled by the rule cascade
)

// Entry is a compiled pronunciation for a word or stem.
type Entry struct {
	Word     string
	Phonemes []phoneme.Phoneme
	// StressIndex is the index into Phonemes of the stressed syllable
	// nucleus, or -1 when unannotated.
	StressIndex int
	// Function marks unstressed function words ("the", "of", ...).
	Function bool
	// POS is an optional part-of-speech hint used by disambiguation.
	POS string
}

// Result is the outcome of a successful lookup.
type Result struct {
	Phonemes    []phoneme.Phoneme
	Kind        Kind
	StressIndex int
	Function    bool
}

// Dictionary is the compiled lookup structure: exact entries keyed by
// case-folded word, plus rule groups in declaration order. It is built by
// the dictionary compiler and read-only at runtime; concurrent lookups
// need no synchronization.
type Dictionary struct {
	entries map[string]*Entry
	groups  []*RuleGroup
}

// NewDictionary creates an empty dictionary. Used by the compiler and by
// tests; runtime users load a compiled form instead.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: make(map[string]*Entry)}
}

// Add registers a pronunciation entry under its case-folded key.
func (d *Dictionary) Add(e Entry) {
	copied := e
	d.entries[foldKey(e.Word)] = &copied
}

// AddGroup appends a rule group. Declaration order is the cascade
// tie-break order and must be preserved.
func (d *Dictionary) AddGroup(g *RuleGroup) {
	d.groups = append(d.groups, g)
}

// Entry returns the exact entry for a word, if any.
func (d *Dictionary) Entry(word string) (*Entry, bool) {
	e, ok := d.entries[foldKey(word)]
	return e, ok
}

// Len returns the number of exact entries.
func (d *Dictionary) Len() int { return len(d.entries) }

// Groups returns the rule groups in declaration order.
func (d *Dictionary) Groups() []*RuleGroup { return d.groups }

// Lookup resolves a word to its phoneme string. Exact entries always win;
// on a miss the rule cascade is applied. ErrNoMatch is returned when
// nothing applies.
func (d *Dictionary) Lookup(word string) (Result, error) {
	if e, ok := d.Entry(word); ok {
		return Result{
			Phonemes:    e.Phonemes,
			Kind:        KindExact,
			StressIndex: e.StressIndex,
			Function:    e.Function,
		}, nil
	}
	if r, ok := d.cascade([]rune(foldKey(word))); ok {
		return r, nil
	}
	return Result{}, ErrNoMatch
}

func foldKey(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
