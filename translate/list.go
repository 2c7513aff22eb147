package translate

import (
	"strings"

	"github.com/ieee0824/speak-go/phoneme"
)

// Stress is the stress level of a phoneme list entry.
type Stress int

const (
	StressNone Stress = iota
	StressSecondary
	StressPrimary
)

// ClauseType drives the clause-level pitch contour.
type ClauseType int

const (
	Statement ClauseType = iota
	Question
	Exclamation
)

// Token is one word of a clause plus any inline prosody directives
// produced by the upstream text-normalization collaborator.
type Token struct {
	Text string
	// PhonemeOverride bypasses the dictionary entirely.
	PhonemeOverride []phoneme.Phoneme
	// StressOverride forces the stress level of the word's nucleus.
	StressOverride *Stress
	// Pitch and Rate override the utterance settings for this word.
	// Zero means no override.
	Pitch float64
	Rate  float64
}

// Clause is the unit of prosodic contour assignment.
type Clause struct {
	Tokens []Token
	Type   ClauseType
}

// Entry is one element of a phoneme list. The translator fills identity
// and stress; the prosody assigner fills Duration and Pitch in place.
// A list is never reordered once produced.
type Entry struct {
	Phoneme phoneme.Phoneme
	Type    phoneme.Type
	// WordIndex is the index of the source token within its clause,
	// -1 for inserted pauses.
	WordIndex int
	Stress    Stress
	Function  bool

	Duration float64 // ms, 0 until assigned
	Pitch    float64 // Hz, 0 until assigned

	// WordPitch and WordRate carry per-word directive overrides through
	// to the prosody assigner. Zero means none.
	WordPitch float64
	WordRate  float64
}

// List is an ordered phoneme sequence for one or more clauses.
type List []Entry

// String renders the list as a textual phoneme string; primary stress is
// marked with ' and secondary with , before the nucleus. This export and
// audio rendering consume the same list.
func (l List) String() string {
	var b strings.Builder
	for i, e := range l {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch e.Stress {
		case StressPrimary:
			b.WriteByte('\'')
		case StressSecondary:
			b.WriteByte(',')
		}
		b.WriteString(string(e.Phoneme))
	}
	return b.String()
}

// Phonemes returns the bare phoneme identifiers.
func (l List) Phonemes() []phoneme.Phoneme {
	out := make([]phoneme.Phoneme, len(l))
	for i, e := range l {
		out[i] = e.Phoneme
	}
	return out
}

// TotalDuration returns the summed assigned duration in ms.
func (l List) TotalDuration() float64 {
	var total float64
	for _, e := range l {
		total += e.Duration
	}
	return total
}
