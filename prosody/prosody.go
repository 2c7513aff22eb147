// Package prosody assigns per-phoneme durations and pitch targets over an
// untimed phoneme list. All shaping is table- and configuration-driven;
// the assigner itself holds no mutable state.
package prosody

import (
	"github.com/ieee0824/speak-go/phoneme"
	"github.com/ieee0824/speak-go/translate"
	"github.com/ieee0824/speak-go/voice"
)

// Params is the per-utterance prosody snapshot captured at pipeline
// start.
type Params struct {
	Rate      float64 // speaking rate multiplier, 1.0 = normal
	PitchBase float64 // baseline F0 in Hz
}

// Assigner fills Duration and Pitch on phoneme list entries in place.
// The list is annotated, never reordered.
type Assigner struct {
	Table *phoneme.Table
	Voice *voice.Voice
}

// New creates an assigner over the shared phoneme table and voice.
func New(table *phoneme.Table, v *voice.Voice) *Assigner {
	return &Assigner{Table: table, Voice: v}
}

// Assign computes durations and the clause pitch contour. Duration
// modifiers compose multiplicatively, so the same phoneme in the same
// context always gets the same duration regardless of evaluation order.
func (a *Assigner) Assign(list translate.List, ct translate.ClauseType, p Params) {
	if len(list) == 0 {
		return
	}
	if p.Rate <= 0 {
		p.Rate = 1
	}
	if p.PitchBase <= 0 {
		p.PitchBase = a.Voice.PitchBase
	}

	lastWord := -1
	for _, e := range list {
		if e.WordIndex > lastWord {
			lastWord = e.WordIndex
		}
	}

	for i := range list {
		a.duration(&list[i], lastWord, p)
	}
	a.contour(list, ct, p)
}

func (a *Assigner) duration(e *translate.Entry, lastWord int, p Params) {
	rate := p.Rate
	if e.WordRate > 0 {
		rate = e.WordRate
	}

	if e.Type == phoneme.Pause {
		e.Duration = a.Voice.Prosody.ClausePauseMs / rate
		return
	}

	class := phoneme.Short
	if def, ok := a.Table.Lookup(e.Phoneme); ok {
		class = def.Class
	}
	d := phoneme.BaseDuration(class)

	pr := a.Voice.Prosody
	switch e.Stress {
	case translate.StressPrimary:
		d *= pr.StressFactor
	case translate.StressSecondary:
		d *= pr.SecondaryStressFactor
	}
	if e.WordIndex >= 0 && e.WordIndex == lastWord {
		d *= pr.ClauseFinalFactor
	}
	if e.Function {
		d *= pr.FunctionWordFactor
	}
	e.Duration = d / rate
}

// contour interpolates pitch between the clause-initial, medial and final
// anchors. Interpolation is monotonic between anchors; primary-stress
// nuclei force a local peak on top of the contour.
func (a *Assigner) contour(list translate.List, ct translate.ClauseType, p Params) {
	anchors := a.anchors(ct)

	n := len(list)
	for i := range list {
		e := &list[i]
		if e.Type == phoneme.Pause {
			e.Pitch = 0
			continue
		}
		base := p.PitchBase
		if e.WordPitch > 0 {
			base = e.WordPitch
		}

		frac := 0.0
		if n > 1 {
			frac = float64(i) / float64(n-1)
		}
		var mul float64
		if frac <= 0.5 {
			mul = lerp(anchors[0], anchors[1], frac*2)
		} else {
			mul = lerp(anchors[1], anchors[2], (frac-0.5)*2)
		}

		pitch := base * mul
		if e.Stress == translate.StressPrimary {
			pitch *= a.Voice.Prosody.StressPitchFactor
		}
		e.Pitch = pitch
	}
}

func (a *Assigner) anchors(ct translate.ClauseType) [3]float64 {
	switch ct {
	case translate.Question:
		return a.Voice.Prosody.Question
	case translate.Exclamation:
		return a.Voice.Prosody.Exclamation
	default:
		return a.Voice.Prosody.Statement
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
