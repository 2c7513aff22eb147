package phoneme

// Phoneme identifies a speech sound. Identifiers follow a compact
// ARPAbet-like convention ("ae", "ch", "ng", ...).
type Phoneme string

// Type is the manner-of-articulation class of a phoneme.
type Type int

const (
	Vowel Type = iota
	Stop
	Fricative
	Nasal
	Liquid
	Trill
	Approximant
	Affricate
	Flap
	Pause
)

func (t Type) String() string {
	switch t {
	case Vowel:
		return "vowel"
	case Stop:
		return "stop"
	case Fricative:
		return "fricative"
	case Nasal:
		return "nasal"
	case Liquid:
		return "liquid"
	case Trill:
		return "trill"
	case Approximant:
		return "approximant"
	case Affricate:
		return "affricate"
	case Flap:
		return "flap"
	case Pause:
		return "pause"
	default:
		return "unknown"
	}
}

// Voicing describes the excitation source of a phoneme.
type Voicing int

const (
	Unvoiced Voicing = iota
	Mixed            // voiced and noise components blended
	Voiced
)

// Class is the base duration class of a phoneme.
type Class int

const (
	Short Class = iota
	Long
	Elongated
)

// Base durations per class in milliseconds, before any prosodic modifier.
// Ordering Elongated > Long > Short is relied on throughout.
const (
	durShortMs     = 60.0
	durLongMs      = 110.0
	durElongatedMs = 160.0
)

// BaseDuration returns the unmodified duration in ms for a class.
func BaseDuration(c Class) float64 {
	switch c {
	case Elongated:
		return durElongatedMs
	case Long:
		return durLongMs
	default:
		return durShortMs
	}
}

// NumFormants is the number of formant slots per definition. Slots with
// zero center frequency are unused.
const NumFormants = 5

// Formant is one vocal tract resonance target.
type Formant struct {
	Freq float64 // center frequency in Hz, 0 = slot unused
	Bw   float64 // bandwidth in Hz
	Amp  float64 // linear amplitude 0..1
}

// Definition is the static acoustic description of one phoneme.
// Definitions are immutable after the table is built.
type Definition struct {
	Phoneme  Phoneme
	Type     Type
	Voicing  Voicing
	Class    Class
	Formants [NumFormants]Formant
}

// HasFormants reports whether any formant slot is populated.
func (d *Definition) HasFormants() bool {
	for _, f := range d.Formants {
		if f.Freq > 0 {
			return true
		}
	}
	return false
}
