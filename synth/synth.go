// Package synth renders timed phoneme lists into PCM audio with a
// parallel formant bank excited by a glottal pulse train and filtered
// noise, after the Klatt parametric synthesizer.
package synth

import (
	"math"
	"math/rand"

	"github.com/rs/zerolog/log"

	"github.com/ieee0824/speak-go/phoneme"
	"github.com/ieee0824/speak-go/translate"
)

const (
	outputGain = 6000.0
	fricGain   = 0.25
	noiseLP    = 0.75 // soft low-pass pole for the noise source
)

// Synthesizer holds the shared read-only synthesis configuration. It is
// safe for concurrent use; all mutable state lives in the per-utterance
// renderer created by Render.
type Synthesizer struct {
	SampleRate int
	table      *phoneme.Table
}

// New creates a synthesizer over the shared phoneme table.
func New(table *phoneme.Table, sampleRate int) *Synthesizer {
	return &Synthesizer{SampleRate: sampleRate, table: table}
}

// Render generates PCM samples for a timed phoneme list. It never fails
// on valid timed input: table gaps fall back to the nearest phoneme of
// the same type and are logged as data-quality events.
func (s *Synthesizer) Render(list translate.List) []int16 {
	return s.Stream().Render(list)
}

// Stream is a stateful renderer for one utterance. Successive Render
// calls (one per clause) share filter memories and the fractional-sample
// residual, so timing drift stays below one sample across the whole
// utterance, not just within a clause.
type Stream struct {
	r *renderer
}

// Stream starts a fresh utterance renderer.
func (s *Synthesizer) Stream() *Stream {
	return &Stream{r: s.newRenderer()}
}

// Render generates the samples for one timed list and returns only the
// newly produced chunk.
func (st *Stream) Render(list translate.List) []int16 {
	st.r.pcm = nil
	for i := range list {
		st.r.phoneme(&list[i])
	}
	return st.r.pcm
}

// renderer is the per-utterance synthesis state machine. Filter memories
// and formant parameters persist across phonemes so trajectories stay
// continuous at boundaries.
type renderer struct {
	s        *Synthesizer
	minusPiT float64
	twoPiT   float64
	rng      *rand.Rand

	bank [phoneme.NumFormants]Resonator
	rgl  Resonator // critically damped glottal low-pass
	rout Resonator // output low-pass

	cur      [phoneme.NumFormants]phoneme.Formant // current formant params
	started  bool
	curPitch float64

	nper int // sample position within the voicing period
	t0   int // fundamental period in samples

	lastNoise float64
	residual  float64 // fractional-sample carry between phonemes
	pcm       []int16
}

func (s *Synthesizer) newRenderer() *renderer {
	minusPiT := -math.Pi / float64(s.SampleRate)
	r := &renderer{
		s:        s,
		minusPiT: minusPiT,
		twoPiT:   -2 * minusPiT,
		rng:      rand.New(rand.NewSource(1)),
	}
	r.rout.SetABC(0, float64(s.SampleRate)/2, r.minusPiT, r.twoPiT)
	return r
}

// phoneme renders one list entry. The sample count is duration times
// sample rate with the rounding residual carried into the next phoneme,
// so cumulative timing error stays below one sample for any list length.
func (r *renderer) phoneme(e *translate.Entry) {
	acc := e.Duration*float64(r.s.SampleRate)/1000.0 + r.residual
	n := int(acc)
	r.residual = acc - float64(n)
	if n <= 0 {
		return
	}

	def := r.resolve(e)
	if def == nil {
		// nothing renderable at all: emit shaped silence
		r.silence(n)
		return
	}

	target := def.Formants
	if !r.started {
		r.cur = target
		r.started = true
	}
	start := r.cur
	startPitch := r.curPitch
	if startPitch <= 0 {
		startPitch = e.Pitch
	}
	targetPitch := e.Pitch
	if targetPitch <= 0 {
		targetPitch = startPitch
	}

	av, af := excitationWeights(def.Voicing)
	if def.Type == phoneme.Pause {
		av, af = 0, 0
	}

	for i := 0; i < n; i++ {
		frac := float64(i+1) / float64(n)
		r.interpolate(start, target, frac)
		pitch := startPitch + (targetPitch-startPitch)*frac
		out := r.sample(av, af, pitch)
		r.pcm = append(r.pcm, clip(out*outputGain))
	}
	r.curPitch = targetPitch
}

// resolve finds the acoustic definition for an entry, substituting the
// nearest defined phoneme of the same type on a table gap.
func (r *renderer) resolve(e *translate.Entry) *phoneme.Definition {
	def, ok := r.s.table.Lookup(e.Phoneme)
	if ok && (def.HasFormants() || def.Type == phoneme.Pause) {
		return def
	}
	sub, found := r.s.table.NearestByType(e.Type)
	if !found {
		log.Warn().Str("phoneme", string(e.Phoneme)).Str("type", e.Type.String()).
			Msg("phoneme table gap with no same-type substitute")
		return nil
	}
	log.Warn().Str("phoneme", string(e.Phoneme)).Str("substitute", string(sub.Phoneme)).
		Msg("phoneme table gap, substituting nearest of same type")
	return sub
}

// interpolate moves the live formant parameters toward the target and
// refreshes the bank coefficients. Unused target slots keep their current
// frequency and fade their amplitude so boundaries never jump.
func (r *renderer) interpolate(start, target [phoneme.NumFormants]phoneme.Formant, frac float64) {
	for k := 0; k < phoneme.NumFormants; k++ {
		tf := target[k]
		sf := start[k]
		if tf.Freq <= 0 {
			tf.Freq = sf.Freq
			tf.Bw = sf.Bw
			tf.Amp = 0
		}
		if sf.Freq <= 0 {
			sf.Freq = tf.Freq
			sf.Bw = tf.Bw
			sf.Amp = 0
		}
		if tf.Freq <= 0 {
			continue // slot unused on both sides
		}
		r.cur[k] = phoneme.Formant{
			Freq: sf.Freq + (tf.Freq-sf.Freq)*frac,
			Bw:   sf.Bw + (tf.Bw-sf.Bw)*frac,
			Amp:  sf.Amp + (tf.Amp-sf.Amp)*frac,
		}
		r.bank[k].SetABCG(r.cur[k].Freq, r.cur[k].Bw, r.minusPiT, r.twoPiT, r.cur[k].Amp)
	}
}

// sample produces one output sample from the excitation mix through the
// parallel formant bank.
func (r *renderer) sample(av, af, pitch float64) float64 {
	// low-passed noise for frication and aspiration
	nrand := r.rng.Float64()*2 - 1
	noise := nrand + noiseLP*r.lastNoise
	r.lastNoise = noise
	frics := af * fricGain * noise

	// glottal pulse train, reset pitch-synchronously
	var voice float64
	if av > 0 && pitch > 0 {
		if r.nper >= r.t0 {
			r.nper = 0
			r.t0 = int(float64(r.s.SampleRate) / pitch)
			if r.t0 < 2 {
				r.t0 = 2
			}
			// critically damped low pass proportional to the open phase
			nopen := r.t0 / 3
			if nopen < 1 {
				nopen = 1
			}
			r.rgl.SetABC(0, float64(r.s.SampleRate)/float64(nopen), r.minusPiT, r.twoPiT)
		}
		var pulse float64
		switch r.nper {
		case 0:
			pulse = 1
		case 1:
			pulse = -1
		}
		voice = r.rgl.Step(pulse)
		r.nper++
	}

	source := av*voice + frics

	// parallel vocal tract: branch outputs added with alternating sign
	var out float64
	for k := phoneme.NumFormants - 1; k >= 0; k-- {
		if r.cur[k].Freq <= 0 {
			continue
		}
		out = r.bank[k].Step(source) - out
	}
	return r.rout.Step(out)
}

// silence emits n zero-excitation samples, letting the filters ring down.
func (r *renderer) silence(n int) {
	for i := 0; i < n; i++ {
		out := r.sample(0, 0, 0)
		r.pcm = append(r.pcm, clip(out*outputGain))
	}
}

func excitationWeights(v phoneme.Voicing) (av, af float64) {
	switch v {
	case phoneme.Voiced:
		return 1, 0
	case phoneme.Mixed:
		return 0.5, 0.5
	default:
		return 0, 1
	}
}

// clip bounds a sample to the 16-bit range.
func clip(s float64) int16 {
	switch {
	case s < -32767:
		return -32767
	case s > 32767:
		return 32767
	}
	return int16(s)
}
