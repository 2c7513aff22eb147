package synth

import (
	"math"
	"testing"

	"github.com/ieee0824/speak-go/internal/dsp"
	"github.com/ieee0824/speak-go/phoneme"
	"github.com/ieee0824/speak-go/translate"
)

const testRate = 22050

func newSynth() *Synthesizer {
	return New(phoneme.Default(), testRate)
}

func timedEntry(p string, durMs, pitch float64) translate.Entry {
	tbl := phoneme.Default()
	tp := phoneme.Vowel
	if def, ok := tbl.Lookup(phoneme.Phoneme(p)); ok {
		tp = def.Type
	}
	return translate.Entry{
		Phoneme:  phoneme.Phoneme(p),
		Type:     tp,
		Duration: durMs,
		Pitch:    pitch,
	}
}

func TestRenderLength(t *testing.T) {
	s := newSynth()
	list := translate.List{
		timedEntry("ae", 100, 120),
		timedEntry("s", 80, 0),
	}
	pcm := s.Render(list)
	want := int(180.0 * testRate / 1000.0) // 3969
	if diff := len(pcm) - want; diff < -1 || diff > 1 {
		t.Errorf("len(pcm) = %d, want %d +-1", len(pcm), want)
	}
}

func TestResidualCarryBoundsDrift(t *testing.T) {
	s := newSynth()
	// 10.5 ms at 22050 Hz is 231.525 samples, never an integer; over a
	// long list the accumulated error must stay under one sample
	const n = 1000
	list := make(translate.List, n)
	for i := range list {
		list[i] = timedEntry("ae", 10.5, 120)
	}
	pcm := s.Render(list)
	want := int(float64(n) * 10.5 * testRate / 1000.0) // 231525
	if diff := len(pcm) - want; diff < -1 || diff > 1 {
		t.Errorf("len(pcm) = %d, want %d +-1", len(pcm), want)
	}
}

func TestStreamCarriesResidualAcrossClauses(t *testing.T) {
	s := newSynth()
	// one non-integral phoneme per clause: the residual must survive the
	// clause boundary, otherwise each clause loses up to a sample
	const n = 500
	st := s.Stream()
	var total int
	for i := 0; i < n; i++ {
		total += len(st.Render(translate.List{timedEntry("ae", 10.5, 120)}))
	}
	wantf := float64(n) * 10.5 * testRate / 1000.0
	want := int(wantf) // 115762
	if diff := total - want; diff < -1 || diff > 1 {
		t.Errorf("total samples = %d, want %d +-1", total, want)
	}
}

func TestVoicedOutputNonZero(t *testing.T) {
	s := newSynth()
	pcm := s.Render(translate.List{timedEntry("aa", 200, 120)})
	var peak int16
	for _, v := range pcm {
		if v > peak {
			peak = v
		}
		if -v > peak {
			peak = -v
		}
	}
	if peak == 0 {
		t.Fatal("voiced vowel rendered as pure silence")
	}
}

func TestUnvoicedOutputNonZero(t *testing.T) {
	s := newSynth()
	pcm := s.Render(translate.List{timedEntry("s", 200, 0)})
	var nonzero int
	for _, v := range pcm {
		if v != 0 {
			nonzero++
		}
	}
	if nonzero == 0 {
		t.Fatal("fricative rendered as pure silence")
	}
}

func TestPauseIsQuiet(t *testing.T) {
	s := newSynth()
	// a leading pause with no prior excitation must stay at zero
	pcm := s.Render(translate.List{timedEntry("pau", 100, 0)})
	for i, v := range pcm {
		if v != 0 {
			t.Fatalf("sample %d of leading pause = %d, want 0", i, v)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	s := newSynth()
	list := translate.List{
		timedEntry("hh", 60, 0),
		timedEntry("ax", 80, 115),
		timedEntry("l", 70, 118),
		timedEntry("ow", 140, 110),
	}
	a := s.Render(list)
	b := s.Render(list)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestTableGapSubstitution(t *testing.T) {
	s := newSynth()
	// unknown phoneme with a known type: must render via a same-type
	// substitute, not crash or go silent
	e := translate.Entry{Phoneme: "zz", Type: phoneme.Vowel, Duration: 100, Pitch: 120}
	pcm := s.Render(translate.List{e})
	if len(pcm) == 0 {
		t.Fatal("no samples for substituted phoneme")
	}
	var nonzero int
	for _, v := range pcm {
		if v != 0 {
			nonzero++
		}
	}
	if nonzero == 0 {
		t.Error("substituted phoneme rendered as pure silence")
	}
}

func TestVowelFirstFormantPeak(t *testing.T) {
	s := newSynth()
	pcm := s.Render(translate.List{timedEntry("aa", 300, 120)})

	// analyze a steady-state frame from the middle of the vowel
	const fftSize = 4096
	mid := len(pcm)/2 - fftSize/2
	frame := make([]float64, fftSize)
	for i := range frame {
		frame[i] = float64(pcm[mid+i])
	}

	got := dsp.DominantFreq(frame, fftSize, testRate, 300, 1200)
	def, _ := phoneme.Default().Lookup("aa")
	f1 := def.Formants[0].Freq
	if math.Abs(got-f1) > 200 {
		t.Errorf("dominant frequency = %v Hz, want near first formant %v Hz", got, f1)
	}
}

func TestClip(t *testing.T) {
	tests := []struct {
		in   float64
		want int16
	}{
		{0, 0},
		{100.7, 100},
		{-100.7, -100},
		{40000, 32767},
		{-40000, -32767},
	}
	for _, tt := range tests {
		if got := clip(tt.in); got != tt.want {
			t.Errorf("clip(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestResonatorDecays(t *testing.T) {
	var r Resonator
	minusPiT := -3.141592653589793 / float64(testRate)
	r.SetABC(500, 60, minusPiT, -2*minusPiT)
	r.Step(1) // impulse
	var peak float64
	for i := 0; i < testRate; i++ {
		v := r.Step(0)
		if v > peak {
			peak = v
		}
	}
	last := r.Step(0)
	if last > peak/100 && last > 1e-6 {
		t.Errorf("resonator output %v after 1s, peak %v; expected decay", last, peak)
	}
}
