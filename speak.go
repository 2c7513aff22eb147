// Package speak is a rule-and-dictionary text-to-speech engine: text is
// translated into a stress-annotated phoneme list, timed and pitched by
// the prosody assigner, and rendered to PCM by a formant synthesizer.
package speak

import (
	"context"

	"github.com/pkg/errors"

	"github.com/ieee0824/speak-go/lexicon"
	"github.com/ieee0824/speak-go/phoneme"
	"github.com/ieee0824/speak-go/prosody"
	"github.com/ieee0824/speak-go/synth"
	"github.com/ieee0824/speak-go/translate"
	"github.com/ieee0824/speak-go/voice"
)

// Engine is the top-level synthesis engine. After New it is immutable:
// the phoneme table, dictionary chain and voice are shared read-only
// state, so one Engine serves any number of concurrent utterances.
type Engine struct {
	table    *phoneme.Table
	dicts    []*lexicon.Dictionary
	voice    *voice.Voice
	renderer RendererFactory
	progress func(clause int)
}

// Renderer converts a timed phoneme list into PCM samples. It is called
// once per clause of an utterance and may keep state across calls within
// that utterance.
type Renderer interface {
	Render(list translate.List) ([]int16, error)
}

// RendererFactory builds a fresh Renderer for one utterance at the given
// sample rate.
type RendererFactory func(sampleRate int) Renderer

// Option configures an Engine.
type Option func(*Engine)

// WithVoice sets the voice definition.
func WithVoice(v *voice.Voice) Option {
	return func(e *Engine) { e.voice = v }
}

// WithDictionaries sets the dictionary fallback chain; earlier
// dictionaries win.
func WithDictionaries(dicts ...*lexicon.Dictionary) Option {
	return func(e *Engine) { e.dicts = dicts }
}

// WithRenderer replaces the built-in formant synthesizer, e.g. with a
// bridge to an external articulatory engine. The external process
// lifecycle stays with the caller; the engine only hands over timed
// phoneme lists and collects PCM or an error.
func WithRenderer(factory RendererFactory) Option {
	return func(e *Engine) { e.renderer = factory }
}

// WithProgress installs a callback invoked after each clause is
// processed.
func WithProgress(fn func(clause int)) Option {
	return func(e *Engine) { e.progress = fn }
}

// New creates an Engine. Without options it uses the built-in English
// voice and seed dictionary.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		table: phoneme.Default(),
		voice: voice.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if len(e.dicts) == 0 {
		e.dicts = []*lexicon.Dictionary{lexicon.Builtin()}
	}
	if err := e.voice.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid voice")
	}
	return e, nil
}

// NewFromFiles creates an Engine from a voice file and compiled
// dictionary paths.
func NewFromFiles(voicePath string, dictPaths []string, opts ...Option) (*Engine, error) {
	var loaded []Option
	if voicePath != "" {
		v, err := voice.LoadFile(voicePath)
		if err != nil {
			return nil, errors.Wrapf(err, "load voice %s", voicePath)
		}
		loaded = append(loaded, WithVoice(v))
	}
	if len(dictPaths) > 0 {
		var dicts []*lexicon.Dictionary
		for _, p := range dictPaths {
			d, err := lexicon.LoadFile(p)
			if err != nil {
				return nil, errors.Wrapf(err, "load dictionary %s", p)
			}
			dicts = append(dicts, d)
		}
		loaded = append(loaded, WithDictionaries(dicts...))
	}
	return New(append(loaded, opts...)...)
}

// Config is the per-utterance configuration. Zero fields fall back to the
// voice defaults; the resolved snapshot is captured once at pipeline
// start so concurrent utterances never observe each other's settings.
type Config struct {
	Rate      float64 // speaking rate multiplier
	PitchBase float64 // baseline F0 in Hz
}

// Result is the output of one pipeline run. The timed phoneme list is the
// single intermediate artifact: audio rendering and phoneme export both
// consume it.
type Result struct {
	Samples    []int16
	SampleRate int
	List       translate.List
}

// snapshot is the immutable resolved per-utterance state.
type snapshot struct {
	rate       float64
	pitchBase  float64
	sampleRate int
}

func (e *Engine) snapshot(cfg Config) (snapshot, error) {
	s := snapshot{
		rate:       e.voice.Rate,
		pitchBase:  e.voice.PitchBase,
		sampleRate: e.voice.SampleRate,
	}
	if cfg.Rate != 0 {
		if cfg.Rate < 0 {
			return s, errors.Errorf("negative rate %v", cfg.Rate)
		}
		s.rate = cfg.Rate
	}
	if cfg.PitchBase != 0 {
		if cfg.PitchBase < 0 {
			return s, errors.Errorf("negative pitch baseline %v", cfg.PitchBase)
		}
		s.pitchBase = cfg.PitchBase
	}
	return s, nil
}

// Synthesize renders plain text with the voice defaults.
func (e *Engine) Synthesize(ctx context.Context, text string) (*Result, error) {
	return e.SynthesizeWithConfig(ctx, text, Config{})
}

// SynthesizeWithConfig renders plain text with per-utterance settings.
func (e *Engine) SynthesizeWithConfig(ctx context.Context, text string, cfg Config) (*Result, error) {
	return e.SynthesizeClauses(ctx, e.Segment(text), cfg)
}

// SynthesizeClauses runs the full pipeline over pre-segmented clauses.
// Cancellation is checked at clause boundaries; on cancellation the
// partial result produced so far is returned along with the context
// error.
func (e *Engine) SynthesizeClauses(ctx context.Context, clauses []translate.Clause, cfg Config) (*Result, error) {
	snap, err := e.snapshot(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "utterance configuration")
	}

	tr := translate.New(e.table, e.voice, e.dicts...)
	pa := prosody.New(e.table, e.voice)
	rend := e.newRenderer(snap.sampleRate)
	params := prosody.Params{Rate: snap.rate, PitchBase: snap.pitchBase}

	res := &Result{SampleRate: snap.sampleRate}
	for i, c := range clauses {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		list := tr.Translate(c)
		if len(list) == 0 {
			continue
		}
		pa.Assign(list, c.Type, params)
		chunk, err := rend.Render(list)
		if err != nil {
			return res, errors.Wrapf(err, "render clause %d", i)
		}
		res.Samples = append(res.Samples, chunk...)
		res.List = append(res.List, list...)
		if e.progress != nil {
			e.progress(i)
		}
	}
	return res, nil
}

func (e *Engine) newRenderer(sampleRate int) Renderer {
	if e.renderer != nil {
		return e.renderer(sampleRate)
	}
	return formantRenderer{stream: synth.New(e.table, sampleRate).Stream()}
}

// formantRenderer adapts the built-in synthesizer, which never fails, to
// the Renderer interface.
type formantRenderer struct {
	stream *synth.Stream
}

func (f formantRenderer) Render(list translate.List) ([]int16, error) {
	return f.stream.Render(list), nil
}

// Phonemes runs translation and prosody only and returns the timed list
// the synthesizer would have consumed.
func (e *Engine) Phonemes(ctx context.Context, text string, cfg Config) (translate.List, error) {
	snap, err := e.snapshot(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "utterance configuration")
	}

	tr := translate.New(e.table, e.voice, e.dicts...)
	pa := prosody.New(e.table, e.voice)
	params := prosody.Params{Rate: snap.rate, PitchBase: snap.pitchBase}

	var out translate.List
	for i, c := range e.Segment(text) {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		list := tr.Translate(c)
		if len(list) == 0 {
			continue
		}
		pa.Assign(list, c.Type, params)
		out = append(out, list...)
		if e.progress != nil {
			e.progress(i)
		}
	}
	return out, nil
}
