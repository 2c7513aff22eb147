// Package voice holds per-voice and per-language configuration: prosody
// constants, tokenization classes and synthesis parameters. A Voice is
// loaded once and treated as immutable; per-utterance settings are
// snapshotted from it at pipeline start.
package voice

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigError marks a configuration problem that prevents a pipeline
// from starting. It is fatal for the utterance only; shared state is
// untouched.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("voice config: %s: %s", e.Field, e.Reason)
}

// Voice is one synthesis voice.
type Voice struct {
	Name       string  `yaml:"name"`
	Language   string  `yaml:"language"`
	SampleRate int     `yaml:"sample_rate"`
	PitchBase  float64 `yaml:"pitch_base"` // baseline F0 in Hz
	Rate       float64 `yaml:"rate"`       // speaking rate, 1.0 = normal

	// StressRule selects the default stress position for words without
	// dictionary annotation: "penultimate", "first" or "last".
	StressRule string `yaml:"stress_rule"`

	Tokens  Tokens  `yaml:"tokens"`
	Prosody Prosody `yaml:"prosody"`
}

// Tokens configures language-specific word boundary handling.
type Tokens struct {
	// WordBreak lists characters that break words in addition to
	// whitespace.
	WordBreak string `yaml:"word_break"`
	// Compound lists characters that split a word into independently
	// translated sub-parts.
	Compound string `yaml:"compound"`
}

// Prosody holds the duration and pitch shaping constants. Duration
// modifiers compose multiplicatively, so their relative order never
// matters.
type Prosody struct {
	StressFactor          float64 `yaml:"stress_factor"`           // primary stress lengthening, > 1
	SecondaryStressFactor float64 `yaml:"secondary_stress_factor"` // > 1, < StressFactor
	ClauseFinalFactor     float64 `yaml:"clause_final_factor"`     // clause-final lengthening, > 1
	FunctionWordFactor    float64 `yaml:"function_word_factor"`    // function word shortening, < 1
	StressPitchFactor     float64 `yaml:"stress_pitch_factor"`     // local pitch peak at stressed nuclei, > 1
	ClausePauseMs         float64 `yaml:"clause_pause_ms"`

	// Pitch anchors as multiples of the pitch baseline, in
	// initial/medial/final order per clause type.
	Statement   [3]float64 `yaml:"statement"`
	Question    [3]float64 `yaml:"question"`
	Exclamation [3]float64 `yaml:"exclamation"`
}

var supportedLanguages = map[string]bool{
	"en": true,
}

// Default returns the built-in English voice.
func Default() *Voice {
	return &Voice{
		Name:       "default",
		Language:   "en",
		SampleRate: 22050,
		PitchBase:  120,
		Rate:       1.0,
		StressRule: "penultimate",
		Tokens: Tokens{
			WordBreak: ",;:.!?\"()[]",
			Compound:  "-'",
		},
		Prosody: Prosody{
			StressFactor:          1.35,
			SecondaryStressFactor: 1.15,
			ClauseFinalFactor:     1.4,
			FunctionWordFactor:    0.8,
			StressPitchFactor:     1.12,
			ClausePauseMs:         220,
			Statement:             [3]float64{1.10, 1.00, 0.75},
			Question:              [3]float64{0.90, 1.00, 1.35},
			Exclamation:           [3]float64{1.25, 1.00, 0.80},
		},
	}
}

// Load reads a voice definition in YAML. Missing fields keep their
// defaults.
func Load(r io.Reader) (*Voice, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	v := Default()
	if err := yaml.Unmarshal(data, v); err != nil {
		return nil, fmt.Errorf("parse voice: %w", err)
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Voice, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Validate checks the voice for values that would prevent a pipeline from
// starting.
func (v *Voice) Validate() error {
	if !supportedLanguages[v.Language] {
		return &ConfigError{Field: "language", Reason: fmt.Sprintf("unsupported language %q", v.Language)}
	}
	if v.SampleRate < 8000 {
		return &ConfigError{Field: "sample_rate", Reason: fmt.Sprintf("sample rate %d below 8000", v.SampleRate)}
	}
	if v.PitchBase <= 0 {
		return &ConfigError{Field: "pitch_base", Reason: "pitch baseline must be positive"}
	}
	if v.Rate <= 0 {
		return &ConfigError{Field: "rate", Reason: "rate must be positive"}
	}
	switch v.StressRule {
	case "penultimate", "first", "last":
	default:
		return &ConfigError{Field: "stress_rule", Reason: fmt.Sprintf("unknown stress rule %q", v.StressRule)}
	}
	pr := v.Prosody
	if pr.StressFactor <= 1 || pr.SecondaryStressFactor <= 1 || pr.ClauseFinalFactor <= 1 {
		return &ConfigError{Field: "prosody", Reason: "lengthening factors must exceed 1"}
	}
	if pr.FunctionWordFactor <= 0 || pr.FunctionWordFactor >= 1 {
		return &ConfigError{Field: "prosody", Reason: "function word factor must be in (0, 1)"}
	}
	return nil
}
