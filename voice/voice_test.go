package voice

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	const doc = `
name: custom
pitch_base: 200
prosody:
  clause_pause_ms: 300
`
	v, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if v.Name != "custom" {
		t.Errorf("Name = %q, want %q", v.Name, "custom")
	}
	if v.PitchBase != 200 {
		t.Errorf("PitchBase = %v, want 200", v.PitchBase)
	}
	if v.Prosody.ClausePauseMs != 300 {
		t.Errorf("ClausePauseMs = %v, want 300", v.Prosody.ClausePauseMs)
	}
	// untouched fields keep their defaults
	if v.SampleRate != 22050 {
		t.Errorf("SampleRate = %d, want default 22050", v.SampleRate)
	}
	if v.Prosody.StressFactor != 1.35 {
		t.Errorf("StressFactor = %v, want default 1.35", v.Prosody.StressFactor)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"unsupported language", "language: xx", "language"},
		{"low sample rate", "sample_rate: 4000", "sample_rate"},
		{"negative pitch", "pitch_base: -1", "pitch_base"},
		{"zero rate", "rate: 0", "rate"},
		{"unknown stress rule", "stress_rule: antepenultimate", "stress_rule"},
		{"stress factor too small", "prosody: {stress_factor: 0.9}", "prosody"},
		{"function factor too big", "prosody: {function_word_factor: 1.5}", "prosody"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("Load() error = %v, want *ConfigError", err)
			}
			if cerr.Field != tt.field {
				t.Errorf("Field = %q, want %q", cerr.Field, tt.field)
			}
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	if _, err := Load(strings.NewReader("name: [unclosed")); err == nil {
		t.Error("Load() accepted malformed yaml")
	}
}
