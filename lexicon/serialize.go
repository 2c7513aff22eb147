package lexicon

import (
	"encoding/gob"
	"io"
	"os"

	"github.com/ieee0824/speak-go/phoneme"
)

// serializable types for gob encoding
type serializedDict struct {
	Entries []serializedEntry
	Groups  []serializedGroup
}

type serializedEntry struct {
	Word        string
	Phonemes    []string
	StressIndex int
	Function    bool
	POS         string
}

type serializedGroup struct {
	Name  string
	Span  int
	Rules []serializedRule
}

type serializedRule struct {
	Pattern  string
	Pre      string
	Post     string
	Phonemes []string
}

// Save writes the compiled dictionary to a writer using gob encoding.
func (d *Dictionary) Save(w io.Writer) error {
	sd := serializedDict{}
	for _, e := range d.entries {
		sd.Entries = append(sd.Entries, serializedEntry{
			Word:        e.Word,
			Phonemes:    phonemeStrings(e.Phonemes),
			StressIndex: e.StressIndex,
			Function:    e.Function,
			POS:         e.POS,
		})
	}
	for _, g := range d.groups {
		sg := serializedGroup{Name: g.Name, Span: int(g.Span)}
		for _, r := range g.Rules {
			sg.Rules = append(sg.Rules, serializedRule{
				Pattern:  r.Pattern,
				Pre:      r.Pre,
				Post:     r.Post,
				Phonemes: phonemeStrings(r.Phonemes),
			})
		}
		sd.Groups = append(sd.Groups, sg)
	}
	return gob.NewEncoder(w).Encode(sd)
}

// Load reads a compiled dictionary from a reader.
func Load(r io.Reader) (*Dictionary, error) {
	var sd serializedDict
	if err := gob.NewDecoder(r).Decode(&sd); err != nil {
		return nil, err
	}

	d := NewDictionary()
	for _, se := range sd.Entries {
		d.Add(Entry{
			Word:        se.Word,
			Phonemes:    toPhonemes(se.Phonemes),
			StressIndex: se.StressIndex,
			Function:    se.Function,
			POS:         se.POS,
		})
	}
	for _, sg := range sd.Groups {
		g := &RuleGroup{Name: sg.Name, Span: Span(sg.Span)}
		for _, sr := range sg.Rules {
			g.Rules = append(g.Rules, Rule{
				Pattern:  sr.Pattern,
				Pre:      sr.Pre,
				Post:     sr.Post,
				Phonemes: toPhonemes(sr.Phonemes),
			})
		}
		d.AddGroup(g)
	}
	return d, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

func phonemeStrings(ps []phoneme.Phoneme) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = string(p)
	}
	return out
}

func toPhonemes(ss []string) []phoneme.Phoneme {
	out := make([]phoneme.Phoneme, len(ss))
	for i, s := range ss {
		out[i] = phoneme.Phoneme(s)
	}
	return out
}
