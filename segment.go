package speak

import (
	"strings"
	"unicode"

	"github.com/ieee0824/speak-go/translate"
)

// Segment splits plain text into clauses. Sentence terminators set the
// clause type; commas, semicolons and colons break clauses without
// changing it. Callers with pre-segmented input (e.g. an SSML reducer)
// use SynthesizeClauses directly.
func (e *Engine) Segment(text string) []translate.Clause {
	var clauses []translate.Clause
	var tokens []translate.Token
	var word strings.Builder

	endWord := func() {
		if word.Len() > 0 {
			tokens = append(tokens, translate.Token{Text: word.String()})
			word.Reset()
		}
	}
	endClause := func(t translate.ClauseType) {
		endWord()
		if len(tokens) > 0 {
			clauses = append(clauses, translate.Clause{Tokens: tokens, Type: t})
			tokens = nil
		}
	}

	for _, r := range text {
		switch {
		case r == '?':
			endClause(translate.Question)
		case r == '!':
			endClause(translate.Exclamation)
		case r == '.':
			endClause(translate.Statement)
		case r == ',' || r == ';' || r == ':':
			endClause(translate.Statement)
		case unicode.IsSpace(r):
			endWord()
		case strings.ContainsRune(e.voice.Tokens.WordBreak, r):
			endWord()
		default:
			word.WriteRune(r)
		}
	}
	endClause(translate.Statement)
	return clauses
}
