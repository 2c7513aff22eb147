// dictcompile builds a compiled dictionary from human-authored source
// text. The runtime engine only ever loads the compiled form.
//
// Source format, tab-separated, # starts a comment:
//
//	word<TAB>phoneme list<TAB>[stress=N] [func] [pos=X]
//	$group NAME pre|suf|in
//	pattern<TAB>phoneme list<TAB>[pre=CTX] [post=CTX]
//
// Lines before the first $group header are dictionary entries; lines
// after a header belong to that rule group. Prefix-group patterns are
// written from the stem boundary outward.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ieee0824/speak-go/lexicon"
	"github.com/ieee0824/speak-go/phoneme"
)

func main() {
	inPath := flag.String("in", "", "path to dictionary source text")
	outPath := flag.String("out", "", "path for the compiled dictionary")
	flag.Parse()

	if *inPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: dictcompile -in SOURCE -out COMPILED")
		flag.PrintDefaults()
		os.Exit(1)
	}

	in, err := os.Open(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer in.Close()

	d, err := compile(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := d.Save(out); err != nil {
		out.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "compiled %d entries, %d rule groups\n", d.Len(), len(d.Groups()))
}

func compile(r io.Reader) (*lexicon.Dictionary, error) {
	d := lexicon.NewDictionary()
	var group *lexicon.RuleGroup

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), " \t")
		if line == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}

		if strings.HasPrefix(line, "$group") {
			g, err := parseGroupHeader(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			d.AddGroup(g)
			group = g
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			return nil, fmt.Errorf("line %d: expected at least 2 tab-separated fields, got %d", lineNum, len(parts))
		}

		if group == nil {
			e, err := parseEntry(parts)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			d.Add(e)
		} else {
			rule, err := parseRule(parts)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			group.Rules = append(group.Rules, rule)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

func parseGroupHeader(line string) (*lexicon.RuleGroup, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return nil, fmt.Errorf("group header wants '$group NAME pre|suf|in'")
	}
	var span lexicon.Span
	switch fields[2] {
	case "pre":
		span = lexicon.Prefix
	case "suf":
		span = lexicon.Suffix
	case "in":
		span = lexicon.Infix
	default:
		return nil, fmt.Errorf("unknown span %q", fields[2])
	}
	return &lexicon.RuleGroup{Name: fields[1], Span: span}, nil
}

func parseEntry(parts []string) (lexicon.Entry, error) {
	e := lexicon.Entry{
		Word:        strings.TrimSpace(parts[0]),
		Phonemes:    toPhonemes(parts[1]),
		StressIndex: -1,
	}
	if len(parts) >= 3 {
		for _, flag := range strings.Fields(parts[2]) {
			switch {
			case flag == "func":
				e.Function = true
			case strings.HasPrefix(flag, "stress="):
				n, err := strconv.Atoi(strings.TrimPrefix(flag, "stress="))
				if err != nil || n < 0 || n >= len(e.Phonemes) {
					return e, fmt.Errorf("bad stress index %q for %q", flag, e.Word)
				}
				e.StressIndex = n
			case strings.HasPrefix(flag, "pos="):
				e.POS = strings.TrimPrefix(flag, "pos=")
			default:
				return e, fmt.Errorf("unknown flag %q", flag)
			}
		}
	}
	return e, nil
}

func parseRule(parts []string) (lexicon.Rule, error) {
	r := lexicon.Rule{
		Pattern:  strings.TrimSpace(parts[0]),
		Phonemes: toPhonemes(parts[1]),
	}
	if len(parts) >= 3 {
		for _, flag := range strings.Fields(parts[2]) {
			switch {
			case strings.HasPrefix(flag, "pre="):
				r.Pre = strings.TrimPrefix(flag, "pre=")
			case strings.HasPrefix(flag, "post="):
				r.Post = strings.TrimPrefix(flag, "post=")
			default:
				return r, fmt.Errorf("unknown flag %q", flag)
			}
		}
	}
	return r, nil
}

func toPhonemes(field string) []phoneme.Phoneme {
	strs := strings.Fields(field)
	ps := make([]phoneme.Phoneme, len(strs))
	for i, s := range strs {
		ps[i] = phoneme.Phoneme(s)
	}
	return ps
}
