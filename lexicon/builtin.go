package lexicon

// builtinEntries is a compact English seed lexicon. Real deployments load
// a compiled dictionary built by cmd/dictcompile; the seed keeps the
// engine usable out of the box.
var builtinEntries = []Entry{
	// function words (never stressed)
	{Word: "the", Phonemes: p("dh", "ax"), StressIndex: -1, Function: true},
	{Word: "a", Phonemes: p("ax"), StressIndex: -1, Function: true},
	{Word: "an", Phonemes: p("ae", "n"), StressIndex: -1, Function: true},
	{Word: "of", Phonemes: p("ah", "v"), StressIndex: -1, Function: true},
	{Word: "and", Phonemes: p("ae", "n", "d"), StressIndex: -1, Function: true},
	{Word: "to", Phonemes: p("t", "uw"), StressIndex: -1, Function: true},
	{Word: "in", Phonemes: p("ih", "n"), StressIndex: -1, Function: true},
	{Word: "is", Phonemes: p("ih", "z"), StressIndex: -1, Function: true},
	{Word: "it", Phonemes: p("ih", "t"), StressIndex: -1, Function: true},
	{Word: "that", Phonemes: p("dh", "ae", "t"), StressIndex: -1, Function: true},
	{Word: "for", Phonemes: p("f", "ao", "r"), StressIndex: -1, Function: true},
	{Word: "on", Phonemes: p("aa", "n"), StressIndex: -1, Function: true},
	{Word: "with", Phonemes: p("w", "ih", "dh"), StressIndex: -1, Function: true},
	{Word: "as", Phonemes: p("ae", "z"), StressIndex: -1, Function: true},
	{Word: "at", Phonemes: p("ae", "t"), StressIndex: -1, Function: true},
	{Word: "this", Phonemes: p("dh", "ih", "s"), StressIndex: -1, Function: true},
	{Word: "but", Phonemes: p("b", "ah", "t"), StressIndex: -1, Function: true},
	{Word: "by", Phonemes: p("b", "ay"), StressIndex: -1, Function: true},
	{Word: "from", Phonemes: p("f", "r", "ah", "m"), StressIndex: -1, Function: true},
	{Word: "or", Phonemes: p("ao", "r"), StressIndex: -1, Function: true},
	{Word: "not", Phonemes: p("n", "aa", "t"), StressIndex: -1, Function: true},
	{Word: "are", Phonemes: p("aa", "r"), StressIndex: -1, Function: true},
	{Word: "was", Phonemes: p("w", "aa", "z"), StressIndex: -1, Function: true},
	{Word: "be", Phonemes: p("b", "iy"), StressIndex: -1, Function: true},
	{Word: "you", Phonemes: p("y", "uw"), StressIndex: -1, Function: true},
	{Word: "he", Phonemes: p("hh", "iy"), StressIndex: -1, Function: true},
	{Word: "she", Phonemes: p("sh", "iy"), StressIndex: -1, Function: true},
	{Word: "we", Phonemes: p("w", "iy"), StressIndex: -1, Function: true},
	{Word: "they", Phonemes: p("dh", "ey"), StressIndex: -1, Function: true},

	// content words
	{Word: "cat", Phonemes: p("k", "ae", "t"), StressIndex: 1},
	{Word: "dog", Phonemes: p("d", "ao", "g"), StressIndex: 1},
	{Word: "hello", Phonemes: p("hh", "ax", "l", "ow"), StressIndex: 3},
	{Word: "world", Phonemes: p("w", "er", "l", "d"), StressIndex: 1},
	{Word: "speech", Phonemes: p("s", "p", "iy", "ch"), StressIndex: 2},
	{Word: "sound", Phonemes: p("s", "aw", "n", "d"), StressIndex: 1},
	{Word: "voice", Phonemes: p("v", "oy", "s"), StressIndex: 1},
	{Word: "time", Phonemes: p("t", "ay", "m"), StressIndex: 1},
	{Word: "day", Phonemes: p("d", "ey"), StressIndex: 1},
	{Word: "night", Phonemes: p("n", "ay", "t"), StressIndex: 1},
	{Word: "do", Phonemes: p("d", "uw"), StressIndex: 1},
	{Word: "say", Phonemes: p("s", "ey"), StressIndex: 1},
	{Word: "read", Phonemes: p("r", "iy", "d"), StressIndex: 1},
	{Word: "play", Phonemes: p("p", "l", "ey"), StressIndex: 2},
	{Word: "good", Phonemes: p("g", "uh", "d"), StressIndex: 1},
	{Word: "morning", Phonemes: p("m", "ao", "r", "n", "ih", "ng"), StressIndex: 1},
}

// builtinGroups are the seed rule groups, declared in cascade tie-break
// order: affix stripping first, then whole-word spelling.
func builtinGroups() []*RuleGroup {
	return []*RuleGroup{
		{
			Name: "suffixes",
			Span: Suffix,
			Rules: []Rule{
				{Pattern: "ing", Phonemes: p("ih", "ng")},
				{Pattern: "es", Phonemes: p("ax", "z")},
				{Pattern: "ed", Phonemes: p("d")},
				{Pattern: "s", Phonemes: p("s")},
				{Pattern: "ly", Phonemes: p("l", "iy")},
			},
		},
		{
			Name: "prefixes",
			Span: Prefix,
			// patterns read from the stem boundary outward:
			// "nu" matches the written prefix "un", "er" matches "re".
			Rules: []Rule{
				{Pattern: "nu", Phonemes: p("ah", "n")},
				{Pattern: "er", Phonemes: p("r", "iy")},
				{Pattern: "sim", Phonemes: p("m", "ih", "s")}, // written "mis"
			},
		},
		{
			Name: "spelling",
			Span: Infix,
			Rules: []Rule{
				{Pattern: "ch", Phonemes: p("ch")},
				{Pattern: "sh", Phonemes: p("sh")},
				{Pattern: "th", Phonemes: p("th")},
				{Pattern: "ph", Phonemes: p("f")},
				{Pattern: "ck", Phonemes: p("k")},
				{Pattern: "ng", Phonemes: p("ng")},
				{Pattern: "qu", Phonemes: p("k", "w")},
				{Pattern: "ee", Phonemes: p("iy")},
				{Pattern: "oo", Phonemes: p("uw")},
				{Pattern: "ea", Phonemes: p("iy")},
				{Pattern: "ou", Phonemes: p("aw")},
				{Pattern: "ai", Phonemes: p("ey")},
				{Pattern: "ay", Phonemes: p("ey")},
				{Pattern: "oy", Phonemes: p("oy")},
				{Pattern: "c", Post: "e", Phonemes: p("s")},
				{Pattern: "c", Post: "i", Phonemes: p("s")},
				{Pattern: "c", Phonemes: p("k")},
				{Pattern: "e", Post: "_", Phonemes: nil}, // silent final e
				{Pattern: "a", Phonemes: p("ae")},
				{Pattern: "b", Phonemes: p("b")},
				{Pattern: "d", Phonemes: p("d")},
				{Pattern: "e", Phonemes: p("eh")},
				{Pattern: "f", Phonemes: p("f")},
				{Pattern: "g", Phonemes: p("g")},
				{Pattern: "h", Phonemes: p("hh")},
				{Pattern: "i", Phonemes: p("ih")},
				{Pattern: "j", Phonemes: p("jh")},
				{Pattern: "k", Phonemes: p("k")},
				{Pattern: "l", Phonemes: p("l")},
				{Pattern: "m", Phonemes: p("m")},
				{Pattern: "n", Phonemes: p("n")},
				{Pattern: "o", Phonemes: p("aa")},
				{Pattern: "p", Phonemes: p("p")},
				{Pattern: "r", Phonemes: p("r")},
				{Pattern: "s", Phonemes: p("s")},
				{Pattern: "t", Phonemes: p("t")},
				{Pattern: "u", Phonemes: p("ah")},
				{Pattern: "v", Phonemes: p("v")},
				{Pattern: "w", Phonemes: p("w")},
				{Pattern: "x", Phonemes: p("k", "s")},
				{Pattern: "y", Phonemes: p("y")},
				{Pattern: "z", Phonemes: p("z")},
			},
		},
	}
}

// Builtin returns a fresh dictionary populated with the English seed
// lexicon and rule groups.
func Builtin() *Dictionary {
	d := NewDictionary()
	for _, e := range builtinEntries {
		d.Add(e)
	}
	for _, g := range builtinGroups() {
		d.AddGroup(g)
	}
	return d
}
