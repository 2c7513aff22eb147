package lexicon

// EditDistance computes the Levenshtein edit distance between two words.
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Use single-row DP to save memory.
	prev := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		cur := make([]int, lb+1)
		cur[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			cur[j] = m
		}
		prev = cur
	}
	return prev[lb]
}

// Nearest finds the dictionary entry whose headword is closest to word
// by edit distance, within maxDist. Ties resolve to the
// lexicographically smallest headword so results never depend on map
// iteration order.
func (d *Dictionary) Nearest(word string, maxDist int) (*Entry, bool) {
	key := foldKey(word)
	best := maxDist + 1
	var bestWord string
	var bestEntry *Entry
	for w, e := range d.entries {
		dist := EditDistance(key, w)
		if dist > maxDist {
			continue
		}
		if dist < best || (dist == best && w < bestWord) {
			best = dist
			bestWord = w
			bestEntry = e
		}
	}
	if bestEntry == nil {
		return nil, false
	}
	return bestEntry, true
}
