package pokelinks

// Solution is one covering answer: the set of types chosen, ranked by the
// total coverage score those choices earn.
type Solution = RankedSet[Type]

// ExactCoverages finds every way to cover all remaining items using at most
// choiceLimit options, where no two chosen options may cover the same item.
// For defense this answers "every minimal-overlap team of at most
// choiceLimit Pokémon that resists every attack type"; for attack, the
// attack-type analogue.
func (m *Matrix) ExactCoverages(choiceLimit int) ([]Solution, *SearchStats) {
	return m.ExactCoveragesWithStats(choiceLimit, &SearchStats{})
}

// ExactCoveragesWithStats is ExactCoverages with caller-supplied stats, so a
// CLI or test can enable tracing or inspect node counts afterward.
func (m *Matrix) ExactCoveragesWithStats(choiceLimit int, stats *SearchStats) ([]Solution, *SearchStats) {
	m.hitLimit = false
	seen := map[string]Solution{}
	coverage := NewRankedSet[Type](0)
	m.fillExactCoverages(seen, &coverage, choiceLimit, 0, stats)
	if stats != nil {
		stats.HitLimit = m.hitLimit
	}
	return solutionSlice(seen), stats
}

func (m *Matrix) fillExactCoverages(seen map[string]Solution, coverage *Solution, depthLimit, depth int, stats *SearchStats) {
	stats.node(depth)
	if m.itemTable[0].Right == 0 && depthLimit >= 0 {
		recordSolution(seen, *coverage)
		return
	}
	if depthLimit <= 0 {
		return
	}
	itemToCover := m.chooseItem()
	if itemToCover == 0 {
		return
	}
	stats.trace(depth, "choose item=%d", itemToCover)
	for cur := m.links[itemToCover].Down; cur != itemToCover; cur = m.links[cur].Down {
		score := m.coverType(cur)
		coverage.InsertRanked(score.Score, score.Name)

		m.fillExactCoverages(seen, coverage, depthLimit-1, depth+1, stats)

		if m.maxOutput > 0 && len(seen) == m.maxOutput {
			m.hitLimit = true
			m.uncoverType(cur)
			return
		}
		coverage.EraseRanked(score.Score, score.Name)
		m.uncoverType(cur)
	}
}

// OverlappingCoverages finds every way to cover all remaining items using at
// most choiceLimit options, allowing two chosen options to cover the same
// item. This produces many more results than ExactCoverages but answers a
// looser question: any combination, overlaps allowed, that covers
// everything within the choice budget.
func (m *Matrix) OverlappingCoverages(choiceLimit int) ([]Solution, *SearchStats) {
	return m.OverlappingCoveragesWithStats(choiceLimit, &SearchStats{})
}

// OverlappingCoveragesWithStats is OverlappingCoverages with caller-supplied
// stats.
func (m *Matrix) OverlappingCoveragesWithStats(choiceLimit int, stats *SearchStats) ([]Solution, *SearchStats) {
	m.hitLimit = false
	seen := map[string]Solution{}
	coverage := NewRankedSet[Type](0)
	m.fillOverlappingCoverages(seen, &coverage, choiceLimit, 0, stats)
	if stats != nil {
		stats.HitLimit = m.hitLimit
	}
	return solutionSlice(seen), stats
}

func (m *Matrix) fillOverlappingCoverages(seen map[string]Solution, coverage *Solution, depthTag, depth int, stats *SearchStats) {
	stats.node(depth)
	if m.itemTable[0].Right == 0 && depthTag >= 0 {
		recordSolution(seen, *coverage)
		return
	}
	if depthTag <= 0 {
		return
	}
	itemToCover := m.chooseItem()
	if itemToCover == 0 {
		return
	}
	stats.trace(depth, "choose item=%d", itemToCover)
	for cur := m.links[itemToCover].Down; cur != itemToCover; cur = m.links[cur].Down {
		score := m.overlappingCoverType(coverTag{Index: cur, Tag: depthTag})
		coverage.InsertRanked(score.Score, score.Name)

		m.fillOverlappingCoverages(seen, coverage, depthTag-1, depth+1, stats)

		if m.maxOutput > 0 && len(seen) == m.maxOutput {
			m.hitLimit = true
			m.overlappingUncoverType(cur)
			return
		}
		coverage.EraseRanked(score.Score, score.Name)
		m.overlappingUncoverType(cur)
	}
}

// recordSolution stringifies coverage into a dedup key before storing it;
// overlapping search in particular can rediscover the same set of types via
// different recursion orders.
func recordSolution(seen map[string]Solution, coverage Solution) {
	key := solutionKey(coverage)
	if _, ok := seen[key]; ok {
		return
	}
	seen[key] = coverage.Clone()
}

func solutionKey(s Solution) string {
	b := make([]byte, 0, 8*(s.Len()+1))
	b = appendInt(b, s.Rank)
	for _, t := range s.Elements() {
		b = append(b, '|')
		b = appendInt(b, int(t))
	}
	return string(b)
}

func appendInt(b []byte, v int) []byte {
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	start := len(b)
	if v == 0 {
		return append(b, '0')
	}
	for v > 0 {
		b = append(b, byte('0'+v%10))
		v /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

func solutionSlice(seen map[string]Solution) []Solution {
	out := make([]Solution, 0, len(seen))
	for _, s := range seen {
		out = append(out, s)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && Compare(out[j], out[j-1]) < 0; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
