package pokelinks

import "log"

// SearchStats carries gated debug/progress logging and basic counters for a
// search, following the debug/verbosity-gated log.Printf convention the
// dancing-links literature's reference implementations use for tracing
// cover/uncover/choose steps. A zero SearchStats runs silent.
type SearchStats struct {
	Debug     bool // emit log.Printf tracing of node counts and chosen items
	Verbosity int  // 0: silent, 1: node counts, 2: also every chosen item
	Nodes     int
	Solutions int
	MaxLevel  int
	HitLimit  bool
}

func (s *SearchStats) trace(depth int, format string, args ...any) {
	if s == nil || !s.Debug || s.Verbosity < 2 {
		return
	}
	log.Printf("depth=%d "+format, append([]any{depth}, args...)...)
}

func (s *SearchStats) node(depth int) {
	if s == nil {
		return
	}
	s.Nodes++
	if depth > s.MaxLevel {
		s.MaxLevel = depth
	}
	if s.Debug && s.Verbosity > 0 && s.Nodes%1000 == 0 {
		log.Printf("nodes=%d maxLevel=%d", s.Nodes, s.MaxLevel)
	}
}
