package pokelinks

import (
	"errors"
	"fmt"
	"sort"
)

// CoverageType selects which side of the type chart a Matrix is built to
// cover: a defensive team resisting attack types, or a set of attacks
// covering defensive typings.
type CoverageType int

const (
	Defense CoverageType = iota
	Attack
)

func (c CoverageType) String() string {
	if c == Attack {
		return "attack"
	}
	return "defense"
}

// hiddenTag marks a column header or row spacer as removed from play by the
// user-facing hide API, as distinct from the transient cover/uncover state
// used mid-search.
const hiddenTag = -1

// TypeInteraction is one entry of an interaction table: a typing and its
// sorted set of Resistances against every attacking type in a generation.
type TypeInteraction struct {
	Name        Type
	Resistances []Resistance
}

// InteractionTable is a full generation's interaction data. NewMatrix sorts
// a copy by Name (and each entry's Resistances by Type), so callers need not
// pre-sort; this mirrors the ordered-map guarantee the original algorithm
// was designed around without requiring Go's unordered maps to behave like
// one.
type InteractionTable []TypeInteraction

func (tbl InteractionTable) sorted() InteractionTable {
	out := make(InteractionTable, len(tbl))
	for i, entry := range tbl {
		res := make([]Resistance, len(entry.Resistances))
		copy(res, entry.Resistances)
		sort.Slice(res, func(a, b int) bool { return res[a].Less(res[b]) })
		out[i] = TypeInteraction{Name: entry.Name, Resistances: res}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name.Less(out[b].Name) })
	return out
}

var (
	// ErrEmptyInteractions is returned when an interaction table has no
	// entries; there is nothing to build a matrix from.
	ErrEmptyInteractions = errors.New("pokelinks: interaction table is empty")
	// ErrNoAttackTypes names an empty attack-type filter. No function in
	// this package returns it: NewDefenseMatrixForAttackTypes given zero
	// attack types builds the unrestricted defense matrix instead.
	ErrNoAttackTypes = errors.New("pokelinks: no attack types given to filter on")
)

// itemHeader is one entry of the item lookup table: the column header name,
// plus the doubly linked list pointers used to splice items in and out of
// play. Index 0 is the list root and never holds a real Type.
type itemHeader struct {
	Name  Type
	Left  int
	Right int
}

// optionEntry is one entry of the option lookup table: an option's name and
// the index of its row spacer in links. Index 0 is an unused placeholder so
// a zero index can serve as a falsy "not found" result, matching itemHeader.
type optionEntry struct {
	Name  Type
	Index int
}

// link is one cell of the arena: the root or a column header (TopOrLen is
// the number of options currently in that column), a row spacer (TopOrLen
// <= 0), or an item appearance within an option (TopOrLen > 0, pointing
// back at its column header).
type link struct {
	TopOrLen   int
	Up, Down   int
	Multiplier Multiplier
	Tag        int
}

// Matrix is the in-place, arena-indexed quadruply linked sparse matrix that
// backs Algorithm X. All structure is expressed as integer indices into the
// links slice rather than pointers, so the whole matrix lives in three flat
// slices and can be copied or serialized trivially.
type Matrix struct {
	itemTable   []itemHeader
	optionTable []optionEntry
	links       []link

	hiddenItems   []int
	hiddenOptions []int

	maxOutput int
	hitLimit  bool

	numItems   int
	numOptions int

	coverage CoverageType
}

// DefaultMaxOutput caps the number of coverages a search will collect before
// aborting early and reporting ReachedOutputLimit. 200000 matches the
// ceiling the original planner used to keep its GUI responsive.
const DefaultMaxOutput = 200_000

// NewMatrix builds the dancing links arena for either a defensive team
// search (one option per typing, items are the attack types it resists) or
// an attack-type search (one option per attack type, items are the typings
// it's super effective against), mirroring the two shapes needed by set
// cover in each direction.
func NewMatrix(table InteractionTable, coverage CoverageType) (*Matrix, error) {
	if len(table) == 0 {
		return nil, ErrEmptyInteractions
	}
	m := &Matrix{maxOutput: DefaultMaxOutput, coverage: coverage}
	sorted := table.sorted()
	switch coverage {
	case Defense:
		m.buildDefenseLinks(sorted)
	case Attack:
		m.buildAttackLinks(sorted)
	default:
		panic(fmt.Sprintf("pokelinks: unknown coverage type %d", coverage))
	}
	return m, nil
}

// NewDefenseMatrixForAttackTypes builds a defensive matrix restricted to a
// subset of attack types, useful for planning a team against the specific
// attacks a gym or trainer actually uses rather than an entire generation.
// An empty attackTypes builds the unrestricted defense matrix.
func NewDefenseMatrixForAttackTypes(table InteractionTable, attackTypes []Type) (*Matrix, error) {
	if len(table) == 0 {
		return nil, ErrEmptyInteractions
	}
	if len(attackTypes) == 0 {
		return NewMatrix(table, Defense)
	}
	keep := make(map[Type]bool, len(attackTypes))
	for _, t := range attackTypes {
		keep[t] = true
	}
	filtered := make(InteractionTable, len(table))
	for i, entry := range table {
		var kept []Resistance
		for _, r := range entry.Resistances {
			if keep[r.Type] {
				kept = append(kept, r)
			}
		}
		filtered[i] = TypeInteraction{Name: entry.Name, Resistances: kept}
	}
	return NewMatrix(filtered, Defense)
}

// CoverageType reports whether m was built to find defenses or attacks.
func (m *Matrix) CoverageType() CoverageType {
	return m.coverage
}

// NumItems reports how many items remain in play (not user-hidden).
func (m *Matrix) NumItems() int {
	return m.numItems
}

// NumOptions reports how many options remain in play (not user-hidden).
func (m *Matrix) NumOptions() int {
	return m.numOptions
}

// SetMaxOutput changes the solution-count cutoff used by the search in
// solve.go. A limit of 0 means unbounded.
func (m *Matrix) SetMaxOutput(limit int) {
	m.maxOutput = limit
}

// ReachedOutputLimit reports whether the most recent search aborted early
// because it hit the configured output cap.
func (m *Matrix) ReachedOutputLimit() bool {
	return m.hitLimit
}

// Items returns the names of every item currently in play, in item-table
// order (user-hidden items are skipped).
func (m *Matrix) Items() []Type {
	var out []Type
	for i := m.itemTable[0].Right; i != 0; i = m.itemTable[i].Right {
		out = append(out, m.itemTable[i].Name)
	}
	return out
}

// Options returns the names of every option currently in play (user-hidden
// options are skipped).
func (m *Matrix) Options() []Type {
	var out []Type
	for i := len(m.itemTable); i < len(m.links)-1; i = m.links[i].Down + 1 {
		if m.links[i].Tag != hiddenTag {
			out = append(out, m.optionTable[-m.links[i].TopOrLen].Name)
		}
	}
	return out
}

// findItemIndex binary searches the sorted item table for item's column
// header index, or 0 (a falsy sentinel, since index 0 is the unused list
// root) if not present.
func (m *Matrix) findItemIndex(item Type) int {
	lo, hi := 0, len(m.itemTable)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case m.itemTable[mid].Name == item:
			return mid
		case m.itemTable[mid].Name.Less(item):
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return 0
}

// findOptionIndex binary searches the sorted option table for option's row
// spacer index, or 0 if not present.
func (m *Matrix) findOptionIndex(option Type) int {
	lo, hi := 0, len(m.optionTable)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case m.optionTable[mid].Name == option:
			return m.optionTable[mid].Index
		case m.optionTable[mid].Name.Less(option):
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return 0
}

// chooseItem picks the column with the fewest remaining options (the MRV
// heuristic Algorithm X relies on to keep the search shallow). It returns 0
// if some remaining item has become unreachable, signalling the caller to
// fail this branch.
func (m *Matrix) chooseItem() int {
	min := int(^uint(0) >> 1)
	chosen := 0
	for cur := m.itemTable[0].Right; cur != 0; cur = m.itemTable[cur].Right {
		if m.links[cur].TopOrLen <= 0 {
			return 0
		}
		if m.links[cur].TopOrLen < min {
			chosen = cur
			min = m.links[cur].TopOrLen
		}
	}
	return chosen
}

// encodingScore pairs the name of an option just covered with the score it
// contributes to the Ranked_set-equivalent coverage being built.
type encodingScore struct {
	Name  Type
	Score int
}

// coverType performs an exact cover: it removes the option containing
// indexInOption, covers every item that option satisfies, and removes every
// other option that touches those items. Returns the name of the chosen
// option and the total score its resistances contribute.
func (m *Matrix) coverType(indexInOption int) encodingScore {
	var result encodingScore
	i := indexInOption
	for {
		top := m.links[i].TopOrLen
		if top <= 0 {
			i = m.links[i].Up
			result.Name = m.optionTable[-m.links[i-1].TopOrLen].Name
		} else {
			if m.links[top].Tag == 0 {
				cur := m.itemTable[top]
				m.itemTable[cur.Left].Right = cur.Right
				m.itemTable[cur.Right].Left = cur.Left
				m.hideOptionsForCover(i)
				result.Score += int(m.links[i].Multiplier)
			}
			i++
		}
		if i == indexInOption {
			break
		}
	}
	return result
}

// uncoverType undoes coverType for the same indexInOption, restoring every
// item and option it had removed.
func (m *Matrix) uncoverType(indexInOption int) {
	i := indexInOption - 1
	for {
		top := m.links[i].TopOrLen
		if top <= 0 {
			i = m.links[i].Down
		} else {
			if m.links[top].Tag == 0 {
				cur := m.itemTable[top]
				m.itemTable[cur.Left].Right = top
				m.itemTable[cur.Right].Left = top
				m.unhideOptionsForCover(i)
			}
			i--
		}
		if i == indexInOption-1 {
			break
		}
	}
}

// hideOptionsForCover removes every other option that has a cell in the
// column of the node at indexInOption, splicing each such option out of
// every column it appears in. coverType calls it once per item the chosen
// option claims. This is what makes exact cover shrink the problem so aggressively:
// no other option may compete for an item this option has just claimed.
func (m *Matrix) hideOptionsForCover(indexInOption int) {
	for row := m.links[indexInOption].Down; row != indexInOption; row = m.links[row].Down {
		if row == m.links[indexInOption].TopOrLen {
			continue
		}
		for col := row + 1; col != row; {
			top := m.links[col].TopOrLen
			if top <= 0 {
				col = m.links[col].Up
				continue
			}
			cur := m.links[col]
			m.links[cur.Up].Down = cur.Down
			m.links[cur.Down].Up = cur.Up
			m.links[top].TopOrLen--
			col++
		}
	}
}

// unhideOptionsForCover undoes hideOptionsForCover for the same option.
func (m *Matrix) unhideOptionsForCover(indexInOption int) {
	for row := m.links[indexInOption].Up; row != indexInOption; row = m.links[row].Up {
		if row == m.links[indexInOption].TopOrLen {
			continue
		}
		for col := row - 1; col != row; {
			top := m.links[col].TopOrLen
			if top <= 0 {
				col = m.links[col].Down
				continue
			}
			cur := m.links[col]
			m.links[cur.Up].Down = col
			m.links[cur.Down].Up = col
			m.links[top].TopOrLen++
			col--
		}
	}
}

// coverTag pairs the row index an overlapping cover starts at with the
// depth-tag the current search level is using to mark covered columns.
type coverTag struct {
	Index int
	Tag   int
}

// overlappingCoverType performs a looser cover: it marks every item the
// option satisfies with tag.Tag and removes it from the item list, but
// leaves other options touching those items in play, since overlapping
// coverage tolerates more than one option claiming the same item.
func (m *Matrix) overlappingCoverType(tag coverTag) encodingScore {
	var result encodingScore
	i := tag.Index
	for {
		top := m.links[i].TopOrLen
		if top <= 0 {
			i = m.links[i].Up
			result.Name = m.optionTable[-m.links[i-1].TopOrLen].Name
		} else {
			if m.links[top].Tag == 0 {
				m.links[top].Tag = tag.Tag
				cur := m.itemTable[top]
				m.itemTable[cur.Left].Right = cur.Right
				m.itemTable[cur.Right].Left = cur.Left
				result.Score += int(m.links[i].Multiplier)
			}
			if m.links[top].Tag == hiddenTag {
				i++
			} else {
				m.links[i].Tag = tag.Tag
				i++
			}
		}
		if i == tag.Index {
			break
		}
	}
	return result
}

// overlappingUncoverType undoes overlappingCoverType for the same
// indexInOption, restoring only the items this call's depth tag actually
// covered.
func (m *Matrix) overlappingUncoverType(indexInOption int) {
	i := indexInOption - 1
	for {
		top := m.links[i].TopOrLen
		if top < 0 {
			i = m.links[i].Down
		} else {
			if m.links[top].Tag == m.links[i].Tag {
				m.links[top].Tag = 0
				cur := m.itemTable[top]
				m.itemTable[cur.Left].Right = top
				m.itemTable[cur.Right].Left = top
			}
			if m.links[top].Tag == hiddenTag {
				i--
			} else {
				m.links[i].Tag = 0
				i--
			}
		}
		if i == indexInOption-1 {
			break
		}
	}
}

// buildDefenseLinks lays out one option per defending typing, whose items
// are the attack types that typing resists better than normal damage.
func (m *Matrix) buildDefenseLinks(table InteractionTable) {
	generationTypes := map[Type]bool{}
	for _, r := range table[0].Resistances {
		generationTypes[r.Type] = true
	}
	sortedAttacks := make([]Type, 0, len(generationTypes))
	for t := range generationTypes {
		sortedAttacks = append(sortedAttacks, t)
	}
	sort.Slice(sortedAttacks, func(a, b int) bool { return sortedAttacks[a].Less(sortedAttacks[b]) })

	columnBuilder := make(map[Type]int, len(sortedAttacks))
	m.optionTable = append(m.optionTable, optionEntry{})
	m.itemTable = append(m.itemTable, itemHeader{Right: 1})
	m.links = append(m.links, link{})

	index := 1
	for _, t := range sortedAttacks {
		columnBuilder[t] = index
		m.itemTable = append(m.itemTable, itemHeader{Name: t, Left: index - 1, Right: index + 1})
		m.itemTable[0].Left++
		m.links = append(m.links, link{Up: index, Down: index})
		m.numItems++
		index++
	}
	m.itemTable[len(m.itemTable)-1].Right = 0

	m.initializeColumns(table, columnBuilder, Defense)
}

// buildAttackLinks lays out one option per attack type, whose items are the
// defensive typings it is super effective against, by inverting the
// interaction table (attack type -> resistances it causes) before reusing
// initializeColumns.
func (m *Matrix) buildAttackLinks(table InteractionTable) {
	m.optionTable = append(m.optionTable, optionEntry{})
	m.itemTable = append(m.itemTable, itemHeader{Right: 1})
	m.links = append(m.links, link{})

	invertedSet := map[Type]map[Resistance]bool{}
	var invertedOrder []Type
	columnBuilder := make(map[Type]int, len(table))

	index := 1
	for _, entry := range table {
		columnBuilder[entry.Name] = index
		m.itemTable = append(m.itemTable, itemHeader{Name: entry.Name, Left: index - 1, Right: index + 1})
		m.itemTable[0].Left++
		m.links = append(m.links, link{Up: index, Down: index})
		m.numItems++
		index++
		for _, r := range entry.Resistances {
			if invertedSet[r.Type] == nil {
				invertedSet[r.Type] = map[Resistance]bool{}
				invertedOrder = append(invertedOrder, r.Type)
			}
			invertedSet[r.Type][Resistance{Type: entry.Name, Multiplier: r.Multiplier}] = true
		}
	}
	m.itemTable[len(m.itemTable)-1].Right = 0

	sort.Slice(invertedOrder, func(a, b int) bool { return invertedOrder[a].Less(invertedOrder[b]) })
	inverted := make(InteractionTable, 0, len(invertedOrder))
	for _, attack := range invertedOrder {
		set := invertedSet[attack]
		res := make([]Resistance, 0, len(set))
		for r := range set {
			res = append(res, r)
		}
		sort.Slice(res, func(a, b int) bool { return res[a].Less(res[b]) })
		inverted = append(inverted, TypeInteraction{Name: attack, Resistances: res})
	}

	m.initializeColumns(inverted, columnBuilder, Attack)
}

// initializeColumns lays the option rows into links, appending a spacer
// before each option's cells and a terminating spacer after the last. Only
// resistances better than Normal (for defense) or better than Normal in the
// attacker's favor (for attack) earn a cell, since those are the only
// interactions that matter for coverage.
func (m *Matrix) initializeColumns(table InteractionTable, columnBuilder map[Type]int, coverage CoverageType) {
	previousSetSize := len(m.links)
	currentIndex := len(m.links)
	typeLookupIndex := 1

	for _, entry := range table {
		typeTitle := currentIndex
		setSize := 0
		m.links = append(m.links, link{
			TopOrLen: -typeLookupIndex,
			Up:       currentIndex - previousSetSize,
			Down:     currentIndex,
		})
		m.optionTable = append(m.optionTable, optionEntry{Name: entry.Name, Index: currentIndex})

		for _, res := range entry.Resistances {
			relevant := res.Multiplier > Empty && res.Multiplier < Normal
			if coverage == Attack {
				relevant = res.Multiplier > Normal
			}
			if !relevant {
				continue
			}
			currentIndex++
			m.links[typeTitle].Down++
			setSize++

			col := columnBuilder[res.Type]
			tail := m.links[col].Down
			m.links[tail].TopOrLen++

			m.links = append(m.links, link{
				TopOrLen:   tail,
				Up:         currentIndex,
				Down:       currentIndex,
				Multiplier: res.Multiplier,
			})
			m.links[tail].Up = currentIndex
			m.links[currentIndex].Up = col
			m.links[currentIndex].Down = m.links[col].Down
			m.links[col].Down = currentIndex
			columnBuilder[res.Type] = currentIndex
		}
		typeLookupIndex++
		currentIndex++
		m.numOptions++
		previousSetSize = setSize
	}
	m.links = append(m.links, link{
		TopOrLen: minInt,
		Up:       currentIndex - previousSetSize,
		Down:     -1,
	})
}

const minInt = -int(^uint(0)>>1) - 1
