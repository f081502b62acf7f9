package pokelinks

import "testing"

// scenarioA builds the trivial two-defender fixture from the package's
// defense-cover test corpus: Ghost and Water defending against Fire,
// Normal, and Water. Ghost is immune to Normal; Water resists Fire and
// Water at half damage.
func scenarioA() InteractionTable {
	fire, normal, water := NewType("Fire"), NewType("Normal"), NewType("Water")
	return InteractionTable{
		{Name: NewType("Ghost"), Resistances: []Resistance{
			{Type: fire, Multiplier: Normal},
			{Type: normal, Multiplier: Immune},
			{Type: water, Multiplier: Normal},
		}},
		{Name: water, Resistances: []Resistance{
			{Type: fire, Multiplier: Half},
			{Type: normal, Multiplier: Normal},
			{Type: water, Multiplier: Half},
		}},
	}
}

// scenarioB builds the six-defender fixture used for the two-exact-covers
// test corpus: Electric, Ghost, Ground, Ice, Poison, Water defending
// against Electric, Grass, Ice, Normal, Water.
func scenarioB() InteractionTable {
	electric, grass, ice, normal, water := NewType("Electric"), NewType("Grass"), NewType("Ice"), NewType("Normal"), NewType("Water")
	full := func(overrides map[Type]Multiplier) []Resistance {
		order := []Type{electric, grass, ice, normal, water}
		res := make([]Resistance, len(order))
		for i, t := range order {
			mult := Normal
			if m, ok := overrides[t]; ok {
				mult = m
			}
			res[i] = Resistance{Type: t, Multiplier: mult}
		}
		return res
	}
	return InteractionTable{
		{Name: electric, Resistances: full(map[Type]Multiplier{electric: Half})},
		{Name: NewType("Ghost"), Resistances: full(map[Type]Multiplier{normal: Immune})},
		{Name: NewType("Ground"), Resistances: full(map[Type]Multiplier{electric: Immune})},
		{Name: NewType("Ice"), Resistances: full(nil)},
		{Name: NewType("Poison"), Resistances: full(map[Type]Multiplier{grass: Half})},
		{Name: water, Resistances: full(map[Type]Multiplier{ice: Half, water: Half})},
	}
}

// scenarioC builds the attack-cover fixture: a sparse super-effective map
// keyed by defending type, built so that inverting it for attack-mode
// coverage yields Fighting/Grass/Ground/Ice/Poison as the attacking options.
func scenarioC() InteractionTable {
	ground, fighting, ice, poison := NewType("Ground"), NewType("Fighting"), NewType("Ice"), NewType("Poison")
	return InteractionTable{
		{Name: NewType("Electric"), Resistances: []Resistance{{Type: ground, Multiplier: Double}}},
		{Name: NewType("Fire"), Resistances: []Resistance{{Type: ground, Multiplier: Double}}},
		{Name: NewType("Grass"), Resistances: []Resistance{
			{Type: ice, Multiplier: Double},
			{Type: poison, Multiplier: Double},
		}},
		{Name: NewType("Ice"), Resistances: []Resistance{{Type: fighting, Multiplier: Double}}},
		{Name: NewType("Normal"), Resistances: []Resistance{{Type: fighting, Multiplier: Double}}},
		{Name: NewType("Water"), Resistances: []Resistance{{Type: NewType("Grass"), Multiplier: Double}}},
	}
}

func TestNewMatrixRejectsEmptyTable(t *testing.T) {
	if _, err := NewMatrix(nil, Defense); err != ErrEmptyInteractions {
		t.Errorf("expected ErrEmptyInteractions, got %v", err)
	}
}

func TestNewMatrixDefenseCounts(t *testing.T) {
	m, err := NewMatrix(scenarioB(), Defense)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	if got := m.NumOptions(); got != 6 {
		t.Errorf("expected 6 options, got %d", got)
	}
	if got := m.NumItems(); got != 5 {
		t.Errorf("expected 5 items, got %d", got)
	}
	if m.CoverageType() != Defense {
		t.Errorf("expected Defense coverage type")
	}
}

func TestNewMatrixAttackCounts(t *testing.T) {
	m, err := NewMatrix(scenarioC(), Attack)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	if got := m.NumItems(); got != 6 {
		t.Errorf("expected 6 items (defending typings), got %d", got)
	}
	if got := m.NumOptions(); got != 5 {
		t.Errorf("expected 5 options (attack types), got %d", got)
	}
}

func TestCoverUncoverIsIdentity(t *testing.T) {
	m, err := NewMatrix(scenarioB(), Defense)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	before := snapshotLinks(m)
	itemIdx := m.chooseItem()
	if itemIdx == 0 {
		t.Fatalf("expected a coverable item")
	}
	row := m.links[itemIdx].Down
	m.coverType(row)
	m.uncoverType(row)
	after := snapshotLinks(m)
	if !linksEqual(before, after) {
		t.Errorf("cover/uncover did not restore the matrix to its original state")
	}
}

func snapshotLinks(m *Matrix) []link {
	cp := make([]link, len(m.links))
	copy(cp, m.links)
	return cp
}

func linksEqual(a, b []link) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
