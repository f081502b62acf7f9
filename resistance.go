package pokelinks

// Multiplier enumerates the possible damage multipliers between an
// attacking type and a defending type. Values are deliberately chosen so
// that they double as the coverage score contributed by a cell: the comment
// on each constant below gives its score, and matrix.go sums them.
type Multiplier int

const (
	Empty   Multiplier = iota // no interaction recorded
	Immune                    // x0, defense score 1
	Quarter                   // x1/4, defense score 2
	Half                      // x1/2, defense score 3
	Normal                    // x1, excluded from coverage
	Double                    // x2, attack score 5
	Quad                      // x4, attack score 6
)

// Resistance is an immutable (type, multiplier) pair: the attacking type and
// the multiplier a defending type suffers against it, or vice versa when
// describing an attack-mode interaction. Ordered by type alone; equality
// compares both fields.
type Resistance struct {
	Type       Type
	Multiplier Multiplier
}

// Less orders Resistances by Type only, ignoring Multiplier.
func (r Resistance) Less(other Resistance) bool {
	return r.Type.Less(other.Type)
}

// Equal compares both the type and the multiplier.
func (r Resistance) Equal(other Resistance) bool {
	return r.Type == other.Type && r.Multiplier == other.Multiplier
}
