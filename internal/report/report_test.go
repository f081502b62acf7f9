package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agl-alexglopez/pokelinks"
)

func solutionOf(names ...string) pokelinks.Solution {
	rs := pokelinks.NewRankedSet[pokelinks.Type](len(names))
	for _, n := range names {
		rs.Insert(pokelinks.NewType(n))
	}
	return rs
}

func TestSolutionsPlainOutputHasNoEscapeCodes(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, Plain)
	p.Solutions("DEFENSE", "exact", []pokelinks.Solution{solutionOf("Ghost", "Water")})

	out := buf.String()
	assert.NotContains(t, out, "\x1b[", "plain mode should not emit ANSI escapes")
	assert.Contains(t, out, "Ghost")
	assert.Contains(t, out, "Water")
	assert.Contains(t, out, "1 solution")
}

func TestSolutionsWritesOneLinePerSolution(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, Plain)
	p.Solutions("ATTACK", "overlapping", []pokelinks.Solution{
		solutionOf("Fighting"),
		solutionOf("Ground", "Ice"),
	})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3, "expected a header line plus 2 solution lines")
}
