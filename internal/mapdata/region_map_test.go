package mapdata

import (
	"strings"
	"testing"
)

const sampleMap = `# 1
Pewter (0, 0): Cerulean, Viridian
Cerulean (10, 0): Vermilion
Viridian (-5, -5):
Vermilion (10, -10):
`

func TestParseRegionMapBuildsUndirectedGraph(t *testing.T) {
	m, err := ParseRegionMap(strings.NewReader(strings.TrimPrefix(sampleMap, "# 1\n")))
	if err != nil {
		t.Fatalf("ParseRegionMap: %v", err)
	}
	if len(m.Cities()) != 4 {
		t.Fatalf("expected 4 cities, got %v", m.Cities())
	}
	neighbors := m.Neighbors("Viridian")
	if len(neighbors) != 1 || neighbors[0] != "Pewter" {
		t.Errorf("expected Viridian's reverse edge to Pewter, got %v", neighbors)
	}
	neighbors = m.Neighbors("Vermilion")
	if len(neighbors) != 1 || neighbors[0] != "Cerulean" {
		t.Errorf("expected Vermilion's reverse edge to Cerulean, got %v", neighbors)
	}
}

func TestParseRegionMapSkipsBlankAndCommentLines(t *testing.T) {
	text := "\n# a comment\nAlpha (0, 0): Beta\n\nBeta (1, 1):\n"
	m, err := ParseRegionMap(strings.NewReader(text))
	if err != nil {
		t.Fatalf("ParseRegionMap: %v", err)
	}
	if len(m.Cities()) != 2 {
		t.Fatalf("expected 2 cities, got %v", m.Cities())
	}
}

func TestParseRegionMapRejectsDuplicateLocation(t *testing.T) {
	text := "Alpha (0, 0): Beta\nBeta (0, 0):\n"
	if _, err := ParseRegionMap(strings.NewReader(text)); err == nil {
		t.Fatalf("expected an error for two cities at the same location")
	}
}

func TestParseRegionMapRejectsDanglingEdge(t *testing.T) {
	text := "Alpha (0, 0): Ghost_Town\n"
	if _, err := ParseRegionMap(strings.NewReader(text)); err == nil {
		t.Fatalf("expected an error for an edge to an undeclared city")
	}
}

func TestParseRegionMapRejectsMissingColon(t *testing.T) {
	text := "Alpha (0, 0)\n"
	if _, err := ParseRegionMap(strings.NewReader(text)); err == nil {
		t.Fatalf("expected an error for a line with no colon")
	}
}

func TestParseRegionMapRejectsDuplicateOutgoingName(t *testing.T) {
	text := "Alpha (0, 0): Beta, Beta\nBeta (1, 1):\n"
	if _, err := ParseRegionMap(strings.NewReader(text)); err == nil {
		t.Fatalf("expected an error for a city appearing twice in one outgoing list")
	}
}
