// Package mapdata loads the plain-text region maps and JSON type-interaction
// files that back the pokelinks CLI. A region map is a small graph of named
// locations (gyms, landmarks) with 2-D coordinates and neighbor lists; a
// generation file pairs that graph with the damage-multiplier table for one
// Pokemon generation.
package mapdata

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Point is a 2-D coordinate used only to detect two locations placed on top
// of each other; the solver never reads it.
type Point struct {
	X, Y float64
}

// RegionMap is an undirected graph of named locations.
type RegionMap struct {
	Network   map[string]map[string]bool
	Locations map[string]Point
}

var cityLineRE = regexp.MustCompile(`^([A-Za-z0-9 .\-]+)\(\s*(-?[0-9]+(?:\.[0-9]+)?)\s*,\s*(-?[0-9]+(?:\.[0-9]+)?)\s*\)$`)

// ParseRegionMap reads a region map in the line-oriented format:
//
//	City_name (X, Y): Neighbor_one, Neighbor_two
//
// Blank lines and lines starting with "#" are skipped. Each line must carry
// exactly one colon; the list after it may be empty. Edges are recorded in
// both directions regardless of which side of the colon they were declared
// on, and every named location must appear with its own coordinate line.
func ParseRegionMap(r io.Reader) (RegionMap, error) {
	result := RegionMap{
		Network:   map[string]map[string]bool{},
		Locations: map[string]Point{},
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := parseCityLine(line, &result); err != nil {
			return RegionMap{}, err
		}
	}
	if err := scanner.Err(); err != nil {
		return RegionMap{}, fmt.Errorf("mapdata: reading region map: %w", err)
	}

	if err := addReverseEdges(&result); err != nil {
		return RegionMap{}, err
	}
	if err := validateLocations(result); err != nil {
		return RegionMap{}, err
	}
	return result, nil
}

func parseCityLine(line string, result *RegionMap) error {
	if strings.Count(line, ":") != 1 {
		return fmt.Errorf("mapdata: line must have exactly one colon: %q", line)
	}
	parts := strings.SplitN(line, ":", 2)
	name, err := parseCity(parts[0], result)
	if err != nil {
		return err
	}
	return parseLinks(name, parts[1], result)
}

func parseCity(cityAndLocation string, result *RegionMap) (string, error) {
	trimmed := strings.TrimSpace(cityAndLocation)
	match := cityLineRE.FindStringSubmatch(trimmed)
	if match == nil {
		return "", fmt.Errorf("mapdata: could not parse city and location: %q", cityAndLocation)
	}
	name := strings.TrimSpace(match[1])
	if name == "" {
		return "", fmt.Errorf("mapdata: city name is empty: %q", cityAndLocation)
	}
	x, errX := strconv.ParseFloat(match[2], 64)
	y, errY := strconv.ParseFloat(match[3], 64)
	if errX != nil || errY != nil {
		return "", fmt.Errorf("mapdata: invalid coordinates for %q", name)
	}
	if _, exists := result.Locations[name]; exists {
		return "", fmt.Errorf("mapdata: city %q appears twice", name)
	}
	result.Locations[name] = Point{X: x, Y: y}
	if result.Network[name] == nil {
		result.Network[name] = map[string]bool{}
	}
	return name, nil
}

func parseLinks(city, linkList string, result *RegionMap) error {
	for _, raw := range strings.Split(linkList, ",") {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if result.Network[city][name] {
			return fmt.Errorf("mapdata: city %q appears twice in %q's outgoing list", name, city)
		}
		result.Network[city][name] = true
	}
	return nil
}

func addReverseEdges(result *RegionMap) error {
	for source, dests := range result.Network {
		for dest := range dests {
			if _, ok := result.Network[dest]; !ok {
				return fmt.Errorf("mapdata: outgoing link found to nonexistent city %q", dest)
			}
			result.Network[dest][source] = true
		}
	}
	return nil
}

func validateLocations(m RegionMap) error {
	seen := map[Point]string{}
	names := make([]string, 0, len(m.Locations))
	for name := range m.Locations {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		loc := m.Locations[name]
		if other, ok := seen[loc]; ok {
			return fmt.Errorf("mapdata: %q is at the same location as %q", name, other)
		}
		seen[loc] = name
	}
	return nil
}

// Neighbors returns the sorted neighbor list for city, or nil if city is not
// in the map.
func (m RegionMap) Neighbors(city string) []string {
	neighbors, ok := m.Network[city]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(neighbors))
	for n := range neighbors {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Cities returns every named location in sorted order.
func (m RegionMap) Cities() []string {
	out := make([]string, 0, len(m.Locations))
	for name := range m.Locations {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
