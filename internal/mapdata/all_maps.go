package mapdata

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/agl-alexglopez/pokelinks"
)

// gymSelection is one gym's attacking and defending typings, as laid out in
// an all-maps JSON file: map name -> gym name -> {"attack": [...], "defense": [...]}.
type gymSelection struct {
	Attack  []string `json:"attack"`
	Defense []string `json:"defense"`
}

type allMapsFile map[string]map[string]gymSelection

// AllMaps caches a decoded all-maps file in memory so that repeated
// SelectedGymDefenses/SelectedGymAttacks calls against the same source don't
// re-parse the JSON on every gym lookup. Each load is tagged with a random
// ID purely so operators can correlate "which decode served this answer" in
// logs; it plays no role in the lookup itself.
type AllMaps struct {
	mu      sync.RWMutex
	loadID  uuid.UUID
	decoded allMapsFile
}

// LoadAllMaps decodes an all-maps JSON document from r.
func LoadAllMaps(r io.Reader) (*AllMaps, error) {
	var decoded allMapsFile
	if err := json.NewDecoder(r).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("mapdata: decoding all-maps file: %w", err)
	}
	return &AllMaps{loadID: uuid.New(), decoded: decoded}, nil
}

// LoadID identifies this particular decode, for log correlation.
func (a *AllMaps) LoadID() uuid.UUID {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loadID
}

// SelectedGymDefenses returns the union of defending types across the named
// gyms on the named map.
func (a *AllMaps) SelectedGymDefenses(mapName string, gyms map[string]bool) ([]pokelinks.Type, error) {
	return a.selectedGymTypes(mapName, gyms, func(g gymSelection) []string { return g.Defense })
}

// SelectedGymAttacks returns the union of attacking types across the named
// gyms on the named map.
func (a *AllMaps) SelectedGymAttacks(mapName string, gyms map[string]bool) ([]pokelinks.Type, error) {
	return a.selectedGymTypes(mapName, gyms, func(g gymSelection) []string { return g.Attack })
}

func (a *AllMaps) selectedGymTypes(mapName string, gyms map[string]bool, pick func(gymSelection) []string) ([]pokelinks.Type, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	gymMap, ok := a.decoded[mapName]
	if !ok {
		return nil, fmt.Errorf("mapdata: unknown map %q", mapName)
	}

	seen := map[pokelinks.Type]bool{}
	var result []pokelinks.Type
	for gymName, selection := range gymMap {
		if !gyms[gymName] {
			continue
		}
		for _, name := range pick(selection) {
			t := pokelinks.NewType(name)
			if !seen[t] {
				seen[t] = true
				result = append(result, t)
			}
		}
	}
	return result, nil
}
