package mapdata

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agl-alexglopez/pokelinks"
)

// Generation pairs one generation's damage-multiplier table with the region
// map its gyms are laid out on.
type Generation struct {
	Interactions pokelinks.InteractionTable
	Map          RegionMap
}

var multiplierNames = map[string]pokelinks.Multiplier{
	"immune":  pokelinks.Immune,
	"quarter": pokelinks.Quarter,
	"half":    pokelinks.Half,
	"normal":  pokelinks.Normal,
	"double":  pokelinks.Double,
	"quad":    pokelinks.Quad,
}

// typeMultipliers is the on-disk shape of a generation's type file: for each
// defending type, a bucket of attacking type names keyed by the resulting
// damage multiplier. Buckets may be omitted; anything left unmentioned is
// implicitly Normal.
type typeMultipliers map[string]map[string][]string

// LoadGeneration reads a "# N" generation-selector line followed by a region
// map from source, then loads the matching gen-N type file through load. The
// generation line must be the file's first line; everything after it is
// handed to ParseRegionMap unchanged.
func LoadGeneration(source io.Reader, load func(generation int) (io.ReadCloser, error)) (Generation, error) {
	buffered := newLineSource(source)
	line, err := buffered.firstLine()
	if err != nil {
		return Generation{}, err
	}

	generation, err := parseGenerationLine(line)
	if err != nil {
		return Generation{}, err
	}

	typeFile, err := load(generation)
	if err != nil {
		return Generation{}, fmt.Errorf("mapdata: loading generation %d type file: %w", generation, err)
	}
	defer typeFile.Close()

	interactions, err := parseTypeFile(typeFile)
	if err != nil {
		return Generation{}, err
	}

	regionMap, err := ParseRegionMap(buffered)
	if err != nil {
		return Generation{}, err
	}

	return Generation{Interactions: interactions, Map: regionMap}, nil
}

func parseGenerationLine(line string) (int, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(line), "#")
	generation, err := strconv.Atoi(strings.TrimSpace(trimmed))
	if err != nil || generation < 1 || generation > 9 {
		return 0, fmt.Errorf(
			"mapdata: could not choose a generation from the first line %q; "+
				"comment it as \"# 1\" through \"# 9\": %w", line, err)
	}
	return generation, nil
}

func parseTypeFile(r io.Reader) (pokelinks.InteractionTable, error) {
	var raw typeMultipliers
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("mapdata: decoding type file: %w", err)
	}

	table := make(pokelinks.InteractionTable, 0, len(raw))
	for typeName, buckets := range raw {
		resistances, err := parseBuckets(typeName, buckets)
		if err != nil {
			return nil, err
		}
		table = append(table, pokelinks.TypeInteraction{
			Name:        pokelinks.NewType(typeName),
			Resistances: resistances,
		})
	}
	return table, nil
}

func parseBuckets(typeName string, buckets map[string][]string) ([]pokelinks.Resistance, error) {
	resistances := make([]pokelinks.Resistance, 0)
	for bucket, attackers := range buckets {
		mult, ok := multiplierNames[bucket]
		if !ok {
			return nil, fmt.Errorf("mapdata: %q: unknown multiplier bucket %q", typeName, bucket)
		}
		for _, attacker := range attackers {
			resistances = append(resistances, pokelinks.Resistance{
				Type:       pokelinks.NewType(attacker),
				Multiplier: mult,
			})
		}
	}
	return resistances, nil
}

// lineSource lets a caller consume exactly one line of text and then hand
// the remainder of the stream to a second reader (ParseRegionMap's scanner),
// without buffering the whole file or losing any bytes in between.
type lineSource struct {
	r io.Reader
}

func newLineSource(r io.Reader) *lineSource { return &lineSource{r: r} }

func (l *lineSource) firstLine() (string, error) {
	var line []byte
	b := make([]byte, 1)
	for {
		n, err := l.r.Read(b)
		if n == 1 {
			if b[0] == '\n' {
				return string(line), nil
			}
			line = append(line, b[0])
		}
		if err != nil {
			if err == io.EOF {
				return string(line), nil
			}
			return "", fmt.Errorf("mapdata: reading generation line: %w", err)
		}
	}
}

func (l *lineSource) Read(p []byte) (int, error) { return l.r.Read(p) }
