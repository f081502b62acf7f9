// Command pokelinks answers Pokémon type-coverage questions over a region's
// gyms: given a region map and a subset of its gyms, it finds exact or
// overlapping covers of the attacking or defending types those gyms bring.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/agl-alexglopez/pokelinks"
	"github.com/agl-alexglopez/pokelinks/internal/config"
	"github.com/agl-alexglopez/pokelinks/internal/mapdata"
	"github.com/agl-alexglopez/pokelinks/internal/report"
)

const allMapsFilePath = "data/json/all-maps.json"

// cli's single Args slice mirrors spec.md §6.4: the arguments may appear in
// any order, so kong collects them as one positional list and main
// classifies each token itself rather than binding named flags to them.
type cli struct {
	Args []string `arg:"" optional:"" help:"region path, gym selectors (G1..Gn, E4), A|D, E|O, color|plain, h"`
}

type request struct {
	regionPath string
	gyms       map[string]bool
	attack     bool
	overlap    bool
	colorMode  report.Mode
	help       bool
}

func parseRequest(args []string) (request, error) {
	req := request{gyms: map[string]bool{}, colorMode: report.Auto}
	for _, arg := range args {
		switch {
		case arg == "h":
			req.help = true
		case arg == "A":
			req.attack = true
		case arg == "D":
			req.attack = false
		case arg == "E":
			req.overlap = false
		case arg == "O":
			req.overlap = true
		case arg == "color":
			req.colorMode = report.Color
		case arg == "plain":
			req.colorMode = report.Plain
		case arg == "E4" || isGymSelector(arg):
			req.gyms[arg] = true
		case strings.Contains(arg, "/"):
			if req.regionPath != "" {
				return request{}, fmt.Errorf("pokelinks: multiple region paths given: %q and %q", req.regionPath, arg)
			}
			req.regionPath = arg
		default:
			return request{}, fmt.Errorf("pokelinks: unknown argument %q", arg)
		}
	}
	return req, nil
}

// loadGenerationTypeFile opens the on-disk type-interaction file for a
// generation, following the original tool's data/json/gen-N-types.json
// layout relative to the current working directory.
func loadGenerationTypeFile(generation int) (io.ReadCloser, error) {
	path := fmt.Sprintf("data/json/gen-%d-types.json", generation)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pokelinks: opening type file for generation %d: %w", generation, err)
	}
	return f, nil
}

func isGymSelector(arg string) bool {
	if len(arg) < 2 || arg[0] != 'G' {
		return false
	}
	for _, r := range arg[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	var c cli
	parser, err := kong.New(&c, kong.Name("pokelinks"),
		kong.Description("Pokémon type-coverage Dancing Links solver"))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	req, err := parseRequest(c.Args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if req.help {
		fmt.Fprintln(stdout, "usage: pokelinks <region-path> [G1..Gn|E4 ...] [A|D] [E|O] [color|plain] [h]")
		return 0
	}
	if req.regionPath == "" {
		fmt.Fprintln(stderr, "pokelinks: a region path is required")
		return 1
	}

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if err := solveAndReport(req, cfg, stdout); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func solveAndReport(req request, cfg config.Config, stdout *os.File) error {
	f, err := os.Open(req.regionPath)
	if err != nil {
		return fmt.Errorf("pokelinks: opening region file: %w", err)
	}
	defer f.Close()

	gen, err := mapdata.LoadGeneration(f, loadGenerationTypeFile)
	if err != nil {
		return err
	}

	m, err := buildMatrix(req, gen.Interactions)
	if err != nil {
		return err
	}

	depth := cfg.DefenseDepth
	if req.attack {
		depth = cfg.AttackDepth
	}
	m.SetMaxOutput(cfg.MaxOutput)

	var solutions []pokelinks.Solution
	if req.overlap {
		solutions, _ = m.OverlappingCoverages(depth)
	} else {
		solutions, _ = m.ExactCoverages(depth)
	}

	printer := report.NewPrinter(stdout, req.colorMode)
	label := "DEFENSE"
	if req.attack {
		label = "ATTACK"
	}
	mode := "exact"
	if req.overlap {
		mode = "overlapping"
	}
	printer.Solutions(label, mode, solutions)
	return nil
}

// buildMatrix builds the defense or attack matrix the request asks for. When
// gym selectors were given, it narrows the interaction table to the gyms'
// own attack/defense types first, loading data/json/all-maps.json and
// keying into it by the region file's base name (without extension).
func buildMatrix(req request, interactions pokelinks.InteractionTable) (*pokelinks.Matrix, error) {
	if len(req.gyms) == 0 {
		coverage := pokelinks.Defense
		if req.attack {
			coverage = pokelinks.Attack
		}
		m, err := pokelinks.NewMatrix(interactions, coverage)
		if err != nil {
			return nil, fmt.Errorf("pokelinks: building matrix: %w", err)
		}
		return m, nil
	}

	allMapsFile, err := os.Open(allMapsFilePath)
	if err != nil {
		return nil, fmt.Errorf("pokelinks: opening %s for gym selection: %w", allMapsFilePath, err)
	}
	defer allMapsFile.Close()

	allMaps, err := mapdata.LoadAllMaps(allMapsFile)
	if err != nil {
		return nil, err
	}

	mapName := strings.TrimSuffix(filepath.Base(req.regionPath), filepath.Ext(req.regionPath))

	if !req.attack {
		attackTypes, err := allMaps.SelectedGymAttacks(mapName, req.gyms)
		if err != nil {
			return nil, err
		}
		m, err := pokelinks.NewDefenseMatrixForAttackTypes(interactions, attackTypes)
		if err != nil {
			return nil, fmt.Errorf("pokelinks: building matrix: %w", err)
		}
		return m, nil
	}

	defenseTypes, err := allMaps.SelectedGymDefenses(mapName, req.gyms)
	if err != nil {
		return nil, err
	}
	keep := make(map[pokelinks.Type]bool, len(defenseTypes))
	for _, t := range defenseTypes {
		keep[t] = true
	}
	filtered := make(pokelinks.InteractionTable, 0, len(defenseTypes))
	for _, entry := range interactions {
		if keep[entry.Name] {
			filtered = append(filtered, entry)
		}
	}
	m, err := pokelinks.NewMatrix(filtered, pokelinks.Attack)
	if err != nil {
		return nil, fmt.Errorf("pokelinks: building matrix: %w", err)
	}
	return m, nil
}
