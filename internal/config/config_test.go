package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/agl-alexglopez/pokelinks"
)

func TestDefaultMatchesSolverDefaultMaxOutput(t *testing.T) {
	cfg := Default()
	if cfg.DefenseDepth != 6 || cfg.AttackDepth != 24 {
		t.Errorf("unexpected default depths: %+v", cfg)
	}
	if cfg.MaxOutput != pokelinks.DefaultMaxOutput {
		t.Errorf("expected MaxOutput to track pokelinks.DefaultMaxOutput, got %d", cfg.MaxOutput)
	}
}

func TestLoadWithNoPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverlaysYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pokelinks.yaml")
	yaml := "defense_depth: 3\nmax_output: 10\ndebug: true\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefenseDepth != 3 {
		t.Errorf("expected defense_depth 3, got %d", cfg.DefenseDepth)
	}
	if cfg.MaxOutput != 10 {
		t.Errorf("expected max_output 10, got %d", cfg.MaxOutput)
	}
	if !cfg.Debug {
		t.Errorf("expected debug true")
	}
	if cfg.AttackDepth != 24 {
		t.Errorf("expected attack_depth to remain at its default, got %d", cfg.AttackDepth)
	}
}

func TestLoadOverlaysEnvironmentOverYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pokelinks.yaml")
	if err := os.WriteFile(path, []byte("defense_depth: 3\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("POKELINKS_DEFENSE_DEPTH", "9")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefenseDepth != 9 {
		t.Errorf("expected environment to override the file, got %d", cfg.DefenseDepth)
	}
}
