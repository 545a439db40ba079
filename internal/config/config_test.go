package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hydrotools/gwsim/internal/solver"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model.Version != "mfusg" {
		t.Errorf("expected version mfusg, got %s", cfg.Model.Version)
	}
	if cfg.Solver.MxIter != 100 {
		t.Errorf("expected mxiter 100, got %d", cfg.Solver.MxIter)
	}
	if cfg.Solver.Unit != solver.DefaultUnit {
		t.Errorf("expected unit %d, got %d", solver.DefaultUnit, cfg.Solver.Unit)
	}
	if cfg.Solver.MPI {
		t.Error("mpi should default to false")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	content := `model:
  name: aquifer
solver:
  npc: 3
  droptol: 0.01
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Model.Name != "aquifer" {
		t.Errorf("expected name aquifer, got %s", cfg.Model.Name)
	}
	if cfg.Solver.NPC != 3 {
		t.Errorf("expected npc 3, got %d", cfg.Solver.NPC)
	}
	if cfg.Solver.DropTol != 0.01 {
		t.Errorf("expected droptol 0.01, got %f", cfg.Solver.DropTol)
	}
	// untouched keys keep their defaults
	if cfg.Solver.InnerIt != 50 {
		t.Errorf("expected default innerit 50, got %d", cfg.Solver.InnerIt)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	cfg := DefaultConfig()
	cfg.Model.Name = "aquifer"
	cfg.Solver.MxIter = 250

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Model.Name != "aquifer" {
		t.Errorf("expected name aquifer, got %s", loaded.Model.Name)
	}
	if loaded.Solver.MxIter != 250 {
		t.Errorf("expected mxiter 250, got %d", loaded.Solver.MxIter)
	}
}

func TestSolverOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Solver.NPC = 3
	cfg.Solver.IFill = 1
	cfg.Solver.FileName = "custom.pks"

	opts := cfg.SolverOptions()
	if opts.NPC != 3 {
		t.Errorf("expected npc 3, got %d", opts.NPC)
	}
	if opts.IFill != 1 {
		t.Errorf("expected ifill 1, got %f", opts.IFill)
	}
	if opts.FileName != "custom.pks" {
		t.Errorf("expected custom.pks, got %s", opts.FileName)
	}
}

func TestNewModel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Model.Name = "aquifer"
	cfg.Model.Version = "mf2005"

	m := cfg.NewModel()
	if m.Name() != "aquifer" {
		t.Errorf("expected name aquifer, got %s", m.Name())
	}
	if string(m.Version()) != "mf2005" {
		t.Errorf("expected version mf2005, got %s", m.Version())
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("ilu-droptol")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Solver.NPC != 3 {
		t.Errorf("expected npc 3, got %d", cfg.Solver.NPC)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Error("expected presets")
	}
}
