package config

// Presets are named starting points for the solver block. Model settings
// are left at their defaults; the preset only shapes the solver.
var Presets = map[string]SolverConfig{
	"serial": {
		MxIter: 100, InnerIt: 50, ISolver: 1, NPC: 2,
		NCoresM: 1, NCoresV: 1,
		Damp: 1.0, DampT: 1.0, Relax: 0.97,
		HClose: 1e-3, RClose: 1e-1,
		MutPKS: 3, NOvlapImpSol: 1, StenImpSol: 2,
		Extension: "pks", Unit: 27,
	},
	"ilu-droptol": {
		MxIter: 100, InnerIt: 50, ISolver: 1, NPC: 3,
		NCoresM: 1, NCoresV: 1,
		Damp: 1.0, DampT: 1.0, Relax: 0.97,
		IFill: 1, DropTol: 1e-2,
		HClose: 1e-3, RClose: 1e-1,
		MutPKS: 3, NOvlapImpSol: 1, StenImpSol: 2,
		Extension: "pks", Unit: 27,
	},
	"parallel": {
		MxIter: 100, InnerIt: 50, ISolver: 1, NPC: 2,
		NCoresM: 4, NCoresV: 4,
		Damp: 1.0, DampT: 1.0, Relax: 0.97,
		HClose: 1e-3, RClose: 1e-1,
		MutPKS: 3,
		MPI: true, PartOpt: 0, NOvlapImpSol: 1, StenImpSol: 2,
		Extension: "pks", Unit: 27,
	},
	"strict": {
		MxIter: 500, InnerIt: 100, ISolver: 1, NPC: 2,
		NCoresM: 1, NCoresV: 1,
		Damp: 0.8, DampT: 0.9, Relax: 0.97,
		HClose: 1e-5, RClose: 1e-3,
		L2Norm: "l2norm",
		MutPKS: 0, NOvlapImpSol: 1, StenImpSol: 2,
		Extension: "pks", Unit: 27,
	},
}

func GetPreset(name string) *Config {
	s, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Solver = s
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
