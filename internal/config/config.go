package config

import (
	"os"

	"github.com/hydrotools/gwsim/internal/model"
	"github.com/hydrotools/gwsim/internal/solver"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Model  ModelConfig  `yaml:"model"`
	Solver SolverConfig `yaml:"solver"`
}

type ModelConfig struct {
	Name      string `yaml:"name"`
	Version   string `yaml:"version"`
	Workspace string `yaml:"workspace"`
}

type SolverConfig struct {
	MxIter  int `yaml:"mxiter"`
	InnerIt int `yaml:"innerit"`
	ISolver int `yaml:"isolver"`
	NPC     int `yaml:"npc"`
	IScl    int `yaml:"iscl"`
	IOrd    int `yaml:"iord"`

	NCoresM int `yaml:"ncoresm"`
	NCoresV int `yaml:"ncoresv"`

	Damp    float64 `yaml:"damp"`
	DampT   float64 `yaml:"dampt"`
	Relax   float64 `yaml:"relax"`
	IFill   float64 `yaml:"ifill"`
	DropTol float64 `yaml:"droptol"`

	HClose float64 `yaml:"hclose"`
	RClose float64 `yaml:"rclose"`

	L2Norm string `yaml:"l2norm"`

	IPrPKS int `yaml:"iprpks"`
	MutPKS int `yaml:"mutpks"`

	MPI          bool `yaml:"mpi"`
	PartOpt      int  `yaml:"partopt"`
	NOvlapImpSol int  `yaml:"novlapimpsol"`
	StenImpSol   int  `yaml:"stenimpsol"`
	Verbose      int  `yaml:"verbose"`

	Extension string `yaml:"extension"`
	Unit      int    `yaml:"unit"`
	FileName  string `yaml:"filename"`
}

func DefaultConfig() *Config {
	def := solver.DefaultOptions()
	return &Config{
		Model: ModelConfig{
			Name:      "model",
			Version:   string(model.MFUSG),
			Workspace: ".",
		},
		Solver: SolverConfig{
			MxIter:       def.MxIter,
			InnerIt:      def.InnerIt,
			ISolver:      def.ISolver,
			NPC:          def.NPC,
			IScl:         def.IScl,
			IOrd:         def.IOrd,
			NCoresM:      def.NCoresM,
			NCoresV:      def.NCoresV,
			Damp:         def.Damp,
			DampT:        def.DampT,
			Relax:        def.Relax,
			IFill:        def.IFill,
			DropTol:      def.DropTol,
			HClose:       def.HClose,
			RClose:       def.RClose,
			L2Norm:       def.L2Norm,
			IPrPKS:       def.IPrPKS,
			MutPKS:       def.MutPKS,
			MPI:          def.MPI,
			PartOpt:      def.PartOpt,
			NOvlapImpSol: def.NOvlapImpSol,
			StenImpSol:   def.StenImpSol,
			Verbose:      def.Verbose,
			Extension:    solver.DefaultExtension,
			Unit:         solver.DefaultUnit,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// NewModel builds the host model described by the config.
func (c *Config) NewModel() *model.Model {
	return model.New(c.Model.Name,
		model.WithVersion(model.Version(c.Model.Version)),
		model.WithWorkspace(c.Model.Workspace),
	)
}

// SolverOptions maps the config's solver block to solver options.
func (c *Config) SolverOptions() solver.Options {
	s := c.Solver
	return solver.Options{
		MxIter:       s.MxIter,
		InnerIt:      s.InnerIt,
		ISolver:      s.ISolver,
		NPC:          s.NPC,
		IScl:         s.IScl,
		IOrd:         s.IOrd,
		NCoresM:      s.NCoresM,
		NCoresV:      s.NCoresV,
		Damp:         s.Damp,
		DampT:        s.DampT,
		Relax:        s.Relax,
		IFill:        s.IFill,
		DropTol:      s.DropTol,
		HClose:       s.HClose,
		RClose:       s.RClose,
		L2Norm:       s.L2Norm,
		IPrPKS:       s.IPrPKS,
		MutPKS:       s.MutPKS,
		MPI:          s.MPI,
		PartOpt:      s.PartOpt,
		NOvlapImpSol: s.NOvlapImpSol,
		StenImpSol:   s.StenImpSol,
		Verbose:      s.Verbose,
		Extension:    s.Extension,
		Unit:         s.Unit,
		FileName:     s.FileName,
	}
}
