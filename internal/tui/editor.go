// Package tui provides an interactive terminal editor for solver run files.
package tui

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hydrotools/gwsim/internal/config"
	"github.com/hydrotools/gwsim/internal/model"
	"github.com/hydrotools/gwsim/internal/solver"
)

type field struct {
	name string
	info string
	get  func(s *config.SolverConfig) string
	set  func(s *config.SolverConfig, v string) error
}

func intField(name, info string, ptr func(s *config.SolverConfig) *int) field {
	return field{
		name: name,
		info: info,
		get:  func(s *config.SolverConfig) string { return strconv.Itoa(*ptr(s)) },
		set: func(s *config.SolverConfig, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return err
			}
			*ptr(s) = n
			return nil
		},
	}
}

func floatField(name, info string, ptr func(s *config.SolverConfig) *float64) field {
	return field{
		name: name,
		info: info,
		get:  func(s *config.SolverConfig) string { return strconv.FormatFloat(*ptr(s), 'g', -1, 64) },
		set: func(s *config.SolverConfig, v string) error {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return err
			}
			*ptr(s) = f
			return nil
		},
	}
}

func stringField(name, info string, ptr func(s *config.SolverConfig) *string) field {
	return field{
		name: name,
		info: info,
		get:  func(s *config.SolverConfig) string { return *ptr(s) },
		set: func(s *config.SolverConfig, v string) error {
			*ptr(s) = v
			return nil
		},
	}
}

func boolField(name, info string, ptr func(s *config.SolverConfig) *bool) field {
	return field{
		name: name,
		info: info,
		get:  func(s *config.SolverConfig) string { return strconv.FormatBool(*ptr(s)) },
		set: func(s *config.SolverConfig, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return err
			}
			*ptr(s) = b
			return nil
		},
	}
}

var fields = []field{
	intField("mxiter", "outer iteration cap", func(s *config.SolverConfig) *int { return &s.MxIter }),
	intField("innerit", "inner iteration cap", func(s *config.SolverConfig) *int { return &s.InnerIt }),
	intField("isolver", "linear solver method", func(s *config.SolverConfig) *int { return &s.ISolver }),
	intField("npc", "preconditioner 0-3", func(s *config.SolverConfig) *int { return &s.NPC }),
	intField("iscl", "matrix scaling", func(s *config.SolverConfig) *int { return &s.IScl }),
	intField("iord", "matrix reordering", func(s *config.SolverConfig) *int { return &s.IOrd }),
	intField("ncoresm", "matrix cores", func(s *config.SolverConfig) *int { return &s.NCoresM }),
	intField("ncoresv", "vector cores", func(s *config.SolverConfig) *int { return &s.NCoresV }),
	floatField("damp", "steady-state damping", func(s *config.SolverConfig) *float64 { return &s.Damp }),
	floatField("dampt", "transient damping", func(s *config.SolverConfig) *float64 { return &s.DampT }),
	floatField("relax", "relaxation (npc > 0)", func(s *config.SolverConfig) *float64 { return &s.Relax }),
	floatField("ifill", "fill level (npc 3)", func(s *config.SolverConfig) *float64 { return &s.IFill }),
	floatField("droptol", "drop tolerance (npc 3)", func(s *config.SolverConfig) *float64 { return &s.DropTol }),
	floatField("hclose", "head-change closure", func(s *config.SolverConfig) *float64 { return &s.HClose }),
	floatField("rclose", "residual closure", func(s *config.SolverConfig) *float64 { return &s.RClose }),
	stringField("l2norm", "l2norm or rl2norm", func(s *config.SolverConfig) *string { return &s.L2Norm }),
	intField("iprpks", "print interval", func(s *config.SolverConfig) *int { return &s.IPrPKS }),
	intField("mutpks", "print verbosity 0-3", func(s *config.SolverConfig) *int { return &s.MutPKS }),
	boolField("mpi", "distributed run", func(s *config.SolverConfig) *bool { return &s.MPI }),
	intField("partopt", "partition option", func(s *config.SolverConfig) *int { return &s.PartOpt }),
	intField("novlapimpsol", "overlap solver", func(s *config.SolverConfig) *int { return &s.NOvlapImpSol }),
	intField("stenimpsol", "stencil solver", func(s *config.SolverConfig) *int { return &s.StenImpSol }),
	intField("verbose", "mpi verbosity", func(s *config.SolverConfig) *int { return &s.Verbose }),
}

type Editor struct {
	cfg  *config.Config
	path string

	cursor  int
	editing bool
	editBuf string
	status  string
}

func NewEditor(cfg *config.Config, path string) *Editor {
	return &Editor{cfg: cfg, path: path}
}

func (e Editor) Init() tea.Cmd { return nil }

func (e Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return e, nil
	}

	if e.editing {
		switch key.String() {
		case "enter":
			f := fields[e.cursor]
			if err := f.set(&e.cfg.Solver, strings.TrimSpace(e.editBuf)); err != nil {
				e.status = fmt.Sprintf("invalid value for %s", f.name)
			} else {
				e.status = ""
			}
			e.editing = false
			e.editBuf = ""
		case "escape":
			e.editing = false
			e.editBuf = ""
		case "backspace":
			if len(e.editBuf) > 0 {
				e.editBuf = e.editBuf[:len(e.editBuf)-1]
			}
		default:
			if len(key.String()) == 1 {
				e.editBuf += key.String()
			}
		}
		return e, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "escape":
		return e, tea.Quit
	case "up", "k":
		if e.cursor > 0 {
			e.cursor--
		}
	case "down", "j":
		if e.cursor < len(fields)-1 {
			e.cursor++
		}
	case "enter", " ":
		e.editing = true
		e.editBuf = fields[e.cursor].get(&e.cfg.Solver)
	case "w", "s":
		if err := config.Save(e.path, e.cfg); err != nil {
			e.status = fmt.Sprintf("save failed: %v", err)
		} else {
			e.status = "saved " + e.path
		}
	}
	return e, nil
}

func (e Editor) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + cyan.Render(e.path) + "  " + dim.Render("solver run file") + "\n")
	b.WriteString(dimmer.Render("  "+strings.Repeat("─", 44)) + "\n\n")

	for i, f := range fields {
		val := f.get(&e.cfg.Solver)
		if e.editing && i == e.cursor {
			val = e.editBuf + "▋"
		}
		line := fmt.Sprintf("%-14s %-10s", f.name, val)
		if i == e.cursor {
			b.WriteString("  " + cyan.Render("▸ ") + white.Render(line) + dimmer.Render(f.info) + "\n")
		} else {
			b.WriteString("    " + dim.Render(line) + dimmer.Render(f.info) + "\n")
		}
	}

	b.WriteString("\n")
	for _, finding := range e.cfg.SolverOptions().Validate() {
		b.WriteString("  " + yellow.Render("! "+finding) + "\n")
	}
	b.WriteString("  " + dim.Render(e.previewLine()) + "\n")
	if e.status != "" {
		b.WriteString("  " + green.Render(e.status) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(dim.Render("  ↑↓ select  enter edit  w save  q quit") + "\n")

	return b.String()
}

// previewLine reports how many control-file lines the current settings
// produce, by serializing against a scratch model.
func (e Editor) previewLine() string {
	m := model.New(e.cfg.Model.Name, model.WithVersion(model.Version(e.cfg.Model.Version)))
	p, err := solver.New(m, e.cfg.SolverOptions())
	if err != nil {
		return err.Error()
	}
	var buf bytes.Buffer
	if err := p.Write(&buf); err != nil {
		return err.Error()
	}
	n := strings.Count(buf.String(), "\n")
	return fmt.Sprintf("%d control-file lines", n)
}

// Run starts the editor for the run file at path, creating the config from
// defaults when the file does not exist yet.
func Run(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		cfg = config.DefaultConfig()
	}
	_, err = tea.NewProgram(NewEditor(cfg, path)).Run()
	return err
}
