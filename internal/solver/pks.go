package solver

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hydrotools/gwsim/internal/model"
)

const (
	// FileType is the three-letter tag identifying the solver control file
	// in name files and external-unit dictionaries.
	FileType = "PKS"

	// DefaultUnit is the I/O unit assigned when the caller does not
	// supply one.
	DefaultUnit = 27

	// DefaultExtension is the control-file name extension.
	DefaultExtension = "pks"
)

// Options holds the solver tuning parameters. Zero values for Unit,
// Extension and FileName select the package defaults; everything else is
// written as given, subject to the conditional rules in Write.
type Options struct {
	MxIter  int // outer iteration cap
	InnerIt int // inner iteration cap

	ISolver int // linear solver method
	NPC     int // preconditioner, gates Relax/IFill/DropTol
	IScl    int // matrix scaling
	IOrd    int // matrix reordering

	NCoresM int // cores for the matrix subsystem
	NCoresV int // cores for the vector subsystem

	Damp    float64 // steady-state damping
	DampT   float64 // transient damping
	Relax   float64 // relaxation, meaningful when NPC > 0
	IFill   float64 // fill level, meaningful when NPC == 3
	DropTol float64 // drop tolerance, meaningful when NPC == 3

	HClose float64 // head-change closure criterion
	RClose float64 // residual closure criterion

	L2Norm string // "l2norm"/"1" or "rl2norm"/"2"; empty omits the line

	IPrPKS int // print interval
	MutPKS int // 0..3, print verbosity

	MPI          bool // emit the distributed-partitioning block
	PartOpt      int
	NOvlapImpSol int
	StenImpSol   int
	Verbose      int

	// PartData carries partition data for PartOpt 1 or 2. The solver
	// input format for it is not defined, so it is never serialized.
	PartData []float64

	Extension string
	Unit      int
	FileName  string
}

func DefaultOptions() Options {
	return Options{
		MxIter:       100,
		InnerIt:      50,
		ISolver:      1,
		NPC:          2,
		IScl:         0,
		IOrd:         0,
		NCoresM:      1,
		NCoresV:      1,
		Damp:         1.0,
		DampT:        1.0,
		Relax:        0.97,
		IFill:        0,
		DropTol:      0.0,
		HClose:       1e-3,
		RClose:       1e-1,
		IPrPKS:       0,
		MutPKS:       3,
		PartOpt:      0,
		NOvlapImpSol: 1,
		StenImpSol:   2,
		Verbose:      0,
	}
}

// PKS is the parallel Krylov solver package for a groundwater model. It
// holds the control parameters and writes them as the solver's input file.
type PKS struct {
	Options

	parent  *model.Model
	heading string
	fname   string
	unit    int
}

// New builds a PKS package from opts and registers it with m. It fails
// before any side effect if the model's solver family cannot use PKS.
func New(m *model.Model, opts Options) (*PKS, error) {
	if v := m.Version(); v == model.MF2K || v == model.MFNWT {
		return nil, fmt.Errorf("cannot use %s package with model version %s", FileType, v)
	}

	if opts.Extension == "" {
		opts.Extension = DefaultExtension
	}
	if opts.Unit == 0 {
		opts.Unit = DefaultUnit
	}
	if opts.FileName == "" {
		opts.FileName = m.DefaultFileName(opts.Extension)
	}

	p := &PKS{
		Options: opts,
		parent:  m,
		fname:   opts.FileName,
		unit:    opts.Unit,
	}
	p.heading = m.Heading(p)

	if err := m.Add(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *PKS) Name() string     { return FileType }
func (p *PKS) FileType() string { return FileType }
func (p *PKS) UnitNumber() int  { return p.unit }
func (p *PKS) FileName() string { return p.fname }
func (p *PKS) Heading() string  { return p.heading }

// Write emits the control file to w: one directive per line, fixed order,
// conditional lines gated on the preconditioner, core counts, norm token
// and MPI flag, terminated by END.
func (p *PKS) Write(w io.Writer) error {
	fmt.Fprintf(w, "%s\n", p.heading)
	fmt.Fprintf(w, "MXITER %d\n", p.MxIter)
	fmt.Fprintf(w, "INNERIT %d\n", p.InnerIt)
	fmt.Fprintf(w, "ISOLVER %d\n", p.ISolver)
	fmt.Fprintf(w, "NPC %d\n", p.NPC)
	fmt.Fprintf(w, "ISCL %d\n", p.IScl)
	fmt.Fprintf(w, "IORD %d\n", p.IOrd)
	if p.NCoresM > 1 {
		fmt.Fprintf(w, "NCORESM %d\n", p.NCoresM)
	}
	if p.NCoresV > 1 {
		fmt.Fprintf(w, "NCORESV %d\n", p.NCoresV)
	}
	fmt.Fprintf(w, "DAMP %s\n", ftoa(p.Damp))
	fmt.Fprintf(w, "DAMPT %s\n", ftoa(p.DampT))
	if p.NPC > 0 {
		fmt.Fprintf(w, "RELAX %s\n", ftoa(p.Relax))
	}
	if p.NPC == 3 {
		fmt.Fprintf(w, "IFILL %s\n", ftoa(p.IFill))
		fmt.Fprintf(w, "DROPTOL %s\n", ftoa(p.DropTol))
	}
	fmt.Fprintf(w, "HCLOSEPKS %s\n", ftoa(p.HClose))
	fmt.Fprintf(w, "RCLOSEPKS %s\n", ftoa(p.RClose))
	if kw, ok := normKeyword(p.L2Norm); ok {
		fmt.Fprintf(w, "%s\n", kw)
	}
	fmt.Fprintf(w, "IPRPKS %d\n", p.IPrPKS)
	fmt.Fprintf(w, "MUTPKS %d\n", p.MutPKS)
	if p.MPI {
		fmt.Fprintf(w, "PARTOPT %d\n", p.PartOpt)
		fmt.Fprintf(w, "NOVLAPIMPSOL %d\n", p.NOvlapImpSol)
		fmt.Fprintf(w, "STENIMPSOL %d\n", p.StenImpSol)
		fmt.Fprintf(w, "VERBOSE %d\n", p.Verbose)
		// PARTOPT 1/2 would carry partition data here; its input
		// format is undefined, so nothing is written.
	}
	if _, err := fmt.Fprintf(w, "END\n"); err != nil {
		return err
	}
	return nil
}

// WriteFile writes the control file at the package's path in the model
// workspace.
func (p *PKS) WriteFile() error {
	f, err := os.Create(p.parent.Path(p.fname))
	if err != nil {
		return err
	}
	defer f.Close()
	return p.Write(f)
}

// normKeyword maps a norm-selection token to its control-file keyword.
// Unrecognized tokens report false and produce no output line.
func normKeyword(tok string) (string, bool) {
	switch strings.ToLower(tok) {
	case "l2norm", "1":
		return "L2NORM", true
	case "rl2norm", "2":
		return "RELATIVE-L2NORM", true
	default:
		return "", false
	}
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
