package solver

import (
	"fmt"
	"io"
	"os"

	"github.com/hydrotools/gwsim/internal/model"
)

// Load reattaches a PKS package from an existing control file. Parsing the
// parameter lines is not implemented: the file is opened and closed to
// verify the reference, a warning is printed, and a default-configured
// package is returned. When ext is supplied, the unit number and file name
// declared for the PKS tag are used instead of the defaults.
func Load(path string, m *model.Model, ext model.ExtUnitDict) (*PKS, error) {
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		f.Close()
	}
	return load(m, ext)
}

// LoadReader is Load for an already-open handle. The contents are not
// consumed; parsing is unimplemented.
func LoadReader(_ io.Reader, m *model.Model, ext model.ExtUnitDict) (*PKS, error) {
	return load(m, ext)
}

func load(m *model.Model, ext model.ExtUnitDict) (*PKS, error) {
	fmt.Fprintln(os.Stderr, "warning: pks load not completed, default pks package created")

	opts := DefaultOptions()
	if ext != nil {
		if unit, fname, ok := ext.ByFileType(FileType); ok {
			opts.Unit = unit
			opts.FileName = fname
		}
	}
	return New(m, opts)
}
