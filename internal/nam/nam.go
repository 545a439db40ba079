// Package nam reads model name files: the declarations of package file
// types, unit numbers and file names that make up a model's external-unit
// dictionary.
package nam

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hydrotools/gwsim/internal/model"
)

// Parse reads name-file entries from r. Each entry is one line of the form
//
//	FTYPE NUNIT FNAME
//
// Blank lines and lines starting with # are skipped. Malformed lines are
// skipped rather than rejected, matching how existing model decks are
// handled in practice.
func Parse(r io.Reader) (model.ExtUnitDict, error) {
	dict := make(model.ExtUnitDict)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}

		unit, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}

		dict[unit] = model.ExtFile{
			FileType: strings.ToUpper(fields[0]),
			FileName: fields[2],
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read name file: %w", err)
	}

	return dict, nil
}

// ParseFile reads the name file at path.
func ParseFile(path string) (model.ExtUnitDict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
