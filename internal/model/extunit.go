package model

import "strings"

// ExtFile is one entry of the external-unit dictionary: a file reference
// previously declared to the model, keyed by I/O unit number.
type ExtFile struct {
	FileType string
	FileName string
}

// ExtUnitDict maps I/O unit numbers to declared package files. Packages
// reattaching to an existing file reference look their unit up here by
// file-type tag.
type ExtUnitDict map[int]ExtFile

// ByFileType returns the unit number and file name declared for the given
// file-type tag. The match is case-insensitive.
func (d ExtUnitDict) ByFileType(ftype string) (int, string, bool) {
	for unit, f := range d {
		if strings.EqualFold(f.FileType, ftype) {
			return unit, f.FileName, true
		}
	}
	return 0, "", false
}
