package solver

import "fmt"

// Validate reports non-fatal findings about the option set. Write never
// consults it: a finding here means a value will be silently dropped or
// ignored in the control file, not that writing fails.
func (o Options) Validate() []string {
	var findings []string

	if o.L2Norm != "" {
		if _, ok := normKeyword(o.L2Norm); !ok {
			findings = append(findings, fmt.Sprintf("norm token %q not recognized, no norm line will be written", o.L2Norm))
		}
	}
	if o.NPC < 0 || o.NPC > 3 {
		findings = append(findings, fmt.Sprintf("NPC %d outside the known preconditioner codes 0-3", o.NPC))
	}
	if o.NPC <= 0 && o.Relax != DefaultOptions().Relax {
		findings = append(findings, "RELAX is set but NPC <= 0, the value will not be written")
	}
	if o.NPC != 3 && (o.IFill != 0 || o.DropTol != 0) {
		findings = append(findings, "IFILL/DROPTOL are set but NPC != 3, the values will not be written")
	}
	if o.MutPKS < 0 || o.MutPKS > 3 {
		findings = append(findings, fmt.Sprintf("MUTPKS %d outside 0-3", o.MutPKS))
	}
	if o.MPI && (o.PartOpt == 1 || o.PartOpt == 2) {
		findings = append(findings, fmt.Sprintf("PARTOPT %d partition data is not implemented, none will be written", o.PartOpt))
	}

	return findings
}
