// Package solver models the PKS solver package of a groundwater model:
// the control parameters for the external parallel Krylov solver and their
// line-oriented input file.
//
// A package is constructed once per model and registered with it:
//
//	m := model.New("aquifer", model.WithVersion(model.MFUSG))
//	pks, err := solver.New(m, solver.DefaultOptions())
//
// Fields may be adjusted on the returned package before the model's
// WriteInput pass serializes them. Several directives are conditional on
// other parameters; see [PKS.Write].
package solver
