// Package rfset is a toolkit for statistics over ensembles of multi-port
// RF networks: the same device measured many times, or many copies of one
// design, each described by its scattering parameters.
//
// 🚀 What is rfset?
//
//	A small stack of focused packages:
//		• frequency  — monotonic frequency axes with display units
//		• mathfn     — dB, degree and phase-unwrapping kernels over slices
//		• touchstone — .sNp reader and writer (MA / DB / RI)
//		• network    — one n-port: S(f), views (s_db, s_deg_unwrap, ...),
//		               cascade, de-embedding, interpolation, gonum/plot traces
//		• networkset — the ensemble: mean/std per attribute, set operators,
//		               uncertainty bounds, signature heat maps, xlsx export
//
// ✨ Why rfset?
//
//   - Explicit errors – every sentinel is matchable with errors.Is
//   - Immutable results – reductions and operators return new values
//   - gonum underneath – stat for reductions, interp for resampling,
//     plot for every figure
//
// Quick example:
//
//	nets, _ := network.LoadAll("measurements/")
//	set, _ := networkset.GetSet(nets, "dut_")
//	mean, lo, hi, _ := set.UncertaintyTriplet(network.SDB, 3)
//
// A runnable Monte-Carlo study lives in examples/uncertainty.
//
//	go get github.com/katalvlaran/rfset
package rfset
