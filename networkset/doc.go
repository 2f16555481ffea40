// SPDX-License-Identifier: MIT

// Package networkset provides NetworkSet, a homogeneous ensemble of
// multi-port networks measured or simulated under nominally identical
// conditions, and the statistics computed across it.
//
// 🚀 What is NetworkSet?
//
//	An ordered (but conceptually unordered) collection of *network.Network
//	values that share one port count and one frequency axis. Membership is
//	fixed at construction; every reduction or operator returns a new value.
//
// ✨ Key features
//
//   - Construction & validation: New, FromZip, GetSet (substring filter over
//     a keyed collection such as network.LoadAll output).
//   - Reductions: a static (Reduction × Attribute) table of Mean/Std over
//     s, s_re, s_im, s_mag, s_deg[_unwrap], s_rad[_unwrap], s_arcl[_unwrap]
//     and passivity, exposed through Reduce and named accessors (MeanSMag, ...).
//     MeanSDB/StdSDB average in magnitude space and convert to dB afterwards.
//   - Element-wise delegation: ElementWise plus named forms (Interpolate,
//     WriteTouchstone, PlotSDB, PlotSmith, PlotAttribute, Inv).
//   - Operators: CombinePairwise (set ⊗ set) and CombineWithScalar
//     (set ⊗ network) over Pow (cascade), FloorDiv (de-embed), Mul, Div, Add, Sub.
//   - Uncertainty: UncertaintyTriplet (mean, mean−n·std, mean+n·std),
//     UncertaintyBounds and the gonum/plot renderers built on it.
//   - Signature: per-member distance from the mean response as a heat map.
//   - Persistence: WriteUncertaintyXLSX, WriteUncertaintyTouchstone.
//
// ⚠️ Errors
//
// Every sentinel belongs to one category: ErrConfiguration (structural
// mismatch), ErrType (wrong kind of operand) or ErrValue (unsupported option).
// Match either level with errors.Is. Collaborator errors (Touchstone decoding,
// interpolation, plotting) are wrapped and otherwise surface unchanged.
//
// 🧵 Concurrency
//
// Synchronous, lock-free. The reduction and operator tables are package-level
// values built once at init and never mutated.
//
//	set, _ := networkset.New(members, networkset.WithName("dut"))
//	mean, _ := set.MeanSMag()
//	mean, lo, hi, _ := set.UncertaintyTriplet(network.SMag, networkset.DefaultDeviations)
package networkset
