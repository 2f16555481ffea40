// SPDX-License-Identifier: MIT

// Package networkset: named accessors of the reduction table.
// Each accessor is Reduce with a fixed (Reduction, Attribute) pair; the
// method name follows PropertyName in CamelCase (mean_s_mag → MeanSMag).

package networkset

import "github.com/katalvlaran/rfset/network"

// MeanS is mean_s: the mean of the complex s-parameters.
func (ns *NetworkSet) MeanS() (*network.Network, error) { return ns.Reduce(Mean, network.S) }

// StdS is std_s: the standard deviation of the complex s-parameters.
func (ns *NetworkSet) StdS() (*network.Network, error) { return ns.Reduce(Std, network.S) }

// MeanSRe is mean_s_re: the mean of the real part.
func (ns *NetworkSet) MeanSRe() (*network.Network, error) { return ns.Reduce(Mean, network.SRe) }

// StdSRe is std_s_re: the standard deviation of the real part.
func (ns *NetworkSet) StdSRe() (*network.Network, error) { return ns.Reduce(Std, network.SRe) }

// MeanSIm is mean_s_im: the mean of the imaginary part.
func (ns *NetworkSet) MeanSIm() (*network.Network, error) { return ns.Reduce(Mean, network.SIm) }

// StdSIm is std_s_im: the standard deviation of the imaginary part.
func (ns *NetworkSet) StdSIm() (*network.Network, error) { return ns.Reduce(Std, network.SIm) }

// MeanSMag is mean_s_mag: the mean of the linear magnitude.
func (ns *NetworkSet) MeanSMag() (*network.Network, error) { return ns.Reduce(Mean, network.SMag) }

// StdSMag is std_s_mag: the standard deviation of the linear magnitude.
func (ns *NetworkSet) StdSMag() (*network.Network, error) { return ns.Reduce(Std, network.SMag) }

// MeanSDeg is mean_s_deg: the mean of the wrapped phase in degrees.
func (ns *NetworkSet) MeanSDeg() (*network.Network, error) { return ns.Reduce(Mean, network.SDeg) }

// StdSDeg is std_s_deg: the standard deviation of the wrapped phase in degrees.
func (ns *NetworkSet) StdSDeg() (*network.Network, error) { return ns.Reduce(Std, network.SDeg) }

// MeanSDegUnwrap is mean_s_deg_unwrap: the mean of the unwrapped phase in degrees.
func (ns *NetworkSet) MeanSDegUnwrap() (*network.Network, error) { return ns.Reduce(Mean, network.SDegUnwrap) }

// StdSDegUnwrap is std_s_deg_unwrap: the standard deviation of the unwrapped phase in degrees.
func (ns *NetworkSet) StdSDegUnwrap() (*network.Network, error) { return ns.Reduce(Std, network.SDegUnwrap) }

// MeanSRad is mean_s_rad: the mean of the wrapped phase in radians.
func (ns *NetworkSet) MeanSRad() (*network.Network, error) { return ns.Reduce(Mean, network.SRad) }

// StdSRad is std_s_rad: the standard deviation of the wrapped phase in radians.
func (ns *NetworkSet) StdSRad() (*network.Network, error) { return ns.Reduce(Std, network.SRad) }

// MeanSRadUnwrap is mean_s_rad_unwrap: the mean of the unwrapped phase in radians.
func (ns *NetworkSet) MeanSRadUnwrap() (*network.Network, error) { return ns.Reduce(Mean, network.SRadUnwrap) }

// StdSRadUnwrap is std_s_rad_unwrap: the standard deviation of the unwrapped phase in radians.
func (ns *NetworkSet) StdSRadUnwrap() (*network.Network, error) { return ns.Reduce(Std, network.SRadUnwrap) }

// MeanSArcl is mean_s_arcl: the mean of the arc length.
func (ns *NetworkSet) MeanSArcl() (*network.Network, error) { return ns.Reduce(Mean, network.SArcl) }

// StdSArcl is std_s_arcl: the standard deviation of the arc length.
func (ns *NetworkSet) StdSArcl() (*network.Network, error) { return ns.Reduce(Std, network.SArcl) }

// MeanSArclUnwrap is mean_s_arcl_unwrap: the mean of the arc length with unwrapped phase.
func (ns *NetworkSet) MeanSArclUnwrap() (*network.Network, error) { return ns.Reduce(Mean, network.SArclUnwrap) }

// StdSArclUnwrap is std_s_arcl_unwrap: the standard deviation of the arc length with unwrapped phase.
func (ns *NetworkSet) StdSArclUnwrap() (*network.Network, error) { return ns.Reduce(Std, network.SArclUnwrap) }

// MeanPassivity is mean_passivity: the mean of the passivity matrix.
func (ns *NetworkSet) MeanPassivity() (*network.Network, error) { return ns.Reduce(Mean, network.Passivity) }

// StdPassivity is std_passivity: the standard deviation of the passivity matrix.
func (ns *NetworkSet) StdPassivity() (*network.Network, error) { return ns.Reduce(Std, network.Passivity) }

// MeanSDB is mean_s_db: 20·log10(mean(|s|)).
// The mean is taken in magnitude space first; this is NOT mean(s_db).
func (ns *NetworkSet) MeanSDB() (*network.Network, error) { return ns.Reduce(Mean, network.SDB) }

// StdSDB is std_s_db: 20·log10(std(|s|)), with the same composition order as MeanSDB.
func (ns *NetworkSet) StdSDB() (*network.Network, error) { return ns.Reduce(Std, network.SDB) }
