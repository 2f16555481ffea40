// SPDX-License-Identifier: MIT

// Package network models one multi-port microwave device response: a complex
// scattering-parameter (s-parameter) matrix per frequency sample.
//
// 🚀 What is provided
//
//	Param     — row-major complex tensor F×N×N with safe accessors.
//	Network   — frequency axis + s-parameters + name + reference impedance.
//	Attribute — enumerated scalar views of s (re, im, mag, dB, phase in deg/rad,
//	            wrapped and unwrapped, arc-length, passivity) via Network.View.
//	Operators — element-wise Add/Sub/Mul/Div, Cascade (2-port connection),
//	            Deembed and Inv.
//	I/O       — Touchstone read/write, LoadAll over a directory.
//	Plotting  — per-port curves and Smith chart traces on a gonum *plot.Plot.
//
// Views never reach into the network by attribute name: callers pick an
// Attribute constant and View returns a fresh Param with the derived values
// stored in the real part (imaginary part zero) for scalar views.
//
//	n, _ := network.ReadFile("dut.s2p")
//	mag, _ := n.View(network.SMag)
//	s21, _ := mag.Port(1, 0)
package network
