// SPDX-License-Identifier: MIT

package networkset

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"

	"github.com/katalvlaran/rfset/network"
)

// signaturePaletteSize is the number of colors of the signature heat map.
const signaturePaletteSize = 64

// SignatureOptions configures PlotSignature.
//   - VMax <= 0 ⇒ DefaultSignatureScale × mean deviation.
type SignatureOptions struct {
	M, N int
	VMax float64
}

// SignatureData returns |member_k − mean_s| for element (m, n):
// one row per member (input order), one column per frequency.
// Errors: Reduce/operator errors, network.ErrPortIndex.
// Complexity: O(M·F·N²).
func (ns *NetworkSet) SignatureData(m, n int) ([][]float64, error) {
	mean, err := ns.MeanS()
	if err != nil {
		return nil, fmt.Errorf("SignatureData: %w", err)
	}
	diff, err := ns.CombineWithScalar(Sub, mean)
	if err != nil {
		return nil, fmt.Errorf("SignatureData: %w", err)
	}

	rows := make([][]float64, diff.Len())
	for k, d := range diff.members {
		mag, err := d.View(network.SMag)
		if err != nil {
			return nil, fmt.Errorf("SignatureData: %w", err)
		}
		trace, err := mag.Port(m, n)
		if err != nil {
			return nil, fmt.Errorf("SignatureData: %w", err)
		}
		rows[k] = make([]float64, len(trace))
		for i, v := range trace {
			rows[k][i] = real(v)
		}
	}
	return rows, nil
}

// SignatureScale returns DefaultSignatureScale × the mean of all deviations,
// or 0 when there are none.
func SignatureScale(rows [][]float64) float64 {
	var all []float64
	for _, r := range rows {
		all = append(all, r...)
	}
	if len(all) == 0 {
		return 0
	}
	return DefaultSignatureScale * stat.Mean(all, nil)
}

// signatureGrid adapts SignatureData to plotter.GridXYZ:
// columns are frequencies, rows are members.
type signatureGrid struct {
	freq []float64
	rows [][]float64
}

func (g signatureGrid) Dims() (c, r int)   { return len(g.freq), len(g.rows) }
func (g signatureGrid) Z(c, r int) float64 { return g.rows[r][c] }
func (g signatureGrid) X(c int) float64    { return g.freq[c] }
func (g signatureGrid) Y(r int) float64    { return float64(r) }

// PlotSignature renders SignatureData as a heat map (member # × frequency)
// with the color range [0, vmax] and returns the vmax used.
// Values beyond vmax saturate at the top color.
func (ns *NetworkSet) PlotSignature(p *plot.Plot, opts SignatureOptions) (float64, error) {
	rows, err := ns.SignatureData(opts.M, opts.N)
	if err != nil {
		return 0, fmt.Errorf("PlotSignature: %w", err)
	}
	vmax := opts.VMax
	if vmax <= 0 {
		vmax = SignatureScale(rows)
	}
	if vmax <= 0 {
		vmax = 1 // identical members
	}

	pal := palette.Heat(signaturePaletteSize, 1)
	hm := plotter.NewHeatMap(signatureGrid{freq: ns.Frequency().Scaled(), rows: rows}, pal)
	hm.Min, hm.Max = 0, vmax
	colors := pal.Colors()
	hm.Underflow, hm.Overflow = colors[0], colors[len(colors)-1]
	p.Add(hm)

	p.Title.Text = "Distance From Mean"
	p.X.Label.Text = fmt.Sprintf("Frequency (%s)", ns.Frequency().Unit())
	p.Y.Label.Text = "Network #"
	return vmax, nil
}
