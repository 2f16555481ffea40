// SPDX-License-Identifier: MIT

package networkset

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/rfset/mathfn"
	"github.com/katalvlaran/rfset/network"
)

// uncertaintyHeader is the first row of every WriteUncertaintyXLSX sheet.
var uncertaintyHeader = []string{"frequency_hz", "mean", "lower", "upper"}

// fields are the structured log fields identifying the set and attribute.
func (ns *NetworkSet) fields(attr network.Attribute) logrus.Fields {
	return logrus.Fields{"set": ns.name, "attribute": attr.String()}
}

// baseName is the file stem of exported artifacts.
func (ns *NetworkSet) baseName() string {
	if ns.name == "" {
		return "networkset"
	}
	return ns.name
}

// WriteUncertaintyXLSX saves the uncertainty triplet of attr as a workbook.
// Implementation:
//   - Stage 1: UncertaintyTriplet(attr, nDeviations).
//   - Stage 2: one sheet per element named "Smn" (1-based), header
//     frequency_hz | mean | lower | upper, one row per frequency (real parts).
//
// Errors: triplet errors, excelize errors.
func (ns *NetworkSet) WriteUncertaintyXLSX(path string, attr network.Attribute, nDeviations float64) error {
	mean, lower, upper, err := ns.UncertaintyTriplet(attr, nDeviations)
	if err != nil {
		return fmt.Errorf("WriteUncertaintyXLSX: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	freq := ns.Frequency().Points()
	ports := ns.NumPorts()
	traces := [3]*network.Param{mean.S(), lower.S(), upper.S()}
	for i := 0; i < ports; i++ {
		for j := 0; j < ports; j++ {
			sheet := fmt.Sprintf("S%d%d", i+1, j+1)
			if i == 0 && j == 0 {
				err = f.SetSheetName(f.GetSheetName(0), sheet)
			} else {
				_, err = f.NewSheet(sheet)
			}
			if err != nil {
				return fmt.Errorf("WriteUncertaintyXLSX: %w", err)
			}
			if err := writeRow(f, sheet, 1, toAny(uncertaintyHeader)); err != nil {
				return fmt.Errorf("WriteUncertaintyXLSX: %w", err)
			}
			var columns [len(traces)][]float64
			for c, t := range traces {
				trace, err := t.Port(i, j)
				if err != nil {
					return fmt.Errorf("WriteUncertaintyXLSX: %w", err)
				}
				columns[c] = mathfn.Real(trace)
			}
			for k, hz := range freq {
				row := []any{hz}
				for _, col := range columns {
					row = append(row, col[k])
				}
				if err := writeRow(f, sheet, k+2, row); err != nil {
					return fmt.Errorf("WriteUncertaintyXLSX: %w", err)
				}
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("WriteUncertaintyXLSX: %w", err)
	}
	ns.logger.WithFields(ns.fields(attr)).WithField("path", path).Debug("uncertainty workbook written")
	return nil
}

// writeRow writes values into consecutive cells starting at column A of row.
func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for c, v := range values {
		cell, err := excelize.CoordinatesToCellName(c+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func toAny(s []string) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}

// WriteUncertaintyTouchstone saves the uncertainty triplet of attr as three
// Touchstone files <name>_mean, <name>_lower, <name>_upper in dir and returns
// their paths in that order. Scalar attributes are stored in the real part.
func (ns *NetworkSet) WriteUncertaintyTouchstone(dir string, attr network.Attribute, nDeviations float64) ([]string, error) {
	mean, lower, upper, err := ns.UncertaintyTriplet(attr, nDeviations)
	if err != nil {
		return nil, fmt.Errorf("WriteUncertaintyTouchstone: %w", err)
	}

	base := ns.baseName()
	parts := []struct {
		suffix string
		net    *network.Network
	}{
		{"_mean", mean},
		{"_lower", lower},
		{"_upper", upper},
	}
	paths := make([]string, 0, len(parts))
	for _, part := range parts {
		part.net.Rename(base + part.suffix)
		path, err := part.net.WriteFile(dir)
		if err != nil {
			return nil, fmt.Errorf("WriteUncertaintyTouchstone: %w", err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
