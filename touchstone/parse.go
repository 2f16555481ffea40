// SPDX-License-Identifier: MIT

package touchstone

import (
	"bufio"
	"fmt"
	"io"
	"math/cmplx"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/rfset/frequency"
	"github.com/katalvlaran/rfset/mathfn"
)

var extPattern = regexp.MustCompile(`(?i)^\.s(\d+)p$`)

// PortsFromName extracts N from a file name ending in .sNp (case-insensitive).
func PortsFromName(name string) (int, error) {
	m := extPattern.FindStringSubmatch(filepath.Ext(name))
	if m == nil {
		return 0, fmt.Errorf("PortsFromName(%q): %w", name, ErrBadExtension)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("PortsFromName(%q): %w", name, ErrBadExtension)
	}
	return n, nil
}

// Parse decodes a Touchstone v1 stream holding an nports-port network.
// Implementation:
//   - Stage 1: scan lines; strip comments; collect the first comment block.
//   - Stage 2: decode the option line (once); later option lines are ignored.
//   - Stage 3: tokenize numbers and cut them into records of 1+2·n² values.
//   - Stage 4: convert each pair to complex according to Format; reorder 2-ports.
//
// Errors:
//   - ErrBadPorts, ErrBadOptionLine, ErrBadNumber, ErrShortRecord, ErrNoData,
//     or the reader's error wrapped with context.
//
// Complexity:
//   - Time O(size of input), Space O(F·n²).
func Parse(r io.Reader, nports int) (*Data, error) {
	if nports <= 0 {
		return nil, fmt.Errorf("Parse: %w", ErrBadPorts)
	}

	d := &Data{Ports: nports, Unit: DefaultUnit, Format: DefaultFormat, Z0: DefaultZ0}
	recordLen := 1 + 2*nports*nports

	var (
		values    []float64
		comments  []string
		sawOption bool
		sawData   bool
		lineNo    int
	)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '!'); idx >= 0 {
			if !sawData && !sawOption {
				comments = append(comments, strings.TrimSpace(line[idx+1:]))
			}
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			if !sawOption {
				if err := parseOptionLine(d, line); err != nil {
					return nil, fmt.Errorf("Parse: line %d: %w", lineNo, err)
				}
				sawOption = true
			}
			continue
		}

		sawData = true
		for _, tok := range strings.Fields(line) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("Parse: line %d: %q: %w", lineNo, tok, ErrBadNumber)
			}
			values = append(values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("Parse: %w", ErrNoData)
	}
	if len(values)%recordLen != 0 {
		return nil, fmt.Errorf("Parse: %d values is not a multiple of %d: %w", len(values), recordLen, ErrShortRecord)
	}

	mult := d.Unit.Multiplier()
	nrec := len(values) / recordLen
	d.Freq = make([]float64, nrec)
	d.S = make([][]complex128, nrec)
	for k := 0; k < nrec; k++ {
		rec := values[k*recordLen : (k+1)*recordLen]
		d.Freq[k] = rec[0] * mult
		s := make([]complex128, nports*nports)
		for p := 0; p < nports*nports; p++ {
			s[p] = toComplex(d.Format, rec[1+2*p], rec[2+2*p])
		}
		if nports == 2 {
			s[1], s[2] = s[2], s[1] // file order is S11 S21 S12 S22
		}
		d.S[k] = s
	}
	d.Comment = strings.Join(comments, "\n")

	return d, nil
}

// parseOptionLine decodes "# <unit> S <format> R <z0>" in any token order.
func parseOptionLine(d *Data, line string) error {
	toks := strings.Fields(strings.TrimPrefix(line, "#"))
	for i := 0; i < len(toks); i++ {
		tok := strings.ToUpper(toks[i])
		switch tok {
		case "HZ", "KHZ", "MHZ", "GHZ":
			u, err := frequency.ParseUnit(tok)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrBadOptionLine, err)
			}
			d.Unit = u
		case "S":
		case "Y", "Z", "H", "G":
			return fmt.Errorf("%w: parameter %q not supported", ErrBadOptionLine, tok)
		case "MA":
			d.Format = MA
		case "DB":
			d.Format = DB
		case "RI":
			d.Format = RI
		case "R":
			if i+1 >= len(toks) {
				return fmt.Errorf("%w: missing reference impedance", ErrBadOptionLine)
			}
			z0, err := strconv.ParseFloat(toks[i+1], 64)
			if err != nil {
				return fmt.Errorf("%w: reference impedance %q", ErrBadOptionLine, toks[i+1])
			}
			d.Z0 = z0
			i++
		default:
			return fmt.Errorf("%w: unexpected token %q", ErrBadOptionLine, toks[i])
		}
	}
	return nil
}

func toComplex(f Format, a, b float64) complex128 {
	switch f {
	case RI:
		return complex(a, b)
	case DB:
		return cmplx.Rect(mathfn.DBToMagnitude(a), mathfn.DegToRad(b))
	default:
		return cmplx.Rect(a, mathfn.DegToRad(b))
	}
}
