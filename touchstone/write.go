// SPDX-License-Identifier: MIT

package touchstone

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Write encodes d as Touchstone v1 in Hz / RI.
// The 2-port column order S11 S21 S12 S22 is restored; for more than two
// ports each matrix row starts a new line, as the format requires.
// Errors: ErrBadPorts, ErrNoData, ErrShortRecord (ragged S), or the writer's error.
func Write(w io.Writer, d *Data) error {
	if d == nil || d.Ports <= 0 {
		return fmt.Errorf("Write: %w", ErrBadPorts)
	}
	if len(d.Freq) == 0 {
		return fmt.Errorf("Write: %w", ErrNoData)
	}
	if len(d.S) != len(d.Freq) {
		return fmt.Errorf("Write: %d matrices for %d frequencies: %w", len(d.S), len(d.Freq), ErrShortRecord)
	}

	n := d.Ports
	bw := bufio.NewWriter(w)
	if d.Comment != "" {
		for _, line := range strings.Split(d.Comment, "\n") {
			fmt.Fprintf(bw, "! %s\n", line)
		}
	}
	fmt.Fprintf(bw, "# Hz S RI R %s\n", strconv.FormatFloat(d.Z0, 'g', -1, 64))

	for k, f := range d.Freq {
		s := d.S[k]
		if len(s) != n*n {
			return fmt.Errorf("Write: record %d has %d values: %w", k, len(s), ErrShortRecord)
		}
		order := s
		if n == 2 {
			order = []complex128{s[0], s[2], s[1], s[3]}
		}
		bw.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
		for p, v := range order {
			if n > 2 && p > 0 && p%n == 0 {
				bw.WriteString("\n")
			}
			bw.WriteString(" ")
			bw.WriteString(strconv.FormatFloat(real(v), 'g', -1, 64))
			bw.WriteString(" ")
			bw.WriteString(strconv.FormatFloat(imag(v), 'g', -1, 64))
		}
		bw.WriteString("\n")
	}

	return bw.Flush()
}
