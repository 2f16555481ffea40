// SPDX-License-Identifier: MIT

package touchstone

import "errors"

var (
	// ErrBadOptionLine is returned for a malformed "# ..." option line.
	ErrBadOptionLine = errors.New("touchstone: bad option line")

	// ErrBadNumber is returned when a data token is not a number.
	ErrBadNumber = errors.New("touchstone: bad number")

	// ErrShortRecord is returned when the data ends in the middle of a record.
	ErrShortRecord = errors.New("touchstone: incomplete record")

	// ErrBadExtension is returned when a file name is not *.sNp.
	ErrBadExtension = errors.New("touchstone: file name is not .sNp")

	// ErrNoData is returned when a file contains no records.
	ErrNoData = errors.New("touchstone: no data")

	// ErrBadPorts is returned for a non-positive port count.
	ErrBadPorts = errors.New("touchstone: port count must be > 0")
)
