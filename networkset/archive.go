// SPDX-License-Identifier: MIT

package networkset

import (
	"fmt"

	"github.com/klauspost/compress/zip"

	"github.com/katalvlaran/rfset/network"
)

// FromZip builds a set from every Touchstone file in a zip archive.
// Implementation:
//   - Stage 1: open the archive; walk entries in archive-listing order.
//   - Stage 2: skip directory entries; decode each file with network.Read
//     (the entry name supplies the .sNp port count and the network name).
//   - Stage 3: validate the collection through New.
//
// Errors: archive errors, network/touchstone decoding errors (wrapped, with
// the entry name), then the New errors.
func FromZip(path string, opts ...Option) (*NetworkSet, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("FromZip: %w", err)
	}
	defer r.Close()

	members := make([]*network.Network, 0, len(r.File))
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		n, err := readEntry(f)
		if err != nil {
			return nil, fmt.Errorf("FromZip(%s): %w", path, err)
		}
		members = append(members, n)
	}

	return New(members, opts...)
}

// readEntry decodes one archive member.
func readEntry(f *zip.File) (*network.Network, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("entry %s: %w", f.Name, err)
	}
	defer rc.Close()
	return network.Read(rc, f.Name)
}
