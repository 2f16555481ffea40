// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/rfset/frequency"
	"github.com/katalvlaran/rfset/touchstone"
)

// Read decodes a Touchstone stream. name is the file name the stream came
// from: its .sNp extension gives the port count and its base name becomes
// the network name.
// Errors: touchstone errors (ErrBadExtension, ErrBadNumber, ...) and
// frequency validation errors, wrapped with the file name.
func Read(r io.Reader, name string) (*Network, error) {
	ports, err := touchstone.PortsFromName(name)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	d, err := touchstone.Parse(r, ports)
	if err != nil {
		return nil, fmt.Errorf("Read(%s): %w", name, err)
	}
	freq, err := frequency.FromPoints(d.Freq, d.Unit)
	if err != nil {
		return nil, fmt.Errorf("Read(%s): %w", name, err)
	}
	s, err := NewParam(len(d.Freq), ports)
	if err != nil {
		return nil, fmt.Errorf("Read(%s): %w", name, err)
	}
	stride := ports * ports
	for k, m := range d.S {
		copy(s.data[k*stride:(k+1)*stride], m)
	}

	base := filepath.Base(name)
	return &Network{
		name: strings.TrimSuffix(base, filepath.Ext(base)),
		freq: freq,
		s:    s,
		z0:   d.Z0,
	}, nil
}

// ReadFile opens path and decodes it with Read.
func ReadFile(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()
	return Read(f, path)
}

// Extension returns the Touchstone file extension for n, e.g. ".s2p".
func (n *Network) Extension() string {
	return fmt.Sprintf(".s%dp", n.NumPorts())
}

// Write encodes n as Touchstone (Hz, RI).
func (n *Network) Write(w io.Writer) error {
	d := &touchstone.Data{
		Ports:   n.NumPorts(),
		Unit:    frequency.Hz,
		Format:  touchstone.RI,
		Z0:      n.z0,
		Freq:    n.freq.Points(),
		S:       make([][]complex128, n.s.Freqs()),
		Comment: n.name,
	}
	for k := range d.S {
		d.S[k], _ = n.s.Matrix(k)
	}
	if err := touchstone.Write(w, d); err != nil {
		return fmt.Errorf("Write(%s): %w", n.name, err)
	}
	return nil
}

// WriteFile writes n to dir/<name>.sNp and returns the path.
// An unnamed network is written as "untitled".
func (n *Network) WriteFile(dir string) (string, error) {
	name := n.name
	if name == "" {
		name = "untitled"
	}
	path := filepath.Join(dir, name+n.Extension())
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("WriteFile: %w", err)
	}
	if err := n.Write(f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("WriteFile: %w", err)
	}
	return path, nil
}

// LoadAll reads every Touchstone file directly inside dir (no recursion)
// into a map keyed by network name. Files without a .sNp extension are skipped.
func LoadAll(dir string) (map[string]*Network, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadAll: %w", err)
	}
	out := make(map[string]*Network)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := touchstone.PortsFromName(e.Name()); err != nil {
			continue
		}
		n, err := ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("LoadAll: %w", err)
		}
		out[n.name] = n
	}
	return out, nil
}
