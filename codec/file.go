// SPDX-License-Identifier: MIT

package codec

import (
	"bufio"
	"fmt"
	"os"

	"github.com/katalvlaran/bitgraph/bitmatrix"
)

// ReadFile opens path and decodes it using the format and compression
// implied by its extension.
func ReadFile(path string, opts ...bitmatrix.Option) (*bitmatrix.Graph, error) {
	f, c, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	return ReadFileAs(path, f, c, opts...)
}

// ReadFileAs decodes path with an explicit format and compression.
func ReadFileAs(path string, f Format, c Compression, opts ...bitmatrix.Option) (*bitmatrix.Graph, error) {
	file, err := os.Open(path) //nolint:gosec // G304: path is chosen by the caller
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	g, err := Read(bufio.NewReader(file), f, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// WriteFile encodes g into path using the format and compression implied by
// its extension. The file is replaced atomically.
func WriteFile(path string, g *bitmatrix.Graph) error {
	f, c, err := DetectFormat(path)
	if err != nil {
		return err
	}

	return WriteFileAs(path, g, f, c)
}

// WriteFileAs encodes g into path with an explicit format and compression.
func WriteFileAs(path string, g *bitmatrix.Graph, f Format, c Compression) error {
	tmp := path + ".tmp"
	file, err := os.Create(tmp) //nolint:gosec // G304: path is chosen by the caller
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tmp, err)
	}

	bw := bufio.NewWriter(file)
	if err = Write(bw, g, f, c); err == nil {
		err = bw.Flush()
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%s: %w", path, err)
	}

	return os.Rename(tmp, path)
}
