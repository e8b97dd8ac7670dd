// SPDX-License-Identifier: MIT

package codec

import "errors"

var (
	// ErrUnsupportedFormat is returned for an unknown format name or extension.
	ErrUnsupportedFormat = errors.New("codec: unsupported format")

	// ErrUnsupportedCompression is returned for an unknown compression name.
	ErrUnsupportedCompression = errors.New("codec: unsupported compression")

	// ErrBadDocument indicates a structured document inconsistent with its
	// declared size.
	ErrBadDocument = errors.New("codec: malformed document")

	// ErrLossySize is returned when a raw payload would decode as a different
	// size (N=1 and N=3 share their byte length with a larger N).
	ErrLossySize = errors.New("codec: raw payload does not preserve size")
)
