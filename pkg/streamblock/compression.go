// Copyright 2025 Certen Protocol

package streamblock

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// Compression selects whether a stream is Zstandard-wrapped before DBIN
// framing is applied (spec §6, "Compression").
type Compression uint8

const (
	None Compression = iota
	Zstd
)

// wrap returns r, decompressing it first if c is Zstd.
func (c Compression) wrap(r io.Reader) (io.Reader, error) {
	switch c {
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	default:
		return r, nil
	}
}
