// Copyright 2025 Certen Protocol

package dbin

import (
	"encoding/binary"
	"fmt"
	"io"
)

// File is a fully-decoded DBIN file (or concatenation of DBIN files sharing
// the same header): a header plus the ordered sequence of frame payloads.
type File struct {
	Header   Header
	Messages [][]byte
}

// Decoder reads frames one at a time from an underlying io.Reader, never
// buffering more than a single frame. It transparently absorbs an embedded
// "dbin" header if the stream contains multiple concatenated DBIN files,
// validating that every embedded header agrees with the stream's first.
type Decoder struct {
	r            io.Reader
	firstHeader  Header
	started      bool
}

// NewDecoder opens a DBIN stream, reading and validating its leading header.
func NewDecoder(r io.Reader) (*Decoder, error) {
	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	return &Decoder{r: r, firstHeader: h, started: true}, nil
}

// Header returns the header the stream was opened with.
func (d *Decoder) Header() Header {
	return d.firstHeader
}

// Next consumes exactly one frame, transparently absorbing an embedded
// header if the stream switches to a new concatenated DBIN file at this
// point. Returns io.EOF when the stream ends cleanly at a frame boundary.
func (d *Decoder) Next() ([]byte, error) {
	var sizeBuf [4]byte
	n, err := io.ReadFull(d.r, sizeBuf[:])
	if err != nil {
		if n == 0 && (err == io.EOF) {
			return nil, io.EOF
		}
		return nil, wrapEOF(err)
	}

	if sizeBuf == magicBytes {
		embedded, err := readPartialHeader(d.r)
		if err != nil {
			return nil, err
		}
		if !sameHeader(d.firstHeader, embedded) {
			return nil, ErrDifferingVersions
		}
		if _, err := io.ReadFull(d.r, sizeBuf[:]); err != nil {
			return nil, wrapEOF(err)
		}
	}

	size := binary.BigEndian.Uint32(sizeBuf[:])
	content := make([]byte, size)
	if size > 0 {
		if _, err := io.ReadFull(d.r, content); err != nil {
			return nil, wrapEOF(err)
		}
	}
	return content, nil
}

// ReadAll decodes every frame in r, honoring concatenated DBIN files, into
// a single File sharing the stream's leading header.
func ReadAll(r io.Reader) (*File, error) {
	dec, err := NewDecoder(r)
	if err != nil {
		return nil, err
	}

	var messages [][]byte
	for {
		msg, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return &File{Header: dec.Header(), Messages: messages}, nil
}

// ReadFrame reads a single frame from r without an opened Decoder,
// reading its full header first. It opens a Decoder and reads one frame,
// for callers that only need the first frame.
func ReadFrame(r io.Reader) ([]byte, Header, error) {
	dec, err := NewDecoder(r)
	if err != nil {
		return nil, Header{}, err
	}
	msg, err := dec.Next()
	if err != nil {
		return nil, Header{}, err
	}
	return msg, dec.Header(), nil
}

func validateFrameSize(size uint64) error {
	if size > 0xFFFFFFFF {
		return fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, size)
	}
	return nil
}
