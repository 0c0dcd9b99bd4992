// Copyright 2025 Certen Protocol

package dbin

import (
	"encoding/binary"
	"io"
)

// Encoder writes a DBIN file: one header followed by any number of frames.
type Encoder struct {
	w      io.Writer
	header Header
	wrote  bool
}

// NewEncoder creates an Encoder that will write the given header before its
// first frame.
func NewEncoder(w io.Writer, header Header) *Encoder {
	return &Encoder{w: w, header: header}
}

// WriteFrame appends one length-prefixed frame, writing the header first if
// this is the first frame written by this Encoder.
func (e *Encoder) WriteFrame(payload []byte) error {
	if err := validateFrameSize(uint64(len(payload))); err != nil {
		return err
	}
	if !e.wrote {
		if err := encodeHeader(e.w, e.header); err != nil {
			return err
		}
		e.wrote = true
	}

	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	if _, err := e.w.Write(lenBuf[:]); err != nil {
		return err
	}
	if len(payload) > 0 {
		if _, err := e.w.Write(payload); err != nil {
			return err
		}
	}
	return nil
}

// WriteAll encodes a full DBIN file: the header (even if payloads is empty)
// followed by every payload as a frame.
func WriteAll(w io.Writer, header Header, payloads [][]byte) error {
	enc := NewEncoder(w, header)
	for _, p := range payloads {
		if err := enc.WriteFrame(p); err != nil {
			return err
		}
	}
	if !enc.wrote {
		// Header must be emitted even for a file with zero frames.
		return encodeHeader(w, header)
	}
	return nil
}
