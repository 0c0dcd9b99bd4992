// Copyright 2025 Certen Protocol
//
// Package dbin implements StreamingFast's DBIN container format: a
// length-prefixed, versioned stream of protobuf-encoded messages.

package dbin

import "errors"

// Sentinel errors for DBIN decoding and encoding.
var (
	// ErrMagicBytesInvalid is returned when the first four bytes are not "dbin".
	ErrMagicBytesInvalid = errors.New("dbin: magic bytes invalid")

	// ErrVersionUnsupported is returned when the version byte is not 0 or 1.
	ErrVersionUnsupported = errors.New("dbin: version unsupported")

	// ErrUnexpectedEOF is returned when EOF occurs inside a message body.
	ErrUnexpectedEOF = errors.New("dbin: unexpected eof inside frame")

	// ErrUTF8Invalid is returned when a V1 content_type is not valid UTF-8.
	ErrUTF8Invalid = errors.New("dbin: content type is not valid utf-8")

	// ErrDifferingVersions is returned when a concatenated file's embedded
	// header doesn't match the version/content_type/content_version of the
	// file preceding it in the stream.
	ErrDifferingVersions = errors.New("dbin: differing dbin versions in concatenated stream")

	// ErrFrameTooLarge is returned by the encoder when a payload exceeds 2^32-1 bytes.
	ErrFrameTooLarge = errors.New("dbin: frame payload exceeds 4GiB-1 limit")

	// ErrContentTypeTooLong is returned by the encoder when a V1 content_type
	// exceeds 65535 bytes.
	ErrContentTypeTooLong = errors.New("dbin: v1 content type exceeds 65535 bytes")
)
