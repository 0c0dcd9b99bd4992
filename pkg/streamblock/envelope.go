// Copyright 2025 Certen Protocol

package streamblock

// decodePayloadBuffer strips the outer BstreamBlock envelope, returning the
// bytes of its payload_buffer field (spec §4.2 step 1). See fields.go's
// doc comment for why this is located structurally rather than by field
// number.
func decodePayloadBuffer(frame []byte) ([]byte, error) {
	fs, err := parseFields(frame)
	if err != nil {
		return nil, err
	}
	buf, ok := fs.largestBytesField()
	if !ok {
		return nil, ErrEmptyPayloadBuffer
	}
	return buf, nil
}
