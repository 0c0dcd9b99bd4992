// Copyright 2025 Certen Protocol

package streamblock

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// fieldSet is a flattened view of one protobuf message's top-level fields,
// grouped by field number. Repeated fields (transaction_traces, uncles)
// naturally collect multiple entries per number; singular fields are
// expected to hold exactly one.
type fieldSet struct {
	bytesFields  map[protowire.Number][][]byte
	varintFields map[protowire.Number][]uint64
}

// parseFields walks every top-level field in buf, classifying each by wire
// type. Fixed32/Fixed64 fields are consumed (to keep the cursor advancing
// correctly) but this decoder's schema has none, so they're discarded.
func parseFields(buf []byte) (*fieldSet, error) {
	fs := &fieldSet{
		bytesFields:  make(map[protowire.Number][][]byte),
		varintFields: make(map[protowire.Number][]uint64),
	}

	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			return nil, ErrMalformedProtobuf
		}
		buf = buf[n:]

		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return nil, ErrMalformedProtobuf
			}
			fs.varintFields[num] = append(fs.varintFields[num], v)
			buf = buf[n:]
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return nil, ErrMalformedProtobuf
			}
			fs.bytesFields[num] = append(fs.bytesFields[num], v)
			buf = buf[n:]
		case protowire.Fixed32Type:
			_, n := protowire.ConsumeFixed32(buf)
			if n < 0 {
				return nil, ErrMalformedProtobuf
			}
			buf = buf[n:]
		case protowire.Fixed64Type:
			_, n := protowire.ConsumeFixed64(buf)
			if n < 0 {
				return nil, ErrMalformedProtobuf
			}
			buf = buf[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, buf)
			if n < 0 {
				return nil, ErrMalformedProtobuf
			}
			buf = buf[n:]
		}
	}

	return fs, nil
}

func (fs *fieldSet) bytes(n protowire.Number) []byte {
	vs := fs.bytesFields[n]
	if len(vs) == 0 {
		return nil
	}
	return vs[0]
}

func (fs *fieldSet) varint(n protowire.Number) uint64 {
	vs := fs.varintFields[n]
	if len(vs) == 0 {
		return 0
	}
	return vs[0]
}

// largestBytesField returns the bytes-typed top-level field with the
// largest payload, the structural heuristic used to locate payload_buffer
// in the outer envelope without depending on a specific field number (see
// fields.go's doc comment).
func (fs *fieldSet) largestBytesField() ([]byte, bool) {
	var best []byte
	found := false
	for _, vs := range fs.bytesFields {
		for _, v := range vs {
			if !found || len(v) > len(best) {
				best = v
				found = true
			}
		}
	}
	return best, found
}
