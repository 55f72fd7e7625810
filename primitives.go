// Copyright 2025 The amqp-parser Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package amqp

import (
	"encoding/binary"
	"math"
)

// maxFieldNameLength is AMQP 0-9-1's declared cap on field-name
// length, independent of the 255-byte ceiling the short-string wire
// encoding itself allows.
const maxFieldNameLength = 128

func readUint8(b []byte) (uint8, []byte, error) {
	if len(b) < 1 {
		return 0, nil, newDecodeError(KindParseFrameFailed, "need 1 byte, have %d", len(b))
	}
	return b[0], b[1:], nil
}

func readUint16(b []byte) (uint16, []byte, error) {
	if len(b) < 2 {
		return 0, nil, newDecodeError(KindParseFrameFailed, "need 2 bytes, have %d", len(b))
	}
	return binary.BigEndian.Uint16(b), b[2:], nil
}

func readUint32(b []byte) (uint32, []byte, error) {
	if len(b) < 4 {
		return 0, nil, newDecodeError(KindParseFrameFailed, "need 4 bytes, have %d", len(b))
	}
	return binary.BigEndian.Uint32(b), b[4:], nil
}

func readUint64(b []byte) (uint64, []byte, error) {
	if len(b) < 8 {
		return 0, nil, newDecodeError(KindParseFrameFailed, "need 8 bytes, have %d", len(b))
	}
	return binary.BigEndian.Uint64(b), b[8:], nil
}

func readFloat32(b []byte) (float32, []byte, error) {
	v, rest, err := readUint32(b)
	if err != nil {
		return 0, nil, err
	}
	return math.Float32frombits(v), rest, nil
}

func readFloat64(b []byte) (float64, []byte, error) {
	v, rest, err := readUint64(b)
	if err != nil {
		return 0, nil, err
	}
	return math.Float64frombits(v), rest, nil
}

// decodeShortString reads a u8 length prefix followed by exactly that
// many bytes.
func decodeShortString(b []byte) (string, []byte, error) {
	n, rest, err := readUint8(b)
	if err != nil {
		return "", nil, err
	}
	if len(rest) < int(n) {
		return "", nil, newDecodeError(KindParseFrameFailed, "short string wants %d bytes, has %d", n, len(rest))
	}
	return string(rest[:n]), rest[n:], nil
}

// decodeLongString reads a u32 length prefix followed by exactly that
// many bytes.
func decodeLongString(b []byte) (string, []byte, error) {
	n, rest, err := readUint32(b)
	if err != nil {
		return "", nil, err
	}
	if uint32(len(rest)) < n {
		return "", nil, newDecodeError(KindParseFrameFailed, "long string wants %d bytes, has %d", n, len(rest))
	}
	return string(rest[:n]), rest[n:], nil
}

// decodeLongBytes is decodeLongString without the string conversion,
// used for the `x` byte-array field-value tag which is long-string
// framed but semantically opaque bytes.
func decodeLongBytes(b []byte) ([]byte, []byte, error) {
	n, rest, err := readUint32(b)
	if err != nil {
		return nil, nil, err
	}
	if uint32(len(rest)) < n {
		return nil, nil, newDecodeError(KindParseFrameFailed, "byte array wants %d bytes, has %d", n, len(rest))
	}
	buf := make([]byte, n)
	copy(buf, rest[:n])
	return buf, rest[n:], nil
}

// decodeFieldName reads a short string and enforces AMQP's field-name
// validity rule: non-empty, at most 128 bytes, starting with a
// letter, '$', or '#'. A violation is a KindDomain error, wrapping a
// rejection from the data-model layer per spec.md §7.
func decodeFieldName(b []byte) (string, []byte, error) {
	name, rest, err := decodeShortString(b)
	if err != nil {
		return "", nil, err
	}
	if err := validateFieldName(name); err != nil {
		return "", nil, err
	}
	return name, rest, nil
}

func validateFieldName(name string) error {
	if len(name) == 0 {
		return newDecodeError(KindDomain, "field name must not be empty")
	}
	if len(name) > maxFieldNameLength {
		return newDecodeError(KindDomain, "field name %q exceeds %d bytes", name, maxFieldNameLength)
	}
	c := name[0]
	isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	if !isLetter && c != '$' && c != '#' {
		return newDecodeError(KindDomain, "field name %q must start with a letter, '$', or '#'", name)
	}
	return nil
}

// bitSet reports whether bit n (0-indexed from the low bit) is set in
// a packed-bits flag byte. Bit 0 is the first declared flag; unused
// upper bits are ignored by construction since callers only ever ask
// about the bits their grammar declares.
func bitSet(flags byte, n uint) bool {
	return flags&(1<<n) != 0
}

// boolByte interprets a whole byte as a boolean: zero is false, any
// non-zero value is true. This is NOT the same convention as bitSet;
// spec.md §9 calls out that the two encodings are not interchangeable
// (e.g. Channel.Flow.active and Connection.Open.insist use a whole
// byte, not a packed-bits flag).
func boolByte(v uint8) bool {
	return v != 0
}
