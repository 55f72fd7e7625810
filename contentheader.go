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

// propertyKind enumerates the wire types a content property can take.
type propertyKind int

const (
	propertyShortStr propertyKind = iota
	propertyOctet
	propertyU64
	propertyFieldTable
)

type propertyDecl struct {
	name string
	kind propertyKind
}

// basicProperties is the Basic class's declared content-property
// order, bit 14 (the first usable bit after the continuation bit)
// down to bit 1; bit 0 is reserved and never decoded, per SPEC_FULL.md
// §8. No other AMQP 0-9-1 class carries content properties.
var basicProperties = []propertyDecl{
	{"content-type", propertyShortStr},
	{"content-encoding", propertyShortStr},
	{"headers", propertyFieldTable},
	{"delivery-mode", propertyOctet},
	{"priority", propertyOctet},
	{"correlation-id", propertyShortStr},
	{"reply-to", propertyShortStr},
	{"expiration", propertyShortStr},
	{"message-id", propertyShortStr},
	{"timestamp", propertyU64},
	{"type", propertyShortStr},
	{"user-id", propertyShortStr},
	{"app-id", propertyShortStr},
	{"cluster-id", propertyShortStr},
}

// ContentHeaderProperty is one decoded property from a content
// header's property list.
type ContentHeaderProperty struct {
	Name  string
	Value any
}

// ContentHeaderFrame is a decoded content-header payload: the class
// the following body belongs to, the total body size advertised
// across all following content-body frames, and the decoded property
// list.
type ContentHeaderFrame struct {
	Class      Class
	BodySize   uint64
	Properties []ContentHeaderProperty
}

// decodeContentHeader reads class_id:u16, weight:u16 (reserved, must
// be zero), body_size:u64, and the flags-driven property list, per
// spec.md §4.4.
func decodeContentHeader(b []byte) (*ContentHeaderFrame, error) {
	classID, rest, err := readUint16(b)
	if err != nil {
		return nil, err
	}
	class := Class(classID)
	if _, ok := classNames[class]; !ok {
		return nil, newDecodeError(KindUnknownClassType, "unknown class id %d in content header", classID)
	}

	weight, rest, err := readUint16(rest)
	if err != nil {
		return nil, err
	}
	if weight != 0 {
		return nil, newDecodeError(KindParseFrameFailed, "reserved content-header weight must be 0, got %d", weight)
	}

	bodySize, rest, err := readUint64(rest)
	if err != nil {
		return nil, err
	}

	props, err := decodePropertyList(class, rest)
	if err != nil {
		return nil, err
	}

	return &ContentHeaderFrame{Class: class, BodySize: bodySize, Properties: props}, nil
}

// decodePropertyList walks the flags word(s) — bit 15 of each word
// means "another flag word follows"; bits 14..0 across all words, in
// order, indicate presence of one declared property apiece — and
// decodes each present property using its declared type. Classes with
// no declared properties (everything but Basic) still consume the
// flag words correctly; their property list is simply empty.
func decodePropertyList(class Class, b []byte) ([]ContentHeaderProperty, error) {
	var declared []propertyDecl
	if class == ClassBasic {
		declared = basicProperties
	}

	var presentBits []bool
	rest := b
	for {
		flags, next, err := readUint16(rest)
		if err != nil {
			return nil, err
		}
		rest = next
		for bit := 14; bit >= 0; bit-- {
			presentBits = append(presentBits, flags&(1<<uint(bit)) != 0)
		}
		if flags&0x8000 == 0 {
			break
		}
	}

	var props []ContentHeaderProperty
	for i, present := range presentBits {
		if !present || i >= len(declared) {
			continue
		}
		decl := declared[i]
		value, next, err := decodePropertyValue(decl.kind, rest)
		if err != nil {
			return nil, err
		}
		rest = next
		props = append(props, ContentHeaderProperty{Name: decl.name, Value: value})
	}

	return props, nil
}

func decodePropertyValue(kind propertyKind, b []byte) (any, []byte, error) {
	switch kind {
	case propertyShortStr:
		return decodeShortString(b)
	case propertyOctet:
		return readUint8(b)
	case propertyU64:
		v, rest, err := readUint64(b)
		if err != nil {
			return nil, nil, err
		}
		return timestampFromUnix(v), rest, nil
	case propertyFieldTable:
		return decodeFieldTable(b)
	default:
		return nil, nil, newDecodeError(KindParseFrameFailed, "unhandled property kind %d", kind)
	}
}
