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

import "encoding/binary"

// FrameType is the 1-byte tag that opens every frame envelope.
type FrameType uint8

const (
	FrameMethod        FrameType = 1
	FrameContentHeader FrameType = 2
	FrameContentBody   FrameType = 3
	FrameHeartbeat     FrameType = 8
)

func (t FrameType) String() string {
	switch t {
	case FrameMethod:
		return "Method"
	case FrameContentHeader:
		return "ContentHeader"
	case FrameContentBody:
		return "ContentBody"
	case FrameHeartbeat:
		return "Heartbeat"
	default:
		return "Unknown"
	}
}

func validFrameType(t FrameType) bool {
	switch t {
	case FrameMethod, FrameContentHeader, FrameContentBody, FrameHeartbeat:
		return true
	default:
		return false
	}
}

const (
	// frameEnvelopeHeadLength is type(1) + channel(2) + length(4).
	frameEnvelopeHeadLength = 7
	// frameEndLength is the single 0xCE end-marker octet.
	frameEndLength = 1
	// frameEndMarker is AMQP's mandatory frame terminator.
	frameEndMarker = 0xCE
)

// Frame is one fully decoded AMQP frame envelope. Exactly one of
// Method, ContentHeader, or Body is populated, selected by Type;
// FrameHeartbeat populates none of them.
type Frame struct {
	Type    FrameType
	Channel uint16

	Method        *MethodFrame
	ContentHeader *ContentHeaderFrame
	Body          []byte
}

// readFrameEnvelope extracts one complete frame envelope from the head
// of b, per spec.md §4.1. It never consumes bytes on ErrIncomplete.
// On success it returns the decoded Frame and the unconsumed tail.
func readFrameEnvelope(b []byte) (*Frame, []byte, error) {
	if len(b) < frameEnvelopeHeadLength {
		return nil, b, ErrIncomplete
	}

	frameType := FrameType(b[0])
	channel := binary.BigEndian.Uint16(b[1:3])
	length := binary.BigEndian.Uint32(b[3:7])

	total := frameEnvelopeHeadLength + uint64(length) + frameEndLength
	if uint64(len(b)) < total {
		return nil, b, ErrIncomplete
	}

	payload := b[frameEnvelopeHeadLength : frameEnvelopeHeadLength+length]
	tail := b[total:]

	frame, err := decodeFrameBody(frameType, channel, payload)
	if err != nil {
		return nil, b, err
	}

	if b[total-1] != frameEndMarker {
		return nil, b, newDecodeError(KindParseFrameFailed, "bad frame end marker 0x%02x, want 0x%02x", b[total-1], frameEndMarker)
	}

	return frame, tail, nil
}
