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

// Value is whatever a single call to Decode produced: a *ProtocolHeader
// for the opening handshake, or a *Frame for everything after it.
type Value any

// Decoder turns a growing byte stream into a sequence of decoded
// values. It holds no buffer of its own: callers own the bytes and
// resubmit them, undiminished, across calls that returned
// ErrIncomplete.
//
// # Frame layout
//
//	┌────────┬────────────┬──────────────┬─────────┬─────┐
//	│ type(1)│ channel(2) │ length(4)    │ payload │ 0xCE│
//	└────────┴────────────┴──────────────┴─────────┴─────┘
//
// The protocol header precedes the first frame and is shaped
// differently: an 8-byte "AMQP" + version tag with no envelope at
// all. Decoder tracks whether it has seen that header yet and routes
// accordingly.
type Decoder struct {
	headerSeen bool
}

// NewDecoder returns a Decoder positioned at the start of a fresh
// connection, expecting the protocol header first.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode attempts to extract exactly one value from the head of buf.
//
// On success it returns the decoded value and the unconsumed tail of
// buf. On ErrIncomplete it returns a nil value and buf unchanged: the
// caller must append more bytes and call Decode again with the same
// (now longer) buffer. Any other error is fatal; the caller must stop
// decoding this stream.
//
// Decode never blocks and never retains buf past the call.
func (d *Decoder) Decode(buf []byte) (Value, []byte, error) {
	if !d.headerSeen {
		header, rest, err := parseProtocolHeader(buf)
		if err != nil {
			return nil, buf, err
		}
		d.headerSeen = true
		return header, rest, nil
	}

	frame, rest, err := readFrameEnvelope(buf)
	if err != nil {
		return nil, buf, err
	}
	return frame, rest, nil
}
