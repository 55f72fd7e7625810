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

import "bytes"

// protocolHeaderSize is the fixed size of the connection-opening
// handshake: "AMQP" + major_id + minor_id + major_version + minor_version.
const protocolHeaderSize = 8

var protocolTag = []byte("AMQP")

// ProtocolHeader is the 8-byte handshake every AMQP peer sends once,
// before any frames, at the start of a connection.
type ProtocolHeader struct {
	MajorID      uint8
	MinorID      uint8
	MajorVersion uint8
	MinorVersion uint8
}

// parseProtocolHeader reads the fixed 8-byte handshake from the head
// of b. It returns ErrIncomplete if fewer than 8 bytes are available,
// and a KindParseAmqpHeaderFailed error if the protocol tag does not
// match "AMQP".
func parseProtocolHeader(b []byte) (*ProtocolHeader, []byte, error) {
	if len(b) < protocolHeaderSize {
		return nil, b, ErrIncomplete
	}
	if !bytes.Equal(b[0:4], protocolTag) {
		return nil, b, newDecodeError(KindParseAmqpHeaderFailed, "bad protocol tag %q", b[0:4])
	}
	h := &ProtocolHeader{
		MajorID:      b[4],
		MinorID:      b[5],
		MajorVersion: b[6],
		MinorVersion: b[7],
	}
	return h, b[protocolHeaderSize:], nil
}
