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
	"testing"

	"github.com/stretchr/testify/assert"
)

func heartbeatFrameBytes() []byte {
	return []byte{
		0x08,
		0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0xCE,
	}
}

func TestReadFrameEnvelopeHeartbeat(t *testing.T) {
	frame, rest, err := readFrameEnvelope(heartbeatFrameBytes())
	assert.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, FrameHeartbeat, frame.Type)
	assert.Equal(t, uint16(0), frame.Channel)
}

func TestReadFrameEnvelopeIncomplete(t *testing.T) {
	b := heartbeatFrameBytes()
	for n := 0; n < len(b); n++ {
		_, rest, err := readFrameEnvelope(b[:n])
		assert.ErrorIs(t, err, ErrIncomplete)
		assert.Equal(t, b[:n], rest)
	}
}

func TestReadFrameEnvelopeBadEndMarker(t *testing.T) {
	b := heartbeatFrameBytes()
	b[len(b)-1] = 0x00
	_, _, err := readFrameEnvelope(b)
	assert.Error(t, err)
	var de *DecodeError
	assert.ErrorAs(t, err, &de)
	assert.Equal(t, KindParseFrameFailed, de.Kind)
}

func TestReadFrameEnvelopeUnknownFrameType(t *testing.T) {
	b := heartbeatFrameBytes()
	b[0] = 0x7F
	_, _, err := readFrameEnvelope(b)
	assert.Error(t, err)
	var de *DecodeError
	assert.ErrorAs(t, err, &de)
	assert.Equal(t, KindUnknownFrameType, de.Kind)
}

func TestReadFrameEnvelopeChunkedAcrossCalls(t *testing.T) {
	full := heartbeatFrameBytes()
	var buf []byte
	var frame *Frame
	var err error
	for _, by := range full {
		buf = append(buf, by)
		frame, _, err = readFrameEnvelope(buf)
		if err == ErrIncomplete {
			continue
		}
		break
	}
	assert.NoError(t, err)
	assert.Equal(t, FrameHeartbeat, frame.Type)
}

func TestFrameTypeString(t *testing.T) {
	assert.Equal(t, "Method", FrameMethod.String())
	assert.Equal(t, "Heartbeat", FrameHeartbeat.String())
	assert.Equal(t, "Unknown", FrameType(0x99).String())
}
