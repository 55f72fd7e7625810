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

func TestDecodeContentHeaderBasic(t *testing.T) {
	// class=60 (Basic), weight=0, body_size=5
	// flags: bit14 (content-type) and bit11 (delivery-mode) set -> 0b0100_1000_0000_0000 = 0x4800
	b := []byte{
		0, 60,
		0, 0,
		0, 0, 0, 0, 0, 0, 0, 5,
		0x48, 0x00,
		4, 't', 'e', 'x', 't', // content-type shortstr
		2, // delivery-mode octet
	}
	ch, err := decodeContentHeader(b)
	assert.NoError(t, err)
	assert.Equal(t, ClassBasic, ch.Class)
	assert.Equal(t, uint64(5), ch.BodySize)
	assert.Len(t, ch.Properties, 2)
	assert.Equal(t, "content-type", ch.Properties[0].Name)
	assert.Equal(t, "text", ch.Properties[0].Value)
	assert.Equal(t, "delivery-mode", ch.Properties[1].Name)
	assert.Equal(t, uint8(2), ch.Properties[1].Value)
}

func TestDecodeContentHeaderNoProperties(t *testing.T) {
	b := []byte{
		0, 60,
		0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0x00, 0x00,
	}
	ch, err := decodeContentHeader(b)
	assert.NoError(t, err)
	assert.Empty(t, ch.Properties)
}

func TestDecodeContentHeaderRejectsNonZeroWeight(t *testing.T) {
	b := []byte{
		0, 60,
		0, 1,
		0, 0, 0, 0, 0, 0, 0, 0,
		0x00, 0x00,
	}
	_, err := decodeContentHeader(b)
	assert.Error(t, err)
}

func TestDecodeContentHeaderUnknownClass(t *testing.T) {
	b := []byte{
		0xFF, 0xFF,
		0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0x00, 0x00,
	}
	_, err := decodeContentHeader(b)
	assert.Error(t, err)
	var de *DecodeError
	assert.ErrorAs(t, err, &de)
	assert.Equal(t, KindUnknownClassType, de.Kind)
}

func TestDecodeContentHeaderContinuationFlagWords(t *testing.T) {
	// force a second flag word with only the continuation bit set in the first.
	b := []byte{
		0, 60,
		0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0x80, 0x00, // bit15 set: another flag word follows
		0x00, 0x00, // second word: nothing present
	}
	ch, err := decodeContentHeader(b)
	assert.NoError(t, err)
	assert.Empty(t, ch.Properties)
}
