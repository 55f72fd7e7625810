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

func TestDecodeConnectionOpen(t *testing.T) {
	b := []byte{
		1, '/', // vhost
		0, // capabilities (empty short string)
		1, // insist = true
	}
	args, err := decodeConnectionOpen(b)
	assert.NoError(t, err)
	open := args.(ConnectionOpen)
	assert.Equal(t, "/", open.VHost)
	assert.Equal(t, "", open.Capabilities)
	assert.True(t, open.Insist)
}

func TestDecodeConnectionCloseOkConsumesNothing(t *testing.T) {
	args, err := decodeConnectionCloseOk(nil)
	assert.NoError(t, err)
	assert.Equal(t, ConnectionCloseOk{}, args)
}

func TestDecodeConnectionClose(t *testing.T) {
	b := []byte{
		0x01, 0xF7, // reply_code = 503
		11, 'C', 'O', 'M', 'M', 'A', 'N', 'D', '_', 'B', 'A', 'D',
		0x00, 0x3C, // class = 60 (Basic)
		0x00, 0x28, // method = 40 (Publish)
	}
	args, err := decodeConnectionClose(b)
	assert.NoError(t, err)
	cc := args.(ConnectionClose)
	assert.Equal(t, uint16(503), cc.ReplyCode)
	assert.Equal(t, "COMMAND_BAD", cc.ReplyText)
	assert.Equal(t, ClassBasic, cc.Class)
	assert.Equal(t, "Publish", cc.MethodName)
}

func TestDecodeConnectionCloseUnknownMethod(t *testing.T) {
	b := []byte{
		0x00, 0x00,
		0,
		0x00, 0x0A, // Connection
		0xFF, 0xFF, // bogus method id
	}
	_, err := decodeConnectionClose(b)
	assert.Error(t, err)
}

func TestDecodeConnectionStartOk(t *testing.T) {
	b := []byte{
		0, 0, 0, 0, // empty field table
		5, 'P', 'L', 'A', 'I', 'N',
		0, 0, 0, 0, // empty long string response
		5, 'e', 'n', '_', 'U', 'S',
	}
	args, err := decodeConnectionStartOk(b)
	assert.NoError(t, err)
	s := args.(ConnectionStartOk)
	assert.Equal(t, "PLAIN", s.Mechanism)
	assert.Equal(t, "en_US", s.Locale)
}
