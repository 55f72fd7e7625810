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

func TestDecodeExchangeDeclareFlags(t *testing.T) {
	b := []byte{
		0, 0, // ticket
		3, 'e', 'x', '1',
		6, 'd', 'i', 'r', 'e', 'c', 't',
		0b0001_1011, // passive, durable, internal, no_wait (not auto_delete)
		0, 0, 0, 0, // empty arguments
	}
	args, err := decodeExchangeDeclare(b)
	assert.NoError(t, err)
	d := args.(ExchangeDeclare)
	assert.Equal(t, "ex1", d.ExchangeName)
	assert.Equal(t, "direct", d.ExchangeType)
	assert.True(t, d.Passive)
	assert.True(t, d.Durable)
	assert.False(t, d.AutoDelete)
	assert.True(t, d.Internal)
	assert.True(t, d.NoWait)
}

func TestDecodeExchangeDeleteOkConsumesNothing(t *testing.T) {
	args, err := decodeExchangeDeleteOk(nil)
	assert.NoError(t, err)
	assert.Equal(t, ExchangeDeleteOk{}, args)
}

func TestDecodeExchangeBind(t *testing.T) {
	b := []byte{
		0, 0,
		4, 'd', 'e', 's', 't',
		3, 's', 'r', 'c',
		2, 'r', 'k',
		1, // no_wait
		0, 0, 0, 0,
	}
	args, err := decodeExchangeBind(b)
	assert.NoError(t, err)
	bind := args.(ExchangeBind)
	assert.Equal(t, "dest", bind.Destination)
	assert.Equal(t, "src", bind.Source)
	assert.True(t, bind.NoWait)
}
