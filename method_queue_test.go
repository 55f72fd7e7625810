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

func TestDecodeQueueDeclareOk(t *testing.T) {
	b := []byte{
		2, 'q', '1',
		0, 0, 0, 10, // message_count
		0, 0, 0, 2, // consumer_count
	}
	args, err := decodeQueueDeclareOk(b)
	assert.NoError(t, err)
	d := args.(QueueDeclareOk)
	assert.Equal(t, "q1", d.QueueName)
	assert.Equal(t, uint32(10), d.MessageCount)
	assert.Equal(t, uint32(2), d.ConsumerCount)
}

func TestDecodeQueueUnbindHasNoNoWaitFlag(t *testing.T) {
	b := []byte{
		0, 0,
		2, 'q', '1',
		3, 'e', 'x', '1',
		2, 'r', 'k',
		0, 0, 0, 0,
	}
	args, err := decodeQueueUnbind(b)
	assert.NoError(t, err)
	u := args.(QueueUnbind)
	assert.Equal(t, "q1", u.QueueName)
	assert.Equal(t, "ex1", u.ExchangeName)
	assert.Equal(t, "rk", u.RoutingKey)
}

func TestDecodeQueueDeleteFlags(t *testing.T) {
	b := []byte{
		0, 0,
		2, 'q', '1',
		0b0000_0101, // if_unused, no_wait
	}
	args, err := decodeQueueDelete(b)
	assert.NoError(t, err)
	d := args.(QueueDelete)
	assert.True(t, d.IfUnused)
	assert.False(t, d.IfEmpty)
	assert.True(t, d.NoWait)
}
