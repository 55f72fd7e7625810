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

func TestDecodeAccessRequestFlags(t *testing.T) {
	b := []byte{
		5, '/', 'd', 'a', 't', 'a',
		0b0001_0101, // exclusive, active, read
	}
	args, err := decodeAccessRequest(b)
	assert.NoError(t, err)
	r := args.(AccessRequest)
	assert.Equal(t, "/data", r.Realm)
	assert.True(t, r.Exclusive)
	assert.False(t, r.Passive)
	assert.True(t, r.Active)
	assert.False(t, r.Write)
	assert.True(t, r.Read)
}

func TestDecodeAccessRequestOk(t *testing.T) {
	args, err := decodeAccessRequestOk([]byte{0x00, 0x01})
	assert.NoError(t, err)
	assert.Equal(t, AccessRequestOk{Ticket: 1}, args)
}
