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

func TestParseProtocolHeader(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    *ProtocolHeader
		wantErr bool
	}{
		{
			name:  "valid 0-9-1 header",
			input: []byte{'A', 'M', 'Q', 'P', 0, 0, 9, 1},
			want:  &ProtocolHeader{MajorID: 0, MinorID: 0, MajorVersion: 9, MinorVersion: 1},
		},
		{
			name:    "bad tag",
			input:   []byte{'X', 'X', 'X', 'X', 0, 0, 9, 1},
			wantErr: true,
		},
		{
			name:    "truncated",
			input:   []byte{'A', 'M', 'Q', 'P', 0, 0},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, rest, err := parseProtocolHeader(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, h)
			assert.Empty(t, rest)
		})
	}
}

func TestParseProtocolHeaderIncomplete(t *testing.T) {
	_, rest, err := parseProtocolHeader([]byte{'A', 'M', 'Q'})
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.Equal(t, []byte{'A', 'M', 'Q'}, rest)
}
