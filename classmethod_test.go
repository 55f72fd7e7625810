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

func TestLookupMethod(t *testing.T) {
	tests := []struct {
		name    string
		class   Class
		method  uint16
		want    string
		wantErr ErrorKind
	}{
		{name: "connection start", class: ClassConnection, method: 10, want: "Start"},
		{name: "basic recover async", class: ClassBasic, method: 100, want: "Recover-Async"},
		{name: "basic recover", class: ClassBasic, method: 110, want: "Recover"},
		{name: "basic recover ok", class: ClassBasic, method: 111, want: "Recover-Ok"},
		{name: "basic nack", class: ClassBasic, method: 120, want: "Nack"},
		{name: "unknown class", class: Class(9999), method: 10, wantErr: KindUnknownClassType},
		{name: "unknown method", class: ClassConnection, method: 9999, wantErr: KindUnknownMethodType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, err := lookupMethod(tt.class, tt.method)
			if tt.want == "" {
				var de *DecodeError
				assert.ErrorAs(t, err, &de)
				assert.Equal(t, tt.wantErr, de.Kind)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, name)
		})
	}
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "Connection", ClassConnection.String())
	assert.Equal(t, "Basic", ClassBasic.String())
	assert.Equal(t, "Unknown", Class(9999).String())
}
