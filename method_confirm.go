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

// ConfirmSelect is Confirm.Select's argument grammar, the RabbitMQ
// publisher-confirms extension.
type ConfirmSelect struct {
	NoWait bool
}

func (ConfirmSelect) isArguments() {}

func decodeConfirmSelect(b []byte) (Arguments, error) {
	flags, _, err := readUint8(b)
	if err != nil {
		return nil, err
	}
	return ConfirmSelect{NoWait: bitSet(flags, 0)}, nil
}

// ConfirmSelectOk is Confirm.Select-Ok's argument grammar: no
// declared fields.
type ConfirmSelectOk struct{}

func (ConfirmSelectOk) isArguments() {}

func decodeConfirmSelectOk(b []byte) (Arguments, error) {
	return ConfirmSelectOk{}, nil
}
