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

// AccessRequest is Access.Request's argument grammar. This class is
// deprecated in AMQP 0-9-1 but still wire-present; the flag order is
// exclusive, passive, active, write, read, low bit first.
type AccessRequest struct {
	Realm     string
	Exclusive bool
	Passive   bool
	Active    bool
	Write     bool
	Read      bool
}

func (AccessRequest) isArguments() {}

func decodeAccessRequest(b []byte) (Arguments, error) {
	realm, rest, err := decodeShortString(b)
	if err != nil {
		return nil, err
	}
	flags, _, err := readUint8(rest)
	if err != nil {
		return nil, err
	}
	return AccessRequest{
		Realm:     realm,
		Exclusive: bitSet(flags, 0),
		Passive:   bitSet(flags, 1),
		Active:    bitSet(flags, 2),
		Write:     bitSet(flags, 3),
		Read:      bitSet(flags, 4),
	}, nil
}

// AccessRequestOk is Access.Request-Ok's argument grammar.
type AccessRequestOk struct {
	Ticket uint16
}

func (AccessRequestOk) isArguments() {}

func decodeAccessRequestOk(b []byte) (Arguments, error) {
	ticket, _, err := readUint16(b)
	if err != nil {
		return nil, err
	}
	return AccessRequestOk{Ticket: ticket}, nil
}
