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

// ExchangeDeclare is Exchange.Declare's argument grammar.
type ExchangeDeclare struct {
	Ticket       uint16
	ExchangeName string
	ExchangeType string
	Passive      bool
	Durable      bool
	AutoDelete   bool
	Internal     bool
	NoWait       bool
	Arguments    FieldTable
}

func (ExchangeDeclare) isArguments() {}

func decodeExchangeDeclare(b []byte) (Arguments, error) {
	ticket, rest, err := readUint16(b)
	if err != nil {
		return nil, err
	}
	name, rest, err := decodeShortString(rest)
	if err != nil {
		return nil, err
	}
	typ, rest, err := decodeShortString(rest)
	if err != nil {
		return nil, err
	}
	flags, rest, err := readUint8(rest)
	if err != nil {
		return nil, err
	}
	args, _, err := decodeFieldTable(rest)
	if err != nil {
		return nil, err
	}
	return ExchangeDeclare{
		Ticket:       ticket,
		ExchangeName: name,
		ExchangeType: typ,
		Passive:      bitSet(flags, 0),
		Durable:      bitSet(flags, 1),
		AutoDelete:   bitSet(flags, 2),
		Internal:     bitSet(flags, 3),
		NoWait:       bitSet(flags, 4),
		Arguments:    args,
	}, nil
}

// ExchangeDeclareOk is Exchange.Declare-Ok's argument grammar: no
// declared fields.
type ExchangeDeclareOk struct{}

func (ExchangeDeclareOk) isArguments() {}

func decodeExchangeDeclareOk(b []byte) (Arguments, error) {
	return ExchangeDeclareOk{}, nil
}

// ExchangeDelete is Exchange.Delete's argument grammar.
type ExchangeDelete struct {
	Ticket       uint16
	ExchangeName string
	IfUnused     bool
	NoWait       bool
}

func (ExchangeDelete) isArguments() {}

func decodeExchangeDelete(b []byte) (Arguments, error) {
	ticket, rest, err := readUint16(b)
	if err != nil {
		return nil, err
	}
	name, rest, err := decodeShortString(rest)
	if err != nil {
		return nil, err
	}
	flags, _, err := readUint8(rest)
	if err != nil {
		return nil, err
	}
	return ExchangeDelete{
		Ticket:       ticket,
		ExchangeName: name,
		IfUnused:     bitSet(flags, 0),
		NoWait:       bitSet(flags, 1),
	}, nil
}

// ExchangeDeleteOk is Exchange.Delete-Ok's argument grammar: no
// declared fields.
type ExchangeDeleteOk struct{}

func (ExchangeDeleteOk) isArguments() {}

func decodeExchangeDeleteOk(b []byte) (Arguments, error) {
	return ExchangeDeleteOk{}, nil
}

// ExchangeBind is Exchange.Bind's argument grammar.
type ExchangeBind struct {
	Ticket      uint16
	Destination string
	Source      string
	RoutingKey  string
	NoWait      bool
	Arguments   FieldTable
}

func (ExchangeBind) isArguments() {}

func decodeExchangeBind(b []byte) (Arguments, error) {
	ticket, rest, err := readUint16(b)
	if err != nil {
		return nil, err
	}
	dest, rest, err := decodeShortString(rest)
	if err != nil {
		return nil, err
	}
	source, rest, err := decodeShortString(rest)
	if err != nil {
		return nil, err
	}
	routingKey, rest, err := decodeShortString(rest)
	if err != nil {
		return nil, err
	}
	flags, rest, err := readUint8(rest)
	if err != nil {
		return nil, err
	}
	args, _, err := decodeFieldTable(rest)
	if err != nil {
		return nil, err
	}
	return ExchangeBind{
		Ticket:      ticket,
		Destination: dest,
		Source:      source,
		RoutingKey:  routingKey,
		NoWait:      bitSet(flags, 0),
		Arguments:   args,
	}, nil
}

// ExchangeBindOk is Exchange.Bind-Ok's argument grammar: no declared
// fields.
type ExchangeBindOk struct{}

func (ExchangeBindOk) isArguments() {}

func decodeExchangeBindOk(b []byte) (Arguments, error) {
	return ExchangeBindOk{}, nil
}

// ExchangeUnbind is Exchange.Unbind's argument grammar.
type ExchangeUnbind struct {
	Ticket      uint16
	Destination string
	Source      string
	RoutingKey  string
	NoWait      bool
	Arguments   FieldTable
}

func (ExchangeUnbind) isArguments() {}

func decodeExchangeUnbind(b []byte) (Arguments, error) {
	ticket, rest, err := readUint16(b)
	if err != nil {
		return nil, err
	}
	dest, rest, err := decodeShortString(rest)
	if err != nil {
		return nil, err
	}
	source, rest, err := decodeShortString(rest)
	if err != nil {
		return nil, err
	}
	routingKey, rest, err := decodeShortString(rest)
	if err != nil {
		return nil, err
	}
	flags, rest, err := readUint8(rest)
	if err != nil {
		return nil, err
	}
	args, _, err := decodeFieldTable(rest)
	if err != nil {
		return nil, err
	}
	return ExchangeUnbind{
		Ticket:      ticket,
		Destination: dest,
		Source:      source,
		RoutingKey:  routingKey,
		NoWait:      bitSet(flags, 0),
		Arguments:   args,
	}, nil
}

// ExchangeUnbindOk is Exchange.Unbind-Ok's argument grammar: no
// declared fields.
type ExchangeUnbindOk struct{}

func (ExchangeUnbindOk) isArguments() {}

func decodeExchangeUnbindOk(b []byte) (Arguments, error) {
	return ExchangeUnbindOk{}, nil
}
