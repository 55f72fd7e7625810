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

// QueueDeclare is Queue.Declare's argument grammar.
type QueueDeclare struct {
	Ticket     uint16
	QueueName  string
	Passive    bool
	Durable    bool
	Exclusive  bool
	AutoDelete bool
	NoWait     bool
	Arguments  FieldTable
}

func (QueueDeclare) isArguments() {}

func decodeQueueDeclare(b []byte) (Arguments, error) {
	ticket, rest, err := readUint16(b)
	if err != nil {
		return nil, err
	}
	name, rest, err := decodeShortString(rest)
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
	return QueueDeclare{
		Ticket:     ticket,
		QueueName:  name,
		Passive:    bitSet(flags, 0),
		Durable:    bitSet(flags, 1),
		Exclusive:  bitSet(flags, 2),
		AutoDelete: bitSet(flags, 3),
		NoWait:     bitSet(flags, 4),
		Arguments:  args,
	}, nil
}

// QueueDeclareOk is Queue.Declare-Ok's argument grammar.
type QueueDeclareOk struct {
	QueueName     string
	MessageCount  uint32
	ConsumerCount uint32
}

func (QueueDeclareOk) isArguments() {}

func decodeQueueDeclareOk(b []byte) (Arguments, error) {
	name, rest, err := decodeShortString(b)
	if err != nil {
		return nil, err
	}
	messageCount, rest, err := readUint32(rest)
	if err != nil {
		return nil, err
	}
	consumerCount, _, err := readUint32(rest)
	if err != nil {
		return nil, err
	}
	return QueueDeclareOk{QueueName: name, MessageCount: messageCount, ConsumerCount: consumerCount}, nil
}

// QueueBind is Queue.Bind's argument grammar.
type QueueBind struct {
	Ticket       uint16
	QueueName    string
	ExchangeName string
	RoutingKey   string
	NoWait       bool
	Arguments    FieldTable
}

func (QueueBind) isArguments() {}

func decodeQueueBind(b []byte) (Arguments, error) {
	ticket, rest, err := readUint16(b)
	if err != nil {
		return nil, err
	}
	queueName, rest, err := decodeShortString(rest)
	if err != nil {
		return nil, err
	}
	exchangeName, rest, err := decodeShortString(rest)
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
	return QueueBind{
		Ticket:       ticket,
		QueueName:    queueName,
		ExchangeName: exchangeName,
		RoutingKey:   routingKey,
		NoWait:       bitSet(flags, 0),
		Arguments:    args,
	}, nil
}

// QueueBindOk is Queue.Bind-Ok's argument grammar: no declared
// fields.
type QueueBindOk struct{}

func (QueueBindOk) isArguments() {}

func decodeQueueBindOk(b []byte) (Arguments, error) {
	return QueueBindOk{}, nil
}

// QueuePurge is Queue.Purge's argument grammar.
type QueuePurge struct {
	Ticket    uint16
	QueueName string
	NoWait    bool
}

func (QueuePurge) isArguments() {}

func decodeQueuePurge(b []byte) (Arguments, error) {
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
	return QueuePurge{Ticket: ticket, QueueName: name, NoWait: bitSet(flags, 0)}, nil
}

// QueuePurgeOk is Queue.Purge-Ok's argument grammar.
type QueuePurgeOk struct {
	MessageCount uint32
}

func (QueuePurgeOk) isArguments() {}

func decodeQueuePurgeOk(b []byte) (Arguments, error) {
	messageCount, _, err := readUint32(b)
	if err != nil {
		return nil, err
	}
	return QueuePurgeOk{MessageCount: messageCount}, nil
}

// QueueDelete is Queue.Delete's argument grammar.
type QueueDelete struct {
	Ticket    uint16
	QueueName string
	IfUnused  bool
	IfEmpty   bool
	NoWait    bool
}

func (QueueDelete) isArguments() {}

func decodeQueueDelete(b []byte) (Arguments, error) {
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
	return QueueDelete{
		Ticket:    ticket,
		QueueName: name,
		IfUnused:  bitSet(flags, 0),
		IfEmpty:   bitSet(flags, 1),
		NoWait:    bitSet(flags, 2),
	}, nil
}

// QueueDeleteOk is Queue.Delete-Ok's argument grammar.
type QueueDeleteOk struct {
	MessageCount uint32
}

func (QueueDeleteOk) isArguments() {}

func decodeQueueDeleteOk(b []byte) (Arguments, error) {
	messageCount, _, err := readUint32(b)
	if err != nil {
		return nil, err
	}
	return QueueDeleteOk{MessageCount: messageCount}, nil
}

// QueueUnbind is Queue.Unbind's argument grammar. Unlike Queue.Bind it
// carries no no-wait flag on the wire.
type QueueUnbind struct {
	Ticket       uint16
	QueueName    string
	ExchangeName string
	RoutingKey   string
	Arguments    FieldTable
}

func (QueueUnbind) isArguments() {}

func decodeQueueUnbind(b []byte) (Arguments, error) {
	ticket, rest, err := readUint16(b)
	if err != nil {
		return nil, err
	}
	queueName, rest, err := decodeShortString(rest)
	if err != nil {
		return nil, err
	}
	exchangeName, rest, err := decodeShortString(rest)
	if err != nil {
		return nil, err
	}
	routingKey, rest, err := decodeShortString(rest)
	if err != nil {
		return nil, err
	}
	args, _, err := decodeFieldTable(rest)
	if err != nil {
		return nil, err
	}
	return QueueUnbind{
		Ticket:       ticket,
		QueueName:    queueName,
		ExchangeName: exchangeName,
		RoutingKey:   routingKey,
		Arguments:    args,
	}, nil
}

// QueueUnbindOk is Queue.Unbind-Ok's argument grammar: no declared
// fields.
type QueueUnbindOk struct{}

func (QueueUnbindOk) isArguments() {}

func decodeQueueUnbindOk(b []byte) (Arguments, error) {
	return QueueUnbindOk{}, nil
}
