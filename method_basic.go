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

// BasicQos is Basic.Qos's argument grammar.
type BasicQos struct {
	PrefetchSize  uint32
	PrefetchCount uint16
	Global        bool
}

func (BasicQos) isArguments() {}

func decodeBasicQos(b []byte) (Arguments, error) {
	size, rest, err := readUint32(b)
	if err != nil {
		return nil, err
	}
	count, rest, err := readUint16(rest)
	if err != nil {
		return nil, err
	}
	flags, _, err := readUint8(rest)
	if err != nil {
		return nil, err
	}
	return BasicQos{PrefetchSize: size, PrefetchCount: count, Global: bitSet(flags, 0)}, nil
}

// BasicQosOk is Basic.Qos-Ok's argument grammar: no declared fields.
type BasicQosOk struct{}

func (BasicQosOk) isArguments() {}

func decodeBasicQosOk(b []byte) (Arguments, error) {
	return BasicQosOk{}, nil
}

// BasicConsume is Basic.Consume's argument grammar.
type BasicConsume struct {
	Ticket      uint16
	QueueName   string
	ConsumerTag string
	NoLocal     bool
	NoAck       bool
	Exclusive   bool
	NoWait      bool
	Arguments   FieldTable
}

func (BasicConsume) isArguments() {}

func decodeBasicConsume(b []byte) (Arguments, error) {
	ticket, rest, err := readUint16(b)
	if err != nil {
		return nil, err
	}
	queueName, rest, err := decodeShortString(rest)
	if err != nil {
		return nil, err
	}
	consumerTag, rest, err := decodeShortString(rest)
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
	return BasicConsume{
		Ticket:      ticket,
		QueueName:   queueName,
		ConsumerTag: consumerTag,
		NoLocal:     bitSet(flags, 0),
		NoAck:       bitSet(flags, 1),
		Exclusive:   bitSet(flags, 2),
		NoWait:      bitSet(flags, 3),
		Arguments:   args,
	}, nil
}

// BasicConsumeOk is Basic.Consume-Ok's argument grammar.
type BasicConsumeOk struct {
	ConsumerTag string
}

func (BasicConsumeOk) isArguments() {}

func decodeBasicConsumeOk(b []byte) (Arguments, error) {
	tag, _, err := decodeShortString(b)
	if err != nil {
		return nil, err
	}
	return BasicConsumeOk{ConsumerTag: tag}, nil
}

// BasicCancel is Basic.Cancel's argument grammar.
type BasicCancel struct {
	ConsumerTag string
	NoWait      bool
}

func (BasicCancel) isArguments() {}

func decodeBasicCancel(b []byte) (Arguments, error) {
	tag, rest, err := decodeShortString(b)
	if err != nil {
		return nil, err
	}
	flags, _, err := readUint8(rest)
	if err != nil {
		return nil, err
	}
	return BasicCancel{ConsumerTag: tag, NoWait: bitSet(flags, 0)}, nil
}

// BasicCancelOk is Basic.Cancel-Ok's argument grammar.
type BasicCancelOk struct {
	ConsumerTag string
}

func (BasicCancelOk) isArguments() {}

func decodeBasicCancelOk(b []byte) (Arguments, error) {
	tag, _, err := decodeShortString(b)
	if err != nil {
		return nil, err
	}
	return BasicCancelOk{ConsumerTag: tag}, nil
}

// BasicPublish is Basic.Publish's argument grammar. Unlike most
// methods with a trailing flags byte, Publish has no trailing
// field-table: the message's headers travel in the content-header
// frame that follows, not here.
type BasicPublish struct {
	Ticket       uint16
	ExchangeName string
	RoutingKey   string
	Mandatory    bool
	Immediate    bool
}

func (BasicPublish) isArguments() {}

func decodeBasicPublish(b []byte) (Arguments, error) {
	ticket, rest, err := readUint16(b)
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
	flags, _, err := readUint8(rest)
	if err != nil {
		return nil, err
	}
	return BasicPublish{
		Ticket:       ticket,
		ExchangeName: exchangeName,
		RoutingKey:   routingKey,
		Mandatory:    bitSet(flags, 0),
		Immediate:    bitSet(flags, 1),
	}, nil
}

// BasicReturn is Basic.Return's argument grammar.
type BasicReturn struct {
	ReplyCode    uint16
	ReplyText    string
	ExchangeName string
	RoutingKey   string
}

func (BasicReturn) isArguments() {}

func decodeBasicReturn(b []byte) (Arguments, error) {
	replyCode, rest, err := readUint16(b)
	if err != nil {
		return nil, err
	}
	replyText, rest, err := decodeShortString(rest)
	if err != nil {
		return nil, err
	}
	exchangeName, rest, err := decodeShortString(rest)
	if err != nil {
		return nil, err
	}
	routingKey, _, err := decodeShortString(rest)
	if err != nil {
		return nil, err
	}
	return BasicReturn{
		ReplyCode:    replyCode,
		ReplyText:    replyText,
		ExchangeName: exchangeName,
		RoutingKey:   routingKey,
	}, nil
}

// BasicDeliver is Basic.Deliver's argument grammar.
type BasicDeliver struct {
	ConsumerTag  string
	DeliveryTag  uint64
	Redelivered  bool
	ExchangeName string
	RoutingKey   string
}

func (BasicDeliver) isArguments() {}

func decodeBasicDeliver(b []byte) (Arguments, error) {
	tag, rest, err := decodeShortString(b)
	if err != nil {
		return nil, err
	}
	deliveryTag, rest, err := readUint64(rest)
	if err != nil {
		return nil, err
	}
	flags, rest, err := readUint8(rest)
	if err != nil {
		return nil, err
	}
	exchangeName, rest, err := decodeShortString(rest)
	if err != nil {
		return nil, err
	}
	routingKey, _, err := decodeShortString(rest)
	if err != nil {
		return nil, err
	}
	return BasicDeliver{
		ConsumerTag:  tag,
		DeliveryTag:  deliveryTag,
		Redelivered:  bitSet(flags, 0),
		ExchangeName: exchangeName,
		RoutingKey:   routingKey,
	}, nil
}

// BasicGet is Basic.Get's argument grammar.
type BasicGet struct {
	Ticket    uint16
	QueueName string
	NoAck     bool
}

func (BasicGet) isArguments() {}

func decodeBasicGet(b []byte) (Arguments, error) {
	ticket, rest, err := readUint16(b)
	if err != nil {
		return nil, err
	}
	queueName, rest, err := decodeShortString(rest)
	if err != nil {
		return nil, err
	}
	flags, _, err := readUint8(rest)
	if err != nil {
		return nil, err
	}
	return BasicGet{Ticket: ticket, QueueName: queueName, NoAck: bitSet(flags, 0)}, nil
}

// BasicGetOk is Basic.Get-Ok's argument grammar.
type BasicGetOk struct {
	DeliveryTag  uint64
	Redelivered  bool
	ExchangeName string
	RoutingKey   string
	MessageCount uint32
}

func (BasicGetOk) isArguments() {}

func decodeBasicGetOk(b []byte) (Arguments, error) {
	deliveryTag, rest, err := readUint64(b)
	if err != nil {
		return nil, err
	}
	flags, rest, err := readUint8(rest)
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
	messageCount, _, err := readUint32(rest)
	if err != nil {
		return nil, err
	}
	return BasicGetOk{
		DeliveryTag:  deliveryTag,
		Redelivered:  bitSet(flags, 0),
		ExchangeName: exchangeName,
		RoutingKey:   routingKey,
		MessageCount: messageCount,
	}, nil
}

// BasicGetEmpty is Basic.Get-Empty's argument grammar: a single
// reserved short-string field, historically a cluster id.
type BasicGetEmpty struct {
	ClusterID string
}

func (BasicGetEmpty) isArguments() {}

func decodeBasicGetEmpty(b []byte) (Arguments, error) {
	clusterID, _, err := decodeShortString(b)
	if err != nil {
		return nil, err
	}
	return BasicGetEmpty{ClusterID: clusterID}, nil
}

// BasicAck is Basic.Ack's argument grammar.
type BasicAck struct {
	DeliveryTag uint64
	Multiple    bool
}

func (BasicAck) isArguments() {}

func decodeBasicAck(b []byte) (Arguments, error) {
	deliveryTag, rest, err := readUint64(b)
	if err != nil {
		return nil, err
	}
	flags, _, err := readUint8(rest)
	if err != nil {
		return nil, err
	}
	return BasicAck{DeliveryTag: deliveryTag, Multiple: bitSet(flags, 0)}, nil
}

// BasicReject is Basic.Reject's argument grammar.
type BasicReject struct {
	DeliveryTag uint64
	Requeue     bool
}

func (BasicReject) isArguments() {}

func decodeBasicReject(b []byte) (Arguments, error) {
	deliveryTag, rest, err := readUint64(b)
	if err != nil {
		return nil, err
	}
	flags, _, err := readUint8(rest)
	if err != nil {
		return nil, err
	}
	return BasicReject{DeliveryTag: deliveryTag, Requeue: bitSet(flags, 0)}, nil
}

// BasicRecoverAsync is Basic.Recover-Async's argument grammar, the
// deprecated fire-and-forget predecessor to Basic.Recover.
type BasicRecoverAsync struct {
	Requeue bool
}

func (BasicRecoverAsync) isArguments() {}

func decodeBasicRecoverAsync(b []byte) (Arguments, error) {
	flags, _, err := readUint8(b)
	if err != nil {
		return nil, err
	}
	return BasicRecoverAsync{Requeue: bitSet(flags, 0)}, nil
}

// BasicRecover is Basic.Recover's argument grammar.
type BasicRecover struct {
	Requeue bool
}

func (BasicRecover) isArguments() {}

func decodeBasicRecover(b []byte) (Arguments, error) {
	flags, _, err := readUint8(b)
	if err != nil {
		return nil, err
	}
	return BasicRecover{Requeue: bitSet(flags, 0)}, nil
}

// BasicRecoverOk is Basic.Recover-Ok's argument grammar: no declared
// fields.
type BasicRecoverOk struct{}

func (BasicRecoverOk) isArguments() {}

func decodeBasicRecoverOk(b []byte) (Arguments, error) {
	return BasicRecoverOk{}, nil
}

// BasicNack is Basic.Nack's argument grammar.
type BasicNack struct {
	DeliveryTag uint64
	Multiple    bool
	Requeue     bool
}

func (BasicNack) isArguments() {}

func decodeBasicNack(b []byte) (Arguments, error) {
	deliveryTag, rest, err := readUint64(b)
	if err != nil {
		return nil, err
	}
	flags, _, err := readUint8(rest)
	if err != nil {
		return nil, err
	}
	return BasicNack{
		DeliveryTag: deliveryTag,
		Multiple:    bitSet(flags, 0),
		Requeue:     bitSet(flags, 1),
	}, nil
}
