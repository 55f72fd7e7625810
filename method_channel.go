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

// ChannelOpen is Channel.Open's argument grammar.
type ChannelOpen struct {
	OutOfBand string
}

func (ChannelOpen) isArguments() {}

func decodeChannelOpen(b []byte) (Arguments, error) {
	outOfBand, _, err := decodeShortString(b)
	if err != nil {
		return nil, err
	}
	return ChannelOpen{OutOfBand: outOfBand}, nil
}

// ChannelOpenOk is Channel.Open-Ok's argument grammar: a single
// reserved long-string field, historically used for a channel id.
type ChannelOpenOk struct {
	ChannelID string
}

func (ChannelOpenOk) isArguments() {}

func decodeChannelOpenOk(b []byte) (Arguments, error) {
	channelID, _, err := decodeLongString(b)
	if err != nil {
		return nil, err
	}
	return ChannelOpenOk{ChannelID: channelID}, nil
}

// ChannelFlow is Channel.Flow's argument grammar. Active is a
// whole-byte boolean, not a packed bit.
type ChannelFlow struct {
	Active bool
}

func (ChannelFlow) isArguments() {}

func decodeChannelFlow(b []byte) (Arguments, error) {
	active, _, err := readUint8(b)
	if err != nil {
		return nil, err
	}
	return ChannelFlow{Active: boolByte(active)}, nil
}

// ChannelFlowOk is Channel.Flow-Ok's argument grammar.
type ChannelFlowOk struct {
	Active bool
}

func (ChannelFlowOk) isArguments() {}

func decodeChannelFlowOk(b []byte) (Arguments, error) {
	active, _, err := readUint8(b)
	if err != nil {
		return nil, err
	}
	return ChannelFlowOk{Active: boolByte(active)}, nil
}

// ChannelClose is Channel.Close's argument grammar.
type ChannelClose struct {
	ReplyCode  uint16
	ReplyText  string
	Class      Class
	Method     uint16
	MethodName string
}

func (ChannelClose) isArguments() {}

func decodeChannelClose(b []byte) (Arguments, error) {
	replyCode, rest, err := readUint16(b)
	if err != nil {
		return nil, err
	}
	replyText, rest, err := decodeShortString(rest)
	if err != nil {
		return nil, err
	}
	classID, rest, err := readUint16(rest)
	if err != nil {
		return nil, err
	}
	methodID, _, err := readUint16(rest)
	if err != nil {
		return nil, err
	}
	class := Class(classID)
	name, err := lookupMethod(class, methodID)
	if err != nil {
		return nil, err
	}
	return ChannelClose{
		ReplyCode:  replyCode,
		ReplyText:  replyText,
		Class:      class,
		Method:     methodID,
		MethodName: name,
	}, nil
}

// ChannelCloseOk is Channel.Close-Ok's argument grammar: no declared
// fields.
type ChannelCloseOk struct{}

func (ChannelCloseOk) isArguments() {}

func decodeChannelCloseOk(b []byte) (Arguments, error) {
	return ChannelCloseOk{}, nil
}
