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

// ConnectionStart is Connection.Start's argument grammar.
type ConnectionStart struct {
	VersionMajor     uint8
	VersionMinor     uint8
	ServerProperties FieldTable
	Mechanisms       string
	Locales          string
}

func (ConnectionStart) isArguments() {}

func decodeConnectionStart(b []byte) (Arguments, error) {
	major, rest, err := readUint8(b)
	if err != nil {
		return nil, err
	}
	minor, rest, err := readUint8(rest)
	if err != nil {
		return nil, err
	}
	props, rest, err := decodeFieldTable(rest)
	if err != nil {
		return nil, err
	}
	mechanisms, rest, err := decodeLongString(rest)
	if err != nil {
		return nil, err
	}
	locales, _, err := decodeLongString(rest)
	if err != nil {
		return nil, err
	}
	return ConnectionStart{
		VersionMajor:     major,
		VersionMinor:     minor,
		ServerProperties: props,
		Mechanisms:       mechanisms,
		Locales:          locales,
	}, nil
}

// ConnectionStartOk is Connection.Start-Ok's argument grammar.
type ConnectionStartOk struct {
	ClientProperties FieldTable
	Mechanism        string
	Response         string
	Locale           string
}

func (ConnectionStartOk) isArguments() {}

func decodeConnectionStartOk(b []byte) (Arguments, error) {
	props, rest, err := decodeFieldTable(b)
	if err != nil {
		return nil, err
	}
	mechanism, rest, err := decodeShortString(rest)
	if err != nil {
		return nil, err
	}
	response, rest, err := decodeLongString(rest)
	if err != nil {
		return nil, err
	}
	locale, _, err := decodeShortString(rest)
	if err != nil {
		return nil, err
	}
	return ConnectionStartOk{
		ClientProperties: props,
		Mechanism:        mechanism,
		Response:         response,
		Locale:           locale,
	}, nil
}

// ConnectionSecure is Connection.Secure's argument grammar.
type ConnectionSecure struct {
	Challenge string
}

func (ConnectionSecure) isArguments() {}

func decodeConnectionSecure(b []byte) (Arguments, error) {
	challenge, _, err := decodeLongString(b)
	if err != nil {
		return nil, err
	}
	return ConnectionSecure{Challenge: challenge}, nil
}

// ConnectionSecureOk is Connection.Secure-Ok's argument grammar.
type ConnectionSecureOk struct {
	Response string
}

func (ConnectionSecureOk) isArguments() {}

func decodeConnectionSecureOk(b []byte) (Arguments, error) {
	response, _, err := decodeLongString(b)
	if err != nil {
		return nil, err
	}
	return ConnectionSecureOk{Response: response}, nil
}

// ConnectionTune is Connection.Tune's argument grammar.
type ConnectionTune struct {
	ChannelMax uint16
	FrameMax   uint32
	Heartbeat  uint16
}

func (ConnectionTune) isArguments() {}

func decodeConnectionTune(b []byte) (Arguments, error) {
	channelMax, rest, err := readUint16(b)
	if err != nil {
		return nil, err
	}
	frameMax, rest, err := readUint32(rest)
	if err != nil {
		return nil, err
	}
	heartbeat, _, err := readUint16(rest)
	if err != nil {
		return nil, err
	}
	return ConnectionTune{ChannelMax: channelMax, FrameMax: frameMax, Heartbeat: heartbeat}, nil
}

// ConnectionTuneOk is Connection.Tune-Ok's argument grammar.
type ConnectionTuneOk struct {
	ChannelMax uint16
	FrameMax   uint32
	Heartbeat  uint16
}

func (ConnectionTuneOk) isArguments() {}

func decodeConnectionTuneOk(b []byte) (Arguments, error) {
	channelMax, rest, err := readUint16(b)
	if err != nil {
		return nil, err
	}
	frameMax, rest, err := readUint32(rest)
	if err != nil {
		return nil, err
	}
	heartbeat, _, err := readUint16(rest)
	if err != nil {
		return nil, err
	}
	return ConnectionTuneOk{ChannelMax: channelMax, FrameMax: frameMax, Heartbeat: heartbeat}, nil
}

// ConnectionOpen is Connection.Open's argument grammar. Capabilities is
// a short string, not the long string some drafts of this decoder
// mistakenly used; Insist is a whole-byte boolean, not a packed bit.
type ConnectionOpen struct {
	VHost        string
	Capabilities string
	Insist       bool
}

func (ConnectionOpen) isArguments() {}

func decodeConnectionOpen(b []byte) (Arguments, error) {
	vhost, rest, err := decodeShortString(b)
	if err != nil {
		return nil, err
	}
	capabilities, rest, err := decodeShortString(rest)
	if err != nil {
		return nil, err
	}
	insist, _, err := readUint8(rest)
	if err != nil {
		return nil, err
	}
	return ConnectionOpen{VHost: vhost, Capabilities: capabilities, Insist: boolByte(insist)}, nil
}

// ConnectionOpenOk is Connection.Open-Ok's argument grammar.
type ConnectionOpenOk struct {
	KnownHosts string
}

func (ConnectionOpenOk) isArguments() {}

func decodeConnectionOpenOk(b []byte) (Arguments, error) {
	knownHosts, _, err := decodeShortString(b)
	if err != nil {
		return nil, err
	}
	return ConnectionOpenOk{KnownHosts: knownHosts}, nil
}

// ConnectionClose is Connection.Close's argument grammar.
type ConnectionClose struct {
	ReplyCode  uint16
	ReplyText  string
	Class      Class
	Method     uint16
	MethodName string
}

func (ConnectionClose) isArguments() {}

func decodeConnectionClose(b []byte) (Arguments, error) {
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
	return ConnectionClose{
		ReplyCode:  replyCode,
		ReplyText:  replyText,
		Class:      class,
		Method:     methodID,
		MethodName: name,
	}, nil
}

// ConnectionCloseOk is Connection.Close-Ok's argument grammar: AMQP
// declares no fields for it, so decoding consumes nothing.
type ConnectionCloseOk struct{}

func (ConnectionCloseOk) isArguments() {}

func decodeConnectionCloseOk(b []byte) (Arguments, error) {
	return ConnectionCloseOk{}, nil
}
