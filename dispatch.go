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

// decodeFrameBody is the L2 frame dispatcher: a pure total function
// from (type, channel, payload) to a decoded Frame. It never inspects
// the end marker; that is the L1 framer's job.
func decodeFrameBody(frameType FrameType, channel uint16, payload []byte) (*Frame, error) {
	switch frameType {
	case FrameMethod:
		method, err := decodeMethodFrame(payload)
		if err != nil {
			return nil, err
		}
		return &Frame{Type: FrameMethod, Channel: channel, Method: method}, nil

	case FrameContentHeader:
		header, err := decodeContentHeader(payload)
		if err != nil {
			return nil, err
		}
		return &Frame{Type: FrameContentHeader, Channel: channel, ContentHeader: header}, nil

	case FrameContentBody:
		body := make([]byte, len(payload))
		copy(body, payload)
		return &Frame{Type: FrameContentBody, Channel: channel, Body: body}, nil

	case FrameHeartbeat:
		if len(payload) != 0 {
			return nil, newDecodeError(KindParseFrameFailed, "heartbeat frame must have an empty payload, got %d bytes", len(payload))
		}
		return &Frame{Type: FrameHeartbeat, Channel: channel}, nil

	default:
		return nil, newDecodeError(KindUnknownFrameType, "unknown frame type %d", uint8(frameType))
	}
}

// MethodFrame is a decoded method payload: class_id, method_id, and
// the class-and-method-specific argument record.
type MethodFrame struct {
	Class      Class
	Method     uint16
	MethodName string
	Arguments  Arguments
}

// Arguments is the marker interface every method's argument record
// implements. The method grammar in spec.md §4.3 is modelled as a
// tagged sum: one struct per (class, method), dispatched by a flat
// switch in decodeMethodArguments, never by virtual dispatch at
// decode time.
type Arguments interface {
	isArguments()
}

// decodeMethodFrame reads class_id:u16, method_id:u16 from the
// payload, validates the pair via lookupMethod, and dispatches to the
// argument grammar for that pair over the remaining payload.
func decodeMethodFrame(payload []byte) (*MethodFrame, error) {
	classID, rest, err := readUint16(payload)
	if err != nil {
		return nil, err
	}
	methodID, rest, err := readUint16(rest)
	if err != nil {
		return nil, err
	}

	class := Class(classID)
	name, err := lookupMethod(class, methodID)
	if err != nil {
		return nil, err
	}

	args, err := decodeMethodArguments(class, methodID, rest)
	if err != nil {
		return nil, err
	}

	return &MethodFrame{Class: class, Method: methodID, MethodName: name, Arguments: args}, nil
}
