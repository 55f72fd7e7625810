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
	stderrors "errors"
	"io"

	"github.com/pkg/errors"
)

// ErrIncomplete signals that the buffer does not yet hold a full
// protocol header or frame envelope. It is the only recoverable
// outcome: the caller must preserve the buffer and retry once more
// bytes have arrived. It carries no stack trace since it is expected,
// high-frequency control flow, not a protocol violation.
var ErrIncomplete = stderrors.New("amqp: incomplete, need more bytes")

// ErrorKind classifies every fatal decode outcome. Only ErrIncomplete,
// which is not a Kind at all, is recoverable; every Kind below is
// terminal for the stream.
type ErrorKind int

const (
	// KindUnknownFrameType marks a frame-type byte outside {1,2,3,8}.
	KindUnknownFrameType ErrorKind = iota
	// KindUnknownClassType marks a class id with no known mapping.
	KindUnknownClassType
	// KindUnknownMethodType marks a (class, method) pair with no known mapping.
	KindUnknownMethodType
	// KindParseAmqpHeaderFailed marks a malformed protocol-version header.
	KindParseAmqpHeaderFailed
	// KindParseFrameFailed marks any structural violation inside an
	// already length-validated frame: bad end marker, truncated
	// argument, unknown field-value tag, or a bounded sub-slice
	// over-read.
	KindParseFrameFailed
	// KindDomain wraps a rejection from the data-model layer, e.g. an
	// invalid field name.
	KindDomain
	// KindIO wraps a transport error surfaced by the caller.
	KindIO
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnknownFrameType:
		return "UnknownFrameType"
	case KindUnknownClassType:
		return "UnknownClassType"
	case KindUnknownMethodType:
		return "UnknownMethodType"
	case KindParseAmqpHeaderFailed:
		return "ParseAmqpHeaderFailed"
	case KindParseFrameFailed:
		return "ParseFrameFailed"
	case KindDomain:
		return "Domain"
	case KindIO:
		return "Io"
	default:
		return "Unknown"
	}
}

// DecodeError is every fatal (non-Incomplete) outcome the codec can
// produce. The caller must drop the connection on any DecodeError;
// the codec does not attempt to re-synchronise mid-stream.
type DecodeError struct {
	Kind ErrorKind
	err  error
}

func (e *DecodeError) Error() string {
	return "amqp: " + e.Kind.String() + ": " + e.err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.err
}

func newDecodeError(kind ErrorKind, format string, args ...any) error {
	return &DecodeError{Kind: kind, err: errors.Errorf(format, args...)}
}

// WrapIOError wraps a transport-level error surfaced by the caller's
// reader into the codec's error taxonomy so callers can type-switch
// uniformly on DecodeError.Kind.
func WrapIOError(err error) error {
	if err == nil {
		return nil
	}
	if err == io.EOF {
		return &DecodeError{Kind: KindIO, err: err}
	}
	return &DecodeError{Kind: KindIO, err: errors.Wrap(err, "amqp: io")}
}
