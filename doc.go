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

// Package amqp decodes an AMQP 0-9-1 byte stream into structured frame
// values.
//
// It covers the decode direction only: protocol-header recognition,
// frame envelope extraction, the ~50-shape method-argument grammar, and
// the field-table/field-array/field-value type system. Encoding,
// transport, and the session/channel state machine that consumes
// decoded frames are not part of this package.
//
// A Decoder is single-threaded and cooperative: Decode is called
// whenever new bytes arrive, and returns either a decoded value, a
// benign ErrIncomplete signalling "buffer more and retry", or a fatal
// error that ends decoding for the stream.
package amqp
