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

// replyCodeNames maps AMQP 0-9-1's reply codes, as carried by
// Connection.Close and Channel.Close, to their constant name. This
// codec does not interpret the code itself; ReplyCodeName only gives
// callers a readable label.
var replyCodeNames = map[uint16]string{
	200: "REPLY_SUCCESS",
	311: "CONTENT_TOO_LARGE",
	312: "NO_ROUTE",
	313: "NO_CONSUMERS",
	320: "CONNECTION_FORCED",
	402: "INVALID_PATH",
	403: "ACCESS_REFUSED",
	404: "NOT_FOUND",
	405: "RESOURCE_LOCKED",
	406: "PRECONDITION_FAILED",
	501: "FRAME_ERROR",
	502: "SYNTAX_ERROR",
	503: "COMMAND_INVALID",
	504: "CHANNEL_ERROR",
	505: "UNEXPECTED_FRAME",
	506: "RESOURCE_ERROR",
	530: "NOT_ALLOWED",
	540: "NOT_IMPLEMENTED",
	541: "INTERNAL_ERROR",
}

// ReplyCodeName renders a reply code by its AMQP constant name, or
// "UNKNOWN" for a code outside the known set.
func ReplyCodeName(code uint16) string {
	if name, ok := replyCodeNames[code]; ok {
		return name
	}
	return "UNKNOWN"
}
