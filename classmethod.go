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

// Class identifies one of the eight AMQP 0-9-1 classes a method frame
// can belong to.
type Class uint16

const (
	ClassConnection Class = 10
	ClassChannel    Class = 20
	ClassAccess     Class = 30
	ClassExchange   Class = 40
	ClassQueue      Class = 50
	ClassBasic      Class = 60
	ClassConfirm    Class = 85
	ClassTx         Class = 90
)

var classNames = map[Class]string{
	ClassConnection: "Connection",
	ClassChannel:    "Channel",
	ClassAccess:     "Access",
	ClassExchange:   "Exchange",
	ClassQueue:      "Queue",
	ClassBasic:      "Basic",
	ClassConfirm:    "Confirm",
	ClassTx:         "Tx",
}

// String renders a Class by name, or "Unknown" for an unrecognised
// id.
func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "Unknown"
}

// classMethod is the composite (class, method) key the ~50-way L3
// dispatch switches on, per spec.md §9's "two-level match, not virtual
// dispatch" design note.
type classMethod struct {
	class  Class
	method uint16
}

// methodNames maps every (class, method) pair this codec understands
// to its AMQP name, and doubles as the total validity check: a pair
// absent from this map is KindUnknownMethodType (or KindUnknownClassType
// if the class itself is unrecognised).
var methodNames = map[classMethod]string{
	// Connection (10)
	{ClassConnection, 10}: "Start",
	{ClassConnection, 11}: "Start-Ok",
	{ClassConnection, 20}: "Secure",
	{ClassConnection, 21}: "Secure-Ok",
	{ClassConnection, 30}: "Tune",
	{ClassConnection, 31}: "Tune-Ok",
	{ClassConnection, 40}: "Open",
	{ClassConnection, 41}: "Open-Ok",
	{ClassConnection, 50}: "Close",
	{ClassConnection, 51}: "Close-Ok",

	// Channel (20)
	{ClassChannel, 10}: "Open",
	{ClassChannel, 11}: "Open-Ok",
	{ClassChannel, 20}: "Flow",
	{ClassChannel, 21}: "Flow-Ok",
	{ClassChannel, 40}: "Close",
	{ClassChannel, 41}: "Close-Ok",

	// Access (30)
	{ClassAccess, 10}: "Request",
	{ClassAccess, 11}: "Request-Ok",

	// Exchange (40)
	{ClassExchange, 10}: "Declare",
	{ClassExchange, 11}: "Declare-Ok",
	{ClassExchange, 20}: "Delete",
	{ClassExchange, 21}: "Delete-Ok",
	{ClassExchange, 30}: "Bind",
	{ClassExchange, 31}: "Bind-Ok",
	{ClassExchange, 40}: "Unbind",
	{ClassExchange, 41}: "Unbind-Ok",

	// Queue (50)
	{ClassQueue, 10}: "Declare",
	{ClassQueue, 11}: "Declare-Ok",
	{ClassQueue, 20}: "Bind",
	{ClassQueue, 21}: "Bind-Ok",
	{ClassQueue, 30}: "Purge",
	{ClassQueue, 31}: "Purge-Ok",
	{ClassQueue, 40}: "Delete",
	{ClassQueue, 41}: "Delete-Ok",
	{ClassQueue, 50}: "Unbind",
	{ClassQueue, 51}: "Unbind-Ok",

	// Basic (60)
	{ClassBasic, 10}:  "Qos",
	{ClassBasic, 11}:  "Qos-Ok",
	{ClassBasic, 20}:  "Consume",
	{ClassBasic, 21}:  "Consume-Ok",
	{ClassBasic, 30}:  "Cancel",
	{ClassBasic, 31}:  "Cancel-Ok",
	{ClassBasic, 40}:  "Publish",
	{ClassBasic, 50}:  "Return",
	{ClassBasic, 60}:  "Deliver",
	{ClassBasic, 70}:  "Get",
	{ClassBasic, 71}:  "Get-Ok",
	{ClassBasic, 72}:  "Get-Empty",
	{ClassBasic, 80}:  "Ack",
	{ClassBasic, 90}:  "Reject",
	{ClassBasic, 100}: "Recover-Async",
	{ClassBasic, 110}: "Recover",
	{ClassBasic, 111}: "Recover-Ok",
	{ClassBasic, 120}: "Nack",

	// Confirm (85)
	{ClassConfirm, 10}: "Select",
	{ClassConfirm, 11}: "Select-Ok",

	// Tx (90)
	{ClassTx, 10}: "Select",
	{ClassTx, 11}: "Select-Ok",
	{ClassTx, 20}: "Commit",
	{ClassTx, 21}: "Commit-Ok",
	{ClassTx, 30}: "Rollback",
	{ClassTx, 31}: "Rollback-Ok",
}

// lookupMethod validates (class, method) as a total function: it never
// panics, returning the two unknown-* error kinds spec.md §3 requires
// for out-of-range ids.
func lookupMethod(class Class, method uint16) (string, error) {
	if _, ok := classNames[class]; !ok {
		return "", newDecodeError(KindUnknownClassType, "unknown class id %d", uint16(class))
	}
	name, ok := methodNames[classMethod{class, method}]
	if !ok {
		return "", newDecodeError(KindUnknownMethodType, "unknown method id %d for class %s", method, class)
	}
	return name, nil
}
