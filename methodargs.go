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

// argDecoder is the shape every per-(class,method) grammar function
// shares.
type argDecoder func([]byte) (Arguments, error)

// argDecoders is the ~50-way flat switch spec.md's design notes call
// for in place of virtual dispatch: one table entry per (class,
// method) pair, keyed the same way methodNames is. Validity of the
// pair itself is already checked by lookupMethod before this table is
// consulted, so a missing entry here would be a programming error,
// not a wire error.
var argDecoders = map[classMethod]argDecoder{
	{ClassConnection, 10}: decodeConnectionStart,
	{ClassConnection, 11}: decodeConnectionStartOk,
	{ClassConnection, 20}: decodeConnectionSecure,
	{ClassConnection, 21}: decodeConnectionSecureOk,
	{ClassConnection, 30}: decodeConnectionTune,
	{ClassConnection, 31}: decodeConnectionTuneOk,
	{ClassConnection, 40}: decodeConnectionOpen,
	{ClassConnection, 41}: decodeConnectionOpenOk,
	{ClassConnection, 50}: decodeConnectionClose,
	{ClassConnection, 51}: decodeConnectionCloseOk,

	{ClassChannel, 10}: decodeChannelOpen,
	{ClassChannel, 11}: decodeChannelOpenOk,
	{ClassChannel, 20}: decodeChannelFlow,
	{ClassChannel, 21}: decodeChannelFlowOk,
	{ClassChannel, 40}: decodeChannelClose,
	{ClassChannel, 41}: decodeChannelCloseOk,

	{ClassAccess, 10}: decodeAccessRequest,
	{ClassAccess, 11}: decodeAccessRequestOk,

	{ClassExchange, 10}: decodeExchangeDeclare,
	{ClassExchange, 11}: decodeExchangeDeclareOk,
	{ClassExchange, 20}: decodeExchangeDelete,
	{ClassExchange, 21}: decodeExchangeDeleteOk,
	{ClassExchange, 30}: decodeExchangeBind,
	{ClassExchange, 31}: decodeExchangeBindOk,
	{ClassExchange, 40}: decodeExchangeUnbind,
	{ClassExchange, 41}: decodeExchangeUnbindOk,

	{ClassQueue, 10}: decodeQueueDeclare,
	{ClassQueue, 11}: decodeQueueDeclareOk,
	{ClassQueue, 20}: decodeQueueBind,
	{ClassQueue, 21}: decodeQueueBindOk,
	{ClassQueue, 30}: decodeQueuePurge,
	{ClassQueue, 31}: decodeQueuePurgeOk,
	{ClassQueue, 40}: decodeQueueDelete,
	{ClassQueue, 41}: decodeQueueDeleteOk,
	{ClassQueue, 50}: decodeQueueUnbind,
	{ClassQueue, 51}: decodeQueueUnbindOk,

	{ClassBasic, 10}:  decodeBasicQos,
	{ClassBasic, 11}:  decodeBasicQosOk,
	{ClassBasic, 20}:  decodeBasicConsume,
	{ClassBasic, 21}:  decodeBasicConsumeOk,
	{ClassBasic, 30}:  decodeBasicCancel,
	{ClassBasic, 31}:  decodeBasicCancelOk,
	{ClassBasic, 40}:  decodeBasicPublish,
	{ClassBasic, 50}:  decodeBasicReturn,
	{ClassBasic, 60}:  decodeBasicDeliver,
	{ClassBasic, 70}:  decodeBasicGet,
	{ClassBasic, 71}:  decodeBasicGetOk,
	{ClassBasic, 72}:  decodeBasicGetEmpty,
	{ClassBasic, 80}:  decodeBasicAck,
	{ClassBasic, 90}:  decodeBasicReject,
	{ClassBasic, 100}: decodeBasicRecoverAsync,
	{ClassBasic, 110}: decodeBasicRecover,
	{ClassBasic, 111}: decodeBasicRecoverOk,
	{ClassBasic, 120}: decodeBasicNack,

	{ClassConfirm, 10}: decodeConfirmSelect,
	{ClassConfirm, 11}: decodeConfirmSelectOk,

	{ClassTx, 10}: decodeTxSelect,
	{ClassTx, 11}: decodeTxSelectOk,
	{ClassTx, 20}: decodeTxCommit,
	{ClassTx, 21}: decodeTxCommitOk,
	{ClassTx, 30}: decodeTxRollback,
	{ClassTx, 31}: decodeTxRollbackOk,
}

// decodeMethodArguments dispatches (class, method) to its grammar
// function over the remaining method-frame payload. class and method
// are assumed already validated by lookupMethod.
func decodeMethodArguments(class Class, method uint16, b []byte) (Arguments, error) {
	decode, ok := argDecoders[classMethod{class, method}]
	if !ok {
		return nil, newDecodeError(KindUnknownMethodType, "no argument grammar for %s.%d", class, method)
	}
	return decode(b)
}
