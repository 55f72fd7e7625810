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

// The entire Tx class declares no argument fields on any of its six
// methods; every one of them decodes to an empty struct.

type TxSelect struct{}

func (TxSelect) isArguments() {}

func decodeTxSelect(b []byte) (Arguments, error) {
	return TxSelect{}, nil
}

type TxSelectOk struct{}

func (TxSelectOk) isArguments() {}

func decodeTxSelectOk(b []byte) (Arguments, error) {
	return TxSelectOk{}, nil
}

type TxCommit struct{}

func (TxCommit) isArguments() {}

func decodeTxCommit(b []byte) (Arguments, error) {
	return TxCommit{}, nil
}

type TxCommitOk struct{}

func (TxCommitOk) isArguments() {}

func decodeTxCommitOk(b []byte) (Arguments, error) {
	return TxCommitOk{}, nil
}

type TxRollback struct{}

func (TxRollback) isArguments() {}

func decodeTxRollback(b []byte) (Arguments, error) {
	return TxRollback{}, nil
}

type TxRollbackOk struct{}

func (TxRollbackOk) isArguments() {}

func decodeTxRollbackOk(b []byte) (Arguments, error) {
	return TxRollbackOk{}, nil
}
