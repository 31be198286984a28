/*
 * Copyright 2019-2020 by Nedim Sabic Sabic
 * https://www.fibratus.io
 * All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package common

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rabbitstack/seqatomic/pkg/cells"
	kerrors "github.com/rabbitstack/seqatomic/pkg/errors"
)

// Signals returns the channel that is closed on the first SIGINT or SIGTERM.
func Signals() <-chan struct{} {
	sig := make(chan os.Signal, 1)
	stop := make(chan struct{})
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		signal.Stop(sig)
		close(stop)
	}()
	return stop
}

// arity returns the number of positional operands the operation takes.
func arity(op cells.Op) int {
	switch op {
	case cells.OpLoad:
		return 0
	case cells.OpCompareExchange, cells.OpCompareExchangeWeak, cells.OpFetchAddMod:
		return 2
	default:
		return 1
	}
}

// ParseCall builds the operation call from the command line operands. The
// compare-exchange operations take the current and the new value, fetch_add_mod
// takes the value and the modulus, and load takes nothing.
func ParseCall(name string, args []string) (cells.Call, error) {
	op, err := cells.ParseOp(name)
	if err != nil {
		return cells.Call{}, err
	}
	if n := arity(op); len(args) != n {
		return cells.Call{}, errors.Wrap(kerrors.ErrInvalidValue, usage(op, n, len(args)))
	}
	call := cells.Call{Op: op}
	switch op {
	case cells.OpLoad:
	case cells.OpCompareExchange, cells.OpCompareExchangeWeak:
		call.Current, call.New = cells.ParseValue(args[0]), cells.ParseValue(args[1])
	case cells.OpFetchAddMod:
		call.Value, call.Modulus = cells.ParseValue(args[0]), cells.ParseValue(args[1])
	default:
		call.Value = cells.ParseValue(args[0])
	}
	return call, nil
}

func usage(op cells.Op, want, got int) string {
	return fmt.Sprintf("%s expects %d operand(s) but %d given", op, want, got)
}
