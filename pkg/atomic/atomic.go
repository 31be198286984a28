/*
 * Copyright 2021-2026 by Nedim Sabic Sabic
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

// Package atomic provides atomic scalar cells for signed and unsigned integers
// of every width, pointer-sized integers and booleans.
//
// All cells share one operation set: load, store, swap, strong and weak
// compare-exchange and the bitwise fetch operations. Integer cells additionally
// expose arithmetic fetch operations. Every operation is sequentially consistent:
// all goroutines observe a single total order of the operations performed on
// all cells of this package. There are no weaker ordering variants.
//
// Fetch operations always return the value stored immediately before the update.
// Conditional operations return an Outcome paired with a value instead of an error,
// since a failed comparison is an expected result.
package atomic

// noCopy may be embedded into structs which must not be copied
// after the first use. go vet's copylocks checker reports the copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Integral is the closed set of scalar types an integer cell can hold.
// Named types with these underlying types are not part of the set.
type Integral interface {
	int8 | int16 | int32 | int64 | int | uint8 | uint16 | uint32 | uint64 | uintptr
}

func btoi(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func itob(u uint32) bool { return u != 0 }
