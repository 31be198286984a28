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

package atomic

type (
	// Int8 is an atomic int8 cell.
	Int8 = Integer[int8]
	// Int16 is an atomic int16 cell.
	Int16 = Integer[int16]
	// Int32 is an atomic int32 cell.
	Int32 = Integer[int32]
	// Int64 is an atomic int64 cell.
	Int64 = Integer[int64]
	// Int is an atomic cell of the pointer-sized signed integer.
	Int = Integer[int]
	// Uint8 is an atomic uint8 cell.
	Uint8 = Integer[uint8]
	// Uint16 is an atomic uint16 cell.
	Uint16 = Integer[uint16]
	// Uint32 is an atomic uint32 cell.
	Uint32 = Integer[uint32]
	// Uint64 is an atomic uint64 cell.
	Uint64 = Integer[uint64]
	// Uintptr is an atomic cell of the pointer-sized unsigned integer.
	Uintptr = Integer[uintptr]
)

func NewInt8(v int8) *Int8       { return NewInteger(v) }
func NewInt16(v int16) *Int16    { return NewInteger(v) }
func NewInt32(v int32) *Int32    { return NewInteger(v) }
func NewInt64(v int64) *Int64    { return NewInteger(v) }
func NewInt(v int) *Int          { return NewInteger(v) }
func NewUint8(v uint8) *Uint8    { return NewInteger(v) }
func NewUint16(v uint16) *Uint16 { return NewInteger(v) }
func NewUint32(v uint32) *Uint32 { return NewInteger(v) }
func NewUint64(v uint64) *Uint64 { return NewInteger(v) }

func NewUintptr(v uintptr) *Uintptr { return NewInteger(v) }
