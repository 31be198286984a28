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

package cells

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/golang/groupcache/lru"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/rabbitstack/seqatomic/pkg/atomic"
	kerrors "github.com/rabbitstack/seqatomic/pkg/errors"
)

// StatusType is the name under which the conditional operation status is exported.
const StatusType = "Status"

// Kind identifies one of the exported cell types.
type Kind uint8

const (
	// I8 is the int8 cell
	I8 Kind = iota
	// I16 is the int16 cell
	I16
	// I32 is the int32 cell
	I32
	// I64 is the int64 cell
	I64
	// Isize is the pointer-sized signed integer cell
	Isize
	// U8 is the uint8 cell
	U8
	// U16 is the uint16 cell
	U16
	// U32 is the uint32 cell
	U32
	// U64 is the uint64 cell
	U64
	// Usize is the pointer-sized unsigned integer cell
	Usize
	// Bool is the boolean cell
	Bool
)

type kindInfo struct {
	name   string
	typ    string
	bits   int
	signed bool
}

// kinds is the registration table. The order determines the export order.
var kinds = [...]kindInfo{
	I8:    {"AtomicI8", "int8", 8, true},
	I16:   {"AtomicI16", "int16", 16, true},
	I32:   {"AtomicI32", "int32", 32, true},
	I64:   {"AtomicI64", "int64", 64, true},
	Isize: {"AtomicIsize", "int", strconv.IntSize, true},
	U8:    {"AtomicU8", "uint8", 8, false},
	U16:   {"AtomicU16", "uint16", 16, false},
	U32:   {"AtomicU32", "uint32", 32, false},
	U64:   {"AtomicU64", "uint64", 64, false},
	Usize: {"AtomicUsize", "uintptr", strconv.IntSize, false},
	Bool:  {"AtomicBool", "bool", 1, false},
}

// String returns the exported type name.
func (k Kind) String() string {
	if !k.valid() {
		return "Unknown"
	}
	return kinds[k].name
}

// GoType returns the name of the underlying Go scalar type.
func (k Kind) GoType() string {
	if !k.valid() {
		return ""
	}
	return kinds[k].typ
}

// Bits returns the width of the scalar type. Booleans are one bit wide.
func (k Kind) Bits() int {
	if !k.valid() {
		return 0
	}
	return kinds[k].bits
}

// Signed indicates whether the kind holds a signed integer.
func (k Kind) Signed() bool { return k.valid() && kinds[k].signed }

// IsInteger returns true for the kinds of the integer family.
func (k Kind) IsInteger() bool { return k.valid() && k != Bool }

// MarshalText encodes the kind by its exported name.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText resolves the kind from its exported name.
func (k *Kind) UnmarshalText(b []byte) error {
	kind, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

func (k Kind) valid() bool { return int(k) < len(kinds) }

// Kinds returns all exported kinds in registration order.
func Kinds() []Kind {
	ks := make([]Kind, len(kinds))
	for i := range kinds {
		ks[i] = Kind(i)
	}
	return ks
}

// Statuses returns the members of the exported status type.
func Statuses() []atomic.Outcome { return []atomic.Outcome{atomic.Success, atomic.Failure} }

// ParseKind resolves the kind from its exported name. Names are matched
// case-insensitively and may omit the Atomic prefix. The underlying Go type
// name is accepted as well.
func ParseKind(name string) (Kind, error) {
	n := strings.TrimSpace(name)
	for i, k := range kinds {
		if strings.EqualFold(n, k.name) ||
			strings.EqualFold(n, strings.TrimPrefix(k.name, "Atomic")) ||
			strings.EqualFold(n, k.typ) {
			return Kind(i), nil
		}
	}
	return 0, kerrors.ErrUnknownKind{Name: name, Suggestions: suggestCached(n)}
}

// maxSuggestions is the number of names offered for an unknown kind
const maxSuggestions = 2

// suggestions memoizes the suggestions for recently seen unknown names.
var suggestions = struct {
	sync.Mutex
	*lru.Cache
}{Cache: lru.New(128)}

func suggestCached(name string) []string {
	key := strings.ToLower(name)
	suggestions.Lock()
	defer suggestions.Unlock()
	if v, ok := suggestions.Get(key); ok {
		return v.([]string)
	}
	s := suggest(name)
	suggestions.Add(key, s)
	return s
}

// suggest returns the names that resemble the unknown name. Subsequence
// matches are preferred and typos are caught by the edit distance.
func suggest(name string) []string {
	if name == "" {
		return nil
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.name
	}
	ranks := fuzzy.RankFindFold(name, names)
	if len(ranks) == 0 {
		// fall back to the edit distance to catch typos
		for _, n := range names {
			d := fuzzy.LevenshteinDistance(strings.ToLower(name), strings.ToLower(n))
			if d <= 2 {
				ranks = append(ranks, fuzzy.Rank{Source: name, Target: n, Distance: d})
			}
		}
	}
	sort.Stable(ranks)
	suggestions := make([]string, 0, maxSuggestions)
	for _, r := range ranks {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, r.Target)
	}
	if len(suggestions) == 0 {
		return nil
	}
	return suggestions
}
