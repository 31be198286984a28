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

	"github.com/google/uuid"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/pkg/errors"
	kerrors "github.com/rabbitstack/seqatomic/pkg/errors"
)

// Store keeps cells by name. Each cell is independently atomic. The store
// doesn't provide atomicity across cells.
type Store struct {
	cells cmap.ConcurrentMap[string, Cell]
}

// NewStore creates an empty cell store.
func NewStore() *Store {
	return &Store{cells: cmap.New[Cell]()}
}

// Create constructs the cell of the given kind and registers it under the
// name. A random name is generated if the name is empty.
func (s *Store) Create(name string, kind Kind, initial Value) (string, Cell, error) {
	if name == "" {
		name = uuid.New().String()
	}
	c, err := New(kind, initial)
	if err != nil {
		return "", nil, err
	}
	if !s.cells.SetIfAbsent(name, c) {
		return "", nil, errors.Wrap(kerrors.ErrCellExists, name)
	}
	return name, c, nil
}

// Get returns the cell registered under the name.
func (s *Store) Get(name string) (Cell, error) {
	c, ok := s.cells.Get(name)
	if !ok {
		return nil, errors.Wrap(kerrors.ErrCellNotFound, name)
	}
	return c, nil
}

// Remove unregisters the cell and returns it.
func (s *Store) Remove(name string) (Cell, error) {
	c, ok := s.cells.Pop(name)
	if !ok {
		return nil, errors.Wrap(kerrors.ErrCellNotFound, name)
	}
	return c, nil
}

// Names returns the sorted names of all registered cells.
func (s *Store) Names() []string {
	names := s.cells.Keys()
	sort.Strings(names)
	return names
}

// Len returns the number of registered cells.
func (s *Store) Len() int { return s.cells.Count() }

// Range calls fn for every cell in name order until fn returns false.
// Cells removed while ranging are skipped.
func (s *Store) Range(fn func(name string, c Cell) bool) {
	for _, name := range s.Names() {
		c, ok := s.cells.Get(name)
		if !ok {
			continue
		}
		if !fn(name, c) {
			return
		}
	}
}
