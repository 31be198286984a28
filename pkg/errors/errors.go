/*
 * Copyright 2019-2026 by Nedim Sabic Sabic
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

package errors

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrCellNotFound is returned when there is no cell registered under the given name
	ErrCellNotFound = errors.New("cell not found")
	// ErrCellExists is returned when a cell with the same name is already registered
	ErrCellExists = errors.New("cell already exists")
	// ErrUnsupportedOp signals the operation is not part of the cell's operation set
	ErrUnsupportedOp = errors.New("operation not supported")
	// ErrZeroModulus is returned by the boundary layer when fetch_add_mod is invoked with a zero modulus
	ErrZeroModulus = errors.New("modulus must not be zero")
	// ErrInvalidValue signals the value can't be represented by the cell's scalar type
	ErrInvalidValue = errors.New("invalid value")

	// ErrHTTPServerUnavailable signals that the HTTP server is not running on the specified transport
	ErrHTTPServerUnavailable = func(transport string, err error) error {
		return fmt.Errorf("seqatomic API server up and running on %s? %v", transport, err)
	}
)

// ErrUnknownKind is thrown when the cell type name is not registered.
type ErrUnknownKind struct {
	Name string
	// Suggestions contains the closest registered names
	Suggestions []string
}

// Error returns the error message.
func (e ErrUnknownKind) Error() string {
	if len(e.Suggestions) == 0 {
		return "unknown cell type " + e.Name
	}
	return fmt.Sprintf("unknown cell type %s. Did you mean %s?", e.Name, strings.Join(e.Suggestions, " or "))
}

// IsUnknownKind returns true if the error is ErrUnknownKind.
func IsUnknownKind(err error) bool {
	var e ErrUnknownKind
	return errors.As(err, &e)
}

// IsCellNotFound determines if the error is or wraps ErrCellNotFound.
func IsCellNotFound(err error) bool { return errors.Is(err, ErrCellNotFound) }

// IsCellExists determines if the error is or wraps ErrCellExists.
func IsCellExists(err error) bool { return errors.Is(err, ErrCellExists) }

// IsUnsupportedOp determines if the error is or wraps ErrUnsupportedOp.
func IsUnsupportedOp(err error) bool { return errors.Is(err, ErrUnsupportedOp) }

// IsZeroModulus determines if the error is or wraps ErrZeroModulus.
func IsZeroModulus(err error) bool { return errors.Is(err, ErrZeroModulus) }

// IsInvalidValue determines if the error is or wraps ErrInvalidValue.
func IsInvalidValue(err error) bool { return errors.Is(err, ErrInvalidValue) }
