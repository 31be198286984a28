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

package multierror

import "strings"

// Error aggregates multiple errors into a single one.
type Error struct {
	errs []error
}

// Wrap combines the non-nil errors. It returns nil if there are none.
func Wrap(errs ...error) error {
	var e Error
	for _, err := range errs {
		if err != nil {
			e.errs = append(e.errs, err)
		}
	}
	if len(e.errs) == 0 {
		return nil
	}
	return &e
}

// Error renders every error on its own line.
func (e *Error) Error() string {
	if len(e.errs) == 1 {
		return e.errs[0].Error()
	}
	var sb strings.Builder
	for _, err := range e.errs {
		sb.WriteString("\n\t* ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Unwrap exposes the wrapped errors to errors.Is and errors.As.
func (e *Error) Unwrap() []error { return e.errs }

// Len returns the number of wrapped errors.
func (e *Error) Len() int { return len(e.errs) }
