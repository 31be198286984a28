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

import "strings"

// Outcome reports the result of a conditional update.
type Outcome uint8

const (
	// Success means the update was applied.
	Success Outcome = iota
	// Failure means the precondition of the update didn't hold and the cell was left untouched.
	Failure
)

// Ok returns true if the outcome is Success.
func (o Outcome) Ok() bool { return o == Success }

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Success:
		return "Success"
	case Failure:
		return "Failure"
	default:
		return "Unknown"
	}
}

// Alias returns the short member name of the outcome, Ok or Err.
func (o Outcome) Alias() string {
	switch o {
	case Success:
		return "Ok"
	case Failure:
		return "Err"
	default:
		return ""
	}
}

// ParseOutcome resolves the outcome from its name or alias. Matching is
// case-insensitive. Unknown names yield Failure and false.
func ParseOutcome(s string) (Outcome, bool) {
	for _, o := range []Outcome{Success, Failure} {
		if strings.EqualFold(s, o.String()) || strings.EqualFold(s, o.Alias()) {
			return o, true
		}
	}
	return Failure, false
}
