// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fmterr

import (
	"fmt"
	"strings"
)

// Errors is a set of errors.
type Errors struct {
	errs []error
}

// Append an error to the list of errors.
func (errs *Errors) Append(err error) bool {
	errs.errs = append(errs.errs, err)
	return false
}

// Empty returns true if no error has been declared.
func (errs *Errors) Empty() bool {
	return len(errs.errs) == 0
}

// Errors returns the list of all collected errors.
func (errs *Errors) Errors() []error {
	return append([]error{}, errs.errs...)
}

// Unwrap returns the collected errors so that errors.Is and errors.As
// traverse the set.
func (errs *Errors) Unwrap() []error {
	return errs.errs
}

// ToError returns the errors as an error interface.
func (errs *Errors) ToError() error {
	if errs == nil || errs.Empty() {
		return nil
	}
	return errs
}

// Error returns the current set of errors as a string.
func (errs *Errors) Error() string {
	var ss []string
	if len(errs.errs) > 1 {
		ss = []string{""}
	}
	for _, err := range errs.errs {
		ss = append(ss, err.Error())
	}
	return strings.Join(ss, "\n")
}

// Format writes the error into the state of the formatter.
func (errs *Errors) Format(s fmt.State, verb rune) {
	flag := ""
	if s.Flag('+') {
		flag = "+"
	}
	for _, e := range errs.errs {
		format := fmt.Sprintf("%%%s%s\n", flag, string(verb))
		fmt.Fprintf(s, format, e)
	}
}

// String representation of the error.
func (errs *Errors) String() string {
	return errs.Error()
}
